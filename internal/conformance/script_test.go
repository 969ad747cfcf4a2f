package conformance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"controlling_microwave/internal/oven"
)

const pauseResumeScript = `
name: pause-resume
groups:
  - name: door pause
    description: opening pauses, closing does not resume
    steps:
      - op: start
        expect: {door_open: false, magnetron_enabled: true, time_remain: 30}
      - op: tick
      - op: action_open_door
        expect: {door_open: true, magnetron_enabled: false, time_remain: 29}
      - op: close_door
        expect: {door_open: false, magnetron_enabled: false, time_remain: 29}
  - steps:
      - op: set_time
        seconds: 90
        expect: {door_open: false, magnetron_enabled: false, time_remain: 90}
`

func TestLoadScript_RunsAgainstMachine(t *testing.T) {
	s, err := LoadScript(strings.NewReader(pauseResumeScript))
	require.NoError(t, err)

	assert.Equal(t, "pause-resume", s.Name)
	require.Len(t, s.Groups, 2)
	assert.Equal(t, "group 2", s.Groups[1].Name)
	assert.Equal(t, oven.OpOpenDoor, s.Groups[0].Steps[2].Op)
	assert.Nil(t, s.Groups[0].Steps[1].Want)
	assert.Equal(t, uint(90), s.Groups[1].Steps[0].Seconds)

	rep, err := Run(oven.New(), s)
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Steps)
	assert.Equal(t, 4, rep.Assertions)
}

func TestLoadScript_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown op": `
name: bad
groups:
  - name: g
    steps:
      - op: defrost
`,
		"unknown field": `
name: bad
groups:
  - name: g
    steps:
      - op: start
        expected: {door_open: false}
`,
		"no groups": `name: empty`,
		"not yaml":  `{{{`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadScript(strings.NewReader(src))
			require.Error(t, err)
		})
	}
}

func TestLoadScriptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	src := strings.Replace(pauseResumeScript, "name: pause-resume\n", "", 1)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	s, err := LoadScriptFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Name)

	_, err = LoadScriptFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
