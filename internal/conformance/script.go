package conformance

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"controlling_microwave/internal/oven"
)

// scriptFile is the YAML layout of a scenario file:
//
//	name: door-interlock
//	groups:
//	  - name: start with door open
//	    steps:
//	      - op: open_door
//	      - op: set_time
//	        seconds: 20
//	        expect: {door_open: true, magnetron_enabled: false, time_remain: 20}
type scriptFile struct {
	Name   string        `yaml:"name"`
	Groups []scriptGroup `yaml:"groups"`
}

type scriptGroup struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Steps       []scriptStep `yaml:"steps"`
}

type scriptStep struct {
	Op      string  `yaml:"op"`
	Seconds uint    `yaml:"seconds,omitempty"`
	Expect  *Expect `yaml:"expect,omitempty"`
}

// LoadScript decodes a YAML scenario into a Suite. Unknown fields and
// unknown operations are rejected.
func LoadScript(r io.Reader) (Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f scriptFile
	if err := dec.Decode(&f); err != nil {
		return Suite{}, fmt.Errorf("decode script: %w", err)
	}
	if len(f.Groups) == 0 {
		return Suite{}, fmt.Errorf("script %q has no groups", f.Name)
	}

	s := Suite{Name: f.Name, Groups: make([]Group, 0, len(f.Groups))}
	for gi, g := range f.Groups {
		if g.Name == "" {
			g.Name = fmt.Sprintf("group %d", gi+1)
		}
		group := Group{Name: g.Name, Description: g.Description, Steps: make([]Step, 0, len(g.Steps))}
		for si, st := range g.Steps {
			op, err := oven.ParseOp(st.Op)
			if err != nil {
				return Suite{}, fmt.Errorf("%q step %d: %w", g.Name, si+1, err)
			}
			group.Steps = append(group.Steps, Step{Op: op, Seconds: st.Seconds, Want: st.Expect})
		}
		s.Groups = append(s.Groups, group)
	}
	return s, nil
}

// LoadScriptFile reads a scenario from path. The suite name defaults to
// the path.
func LoadScriptFile(path string) (Suite, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("read script %q: %w", path, err)
	}
	s, err := LoadScript(bytes.NewReader(b))
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}
