package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"controlling_microwave/internal/models"
	"controlling_microwave/internal/oven"
	"controlling_microwave/internal/service"

	"github.com/gin-gonic/gin"
)

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(_ context.Context, username, _ string) (string, error) {
	m.lastGenUsername = username
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockOven runs commands against a real machine so responses stay realistic.
type mockOven struct {
	mu       sync.Mutex
	machine  *oven.Machine
	err      error
	commands []service.Command
}

func newMockOven() *mockOven { return &mockOven{machine: oven.New()} }

func (m *mockOven) Do(_ context.Context, cmd service.Command) (models.OvenState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands = append(m.commands, cmd)
	if m.err != nil {
		return models.OvenState{}, m.err
	}
	if err := oven.Apply(m.machine, cmd.Op, cmd.Seconds); err != nil {
		return models.OvenState{}, err
	}
	st := m.machine.State()
	return models.OvenState{
		State:            st.Kind().String(),
		DoorOpen:         st.DoorOpen(),
		MagnetronEnabled: st.MagnetronEnabled(),
		TimeRemain:       st.Time(),
	}, nil
}

type mockMonitoring struct {
	mu    sync.Mutex
	state models.OvenState
	err   error
}

func (m *mockMonitoring) GetState(context.Context) (models.OvenState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.err
}

func (m *mockMonitoring) set(st models.OvenState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = st
}

type mockEventLog struct {
	resp     []models.OvenEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.OvenEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockConformance struct {
	run       models.ConformanceRun
	runErr    error
	runs      []models.ConformanceRun
	listErr   error
	lastImpl  string
	lastLimit int
}

func (m *mockConformance) RunConformance(_ context.Context, implementation string) (models.ConformanceRun, error) {
	m.lastImpl = implementation
	return m.run, m.runErr
}

func (m *mockConformance) ListRuns(_ context.Context, implementation string, limit int) ([]models.ConformanceRun, error) {
	m.lastImpl, m.lastLimit = implementation, limit
	return m.runs, m.listErr
}

func (m *mockConformance) Implementations() []string {
	return []string{"flags", "machine", "typed"}
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil).InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func authorized(req *http.Request) *http.Request {
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
