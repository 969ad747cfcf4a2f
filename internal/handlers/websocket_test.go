package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"controlling_microwave/internal/models"
	"controlling_microwave/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", time.Second},
		{"interval_too_small", "/ws?interval=1ms", time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", time.Second},
		{"interval_ms_too_small", "/ws?interval_ms=5", time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"invalid_interval_falls_back_to_ms", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tc.u, nil)
			if got := h.parseInterval(c); got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func dialWS(t *testing.T, s *service.Service, query string) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", NewHandler(s, nil).wsConnect)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = query

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readState(t *testing.T, conn *websocket.Conn) models.OvenState {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != "state" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var st models.OvenState
	if err := json.Unmarshal(env.Data, &st); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	return st
}

func TestWebSocket_StateStream_InitialAndOnChange(t *testing.T) {
	mon := &mockMonitoring{state: models.OvenState{
		State:            "CLOSED_TIME_MTRON",
		MagnetronEnabled: true,
		TimeRemain:       30,
	}}
	conn := dialWS(t, &service.Service{Monitoring: mon}, "interval_ms=50")

	st := readState(t, conn)
	if st.State != "CLOSED_TIME_MTRON" || !st.MagnetronEnabled || st.TimeRemain != 30 {
		t.Fatalf("unexpected initial state: %+v", st)
	}

	mon.set(models.OvenState{State: "CLOSED_TIME_MTRON", MagnetronEnabled: true, TimeRemain: 29})
	st = readState(t, conn)
	if st.TimeRemain != 29 {
		t.Fatalf("expected countdown update, got %+v", st)
	}
}

func TestWebSocket_UnchangedStateIsNotResent(t *testing.T) {
	mon := &mockMonitoring{state: models.OvenState{State: "OPEN_NO_TIME", DoorOpen: true}}
	conn := dialWS(t, &service.Service{Monitoring: mon}, "interval_ms=50")

	readState(t, conn)

	_ = conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var env envelope
	err := conn.ReadJSON(&env)
	var netErr interface{ Timeout() bool }
	if !errors.As(err, &netErr) || !netErr.Timeout() {
		t.Fatalf("expected read timeout for unchanged state, got env=%+v err=%v", env, err)
	}
}

func TestWebSocket_InitialGetStateError_Closes(t *testing.T) {
	mon := &mockMonitoring{err: errors.New("boom")}
	conn := dialWS(t, &service.Service{Monitoring: mon}, "")

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("expected error envelope, got %v", err)
	}
	if env.Type != "error" || env.Error != errGetState {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	if err := conn.ReadJSON(&env); err == nil {
		t.Fatalf("expected closed connection, got message: %+v", env)
	}
}
