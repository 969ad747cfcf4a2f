package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"controlling_microwave/internal/models"
	"controlling_microwave/internal/service"
)

func TestLogsHandler_ListAndValidation(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.OvenEvent{
		{EventID: "e1", OccurredAt: now, Type: models.EventStart, Description: "Start pressed"},
		{EventID: "e2", OccurredAt: now.Add(time.Second), Type: models.EventCookComplete, Description: "done"},
	}
	logs := &mockEventLog{resp: events}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 99}, EventLog: logs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/logs?from=notatime", nil)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}

	w = httptest.NewRecorder()
	q := "/api/v1/logs?from=" + now.Format(time.RFC3339) + "&to=" + now.Add(2*time.Second).Format(time.RFC3339) + "&type=cook_complete"
	r.ServeHTTP(w, authorized(httptest.NewRequest(http.MethodGet, q, nil)))
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                `json:"count"`
		Events []models.OvenEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if logs.lastType != "cook_complete" {
		t.Fatalf("type should be passed through for the service to normalize, got %q", logs.lastType)
	}
	if !logs.lastFrom.Equal(now) {
		t.Fatalf("from: got %v, want %v", logs.lastFrom, now)
	}
}

func TestLogsHandler_DateOnlyToIsEndOfDay(t *testing.T) {
	logs := &mockEventLog{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, EventLog: logs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/logs?to=2025-08-31", nil)))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	want := time.Date(2025, 8, 31, 23, 59, 59, 999999999, time.UTC)
	if !logs.lastTo.Equal(want) {
		t.Fatalf("to: got %v, want %v", logs.lastTo, want)
	}
}

func TestLogsHandler_ServiceErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid range", service.ErrInvalidTimeRange, http.StatusBadRequest},
		{"storage", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logs := &mockEventLog{err: tc.err}
			r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, EventLog: logs})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil)))
			if w.Code != tc.code {
				t.Fatalf("status: got %d, want %d", w.Code, tc.code)
			}
		})
	}
}
