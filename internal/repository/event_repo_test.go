package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"controlling_microwave/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventColumns = []string{"id", "occurred_at", "type", "message", "meta"}

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestEventAppend_FillsDefaults(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(insertEventSQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), models.EventSetTime, "time set to 30", `{"seconds":30}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewEventSQLite(db).Append(ctx(t), models.OvenEvent{
		Type:        "  set_time ",
		Description: "time set to 30",
		Metadata:    map[string]any{"seconds": 30},
	})
	require.NoError(t, err)
}

func TestEventAppend_KeepsGivenIDAndTime(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	mock.ExpectExec(regexp.QuoteMeta(insertEventSQL)).
		WithArgs("ev-1", at.UTC(), models.EventStart, "cooking", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewEventSQLite(db).Append(ctx(t), models.OvenEvent{
		EventID:     "ev-1",
		OccurredAt:  at,
		Type:        models.EventStart,
		Description: "cooking",
	})
	require.NoError(t, err)
}

func TestEventAppend_DBError(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(insertEventSQL)).
		WillReturnError(errors.New("down"))

	err := NewEventSQLite(db).Append(ctx(t), models.OvenEvent{
		EventID:     "ev-2",
		Type:        models.EventTick,
		Description: "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert event ev-2")
	assert.Contains(t, err.Error(), "down")
}

func TestEventList_NoFilters_ParsesMetadata(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	js, _ := json.Marshal(map[string]any{"seconds": 30})

	rows := sqlmock.NewRows(eventColumns).
		AddRow("1", now, models.EventSetTime, "m1", string(js)).
		AddRow("2", now.Add(time.Second), models.EventStart, "m2", nil).
		AddRow("3", now.Add(2*time.Second), models.EventStop, "m3", "{broken")

	mock.ExpectQuery(regexp.QuoteMeta(selectEventSQL + " ORDER BY occurred_at ASC")).
		WillReturnRows(rows)

	got, err := NewEventSQLite(db).List(ctx(t), time.Time{}, time.Time{}, "")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "1", got[0].EventID)
	b, _ := json.Marshal(got[0].Metadata)
	assert.JSONEq(t, string(js), string(b))
	assert.Nil(t, got[1].Metadata)
	assert.Equal(t, "{broken", got[2].Metadata)
}

func TestEventList_WithFilters(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	from := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	query := selectEventSQL + " WHERE occurred_at >= ? AND occurred_at <= ? AND type = ? ORDER BY occurred_at ASC"

	rows := sqlmock.NewRows(eventColumns).
		AddRow("2", from, models.EventCookComplete, "b", nil).
		AddRow("3", to, models.EventCookComplete, "c", nil)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(from, to, models.EventCookComplete).
		WillReturnRows(rows)

	got, err := NewEventSQLite(db).List(ctx(t), from, to, " cook_complete ")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].EventID)
	assert.Equal(t, "3", got[1].EventID)
}

func TestEventList_ScanError(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows(eventColumns).
		AddRow("x", 123, models.EventTick, "msg", nil) // occurred_at has the wrong type

	mock.ExpectQuery(regexp.QuoteMeta(selectEventSQL + " ORDER BY occurred_at ASC")).
		WillReturnRows(rows)

	_, err := NewEventSQLite(db).List(ctx(t), time.Time{}, time.Time{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan event")
}
