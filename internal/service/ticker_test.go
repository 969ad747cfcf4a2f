package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"controlling_microwave/internal/models"
	"controlling_microwave/internal/oven"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type countingOven struct {
	mu    sync.Mutex
	ops   []oven.Op
	ticks chan struct{}
}

func (c *countingOven) Do(_ context.Context, cmd Command) (models.OvenState, error) {
	c.mu.Lock()
	c.ops = append(c.ops, cmd.Op)
	c.mu.Unlock()
	select {
	case c.ticks <- struct{}{}:
	default:
	}
	return models.OvenState{}, nil
}

func TestTickerService_TicksUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	o := &countingOven{ticks: make(chan struct{}, 1)}
	svc := NewTickerService(o, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Run(ctx, 5*time.Millisecond)
	}()

	for i := 0; i < 3; i++ {
		select {
		case <-o.ticks:
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d not delivered", i+1)
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker did not stop after cancel")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	assert.GreaterOrEqual(t, len(o.ops), 3)
	for _, op := range o.ops {
		assert.Equal(t, oven.OpTick, op)
	}
}

func TestTickerService_DisabledInterval(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	o := &countingOven{ticks: make(chan struct{}, 1)}
	svc := NewTickerService(o, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Run(context.Background(), 0)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run with zero interval should return immediately")
	}
	assert.Empty(t, o.ops)
}

func TestTickerService_DrivesCountdown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	repo := &recordingEventRepo{}
	ov := NewOvenService(repo, nil)
	_, _ = ov.Do(context.Background(), Command{Op: oven.OpSetTime, Seconds: 2})
	_, _ = ov.Do(context.Background(), Command{Op: oven.OpStart})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewTickerService(ov, nil).Run(ctx, 2*time.Millisecond)
	}()

	assert.Eventually(t, func() bool {
		return !ov.Snapshot().MagnetronEnabled
	}, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	st := ov.Snapshot()
	assert.Equal(t, "CLOSED_NO_TIME_NO_MTRON", st.State)
	assert.Contains(t, repo.types(), models.EventCookComplete)
}
