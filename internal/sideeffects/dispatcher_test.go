package sideeffects

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{outcomes: map[string]int{}}
}

func (m *recordingMetrics) IncSideEffect(kind, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[kind+"/"+outcome]++
}

func (m *recordingMetrics) get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[key]
}

func TestDispatcher_RunsJobs(t *testing.T) {
	metrics := newRecordingMetrics()
	d := NewDispatcher(8, 0, nopLogger{}, metrics)
	d.Start()

	var mu sync.Mutex
	ran := make([]string, 0)

	for _, kind := range []string{"staff_notification", "calendar_create"} {
		kind := kind
		d.Enqueue(Job{Kind: kind, Run: func(_ context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			ran = append(ran, kind)
			return nil
		}})
	}

	d.Stop()

	// Один воркер обрабатывает очередь по порядку
	assert.Equal(t, []string{"staff_notification", "calendar_create"}, ran)
	assert.Equal(t, 1, metrics.get("staff_notification/success"))
	assert.Equal(t, 1, metrics.get("calendar_create/success"))
}

func TestDispatcher_FailedJobDoesNotStopWorker(t *testing.T) {
	metrics := newRecordingMetrics()
	d := NewDispatcher(8, 0, nopLogger{}, metrics)
	d.Start()

	done := false
	d.Enqueue(Job{Kind: "calendar_create", Run: func(_ context.Context) error {
		return errors.New("service unavailable")
	}})
	d.Enqueue(Job{Kind: "customer_confirmation", Run: func(_ context.Context) error {
		done = true
		return nil
	}})

	d.Stop()

	assert.True(t, done)
	assert.Equal(t, 1, metrics.get("calendar_create/failed"))
	assert.Equal(t, 1, metrics.get("customer_confirmation/success"))
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	metrics := newRecordingMetrics()
	// Воркер не запущен, очередь на одну задачу
	d := NewDispatcher(1, 0, nopLogger{}, metrics)

	noop := Job{Kind: "staff_notification", Run: func(_ context.Context) error { return nil }}
	d.Enqueue(noop)
	d.Enqueue(noop) // переполнение

	assert.Equal(t, 1, metrics.get("staff_notification/dropped"))

	d.Start()
	d.Stop()
	assert.Equal(t, 1, metrics.get("staff_notification/success"))
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	d := NewDispatcher(1, 0, nopLogger{}, nil)
	d.Start()

	require.NotPanics(t, func() {
		d.Stop()
		d.Stop()
	})
}

func TestDispatcher_NilMetrics(t *testing.T) {
	d := NewDispatcher(0, 0, nopLogger{}, nil)
	d.Start()

	d.Enqueue(Job{Kind: "calendar_delete", Run: func(_ context.Context) error { return nil }})
	require.NotPanics(t, d.Stop)
}
