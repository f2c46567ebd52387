package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerrad567/gray-logic-hub/internal/command"
	"github.com/nerrad567/gray-logic-hub/internal/device"
	"github.com/nerrad567/gray-logic-hub/internal/hub"
)

type failingRepo struct{}

func (failingRepo) Create(context.Context, *AuditLog) error { return errors.New("disk full") }
func (failingRepo) List(context.Context, Filter) (*ListResult, error) {
	return nil, errors.New("disk full")
}

// blockingRepo holds every Create until release is closed.
type blockingRepo struct {
	started chan struct{}
	release chan struct{}
	mu      sync.Mutex
	created []string
}

func newBlockingRepo() *blockingRepo {
	return &blockingRepo{started: make(chan struct{}, 16), release: make(chan struct{})}
}

func (b *blockingRepo) Create(_ context.Context, l *AuditLog) error {
	b.started <- struct{}{}
	<-b.release
	b.mu.Lock()
	defer b.mu.Unlock()
	b.created = append(b.created, l.Action)
	return nil
}

func (b *blockingRepo) List(context.Context, Filter) (*ListResult, error) {
	return &ListResult{}, nil
}

type errorLog struct {
	mu   sync.Mutex
	msgs []string
}

func (l *errorLog) Debug(string, ...any) {}
func (l *errorLog) Info(string, ...any)  {}
func (l *errorLog) Warn(string, ...any)  {}
func (l *errorLog) Error(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
}

func TestRecorder_RecordsHubDispatches(t *testing.T) {
	repo := openTestRepo(t)
	reg := device.NewRegistry()
	kitchen := device.NewLight("Kitchen")
	require.NoError(t, reg.Add(kitchen))

	rec := NewRecorder(repo, "site-001", WithSource("test"), WithSnapshot(reg.Snapshot))
	h := hub.New(hub.DefaultSlotCount, hub.WithObserver(rec))
	h.Register(0, command.NewLightOn(kitchen), command.NewLightOff(kitchen))

	h.TriggerActivate(0)
	h.UndoLast()
	h.TriggerActivate(9) // ignored, not audited
	require.NoError(t, rec.Flush(context.Background()))

	result, err := repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)

	undo, activate := result.Logs[0], result.Logs[1]

	assert.Equal(t, "activate", activate.Op)
	assert.Equal(t, "LightOn", activate.Action)
	assert.Equal(t, "test", activate.Source)
	assert.Equal(t, "site-001", activate.SiteID)
	require.NotNil(t, activate.Slot)
	assert.Equal(t, 0, *activate.Slot)

	assert.Equal(t, "undo", undo.Op)
	assert.Equal(t, "LightOn", undo.Action)
	assert.Nil(t, undo.Slot)

	devices, ok := undo.Details["devices"].(map[string]any)
	require.True(t, ok, "details.devices missing: %v", undo.Details)
	assert.Equal(t, map[string]any{"on": false, "brightness": float64(0)}, devices["kitchen-light"])
}

func TestRecorder_WriteFailureIsLogged(t *testing.T) {
	logger := &errorLog{}
	rec := NewRecorder(failingRepo{}, "site-001", WithLogger(logger))

	assert.NotPanics(t, func() {
		rec.ObserveDispatch(hub.Dispatch{Op: hub.OpActivate, Slot: 1, Action: "LightOn", At: time.Now()})
	})
	require.NoError(t, rec.Close())
	assert.Equal(t, []string{"audit write failed"}, logger.msgs)
}

func TestRecorder_SlowRepositoryDoesNotBlockHub(t *testing.T) {
	repo := newBlockingRepo()
	rec := NewRecorder(repo, "site-001")
	kitchen := device.NewLight("Kitchen")
	h := hub.New(hub.DefaultSlotCount, hub.WithObserver(rec))
	h.Register(0, command.NewLightOn(kitchen), command.NewLightOff(kitchen))

	done := make(chan hub.Report, 1)
	go func() {
		h.TriggerActivate(0)
		h.TriggerDeactivate(0)
		done <- h.StatusReport()
	}()

	select {
	case r := <-done:
		assert.Equal(t, "LightOff", r.LastAction)
	case <-time.After(time.Second):
		t.Fatal("hub blocked behind a stalled audit write")
	}

	close(repo.release)
	require.NoError(t, rec.Close())
	assert.Equal(t, []string{"LightOn", "LightOff"}, repo.created)
}

func TestRecorder_DropsWhenQueueFull(t *testing.T) {
	repo := newBlockingRepo()
	logger := &errorLog{}
	rec := NewRecorder(repo, "site-001", WithQueueSize(1), WithLogger(logger))
	d := hub.Dispatch{Op: hub.OpActivate, Action: "LightOn", At: time.Now()}

	rec.ObserveDispatch(d)
	<-repo.started // writer holds the first entry
	rec.ObserveDispatch(d)
	rec.ObserveDispatch(d)

	close(repo.release)
	require.NoError(t, rec.Close())
	assert.Len(t, repo.created, 2)
	assert.Equal(t, []string{"audit entry dropped"}, logger.msgs)
}

func TestRecorder_CloseIsIdempotent(t *testing.T) {
	logger := &errorLog{}
	rec := NewRecorder(openTestRepo(t), "site-001", WithLogger(logger))

	require.NoError(t, rec.Close())
	require.NoError(t, rec.Close())
	require.NoError(t, rec.Flush(context.Background()))

	rec.ObserveDispatch(hub.Dispatch{Op: hub.OpUndo, Action: "NoOp", At: time.Now()})
	assert.Equal(t, []string{"audit entry dropped"}, logger.msgs)
}
