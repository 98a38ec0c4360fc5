package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/pkg/events"
	"github.com/chainforge-ai/chainforge/pkg/stages"
)

// scriptedStage is a minimal stage whose Process behavior is scripted.
type scriptedStage struct {
	name        string
	validateErr error
	processErr  error
	onProcess   func(sc *stages.Context)
	calls       int
}

func (s *scriptedStage) Name() string { return s.name }

func (s *scriptedStage) Validate(context.Context, *stages.Context) error { return s.validateErr }

func (s *scriptedStage) Process(_ context.Context, sc *stages.Context) error {
	s.calls++
	if s.onProcess != nil {
		s.onProcess(sc)
	}
	return s.processErr
}

// memoryStore records every workflow write in order.
type memoryStore struct {
	mu              sync.Mutex
	statuses        []string
	progress        []int
	cancelRequested bool
	completed       bool
	failed          string
	cancelled       bool
	warnings        []string
}

func (m *memoryStore) SetStatus(_ context.Context, _, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses = append(m.statuses, status)
	return nil
}

func (m *memoryStore) SetProgress(_ context.Context, _ string, progress int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = append(m.progress, progress)
	return nil
}

func (m *memoryStore) CancelRequested(context.Context, string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancelRequested, nil
}

func (m *memoryStore) MarkCompleted(_ context.Context, _ string, warnings []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed = true
	m.warnings = warnings
	return nil
}

func (m *memoryStore) MarkFailed(_ context.Context, _ string, message string, warnings []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = message
	m.warnings = warnings
	return nil
}

func (m *memoryStore) MarkCancelled(context.Context, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelled = true
	return nil
}

// recordingBus captures published events in order.
type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingBus) Publish(_ context.Context, evt events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recordingBus) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func fivePipeline(gen, comp, aud, test, dep stages.Stage) []StageEntry {
	return BuildPipeline(gen, comp, aud, test, dep, Options{})
}

func newScripted() (gen, comp, aud, test, dep *scriptedStage) {
	return &scriptedStage{name: "generation"},
		&scriptedStage{name: "compilation"},
		&scriptedStage{name: "audit"},
		&scriptedStage{name: "testing"},
		&scriptedStage{name: "deployment"}
}

func TestRunHappyPath(t *testing.T) {
	store := &memoryStore{}
	bus := &recordingBus{}
	gen, comp, aud, test, dep := newScripted()

	o := New(store, bus)
	sc := &stages.Context{WorkflowID: "wf-1", Network: "hyperion_testnet"}
	require.NoError(t, o.Run(context.Background(), sc, fivePipeline(gen, comp, aud, test, dep)))

	assert.True(t, store.completed)
	assert.Equal(t, []string{StatusGenerating, StatusCompiling, StatusAuditing, StatusTesting, StatusDeploying}, store.statuses)
	assert.Equal(t, []int{20, 40, 60, 80, 100}, store.progress)

	assert.Equal(t, []string{
		events.EventTypeWorkflowStarted,
		events.EventTypeGenerationStarted,
		events.EventTypeGenerationCompleted,
		events.EventTypeCompilationStarted,
		events.EventTypeCompilationCompleted,
		events.EventTypeAuditStarted,
		events.EventTypeAuditCompleted,
		events.EventTypeTestingStarted,
		events.EventTypeTestingCompleted,
		events.EventTypeDeploymentStarted,
		events.EventTypeDeploymentConfirmed,
		events.EventTypeWorkflowCompleted,
	}, bus.types())

	// The started payload carries the status the workflow is actually in
	// once a worker picks it up.
	assert.Equal(t, StatusGenerating, bus.events[0].Data["status"])
}

func TestRunFatalStageFailure(t *testing.T) {
	store := &memoryStore{}
	bus := &recordingBus{}
	gen, comp, aud, test, dep := newScripted()
	comp.processErr = errors.New("ParserError: expected ';'")

	o := New(store, bus)
	err := o.Run(context.Background(), &stages.Context{WorkflowID: "wf-1"}, fivePipeline(gen, comp, aud, test, dep))
	require.Error(t, err)

	assert.Contains(t, store.failed, "compilation stage failed")
	assert.False(t, store.completed)
	assert.Zero(t, aud.calls, "pipeline stops at the fatal stage")
	assert.Zero(t, dep.calls)

	types := bus.types()
	assert.Equal(t, events.EventTypeWorkflowFailed, types[len(types)-1])
	assert.Contains(t, types, events.EventTypeCompilationFailed)
}

func TestRunNonFatalStageFailure(t *testing.T) {
	store := &memoryStore{}
	bus := &recordingBus{}
	gen, comp, aud, test, dep := newScripted()
	aud.processErr = errors.New("all 2 audit tools failed")

	o := New(store, bus)
	sc := &stages.Context{WorkflowID: "wf-1"}
	require.NoError(t, o.Run(context.Background(), sc, fivePipeline(gen, comp, aud, test, dep)))

	assert.True(t, store.completed)
	assert.Equal(t, 1, dep.calls, "pipeline continues past the advisory stage")
	require.Len(t, store.warnings, 1)
	assert.Contains(t, store.warnings[0], "audit stage failed")
	assert.Contains(t, bus.types(), events.EventTypeAuditFailed)
	assert.NotContains(t, bus.types(), events.EventTypeAuditCompleted)
}

func TestRunCancellation(t *testing.T) {
	t.Run("persisted cancel flag stops at the next boundary", func(t *testing.T) {
		store := &memoryStore{}
		bus := &recordingBus{}
		gen, comp, aud, test, dep := newScripted()
		gen.onProcess = func(*stages.Context) { store.cancelRequested = true }

		o := New(store, bus)
		require.NoError(t, o.Run(context.Background(), &stages.Context{WorkflowID: "wf-1"}, fivePipeline(gen, comp, aud, test, dep)))

		assert.True(t, store.cancelled)
		assert.False(t, store.completed)
		assert.Equal(t, 1, gen.calls)
		assert.Zero(t, comp.calls, "compilation never runs after cancellation")

		types := bus.types()
		assert.Equal(t, events.EventTypeWorkflowCancelled, types[len(types)-1])
		assert.Contains(t, types, events.EventTypeGenerationCompleted)
	})

	t.Run("context cancellation stops before the first stage", func(t *testing.T) {
		store := &memoryStore{}
		gen, comp, aud, test, dep := newScripted()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		o := New(store, &recordingBus{})
		require.NoError(t, o.Run(ctx, &stages.Context{WorkflowID: "wf-1"}, fivePipeline(gen, comp, aud, test, dep)))
		assert.True(t, store.cancelled)
		assert.Zero(t, gen.calls)
	})
}

func TestRunValidationFailure(t *testing.T) {
	store := &memoryStore{}
	gen, comp, aud, test, dep := newScripted()
	gen.validateErr = &stages.ValidationError{Stage: "generation", Reason: "description too short"}

	o := New(store, &recordingBus{})
	err := o.Run(context.Background(), &stages.Context{WorkflowID: "wf-1"}, fivePipeline(gen, comp, aud, test, dep))
	require.Error(t, err)
	assert.Zero(t, gen.calls, "process never runs when validation fails")
	assert.Contains(t, store.failed, "generation stage failed")
}

func TestBuildPipeline(t *testing.T) {
	gen, comp, aud, test, dep := newScripted()

	t.Run("full pipeline has five entries", func(t *testing.T) {
		pipeline := BuildPipeline(gen, comp, aud, test, dep, Options{})
		require.Len(t, pipeline, 5)
		assert.True(t, pipeline[2].NonFatal, "audit is advisory")
		assert.True(t, pipeline[3].NonFatal, "testing is advisory")
		assert.False(t, pipeline[4].NonFatal)
		assert.Equal(t, 100, pipeline[4].ProgressAfter)
	})

	t.Run("skip flags remove entries", func(t *testing.T) {
		pipeline := BuildPipeline(gen, comp, aud, test, dep, Options{SkipAudit: true, SkipTesting: true})
		require.Len(t, pipeline, 3)
		assert.Equal(t, "generation", pipeline[0].Stage.Name())
		assert.Equal(t, "compilation", pipeline[1].Stage.Name())
		assert.Equal(t, "deployment", pipeline[2].Stage.Name())
	})
}

func TestMonotoneProgress(t *testing.T) {
	store := &memoryStore{}
	gen, comp, aud, test, dep := newScripted()

	o := New(store, &recordingBus{})
	require.NoError(t, o.Run(context.Background(), &stages.Context{WorkflowID: "wf-1"}, fivePipeline(gen, comp, aud, test, dep)))

	for i := 1; i < len(store.progress); i++ {
		assert.GreaterOrEqual(t, store.progress[i], store.progress[i-1])
	}
}
