package agent

import (
	"context"
	"sync"
)

// Mock is a lightweight in-memory agent useful for tests and examples. It
// records every activation in order and can be configured to fail. All
// methods are goroutine-safe so it can be driven by simultaneous activation.
type Mock struct {
	id int

	mu       sync.Mutex
	steps    int
	advances int
	stages   []string
	stepErr  error
}

// NewMock constructs a Mock with the given unique id.
func NewMock(id int) *Mock {
	return &Mock{id: id}
}

// UniqueID implements core.Agent.
func (m *Mock) UniqueID() int { return m.id }

// FailWith makes every subsequent Step return err.
func (m *Mock) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stepErr = err
}

// Step implements core.Agent; counts the activation.
func (m *Mock) Step(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stepErr != nil {
		return m.stepErr
	}
	m.steps++
	return nil
}

// Advance implements core.Advancer; counts the advance phase.
func (m *Mock) Advance(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advances++
	return nil
}

// StageStep implements core.StagedAgent; records the stage name.
func (m *Mock) StageStep(_ context.Context, stage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stepErr != nil {
		return m.stepErr
	}
	m.stages = append(m.stages, stage)
	return nil
}

// Steps returns the number of completed Step activations.
func (m *Mock) Steps() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.steps
}

// Advances returns the number of completed Advance activations.
func (m *Mock) Advances() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.advances
}

// Stages returns a copy of the recorded stage names in activation order.
func (m *Mock) Stages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.stages))
	copy(out, m.stages)
	return out
}
