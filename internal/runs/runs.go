package runs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status of a generation run.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// reports whether the status accepts no further transitions
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

var (
	ErrNotFound = errors.New("run not found")
	ErrFinished = errors.New("run already finished")
)

// Run records one generation run from plan hand-off to terminal state.
// Kept in memory only; restarting the process forgets past runs.
type Run struct {
	ID          string     `json:"id"`
	ProjectType string     `json:"project_type"`
	Language    string     `json:"language"`
	Status      Status     `json:"status"`
	StepsTotal  int        `json:"steps_total"`
	ToolCalls   int        `json:"tool_calls"`
	Summary     string     `json:"summary,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// Store tracks generation runs in memory. All methods are safe for
// concurrent use; reads get copies so callers never share the live record
// with the background goroutine updating it.
type Store struct {
	mu      sync.RWMutex
	runs    map[string]*Run
	order   []string // creation order, oldest first
	cancels map[string]context.CancelFunc
}

func NewStore() *Store {
	return &Store{
		runs:    make(map[string]*Run),
		cancels: make(map[string]context.CancelFunc),
	}
}

// creates a pending run record and returns a snapshot of it
func (s *Store) Create(projectType, language string, stepsTotal int) *Run {
	run := &Run{
		ID:          uuid.NewString(),
		ProjectType: projectType,
		Language:    language,
		Status:      StatusPending,
		StepsTotal:  stepsTotal,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
	s.mu.Unlock()

	snapshot := *run

	return &snapshot
}

// registers the cancel func that aborts the run's context
func (s *Store) SetCancel(id string, cancel context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[id]; exists {
		s.cancels[id] = cancel
	}
}

// retrieves a snapshot of a run by ID
func (s *Store) Get(id string) (*Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, exists := s.runs[id]
	if !exists {
		return nil, false
	}

	snapshot := *run

	return &snapshot, true
}

// returns snapshots of a window of runs, newest first; offset skips the
// newest runs and limit caps the page size
func (s *Store) List(limit, offset int) []*Run {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || offset < 0 || offset >= len(s.order) {
		return []*Run{}
	}

	result := make([]*Run, 0, limit)

	for i := len(s.order) - 1 - offset; i >= 0 && len(result) < limit; i-- {
		snapshot := *s.runs[s.order[i]]
		result = append(result, &snapshot)
	}

	return result
}

// returns the number of tracked runs
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.runs)
}

// marks a pending run as running
func (s *Store) MarkRunning(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, exists := s.runs[id]
	if !exists || run.Status != StatusPending {
		return
	}

	now := time.Now().UTC()
	run.Status = StatusRunning
	run.StartedAt = &now
}

// marks a run as completed with the agent's summary
func (s *Store) MarkCompleted(id, summary string, toolCalls int) {
	s.finish(id, func(run *Run) {
		run.Status = StatusCompleted
		run.Summary = summary
		run.ToolCalls = toolCalls
	})
}

// marks a run as failed with the terminal error
func (s *Store) MarkFailed(id string, err error) {
	s.finish(id, func(run *Run) {
		run.Status = StatusFailed
		if err != nil {
			run.Error = err.Error()
		}
	})
}

// marks a run as cancelled
func (s *Store) MarkCancelled(id string) {
	s.finish(id, func(run *Run) {
		run.Status = StatusCancelled
	})
}

// applies a terminal transition unless the run is already terminal
func (s *Store) finish(id string, apply func(*Run)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, exists := s.runs[id]
	if !exists || run.Status.Terminal() {
		return
	}

	apply(run)

	now := time.Now().UTC()
	run.FinishedAt = &now

	delete(s.cancels, id)
}

// Cancel aborts an in-flight run: the record flips to cancelled immediately
// and the run's context is cancelled so the agent loop stops at its next
// checkpoint. Terminal runs return ErrFinished.
func (s *Store) Cancel(id string) (*Run, error) {
	s.mu.Lock()

	run, exists := s.runs[id]
	if !exists {
		s.mu.Unlock()

		return nil, ErrNotFound
	}

	if run.Status.Terminal() {
		s.mu.Unlock()

		return nil, ErrFinished
	}

	run.Status = StatusCancelled
	now := time.Now().UTC()
	run.FinishedAt = &now

	cancel := s.cancels[id]
	delete(s.cancels, id)

	snapshot := *run
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	return &snapshot, nil
}

// CancelActive aborts every pending or running run; used during shutdown.
// Returns how many runs were cancelled.
func (s *Store) CancelActive() int {
	s.mu.Lock()

	var cancels []context.CancelFunc

	cancelled := 0
	now := time.Now().UTC()

	for id, run := range s.runs {
		if run.Status.Terminal() {
			continue
		}

		run.Status = StatusCancelled
		finished := now
		run.FinishedAt = &finished
		cancelled++

		if cancel, ok := s.cancels[id]; ok {
			cancels = append(cancels, cancel)
			delete(s.cancels, id)
		}
	}

	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}

	return cancelled
}
