package generation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Sidharth-A-691/code-generator/internal/agent"
	"github.com/Sidharth-A-691/code-generator/internal/logger"
	"github.com/Sidharth-A-691/code-generator/internal/planner"
	"github.com/Sidharth-A-691/code-generator/internal/runs"
	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

// message returned by the synchronous phase of a generation call
const startedMessage = "Code generation process started successfully in the background. Check server logs for progress."

// PlanCreator produces a validated scaffolding plan.
type PlanCreator interface {
	CreatePlan(ctx context.Context, req planner.Request) (*planner.ScaffoldingPlan, error)
}

// PlanExecutor drives a plan against the output root.
type PlanExecutor interface {
	Execute(ctx context.Context, root *workspace.Root, req agent.ExecuteRequest) (*agent.Result, error)
}

// Request carries one generation call.
type Request struct {
	UserStories string
	ProjectType string
	Language    string
}

// Result is the synchronous response: the designs plus the run id the
// caller can poll while the agent works in the background.
type Result struct {
	Message         string
	HighLevelDesign string
	LowLevelDesign  string
	RunID           string
}

// Service sequences planning and background plan execution. Planning happens
// on the caller's request; execution runs on its own goroutine, serialized
// against the shared output root, and reports through the run store.
type Service struct {
	planner PlanCreator
	agent   PlanExecutor
	root    *workspace.Root
	runs    *runs.Store
	timeout time.Duration

	// one plan executes at a time against the shared output root
	execMu sync.Mutex
}

func New(planCreator PlanCreator, executor PlanExecutor, root *workspace.Root, store *runs.Store, timeout time.Duration) *Service {
	return &Service{
		planner: planCreator,
		agent:   executor,
		root:    root,
		runs:    store,
		timeout: timeout,
	}
}

// Generate runs the synchronous phase: create and validate a plan, record a
// pending run, hand the plan to the background executor. Planning failures
// propagate and leave no run record behind.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	plan, err := s.planner.CreatePlan(ctx, planner.Request{
		UserStories: req.UserStories,
		ProjectType: req.ProjectType,
		Language:    req.Language,
	})
	if err != nil {
		return nil, err
	}

	run := s.runs.Create(req.ProjectType, req.Language, len(plan.Plan))

	// the run outlives the HTTP request, so its context does not descend
	// from the request context
	execCtx, cancel := context.WithCancel(context.Background())
	s.runs.SetCancel(run.ID, cancel)

	go s.execute(execCtx, cancel, run.ID, plan)

	logger.Info("generation run accepted",
		"run_id", run.ID,
		"project_type", req.ProjectType,
		"language", req.Language,
		"steps", len(plan.Plan),
	)

	return &Result{
		Message:         startedMessage,
		HighLevelDesign: plan.HighLevelDesign,
		LowLevelDesign:  plan.LowLevelDesign,
		RunID:           run.ID,
	}, nil
}

// background phase of one run
func (s *Service) execute(ctx context.Context, cancel context.CancelFunc, runID string, plan *planner.ScaffoldingPlan) {
	defer cancel()

	s.execMu.Lock()
	defer s.execMu.Unlock()

	// the run may have been cancelled while queued behind another run
	if ctx.Err() != nil {
		s.runs.MarkCancelled(runID)

		return
	}

	s.runs.MarkRunning(runID)
	logger.Info("plan execution started", "run_id", runID, "steps", len(plan.Plan))

	execCtx := ctx

	if s.timeout > 0 {
		var cancelTimeout context.CancelFunc

		execCtx, cancelTimeout = context.WithTimeout(ctx, s.timeout)
		defer cancelTimeout()
	}

	result, err := s.agent.Execute(execCtx, s.root, agent.ExecuteRequest{
		HighLevelDesign: plan.HighLevelDesign,
		LowLevelDesign:  plan.LowLevelDesign,
		Plan:            plan.Plan,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			s.runs.MarkCancelled(runID)
			logger.Warn("plan execution cancelled", "run_id", runID)
		case errors.Is(err, context.DeadlineExceeded):
			budgetErr := fmt.Errorf("plan execution exceeded the %s wall-clock budget", s.timeout)
			s.runs.MarkFailed(runID, budgetErr)
			logger.ErrorErr(budgetErr, "plan execution timed out", "run_id", runID)
		default:
			s.runs.MarkFailed(runID, err)
			logger.ErrorErr(err, "plan execution failed", "run_id", runID)
		}

		return
	}

	s.runs.MarkCompleted(runID, result.Summary, result.ToolCalls)
	logger.Info("plan execution completed",
		"run_id", runID,
		"iterations", result.Iterations,
		"tool_calls", result.ToolCalls,
	)
}
