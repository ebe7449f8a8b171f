package executor

import (
	"fmt"

	"devsetup/internal/logger"
	"devsetup/internal/task"
)

// Status is the lifecycle state of one task within a run.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Result records the outcome of one executed task. Tasks after the first
// failure never run and therefore produce no Result at all.
type Result struct {
	Task   string
	Status Status
	Err    error
}

// TaskError is the error returned by Run when a task action fails. It names
// the failing task so the operator can resume manually after fixing the cause.
type TaskError struct {
	Task string
	Err  error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %q failed: %v", e.Task, e.Err)
}

func (e *TaskError) Unwrap() error { return e.Err }

// Run executes the selected tasks strictly in selection order, sequentially,
// with fail-fast semantics: the first failing action aborts the whole run and
// no later task executes, cleanup included. Each task is driven through
// pending → running → success/failed; the returned results hold exactly one
// entry per task that actually ran. Already-completed work is never rolled
// back — the executor's only authority is sequencing and abort-on-error.
func Run(cat *task.Catalog, names []string) ([]Result, error) {
	state := make(map[string]Status, len(names))
	for _, name := range names {
		state[name] = StatusPending
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		t, ok := cat.Lookup(name)
		if !ok {
			return results, fmt.Errorf("selection names unknown task %q", name)
		}
		if err := advance(state, name, StatusPending, StatusRunning); err != nil {
			return results, err
		}

		logger.Info("==> %s\n", t.Label)
		if err := t.Action.Run(); err != nil {
			_ = advance(state, name, StatusRunning, StatusFailed)
			results = append(results, Result{Task: name, Status: StatusFailed, Err: err})
			logger.Error("Task %q failed: %v\n", name, err)
			logger.Error("Aborting run; later tasks were not executed.\n")
			return results, &TaskError{Task: name, Err: err}
		}

		if err := advance(state, name, StatusRunning, StatusSuccess); err != nil {
			return results, err
		}
		results = append(results, Result{Task: name, Status: StatusSuccess})
		logger.Success("    %s done\n", t.Name)
	}
	return results, nil
}

// advance performs a validated state transition for a single task. The caller
// supplies the expected prior state so an out-of-order drive of the run
// surfaces as an error instead of silently corrupting the bookkeeping.
func advance(state map[string]Status, name string, from, to Status) error {
	cur, ok := state[name]
	if !ok {
		return fmt.Errorf("unknown task in run state: %q", name)
	}
	if cur != from {
		return fmt.Errorf("invalid transition for %q: expected %s, got %s", name, from, cur)
	}
	if !allowedTransition(from, to) {
		return fmt.Errorf("disallowed transition for %q: %s -> %s", name, from, to)
	}
	state[name] = to
	return nil
}

func allowedTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusRunning
	case StatusRunning:
		return to == StatusSuccess || to == StatusFailed
	default:
		return false
	}
}
