package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrForbiddenRole      = errors.New("role not allowed to perform this operation")
	ErrInvalidStage       = errors.New("invalid stage")
	ErrNoTransitionTarget = errors.New("no stage to move to")
	ErrTransitionInFlight = errors.New("a stage transition for this order is already in progress")
	ErrInvalidTransfer    = errors.New("invalid version transfer")
)

// ValidationError is a precondition the caller could have checked itself.
// It is reported synchronously and never retried.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failed read or write against the store.
type PersistenceError struct {
	Op  string
	ID  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// RecordResult is the outcome of one update inside a batch. Err is nil when
// the update was applied.
type RecordResult struct {
	ID  string
	Err error
}

// PartialBatchFailure reports a batch where at least one update failed.
// Updates that succeeded stay applied; Results lists every record so the
// caller can tell which ones.
type PartialBatchFailure struct {
	Attempted int
	Failed    int
	Results   []RecordResult
	Err       error
}

func (e *PartialBatchFailure) Error() string {
	return fmt.Sprintf("batch update: %d of %d updates failed: %v", e.Failed, e.Attempted, e.Err)
}

func (e *PartialBatchFailure) Unwrap() error {
	return e.Err
}

// Succeeded returns the IDs of the records that were updated.
func (e *PartialBatchFailure) Succeeded() []string {
	out := make([]string, 0, e.Attempted-e.Failed)
	for _, r := range e.Results {
		if r.Err == nil {
			out = append(out, r.ID)
		}
	}
	return out
}
