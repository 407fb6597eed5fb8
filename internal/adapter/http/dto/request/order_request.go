package request

import (
	"errors"
	"strings"
	"time"

	"letterpress_ops/internal/domain/entities"
)

var (
	ErrInvalidStageRequest = errors.New("exactly one of target_stage, clicked_stage or undo must be set")
	ErrInvalidDeadlineDate = errors.New("deadline_date must be YYYY-MM-DD or RFC3339")
)

type StageMode int

const (
	StageModeTarget StageMode = iota
	StageModeIndicator
	StageModeUndo
)

// StageChangeRequest moves an order. TargetStage jumps straight to a stage,
// ClickedStage applies the progress indicator rule, Undo steps back one stage.
type StageChangeRequest struct {
	TargetStage  string `json:"target_stage"`
	ClickedStage string `json:"clicked_stage"`
	Undo         bool   `json:"undo"`
}

// Resolve returns the mode and the named stage (empty for undo).
func (r StageChangeRequest) Resolve() (StageMode, entities.Stage, error) {
	target := strings.TrimSpace(r.TargetStage)
	clicked := strings.TrimSpace(r.ClickedStage)

	set := 0
	for _, b := range []bool{target != "", clicked != "", r.Undo} {
		if b {
			set++
		}
	}
	if set != 1 {
		return 0, "", ErrInvalidStageRequest
	}

	switch {
	case r.Undo:
		return StageModeUndo, "", nil
	case target != "":
		return StageModeTarget, entities.Stage(target), nil
	default:
		return StageModeIndicator, entities.Stage(clicked), nil
	}
}

type AssignmentRequest struct {
	StaffID      string `json:"staff_id" binding:"required"`
	DeadlineDate string `json:"deadline_date" binding:"required"`
}

func (r AssignmentRequest) ResolveDeadline() (time.Time, error) {
	raw := strings.TrimSpace(r.DeadlineDate)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDeadlineDate
}
