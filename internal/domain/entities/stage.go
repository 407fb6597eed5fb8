package entities

// Stage is a step of the production workflow. Stages are totally ordered by
// their position in Stages; the first is initial and the last is terminal.
type Stage string

const (
	StageNotStarted   Stage = "Not started yet"
	StageDesign       Stage = "Design"
	StagePositives    Stage = "Positives"
	StagePrinting     Stage = "Printing"
	StageQualityCheck Stage = "Quality Check"
	StageDelivery     Stage = "Delivery"
	StageCompleted    Stage = "Completed"
)

// Stages lists every production stage in workflow order.
var Stages = []Stage{
	StageNotStarted,
	StageDesign,
	StagePositives,
	StagePrinting,
	StageQualityCheck,
	StageDelivery,
	StageCompleted,
}

// Order status labels, derived from the stage.
const (
	OrderStatusInProgress = "In Progress"
	OrderStatusCompleted  = "Completed"
)

// StageIndex returns the position of s in Stages, or -1 when s is unknown.
func StageIndex(s Stage) int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

// ParseStage validates a stage name.
func ParseStage(name string) (Stage, bool) {
	s := Stage(name)
	return s, StageIndex(s) >= 0
}

// Valid reports whether s is one of Stages.
func (s Stage) Valid() bool {
	return StageIndex(s) >= 0
}

// IsTerminal reports whether s is the final stage.
func (s Stage) IsTerminal() bool {
	return s == Stages[len(Stages)-1]
}

// Previous returns the stage immediately before s. It is false for the
// initial stage and for unknown stages.
func (s Stage) Previous() (Stage, bool) {
	i := StageIndex(s)
	if i <= 0 {
		return "", false
	}
	return Stages[i-1], true
}

// StatusForStage derives the order status label.
func StatusForStage(s Stage) string {
	if s.IsTerminal() {
		return OrderStatusCompleted
	}
	return OrderStatusInProgress
}

// TargetForIndicatorClick applies the stage picker's selection rule: clicking
// the indicator of the current stage steps back one stage (undo), clicking any
// other indicator targets that stage directly. Jumps are not restricted to
// adjacent stages. The result is false when there is nothing to move to.
func TargetForIndicatorClick(current, clicked Stage) (Stage, bool) {
	if !clicked.Valid() {
		return "", false
	}
	if clicked == current {
		return current.Previous()
	}
	return clicked, true
}
