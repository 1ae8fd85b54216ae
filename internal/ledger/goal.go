package ledger

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"moneywise/internal/domain"
)

const maxGoalNameLen = 100

// MaxGoalAmount caps goal targets and saved amounts so totals stay within int64.
const MaxGoalAmount int64 = 10_000_000

// NewGoal validates and builds a savings goal. SavedAmount above the target
// is allowed. The ID is left for the caller to assign.
func NewGoal(name string, target, saved int64, deadline time.Time) (domain.SavingsGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxGoalNameLen || deadline.IsZero() {
		return domain.SavingsGoal{}, ErrInvalidGoal
	}
	if target <= 0 || saved < 0 || target > MaxGoalAmount || saved > MaxGoalAmount {
		return domain.SavingsGoal{}, ErrInvalidAmount
	}
	return domain.SavingsGoal{
		Name:         name,
		TargetAmount: target,
		SavedAmount:  saved,
		Deadline:     deadline,
	}, nil
}

// GoalProgress is the derived progress of one goal
type GoalProgress struct {
	Percent   int64 `json:"percent"`
	Remaining int64 `json:"remaining"`
	DaysLeft  int   `json:"days_left"` // Negative once the deadline has passed
}

// Progress computes how far a goal is from its target as of now.
func Progress(g domain.SavingsGoal, now time.Time) GoalProgress {
	return GoalProgress{
		Percent:   Percent(g.SavedAmount, g.TargetAmount),
		Remaining: max(g.TargetAmount-g.SavedAmount, 0),
		DaysLeft:  int(math.Ceil(g.Deadline.Sub(now).Hours() / 24)),
	}
}

// GoalTotals aggregates all goals
type GoalTotals struct {
	Saved   int64 `json:"saved"`
	Target  int64 `json:"target"`
	Percent int64 `json:"percent"`
}

// TotalProgress sums saved and target amounts across goals.
func TotalProgress(goals []domain.SavingsGoal) GoalTotals {
	var t GoalTotals
	for _, g := range goals {
		t.Saved += g.SavedAmount
		t.Target += g.TargetAmount
	}
	t.Percent = Percent(t.Saved, t.Target)
	return t
}
