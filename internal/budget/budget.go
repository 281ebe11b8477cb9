// Package budget implements the rolling monthly spending tracker.
//
// The tracker holds a single budget value for the live month: a goal, a
// running spending total and the "YYYY-MM" period the total belongs to. The
// total is maintained incrementally by the ledger as expense records are
// created and deleted; it is a counter, never recomputed from the full
// transaction list.
package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tallybook/internal/dateutils"
	"tallybook/internal/models"
)

// Level classifies how close current spending is to the monthly goal.
type Level string

const (
	// LevelNone means no positive goal is configured.
	LevelNone Level = "no_budget"
	// LevelNormal means spending is below half of the goal.
	LevelNormal Level = "normal"
	// LevelTight means spending has reached half of the goal.
	LevelTight Level = "tight"
	// LevelWarning means spending has reached 80% of the goal.
	LevelWarning Level = "warning"
	// LevelOver means spending has reached or passed the goal.
	LevelOver Level = "over"
)

// Ratio thresholds between consecutive status levels. Each tier is half-open:
// reaching a threshold exactly moves spending into the higher tier.
var (
	tightThreshold   = decimal.NewFromFloat(0.5)
	warningThreshold = decimal.NewFromFloat(0.8)
	overThreshold    = decimal.NewFromInt(1)
)

// Tracker maintains the rolling budget counter for the live month.
type Tracker struct {
	budget models.Budget
}

// NewTracker wraps an existing budget value, typically loaded from storage.
// The zero value of models.Budget is a valid starting state for a fresh
// install: no goal, no spending, no period.
func NewTracker(b models.Budget) *Tracker {
	return &Tracker{budget: b}
}

// Budget returns the current budget value.
func (t *Tracker) Budget() models.Budget {
	return t.budget
}

// SetGoal updates the monthly goal. When the stored period differs from the
// month of now this is a period rollover: the whole budget value is replaced,
// spending resets to zero and the period is re-stamped. Spending never
// carries over across months. When the period matches, only the goal changes.
func (t *Tracker) SetGoal(amount decimal.Decimal, now time.Time) {
	current := dateutils.MonthKey(now)
	if t.budget.Month != current {
		t.budget = models.Budget{Goal: amount, Spent: decimal.Zero, Month: current}
		return
	}
	t.budget.Goal = amount
}

// AddSpending increases the running total. Amounts are not validated here;
// the ledger only forwards expense amounts recorded against the live month.
func (t *Tracker) AddSpending(amount decimal.Decimal) {
	t.budget.Spent = t.budget.Spent.Add(amount)
}

// ReduceSpending decreases the running total, floored at zero.
func (t *Tracker) ReduceSpending(amount decimal.Decimal) {
	reduced := t.budget.Spent.Sub(amount)
	if reduced.IsNegative() {
		reduced = decimal.Zero
	}
	t.budget.Spent = reduced
}

// Status classifies current spending against the goal and returns the level
// together with a human-readable message. A goal of zero or below is the
// distinct "no budget configured" state rather than an error.
func (t *Tracker) Status() (Level, string) {
	goal := t.budget.Goal
	spent := t.budget.Spent

	if goal.LessThanOrEqual(decimal.Zero) {
		return LevelNone, "No monthly budget configured. Set a goal to start tracking your spending."
	}

	ratio := spent.Div(goal)
	percent := ratio.Mul(decimal.NewFromInt(100)).StringFixed(1)

	switch {
	case ratio.LessThan(tightThreshold):
		return LevelNormal, fmt.Sprintf(
			"Current spending %s is well within budget %s (%s%%). Keep up the good work!",
			spent.StringFixed(2), goal.StringFixed(2), percent)
	case ratio.LessThan(warningThreshold):
		return LevelTight, fmt.Sprintf(
			"Current spending %s has passed half of budget %s (%s%%). Keep an eye on discretionary expenses.",
			spent.StringFixed(2), goal.StringFixed(2), percent)
	case ratio.LessThan(overThreshold):
		remaining := goal.Sub(spent)
		return LevelWarning, fmt.Sprintf(
			"Warning: spending %s is at %s%% of budget %s. Only %s remains for this month.",
			spent.StringFixed(2), percent, goal.StringFixed(2), remaining.StringFixed(2))
	default:
		overage := spent.Sub(goal)
		return LevelOver, fmt.Sprintf(
			"Warning: spending %s exceeds budget %s by %s (%s%%). Consider reducing expenses.",
			spent.StringFixed(2), goal.StringFixed(2), overage.StringFixed(2), percent)
	}
}
