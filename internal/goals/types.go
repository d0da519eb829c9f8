package goals

import (
	"math"
	"time"
)

type Category string

const (
	CategoryIncome   Category = "Income"
	CategorySavings  Category = "Savings"
	CategoryBusiness Category = "Business"
	CategoryPersonal Category = "Personal"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Goal is one user-defined financial target. CurrentAmount may exceed
// TargetAmount; display code clamps, the record does not.
type Goal struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	CurrentAmount float64  `json:"currentAmount"`
	TargetAmount  float64  `json:"targetAmount"`
	TargetDate    string   `json:"targetDate"` // YYYY-MM-DD
	Priority      Priority `json:"priority"`
	Category      Category `json:"category"`
	Description   string   `json:"description"`
}

// Target parses the goal's target date. ok is false for unparseable dates.
func (g Goal) Target() (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", g.TargetDate); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, g.TargetDate); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// DaysLeft until the target date, never below 1 (past-due dates still give a
// usable denominator).
func (g Goal) DaysLeft(now time.Time) int {
	target, ok := g.Target()
	if !ok {
		return 1
	}
	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// MonthsLeft until the target date in 30-day months, never below 1.
func (g Goal) MonthsLeft(now time.Time) int {
	target, ok := g.Target()
	if !ok {
		return 1
	}
	months := int(math.Ceil(target.Sub(now).Hours() / 24 / 30))
	if months < 1 {
		return 1
	}
	return months
}

// ProgressPercent is the display progress, clamped to [0, 100].
func (g Goal) ProgressPercent() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	pct := g.CurrentAmount / g.TargetAmount * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Remaining is the unclamped gap to the target. Negative once overshot.
func (g Goal) Remaining() float64 {
	return g.TargetAmount - g.CurrentAmount
}

// MonthlyNeeded is the funding rate required to close the gap in time.
func (g Goal) MonthlyNeeded(now time.Time) float64 {
	return math.Ceil(g.Remaining() / float64(g.MonthsLeft(now)))
}

// DailyNeeded is the per-day rate required to close the gap in time.
func (g Goal) DailyNeeded(now time.Time) float64 {
	return math.Ceil(g.Remaining() / float64(g.DaysLeft(now)))
}

// TopPriority picks the featured goal: the High-priority goal with the least
// fractional progress, or the first goal when none are High. Nil when empty.
func TopPriority(list []Goal) *Goal {
	if len(list) == 0 {
		return nil
	}
	var best *Goal
	for i := range list {
		g := &list[i]
		if g.Priority != PriorityHigh {
			continue
		}
		if best == nil || fraction(*g) < fraction(*best) {
			best = g
		}
	}
	if best != nil {
		return best
	}
	return &list[0]
}

func fraction(g Goal) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount
}

// HighestIncome returns the income goal with the largest target, if any.
func HighestIncome(list []Goal) *Goal {
	var best *Goal
	for i := range list {
		g := &list[i]
		if g.Category != CategoryIncome {
			continue
		}
		if best == nil || g.TargetAmount > best.TargetAmount {
			best = g
		}
	}
	return best
}

// CurrentIncome is the highest currentAmount across income goals, zero when
// there are none. The generators use it as the "current income" scalar.
func CurrentIncome(list []Goal) float64 {
	income := 0.0
	for _, g := range list {
		if g.Category == CategoryIncome && g.CurrentAmount > income {
			income = g.CurrentAmount
		}
	}
	return income
}
