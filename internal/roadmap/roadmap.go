package roadmap

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"hustlehub-backend/internal/engine"
	"hustlehub-backend/internal/goals"
)

const milestonesPerGoal = 4

// Planner builds roadmap timelines. It carries its own clock so timelines
// are reproducible in tests.
type Planner struct {
	now func() time.Time
}

func New(clock func() time.Time) *Planner {
	if clock == nil {
		clock = time.Now
	}
	return &Planner{now: clock}
}

// Build projects the user's goals onto a dated timeline: four milestones
// per goal plus an unlock item for each catalog purchase the current income
// does not yet cover, sorted by date.
func (p *Planner) Build(userGoals []goals.Goal) []Item {
	now := p.now()
	income := goals.CurrentIncome(userGoals)
	items := []Item{}

	for _, goal := range userGoals {
		items = append(items, p.milestones(goal, now)...)
	}

	for _, purchase := range LifestylePurchases() {
		if income >= purchase.MonthlyIncome {
			continue
		}
		unlock, ok := p.purchaseItem(purchase, userGoals, income)
		if ok {
			items = append(items, unlock)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items
}

func (p *Planner) milestones(goal goals.Goal, now time.Time) []Item {
	target, ok := goal.Target()
	if !ok {
		return nil
	}

	// Months are nominal 30-day blocks, clamped so past-due goals still
	// get a runway of one month.
	monthsToTarget := math.Ceil(target.Sub(now).Hours() / 24 / 30)
	if monthsToTarget < 1 {
		monthsToTarget = 1
	}

	category := string(goal.Category)
	items := make([]Item, 0, milestonesPerGoal)
	for i := 1; i <= milestonesPerGoal; i++ {
		frac := float64(i) / milestonesPerGoal
		amount := goal.CurrentAmount + (goal.TargetAmount-goal.CurrentAmount)*frac
		date := now.Add(time.Duration(monthsToTarget*frac*30*24) * time.Hour)

		items = append(items, Item{
			ID:           fmt.Sprintf("%s-milestone-%d", goal.ID, i),
			Title:        fmt.Sprintf("%s - %d%% Complete", goal.Name, int(frac*100)),
			Amount:       amount,
			Date:         date,
			Type:         TypeMilestone,
			Description:  fmt.Sprintf("Reach $%s in %s", engine.Dollars(amount), goal.Name),
			Completed:    goal.CurrentAmount >= amount,
			Category:     category,
			ActionPlan:   actionPlan(category, amount, goal.CurrentAmount),
			DailyActions: dailyActions(category, amount),
			WeeklyGoals:  weeklyGoals(category, amount),
		})
	}
	return items
}

func (p *Planner) purchaseItem(purchase Purchase, userGoals []goals.Goal, income float64) (Item, bool) {
	// Anchor the unlock to the first income goal that reaches the
	// required level.
	for _, goal := range userGoals {
		if goal.Category != goals.CategoryIncome || goal.TargetAmount < purchase.MonthlyIncome {
			continue
		}
		target, ok := goal.Target()
		if !ok {
			continue
		}
		return Item{
			ID:     "purchase-" + slug(purchase.Name),
			Title:  "Unlock " + purchase.Name,
			Amount: purchase.MonthlyIncome,
			Date:   target,
			Type:   TypePurchase,
			Description: fmt.Sprintf("When you reach $%s/month, you can comfortably afford %s",
				engine.Dollars(purchase.MonthlyIncome), purchase.Name),
			Category:     "Lifestyle",
			ActionPlan:   purchaseActionPlan(purchase.MonthlyIncome, income),
			DailyActions: incomeActions(purchase.MonthlyIncome),
			WeeklyGoals:  incomeWeeklyGoals(purchase.MonthlyIncome),
		}, true
	}
	return Item{}, false
}

func slug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
