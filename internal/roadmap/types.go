// Package roadmap projects goals and lifestyle purchases onto a dated
// timeline with concrete action plans per milestone.
package roadmap

import "time"

type ItemType string

const (
	TypeMilestone ItemType = "milestone"
	TypePurchase  ItemType = "purchase"
)

// Item is one entry on the timeline.
type Item struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Type         ItemType  `json:"type"`
	Description  string    `json:"description"`
	Completed    bool      `json:"completed"`
	Category     string    `json:"category"`
	ActionPlan   []string  `json:"actionPlan"`
	DailyActions []string  `json:"dailyActions"`
	WeeklyGoals  []string  `json:"weeklyGoals"`
}

// Purchase is a lifestyle item that unlocks at a monthly income level.
type Purchase struct {
	Name             string   `json:"name"`
	Cost             float64  `json:"cost"`
	MonthlyIncome    float64  `json:"monthlyIncome"`
	Description      string   `json:"description"`
	LifestyleUnlocks []string `json:"lifestyleUnlocks"`
}
