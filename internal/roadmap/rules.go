package roadmap

import (
	"fmt"

	"hustlehub-backend/internal/engine"
)

// Band tables for the income action plans. Each picks the first band whose
// threshold the value exceeds; the caller falls back to a generic line when
// none matches or the goal is not an income goal.

var actionPlanBands = []engine.Band[[]string]{
	{Above: 5000, Value: []string{
		"Launch premium consulting service ($3,000-5,000/client)",
		"Create high-ticket online course ($1,000-2,000)",
		"Secure 2-3 enterprise clients with retainer agreements",
		"Build strategic partnerships for revenue sharing",
		"Develop multiple income streams to reduce risk",
	}},
	{Above: 2000, Value: []string{
		"Scale current services with premium pricing",
		"Add 3-5 new clients per month at higher rates",
		"Create recurring revenue streams",
		"Optimize conversion funnel for better ROI",
		"Expand into adjacent markets or services",
	}},
}

var actionPlanBase = []string{
	"Increase rates for existing services by 20-30%",
	"Add 1-2 new clients per month",
	"Improve service delivery for client retention",
	"Ask for referrals from satisfied clients",
	"Create upsell opportunities for current clients",
}

var dailyActionBands = []engine.Band[[]string]{
	{Above: 15000, Value: []string{
		"Make 20 cold calls to enterprise prospects",
		"Send 15 personalized LinkedIn messages to C-level executives",
		"Create 1 piece of thought leadership content",
		"Follow up with 10 warm leads",
		"Research and identify 5 new high-value prospects",
	}},
	{Above: 8000, Value: []string{
		"Make 15 cold calls to qualified prospects",
		"Send 10 personalized outreach messages",
		"Post 2 pieces of valuable content",
		"Follow up with 5 warm leads",
		"Engage with 20 potential clients on social media",
	}},
}

var dailyActionBase = []string{
	"Make 10 cold calls or send 10 emails",
	"Post 1 piece of valuable content",
	"Follow up with 3 warm leads",
	"Engage with 15 potential clients",
	"Work on one business development task",
}

var weeklyGoalBands = []engine.Band[[]string]{
	{Above: 15000, Value: []string{
		"Close 1 high-value deal ($3,000+)",
		"Book 5 discovery calls with qualified prospects",
		"Publish 1 case study or success story",
		"Attend 2 networking events or industry meetups",
		"Review and optimize sales process",
	}},
	{Above: 8000, Value: []string{
		"Close 2-3 medium-value deals",
		"Book 8-10 discovery calls",
		"Create 1 piece of long-form content",
		"Attend 1 networking event",
		"Follow up with all prospects from previous week",
	}},
}

var weeklyGoalBase = []string{
	"Close 1-2 new clients",
	"Book 5 discovery calls",
	"Create weekly content calendar",
	"Network with 10 new people",
	"Review and improve service offerings",
}

var incomeActionBands = []engine.Band[[]string]{
	{Above: 20000, Value: []string{
		"Focus on enterprise sales and high-ticket services",
		"Build strategic partnerships and joint ventures",
		"Create scalable business systems",
		"Hire team members to increase capacity",
		"Develop multiple revenue streams",
	}},
	{Above: 15000, Value: []string{
		"Target mid-market clients with higher budgets",
		"Increase service prices by 30-50%",
		"Create premium service tiers",
		"Build recurring revenue model",
		"Focus on client retention and upsells",
	}},
}

var incomeActionBase = []string{
	"Increase current service rates",
	"Add 2-3 new clients per month",
	"Improve service delivery efficiency",
	"Ask for referrals consistently",
	"Create additional service offerings",
}

var incomeWeeklyBands = []engine.Band[[]string]{
	{Above: 20000, Value: []string{
		"Close 1 enterprise deal or secure major partnership",
		"Book 3-5 high-value prospect meetings",
		"Create 1 piece of authority-building content",
		"Review and optimize business operations",
		"Plan next week's strategic initiatives",
	}},
	{Above: 15000, Value: []string{
		"Close 1-2 high-value deals",
		"Book 5-8 qualified prospect calls",
		"Create premium content showcasing expertise",
		"Follow up with all active prospects",
		"Optimize pricing and service packages",
	}},
}

var incomeWeeklyBase = []string{
	"Close 2-3 new clients",
	"Book 8-10 discovery calls",
	"Create valuable content for audience",
	"Network with potential clients",
	"Improve service delivery process",
}

func pickOr(bands []engine.Band[[]string], base []string, value float64) []string {
	if v, ok := engine.Pick(bands, value); ok {
		return v
	}
	return base
}

func actionPlan(category string, targetAmount, currentAmount float64) []string {
	if category != "Income" {
		return []string{"Define specific action plan for this goal"}
	}
	// The gap is spread across a nominal 12-month runway.
	monthlyGap := (targetAmount - currentAmount) / 12
	return pickOr(actionPlanBands, actionPlanBase, monthlyGap)
}

func dailyActions(category string, targetAmount float64) []string {
	if category != "Income" {
		return []string{"Complete daily actions toward this goal"}
	}
	return pickOr(dailyActionBands, dailyActionBase, targetAmount)
}

func weeklyGoals(category string, targetAmount float64) []string {
	if category != "Income" {
		return []string{"Complete weekly milestones for this goal"}
	}
	return pickOr(weeklyGoalBands, weeklyGoalBase, targetAmount)
}

func purchaseActionPlan(requiredIncome, currentIncome float64) []string {
	gap := requiredIncome - currentIncome
	return []string{
		fmt.Sprintf("Increase monthly income by $%s", engine.Dollars(gap)),
		"Build emergency fund (6 months expenses)",
		"Maintain debt-to-income ratio below 30%",
		"Establish excellent credit score (750+)",
		"Create separate savings fund for this purchase",
	}
}

func incomeActions(targetIncome float64) []string {
	return pickOr(incomeActionBands, incomeActionBase, targetIncome)
}

func incomeWeeklyGoals(targetIncome float64) []string {
	return pickOr(incomeWeeklyBands, incomeWeeklyBase, targetIncome)
}
