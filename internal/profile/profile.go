// Package profile stores the public entrepreneur profile.
package profile

import "github.com/shopspring/decimal"

// Profile is the user's public card.
type Profile struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Avatar         string         `json:"avatar,omitempty"`
	Bio            string         `json:"bio"`
	Location       string         `json:"location"`
	BusinessModel  string         `json:"businessModel"`
	Website        string         `json:"website,omitempty"`
	MonthlyRevenue float64        `json:"monthlyRevenue"`
	TotalEarned    float64        `json:"totalEarned"`
	JoinedAt       string         `json:"joinedAt"`
	Verified       bool           `json:"verified"`
	Rank           int            `json:"rank"`
	Streak         int            `json:"streak"`
	GroupsCount    int            `json:"groupsCount"`
	Achievements   []Badge        `json:"achievements"`
	RevenueHistory []RevenueEntry `json:"revenueHistory"`
}

// Badge is an unlocked profile achievement.
type Badge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  string `json:"unlockedAt"`
	Rarity      string `json:"rarity"`
}

// RevenueEntry is one month of reported revenue.
type RevenueEntry struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// GrowthRate compares the last two history entries as a percentage.
func (p Profile) GrowthRate() float64 {
	n := len(p.RevenueHistory)
	if n < 2 {
		return 0
	}
	previous := p.RevenueHistory[n-2].Amount
	if previous == 0 {
		return 0
	}
	prev := decimal.NewFromFloat(previous)
	cur := decimal.NewFromFloat(p.RevenueHistory[n-1].Amount)
	pct, _ := cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}

// Default seeds a fresh account with the demo profile.
func Default(email string) Profile {
	return Profile{
		ID:             "current-user",
		Name:           "Alex Thompson",
		Email:          email,
		Avatar:         "/placeholder.svg?height=120&width=120",
		Bio:            "Serial entrepreneur building the future of digital marketing. Passionate about helping others scale their businesses through proven systems and strategies.",
		Location:       "Austin, TX",
		BusinessModel:  "Digital Marketing Agency",
		Website:        "https://alexthompson.com",
		MonthlyRevenue: 95000,
		TotalEarned:    890000,
		JoinedAt:       "2024-01-15",
		Verified:       true,
		Rank:           8,
		Streak:         12,
		GroupsCount:    3,
		Achievements: []Badge{
			{
				ID:          "1",
				Title:       "First 50K",
				Description: "Reached $50K monthly revenue",
				Icon:        "💰",
				UnlockedAt:  "2024-03-15",
				Rarity:      "rare",
			},
			{
				ID:          "2",
				Title:       "Community Builder",
				Description: "Joined 3+ groups",
				Icon:        "👥",
				UnlockedAt:  "2024-04-01",
				Rarity:      "common",
			},
			{
				ID:          "3",
				Title:       "Streak Keeper",
				Description: "Maintained 10+ day streak",
				Icon:        "🔥",
				UnlockedAt:  "2024-05-20",
				Rarity:      "rare",
			},
		},
		RevenueHistory: []RevenueEntry{
			{Month: "Jan 2024", Amount: 45000},
			{Month: "Feb 2024", Amount: 52000},
			{Month: "Mar 2024", Amount: 58000},
			{Month: "Apr 2024", Amount: 67000},
			{Month: "May 2024", Amount: 78000},
			{Month: "Jun 2024", Amount: 95000},
		},
	}
}
