package leaderboard

// DemoEntries is the community sample shown until real peers report in.
func DemoEntries() []Entry {
	return []Entry{
		{
			ID:               "1",
			Name:             "Sarah Chen",
			Avatar:           "/placeholder.svg?height=40&width=40",
			Revenue:          185000,
			LastMonthRevenue: 165000,
			Location:         "San Francisco, CA",
			BusinessModel:    "SaaS",
			WeeklyWins:       5,
			Streak:           12,
			GroupsCount:      3,
			Rank:             1,
			PreviousRank:     2,
			TotalEarned:      2100000,
			JoinedAt:         "2023-08-15",
		},
		{
			ID:               "2",
			Name:             "Marcus Johnson",
			Revenue:          165000,
			LastMonthRevenue: 155000,
			Location:         "Austin, TX",
			BusinessModel:    "E-commerce",
			WeeklyWins:       4,
			Streak:           8,
			GroupsCount:      2,
			Rank:             2,
			PreviousRank:     1,
			TotalEarned:      1850000,
			JoinedAt:         "2023-07-20",
		},
		{
			ID:               "3",
			Name:             "Elena Rodriguez",
			Revenue:          145000,
			LastMonthRevenue: 125000,
			Location:         "Miami, FL",
			BusinessModel:    "Agency",
			WeeklyWins:       6,
			Streak:           15,
			GroupsCount:      4,
			Rank:             3,
			PreviousRank:     4,
			TotalEarned:      1650000,
			JoinedAt:         "2023-09-10",
		},
		{
			ID:               "4",
			Name:             "David Kim",
			Revenue:          135000,
			LastMonthRevenue: 140000,
			Location:         "Seattle, WA",
			BusinessModel:    "Consulting",
			WeeklyWins:       3,
			Streak:           5,
			GroupsCount:      2,
			Rank:             4,
			PreviousRank:     3,
			TotalEarned:      1420000,
			JoinedAt:         "2023-06-05",
		},
		{
			ID:               "5",
			Name:             "You",
			Revenue:          95000,
			LastMonthRevenue: 85000,
			Location:         "New York, NY",
			BusinessModel:    "Content Creator",
			WeeklyWins:       4,
			Streak:           7,
			GroupsCount:      2,
			Rank:             8,
			PreviousRank:     9,
			TotalEarned:      890000,
			JoinedAt:         "2024-01-15",
		},
	}
}

// CommunityAchievement is a badge shared across the leaderboard.
type CommunityAchievement struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Rarity      string   `json:"rarity"`
	UnlockedBy  []string `json:"unlockedBy"`
}

// DemoAchievements mirrors the community badge set.
func DemoAchievements() []CommunityAchievement {
	return []CommunityAchievement{
		{
			ID:          "1",
			Title:       "First 100K",
			Description: "Reached $100K monthly revenue",
			Icon:        "💰",
			Rarity:      "rare",
			UnlockedBy:  []string{"1", "2", "3", "4", "5"},
		},
		{
			ID:          "2",
			Title:       "Streak Master",
			Description: "Maintained 30-day reporting streak",
			Icon:        "🔥",
			Rarity:      "epic",
			UnlockedBy:  []string{"1", "3"},
		},
		{
			ID:          "3",
			Title:       "Community Leader",
			Description: "Led 3+ groups simultaneously",
			Icon:        "👑",
			Rarity:      "legendary",
			UnlockedBy:  []string{"3"},
		},
		{
			ID:          "4",
			Title:       "Growth Hacker",
			Description: "50%+ month-over-month growth",
			Icon:        "🚀",
			Rarity:      "epic",
			UnlockedBy:  []string{"3"},
		},
	}
}
