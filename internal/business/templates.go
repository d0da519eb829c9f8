package business

import "github.com/google/uuid"

// StarterTemplates are the two demo ventures a fresh account gets, matching
// the dashboard's original defaults.
func StarterTemplates() []Model {
	return []Model{
		{
			ID:          uuid.NewString(),
			Name:        "Content Creation & Personal Brand",
			Type:        TypeContent,
			IncomeModel: "$500/video + $2000/month sponsorships",
			Status:      StatusInProgress,
			Description: "YouTube, TikTok, Instagram content with brand partnerships",
			Tasks: []Task{
				{ID: uuid.NewString(), Text: "Create 3 pieces of content daily"},
				{ID: uuid.NewString(), Text: "Reach out to 5 brands for partnerships"},
				{ID: uuid.NewString(), Text: "Analyze top performing content"},
			},
		},
		{
			ID:          uuid.NewString(),
			Name:        "High-Ticket Consulting",
			Type:        TypeConsulting,
			IncomeModel: "$5000/client/month",
			Status:      StatusNotStarted,
			Description: "Business strategy consulting for entrepreneurs",
			Tasks: []Task{
				{ID: uuid.NewString(), Text: "Create premium service packages"},
				{ID: uuid.NewString(), Text: "Build authority through content"},
				{ID: uuid.NewString(), Text: "Network with high-value prospects"},
			},
		},
	}
}

// Blank is the empty venture the Add Model button creates.
func Blank() Model {
	return Model{
		ID:          uuid.NewString(),
		Name:        "New Business Model",
		Type:        TypeOther,
		IncomeModel: "$0/month",
		Status:      StatusNotStarted,
		Description: "Describe your business model here...",
		Tasks:       []Task{},
	}
}
