// Package groups manages accountability circles.
package groups

type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

// Member is one circle participant.
type Member struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Avatar   string  `json:"avatar,omitempty"`
	Revenue  float64 `json:"revenue"`
	Location string  `json:"location"`
	Role     Role    `json:"role"`
}

// Circle is one accountability group.
type Circle struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MemberCount int      `json:"memberCount"`
	MaxMembers  int      `json:"maxMembers"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	IsPrivate   bool     `json:"isPrivate"`
	MonthlyFee  float64  `json:"monthlyFee"`
	CreatedBy   string   `json:"createdBy"`
	Members     []Member `json:"members"`
}

// AvailableCircles is the discovery list shown to users without a circle.
func AvailableCircles() []Circle {
	return []Circle{
		{
			ID:          "1",
			Name:        "NYC Entrepreneurs",
			Description: "High-performing entrepreneurs in New York City pushing 6-figure goals",
			MemberCount: 8,
			MaxMembers:  10,
			Location:    "New York, NY",
			Category:    "Location-based",
			CreatedBy:   "sarah-chen",
			Members: []Member{
				{
					ID:       "1",
					Name:     "Sarah Chen",
					Avatar:   "/placeholder.svg?height=40&width=40",
					Revenue:  125000,
					Location: "NYC",
					Role:     RoleOwner,
				},
				{
					ID:       "2",
					Name:     "Marcus Johnson",
					Revenue:  95000,
					Location: "NYC",
					Role:     RoleMember,
				},
			},
		},
		{
			ID:          "2",
			Name:        "SaaS Founders",
			Description: "Software entrepreneurs building scalable businesses",
			MemberCount: 6,
			MaxMembers:  8,
			Location:    "Remote",
			Category:    "Industry",
			IsPrivate:   true,
			CreatedBy:   "alex-kim",
			Members:     []Member{},
		},
		{
			ID:          "3",
			Name:        "Content Creators",
			Description: "Building audiences and monetizing content across platforms",
			MemberCount: 12,
			MaxMembers:  15,
			Location:    "Global",
			Category:    "Industry",
			CreatedBy:   "emma-davis",
			Members:     []Member{},
		},
	}
}

// FindCircle looks up a discovery circle by id.
func FindCircle(id string) (Circle, bool) {
	for _, c := range AvailableCircles() {
		if c.ID == id {
			return c, true
		}
	}
	return Circle{}, false
}
