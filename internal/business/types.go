package business

// Status is the venture lifecycle. Forward-leaning but not enforced: the user
// may set any status at any time.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusSystemized Status = "Systemized"
)

// Type is the explicit venture category tag, set at creation time. Every
// generator keys off it; model names are free text and never inspected.
type Type string

const (
	TypeSaaS        Type = "SaaS/Software"
	TypeEcommerce   Type = "E-commerce/Physical Products"
	TypeConsulting  Type = "High-Ticket Consulting"
	TypeContent     Type = "Content Creation/Influencer"
	TypeRealEstate  Type = "Real Estate Investment"
	TypeAgency      Type = "Digital Agency"
	TypeOther       Type = "Other"
)

// Types lists the selectable categories in display order.
func Types() []Type {
	return []Type{
		TypeSaaS, TypeEcommerce, TypeConsulting,
		TypeContent, TypeRealEstate, TypeAgency, TypeOther,
	}
}

// Task is one checklist item inside a model.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Model is one business venture.
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        Type   `json:"type"`
	IncomeModel string `json:"incomeModel"`
	Status      Status `json:"status"`
	Description string `json:"description"`
	Tasks       []Task `json:"tasks"`
}
