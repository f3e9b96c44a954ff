package entity

type BudgetCategory string

const (
	CategoryCatering      BudgetCategory = "catering"
	CategoryAudiovisual   BudgetCategory = "audiovisual"
	CategoryDecor         BudgetCategory = "decor"
	CategorySeating       BudgetCategory = "seating"
	CategoryStaffing      BudgetCategory = "staffing"
	CategoryLighting      BudgetCategory = "lighting"
	CategoryLogistics     BudgetCategory = "logistics"
	CategoryAccessibility BudgetCategory = "accessibility"
	CategorySafety        BudgetCategory = "safety"
	CategoryOther         BudgetCategory = "other"
)

type RequirementPriority string

const (
	PriorityCritical RequirementPriority = "critical"
	PriorityHigh     RequirementPriority = "high"
	PriorityMedium   RequirementPriority = "medium"
	PriorityLow      RequirementPriority = "low"
)

// Requirement is owned by the requirements subsystem; the budget engine only reads it.
type Requirement struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Category      BudgetCategory      `json:"category"`
	Priority      RequirementPriority `json:"priority"`
	EstimatedCost *float64            `json:"estimated_cost,omitempty"`
	Responsible   *string             `json:"responsible,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
}

type BudgetItem struct {
	ID            string         `json:"id"`
	Category      BudgetCategory `json:"category"`
	Title         string         `json:"title"`
	EstimatedCost float64        `json:"estimated_cost"`
	ActualCost    *float64       `json:"actual_cost,omitempty"`
	RequirementID *string        `json:"requirement_id,omitempty"`
	IsRequired    bool           `json:"is_required"`
}

type CategoryBudget struct {
	Allocation float64      `json:"allocation"`
	Percentage float64      `json:"percentage"`
	Items      []BudgetItem `json:"items"`
	Spent      float64      `json:"spent"`
	Remaining  float64      `json:"remaining"`
}

type BudgetBreakdown struct {
	TotalBudget float64                           `json:"total_budget"`
	Categories  map[BudgetCategory]CategoryBudget `json:"categories"`
	ServiceFees float64                           `json:"service_fees"`
	Taxes       float64                           `json:"taxes"`
	Contingency float64                           `json:"contingency"`
	GrandTotal  float64                           `json:"grand_total"`
}
