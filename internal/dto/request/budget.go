package request

type RequirementRequest struct {
	ID            string   `json:"id" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Priority      string   `json:"priority" validate:"required,oneof=critical high medium low"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty" validate:"omitempty,gte=0"`
	Responsible   *string  `json:"responsible,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// BudgetOptionsRequest tunes the planned budget. Zero multipliers mean 1;
// percentages are whole percent of the baseline (35 = 35%).
type BudgetOptionsRequest struct {
	RegionMultiplier   float64            `json:"region_multiplier" validate:"gte=0"`
	SeasonMultiplier   float64            `json:"season_multiplier" validate:"gte=0"`
	Percentages        map[string]float64 `json:"percentages,omitempty" validate:"omitempty,dive,gte=0,lte=100"`
	ExcludeServiceFees bool               `json:"exclude_service_fees"`
	ExcludeTaxes       bool               `json:"exclude_taxes"`
	ExcludeContingency bool               `json:"exclude_contingency"`
}

type BreakdownRequest struct {
	EventType     string               `json:"event_type" validate:"required,oneof=wedding conference corporate birthday concert gala social other"`
	AttendeeCount int                  `json:"attendee_count" validate:"gte=0"`
	Requirements  []RequirementRequest `json:"requirements,omitempty" validate:"dive"`
	Options       BudgetOptionsRequest `json:"options"`
}

type EstimateRequest struct {
	// Strategy is "planned" or "exploratory". Empty picks planned when
	// requirements are given.
	Strategy      string               `json:"strategy,omitempty" validate:"omitempty,oneof=planned exploratory"`
	EventType     string               `json:"event_type" validate:"required,oneof=wedding conference corporate birthday concert gala social other"`
	AttendeeCount int                  `json:"attendee_count" validate:"gte=0"`
	Requirements  []RequirementRequest `json:"requirements,omitempty" validate:"dive"`
	Options       BudgetOptionsRequest `json:"options"`
	VenueSize     string               `json:"venue_size,omitempty" validate:"omitempty,oneof=small medium large xlarge"`
	DurationHours float64              `json:"duration_hours" validate:"gte=0"`
	Amenities     []string             `json:"amenities,omitempty"`
}

type CompareRequest struct {
	EventType     string  `json:"event_type" validate:"required,oneof=wedding conference corporate birthday concert gala social other"`
	AttendeeCount int     `json:"attendee_count" validate:"gte=0"`
	Budget        float64 `json:"budget" validate:"gte=0"`
}

type QuoteRequest struct {
	PackageID   string  `json:"package_id" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Hours       float64 `json:"hours" validate:"gte=0"`
	ExcludeFees bool    `json:"exclude_fees"`
}

type AdditionalFeeRequest struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Type   string  `json:"type" validate:"required,oneof=flat percentage"`
}

type VendorPackageRequest struct {
	ID             string                 `json:"id" validate:"required"`
	Name           string                 `json:"name" validate:"required"`
	Description    string                 `json:"description,omitempty"`
	BasePrice      float64                `json:"base_price" validate:"gte=0"`
	PriceType      string                 `json:"price_type" validate:"required,oneof=flat per_person per_hour custom"`
	AdditionalFees []AdditionalFeeRequest `json:"additional_fees,omitempty" validate:"dive"`
}

type SaveVendorRequest struct {
	Name     string                 `json:"name" validate:"required,max=200"`
	Category string                 `json:"category"`
	Packages []VendorPackageRequest `json:"packages" validate:"required,min=1,dive"`
}
