package budget

import (
	"errors"
	"fmt"

	"event-planner/internal/data/entity"
)

var ErrUnknownStrategy = errors.New("unknown budget strategy")

const (
	StrategyPlanned     = "planned"
	StrategyExploratory = "exploratory"
)

// EstimateRequest carries the inputs of both strategies; each one reads the
// fields it needs.
type EstimateRequest struct {
	EventType     entity.EventType     `json:"event_type"`
	AttendeeCount int                  `json:"attendee_count"`
	Requirements  []entity.Requirement `json:"requirements,omitempty"`
	Options       BreakdownOptions     `json:"options"`
	VenueSize     VenueSize            `json:"venue_size,omitempty"`
	DurationHours float64              `json:"duration_hours,omitempty"`
	Amenities     []Amenity            `json:"amenities,omitempty"`
}

type Estimate struct {
	Strategy    string                  `json:"strategy"`
	Total       float64                 `json:"total"`
	Breakdown   *entity.BudgetBreakdown `json:"breakdown,omitempty"`
	Exploratory *AmenityEstimate        `json:"exploratory,omitempty"`
}

// Strategy is one way of turning an event description into a budget.
type Strategy interface {
	Name() string
	Estimate(req EstimateRequest) Estimate
}

// PlannedStrategy budgets from a requirement list.
type PlannedStrategy struct{}

func (PlannedStrategy) Name() string { return StrategyPlanned }

func (PlannedStrategy) Estimate(req EstimateRequest) Estimate {
	breakdown := GenerateBudgetBreakdown(req.EventType, req.AttendeeCount, req.Requirements, req.Options)
	return Estimate{
		Strategy:  StrategyPlanned,
		Total:     breakdown.GrandTotal,
		Breakdown: breakdown,
	}
}

// ExploratoryStrategy budgets from venue size, duration and amenities.
type ExploratoryStrategy struct{}

func (ExploratoryStrategy) Name() string { return StrategyExploratory }

func (ExploratoryStrategy) Estimate(req EstimateRequest) Estimate {
	est := EstimateBudgetByEventType(AmenityEstimateInput{
		EventType:     req.EventType,
		AttendeeCount: req.AttendeeCount,
		VenueSize:     req.VenueSize,
		DurationHours: req.DurationHours,
		Amenities:     req.Amenities,
	})
	return Estimate{
		Strategy:    StrategyExploratory,
		Total:       est.Total,
		Exploratory: est,
	}
}

// StrategyByName returns the named strategy.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case StrategyPlanned:
		return PlannedStrategy{}, nil
	case StrategyExploratory:
		return ExploratoryStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// SelectStrategy picks the planned strategy when requirements exist and the
// exploratory one otherwise.
func SelectStrategy(req EstimateRequest) Strategy {
	if len(req.Requirements) > 0 {
		return PlannedStrategy{}
	}
	return ExploratoryStrategy{}
}
