package budget

import "event-planner/internal/data/entity"

const (
	ServiceFeeRate  = 0.22
	TaxRate         = 0.08
	ContingencyRate = 0.15
)

// costProfile is the industry benchmark for one event type.
type costProfile struct {
	perPerson float64
	venueBase float64
}

var profiles = map[entity.EventType]costProfile{
	entity.EventTypeWedding:    {perPerson: 150, venueBase: 5000},
	entity.EventTypeConference: {perPerson: 85, venueBase: 3000},
	entity.EventTypeCorporate:  {perPerson: 75, venueBase: 2000},
	entity.EventTypeBirthday:   {perPerson: 50, venueBase: 1000},
	entity.EventTypeConcert:    {perPerson: 60, venueBase: 4000},
	entity.EventTypeGala:       {perPerson: 120, venueBase: 4500},
	entity.EventTypeSocial:     {perPerson: 45, venueBase: 800},
	entity.EventTypeOther:      {perPerson: 60, venueBase: 1500},
}

func profileFor(eventType entity.EventType) costProfile {
	if p, ok := profiles[eventType]; ok {
		return p
	}
	return profiles[entity.EventTypeOther]
}

type categoryShare struct {
	category   entity.BudgetCategory
	percentage float64
}

// defaultShares need not sum to 100; whatever is left stays unallocated.
var defaultShares = []categoryShare{
	{entity.CategoryCatering, 35},
	{entity.CategoryAudiovisual, 15},
	{entity.CategoryDecor, 12},
	{entity.CategorySeating, 10},
	{entity.CategoryStaffing, 10},
	{entity.CategoryLighting, 8},
	{entity.CategoryLogistics, 5},
	{entity.CategoryAccessibility, 3},
	{entity.CategorySafety, 2},
}

// IsKnownCategory reports whether c takes part in the category distribution.
func IsKnownCategory(c entity.BudgetCategory) bool {
	for _, s := range defaultShares {
		if s.category == c {
			return true
		}
	}
	return false
}
