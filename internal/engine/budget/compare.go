package budget

import "event-planner/internal/data/entity"

type IndustryComparison struct {
	Budget               float64 `json:"budget"`
	IndustryAverage      float64 `json:"industry_average"`
	Difference           float64 `json:"difference"`
	PercentageDifference float64 `json:"percentage_difference"`
	IsAboveAverage       bool    `json:"is_above_average"`
}

// CompareBudgetToIndustryAverage benchmarks budget against
// perPerson*attendees + venueBase. Region and season multipliers are not
// applied to the average.
func CompareBudgetToIndustryAverage(eventType entity.EventType, attendeeCount int, budget float64) IndustryComparison {
	p := profileFor(eventType)
	average := p.perPerson*float64(attendeeCount) + p.venueBase

	cmp := IndustryComparison{
		Budget:          budget,
		IndustryAverage: average,
		Difference:      budget - average,
		IsAboveAverage:  budget > average,
	}
	if average != 0 {
		cmp.PercentageDifference = cmp.Difference / average * 100
	}
	return cmp
}
