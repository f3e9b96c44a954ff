package budget

import (
	"event-planner/internal/data/entity"
)

type VenueSize string

const (
	VenueSizeSmall  VenueSize = "small"
	VenueSizeMedium VenueSize = "medium"
	VenueSizeLarge  VenueSize = "large"
	VenueSizeXLarge VenueSize = "xlarge"
)

var venueSizeMultipliers = map[VenueSize]float64{
	VenueSizeSmall:  0.8,
	VenueSizeMedium: 1.0,
	VenueSizeLarge:  1.3,
	VenueSizeXLarge: 1.6,
}

type Amenity string

const (
	AmenityBar            Amenity = "bar"
	AmenityDanceFloor     Amenity = "dance_floor"
	AmenityStageSmall     Amenity = "stage_small"
	AmenityStageMedium    Amenity = "stage_medium"
	AmenityStageLarge     Amenity = "stage_large"
	AmenityTechnicalStaff Amenity = "technical_staff"
	AmenitySecurityStaff  Amenity = "security_staff"
	AmenityValet          Amenity = "valet"
	AmenityDJ             Amenity = "dj"
	AmenityBand           Amenity = "band"
	AmenityPhotography    Amenity = "photography"
	AmenityVideography    Amenity = "videography"
)

var amenityPrices = map[Amenity]float64{
	AmenityBar:            1500,
	AmenityDanceFloor:     800,
	AmenityStageSmall:     500,
	AmenityStageMedium:    1000,
	AmenityStageLarge:     2000,
	AmenityTechnicalStaff: 600,
	AmenitySecurityStaff:  400,
	AmenityValet:          750,
	AmenityDJ:             1200,
	AmenityBand:           3500,
	AmenityPhotography:    2000,
	AmenityVideography:    2500,
}

// Share of the attendee spend per line. Independent of the category table
// used by GenerateBudgetBreakdown.
var attendeeSpendShares = map[string]float64{
	"catering":      0.45,
	"beverages":     0.15,
	"decor":         0.12,
	"entertainment": 0.10,
	"staffing":      0.10,
	"rentals":       0.08,
}

type AmenityEstimateInput struct {
	EventType     entity.EventType `json:"event_type"`
	AttendeeCount int              `json:"attendee_count"`
	VenueSize     VenueSize        `json:"venue_size,omitempty"`
	DurationHours float64          `json:"duration_hours,omitempty"`
	Amenities     []Amenity        `json:"amenities,omitempty"`
}

type AmenityEstimate struct {
	EventType           entity.EventType    `json:"event_type"`
	AttendeeCount       int                 `json:"attendee_count"`
	PerPersonCost       float64             `json:"per_person_cost"`
	VenueSizeMultiplier float64             `json:"venue_size_multiplier"`
	DurationMultiplier  float64             `json:"duration_multiplier"`
	AttendeeSpend       float64             `json:"attendee_spend"`
	VenueCost           float64             `json:"venue_cost"`
	AmenityCosts        map[Amenity]float64 `json:"amenity_costs"`
	AmenitiesTotal      float64             `json:"amenities_total"`
	UnknownAmenities    []Amenity           `json:"unknown_amenities,omitempty"`
	Breakdown           map[string]float64  `json:"breakdown"`
	Total               float64             `json:"total"`
}

// EstimateBudgetByEventType is the requirement-free estimator used for
// exploratory budgeting. It can disagree with GenerateBudgetBreakdown for
// the same event; the two encode different intents.
func EstimateBudgetByEventType(in AmenityEstimateInput) *AmenityEstimate {
	p := profileFor(in.EventType)

	sizeMult, ok := venueSizeMultipliers[in.VenueSize]
	if !ok {
		sizeMult = venueSizeMultipliers[VenueSizeMedium]
	}
	durationMult := durationMultiplier(in.DurationHours)

	est := &AmenityEstimate{
		EventType:           in.EventType,
		AttendeeCount:       in.AttendeeCount,
		PerPersonCost:       p.perPerson,
		VenueSizeMultiplier: sizeMult,
		DurationMultiplier:  durationMult,
		AttendeeSpend:       p.perPerson * float64(in.AttendeeCount) * durationMult,
		VenueCost:           p.venueBase * sizeMult * durationMult,
		AmenityCosts:        make(map[Amenity]float64),
		Breakdown:           make(map[string]float64),
	}

	for _, a := range in.Amenities {
		price, ok := amenityPrices[a]
		if !ok {
			est.UnknownAmenities = append(est.UnknownAmenities, a)
			continue
		}
		if _, seen := est.AmenityCosts[a]; seen {
			continue
		}
		est.AmenityCosts[a] = price
		est.AmenitiesTotal += price
	}

	for line, share := range attendeeSpendShares {
		est.Breakdown[line] = est.AttendeeSpend * share
	}
	est.Breakdown["venue"] = est.VenueCost
	est.Breakdown["amenities"] = est.AmenitiesTotal

	est.Total = est.AttendeeSpend + est.VenueCost + est.AmenitiesTotal
	return est
}

func durationMultiplier(hours float64) float64 {
	switch {
	case hours <= 4:
		return 1.0
	case hours <= 8:
		return 1.25
	default:
		return 1.5
	}
}
