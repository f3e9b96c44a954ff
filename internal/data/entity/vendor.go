package entity

import "time"

type PriceType string

const (
	PriceTypeFlat      PriceType = "flat"
	PriceTypePerPerson PriceType = "per_person"
	PriceTypePerHour   PriceType = "per_hour"
	PriceTypeCustom    PriceType = "custom"
)

type FeeType string

const (
	FeeTypeFlat       FeeType = "flat"
	FeeTypePercentage FeeType = "percentage"
)

type AdditionalFee struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   FeeType `json:"type"`
}

type VendorPackage struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	BasePrice      float64         `json:"base_price"`
	PriceType      PriceType       `json:"price_type"`
	AdditionalFees []AdditionalFee `json:"additional_fees,omitempty"`
}

type Vendor struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Packages []VendorPackage `json:"packages"`
}

// Package returns the package with the given id.
func (v *Vendor) Package(id string) (*VendorPackage, bool) {
	for i := range v.Packages {
		if v.Packages[i].ID == id {
			return &v.Packages[i], true
		}
	}
	return nil, false
}

type VendorCost struct {
	BasePrice      float64            `json:"base_price"`
	AdditionalFees map[string]float64 `json:"additional_fees"`
	Total          float64            `json:"total"`
}

// VendorBooking links a booking to one vendor package. Its status moves
// independently of the parent booking.
type VendorBooking struct {
	ID            string        `json:"id"`
	VendorID      string        `json:"vendor_id"`
	VendorName    string        `json:"vendor_name"`
	PackageID     string        `json:"package_id"`
	ServiceDate   time.Time     `json:"service_date"`
	StartTime     string        `json:"start_time"` // HH:MM
	EndTime       string        `json:"end_time"`   // HH:MM
	Quantity      int           `json:"quantity"`
	Hours         float64       `json:"hours"`
	Cost          VendorCost    `json:"cost"`
	TotalAmount   float64       `json:"total_amount"`
	DepositAmount float64       `json:"deposit_amount"`
	Status        BookingStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
}
