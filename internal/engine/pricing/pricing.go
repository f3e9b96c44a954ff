package pricing

import (
	"errors"
	"fmt"

	"event-planner/internal/data/entity"
)

var ErrPackageNotFound = errors.New("package not found")

// CalculateVendorBookingCost prices one package of vendor.
//
// The base price is scaled by quantity for per-person packages and by hours
// for per-hour packages. Percentage fees apply to the scaled base price.
func CalculateVendorBookingCost(vendor *entity.Vendor, packageID string, quantity int, hours float64, includeFees bool) (*entity.VendorCost, error) {
	pkg, ok := vendor.Package(packageID)
	if !ok {
		return nil, fmt.Errorf("vendor %s package %s: %w", vendor.ID, packageID, ErrPackageNotFound)
	}

	basePrice := pkg.BasePrice
	switch pkg.PriceType {
	case entity.PriceTypePerPerson:
		basePrice *= float64(quantity)
	case entity.PriceTypePerHour:
		basePrice *= hours
	}

	cost := &entity.VendorCost{
		BasePrice:      basePrice,
		AdditionalFees: make(map[string]float64),
		Total:          basePrice,
	}

	if !includeFees {
		return cost, nil
	}

	for _, fee := range pkg.AdditionalFees {
		amount := fee.Amount
		if fee.Type == entity.FeeTypePercentage {
			amount = (fee.Amount / 100) * basePrice
		}
		cost.AdditionalFees[fee.Name] += amount
		cost.Total += amount
	}

	return cost, nil
}
