package response

import "event-planner/internal/data/entity"

type QuoteResponse struct {
	VendorID  string            `json:"vendor_id"`
	PackageID string            `json:"package_id"`
	Quantity  int               `json:"quantity"`
	Hours     float64           `json:"hours"`
	Cost      entity.VendorCost `json:"cost"`
}
