package usecase

import (
	"event-planner/internal/data/entity"
	"event-planner/internal/dto/request"
	"event-planner/internal/dto/response"
	"event-planner/internal/engine/budget"
	"event-planner/internal/engine/lifecycle"
)

func toBookingResponse(b *entity.Booking) *response.BookingResponse {
	return &response.BookingResponse{
		ID:                  b.ID.String(),
		Reference:           b.Reference,
		EventName:           b.EventName,
		EventType:           b.EventType,
		VenueID:             b.VenueID,
		Customer:            b.Customer,
		StartDate:           b.StartDate,
		EndDate:             b.EndDate,
		AttendeeCount:       b.AttendeeCount,
		Status:              b.Status,
		NextStatuses:        lifecycle.AllowedTransitions(b.Status),
		PaymentStatus:       b.PaymentStatus,
		TotalAmount:         b.TotalAmount,
		DepositAmount:       b.DepositAmount,
		PaidToDate:          lifecycle.PaidToDate(b),
		BalanceDue:          lifecycle.BalanceDue(b),
		DepositDueDate:      b.DepositDueDate,
		FinalPaymentDueDate: b.FinalPaymentDueDate,
		TimeBlocks:          b.TimeBlocks,
		VendorBookings:      b.VendorBookings,
		BudgetBreakdown:     b.BudgetBreakdown,
		RequirementIDs:      b.RequirementIDs,
		Payments:            b.Payments,
		Notes:               b.Notes,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func toBookingSummary(b *entity.Booking) response.BookingSummaryResponse {
	return response.BookingSummaryResponse{
		ID:            b.ID.String(),
		Reference:     b.Reference,
		EventName:     b.EventName,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
	}
}

func toRequirements(reqs []request.RequirementRequest) []entity.Requirement {
	out := make([]entity.Requirement, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, entity.Requirement{
			ID:            r.ID,
			Title:         r.Title,
			Category:      entity.BudgetCategory(r.Category),
			Priority:      entity.RequirementPriority(r.Priority),
			EstimatedCost: r.EstimatedCost,
			Responsible:   r.Responsible,
			Notes:         r.Notes,
		})
	}
	return out
}

func toTimeBlocks(blocks []request.TimeBlockRequest) []entity.EventTimeBlock {
	out := make([]entity.EventTimeBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, entity.EventTimeBlock{
			ID:          b.ID,
			Title:       b.Title,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			IsRequired:  b.IsRequired,
			Color:       b.Color,
			Description: b.Description,
		})
	}
	return out
}

func toBreakdownOptions(opts request.BudgetOptionsRequest) budget.BreakdownOptions {
	var percentages map[entity.BudgetCategory]float64
	if len(opts.Percentages) > 0 {
		percentages = make(map[entity.BudgetCategory]float64, len(opts.Percentages))
		for category, pct := range opts.Percentages {
			percentages[entity.BudgetCategory(category)] = pct
		}
	}

	return budget.BreakdownOptions{
		BaselineOptions: budget.BaselineOptions{
			RegionMultiplier: opts.RegionMultiplier,
			SeasonMultiplier: opts.SeasonMultiplier,
		},
		DistributionOptions: budget.DistributionOptions{
			Percentages: percentages,
		},
		ExcludeServiceFees: opts.ExcludeServiceFees,
		ExcludeTaxes:       opts.ExcludeTaxes,
		ExcludeContingency: opts.ExcludeContingency,
	}
}

func toAmenities(names []string) []budget.Amenity {
	out := make([]budget.Amenity, 0, len(names))
	for _, n := range names {
		out = append(out, budget.Amenity(n))
	}
	return out
}

func toVendor(vendorID string, req *request.SaveVendorRequest) *entity.Vendor {
	vendor := &entity.Vendor{
		ID:       vendorID,
		Name:     req.Name,
		Category: req.Category,
		Packages: make([]entity.VendorPackage, 0, len(req.Packages)),
	}
	for _, p := range req.Packages {
		pkg := entity.VendorPackage{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			BasePrice:   p.BasePrice,
			PriceType:   entity.PriceType(p.PriceType),
		}
		for _, f := range p.AdditionalFees {
			pkg.AdditionalFees = append(pkg.AdditionalFees, entity.AdditionalFee{
				Name:   f.Name,
				Amount: f.Amount,
				Type:   entity.FeeType(f.Type),
			})
		}
		vendor.Packages = append(vendor.Packages, pkg)
	}
	return vendor
}
