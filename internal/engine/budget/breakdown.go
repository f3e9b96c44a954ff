package budget

import (
	"event-planner/internal/data/entity"
)

type BreakdownOptions struct {
	BaselineOptions
	DistributionOptions
	ExcludeServiceFees bool `json:"exclude_service_fees,omitempty"`
	ExcludeTaxes       bool `json:"exclude_taxes,omitempty"`
	ExcludeContingency bool `json:"exclude_contingency,omitempty"`
}

// GenerateBudgetBreakdown builds the layered cost model of one event:
// baseline, category allocations with the requirement items priced into
// them, then service fees, taxes and contingency on top of the baseline.
func GenerateBudgetBreakdown(eventType entity.EventType, attendeeCount int, requirements []entity.Requirement, opts BreakdownOptions) *entity.BudgetBreakdown {
	baseline := CalculateBaselineBudget(eventType, attendeeCount, opts.BaselineOptions)
	categories := DistributeBudgetToCategories(baseline, opts.DistributionOptions)

	amounts := make(map[entity.BudgetCategory]float64, len(categories))
	for category, cb := range categories {
		amounts[category] = cb.Allocation
	}

	// custom percentages may leave out default categories
	allocated := func(c entity.BudgetCategory) bool {
		_, ok := amounts[c]
		return ok
	}
	items := ApplyCostsToBudgetItems(createBudgetItems(requirements, allocated), amounts)

	if _, ok := categories[entity.CategoryOther]; !ok {
		categories[entity.CategoryOther] = entity.CategoryBudget{Items: []entity.BudgetItem{}}
	}
	for _, item := range items {
		cb := categories[item.Category]
		cb.Items = append(cb.Items, item)
		cb.Spent += item.EstimatedCost
		categories[item.Category] = cb
	}
	for category, cb := range categories {
		cb.Remaining = cb.Allocation - cb.Spent
		categories[category] = cb
	}

	breakdown := &entity.BudgetBreakdown{
		TotalBudget: baseline,
		Categories:  categories,
	}
	if !opts.ExcludeServiceFees {
		breakdown.ServiceFees = baseline * ServiceFeeRate
	}
	if !opts.ExcludeTaxes {
		breakdown.Taxes = baseline * TaxRate
	}
	if !opts.ExcludeContingency {
		breakdown.Contingency = baseline * ContingencyRate
	}
	breakdown.GrandTotal = breakdown.TotalBudget + breakdown.ServiceFees + breakdown.Taxes + breakdown.Contingency

	return breakdown
}
