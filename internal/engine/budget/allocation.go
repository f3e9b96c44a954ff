package budget

import (
	"event-planner/internal/data/entity"
)

type BaselineOptions struct {
	RegionMultiplier float64 `json:"region_multiplier,omitempty"`
	SeasonMultiplier float64 `json:"season_multiplier,omitempty"`
}

// CalculateBaselineBudget returns
// (perPerson*attendees + venueBase) * region * season.
// Zero multipliers count as 1.
func CalculateBaselineBudget(eventType entity.EventType, attendeeCount int, opts BaselineOptions) float64 {
	p := profileFor(eventType)
	return (p.perPerson*float64(attendeeCount) + p.venueBase) *
		orOne(opts.RegionMultiplier) *
		orOne(opts.SeasonMultiplier)
}

type DistributionOptions struct {
	// Percentages replaces the default category table when not empty.
	Percentages map[entity.BudgetCategory]float64 `json:"percentages,omitempty"`
}

// DistributeBudgetToCategories splits totalBudget by category percentage.
// Items are left empty.
func DistributeBudgetToCategories(totalBudget float64, opts DistributionOptions) map[entity.BudgetCategory]entity.CategoryBudget {
	allocations := make(map[entity.BudgetCategory]entity.CategoryBudget)

	if len(opts.Percentages) > 0 {
		for category, pct := range opts.Percentages {
			allocations[category] = newCategoryBudget(totalBudget, pct)
		}
		return allocations
	}

	for _, s := range defaultShares {
		allocations[s.category] = newCategoryBudget(totalBudget, s.percentage)
	}
	return allocations
}

func newCategoryBudget(total, pct float64) entity.CategoryBudget {
	allocation := total * pct / 100
	return entity.CategoryBudget{
		Allocation: allocation,
		Percentage: pct,
		Items:      []entity.BudgetItem{},
		Remaining:  allocation,
	}
}

// ApplyCostsToBudgetItems prices zero-cost items from their category's
// allocation. Items with an explicit cost keep it and consume the allocation
// first; the rest is shared evenly by the zero-cost items of the category.
// A category with leftover allocation and no zero-cost item keeps the
// leftover unassigned. Items of categories without an allocation are
// returned unchanged.
func ApplyCostsToBudgetItems(items []entity.BudgetItem, allocations map[entity.BudgetCategory]float64) []entity.BudgetItem {
	costed := make([]entity.BudgetItem, len(items))
	copy(costed, items)

	explicit := make(map[entity.BudgetCategory]float64)
	unpriced := make(map[entity.BudgetCategory][]int)
	for i, item := range costed {
		if item.EstimatedCost != 0 {
			explicit[item.Category] += item.EstimatedCost
			continue
		}
		unpriced[item.Category] = append(unpriced[item.Category], i)
	}

	for category, idx := range unpriced {
		allocation, ok := allocations[category]
		if !ok {
			continue
		}
		remaining := allocation - explicit[category]
		if remaining < 0 {
			remaining = 0
		}
		share := remaining / float64(len(idx))
		for _, i := range idx {
			costed[i].EstimatedCost = share
		}
	}

	return costed
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
