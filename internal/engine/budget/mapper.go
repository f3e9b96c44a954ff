package budget

import "event-planner/internal/data/entity"

// CreateBudgetItemsFromRequirements maps every requirement to exactly one
// budget item. Missing estimates become zero so the allocation step can
// price them; categories outside the distribution table land in "other".
func CreateBudgetItemsFromRequirements(requirements []entity.Requirement) []entity.BudgetItem {
	return createBudgetItems(requirements, IsKnownCategory)
}

// createBudgetItems is CreateBudgetItemsFromRequirements against a custom
// set of allocated categories.
func createBudgetItems(requirements []entity.Requirement, allocated func(entity.BudgetCategory) bool) []entity.BudgetItem {
	items := make([]entity.BudgetItem, 0, len(requirements))
	for _, req := range requirements {
		category := req.Category
		if !allocated(category) {
			category = entity.CategoryOther
		}

		var cost float64
		if req.EstimatedCost != nil {
			cost = *req.EstimatedCost
		}

		requirementID := req.ID
		items = append(items, entity.BudgetItem{
			ID:            "item-" + req.ID,
			Category:      category,
			Title:         req.Title,
			EstimatedCost: cost,
			RequirementID: &requirementID,
			IsRequired:    req.Priority == entity.PriorityCritical || req.Priority == entity.PriorityHigh,
		})
	}
	return items
}
