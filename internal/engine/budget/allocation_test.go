package budget

import (
	"testing"

	"event-planner/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cost(v float64) *float64 { return &v }

func TestCalculateBaselineBudget(t *testing.T) {
	tests := []struct {
		name      string
		eventType entity.EventType
		attendees int
		opts      BaselineOptions
		want      float64
	}{
		{"wedding defaults", entity.EventTypeWedding, 100, BaselineOptions{}, 20000},
		{"conference with multipliers", entity.EventTypeConference, 200, BaselineOptions{RegionMultiplier: 1.2, SeasonMultiplier: 0.9}, (85*200 + 3000) * 1.2 * 0.9},
		{"unknown type uses other", entity.EventType("retreat"), 10, BaselineOptions{}, 60*10 + 1500},
		{"no attendees is venue base", entity.EventTypeBirthday, 0, BaselineOptions{}, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateBaselineBudget(tt.eventType, tt.attendees, tt.opts), 1e-6)
		})
	}
}

func TestDistributeBudgetToCategories(t *testing.T) {
	allocations := DistributeBudgetToCategories(10000, DistributionOptions{})

	require.Len(t, allocations, 9)
	assert.InDelta(t, 3500, allocations[entity.CategoryCatering].Allocation, 1e-9)
	assert.InDelta(t, 1500, allocations[entity.CategoryAudiovisual].Allocation, 1e-9)
	assert.InDelta(t, 200, allocations[entity.CategorySafety].Allocation, 1e-9)
	assert.Equal(t, 35.0, allocations[entity.CategoryCatering].Percentage)

	var total float64
	for _, a := range allocations {
		total += a.Allocation
	}
	assert.LessOrEqual(t, total, 10000+1e-6)
}

func TestDistributeBudgetToCategories_CustomPercentages(t *testing.T) {
	allocations := DistributeBudgetToCategories(1000, DistributionOptions{
		Percentages: map[entity.BudgetCategory]float64{entity.CategoryCatering: 50, entity.CategoryDecor: 20},
	})

	require.Len(t, allocations, 2)
	assert.InDelta(t, 500, allocations[entity.CategoryCatering].Allocation, 1e-9)
	assert.InDelta(t, 200, allocations[entity.CategoryDecor].Allocation, 1e-9)
}

func TestApplyCostsToBudgetItems(t *testing.T) {
	items := []entity.BudgetItem{
		{ID: "a", Category: entity.CategoryCatering, EstimatedCost: 1000},
		{ID: "b", Category: entity.CategoryCatering},
		{ID: "c", Category: entity.CategoryCatering},
		{ID: "d", Category: entity.CategoryDecor},
		{ID: "e", Category: entity.CategoryOther},
	}
	allocations := map[entity.BudgetCategory]float64{
		entity.CategoryCatering: 3000,
		entity.CategoryDecor:    600,
	}

	costed := ApplyCostsToBudgetItems(items, allocations)

	require.Len(t, costed, 5)
	assert.InDelta(t, 1000, costed[0].EstimatedCost, 1e-9)
	assert.InDelta(t, 1000, costed[1].EstimatedCost, 1e-9)
	assert.InDelta(t, 1000, costed[2].EstimatedCost, 1e-9)
	assert.InDelta(t, 600, costed[3].EstimatedCost, 1e-9)
	assert.Zero(t, costed[4].EstimatedCost, "no allocation for other")

	assert.Zero(t, items[1].EstimatedCost, "input is not mutated")
}

func TestApplyCostsToBudgetItems_ExplicitCostsExceedAllocation(t *testing.T) {
	items := []entity.BudgetItem{
		{ID: "a", Category: entity.CategoryLighting, EstimatedCost: 900},
		{ID: "b", Category: entity.CategoryLighting},
	}

	costed := ApplyCostsToBudgetItems(items, map[entity.BudgetCategory]float64{entity.CategoryLighting: 500})

	assert.InDelta(t, 900, costed[0].EstimatedCost, 1e-9)
	assert.Zero(t, costed[1].EstimatedCost)
}

func TestApplyCostsToBudgetItems_ZeroCostItemsStayWithinAllocation(t *testing.T) {
	allocations := map[entity.BudgetCategory]float64{entity.CategoryStaffing: 1000}

	for n := 1; n <= 7; n++ {
		items := make([]entity.BudgetItem, n)
		for i := range items {
			items[i] = entity.BudgetItem{Category: entity.CategoryStaffing}
		}

		var sum float64
		for _, item := range ApplyCostsToBudgetItems(items, allocations) {
			sum += item.EstimatedCost
		}
		assert.LessOrEqual(t, sum, 1000+1e-9)
	}
}

func TestCreateBudgetItemsFromRequirements(t *testing.T) {
	reqs := []entity.Requirement{
		{ID: "r1", Title: "Dinner service", Category: entity.CategoryCatering, Priority: entity.PriorityCritical, EstimatedCost: cost(2500)},
		{ID: "r2", Title: "Projector", Category: entity.CategoryAudiovisual, Priority: entity.PriorityHigh},
		{ID: "r3", Title: "Flowers", Category: entity.CategoryDecor, Priority: entity.PriorityMedium},
		{ID: "r4", Title: "Fireworks", Category: "pyrotechnics", Priority: entity.PriorityLow},
	}

	items := CreateBudgetItemsFromRequirements(reqs)

	require.Len(t, items, 4)
	assert.Equal(t, 2500.0, items[0].EstimatedCost)
	assert.True(t, items[0].IsRequired)
	assert.True(t, items[1].IsRequired)
	assert.False(t, items[2].IsRequired)
	assert.Zero(t, items[1].EstimatedCost)
	assert.Equal(t, entity.CategoryOther, items[3].Category)
	require.NotNil(t, items[3].RequirementID)
	assert.Equal(t, "r4", *items[3].RequirementID)
	assert.Equal(t, "Fireworks", items[3].Title)
}
