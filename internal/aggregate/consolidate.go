package aggregate

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

// consolidationKey identifies one purchase need: the same ingredient in the same unit
type consolidationKey struct {
	name string
	unit string
}

func newConsolidationKey(f cases.Caser, name, unit string) consolidationKey {
	return consolidationKey{
		name: f.String(strings.TrimSpace(name)),
		unit: f.String(strings.TrimSpace(unit)),
	}
}

// ConsolidateIngredients combines the ingredients of every recipe referenced by
// plans into one need per (name, unit), compared without case. Amounts are
// summed, meal plan ids are collected in first-seen order, and the name, unit
// and category of the first occurrence are kept. Recipe ids missing from
// recipesByID are skipped. Output is in first-seen order.
func ConsolidateIngredients(plans []domain.MealPlan, recipesByID map[string]domain.Recipe) []domain.CreateShoppingListItemInput {
	f := newFolder()
	index := make(map[consolidationKey]int)
	out := []domain.CreateShoppingListItemInput{}

	for _, plan := range plans {
		for _, recipeID := range plan.RecipeIDs {
			recipe, ok := recipesByID[recipeID]
			if !ok {
				continue
			}
			for _, ing := range recipe.Ingredients {
				key := newConsolidationKey(f, ing.Name, ing.Unit)
				i, exists := index[key]
				if !exists {
					index[key] = len(out)
					out = append(out, domain.CreateShoppingListItemInput{
						IngredientName: strings.TrimSpace(ing.Name),
						TotalAmount:    ing.Amount,
						Unit:           strings.TrimSpace(ing.Unit),
						Category:       ing.Category,
						MealPlanIDs:    []string{plan.ID},
					})
					continue
				}
				out[i].TotalAmount += ing.Amount
				if !slices.Contains(out[i].MealPlanIDs, plan.ID) {
					out[i].MealPlanIDs = append(out[i].MealPlanIDs, plan.ID)
				}
			}
		}
	}

	for i := range out {
		out[i].TotalAmount = roundTo(out[i].TotalAmount, 3)
	}
	return out
}
