package aggregate

import (
	"cmp"
	"slices"
	"time"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

// MealPlanStats summarizes a collection of meal plans
type MealPlanStats struct {
	Total        int                     `json:"total"`
	ByMealType   map[domain.MealType]int `json:"by_meal_type"`
	UniqueDates  int                     `json:"unique_dates"`
	TotalRecipes int                     `json:"total_recipes"`
}

// compareMealSlot orders by date prefix, then breakfast, lunch, dinner
func compareMealSlot(a, b domain.MealPlan) int {
	if c := cmp.Compare(domain.DatePrefix(a.Date), domain.DatePrefix(b.Date)); c != 0 {
		return c
	}
	return cmp.Compare(a.MealType.Order(), b.MealType.Order())
}

// GroupMealPlansByDate partitions plans by exact date string. Each group is
// ordered breakfast, lunch, dinner; plans sharing a slot keep their input order.
func GroupMealPlansByDate(plans []domain.MealPlan) map[string][]domain.MealPlan {
	groups := make(map[string][]domain.MealPlan)
	for _, p := range plans {
		groups[p.Date] = append(groups[p.Date], p)
	}
	for date := range groups {
		slices.SortStableFunc(groups[date], func(a, b domain.MealPlan) int {
			return cmp.Compare(a.MealType.Order(), b.MealType.Order())
		})
	}
	return groups
}

// GroupMealPlansByMealType partitions plans by meal type. All three meal types
// are always present as keys.
func GroupMealPlansByMealType(plans []domain.MealPlan) map[domain.MealType][]domain.MealPlan {
	groups := make(map[domain.MealType][]domain.MealPlan, len(domain.MealTypes))
	for _, mt := range domain.MealTypes {
		groups[mt] = []domain.MealPlan{}
	}
	for _, p := range plans {
		groups[p.MealType] = append(groups[p.MealType], p)
	}
	return groups
}

// FilterMealPlansByDateRange keeps plans whose YYYY-MM-DD prefix lies within
// [start, end]. Comparison is lexical.
func FilterMealPlansByDateRange(plans []domain.MealPlan, start, end string) []domain.MealPlan {
	start, end = domain.DatePrefix(start), domain.DatePrefix(end)
	out := []domain.MealPlan{}
	for _, p := range plans {
		d := domain.DatePrefix(p.Date)
		if d >= start && d <= end {
			out = append(out, p)
		}
	}
	return out
}

// WeekBounds returns the Monday and Sunday of the week containing date.
// ok is false when date does not start with a valid YYYY-MM-DD.
func WeekBounds(date string) (monday, sunday string, ok bool) {
	t, err := time.Parse(domain.DateLayout, domain.DatePrefix(date))
	if err != nil {
		return "", "", false
	}
	offset := (int(t.Weekday()) + 6) % 7
	start := t.AddDate(0, 0, -offset)
	return domain.FormatDate(start), domain.FormatDate(start.AddDate(0, 0, 6)), true
}

// FilterWeek keeps the plans in the Monday to Sunday week containing date
func FilterWeek(plans []domain.MealPlan, date string) []domain.MealPlan {
	monday, sunday, ok := WeekBounds(date)
	if !ok {
		return []domain.MealPlan{}
	}
	return FilterMealPlansByDateRange(plans, monday, sunday)
}

// FilterToday keeps the plans dated today, in meal type order
func FilterToday(plans []domain.MealPlan, today string) []domain.MealPlan {
	out := FilterMealPlansByDateRange(plans, today, today)
	slices.SortStableFunc(out, compareMealSlot)
	return out
}

// FilterUpcoming keeps plans dated today or later, ordered by date then meal type
func FilterUpcoming(plans []domain.MealPlan, today string) []domain.MealPlan {
	today = domain.DatePrefix(today)
	out := []domain.MealPlan{}
	for _, p := range plans {
		if domain.DatePrefix(p.Date) >= today {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, compareMealSlot)
	return out
}

// SearchMealPlans keeps plans whose name contains query, ignoring case.
// An empty or whitespace query returns plans unchanged.
func SearchMealPlans(plans []domain.MealPlan, query string) []domain.MealPlan {
	m := newMatcher(query)
	if m == nil {
		return plans
	}
	out := []domain.MealPlan{}
	for _, p := range plans {
		if m.matches(p.Name) {
			out = append(out, p)
		}
	}
	return out
}

// ComputeMealPlanStats counts plans by meal type, distinct dates and distinct recipe references
func ComputeMealPlanStats(plans []domain.MealPlan) MealPlanStats {
	stats := MealPlanStats{
		Total:      len(plans),
		ByMealType: make(map[domain.MealType]int, len(domain.MealTypes)),
	}
	for _, mt := range domain.MealTypes {
		stats.ByMealType[mt] = 0
	}

	dates := make(map[string]struct{})
	recipes := make(map[string]struct{})
	for _, p := range plans {
		stats.ByMealType[p.MealType]++
		dates[domain.DatePrefix(p.Date)] = struct{}{}
		for _, id := range p.RecipeIDs {
			recipes[id] = struct{}{}
		}
	}
	stats.UniqueDates = len(dates)
	stats.TotalRecipes = len(recipes)
	return stats
}

// ReferencedRecipeIDs returns the distinct recipe ids referenced by plans in first-seen order
func ReferencedRecipeIDs(plans []domain.MealPlan) []string {
	seen := make(map[string]struct{})
	ids := []string{}
	for _, p := range plans {
		for _, id := range p.RecipeIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
