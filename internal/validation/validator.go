package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/osse101/MealPlanner_Go/internal/domain"
	"github.com/osse101/MealPlanner_Go/internal/metrics"
)

// Validator checks create inputs and patches against the field constraints
// before they reach a repository
type Validator struct {
	validate *validator.Validate
}

var (
	defaultValidator *Validator
	defaultOnce      sync.Once
)

// New builds a Validator with the custom tags registered
func New() *Validator {
	v := validator.New()

	_ = v.RegisterValidation(TagNotBlank, validators.NotBlank)
	_ = v.RegisterValidation(TagMealType, validateMealType)
	_ = v.RegisterValidation(TagCategory, validateCategory)
	_ = v.RegisterValidation(TagISODate, validateISODate)

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Default returns the shared Validator
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// MealPlanInput validates a new meal plan
func (v *Validator) MealPlanInput(in domain.CreateMealPlanInput) error {
	return v.structure(domain.EntityMealPlan, in)
}

// RecipeInput validates a new recipe and each of its ingredients
func (v *Validator) RecipeInput(in domain.CreateRecipeInput) error {
	return v.structure(domain.EntityRecipe, in)
}

// ShoppingListItemInput validates a new shopping list item
func (v *Validator) ShoppingListItemInput(in domain.CreateShoppingListItemInput) error {
	return v.structure(domain.EntityShoppingListItem, in)
}

// MealPlanPatch validates the fields a patch sets
func (v *Validator) MealPlanPatch(p domain.MealPlanPatch) error {
	c := v.newCollector(domain.EntityMealPlan)
	if name, ok := p.Name.Get(); ok {
		c.check("name", name, rulesName)
	}
	if date, ok := p.Date.Get(); ok {
		c.check("date", date, rulesDate)
	}
	if mt, ok := p.MealType.Get(); ok {
		c.check("meal_type", mt, rulesMealType)
	}
	if ids, ok := p.RecipeIDs.Get(); ok {
		c.check("recipe_ids", ids, rulesIDs)
	}
	return c.result()
}

// RecipePatch validates the fields a patch sets. A replacement ingredient
// list must be non-empty and every ingredient valid.
func (v *Validator) RecipePatch(p domain.RecipePatch) error {
	c := v.newCollector(domain.EntityRecipe)
	if name, ok := p.Name.Get(); ok {
		c.check("name", name, rulesName)
	}
	if ings, ok := p.Ingredients.Get(); ok {
		if c.check("ingredients", ings, rulesIngredients) {
			for i, ing := range ings {
				c.nested(fmt.Sprintf("ingredients[%d]", i), ing)
			}
		}
	}
	if steps, ok := p.Instructions.Get(); ok {
		c.check("instructions", steps, rulesInstructions)
	}
	if minutes, ok := p.CookingTime.Get(); ok {
		c.check("cooking_time", minutes, rulesCookingTime)
	}
	if servings, ok := p.Servings.Get(); ok {
		c.check("servings", servings, rulesServings)
	}
	if category, ok := p.Category.Get(); ok && category != nil {
		c.check("category", *category, rulesRecipeCat)
	}
	return c.result()
}

// ShoppingListItemPatch validates the fields a patch sets
func (v *Validator) ShoppingListItemPatch(p domain.ShoppingListItemPatch) error {
	c := v.newCollector(domain.EntityShoppingListItem)
	if name, ok := p.IngredientName.Get(); ok {
		c.check("ingredient_name", name, rulesName)
	}
	if amount, ok := p.TotalAmount.Get(); ok {
		c.check("total_amount", amount, rulesAmount)
	}
	if unit, ok := p.Unit.Get(); ok {
		c.check("unit", unit, rulesUnit)
	}
	if category, ok := p.Category.Get(); ok {
		c.check("category", category, rulesCategory)
	}
	if ids, ok := p.MealPlanIDs.Get(); ok {
		c.check("meal_plan_ids", ids, rulesIDs)
	}
	return c.result()
}

func (v *Validator) structure(entity string, s any) error {
	c := v.newCollector(entity)
	c.nested("", s)
	return c.result()
}

// collector accumulates field failures across several checks
type collector struct {
	validate *validator.Validate
	entity   string
	fields   map[string]string
}

func (v *Validator) newCollector(entity string) *collector {
	return &collector{validate: v.validate, entity: entity, fields: make(map[string]string)}
}

// check validates a single value and reports whether it passed
func (c *collector) check(field string, value any, rules string) bool {
	err := c.validate.Var(value, rules)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.fields[field] = MsgInvalidValue
		return false
	}
	for _, fe := range verrs {
		// Var reports dive failures as "[i]"
		c.fields[field+fe.Field()] = message(fe)
	}
	return false
}

// nested validates a struct, prefixing its field paths with prefix
func (c *collector) nested(prefix string, s any) {
	err := c.validate.Struct(s)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.fields[prefixed(prefix, "")] = MsgInvalidValue
		return
	}
	for _, fe := range verrs {
		c.fields[prefixed(prefix, fieldPath(fe))] = message(fe)
	}
}

func (c *collector) result() error {
	if len(c.fields) == 0 {
		return nil
	}
	metrics.ValidationFailures.WithLabelValues(c.entity).Inc()
	return &Error{Entity: c.entity, Fields: c.fields}
}

// fieldPath strips the struct name from a namespace such as
// "CreateRecipeInput.ingredients[0].name"
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func prefixed(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	default:
		return prefix + "." + path
	}
}

// message converts a failed tag into a caller-facing message
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case TagNotBlank:
		return MsgNotBlank
	case TagMealType:
		return MsgMealType
	case TagCategory:
		return MsgCategory
	case TagISODate:
		return MsgISODate
	case "max":
		if isCollection(fe.Kind()) || fe.Kind() == reflect.String {
			return fmt.Sprintf(MsgFmtMaxLength, fe.Param())
		}
		return fmt.Sprintf(MsgFmtMax, fe.Param())
	case "min":
		if isCollection(fe.Kind()) {
			return fmt.Sprintf(MsgFmtMinItems, fe.Param())
		}
		return fmt.Sprintf(MsgFmtMin, fe.Param())
	case "gte":
		return fmt.Sprintf(MsgFmtMin, fe.Param())
	case "lte":
		return fmt.Sprintf(MsgFmtMax, fe.Param())
	default:
		return MsgInvalidValue
	}
}

func isCollection(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array || k == reflect.Map
}

func validateMealType(fl validator.FieldLevel) bool {
	mt := fl.Field().String()
	// Empty is handled by 'required'
	if mt == "" {
		return true
	}
	return domain.MealType(mt).IsValid()
}

func validateCategory(fl validator.FieldLevel) bool {
	c := fl.Field().String()
	if c == "" {
		return true
	}
	return domain.IngredientCategory(c).IsValid()
}

func validateISODate(fl validator.FieldLevel) bool {
	d := fl.Field().String()
	if d == "" {
		return true
	}
	return domain.IsISODate(d)
}
