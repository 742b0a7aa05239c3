package validation

// Custom validator tags
const (
	TagNotBlank = "notblank"
	TagMealType = "mealtype"
	TagCategory = "category"
	TagISODate  = "isodate"
)

// Field-level messages reported in Error.Fields
const (
	MsgRequired     = "This field is required"
	MsgNotBlank     = "Must not be blank"
	MsgMealType     = "Must be one of breakfast, lunch, dinner"
	MsgCategory     = "Must be one of vegetables, meat, dairy, grains, spices, other"
	MsgISODate      = "Must be a YYYY-MM-DD date"
	MsgInvalidValue = "Invalid value"
	MsgFmtMaxLength = "Must be at most %s characters"
	MsgFmtMinItems  = "Must contain at least %s items"
	MsgFmtMin       = "Must be at least %s"
	MsgFmtMax       = "Must be at most %s"
)

// Tags applied to patch fields, mirroring the create-input struct tags
const (
	rulesName         = "required,notblank,max=255"
	rulesUnit         = "required,notblank,max=50"
	rulesDate         = "required,isodate"
	rulesMealType     = "required,mealtype"
	rulesCategory     = "required,category"
	rulesAmount       = "gte=0.001,lte=10000"
	rulesCookingTime  = "gte=1,lte=1440"
	rulesServings     = "gte=1,lte=100"
	rulesIDs          = "dive,required"
	rulesInstructions = "min=1,dive,notblank"
	rulesIngredients  = "min=1"
	rulesRecipeCat    = "max=255"
)

// Schema names of the embedded JSON schemas
const (
	RecipeCatalogSchema = "recipes.schema.json"
)
