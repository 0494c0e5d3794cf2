package models

// RecipeSummary is the subset of external recipe API fields the application
// cares about. Every field is optional: absent fields decode to zero values
// and render as empty, never as an error.
type RecipeSummary struct {
	ID             int                `json:"id"`
	Title          string             `json:"title"`
	Image          string             `json:"image"`
	ReadyInMinutes int                `json:"readyInMinutes"`
	Servings       int                `json:"servings"`
	Summary        string             `json:"summary"`
	Instructions   string             `json:"instructions"`
	Ingredients    []RecipeIngredient `json:"extendedIngredients"`
}

// RecipeIngredient is a single ingredient line on a recipe.
type RecipeIngredient struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Original string  `json:"original"`
}

// IngredientHit is one result from an ingredient-name search.
type IngredientHit struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// SearchCriteria are the supported recipe search filters.
type SearchCriteria struct {
	Query              string
	Diet               string
	Cuisine            string
	IncludeIngredients string
	Number             int
}
