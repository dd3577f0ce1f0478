package types

import "github.com/pageza/diethub/backend/internal/models"

// RecipeRequest is the body of recipe create and update calls. Update is a
// full replace, so omitted fields are cleared.
type RecipeRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     *string  `json:"description"`
	Ingredients     *string  `json:"ingredients"`
	Instructions    *string  `json:"instructions"`
	Calories        *int     `json:"calories"`
	Protein         *float64 `json:"protein"`
	Carbohydrates   *float64 `json:"carbohydrates"`
	Fat             *float64 `json:"fat"`
	PreparationTime *int     `json:"preparationTime"`
	Difficulty      *string  `json:"difficulty"`
	Category        *string  `json:"category"`
	Tags            *string  `json:"tags"`
	ImageURL        *string  `json:"imageUrl"`
}

// Fields converts the request into the recipe's mutable fields.
func (r *RecipeRequest) Fields() models.RecipeFields {
	return models.RecipeFields{
		Name:            r.Name,
		Description:     r.Description,
		Ingredients:     r.Ingredients,
		Instructions:    r.Instructions,
		Calories:        r.Calories,
		Protein:         r.Protein,
		Carbohydrates:   r.Carbohydrates,
		Fat:             r.Fat,
		PreparationTime: r.PreparationTime,
		Difficulty:      r.Difficulty,
		Category:        r.Category,
		Tags:            r.Tags,
		ImageURL:        r.ImageURL,
	}
}
