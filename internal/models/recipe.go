package models

import (
	"time"
)

// Recipe is a stored recipe. Everything except Name is optional and may be null.
type Recipe struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Description     *string   `gorm:"size:2000" json:"description"`
	Ingredients     *string   `gorm:"size:5000" json:"ingredients"`
	Instructions    *string   `gorm:"size:5000" json:"instructions"`
	Calories        *int      `json:"calories"`
	Protein         *float64  `json:"protein"`
	Carbohydrates   *float64  `json:"carbohydrates"`
	Fat             *float64  `json:"fat"`
	PreparationTime *int      `json:"preparationTime"`
	Difficulty      *string   `gorm:"size:255" json:"difficulty"`
	Category        *string   `gorm:"size:255;index" json:"category"`
	Tags            *string   `gorm:"size:1000" json:"tags"`
	ImageURL        *string   `gorm:"column:image_url;size:255" json:"imageUrl"`
	CreatedAt       time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// GetID satisfies repository.Record.
func (r Recipe) GetID() uint {
	return r.ID
}

// RecipeFields holds the mutable part of a recipe. Create and update both copy
// all of it onto the record, so a nil field clears the column.
type RecipeFields struct {
	Name            string
	Description     *string
	Ingredients     *string
	Instructions    *string
	Calories        *int
	Protein         *float64
	Carbohydrates   *float64
	Fat             *float64
	PreparationTime *int
	Difficulty      *string
	Category        *string
	Tags            *string
	ImageURL        *string
}

// NewRecipe builds an unsaved recipe with both timestamps set to now.
func NewRecipe(f RecipeFields, now time.Time) *Recipe {
	r := &Recipe{CreatedAt: now}
	r.Apply(f, now)
	return r
}

// Apply overwrites every mutable field and moves UpdatedAt to now. ID and
// CreatedAt are left alone.
func (r *Recipe) Apply(f RecipeFields, now time.Time) {
	r.Name = f.Name
	r.Description = f.Description
	r.Ingredients = f.Ingredients
	r.Instructions = f.Instructions
	r.Calories = f.Calories
	r.Protein = f.Protein
	r.Carbohydrates = f.Carbohydrates
	r.Fat = f.Fat
	r.PreparationTime = f.PreparationTime
	r.Difficulty = f.Difficulty
	r.Category = f.Category
	r.Tags = f.Tags
	r.ImageURL = f.ImageURL
	r.UpdatedAt = now
}

// Fields returns the mutable part of the recipe.
func (r *Recipe) Fields() RecipeFields {
	return RecipeFields{
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
