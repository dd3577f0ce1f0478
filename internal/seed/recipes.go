// Package seed loads the bootstrap data set into an empty store.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pageza/diethub/backend/internal/models"
	"github.com/pageza/diethub/backend/internal/repository"
)

func ptr[T any](v T) *T { return &v }

// SampleRecipes is the bootstrap recipe set.
func SampleRecipes() []models.RecipeFields {
	return []models.RecipeFields{
		{
			Name:            "Grilled Chicken Salad",
			Description:     ptr("A healthy and protein-rich salad with grilled chicken breast"),
			Ingredients:     ptr("Chicken breast 200g, Mixed greens 100g, Cherry tomatoes 50g, Cucumber 50g, Olive oil 1 tbsp, Lemon juice 1 tbsp"),
			Instructions:    ptr("1. Grill chicken breast until cooked through. 2. Chop vegetables. 3. Mix greens, vegetables in a bowl. 4. Slice chicken and add to salad. 5. Drizzle with olive oil and lemon juice."),
			Calories:        ptr(350),
			Protein:         ptr(35.0),
			Carbohydrates:   ptr(15.0),
			Fat:             ptr(18.0),
			PreparationTime: ptr(25),
			Difficulty:      ptr("Easy"),
			Category:        ptr("Salad"),
			Tags:            ptr("high-protein,low-carb,gluten-free"),
		},
		{
			Name:            "Quinoa Buddha Bowl",
			Description:     ptr("A nutritious bowl packed with quinoa, vegetables, and tahini dressing"),
			Ingredients:     ptr("Quinoa 100g, Chickpeas 100g, Sweet potato 100g, Kale 50g, Avocado 50g, Tahini 2 tbsp"),
			Instructions:    ptr("1. Cook quinoa according to package directions. 2. Roast sweet potato cubes. 3. Sauté kale. 4. Arrange all ingredients in a bowl. 5. Drizzle with tahini dressing."),
			Calories:        ptr(480),
			Protein:         ptr(18.0),
			Carbohydrates:   ptr(65.0),
			Fat:             ptr(20.0),
			PreparationTime: ptr(35),
			Difficulty:      ptr("Medium"),
			Category:        ptr("Bowl"),
			Tags:            ptr("vegan,high-fiber,gluten-free"),
		},
		{
			Name:            "Salmon with Steamed Broccoli",
			Description:     ptr("Omega-3 rich salmon fillet with perfectly steamed broccoli"),
			Ingredients:     ptr("Salmon fillet 200g, Broccoli 150g, Garlic 2 cloves, Lemon 1, Olive oil 1 tbsp"),
			Instructions:    ptr("1. Season salmon with salt, pepper, and lemon juice. 2. Bake salmon at 180°C for 15 minutes. 3. Steam broccoli until tender. 4. Sauté garlic in olive oil and toss with broccoli."),
			Calories:        ptr(400),
			Protein:         ptr(40.0),
			Carbohydrates:   ptr(10.0),
			Fat:             ptr(22.0),
			PreparationTime: ptr(20),
			Difficulty:      ptr("Easy"),
			Category:        ptr("Main Course"),
			Tags:            ptr("high-protein,omega-3,low-carb,gluten-free"),
		},
	}
}

// Recipes inserts SampleRecipes when the recipe store is empty and reports
// how many rows it wrote. A store that already holds recipes is left alone.
func Recipes(ctx context.Context, recipes repository.RecipeRepository, now time.Time) (int, error) {
	count, err := recipes.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	if count > 0 {
		log.Printf("[Seed] Recipe store holds %d recipes, skipping sample data", count)
		return 0, nil
	}

	samples := SampleRecipes()
	for _, fields := range samples {
		if err := recipes.Save(ctx, models.NewRecipe(fields, now)); err != nil {
			return 0, fmt.Errorf("failed to seed recipe %q: %w", fields.Name, err)
		}
	}

	log.Printf("[Seed] Sample recipes initialized successfully")
	return len(samples), nil
}
