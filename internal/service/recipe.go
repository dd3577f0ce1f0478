package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pageza/diethub/backend/internal/models"
	"github.com/pageza/diethub/backend/internal/repository"
)

var (
	// ErrRecipeNotFound is returned when no recipe has the requested id.
	ErrRecipeNotFound = fmt.Errorf("recipe %w", repository.ErrNotFound)
	// ErrInvalidImage is returned for uploads that are not images.
	ErrInvalidImage = errors.New("file must be an image")
	// ErrImageStorageDisabled is returned when no image store is configured.
	ErrImageStorageDisabled = errors.New("image storage is not configured")
)

// RecipeService handles recipe operations
type RecipeService struct {
	recipes repository.RecipeRepository
	images  ImageStore
	now     func() time.Time
}

var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance. images may be nil,
// in which case AttachImage always fails with ErrImageStorageDisabled.
func NewRecipeService(recipes repository.RecipeRepository, images ImageStore) *RecipeService {
	return &RecipeService{
		recipes: recipes,
		images:  images,
		now:     time.Now,
	}
}

// CreateRecipe stamps both timestamps and stores a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, fields models.RecipeFields) (*models.Recipe, error) {
	recipe := models.NewRecipe(fields, s.now())
	if err := s.recipes.Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	log.Printf("[RecipeService] Created recipe %d (%s)", recipe.ID, recipe.Name)
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("recipe not found with id: %d: %w", id, ErrRecipeNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}
	return recipe, nil
}

func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes.FindAll(ctx)
}

func (s *RecipeService) ListRecipesByCategory(ctx context.Context, category string) ([]models.Recipe, error) {
	return s.recipes.FindByCategory(ctx, category)
}

// SearchRecipes matches keyword against name and description, ignoring case
func (s *RecipeService) SearchRecipes(ctx context.Context, keyword string) ([]models.Recipe, error) {
	return s.recipes.Search(ctx, keyword)
}

func (s *RecipeService) ListRecipesByCalorieRange(ctx context.Context, min, max int) ([]models.Recipe, error) {
	return s.recipes.FindByCalorieRange(ctx, min, max)
}

// UpdateRecipe replaces every mutable field of an existing recipe
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, fields models.RecipeFields) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	recipe.Apply(fields, s.now())
	if err := s.recipes.Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe %d: %w", id, err)
	}
	return recipe, nil
}

// DeleteRecipe deletes a recipe. Missing ids are not an error.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if err := s.recipes.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe %d: %w", id, err)
	}
	return nil
}

// AttachImage uploads an image for the recipe and stores its URL as imageUrl.
func (s *RecipeService) AttachImage(ctx context.Context, id uint, upload ImageUpload) (*models.Recipe, error) {
	if s.images == nil {
		return nil, ErrImageStorageDisabled
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidImage, upload.ContentType)
	}

	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.images.UploadRecipeImage(ctx, id, upload)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image for recipe %d: %w", id, err)
	}

	recipe.ImageURL = &url
	recipe.UpdatedAt = s.now()
	if err := s.recipes.Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to save image url for recipe %d: %w", id, err)
	}
	return recipe, nil
}
