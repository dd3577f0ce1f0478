package service

import (
	"context"
	"io"

	"github.com/pageza/diethub/backend/internal/models"
	"github.com/pageza/diethub/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, fields models.RecipeFields) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*models.Recipe, error)
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	ListRecipesByCategory(ctx context.Context, category string) ([]models.Recipe, error)
	SearchRecipes(ctx context.Context, keyword string) ([]models.Recipe, error)
	ListRecipesByCalorieRange(ctx context.Context, min, max int) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uint, fields models.RecipeFields) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uint) error
	AttachImage(ctx context.Context, id uint, upload ImageUpload) (*models.Recipe, error)
}

// IProfileService defines the interface for health profile operations
type IProfileService interface {
	CreateOrUpdateProfile(ctx context.Context, req *types.HealthProfileRequest) (*models.HealthProfile, error)
	GetProfileByUserID(ctx context.Context, userID string) (*models.HealthProfile, error)
	ListProfiles(ctx context.Context) ([]models.HealthProfile, error)
	DeleteProfile(ctx context.Context, id uint) error
}

// ImageStore persists recipe images and returns their public URL.
type ImageStore interface {
	UploadRecipeImage(ctx context.Context, recipeID uint, upload ImageUpload) (string, error)
}

// ImageUpload is an image file received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}
