package mocks

import (
	"context"

	"github.com/pageza/diethub/backend/internal/models"
	"github.com/pageza/diethub/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

var _ service.IRecipeService = (*MockRecipeService)(nil)

func (m *MockRecipeService) recipe(args mock.Arguments) (*models.Recipe, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) recipes(args mock.Arguments) ([]models.Recipe, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

// CreateRecipe mocks the CreateRecipe method
func (m *MockRecipeService) CreateRecipe(ctx context.Context, fields models.RecipeFields) (*models.Recipe, error) {
	return m.recipe(m.Called(ctx, fields))
}

// GetRecipe mocks the GetRecipe method
func (m *MockRecipeService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	return m.recipe(m.Called(ctx, id))
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return m.recipes(m.Called(ctx))
}

// ListRecipesByCategory mocks the ListRecipesByCategory method
func (m *MockRecipeService) ListRecipesByCategory(ctx context.Context, category string) ([]models.Recipe, error) {
	return m.recipes(m.Called(ctx, category))
}

// SearchRecipes mocks the SearchRecipes method
func (m *MockRecipeService) SearchRecipes(ctx context.Context, keyword string) ([]models.Recipe, error) {
	return m.recipes(m.Called(ctx, keyword))
}

// ListRecipesByCalorieRange mocks the ListRecipesByCalorieRange method
func (m *MockRecipeService) ListRecipesByCalorieRange(ctx context.Context, min, max int) ([]models.Recipe, error) {
	return m.recipes(m.Called(ctx, min, max))
}

// UpdateRecipe mocks the UpdateRecipe method
func (m *MockRecipeService) UpdateRecipe(ctx context.Context, id uint, fields models.RecipeFields) (*models.Recipe, error) {
	return m.recipe(m.Called(ctx, id, fields))
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AttachImage mocks the AttachImage method
func (m *MockRecipeService) AttachImage(ctx context.Context, id uint, upload service.ImageUpload) (*models.Recipe, error) {
	return m.recipe(m.Called(ctx, id, upload))
}
