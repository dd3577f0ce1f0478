package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pageza/diethub/backend/internal/models"
	"github.com/pageza/diethub/backend/internal/repository"
	"github.com/pageza/diethub/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// clock returns a now func that advances by step on every call.
func clock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}

type fakeImageStore struct {
	url       string
	err       error
	recipeIDs []uint
	uploads   []ImageUpload
}

func (f *fakeImageStore) UploadRecipeImage(_ context.Context, recipeID uint, upload ImageUpload) (string, error) {
	f.recipeIDs = append(f.recipeIDs, recipeID)
	f.uploads = append(f.uploads, upload)
	return f.url, f.err
}

func newRecipeService(t *testing.T, images ImageStore) *RecipeService {
	t.Helper()
	s := NewRecipeService(repository.NewRecipeRepository(testhelpers.SetupSQLiteDatabase(t)), images)
	s.now = clock(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), time.Minute)
	return s
}

func TestRecipeService_CreateAndGet(t *testing.T) {
	s := newRecipeService(t, nil)
	ctx := context.Background()

	fields := models.RecipeFields{
		Name:          "Shakshuka",
		Description:   ptr("Eggs poached in tomato sauce"),
		Calories:      ptr(310),
		Carbohydrates: ptr(20.5),
		Difficulty:    ptr("Easy"),
	}
	created, err := s.CreateRecipe(ctx, fields)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.True(t, created.UpdatedAt.Equal(created.CreatedAt))

	fetched, err := s.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, fields, fetched.Fields())
	assert.True(t, fetched.CreatedAt.Equal(created.CreatedAt))
}

func TestRecipeService_GetMissing(t *testing.T) {
	s := newRecipeService(t, nil)

	_, err := s.GetRecipe(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "recipe not found with id: 42")
}

func TestRecipeService_UpdateReplacesAllFields(t *testing.T) {
	s := newRecipeService(t, nil)
	ctx := context.Background()

	created, err := s.CreateRecipe(ctx, models.RecipeFields{
		Name:     "Porridge",
		Category: ptr("Breakfast"),
		Tags:     ptr("warm"),
		Calories: ptr(250),
	})
	require.NoError(t, err)

	update := models.RecipeFields{Name: "Porridge with Berries", Calories: ptr(300)}
	updated, err := s.UpdateRecipe(ctx, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	fetched, err := s.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, update, fetched.Fields())
	assert.Nil(t, fetched.Category)
	assert.Nil(t, fetched.Tags)
	assert.True(t, fetched.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, fetched.UpdatedAt.After(fetched.CreatedAt))
}

func TestRecipeService_UpdateMissing(t *testing.T) {
	s := newRecipeService(t, nil)

	_, err := s.UpdateRecipe(context.Background(), 9, models.RecipeFields{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	all, err := s.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecipeService_DeleteTwice(t *testing.T) {
	s := newRecipeService(t, nil)
	ctx := context.Background()

	created, err := s.CreateRecipe(ctx, models.RecipeFields{Name: "Flatbread"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteRecipe(ctx, created.ID))
	require.NoError(t, s.DeleteRecipe(ctx, created.ID))

	_, err = s.GetRecipe(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeService_Queries(t *testing.T) {
	s := newRecipeService(t, nil)
	ctx := context.Background()

	for _, f := range []models.RecipeFields{
		{Name: "Green Smoothie", Description: ptr("Spinach and banana"), Calories: ptr(180), Category: ptr("Drink")},
		{Name: "Beef Chili", Description: ptr("Slow cooked"), Calories: ptr(620), Category: ptr("Main Course")},
		{Name: "Banana Bread", Calories: ptr(400), Category: ptr("Baking")},
	} {
		_, err := s.CreateRecipe(ctx, f)
		require.NoError(t, err)
	}

	byCategory, err := s.ListRecipesByCategory(ctx, "Main Course")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Beef Chili", byCategory[0].Name)

	search, err := s.SearchRecipes(ctx, "BANANA")
	require.NoError(t, err)
	assert.Len(t, search, 2)

	inRange, err := s.ListRecipesByCalorieRange(ctx, 100, 400)
	require.NoError(t, err)
	assert.Len(t, inRange, 2)

	inverted, err := s.ListRecipesByCalorieRange(ctx, 400, 100)
	require.NoError(t, err)
	assert.Empty(t, inverted)
}

func TestRecipeService_AttachImage(t *testing.T) {
	images := &fakeImageStore{url: "https://bucket.s3.eu-west-1.amazonaws.com/recipes/1/x.png"}
	s := newRecipeService(t, images)
	ctx := context.Background()

	created, err := s.CreateRecipe(ctx, models.RecipeFields{Name: "Tacos"})
	require.NoError(t, err)

	updated, err := s.AttachImage(ctx, created.ID, ImageUpload{
		Filename:    "tacos.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, images.url, *updated.ImageURL)
	assert.Equal(t, []uint{created.ID}, images.recipeIDs)

	fetched, err := s.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, images.url, *fetched.ImageURL)
	assert.True(t, fetched.UpdatedAt.After(fetched.CreatedAt))
}

func TestRecipeService_AttachImageErrors(t *testing.T) {
	ctx := context.Background()
	upload := ImageUpload{Filename: "a.png", ContentType: "image/png", Body: strings.NewReader("x")}

	t.Run("storage disabled", func(t *testing.T) {
		s := newRecipeService(t, nil)
		_, err := s.AttachImage(ctx, 1, upload)
		assert.ErrorIs(t, err, ErrImageStorageDisabled)
	})

	t.Run("not an image", func(t *testing.T) {
		images := &fakeImageStore{}
		s := newRecipeService(t, images)
		_, err := s.AttachImage(ctx, 1, ImageUpload{Filename: "a.txt", ContentType: "text/plain", Body: strings.NewReader("x")})
		assert.ErrorIs(t, err, ErrInvalidImage)
		assert.Empty(t, images.uploads)
	})

	t.Run("missing recipe", func(t *testing.T) {
		images := &fakeImageStore{}
		s := newRecipeService(t, images)
		_, err := s.AttachImage(ctx, 99, upload)
		assert.ErrorIs(t, err, ErrRecipeNotFound)
		assert.Empty(t, images.uploads)
	})

	t.Run("upload failure", func(t *testing.T) {
		images := &fakeImageStore{err: errors.New("s3 down")}
		s := newRecipeService(t, images)
		created, err := s.CreateRecipe(ctx, models.RecipeFields{Name: "Pho"})
		require.NoError(t, err)

		_, err = s.AttachImage(ctx, created.ID, upload)
		assert.ErrorContains(t, err, "s3 down")

		fetched, err := s.GetRecipe(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, fetched.ImageURL)
	})
}
