package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/pageza/diethub/backend/internal/models"
	"github.com/pageza/diethub/backend/internal/repository"
	"github.com/pageza/diethub/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func saveRecipe(t *testing.T, repo *repository.GormRecipeRepository, f models.RecipeFields) *models.Recipe {
	t.Helper()
	recipe := models.NewRecipe(f, baseTime)
	require.NoError(t, repo.Save(context.Background(), recipe))
	return recipe
}

func seededRecipes(t *testing.T, db *gorm.DB) *repository.GormRecipeRepository {
	t.Helper()
	repo := repository.NewRecipeRepository(db)
	saveRecipe(t, repo, models.RecipeFields{
		Name:        "Grilled Chicken Salad",
		Description: ptr("A healthy and delicious salad with grilled chicken breast"),
		Calories:    ptr(350),
		Category:    ptr("Salad"),
	})
	saveRecipe(t, repo, models.RecipeFields{
		Name:        "Quinoa Buddha Bowl",
		Description: ptr("A nutritious vegan bowl packed with protein and fiber"),
		Calories:    ptr(480),
		Category:    ptr("Bowl"),
	})
	saveRecipe(t, repo, models.RecipeFields{
		Name:        "Salmon with Steamed Broccoli",
		Description: ptr("Omega-3 rich salmon with nutritious steamed broccoli"),
		Calories:    ptr(400),
		Category:    ptr("Main Course"),
	})
	return repo
}

func names(recipes []models.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Name)
	}
	return out
}

func TestRecipeRepository_SaveAndFind(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	repo := repository.NewRecipeRepository(db)
	ctx := context.Background()

	recipe := saveRecipe(t, repo, models.RecipeFields{
		Name:            "Lentil Soup",
		Calories:        ptr(320),
		Protein:         ptr(18.5),
		PreparationTime: ptr(40),
		Tags:            ptr("vegan,high-fiber"),
	})
	require.NotZero(t, recipe.ID)

	found, err := repo.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.Fields(), found.Fields())
	assert.True(t, found.CreatedAt.Equal(baseTime))
	assert.True(t, found.UpdatedAt.Equal(found.CreatedAt))

	_, err = repo.FindByID(ctx, recipe.ID+100)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecipeRepository_SaveOverwrites(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	repo := repository.NewRecipeRepository(db)
	ctx := context.Background()

	recipe := saveRecipe(t, repo, models.RecipeFields{Name: "Oats", Category: ptr("Breakfast")})
	recipe.Apply(models.RecipeFields{Name: "Overnight Oats"}, baseTime.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, recipe))

	found, err := repo.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Overnight Oats", found.Name)
	assert.Nil(t, found.Category)
	assert.True(t, found.UpdatedAt.After(found.CreatedAt))
}

func TestRecipeRepository_FindAll(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	repo := repository.NewRecipeRepository(db)
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	seededRecipes(t, db)
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRecipeRepository_FindByCategory(t *testing.T) {
	repo := seededRecipes(t, testhelpers.SetupSQLiteDatabase(t))
	ctx := context.Background()

	found, err := repo.FindByCategory(ctx, "Bowl")
	require.NoError(t, err)
	assert.Equal(t, []string{"Quinoa Buddha Bowl"}, names(found))

	found, err = repo.FindByCategory(ctx, "bowl")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRecipeRepository_FindByCalorieRange(t *testing.T) {
	repo := seededRecipes(t, testhelpers.SetupSQLiteDatabase(t))
	ctx := context.Background()

	tests := []struct {
		name     string
		min, max int
		want     []string
	}{
		{"inclusive bounds", 400, 480, []string{"Quinoa Buddha Bowl", "Salmon with Steamed Broccoli"}},
		{"single value", 350, 350, []string{"Grilled Chicken Salad"}},
		{"inverted range", 480, 400, nil},
		{"no match", 0, 100, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByCalorieRange(ctx, tt.min, tt.max)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, names(found))
		})
	}
}

func TestRecipeRepository_Search(t *testing.T) {
	repo := seededRecipes(t, testhelpers.SetupSQLiteDatabase(t))
	ctx := context.Background()

	found, err := repo.Search(ctx, "chicken")
	require.NoError(t, err)
	assert.Equal(t, []string{"Grilled Chicken Salad"}, names(found))

	// Matches the description as well as the name.
	found, err = repo.Search(ctx, "OMEGA")
	require.NoError(t, err)
	assert.Equal(t, []string{"Salmon with Steamed Broccoli"}, names(found))

	found, err = repo.Search(ctx, "pizza")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRecipeRepository_SearchFoldsUnicodeCase(t *testing.T) {
	tests := []struct {
		name string
		db   func(t *testing.T) *gorm.DB
	}{
		{"sqlite", testhelpers.SetupSQLiteDatabase},
		{"postgres", testhelpers.SetupTestDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seededRecipes(t, tt.db(t))
			saveRecipe(t, repo, models.RecipeFields{
				Name:        "Émincé de poulet",
				Description: ptr("Crème fraîche sauce"),
			})
			ctx := context.Background()

			for _, keyword := range []string{"Émincé", "émincé", "ÉMINCÉ", "CRÈME"} {
				found, err := repo.Search(ctx, keyword)
				require.NoError(t, err)
				assert.Equal(t, []string{"Émincé de poulet"}, names(found), "keyword %q", keyword)
			}
		})
	}
}

func TestRecipeRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	repo := seededRecipes(t, testhelpers.SetupSQLiteDatabase(t))
	saveRecipe(t, repo, models.RecipeFields{Name: "100% Rye_Bread"})
	ctx := context.Background()

	for _, keyword := range []string{"%", "_", "0% r", "rye_b"} {
		found, err := repo.Search(ctx, keyword)
		require.NoError(t, err)
		assert.Equal(t, []string{"100% Rye_Bread"}, names(found), "keyword %q", keyword)
	}

	found, err := repo.Search(ctx, `\`)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRecipeRepository_DeleteIsIdempotent(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	repo := repository.NewRecipeRepository(db)
	ctx := context.Background()

	recipe := saveRecipe(t, repo, models.RecipeFields{Name: "Toast"})

	require.NoError(t, repo.DeleteByID(ctx, recipe.ID))
	require.NoError(t, repo.DeleteByID(ctx, recipe.ID))

	_, err := repo.FindByID(ctx, recipe.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecipeRepository_Count(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	repo := repository.NewRecipeRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	seededRecipes(t, db)
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestHealthRecordRepository(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	repo := repository.NewHealthRecordRepository(db)
	ctx := context.Background()

	record := &models.HealthRecord{UserID: "user-1", Weight: ptr(72.5), HeartRate: ptr(64)}
	record.Stamp(baseTime)
	require.NoError(t, repo.Save(ctx, record))

	found, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", found.UserID)
	assert.Equal(t, 72.5, *found.Weight)
	assert.Equal(t, models.DateOf(baseTime), found.RecordDate)

	require.NoError(t, repo.DeleteByID(ctx, record.ID))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
