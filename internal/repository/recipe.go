package repository

import (
	"context"
	"strings"

	"github.com/pageza/diethub/backend/internal/models"
	"gorm.io/gorm"
)

// RecipeRepository adds recipe queries to the shared CRUD contract.
type RecipeRepository interface {
	Repository[models.Recipe]
	// FindByCategory matches category exactly, case included.
	FindByCategory(ctx context.Context, category string) ([]models.Recipe, error)
	// FindByCalorieRange is inclusive on both ends. min > max matches nothing.
	FindByCalorieRange(ctx context.Context, min, max int) ([]models.Recipe, error)
	// Search matches keyword as a case-insensitive substring of name or description.
	Search(ctx context.Context, keyword string) ([]models.Recipe, error)
}

// GormRecipeRepository is the gorm-backed RecipeRepository.
type GormRecipeRepository struct {
	*GormRepository[models.Recipe]
}

var _ RecipeRepository = (*GormRecipeRepository)(nil)

// NewRecipeRepository creates a recipe repository.
func NewRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{GormRepository: NewGormRepository[models.Recipe](db)}
}

func (r *GormRecipeRepository) FindByCategory(ctx context.Context, category string) ([]models.Recipe, error) {
	return r.find(r.db.WithContext(ctx).Where("category = ?", category))
}

func (r *GormRecipeRepository) FindByCalorieRange(ctx context.Context, min, max int) ([]models.Recipe, error) {
	return r.find(r.db.WithContext(ctx).Where("calories BETWEEN ? AND ?", min, max))
}

func (r *GormRecipeRepository) Search(ctx context.Context, keyword string) ([]models.Recipe, error) {
	like := "%" + likeEscaper.Replace(keyword) + "%"
	return r.find(r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\'`, like, like))
}

// likeEscaper makes LIKE wildcards in a keyword match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
