package repository

import (
	"context"
	"errors"

	"github.com/pageza/diethub/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileUpsertColumns are overwritten when an upsert hits an existing user_id.
// id and created_at keep their stored values.
var profileUpsertColumns = []string{
	"age",
	"gender",
	"height",
	"weight",
	"activity_level",
	"health_goal",
	"dietary_restrictions",
	"allergies",
	"updated_at",
}

// HealthProfileRepository adds userId-keyed access to the CRUD contract.
type HealthProfileRepository interface {
	Repository[models.HealthProfile]
	FindByUserID(ctx context.Context, userID string) (*models.HealthProfile, error)
	// Upsert inserts profile or, when a row with the same user id exists,
	// replaces its fields in one statement. profile is reloaded afterwards so
	// it carries the stored id and created_at.
	Upsert(ctx context.Context, profile *models.HealthProfile) error
}

// GormHealthProfileRepository is the gorm-backed HealthProfileRepository.
type GormHealthProfileRepository struct {
	*GormRepository[models.HealthProfile]
}

var _ HealthProfileRepository = (*GormHealthProfileRepository)(nil)

// NewHealthProfileRepository creates a health profile repository.
func NewHealthProfileRepository(db *gorm.DB) *GormHealthProfileRepository {
	return &GormHealthProfileRepository{GormRepository: NewGormRepository[models.HealthProfile](db)}
}

func (r *GormHealthProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *GormHealthProfileRepository) Upsert(ctx context.Context, profile *models.HealthProfile) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(profileUpsertColumns),
	}).Create(profile).Error
	if err != nil {
		return err
	}

	stored, err := r.FindByUserID(ctx, profile.UserID)
	if err != nil {
		return err
	}
	*profile = *stored
	return nil
}
