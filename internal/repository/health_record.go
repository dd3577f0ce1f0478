package repository

import (
	"github.com/pageza/diethub/backend/internal/models"
	"gorm.io/gorm"
)

// NewHealthRecordRepository creates a plain CRUD repository for health records.
func NewHealthRecordRepository(db *gorm.DB) *GormRepository[models.HealthRecord] {
	return NewGormRepository[models.HealthRecord](db)
}
