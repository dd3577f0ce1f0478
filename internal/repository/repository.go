// Package repository holds the data-access layer. Every entity shares the CRUD
// contract in Repository; entity-specific queries live on the concrete types.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Record is a persisted row with a store-assigned numeric id.
type Record interface {
	GetID() uint
}

// Repository is the CRUD contract shared by all entities.
type Repository[T Record] interface {
	FindByID(ctx context.Context, id uint) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	// Save inserts the record when its id is zero and overwrites it otherwise.
	Save(ctx context.Context, record *T) error
	// DeleteByID succeeds whether or not the row exists.
	DeleteByID(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// GormRepository implements Repository on top of gorm.
type GormRepository[T Record] struct {
	db *gorm.DB
}

// NewGormRepository creates a repository for T.
func NewGormRepository[T Record](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func (r *GormRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *GormRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormRepository[T]) Save(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *GormRepository[T]) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(new(T), id).Error
}

func (r *GormRepository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// find runs query and always returns a non-nil slice so empty results encode
// as [] rather than null.
func (r *GormRepository[T]) find(query *gorm.DB) ([]T, error) {
	records := make([]T, 0)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
