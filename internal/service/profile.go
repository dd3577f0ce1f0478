package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pageza/diethub/backend/internal/models"
	"github.com/pageza/diethub/backend/internal/repository"
	"github.com/pageza/diethub/backend/internal/types"
)

// ErrProfileNotFound is returned when no health profile matches the lookup.
var ErrProfileNotFound = fmt.Errorf("health profile %w", repository.ErrNotFound)

// ProfileService manages health profiles keyed by user id
type ProfileService struct {
	profiles repository.HealthProfileRepository
	now      func() time.Time
}

var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(profiles repository.HealthProfileRepository) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		now:      time.Now,
	}
}

// CreateOrUpdateProfile stores the profile for req.UserID, replacing every
// field of an existing one while keeping its id and creation date.
func (s *ProfileService) CreateOrUpdateProfile(ctx context.Context, req *types.HealthProfileRequest) (*models.HealthProfile, error) {
	profile := models.NewHealthProfile(req.UserID, s.now())
	req.Apply(profile)

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save health profile for user %s: %w", req.UserID, err)
	}
	return profile, nil
}

func (s *ProfileService) GetProfileByUserID(ctx context.Context, userID string) (*models.HealthProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("no health profile for user %s: %w", userID, ErrProfileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get health profile for user %s: %w", userID, err)
	}
	return profile, nil
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]models.HealthProfile, error) {
	return s.profiles.FindAll(ctx)
}

// DeleteProfile removes a profile by internal id. Missing ids are not an error.
func (s *ProfileService) DeleteProfile(ctx context.Context, id uint) error {
	if err := s.profiles.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete health profile %d: %w", id, err)
	}
	return nil
}
