package mocks

import (
	"context"

	"github.com/pageza/diethub/backend/internal/models"
	"github.com/pageza/diethub/backend/internal/service"
	"github.com/pageza/diethub/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockProfileService is a mock implementation of the health profile service
type MockProfileService struct {
	mock.Mock
}

var _ service.IProfileService = (*MockProfileService)(nil)

// CreateOrUpdateProfile mocks the CreateOrUpdateProfile method
func (m *MockProfileService) CreateOrUpdateProfile(ctx context.Context, req *types.HealthProfileRequest) (*models.HealthProfile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthProfile), args.Error(1)
}

// GetProfileByUserID mocks the GetProfileByUserID method
func (m *MockProfileService) GetProfileByUserID(ctx context.Context, userID string) (*models.HealthProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthProfile), args.Error(1)
}

// ListProfiles mocks the ListProfiles method
func (m *MockProfileService) ListProfiles(ctx context.Context) ([]models.HealthProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HealthProfile), args.Error(1)
}

// DeleteProfile mocks the DeleteProfile method
func (m *MockProfileService) DeleteProfile(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
