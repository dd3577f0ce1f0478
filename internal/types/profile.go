package types

import (
	"time"

	"github.com/pageza/diethub/backend/internal/models"
)

// DateLayout is how date-granular timestamps are rendered.
const DateLayout = "2006-01-02"

// HealthProfileRequest is the upsert body for a user's health profile.
type HealthProfileRequest struct {
	UserID              string   `json:"userId" binding:"required,notblank"`
	Age                 *int     `json:"age" binding:"omitempty,min=1"`
	Gender              *string  `json:"gender"`
	Height              *float64 `json:"height" binding:"omitempty,min=1"`
	Weight              *float64 `json:"weight" binding:"omitempty,min=1"`
	ActivityLevel       *string  `json:"activityLevel"`
	HealthGoal          *string  `json:"healthGoal"`
	DietaryRestrictions *string  `json:"dietaryRestrictions"`
	Allergies           *string  `json:"allergies"`
}

// Apply copies every profile field from the request onto p.
func (r *HealthProfileRequest) Apply(p *models.HealthProfile) {
	p.Age = r.Age
	p.Gender = r.Gender
	p.Height = r.Height
	p.Weight = r.Weight
	p.ActivityLevel = r.ActivityLevel
	p.HealthGoal = r.HealthGoal
	p.DietaryRestrictions = r.DietaryRestrictions
	p.Allergies = r.Allergies
}

// HealthProfileResponse is a stored profile plus the BMI derived from it.
type HealthProfileResponse struct {
	ID                  uint     `json:"id"`
	UserID              string   `json:"userId"`
	Age                 *int     `json:"age"`
	Gender              *string  `json:"gender"`
	Height              *float64 `json:"height"`
	Weight              *float64 `json:"weight"`
	ActivityLevel       *string  `json:"activityLevel"`
	HealthGoal          *string  `json:"healthGoal"`
	DietaryRestrictions *string  `json:"dietaryRestrictions"`
	Allergies           *string  `json:"allergies"`
	BMI                 *float64 `json:"bmi"`
	BMICategory         string   `json:"bmiCategory,omitempty"`
	CreatedAt           string   `json:"createdAt"`
	UpdatedAt           string   `json:"updatedAt"`
}

// NewHealthProfileResponse renders p, computing BMI at read time.
func NewHealthProfileResponse(p *models.HealthProfile) HealthProfileResponse {
	resp := HealthProfileResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		Age:                 p.Age,
		Gender:              p.Gender,
		Height:              p.Height,
		Weight:              p.Weight,
		ActivityLevel:       p.ActivityLevel,
		HealthGoal:          p.HealthGoal,
		DietaryRestrictions: p.DietaryRestrictions,
		Allergies:           p.Allergies,
		BMI:                 p.BMI(),
		CreatedAt:           time.Time(p.CreatedAt).Format(DateLayout),
		UpdatedAt:           time.Time(p.UpdatedAt).Format(DateLayout),
	}
	if resp.BMI != nil {
		resp.BMICategory = models.BMICategory(*resp.BMI)
	}
	return resp
}

// NewHealthProfileResponses renders a list, never returning nil.
func NewHealthProfileResponses(profiles []models.HealthProfile) []HealthProfileResponse {
	out := make([]HealthProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, NewHealthProfileResponse(&profiles[i]))
	}
	return out
}
