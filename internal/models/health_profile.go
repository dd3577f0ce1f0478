package models

import (
	"time"

	"gorm.io/datatypes"
)

// HealthProfile holds one user's body metrics and goals. Height is in
// centimetres and weight in kilograms.
type HealthProfile struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	UserID              string         `gorm:"size:255;not null;uniqueIndex" json:"userId"`
	Age                 *int           `json:"age"`
	Gender              *string        `gorm:"size:255" json:"gender"`
	Height              *float64       `json:"height"`
	Weight              *float64       `json:"weight"`
	ActivityLevel       *string        `gorm:"size:255" json:"activityLevel"`
	HealthGoal          *string        `gorm:"size:255" json:"healthGoal"`
	DietaryRestrictions *string        `gorm:"size:1000" json:"dietaryRestrictions"`
	Allergies           *string        `gorm:"size:1000" json:"allergies"`
	CreatedAt           datatypes.Date `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt           datatypes.Date `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (HealthProfile) TableName() string {
	return "health_profiles"
}

// GetID satisfies repository.Record.
func (p HealthProfile) GetID() uint {
	return p.ID
}

// NewHealthProfile builds an unsaved profile stamped with today's date.
func NewHealthProfile(userID string, now time.Time) *HealthProfile {
	today := DateOf(now)
	return &HealthProfile{
		UserID:    userID,
		CreatedAt: today,
		UpdatedAt: today,
	}
}

// BMI returns weight / (height in metres)^2, or nil when either value is
// missing or height is not positive.
func (p *HealthProfile) BMI() *float64 {
	return CalculateBMI(p.Height, p.Weight)
}

// CalculateBMI takes height in centimetres and weight in kilograms.
func CalculateBMI(heightCm, weightKg *float64) *float64 {
	if heightCm == nil || weightKg == nil || *heightCm <= 0 {
		return nil
	}
	m := *heightCm / 100
	bmi := *weightKg / (m * m)
	return &bmi
}

// BMICategory maps a BMI value onto the WHO adult classes.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// DateOf truncates t to a calendar date in t's location.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, t.Location()))
}
