package models

import (
	"time"

	"gorm.io/datatypes"
)

// HealthRecord is a dated vital-signs reading. It only exists in the schema
// for now; nothing reads or writes it over HTTP.
type HealthRecord struct {
	ID                     uint           `gorm:"primarykey" json:"id"`
	UserID                 string         `gorm:"size:255;not null;index" json:"userId"`
	RecordDate             datatypes.Date `json:"recordDate"`
	Weight                 *float64       `json:"weight"`
	BloodPressureSystolic  *float64       `json:"bloodPressureSystolic"`
	BloodPressureDiastolic *float64       `json:"bloodPressureDiastolic"`
	BloodSugar             *float64       `json:"bloodSugar"`
	HeartRate              *int           `json:"heartRate"`
	Notes                  *string        `gorm:"size:500" json:"notes"`
	CreatedAt              datatypes.Date `gorm:"autoCreateTime:false" json:"createdAt"`
}

func (HealthRecord) TableName() string {
	return "health_records"
}

// GetID satisfies repository.Record.
func (r HealthRecord) GetID() uint {
	return r.ID
}

// Stamp sets CreatedAt to today and defaults an unset RecordDate to today.
func (r *HealthRecord) Stamp(now time.Time) {
	today := DateOf(now)
	if time.Time(r.RecordDate).IsZero() {
		r.RecordDate = today
	}
	r.CreatedAt = today
}
