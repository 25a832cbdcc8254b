package models

import "time"

// ScheduleOverride é uma exceção pontual por data que substitui a agenda
// semanal do médico. Máximo de um override por (doctor_id, override_date) —
// garantido pelo índice único (guarda autoritativa contra corrida).
type ScheduleOverride struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"uniqueIndex:idx_doctor_override_date" json:"doctor_id"`

	OverrideDate string `gorm:"size:10;uniqueIndex:idx_doctor_override_date" json:"override_date"`
	OverrideType string `gorm:"size:20;not null" json:"override_type"`
	Reason       string `gorm:"size:255" json:"reason"`

	// Preenchidos apenas quando override_type = special_hours
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
