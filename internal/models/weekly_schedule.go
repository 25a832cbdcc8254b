package models

import "time"

// WeeklySchedule é um intervalo recorrente de atendimento do médico
// (doctor_id × weekday × faixa de horário). Alterar = deletar + criar.
type WeeklySchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"index:idx_doctor_weekday" json:"doctor_id"`

	Weekday int `gorm:"index:idx_doctor_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	// 0 = herda default_slot_duration_min do médico
	SlotDurationMin int `gorm:"default:0" json:"slot_duration_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
