package dto

import "time"

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	Code             string    `json:"code"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	ConsultationType string    `json:"consultation_type"`
	PatientName      string    `json:"patient_name"`
	DoctorName       string    `json:"doctor_name"`
}
