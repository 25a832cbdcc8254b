package appointment

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// Somente consultas não canceladas / não no-show ocupam horário
func Occupies(current Status) bool {
	return current != StatusCancelled && current != StatusNoShow
}

// ===============================
// Consultation Type
// ===============================

type ConsultationType string

const (
	ConsultationInPerson ConsultationType = "in_person"
	ConsultationOnline   ConsultationType = "online"
)

// Tipos compartilham a mesma capacidade física: uma consulta de um tipo
// bloqueia o mesmo horário para o outro
func IsValidConsultationType(t string) bool {
	ct := ConsultationType(t)
	return ct == ConsultationInPerson || ct == ConsultationOnline
}

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
