package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Clinic --------
	GetClinicByID(
		ctx context.Context,
		id uint,
	) (*models.Clinic, error)

	GetClinicBySlug(
		ctx context.Context,
		slug string,
	) (*models.Clinic, error)

	// -------- Doctor --------
	GetDoctorForClinic(
		ctx context.Context,
		doctorID uint,
		clinicID uint,
	) (*models.User, error)

	// -------- Patient --------
	GetOrCreatePatient(
		ctx context.Context,
		clinicID uint,
		name string,
		phone string,
		email string,
	) (*models.Patient, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment insere dentro de transação com lock, revalidando
	// o conflito de horário; corridas perdidas viram time_conflict
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForClinic(
		ctx context.Context,
		appointmentID uint,
		clinicID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------

	// doctorID = 0 lista a clínica inteira
	ListAppointmentsForPeriod(
		ctx context.Context,
		clinicID uint,
		doctorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
