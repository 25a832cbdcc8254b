package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Clinic / Doctor --------
	GetClinicByID(
		ctx context.Context,
		id uint,
	) (*models.Clinic, error)

	GetDoctor(
		ctx context.Context,
		doctorID uint,
	) (*models.User, error)

	// -------- Weekly template --------
	ListWeeklySlots(
		ctx context.Context,
		doctorID uint,
		weekday int,
	) ([]models.WeeklySchedule, error)

	ListAllWeeklySlots(
		ctx context.Context,
		doctorID uint,
	) ([]models.WeeklySchedule, error)

	CreateWeeklySlot(
		ctx context.Context,
		ws *models.WeeklySchedule,
	) error

	DeleteWeeklySlot(
		ctx context.Context,
		doctorID uint,
		scheduleID uint,
	) (bool, error)

	// -------- Overrides --------

	// GetOverride retorna (nil, nil) quando não há override para a data
	GetOverride(
		ctx context.Context,
		doctorID uint,
		date string,
	) (*models.ScheduleOverride, error)

	ListOverrides(
		ctx context.Context,
		doctorID uint,
		fromDate string,
	) ([]models.ScheduleOverride, error)

	CreateOverride(
		ctx context.Context,
		o *models.ScheduleOverride,
	) error

	DeleteOverride(
		ctx context.Context,
		doctorID uint,
		overrideID uint,
	) (bool, error)

	// -------- Booking ledger (somente leitura) --------

	// GetBookedStartTimes retorna os inícios "HH:MM" ocupados no dia,
	// excluindo cancelados e no-show
	GetBookedStartTimes(
		ctx context.Context,
		doctorID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) (map[string]bool, error)
}
