package schedule

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AddWeeklySlotInput struct {
	DoctorID uint

	Weekday   int
	StartTime string // HH:MM
	EndTime   string // HH:MM

	// 0 = herda a duração padrão do médico
	SlotDurationMin int
}

// ======================================================
// USE CASE
// ======================================================

type AddWeeklySlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.AvailabilityCache
}

func NewAddWeeklySlot(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache cache.AvailabilityCache,
) *AddWeeklySlot {
	return &AddWeeklySlot{
		repo:  repo,
		audit: auditDispatcher,
		cache: availCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AddWeeklySlot) Execute(
	ctx context.Context,
	clinicID uint,
	staffID uint,
	in AddWeeklySlotInput,
) (*models.WeeklySchedule, error) {

	doctor, err := uc.repo.GetDoctor(ctx, in.DoctorID)
	if err != nil || doctor.ClinicID != clinicID {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	if !domain.IsValidWeekday(in.Weekday) {
		return nil, httperr.ErrBusiness("invalid_weekday")
	}

	if !domain.IsValidRange(in.StartTime, in.EndTime) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	if in.SlotDurationMin < 0 {
		return nil, httperr.ErrBusiness("invalid_slot_duration")
	}

	ws := &models.WeeklySchedule{
		DoctorID:        in.DoctorID,
		Weekday:         in.Weekday,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		SlotDurationMin: in.SlotDurationMin,
	}

	// validação de sobreposição + insert são atômicos no repositório
	if err := uc.repo.CreateWeeklySlot(ctx, ws); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicID,
		UserID:   &staffID,
		Action:   "weekly_slot_added",
		Entity:   "weekly_schedule",
		EntityID: &ws.ID,
	})

	uc.cache.InvalidateDoctor(ctx, in.DoctorID)

	return ws, nil
}
