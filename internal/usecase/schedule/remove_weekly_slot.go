package schedule

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type RemoveWeeklySlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.AvailabilityCache
}

func NewRemoveWeeklySlot(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache cache.AvailabilityCache,
) *RemoveWeeklySlot {
	return &RemoveWeeklySlot{
		repo:  repo,
		audit: auditDispatcher,
		cache: availCache,
	}
}

func (uc *RemoveWeeklySlot) Execute(
	ctx context.Context,
	clinicID uint,
	staffID uint,
	doctorID uint,
	scheduleID uint,
) error {

	doctor, err := uc.repo.GetDoctor(ctx, doctorID)
	if err != nil || doctor.ClinicID != clinicID {
		return httperr.ErrBusiness("doctor_not_found")
	}

	deleted, err := uc.repo.DeleteWeeklySlot(ctx, doctorID, scheduleID)
	if err != nil {
		return err
	}

	// ausência é exposta (e não engolida) para manter a trilha de auditoria
	if !deleted {
		return httperr.ErrBusiness("schedule_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicID,
		UserID:   &staffID,
		Action:   "weekly_slot_removed",
		Entity:   "weekly_schedule",
		EntityID: &scheduleID,
	})

	uc.cache.InvalidateDoctor(ctx, doctorID)

	return nil
}
