package schedule

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type RemoveOverride struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.AvailabilityCache
}

func NewRemoveOverride(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache cache.AvailabilityCache,
) *RemoveOverride {
	return &RemoveOverride{
		repo:  repo,
		audit: auditDispatcher,
		cache: availCache,
	}
}

// Remover o override devolve a data ao comportamento do template semanal
func (uc *RemoveOverride) Execute(
	ctx context.Context,
	clinicID uint,
	staffID uint,
	doctorID uint,
	overrideID uint,
) error {

	doctor, err := uc.repo.GetDoctor(ctx, doctorID)
	if err != nil || doctor.ClinicID != clinicID {
		return httperr.ErrBusiness("doctor_not_found")
	}

	deleted, err := uc.repo.DeleteOverride(ctx, doctorID, overrideID)
	if err != nil {
		return err
	}

	if !deleted {
		return httperr.ErrBusiness("override_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicID,
		UserID:   &staffID,
		Action:   "override_removed",
		Entity:   "schedule_override",
		EntityID: &overrideID,
	})

	uc.cache.InvalidateDoctor(ctx, doctorID)

	return nil
}
