package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type AddOverrideInput struct {
	DoctorID uint

	OverrideDate string // YYYY-MM-DD
	OverrideType string
	Reason       string

	// Obrigatórios apenas para special_hours
	StartTime string
	EndTime   string
}

// ======================================================
// USE CASE
// ======================================================

type AddOverride struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.AvailabilityCache
}

func NewAddOverride(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache cache.AvailabilityCache,
) *AddOverride {
	return &AddOverride{
		repo:  repo,
		audit: auditDispatcher,
		cache: availCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AddOverride) Execute(
	ctx context.Context,
	clinicID uint,
	staffID uint,
	in AddOverrideInput,
) (*models.ScheduleOverride, error) {

	doctor, err := uc.repo.GetDoctor(ctx, in.DoctorID)
	if err != nil || doctor.ClinicID != clinicID {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	clinic, err := uc.repo.GetClinicByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	if !domain.IsValidOverrideType(in.OverrideType) {
		return nil, httperr.ErrBusiness("invalid_override_type")
	}

	loc := timezone.Location(clinic.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.OverrideDate, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if date.Before(timezone.TodayIn(clinic.Timezone)) {
		return nil, httperr.ErrBusiness("past_date")
	}

	o := &models.ScheduleOverride{
		DoctorID:     in.DoctorID,
		OverrideDate: in.OverrideDate,
		OverrideType: in.OverrideType,
		Reason:       in.Reason,
	}

	if domain.OverrideType(in.OverrideType) == domain.OverrideSpecialHours {
		if !domain.IsValidRange(in.StartTime, in.EndTime) {
			return nil, httperr.ErrBusiness("invalid_special_hours")
		}
		o.StartTime = in.StartTime
		o.EndTime = in.EndTime
	}

	// pré-checagem rápida — o índice único é a guarda autoritativa
	existing, err := uc.repo.GetOverride(ctx, in.DoctorID, in.OverrideDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("override_exists")
	}

	if err := uc.repo.CreateOverride(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicID,
		UserID:   &staffID,
		Action:   "override_added",
		Entity:   "schedule_override",
		EntityID: &o.ID,
		Metadata: map[string]any{
			"date": in.OverrideDate,
			"type": in.OverrideType,
		},
	})

	uc.cache.InvalidateDoctor(ctx, in.DoctorID)

	return o, nil
}
