package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	domainappt "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type Input struct {
	DoctorID         uint
	Date             string // YYYY-MM-DD
	ConsultationType string

	// ClinicID != 0 exige que o médico pertença à clínica do chamador
	ClinicID uint
}

// ======================================================
// USE CASE
// ======================================================

// GetAvailableSlots é o único ponto de entrada consumido pelos fluxos de
// agendamento (paciente, recepção, quick-book). Leitura pura: seguro para
// chamadas concorrentes/repetidas — o snapshot é exato no momento da
// consulta, a unicidade na hora do commit é garantia da constraint única no banco.
type GetAvailableSlots struct {
	repo           domain.Repository
	cache          cache.AvailabilityCache
	maxBookingDays int
}

func NewGetAvailableSlots(
	repo domain.Repository,
	availCache cache.AvailabilityCache,
	maxBookingDays int,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:           repo,
		cache:          availCache,
		maxBookingDays: maxBookingDays,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in Input,
) ([]domain.Slot, error) {

	// Tipos in_person/online compartilham a mesma agenda física:
	// o tipo é validado, mas não altera o cálculo
	if !domainappt.IsValidConsultationType(in.ConsultationType) {
		return nil, httperr.ErrBusiness("invalid_consultation_type")
	}

	doctor, err := uc.repo.GetDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	if in.ClinicID != 0 && doctor.ClinicID != in.ClinicID {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	clinic, err := uc.repo.GetClinicByID(ctx, doctor.ClinicID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(clinic.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := timezone.NowIn(clinic.Timezone)

	if uc.maxBookingDays > 0 {
		horizon := timezone.Midnight(now).AddDate(0, 0, uc.maxBookingDays)
		if date.After(horizon) {
			return nil, httperr.ErrBusiness("date_out_of_range")
		}
	}

	// Snapshot de hoje depende de `now` — só datas futuras são cacheáveis
	cacheable := in.Date != now.Format("2006-01-02")
	if cacheable {
		if slots, ok := uc.cache.GetSlots(ctx, doctor.ID, in.Date); ok {
			return slots, nil
		}
	}

	ranges, err := domain.EffectiveRanges(ctx, uc.repo, doctor, date)
	if err != nil {
		return nil, err
	}

	// Médico sem agenda configurada (ou dia bloqueado) não é erro:
	// lista vazia
	if len(ranges) == 0 {
		empty := []domain.Slot{}
		if cacheable {
			uc.cache.SetSlots(ctx, doctor.ID, in.Date, empty)
		}
		return empty, nil
	}

	dayStart := date
	dayEnd := date.Add(24 * time.Hour)

	booked, err := uc.repo.GetBookedStartTimes(ctx, doctor.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := domain.GenerateSlots(ranges, booked, date, now, clinic.LeadTimeMinutes)

	if cacheable {
		uc.cache.SetSlots(ctx, doctor.ID, in.Date, slots)
	}

	return slots, nil
}
