package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	domainsched "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClinicID uint
	DoctorID uint

	PatientName  string
	PatientPhone string
	PatientEmail string

	Date string // YYYY-MM-DD
	Time string // HH:MM

	ConsultationType string
	Notes            string

	// nil nos agendamentos públicos (paciente self-service)
	CreatedBy *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	schedRepo domainsched.Repository
	audit     *audit.Dispatcher
	cache     cache.AvailabilityCache
}

func NewCreateAppointment(
	repo domain.Repository,
	schedRepo domainsched.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache cache.AvailabilityCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		schedRepo: schedRepo,
		audit:     auditDispatcher,
		cache:     availCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Clínica e médico
	// --------------------------------------------------
	clinic, err := uc.repo.GetClinicByID(ctx, in.ClinicID)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.repo.GetDoctorForClinic(ctx, in.DoctorID, in.ClinicID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	if !domain.IsValidConsultationType(in.ConsultationType) {
		return nil, httperr.ErrBusiness("invalid_consultation_type")
	}

	// --------------------------------------------------
	// 2. Data / hora no timezone da clínica
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(clinic.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3. Corte de horário já decorrido + antecedência
	// --------------------------------------------------
	now := timezone.NowIn(clinic.Timezone)
	cutoff := now.Add(time.Duration(clinic.LeadTimeMinutes) * time.Minute)
	if !start.After(cutoff) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 4. O horário tem que ser um slot real da agenda
	//    (faixa efetiva da data + alinhamento ao passo)
	// --------------------------------------------------
	date := timezone.Midnight(start)

	ranges, err := domainsched.EffectiveRanges(ctx, uc.schedRepo, doctor, date)
	if err != nil {
		return nil, err
	}

	durationMin, err := slotDurationAt(ranges, in.Time)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(durationMin) * time.Minute)

	// --------------------------------------------------
	// 5. Paciente (get or create)
	// --------------------------------------------------
	patient, err := uc.repo.GetOrCreatePatient(
		ctx,
		in.ClinicID,
		in.PatientName,
		in.PatientPhone,
		in.PatientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Criação — conflito revalidado na transação,
	//    índice único do banco decide a corrida
	// --------------------------------------------------
	ap := &models.Appointment{
		Code:             uuid.NewString(),
		ClinicID:         in.ClinicID,
		DoctorID:         in.DoctorID,
		PatientID:        patient.ID,
		StartTime:        start,
		EndTime:          end,
		ConsultationType: in.ConsultationType,
		Status:           string(domain.InitialStatus()),
		Notes:            in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Auditoria + invalidação do snapshot
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ClinicID: in.ClinicID,
		UserID:   in.CreatedBy,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.cache.InvalidateDoctor(ctx, in.DoctorID)

	return ap, nil
}

// slotDurationAt localiza a faixa que contém o horário pedido e devolve a
// duração do slot; horário fora das faixas ou desalinhado do passo é
// rejeitado antes de tocar o banco
func slotDurationAt(ranges []domainsched.TimeRange, hm string) (int, error) {

	startMin, err := domainsched.MinutesOfDay(hm)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_date_or_time")
	}

	for _, r := range ranges {
		rs, err := domainsched.MinutesOfDay(r.StartTime)
		if err != nil {
			continue
		}
		re, err := domainsched.MinutesOfDay(r.EndTime)
		if err != nil {
			continue
		}
		if r.SlotDurationMin <= 0 || rs >= re {
			continue
		}

		if startMin >= rs &&
			(startMin-rs)%r.SlotDurationMin == 0 &&
			startMin+r.SlotDurationMin <= re {
			return r.SlotDurationMin, nil
		}
	}

	return 0, httperr.ErrBusiness("outside_schedule")
}
