package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	domainsched "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// MOCKS
// ======================================================

type mockApptRepo struct {
	domain.Repository

	clinic       *models.Clinic
	doctor       *models.User
	appointments []models.Appointment

	nextID uint
}

func newApptRepo() *mockApptRepo {
	return &mockApptRepo{
		clinic: &models.Clinic{ID: 1, Timezone: "UTC"},
		doctor: &models.User{
			ID:                     1,
			ClinicID:               1,
			Name:                   "Dra. Helena",
			Role:                   models.RoleDoctor,
			DefaultSlotDurationMin: 30,
		},
		nextID: 1,
	}
}

func (m *mockApptRepo) GetClinicByID(ctx context.Context, id uint) (*models.Clinic, error) {
	return m.clinic, nil
}

func (m *mockApptRepo) GetClinicBySlug(ctx context.Context, slug string) (*models.Clinic, error) {
	return m.clinic, nil
}

func (m *mockApptRepo) GetDoctorForClinic(ctx context.Context, doctorID, clinicID uint) (*models.User, error) {
	if m.doctor == nil || m.doctor.ID != doctorID || m.doctor.ClinicID != clinicID {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}
	return m.doctor, nil
}

func (m *mockApptRepo) GetOrCreatePatient(ctx context.Context, clinicID uint, name, phone, email string) (*models.Patient, error) {
	return &models.Patient{ID: 7, ClinicID: clinicID, Name: name, Phone: phone, Email: email}, nil
}

func (m *mockApptRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	for _, existing := range m.appointments {
		if existing.DoctorID == ap.DoctorID &&
			domain.Occupies(domain.Status(existing.Status)) &&
			ap.StartTime.Before(existing.EndTime) &&
			existing.StartTime.Before(ap.EndTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	ap.ID = m.nextID
	m.nextID++
	m.appointments = append(m.appointments, *ap)
	return nil
}

func (m *mockApptRepo) GetAppointmentForClinic(ctx context.Context, appointmentID, clinicID uint) (*models.Appointment, error) {
	for i := range m.appointments {
		if m.appointments[i].ID == appointmentID && m.appointments[i].ClinicID == clinicID {
			return &m.appointments[i], nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (m *mockApptRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	for i := range m.appointments {
		if m.appointments[i].ID == ap.ID {
			m.appointments[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

// agenda do médico para resolução de faixas efetivas
type mockSchedRepo struct {
	domainsched.Repository

	weekly []models.WeeklySchedule
}

func (m *mockSchedRepo) GetOverride(ctx context.Context, doctorID uint, date string) (*models.ScheduleOverride, error) {
	return nil, nil
}

func (m *mockSchedRepo) ListWeeklySlots(ctx context.Context, doctorID uint, weekday int) ([]models.WeeklySchedule, error) {
	out := []models.WeeklySchedule{}
	for _, ws := range m.weekly {
		if ws.Weekday == weekday {
			out = append(out, ws)
		}
	}
	return out, nil
}

// ======================================================
// HELPERS
// ======================================================

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func fullWeekSchedule(start, end string, dur int) *mockSchedRepo {
	weekly := make([]models.WeeklySchedule, 0, 7)
	for wd := 0; wd <= 6; wd++ {
		weekly = append(weekly, models.WeeklySchedule{
			DoctorID:        1,
			Weekday:         wd,
			StartTime:       start,
			EndTime:         end,
			SlotDurationMin: dur,
		})
	}
	return &mockSchedRepo{weekly: weekly}
}

func futureDate(daysAhead int) string {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func newCreateUC(repo *mockApptRepo, sched *mockSchedRepo) *CreateAppointment {
	return NewCreateAppointment(repo, sched, testDispatcher(), cache.NewNoopAvailabilityCache())
}

func baseInput(date, hm string) CreateAppointmentInput {
	return CreateAppointmentInput{
		ClinicID:         1,
		DoctorID:         1,
		PatientName:      "João Silva",
		PatientPhone:     "11999990000",
		Date:             date,
		Time:             hm,
		ConsultationType: "in_person",
	}
}

// ======================================================
// TESTS
// ======================================================

func TestCreateAppointment(t *testing.T) {
	repo := newApptRepo()
	uc := newCreateUC(repo, fullWeekSchedule("09:00", "18:00", 30))

	ap, err := uc.Execute(context.Background(), baseInput(futureDate(7), "10:00"))
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.NotEmpty(t, ap.Code)
	assert.Equal(t, "scheduled", ap.Status)
	assert.Equal(t, uint(7), ap.PatientID)

	// fim do slot deriva da duração da faixa
	assert.Equal(t, 30*time.Minute, ap.EndTime.Sub(ap.StartTime))
}

func TestCreateAppointmentTimeConflict(t *testing.T) {
	repo := newApptRepo()
	uc := newCreateUC(repo, fullWeekSchedule("09:00", "18:00", 30))

	date := futureDate(7)

	_, err := uc.Execute(context.Background(), baseInput(date, "10:00"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), baseInput(date, "10:00"))
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// slot vizinho continua livre
	_, err = uc.Execute(context.Background(), baseInput(date, "10:30"))
	assert.NoError(t, err)
}

func TestCreateAppointmentCancelledSlotReusable(t *testing.T) {
	repo := newApptRepo()
	uc := newCreateUC(repo, fullWeekSchedule("09:00", "18:00", 30))
	cancel := NewCancelAppointment(repo, testDispatcher(), cache.NewNoopAvailabilityCache())

	date := futureDate(7)

	ap, err := uc.Execute(context.Background(), baseInput(date, "10:00"))
	require.NoError(t, err)

	_, err = cancel.Execute(context.Background(), 1, 10, ap.ID)
	require.NoError(t, err)

	// cancelado não ocupa mais o horário
	_, err = uc.Execute(context.Background(), baseInput(date, "10:00"))
	assert.NoError(t, err)
}

func TestCreateAppointmentOutsideSchedule(t *testing.T) {
	uc := newCreateUC(newApptRepo(), fullWeekSchedule("09:00", "12:00", 30))

	date := futureDate(7)

	_, err := uc.Execute(context.Background(), baseInput(date, "14:00"))
	assert.True(t, httperr.IsBusiness(err, "outside_schedule"))

	// desalinhado do passo da faixa
	_, err = uc.Execute(context.Background(), baseInput(date, "09:10"))
	assert.True(t, httperr.IsBusiness(err, "outside_schedule"))

	// último início que ainda cabe inteiro
	_, err = uc.Execute(context.Background(), baseInput(date, "11:30"))
	assert.NoError(t, err)

	// começaria dentro mas terminaria fora
	_, err = uc.Execute(context.Background(), baseInput(date, "12:00"))
	assert.True(t, httperr.IsBusiness(err, "outside_schedule"))
}

func TestCreateAppointmentTooSoon(t *testing.T) {
	uc := newCreateUC(newApptRepo(), fullWeekSchedule("00:00", "23:30", 30))

	past := time.Now().UTC().AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), baseInput(past.Format("2006-01-02"), "10:00"))
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreateAppointmentInvalidInput(t *testing.T) {
	uc := newCreateUC(newApptRepo(), fullWeekSchedule("09:00", "18:00", 30))

	_, err := uc.Execute(context.Background(), baseInput("2026-13-40", "10:00"))
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	in := baseInput(futureDate(7), "10:00")
	in.ConsultationType = "home_visit"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_consultation_type"))

	in = baseInput(futureDate(7), "10:00")
	in.DoctorID = 99
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
}
