package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// MOCK REPOSITORY
// ======================================================

type mockRepo struct {
	domain.Repository

	clinic   *models.Clinic
	doctor   *models.User
	override *models.ScheduleOverride
	weekly   []models.WeeklySchedule
	booked   map[string]bool
}

func (m *mockRepo) GetClinicByID(ctx context.Context, id uint) (*models.Clinic, error) {
	return m.clinic, nil
}

func (m *mockRepo) GetDoctor(ctx context.Context, doctorID uint) (*models.User, error) {
	if m.doctor == nil || m.doctor.ID != doctorID {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}
	return m.doctor, nil
}

func (m *mockRepo) GetOverride(ctx context.Context, doctorID uint, date string) (*models.ScheduleOverride, error) {
	if m.override != nil && m.override.OverrideDate == date {
		return m.override, nil
	}
	return nil, nil
}

func (m *mockRepo) ListWeeklySlots(ctx context.Context, doctorID uint, weekday int) ([]models.WeeklySchedule, error) {
	out := []models.WeeklySchedule{}
	for _, ws := range m.weekly {
		if ws.Weekday == weekday {
			out = append(out, ws)
		}
	}
	return out, nil
}

func (m *mockRepo) GetBookedStartTimes(ctx context.Context, doctorID uint, dayStart, dayEnd time.Time) (map[string]bool, error) {
	if m.booked == nil {
		return map[string]bool{}, nil
	}
	return m.booked, nil
}

// ======================================================
// HELPERS
// ======================================================

// agendas recorrentes cobrem todos os weekdays para que a data futura
// escolhida dinamicamente sempre caia numa faixa
func allWeekdays(start, end string, dur int) []models.WeeklySchedule {
	out := make([]models.WeeklySchedule, 0, 7)
	for wd := 0; wd <= 6; wd++ {
		out = append(out, models.WeeklySchedule{
			DoctorID:        1,
			Weekday:         wd,
			StartTime:       start,
			EndTime:         end,
			SlotDurationMin: dur,
		})
	}
	return out
}

func futureDate(daysAhead int) string {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func newRepo() *mockRepo {
	doctor := &models.User{
		ID:                     1,
		ClinicID:               1,
		Role:                   models.RoleDoctor,
		DefaultSlotDurationMin: 30,
	}
	return &mockRepo{
		clinic: &models.Clinic{ID: 1, Timezone: "UTC"},
		doctor: doctor,
		weekly: allWeekdays("09:00", "11:00", 30),
	}
}

// ======================================================
// TESTS
// ======================================================

func TestGetAvailableSlotsHappyPath(t *testing.T) {
	uc := NewGetAvailableSlots(newRepo(), cache.NewNoopAvailabilityCache(), 0)

	slots, err := uc.Execute(context.Background(), Input{
		DoctorID:         1,
		Date:             futureDate(7),
		ConsultationType: "in_person",
	})
	require.NoError(t, err)

	require.Len(t, slots, 4)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "10:30", slots[3].Time)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGetAvailableSlotsIsIdempotent(t *testing.T) {
	uc := NewGetAvailableSlots(newRepo(), cache.NewNoopAvailabilityCache(), 0)

	in := Input{DoctorID: 1, Date: futureDate(7), ConsultationType: "online"}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailableSlotsBookedUnavailable(t *testing.T) {
	repo := newRepo()
	repo.booked = map[string]bool{"09:30": true}

	uc := NewGetAvailableSlots(repo, cache.NewNoopAvailabilityCache(), 0)

	slots, err := uc.Execute(context.Background(), Input{
		DoctorID:         1,
		Date:             futureDate(7),
		ConsultationType: "in_person",
	})
	require.NoError(t, err)

	require.Len(t, slots, 4)
	assert.False(t, slots[1].Available)
	assert.True(t, slots[0].Available)
}

func TestGetAvailableSlotsBlockingOverride(t *testing.T) {
	date := futureDate(7)

	repo := newRepo()
	repo.override = &models.ScheduleOverride{
		DoctorID:     1,
		OverrideDate: date,
		OverrideType: "holiday",
	}

	uc := NewGetAvailableSlots(repo, cache.NewNoopAvailabilityCache(), 0)

	slots, err := uc.Execute(context.Background(), Input{
		DoctorID:         1,
		Date:             date,
		ConsultationType: "in_person",
	})
	require.NoError(t, err)

	// dia bloqueado não é erro: lista vazia
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetAvailableSlotsSpecialHoursReplacesTemplate(t *testing.T) {
	date := futureDate(7)

	repo := newRepo()
	repo.override = &models.ScheduleOverride{
		DoctorID:     1,
		OverrideDate: date,
		OverrideType: "special_hours",
		StartTime:    "10:00",
		EndTime:      "12:00",
	}

	uc := NewGetAvailableSlots(repo, cache.NewNoopAvailabilityCache(), 0)

	slots, err := uc.Execute(context.Background(), Input{
		DoctorID:         1,
		Date:             date,
		ConsultationType: "in_person",
	})
	require.NoError(t, err)

	require.Len(t, slots, 4)
	assert.Equal(t, "10:00", slots[0].Time)
	assert.Equal(t, "11:30", slots[3].Time)
}

func TestGetAvailableSlotsUnknownDoctor(t *testing.T) {
	uc := NewGetAvailableSlots(newRepo(), cache.NewNoopAvailabilityCache(), 0)

	_, err := uc.Execute(context.Background(), Input{
		DoctorID:         99,
		Date:             futureDate(7),
		ConsultationType: "in_person",
	})
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
}

func TestGetAvailableSlotsWrongClinicScoped(t *testing.T) {
	uc := NewGetAvailableSlots(newRepo(), cache.NewNoopAvailabilityCache(), 0)

	// médico existe, mas pertence a outra clínica
	_, err := uc.Execute(context.Background(), Input{
		DoctorID:         1,
		Date:             futureDate(7),
		ConsultationType: "in_person",
		ClinicID:         2,
	})
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
}

func TestGetAvailableSlotsInvalidDate(t *testing.T) {
	uc := NewGetAvailableSlots(newRepo(), cache.NewNoopAvailabilityCache(), 0)

	_, err := uc.Execute(context.Background(), Input{
		DoctorID:         1,
		Date:             "07/09/2026",
		ConsultationType: "in_person",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestGetAvailableSlotsInvalidConsultationType(t *testing.T) {
	uc := NewGetAvailableSlots(newRepo(), cache.NewNoopAvailabilityCache(), 0)

	_, err := uc.Execute(context.Background(), Input{
		DoctorID:         1,
		Date:             futureDate(7),
		ConsultationType: "home_visit",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_consultation_type"))
}

func TestGetAvailableSlotsBeyondHorizon(t *testing.T) {
	uc := NewGetAvailableSlots(newRepo(), cache.NewNoopAvailabilityCache(), 30)

	_, err := uc.Execute(context.Background(), Input{
		DoctorID:         1,
		Date:             futureDate(45),
		ConsultationType: "in_person",
	})
	assert.True(t, httperr.IsBusiness(err, "date_out_of_range"))
}

func TestGetAvailableSlotsNoScheduleConfigured(t *testing.T) {
	repo := newRepo()
	repo.weekly = nil

	uc := NewGetAvailableSlots(repo, cache.NewNoopAvailabilityCache(), 0)

	slots, err := uc.Execute(context.Background(), Input{
		DoctorID:         1,
		Date:             futureDate(7),
		ConsultationType: "in_person",
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}
