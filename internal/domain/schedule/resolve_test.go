package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// fakeRepo cobre apenas o que EffectiveRanges consome
type fakeRepo struct {
	Repository

	override *models.ScheduleOverride
	weekly   []models.WeeklySchedule
}

func (f *fakeRepo) GetOverride(ctx context.Context, doctorID uint, date string) (*models.ScheduleOverride, error) {
	return f.override, nil
}

func (f *fakeRepo) ListWeeklySlots(ctx context.Context, doctorID uint, weekday int) ([]models.WeeklySchedule, error) {
	return f.weekly, nil
}

func TestEffectiveRangesWeeklyTemplate(t *testing.T) {
	doctor := &models.User{DefaultSlotDurationMin: 30}
	doctor.ID = 1

	repo := &fakeRepo{
		weekly: []models.WeeklySchedule{
			{DoctorID: 1, Weekday: 1, StartTime: "09:00", EndTime: "12:00", SlotDurationMin: 20},
			{DoctorID: 1, Weekday: 1, StartTime: "14:00", EndTime: "18:00", SlotDurationMin: 0}, // herda
		},
	}

	ranges, err := EffectiveRanges(context.Background(), repo, doctor, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, ranges, 2)
	assert.Equal(t, 20, ranges[0].SlotDurationMin)
	assert.Equal(t, 30, ranges[1].SlotDurationMin) // duração padrão do médico
}

func TestEffectiveRangesBlockingOverride(t *testing.T) {
	doctor := &models.User{}
	doctor.ID = 1

	repo := &fakeRepo{
		override: &models.ScheduleOverride{OverrideType: "holiday"},
		weekly: []models.WeeklySchedule{
			{DoctorID: 1, Weekday: 1, StartTime: "09:00", EndTime: "12:00", SlotDurationMin: 30},
		},
	}

	ranges, err := EffectiveRanges(context.Background(), repo, doctor, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestEffectiveRangesSpecialHoursReplacesTemplate(t *testing.T) {
	doctor := &models.User{DefaultSlotDurationMin: 30}
	doctor.ID = 1

	repo := &fakeRepo{
		override: &models.ScheduleOverride{
			OverrideType: "special_hours",
			StartTime:    "10:00",
			EndTime:      "12:00",
		},
		weekly: []models.WeeklySchedule{
			{DoctorID: 1, Weekday: 1, StartTime: "08:00", EndTime: "18:00", SlotDurationMin: 15},
		},
	}

	ranges, err := EffectiveRanges(context.Background(), repo, doctor, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, ranges, 1)
	assert.Equal(t, "10:00", ranges[0].StartTime)
	assert.Equal(t, "12:00", ranges[0].EndTime)
	assert.Equal(t, 30, ranges[0].SlotDurationMin) // substitui, não soma
}

func TestDefaultDurationFallback(t *testing.T) {
	assert.Equal(t, 45, DefaultDuration(&models.User{DefaultSlotDurationMin: 45}))
	assert.Equal(t, FallbackSlotDurationMin, DefaultDuration(&models.User{}))
}
