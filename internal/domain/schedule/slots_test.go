package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func times(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestGenerateSlotsWalksRangeInSteps(t *testing.T) {
	date := day(2026, time.September, 7) // segunda
	now := day(2026, time.September, 1)

	slots := GenerateSlots(
		[]TimeRange{{StartTime: "09:00", EndTime: "11:00", SlotDurationMin: 30}},
		nil,
		date,
		now,
		0,
	)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, times(slots))
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateSlotsLastSlotMustFitEntirely(t *testing.T) {
	date := day(2026, time.September, 7)
	now := day(2026, time.September, 1)

	// 09:45 começa dentro da faixa, mas o fim (10:00) estoura: fica de fora
	slots := GenerateSlots(
		[]TimeRange{{StartTime: "09:00", EndTime: "09:45", SlotDurationMin: 15}},
		nil,
		date,
		now,
		0,
	)

	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, times(slots))
}

func TestGenerateSlotsEndBoundaryInclusive(t *testing.T) {
	date := day(2026, time.September, 7)
	now := day(2026, time.September, 1)

	// o slot cujo fim coincide com o fim da faixa entra
	slots := GenerateSlots(
		[]TimeRange{{StartTime: "09:00", EndTime: "10:00", SlotDurationMin: 30}},
		nil,
		date,
		now,
		0,
	)

	assert.Equal(t, []string{"09:00", "09:30"}, times(slots))
}

func TestGenerateSlotsBookedMarkedUnavailable(t *testing.T) {
	date := day(2026, time.September, 7)
	now := day(2026, time.September, 1)

	slots := GenerateSlots(
		[]TimeRange{{StartTime: "09:00", EndTime: "10:30", SlotDurationMin: 30}},
		map[string]bool{"09:30": true},
		date,
		now,
		0,
	)

	require.Len(t, slots, 3)
	assert.True(t, slots[0].Available)  // 09:00
	assert.False(t, slots[1].Available) // 09:30 ocupado
	assert.True(t, slots[2].Available)  // 10:00
}

func TestGenerateSlotsMultipleRangesSortedAndDeduped(t *testing.T) {
	date := day(2026, time.September, 7)
	now := day(2026, time.September, 1)

	slots := GenerateSlots(
		[]TimeRange{
			{StartTime: "14:00", EndTime: "15:00", SlotDurationMin: 30},
			{StartTime: "09:00", EndTime: "10:00", SlotDurationMin: 30},
			{StartTime: "09:30", EndTime: "10:30", SlotDurationMin: 30}, // 09:30 duplicado
		},
		nil,
		date,
		now,
		0,
	)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "14:00", "14:30"}, times(slots))
}

func TestGenerateSlotsMalformedRangeIgnored(t *testing.T) {
	date := day(2026, time.September, 7)
	now := day(2026, time.September, 1)

	slots := GenerateSlots(
		[]TimeRange{
			{StartTime: "12:00", EndTime: "09:00", SlotDurationMin: 30}, // invertida
			{StartTime: "xx:yy", EndTime: "10:00", SlotDurationMin: 30}, // não parseia
			{StartTime: "09:00", EndTime: "10:00", SlotDurationMin: 0},  // duração inválida
			{StartTime: "09:00", EndTime: "10:00", SlotDurationMin: 30}, // válida
		},
		nil,
		date,
		now,
		0,
	)

	assert.Equal(t, []string{"09:00", "09:30"}, times(slots))
}

func TestGenerateSlotsTodayCutoff(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, loc)
	now := time.Date(2026, time.September, 7, 10, 0, 0, 0, loc)

	slots := GenerateSlots(
		[]TimeRange{{StartTime: "09:00", EndTime: "12:00", SlotDurationMin: 60}},
		nil,
		date,
		now,
		0,
	)

	require.Equal(t, []string{"09:00", "10:00", "11:00"}, times(slots))
	assert.False(t, slots[0].Available) // passado
	assert.False(t, slots[1].Available) // exatamente now → not after
	assert.True(t, slots[2].Available)
}

func TestGenerateSlotsLeadTimePushesCutoff(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, loc)
	now := time.Date(2026, time.September, 7, 9, 30, 0, 0, loc)

	slots := GenerateSlots(
		[]TimeRange{{StartTime: "09:00", EndTime: "12:00", SlotDurationMin: 60}},
		nil,
		date,
		now,
		60, // corte em 10:30
	)

	require.Equal(t, []string{"09:00", "10:00", "11:00"}, times(slots))
	assert.False(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestGenerateSlotsPastDateAllUnavailable(t *testing.T) {
	date := day(2026, time.September, 1)
	now := day(2026, time.September, 7)

	slots := GenerateSlots(
		[]TimeRange{{StartTime: "09:00", EndTime: "10:00", SlotDurationMin: 30}},
		nil,
		date,
		now,
		0,
	)

	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.False(t, s.Available)
	}
}

func TestGenerateSlotsEmptyRanges(t *testing.T) {
	slots := GenerateSlots(nil, nil, day(2026, time.September, 7), day(2026, time.September, 1), 0)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}
