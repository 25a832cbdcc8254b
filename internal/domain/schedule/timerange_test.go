package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesOfDay(t *testing.T) {
	m, err := MinutesOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = MinutesOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = MinutesOfDay("25:00")
	assert.Error(t, err)

	_, err = MinutesOfDay("9h30")
	assert.Error(t, err)
}

func TestIsValidRange(t *testing.T) {
	assert.True(t, IsValidRange("09:00", "12:00"))
	assert.False(t, IsValidRange("12:00", "09:00"))
	assert.False(t, IsValidRange("09:00", "09:00"))
	assert.False(t, IsValidRange("abc", "12:00"))
	assert.False(t, IsValidRange("09:00", ""))
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		s1, e1, s2, e2         string
		want                   bool
	}{
		{"contida", "09:00", "12:00", "10:00", "11:00", true},
		{"parcial", "09:00", "12:00", "11:00", "13:00", true},
		{"identica", "09:00", "12:00", "09:00", "12:00", true},
		{"adjacente nao sobrepoe", "09:00", "12:00", "12:00", "13:00", false},
		{"disjunta", "09:00", "10:00", "14:00", "15:00", false},
		{"malformada", "xx:yy", "12:00", "11:00", "13:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.s1, tt.e1, tt.s2, tt.e2))
		})
	}
}

func TestOverrideTypeBlocking(t *testing.T) {
	assert.True(t, OverrideHoliday.Blocking())
	assert.True(t, OverrideLeave.Blocking())
	assert.True(t, OverrideEmergency.Blocking())
	assert.False(t, OverrideSpecialHours.Blocking())

	// tipo desconhecido nunca é bloqueante
	assert.False(t, OverrideType("vacation").Blocking())
}

func TestIsValidWeekday(t *testing.T) {
	assert.True(t, IsValidWeekday(0))
	assert.True(t, IsValidWeekday(6))
	assert.False(t, IsValidWeekday(-1))
	assert.False(t, IsValidWeekday(7))
}
