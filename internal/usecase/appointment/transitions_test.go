package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

func TestCompleteAppointment(t *testing.T) {
	repo := newApptRepo()
	create := newCreateUC(repo, fullWeekSchedule("09:00", "18:00", 30))
	complete := NewCompleteAppointment(repo, testDispatcher())

	ap, err := create.Execute(context.Background(), baseInput(futureDate(7), "10:00"))
	require.NoError(t, err)

	done, err := complete.Execute(context.Background(), 1, 10, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", done.Status)
	require.NotNil(t, done.CompletedAt)

	// concluído continua ocupando o horário
	_, err = create.Execute(context.Background(), baseInput(futureDate(7), "10:00"))
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// segunda conclusão é inválida
	_, err = complete.Execute(context.Background(), 1, 10, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestMarkNoShowFreesSlot(t *testing.T) {
	repo := newApptRepo()
	create := newCreateUC(repo, fullWeekSchedule("09:00", "18:00", 30))
	noShow := NewMarkNoShow(repo, testDispatcher(), cache.NewNoopAvailabilityCache())

	date := futureDate(7)

	ap, err := create.Execute(context.Background(), baseInput(date, "10:00"))
	require.NoError(t, err)

	marked, err := noShow.Execute(context.Background(), 1, 10, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "no_show", marked.Status)

	_, err = create.Execute(context.Background(), baseInput(date, "10:00"))
	assert.NoError(t, err)
}

func TestTransitionsUnknownAppointment(t *testing.T) {
	repo := newApptRepo()
	cancel := NewCancelAppointment(repo, testDispatcher(), cache.NewNoopAvailabilityCache())

	_, err := cancel.Execute(context.Background(), 1, 10, 999)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
