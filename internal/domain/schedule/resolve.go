package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const FallbackSlotDurationMin = 30

// DefaultDuration resolve a duração padrão de slot do médico
func DefaultDuration(doctor *models.User) int {
	if doctor.DefaultSlotDurationMin > 0 {
		return doctor.DefaultSlotDurationMin
	}
	return FallbackSlotDurationMin
}

// EffectiveRanges resolve as faixas efetivas do médico para uma data:
//   - override bloqueante (holiday/leave/emergency) ⇒ nenhuma faixa
//   - special_hours ⇒ exatamente a faixa do override, com a duração
//     padrão do médico (substitui o template, não soma)
//   - sem override ⇒ todas as faixas do template semanal para o weekday
func EffectiveRanges(
	ctx context.Context,
	repo Repository,
	doctor *models.User,
	date time.Time,
) ([]TimeRange, error) {

	dateStr := date.Format("2006-01-02")

	override, err := repo.GetOverride(ctx, doctor.ID, dateStr)
	if err != nil {
		return nil, err
	}

	if override != nil {
		if OverrideType(override.OverrideType).Blocking() {
			return []TimeRange{}, nil
		}

		return []TimeRange{{
			StartTime:       override.StartTime,
			EndTime:         override.EndTime,
			SlotDurationMin: DefaultDuration(doctor),
		}}, nil
	}

	weekly, err := repo.ListWeeklySlots(ctx, doctor.ID, int(date.Weekday()))
	if err != nil {
		return nil, err
	}

	ranges := make([]TimeRange, 0, len(weekly))
	for _, ws := range weekly {
		dur := ws.SlotDurationMin
		if dur <= 0 {
			dur = DefaultDuration(doctor)
		}
		ranges = append(ranges, TimeRange{
			StartTime:       ws.StartTime,
			EndTime:         ws.EndTime,
			SlotDurationMin: dur,
		})
	}

	return ranges, nil
}
