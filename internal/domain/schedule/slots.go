package schedule

import (
	"sort"
	"time"
)

// GenerateSlots materializa a lista de horários do dia a partir das faixas
// efetivas. Puro: nunca lê relógio nem banco — `now` é injetado.
//
// Regras:
//   - caminha de start em passos de slot_duration_min; o último slot válido
//     é aquele cujo fim ainda cabe na faixa (start+d <= end)
//   - faixa malformada (start >= end, duração <= 0, hora não parseável) é
//     ignorada — dado histórico ruim não derruba a consulta
//   - candidatos duplicados entre faixas são deduplicados
//   - available = false quando o horário já está ocupado ou quando
//     start <= now + leadTime (para datas futuras nada é filtrado,
//     pois todo slot fica depois do corte)
func GenerateSlots(
	ranges []TimeRange,
	booked map[string]bool,
	date time.Time,
	now time.Time,
	leadTimeMin int,
) []Slot {

	loc := date.Location()
	cutoff := now.Add(time.Duration(leadTimeMin) * time.Minute)

	seen := make(map[string]time.Time)

	for _, r := range ranges {
		start, err := parseHMOn(date, r.StartTime, loc)
		if err != nil {
			continue
		}
		end, err := parseHMOn(date, r.EndTime, loc)
		if err != nil {
			continue
		}
		if !start.Before(end) || r.SlotDurationMin <= 0 {
			continue
		}

		d := time.Duration(r.SlotDurationMin) * time.Minute

		for cur := start; !cur.Add(d).After(end); cur = cur.Add(d) {
			key := cur.Format("15:04")
			if _, ok := seen[key]; !ok {
				seen[key] = cur
			}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	slots := make([]Slot, 0, len(keys))
	for _, k := range keys {
		at := seen[k]
		slots = append(slots, Slot{
			Time:      k,
			Available: !booked[k] && at.After(cutoff),
		})
	}

	return slots
}

// materializa "HH:MM" na data consultada
func parseHMOn(date time.Time, hm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}
