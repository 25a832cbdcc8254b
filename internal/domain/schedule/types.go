package schedule

// ===============================
// Override Types
// ===============================

type OverrideType string

const (
	OverrideHoliday      OverrideType = "holiday"
	OverrideLeave        OverrideType = "leave"
	OverrideEmergency    OverrideType = "emergency"
	OverrideSpecialHours OverrideType = "special_hours"
)

var validOverrideTypes = map[OverrideType]bool{
	OverrideHoliday:      true,
	OverrideLeave:        true,
	OverrideEmergency:    true,
	OverrideSpecialHours: true,
}

func IsValidOverrideType(t string) bool {
	return validOverrideTypes[OverrideType(t)]
}

// Blocking indica se o override zera a agenda do dia inteiro
func (t OverrideType) Blocking() bool {
	return validOverrideTypes[t] && t != OverrideSpecialHours
}

// ===============================
// Core Types
// ===============================

// TimeRange é uma faixa efetiva de atendimento em um dia
// (template semanal ou special_hours já resolvido)
type TimeRange struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	SlotDurationMin int    `json:"slot_duration_min"`
}

// Slot é um horário discreto agendável, derivado de uma TimeRange.
// Nunca persistido — sempre recalculado por consulta.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func IsValidWeekday(d int) bool {
	return d >= 0 && d <= 6
}
