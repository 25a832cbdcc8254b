package schedule

import "time"

// MinutesOfDay converte "HH:MM" em minutos desde meia-noite
func MinutesOfDay(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsValidRange valida formato e start < end
func IsValidRange(start, end string) bool {
	s, err := MinutesOfDay(start)
	if err != nil {
		return false
	}
	e, err := MinutesOfDay(end)
	if err != nil {
		return false
	}
	return s < e
}

// RangesOverlap aplica o teste de sobreposição de faixas semiabertas:
// [s1,e1) e [s2,e2) se sobrepõem sse s1 < e2 && s2 < e1.
// Faixas malformadas nunca se sobrepõem (rejeitadas antes, na validação).
func RangesOverlap(start1, end1, start2, end2 string) bool {
	s1, err := MinutesOfDay(start1)
	if err != nil {
		return false
	}
	e1, err := MinutesOfDay(end1)
	if err != nil {
		return false
	}
	s2, err := MinutesOfDay(start2)
	if err != nil {
		return false
	}
	e2, err := MinutesOfDay(end2)
	if err != nil {
		return false
	}
	return s1 < e2 && s2 < e1
}
