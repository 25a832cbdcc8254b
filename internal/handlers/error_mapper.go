package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// Mensagens traduzidas pela UI a partir do error_code; o texto aqui é
// apenas fallback legível
var businessMessages = map[string]string{
	"doctor_not_found":          "Médico não encontrado.",
	"schedule_not_found":        "Faixa de agenda não encontrada.",
	"override_not_found":        "Exceção de agenda não encontrada.",
	"appointment_not_found":     "Consulta não encontrada.",
	"invalid_date":              "Data inválida.",
	"invalid_date_or_time":      "Data ou hora inválida.",
	"invalid_weekday":           "Dia da semana inválido.",
	"invalid_time_range":        "Faixa de horário inválida.",
	"invalid_slot_duration":     "Duração de slot inválida.",
	"invalid_override_type":     "Tipo de exceção inválido.",
	"invalid_special_hours":     "Horário especial exige início e fim válidos.",
	"invalid_consultation_type": "Tipo de consulta inválido.",
	"date_out_of_range":         "Data além do horizonte de agendamento.",
	"past_date":                 "Data já passou.",
	"too_soon":                  "Horário já passou ou está dentro da antecedência mínima.",
	"outside_schedule":          "Horário fora da agenda do médico.",
	"schedule_overlap":          "Faixa sobrepõe horário já cadastrado.",
	"override_exists":           "Já existe exceção para esta data.",
	"time_conflict":             "Este horário acabou de ser reservado, escolha outro.",
	"invalid_state":             "Consulta não permite esta transição.",
}

var conflictCodes = map[string]bool{
	"schedule_overlap": true,
	"override_exists":  true,
	"time_conflict":    true,
}

var notFoundCodes = map[string]bool{
	"doctor_not_found":      true,
	"schedule_not_found":    true,
	"override_not_found":    true,
	"appointment_not_found": true,
}

// mapBusinessError converte erros de negócio dos use cases em respostas
// HTTP; qualquer outro erro vira 500 genérico (nunca vaza erro cru)
func mapBusinessError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, fallbackCode, fallbackMsg)
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = fallbackMsg
	}

	switch {
	case conflictCodes[code]:
		httperr.Conflict(c, code, msg)
	case notFoundCodes[code]:
		httperr.NotFound(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
