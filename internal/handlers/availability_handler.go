package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAvailability "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER (RECEPÇÃO / QUICK-BOOK)
// ======================================================

type AvailabilityHandler struct {
	getSlots *ucAvailability.GetAvailableSlots
}

func NewAvailabilityHandler(getSlots *ucAvailability.GetAvailableSlots) *AvailabilityHandler {
	return &AvailabilityHandler{getSlots: getSlots}
}

func (h *AvailabilityHandler) GetForDoctor(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	doctorIDStr := c.Param("id")
	dateStr := c.Query("date")
	consultationType := c.DefaultQuery("consultation_type", "in_person")

	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	doctorID, err := strconv.ParseUint(doctorIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Médico inválido.")
		return
	}

	slots, err := h.getSlots.Execute(
		c.Request.Context(),
		ucAvailability.Input{
			DoctorID:         uint(doctorID),
			Date:             dateStr,
			ConsultationType: consultationType,
			ClinicID:         clinicID,
		},
	)
	if err != nil {
		mapBusinessError(c, err, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
