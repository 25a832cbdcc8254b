package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucSchedule "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER — EXCEÇÕES DE AGENDA (feriados, férias, etc)
// ======================================================

type OverrideHandler struct {
	db     *gorm.DB
	add    *ucSchedule.AddOverride
	remove *ucSchedule.RemoveOverride
}

func NewOverrideHandler(
	db *gorm.DB,
	add *ucSchedule.AddOverride,
	remove *ucSchedule.RemoveOverride,
) *OverrideHandler {
	return &OverrideHandler{
		db:     db,
		add:    add,
		remove: remove,
	}
}

// --------- Requests ---------

type AddOverrideRequest struct {
	OverrideDate string `json:"override_date" binding:"required"`
	OverrideType string `json:"override_type" binding:"required"`
	Reason       string `json:"reason"`

	// Apenas para special_hours
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// --------- Handlers ---------

func (h *OverrideHandler) List(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	doctorID := c.Param("id")

	var doctor models.User
	if err := h.db.
		Where("id = ? AND clinic_id = ? AND role = ?", doctorID, clinicID, models.RoleDoctor).
		First(&doctor).Error; err != nil {

		httperr.NotFound(c, "doctor_not_found", "Médico não encontrado.")
		return
	}

	query := h.db.Where("doctor_id = ?", doctor.ID)

	// Por padrão lista apenas exceções futuras; from=YYYY-MM-DD sobrepõe.
	if from := c.Query("from"); from != "" {
		query = query.Where("override_date >= ?", from)
	}

	var overrides []models.ScheduleOverride
	if err := query.Order("override_date ASC").Find(&overrides).Error; err != nil {
		httperr.Internal(c, "failed_to_list_overrides", "Erro ao listar exceções.")
		return
	}

	httpresp.List(c, overrides)
}

func (h *OverrideHandler) Create(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Médico inválido.")
		return
	}

	var req AddOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ov, err := h.add.Execute(
		c.Request.Context(),
		clinicID,
		staffID,
		ucSchedule.AddOverrideInput{
			DoctorID:     uint(doctorID),
			OverrideDate: req.OverrideDate,
			OverrideType: req.OverrideType,
			Reason:       req.Reason,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
		},
	)
	if err != nil {
		mapBusinessError(c, err, "failed_to_add_override", "Erro ao cadastrar exceção.")
		return
	}

	httpresp.Created(c, ov)
}

func (h *OverrideHandler) Delete(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Médico inválido.")
		return
	}

	overrideID, err := strconv.ParseUint(c.Param("overrideId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_override_id", "Exceção inválida.")
		return
	}

	if err := h.remove.Execute(
		c.Request.Context(),
		clinicID,
		staffID,
		uint(doctorID),
		uint(overrideID),
	); err != nil {
		mapBusinessError(c, err, "failed_to_remove_override", "Erro ao remover exceção.")
		return
	}

	httpresp.NoContent(c)
}
