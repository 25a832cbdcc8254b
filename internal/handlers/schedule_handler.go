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
// HANDLER — AGENDA SEMANAL
// ======================================================

type ScheduleHandler struct {
	db     *gorm.DB
	add    *ucSchedule.AddWeeklySlot
	remove *ucSchedule.RemoveWeeklySlot
}

func NewScheduleHandler(
	db *gorm.DB,
	add *ucSchedule.AddWeeklySlot,
	remove *ucSchedule.RemoveWeeklySlot,
) *ScheduleHandler {
	return &ScheduleHandler{
		db:     db,
		add:    add,
		remove: remove,
	}
}

// --------- Requests ---------

type AddWeeklySlotRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`

	SlotDurationMin int `json:"slot_duration_min" binding:"omitempty,min=1"`
}

// --------- Handlers ---------

func (h *ScheduleHandler) List(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	doctorID := c.Param("id")

	var doctor models.User
	if err := h.db.
		Where("id = ? AND clinic_id = ? AND role = ?", doctorID, clinicID, models.RoleDoctor).
		First(&doctor).Error; err != nil {

		httperr.NotFound(c, "doctor_not_found", "Médico não encontrado.")
		return
	}

	var slots []models.WeeklySchedule
	if err := h.db.
		Where("doctor_id = ?", doctor.ID).
		Order("weekday ASC, start_time ASC").
		Find(&slots).Error; err != nil {

		httperr.Internal(c, "failed_to_list_schedule", "Erro ao listar agenda.")
		return
	}

	httpresp.List(c, slots)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Médico inválido.")
		return
	}

	var req AddWeeklySlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ws, err := h.add.Execute(
		c.Request.Context(),
		clinicID,
		staffID,
		ucSchedule.AddWeeklySlotInput{
			DoctorID:        uint(doctorID),
			Weekday:         req.Weekday,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			SlotDurationMin: req.SlotDurationMin,
		},
	)
	if err != nil {
		mapBusinessError(c, err, "failed_to_add_schedule", "Erro ao cadastrar faixa de agenda.")
		return
	}

	httpresp.Created(c, ws)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Médico inválido.")
		return
	}

	scheduleID, err := strconv.ParseUint(c.Param("scheduleId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_schedule_id", "Faixa inválida.")
		return
	}

	if err := h.remove.Execute(
		c.Request.Context(),
		clinicID,
		staffID,
		uint(doctorID),
		uint(scheduleID),
	); err != nil {
		mapBusinessError(c, err, "failed_to_remove_schedule", "Erro ao remover faixa de agenda.")
		return
	}

	httpresp.NoContent(c)
}
