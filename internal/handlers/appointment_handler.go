package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER — AGENDAMENTOS (visão interna da clínica)
// ======================================================

type AppointmentHandler struct {
	create      *ucAppointment.CreateAppointment
	cancel      *ucAppointment.CancelAppointment
	complete    *ucAppointment.CompleteAppointment
	noShow      *ucAppointment.MarkNoShow
	listByDate  *ucAppointment.ListAppointmentsByDate
	listByMonth *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	noShow *ucAppointment.MarkNoShow,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		cancel:      cancel,
		complete:    complete,
		noShow:      noShow,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	DoctorID uint `json:"doctor_id" binding:"required"`

	PatientName  string `json:"patient_name" binding:"required"`
	PatientPhone string `json:"patient_phone" binding:"required"`
	PatientEmail string `json:"patient_email"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:MM

	ConsultationType string `json:"consultation_type"`
	Notes            string `json:"notes"`
}

// --------- Handlers ---------

// Create registra um agendamento feito pela recepção (walk-in / telefone)
func (h *AppointmentHandler) Create(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	consultationType := req.ConsultationType
	if consultationType == "" {
		consultationType = "in_person"
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClinicID:         clinicID,
		DoctorID:         req.DoctorID,
		PatientName:      req.PatientName,
		PatientPhone:     req.PatientPhone,
		PatientEmail:     req.PatientEmail,
		Date:             req.Date,
		Time:             req.Time,
		ConsultationType: consultationType,
		Notes:            req.Notes,
		CreatedBy:        &staffID,
	})
	if err != nil {
		mapBusinessError(c, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, ap)
}

// ListByDate lista a agenda do dia. doctor_id opcional filtra um médico;
// o papel doctor enxerga apenas a própria agenda.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (date=YYYY-MM-DD).")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use o formato YYYY-MM-DD.")
		return
	}

	doctorID, ok := h.resolveDoctorFilter(c)
	if !ok {
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), clinicID, doctorID, date)
	if err != nil {
		mapBusinessError(c, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, items)
}

// ListByMonth alimenta a visão de calendário (year + month obrigatórios)
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	doctorID, ok := h.resolveDoctorFilter(c)
	if !ok {
		return
	}

	items, err := h.listByMonth.Execute(c.Request.Context(), clinicID, doctorID, year, month)
	if err != nil {
		mapBusinessError(c, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), clinicID, staffID, uint(appointmentID))
	if err != nil {
		mapBusinessError(c, err, "failed_to_cancel", "Erro ao cancelar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), clinicID, staffID, uint(appointmentID))
	if err != nil {
		mapBusinessError(c, err, "failed_to_complete", "Erro ao concluir agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), clinicID, staffID, uint(appointmentID))
	if err != nil {
		mapBusinessError(c, err, "failed_to_mark_no_show", "Erro ao marcar falta.")
		return
	}

	httpresp.OK(c, ap)
}

// resolveDoctorFilter traduz o filtro doctor_id respeitando o papel:
// médicos ficam travados na própria agenda.
func (h *AppointmentHandler) resolveDoctorFilter(c *gin.Context) (uint, bool) {
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role == models.RoleDoctor {
		return c.MustGet(middleware.ContextUserID).(uint), true
	}

	raw := c.Query("doctor_id")
	if raw == "" {
		return 0, true
	}

	doctorID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Médico inválido.")
		return 0, false
	}

	return uint(doctorID), true
}
