package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domainappt "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER — SUPERFÍCIE PÚBLICA (paciente, por slug)
// ======================================================
// Nenhuma rota aqui exige autenticação; tudo é resolvido
// a partir do slug da clínica e validado contra ela.

type PublicHandler struct {
	db       *gorm.DB
	apptRepo domainappt.Repository

	getSlots *ucAvailability.GetAvailableSlots
	create   *ucAppointment.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	apptRepo domainappt.Repository,
	getSlots *ucAvailability.GetAvailableSlots,
	create *ucAppointment.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		apptRepo: apptRepo,
		getSlots: getSlots,
		create:   create,
	}
}

// --------- Requests / Responses ---------

type PublicBookingRequest struct {
	PatientName  string `json:"patient_name" binding:"required"`
	PatientPhone string `json:"patient_phone" binding:"required"`
	PatientEmail string `json:"patient_email"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:MM

	ConsultationType string `json:"consultation_type"`
	Notes            string `json:"notes"`
}

type PublicDoctorDTO struct {
	ID                     uint   `json:"id"`
	Name                   string `json:"name"`
	Specialty              string `json:"specialty"`
	DefaultSlotDurationMin int    `json:"default_slot_duration_min"`
}

type PublicBookingDTO struct {
	Code             string `json:"code"`
	DoctorName       string `json:"doctor_name"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ConsultationType string `json:"consultation_type"`
	Status           string `json:"status"`
}

// --------- Handlers ---------

// ClinicInfo devolve os dados mínimos para montar a página de agendamento
func (h *PublicHandler) ClinicInfo(c *gin.Context) {
	clinic, ok := h.resolveClinic(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":     clinic.Name,
		"slug":     clinic.Slug,
		"phone":    clinic.Phone,
		"address":  clinic.Address,
		"timezone": clinic.Timezone,
	})
}

// ListDoctors lista apenas médicos ativos, sem dados sensíveis
func (h *PublicHandler) ListDoctors(c *gin.Context) {
	clinic, ok := h.resolveClinic(c)
	if !ok {
		return
	}

	query := h.db.
		Where("clinic_id = ? AND role = ? AND active = ?", clinic.ID, models.RoleDoctor, true)

	if specialty := c.Query("specialty"); specialty != "" {
		query = query.Where("specialty = ?", specialty)
	}

	var doctors []models.User
	if err := query.Order("name ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Erro ao listar médicos.")
		return
	}

	out := make([]PublicDoctorDTO, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, PublicDoctorDTO{
			ID:                     d.ID,
			Name:                   d.Name,
			Specialty:              d.Specialty,
			DefaultSlotDurationMin: d.DefaultSlotDurationMin,
		})
	}

	c.JSON(http.StatusOK, out)
}

// Availability calcula os horários de um médico da clínica do slug
func (h *PublicHandler) Availability(c *gin.Context) {
	clinic, ok := h.resolveClinic(c)
	if !ok {
		return
	}

	doctorID, err := strconv.ParseUint(c.Param("doctorId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Médico inválido.")
		return
	}

	// O médico precisa pertencer à clínica do slug — IDs de outra
	// clínica não vazam agenda
	if _, err := h.apptRepo.GetDoctorForClinic(c.Request.Context(), uint(doctorID), clinic.ID); err != nil {
		httperr.NotFound(c, "doctor_not_found", "Médico não encontrado.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	slots, err := h.getSlots.Execute(
		c.Request.Context(),
		ucAvailability.Input{
			DoctorID:         uint(doctorID),
			Date:             dateStr,
			ConsultationType: c.DefaultQuery("consultation_type", "in_person"),
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

// CreateBooking é o self-service do paciente (CreatedBy = nil)
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	clinic, ok := h.resolveClinic(c)
	if !ok {
		return
	}

	doctorID, err := strconv.ParseUint(c.Param("doctorId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Médico inválido.")
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	consultationType := req.ConsultationType
	if consultationType == "" {
		consultationType = "in_person"
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClinicID:         clinic.ID,
		DoctorID:         uint(doctorID),
		PatientName:      req.PatientName,
		PatientPhone:     req.PatientPhone,
		PatientEmail:     req.PatientEmail,
		Date:             req.Date,
		Time:             req.Time,
		ConsultationType: consultationType,
		Notes:            req.Notes,
		CreatedBy:        nil,
	})
	if err != nil {
		mapBusinessError(c, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	doctor, err := h.apptRepo.GetDoctorForClinic(c.Request.Context(), ap.DoctorID, clinic.ID)
	doctorName := ""
	if err == nil {
		doctorName = doctor.Name
	}

	c.JSON(http.StatusCreated, PublicBookingDTO{
		Code:             ap.Code,
		DoctorName:       doctorName,
		Date:             req.Date,
		Time:             req.Time,
		ConsultationType: ap.ConsultationType,
		Status:           ap.Status,
	})
}

func (h *PublicHandler) resolveClinic(c *gin.Context) (*models.Clinic, bool) {
	clinic, err := h.apptRepo.GetClinicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.NotFound(c, "clinic_not_found", "Clínica não encontrada.")
		return nil, false
	}
	return clinic, true
}
