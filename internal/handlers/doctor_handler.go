package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type DoctorHandler struct {
	db *gorm.DB
}

func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{db: db}
}

// --------- Requests ---------

type CreateDoctorRequest struct {
	Name                   string `json:"name" binding:"required"`
	Email                  string `json:"email" binding:"required,email"`
	Password               string `json:"password" binding:"required,min=6"`
	Phone                  string `json:"phone"`
	Specialty              string `json:"specialty"`
	DefaultSlotDurationMin int    `json:"default_slot_duration_min" binding:"omitempty,min=1"`
}

type UpdateDoctorRequest struct {
	Name                   *string `json:"name,omitempty"`
	Phone                  *string `json:"phone,omitempty"`
	Specialty              *string `json:"specialty,omitempty"`
	DefaultSlotDurationMin *int    `json:"default_slot_duration_min,omitempty"`
	Active                 *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *DoctorHandler) List(c *gin.Context) {
	clinicIDVal, _ := c.Get(middleware.ContextClinicID)
	clinicID := clinicIDVal.(uint)

	specialty := strings.ToLower(strings.TrimSpace(c.Query("specialty")))
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("clinic_id = ? AND role = ?", clinicID, models.RoleDoctor)

	if specialty != "" {
		q = q.Where("LOWER(specialty) = ?", specialty)
	}

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(specialty) LIKE ?", like, like)
	}

	var doctors []models.User
	if err := q.
		Order("id ASC").
		Find(&doctors).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_doctors"})
		return
	}

	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	clinicIDVal, _ := c.Get(middleware.ContextClinicID)
	clinicID := clinicIDVal.(uint)

	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	duration := req.DefaultSlotDurationMin
	if duration <= 0 {
		duration = 30
	}

	doctor := models.User{
		ClinicID:               clinicID,
		Name:                   req.Name,
		Email:                  strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:           string(hashed),
		Phone:                  req.Phone,
		Role:                   models.RoleDoctor,
		Specialty:              req.Specialty,
		DefaultSlotDurationMin: duration,
		Active:                 true,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_doctor"})
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	clinicIDVal, _ := c.Get(middleware.ContextClinicID)
	clinicID := clinicIDVal.(uint)

	id := c.Param("id")

	var doctor models.User
	if err := h.db.
		Where("id = ? AND clinic_id = ? AND role = ?", id, clinicID, models.RoleDoctor).
		First(&doctor).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_doctor"})
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.DefaultSlotDurationMin != nil {
		if *req.DefaultSlotDurationMin <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_slot_duration"})
			return
		}
		doctor.DefaultSlotDurationMin = *req.DefaultSlotDurationMin
	}
	if req.Active != nil {
		doctor.Active = *req.Active
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_doctor"})
		return
	}

	c.JSON(http.StatusOK, doctor)
}
