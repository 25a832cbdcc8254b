package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Clinic / Doctor
// --------------------------------------------------

func (r *ScheduleGormRepository) GetClinicByID(
	ctx context.Context,
	id uint,
) (*models.Clinic, error) {

	var clinic models.Clinic
	if err := r.db.WithContext(ctx).First(&clinic, id).Error; err != nil {
		return nil, err
	}
	return &clinic, nil
}

func (r *ScheduleGormRepository) GetDoctor(
	ctx context.Context,
	doctorID uint,
) (*models.User, error) {

	var doctor models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", doctorID, models.RoleDoctor).
		First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// --------------------------------------------------
// Weekly template
// --------------------------------------------------

func (r *ScheduleGormRepository) ListWeeklySlots(
	ctx context.Context,
	doctorID uint,
	weekday int,
) ([]models.WeeklySchedule, error) {

	var slots []models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND weekday = ?", doctorID, weekday).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *ScheduleGormRepository) ListAllWeeklySlots(
	ctx context.Context,
	doctorID uint,
) ([]models.WeeklySchedule, error) {

	var slots []models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("weekday ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// CreateWeeklySlot valida a não-sobreposição e insere na mesma transação,
// com lock das faixas existentes do (médico, weekday) — duas edições
// concorrentes não passam as duas pela validação
func (r *ScheduleGormRepository) CreateWeeklySlot(
	ctx context.Context,
	ws *models.WeeklySchedule,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing []models.WeeklySchedule
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("doctor_id = ? AND weekday = ?", ws.DoctorID, ws.Weekday).
			Find(&existing).Error; err != nil {
			return err
		}

		for _, cur := range existing {
			if domain.RangesOverlap(ws.StartTime, ws.EndTime, cur.StartTime, cur.EndTime) {
				return httperr.ErrBusiness("schedule_overlap")
			}
		}

		return tx.Create(ws).Error
	})
}

func (r *ScheduleGormRepository) DeleteWeeklySlot(
	ctx context.Context,
	doctorID uint,
	scheduleID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", scheduleID, doctorID).
		Delete(&models.WeeklySchedule{})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Overrides
// --------------------------------------------------

func (r *ScheduleGormRepository) GetOverride(
	ctx context.Context,
	doctorID uint,
	date string,
) (*models.ScheduleOverride, error) {

	var o models.ScheduleOverride
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND override_date = ?", doctorID, date).
		First(&o).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *ScheduleGormRepository) ListOverrides(
	ctx context.Context,
	doctorID uint,
	fromDate string,
) ([]models.ScheduleOverride, error) {

	q := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID)
	if fromDate != "" {
		q = q.Where("override_date >= ?", fromDate)
	}

	var overrides []models.ScheduleOverride
	if err := q.Order("override_date ASC").Find(&overrides).Error; err != nil {
		return nil, err
	}

	return overrides, nil
}

func (r *ScheduleGormRepository) CreateOverride(
	ctx context.Context,
	o *models.ScheduleOverride,
) error {

	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		// índice único (doctor_id, override_date): perdedor da corrida
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("override_exists")
		}
		return err
	}

	return nil
}

func (r *ScheduleGormRepository) DeleteOverride(
	ctx context.Context,
	doctorID uint,
	overrideID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", overrideID, doctorID).
		Delete(&models.ScheduleOverride{})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Booking ledger
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBookedStartTimes(
	ctx context.Context,
	doctorID uint,
	dayStart time.Time,
	dayEnd time.Time,
) (map[string]bool, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time").
		Where(
			"doctor_id = ? AND status NOT IN ('cancelled', 'no_show') AND start_time >= ? AND start_time < ?",
			doctorID, dayStart, dayEnd,
		).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	loc := dayStart.Location()

	booked := make(map[string]bool, len(aps))
	for _, ap := range aps {
		booked[ap.StartTime.In(loc).Format("15:04")] = true
	}

	return booked, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
