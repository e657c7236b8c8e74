package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
	"github.com/rdssystems/UniStyle-sub001/internal/httperr"
	"github.com/rdssystems/UniStyle-sub001/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Tenant
// --------------------------------------------------

func (r *AppointmentGormRepository) GetTenantByID(
	ctx context.Context,
	id uint,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetProfessionalByID(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).First(&pro, id).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *AppointmentGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	tenantID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND phone = ?", tenantID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		TenantID: tenantID,
		Name:     name,
		Phone:    phone,
		Email:    email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment (load / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	tenantID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", appointmentID, tenantID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// conflictQuery monta a query de janelas ativas que cruzam a janela
// da data proposta, sempre delimitada por tenant e profissional.
func conflictQuery(
	tx *gorm.DB,
	tenantID uint,
	professionalID uint,
	date time.Time,
	excludeID uint,
) *gorm.DB {

	lo, hi := domain.ConflictBounds(date)

	q := tx.
		Model(&models.Appointment{}).
		Where(
			"tenant_id = ? AND professional_id = ? AND status IN ? AND date > ? AND date < ?",
			tenantID,
			professionalID,
			domain.ActiveStatusStrings(),
			lo,
			hi,
		)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	return q
}

func (r *AppointmentGormRepository) HasConflict(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
	date time.Time,
	excludeID uint,
) (bool, error) {

	var count int64
	if err := conflictQuery(
		r.db.WithContext(ctx),
		tenantID,
		professionalID,
		date,
		excludeID,
	).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateIfFree(
	ctx context.Context,
	ap *models.Appointment,
	checkConflict bool,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if checkConflict {
			var count int64
			if err := conflictQuery(tx, ap.TenantID, ap.ProfessionalID, ap.Date, 0).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return httperr.ErrBusiness("scheduling_conflict")
			}
		}

		return tx.Create(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("scheduling_conflict")
	}
	return err
}

func (r *AppointmentGormRepository) UpdateIfFree(
	ctx context.Context,
	ap *models.Appointment,
	checkConflict bool,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if checkConflict {
			var count int64
			if err := conflictQuery(tx, ap.TenantID, ap.ProfessionalID, ap.Date, ap.ID).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return httperr.ErrBusiness("scheduling_conflict")
			}
		}

		return tx.Save(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("scheduling_conflict")
	}
	return err
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	tenantID uint,
	appointmentID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", appointmentID, tenantID).
		Delete(&models.Appointment{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Where(
			"tenant_id = ? AND date >= ? AND date < ?",
			tenantID, start, end,
		)

	if professionalID > 0 {
		q = q.Where("professional_id = ?", professionalID)
	}

	var apps []models.Appointment
	if err := q.Order("date ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListActiveForPeriod(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "date", "status").
		Where(
			"tenant_id = ? AND professional_id = ? AND status IN ? AND date >= ? AND date < ?",
			tenantID, professionalID, domain.ActiveStatusStrings(), start, end,
		).
		Order("date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
