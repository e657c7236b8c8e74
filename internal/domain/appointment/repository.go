package appointment

import (
	"context"
	"time"

	"github.com/rdssystems/UniStyle-sub001/internal/models"
)

type Repository interface {
	// -------- Tenant --------
	GetTenantByID(
		ctx context.Context,
		id uint,
	) (*models.Tenant, error)

	// -------- Reference data (lookup sem escopo, o validador
	// compara o tenant para distinguir not-found de mismatch) ----
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetProfessionalByID(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetOrCreateClient(
		ctx context.Context,
		tenantID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment (load / conflict) --------
	GetAppointment(
		ctx context.Context,
		tenantID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	// HasConflict responde se alguma janela ativa do profissional
	// cruza a janela da data proposta, ignorando excludeID (> 0).
	HasConflict(
		ctx context.Context,
		tenantID uint,
		professionalID uint,
		date time.Time,
		excludeID uint,
	) (bool, error)

	// -------- Appointment (write, atômico) --------
	CreateIfFree(
		ctx context.Context,
		ap *models.Appointment,
		checkConflict bool,
	) error

	UpdateIfFree(
		ctx context.Context,
		ap *models.Appointment,
		checkConflict bool,
	) error

	DeleteAppointment(
		ctx context.Context,
		tenantID uint,
		appointmentID uint,
	) error

	// -------- Listing --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		tenantID uint,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListActiveForPeriod(
		ctx context.Context,
		tenantID uint,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
