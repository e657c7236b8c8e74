package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rdssystems/UniStyle-sub001/internal/audit"
	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
	"github.com/rdssystems/UniStyle-sub001/internal/httperr"
	"github.com/rdssystems/UniStyle-sub001/internal/lock"
	"github.com/rdssystems/UniStyle-sub001/internal/models"
	"github.com/rdssystems/UniStyle-sub001/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	TenantID uint
	Actor    domain.Actor

	ClientID       uint
	ProfessionalID uint
	ServiceID      uint

	Date   time.Time
	Status string // opcional; default Agendado
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Tenant
	// --------------------------------------------------
	tenant, err := uc.repo.GetTenantByID(ctx, in.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("tenant_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Barbeiro só agenda para si mesmo
	// --------------------------------------------------
	if err := domain.AssertOwnProfessional(in.Actor, in.ProfessionalID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Referências (cliente / profissional / serviço)
	// --------------------------------------------------
	if err := validateReferences(
		ctx,
		uc.repo,
		in.TenantID,
		in.ClientID,
		in.ProfessionalID,
		in.ServiceID,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Status inicial (status explícito passa pelo
	//    guard a partir de Agendado)
	// --------------------------------------------------
	status := domain.InitialStatus()
	if in.Status != "" && domain.Status(in.Status) != status {
		target := domain.Status(in.Status)
		if err := domain.GuardTransition(status, target, in.Actor, tenant); err != nil {
			return nil, err
		}
		status = target
	}

	// --------------------------------------------------
	// 5. Serialização por (tenant, profissional)
	// --------------------------------------------------
	release, err := uc.locker.Acquire(
		ctx,
		lock.ScheduleKey(in.TenantID, in.ProfessionalID),
	)
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// 6. Criação (conflito checado na mesma transação)
	// --------------------------------------------------
	now := timezone.NowIn(tenant.Timezone)

	ap := &models.Appointment{
		Reference:      uuid.NewString(),
		TenantID:       in.TenantID,
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
		Date:           in.Date,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}
	if status != domain.InitialStatus() {
		domain.ApplyStatus(ap, status, now)
	}

	checkConflict := domain.IsActive(status)
	if err := uc.repo.CreateIfFree(ctx, ap, checkConflict); err != nil {
		if httperr.IsBusiness(err, "scheduling_conflict") {
			uc.audit.Dispatch(audit.Event{
				TenantID: in.TenantID,
				UserID:   auditUser(in.Actor),
				Action:   "appointment_conflict",
				Entity:   "appointment",
				Metadata: map[string]any{
					"professional_id": in.ProfessionalID,
					"date":            in.Date,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 7. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		TenantID: in.TenantID,
		UserID:   auditUser(in.Actor),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
