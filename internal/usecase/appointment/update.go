package appointment

import (
	"context"
	"errors"
	"time"

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

// Campos nil não são alterados; o conjunto efetivo é o merge
// do agendamento existente com os campos recebidos.
type UpdateAppointmentInput struct {
	TenantID      uint
	Actor         domain.Actor
	AppointmentID uint

	ClientID       *uint
	ProfessionalID *uint
	ServiceID      *uint
	Date           *time.Time
	Status         *string
	Notes          *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Tenant + agendamento (escopo do tenant)
	// --------------------------------------------------
	tenant, err := uc.repo.GetTenantByID(ctx, in.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("tenant_not_found")
		}
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, in.TenantID, in.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Merge dos campos recebidos
	// --------------------------------------------------
	clientID := ap.ClientID
	if in.ClientID != nil {
		clientID = *in.ClientID
	}

	professionalID := ap.ProfessionalID
	if in.ProfessionalID != nil {
		professionalID = *in.ProfessionalID
	}

	serviceID := ap.ServiceID
	if in.ServiceID != nil {
		serviceID = *in.ServiceID
	}

	date := ap.Date
	if in.Date != nil {
		date = *in.Date
	}

	// --------------------------------------------------
	// 3. Barbeiro só mexe na própria agenda, antes e
	//    depois do merge
	// --------------------------------------------------
	if err := domain.AssertOwnProfessional(in.Actor, ap.ProfessionalID); err != nil {
		return nil, err
	}
	if err := domain.AssertOwnProfessional(in.Actor, professionalID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Referências sobre o conjunto mesclado
	// --------------------------------------------------
	if err := validateReferences(
		ctx,
		uc.repo,
		in.TenantID,
		clientID,
		professionalID,
		serviceID,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Transição de status (guard + política de checkout)
	// --------------------------------------------------
	current := domain.Status(ap.Status)
	next := current

	if in.Status != nil && domain.Status(*in.Status) != current {
		target := domain.Status(*in.Status)
		if err := domain.GuardTransition(current, target, in.Actor, tenant); err != nil {
			return nil, err
		}
		next = target
	}

	// --------------------------------------------------
	// 6. Conflito de horário, excluindo a própria versão
	//    anterior; quem está saindo da agenda não conflita
	// --------------------------------------------------
	release, err := uc.locker.Acquire(
		ctx,
		lock.ScheduleKey(in.TenantID, professionalID),
	)
	if err != nil {
		return nil, err
	}
	defer release()

	ap.ClientID = clientID
	ap.ProfessionalID = professionalID
	ap.ServiceID = serviceID
	ap.Date = date
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
	if next != current {
		now := timezone.NowIn(tenant.Timezone)
		domain.ApplyStatus(ap, next, now)
	}

	checkConflict := domain.IsActive(next)
	if err := uc.repo.UpdateIfFree(ctx, ap, checkConflict); err != nil {
		if httperr.IsBusiness(err, "scheduling_conflict") {
			uc.audit.Dispatch(audit.Event{
				TenantID: in.TenantID,
				UserID:   auditUser(in.Actor),
				Action:   "appointment_conflict",
				Entity:   "appointment",
				EntityID: &ap.ID,
				Metadata: map[string]any{
					"professional_id": professionalID,
					"date":            date,
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
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"status": ap.Status,
		},
	})

	return ap, nil
}
