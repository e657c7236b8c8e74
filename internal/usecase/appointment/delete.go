package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rdssystems/UniStyle-sub001/internal/audit"
	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
	"github.com/rdssystems/UniStyle-sub001/internal/httperr"
	"github.com/rdssystems/UniStyle-sub001/internal/lock"
)

type DeleteAppointment struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

// Execute remove o agendamento (hard delete). O horário fica livre
// imediatamente para novas verificações de conflito.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	tenantID uint,
	actor domain.Actor,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, tenantID, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}

	if err := domain.AssertOwnProfessional(actor, ap.ProfessionalID); err != nil {
		return err
	}

	release, err := uc.locker.Acquire(
		ctx,
		lock.ScheduleKey(tenantID, ap.ProfessionalID),
	)
	if err != nil {
		return err
	}
	defer release()

	if err := uc.repo.DeleteAppointment(ctx, tenantID, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   auditUser(actor),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
