package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
	"github.com/rdssystems/UniStyle-sub001/internal/httperr"
)

// ======================================================
// REFERENCE VALIDATOR
// ======================================================

// validateReferences confirma que cliente, profissional e serviço
// existem e pertencem ao tenant da operação. Só leitura, sem efeitos.
func validateReferences(
	ctx context.Context,
	repo domain.Repository,
	tenantID uint,
	clientID uint,
	professionalID uint,
	serviceID uint,
) error {

	client, err := repo.GetClientByID(ctx, clientID)
	if err != nil {
		return refError(err, "client")
	}
	if client.TenantID != tenantID {
		return httperr.ErrBusinessf("tenant_mismatch", "client")
	}

	pro, err := repo.GetProfessionalByID(ctx, professionalID)
	if err != nil {
		return refError(err, "professional")
	}
	if pro.TenantID != tenantID {
		return httperr.ErrBusinessf("tenant_mismatch", "professional")
	}

	svc, err := repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return refError(err, "service")
	}
	if svc.TenantID != tenantID {
		return httperr.ErrBusinessf("tenant_mismatch", "service")
	}

	return nil
}

func refError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusinessf("reference_not_found", "%s", entity)
	}
	return err
}

// auditUser devolve o autor para a trilha de auditoria. Operações
// públicas (sem login) não têm usuário.
func auditUser(actor domain.Actor) *uint {
	if actor.UserID == 0 {
		return nil
	}
	return &actor.UserID
}
