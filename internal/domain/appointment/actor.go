package appointment

import (
	"github.com/rdssystems/UniStyle-sub001/internal/httperr"
	"github.com/rdssystems/UniStyle-sub001/internal/models"
)

const (
	RoleAdmin  = "admin"
	RoleBarber = "barber"
)

// Actor é quem executa a operação, fornecido pelo middleware de auth.
// Nunca é persistido pelo engine.
type Actor struct {
	UserID         uint
	Role           string
	ProfessionalID *uint
}

// CanCheckout decide se o actor pode concluir um atendimento.
// Barbeiros só podem quando o tenant permite.
func CanCheckout(actor Actor, tenant *models.Tenant) error {
	if actor.Role != RoleBarber {
		return nil
	}
	if tenant.AllowBarberCheckout {
		return nil
	}
	return httperr.ErrBusiness("checkout_not_authorized")
}

// GuardTransition combina o grafo de estados com a política de checkout.
// Falha de política nunca é rebaixada para outro status.
func GuardTransition(from, to Status, actor Actor, tenant *models.Tenant) error {
	if err := CanTransition(from, to); err != nil {
		return err
	}
	if to == StatusCompleted {
		return CanCheckout(actor, tenant)
	}
	return nil
}

// AssertOwnProfessional garante que um barbeiro só agenda para si mesmo.
// A UI já trava o campo, mas a regra vale no servidor.
func AssertOwnProfessional(actor Actor, professionalID uint) error {
	if actor.Role != RoleBarber {
		return nil
	}
	if actor.ProfessionalID == nil || *actor.ProfessionalID != professionalID {
		return httperr.ErrBusiness("professional_not_allowed")
	}
	return nil
}
