package appointment

import "github.com/rdssystems/UniStyle-sub001/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "Agendado"
	StatusConfirmed Status = "Confirmado"
	StatusInService Status = "Em Atendimento"
	StatusCompleted Status = "Concluído"
	StatusCancelled Status = "Cancelado"
)

// transitions é o grafo dirigido de estados permitidos.
// Concluído e Cancelado são terminais.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusInService, StatusCancelled},
	StatusConfirmed: {StatusInService, StatusCancelled},
	StatusInService: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ActiveStatuses são os status que ocupam um horário na agenda.
var ActiveStatuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusInService,
}

func IsValid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// IsActive indica se o agendamento ainda ocupa o horário.
func IsActive(s Status) bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func ActiveStatusStrings() []string {
	out := make([]string, 0, len(ActiveStatuses))
	for _, s := range ActiveStatuses {
		out = append(out, string(s))
	}
	return out
}

// ===============================
// Validations
// ===============================

// CanTransition valida uma transição contra o grafo de estados.
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusinessf("invalid_status", "%s", to)
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusinessf("illegal_transition", "%s -> %s", from, to)
}

// InitialStatus é o status inicial de todo agendamento.
func InitialStatus() Status {
	return StatusScheduled
}
