package appointment

import (
	"time"

	"github.com/rdssystems/UniStyle-sub001/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus aplica um status já validado pelo guard, mantendo os
// carimbos de cancelamento/conclusão coerentes.
func ApplyStatus(ap *models.Appointment, to Status, now time.Time) {
	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
}
