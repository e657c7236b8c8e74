package appointment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
	"github.com/rdssystems/UniStyle-sub001/internal/models"
)

func TestApplyStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("cancelamento carimba CancelledAt", func(t *testing.T) {
		t.Parallel()

		ap := &models.Appointment{Status: string(domain.StatusScheduled)}
		domain.ApplyStatus(ap, domain.StatusCancelled, now)

		assert.Equal(t, string(domain.StatusCancelled), ap.Status)
		require.NotNil(t, ap.CancelledAt)
		assert.Equal(t, now, *ap.CancelledAt)
		assert.Nil(t, ap.CompletedAt)
	})

	t.Run("conclusão carimba CompletedAt", func(t *testing.T) {
		t.Parallel()

		ap := &models.Appointment{Status: string(domain.StatusInService)}
		domain.ApplyStatus(ap, domain.StatusCompleted, now)

		assert.Equal(t, string(domain.StatusCompleted), ap.Status)
		require.NotNil(t, ap.CompletedAt)
		assert.Nil(t, ap.CancelledAt)
	})

	t.Run("status intermediário não carimba nada", func(t *testing.T) {
		t.Parallel()

		ap := &models.Appointment{Status: string(domain.StatusScheduled)}
		domain.ApplyStatus(ap, domain.StatusConfirmed, now)

		assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
		assert.Nil(t, ap.CancelledAt)
		assert.Nil(t, ap.CompletedAt)
	})
}
