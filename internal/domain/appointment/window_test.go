package appointment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
)

func TestWindow(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	start, end := domain.Window(date)

	assert.Equal(t, date.Add(-45*time.Minute), start)
	assert.Equal(t, date.Add(45*time.Minute), end)
}

func TestWindowsOverlap(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		deltaB  time.Duration
		overlap bool
	}{
		{"mesmo horário", 0, true},
		{"20 minutos depois", 20 * time.Minute, true},
		{"89 minutos depois", 89 * time.Minute, true},
		{"exatamente 90 minutos: bordas encostam", 90 * time.Minute, false},
		{"91 minutos depois", 91 * time.Minute, false},
		{"89 minutos antes", -89 * time.Minute, true},
		{"exatamente 90 minutos antes", -90 * time.Minute, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := domain.WindowsOverlap(base, base.Add(tt.deltaB))
			assert.Equal(t, tt.overlap, got)

			// simetria
			got = domain.WindowsOverlap(base.Add(tt.deltaB), base)
			assert.Equal(t, tt.overlap, got)
		})
	}
}

func TestConflictBounds(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	lo, hi := domain.ConflictBounds(date)

	assert.Equal(t, date.Add(-90*time.Minute), lo)
	assert.Equal(t, date.Add(90*time.Minute), hi)

	// datas estritamente dentro dos limites cruzam a janela;
	// as bordas não
	assert.True(t, domain.WindowsOverlap(date, lo.Add(time.Minute)))
	assert.True(t, domain.WindowsOverlap(date, hi.Add(-time.Minute)))
	assert.False(t, domain.WindowsOverlap(date, lo))
	assert.False(t, domain.WindowsOverlap(date, hi))
}
