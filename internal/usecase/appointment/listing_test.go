package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
	usecase "github.com/rdssystems/UniStyle-sub001/internal/usecase/appointment"
)

// ======================================================
// Slot board
// ======================================================

func boardByStart(t *testing.T, slots []domain.SlotStatus) map[string]bool {
	t.Helper()
	out := make(map[string]bool, len(slots))
	for _, s := range slots {
		out[s.Start] = s.Busy
	}
	return out
}

func TestGetSlotBoard(t *testing.T) {
	t.Parallel()

	f := newFixture()
	board := usecase.NewGetSlotBoard(f.repo)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := f.create.Execute(
		context.Background(),
		createInput(day.Add(9*time.Hour)),
	)
	require.NoError(t, err)

	slots, err := board.Execute(context.Background(), domain.SlotBoardInput{
		TenantID:       1,
		ProfessionalID: 1,
		Date:           day,
	})
	require.NoError(t, err)
	require.Len(t, slots, 32) // 24h em passos de 45min

	busy := boardByStart(t, slots)

	// janelas que cruzam [08:15, 09:45] ficam ocupadas; as que
	// apenas encostam (07:30 e 10:30) continuam livres
	assert.False(t, busy["07:30"])
	assert.True(t, busy["08:15"])
	assert.True(t, busy["09:00"])
	assert.True(t, busy["09:45"])
	assert.False(t, busy["10:30"])
	assert.False(t, busy["00:00"])
	assert.False(t, busy["23:15"])
}

func TestGetSlotBoard_CancelledDoesNotBlock(t *testing.T) {
	t.Parallel()

	f := newFixture()
	board := usecase.NewGetSlotBoard(f.repo)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	ap, err := f.create.Execute(
		context.Background(),
		createInput(day.Add(9*time.Hour)),
	)
	require.NoError(t, err)

	_, err = f.update.Execute(context.Background(), usecase.UpdateAppointmentInput{
		TenantID:      1,
		Actor:         admin,
		AppointmentID: ap.ID,
		Status:        strPtr(string(domain.StatusCancelled)),
	})
	require.NoError(t, err)

	slots, err := board.Execute(context.Background(), domain.SlotBoardInput{
		TenantID:       1,
		ProfessionalID: 1,
		Date:           day,
	})
	require.NoError(t, err)

	busy := boardByStart(t, slots)
	assert.False(t, busy["09:00"])
}

func TestGetSlotBoard_ScopedByProfessional(t *testing.T) {
	t.Parallel()

	f := newFixture()
	board := usecase.NewGetSlotBoard(f.repo)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := f.create.Execute(
		context.Background(),
		createInput(day.Add(9*time.Hour)),
	)
	require.NoError(t, err)

	slots, err := board.Execute(context.Background(), domain.SlotBoardInput{
		TenantID:       1,
		ProfessionalID: 2,
		Date:           day,
	})
	require.NoError(t, err)

	busy := boardByStart(t, slots)
	assert.False(t, busy["09:00"], "agenda de outro profissional")
}

// ======================================================
// Listagens no fuso do tenant
// ======================================================

func TestListAppointmentsByDate(t *testing.T) {
	t.Parallel()

	f := newFixture()
	list := usecase.NewListAppointmentsByDate(f.repo)

	// 14:00 UTC = 11:00 em São Paulo, dentro do dia 10
	_, err := f.create.Execute(
		context.Background(),
		createInput(time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)),
	)
	require.NoError(t, err)

	// 01:00 UTC do dia 11 = 22:00 do dia 10 em São Paulo
	late := createInput(time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC))
	late.ProfessionalID = 2
	_, err = f.create.Execute(context.Background(), late)
	require.NoError(t, err)

	// dia seguinte, fora do recorte
	next := createInput(time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC))
	_, err = f.create.Execute(context.Background(), next)
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	got, err := list.Execute(context.Background(), 1, 0, day)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "João", got[0].ClientName)
	assert.Equal(t, "Carlos", got[0].ProfessionalName)
	assert.Equal(t, "Corte", got[0].ServiceName)
	assert.Equal(t, "Rafael", got[1].ProfessionalName)

	// recorte por profissional
	got, err = list.Execute(context.Background(), 1, 2, day)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rafael", got[0].ProfessionalName)
}

func TestListAppointmentsByMonth(t *testing.T) {
	t.Parallel()

	f := newFixture()
	list := usecase.NewListAppointmentsByMonth(f.repo)

	_, err := f.create.Execute(
		context.Background(),
		createInput(time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)),
	)
	require.NoError(t, err)

	other := createInput(time.Date(2025, 4, 2, 14, 0, 0, 0, time.UTC))
	_, err = f.create.Execute(context.Background(), other)
	require.NoError(t, err)

	got, err := list.Execute(context.Background(), 1, 0, 2025, 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC), got[0].Date)
}
