package appointment

import (
	"context"
	"time"

	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
)

type GetSlotBoard struct {
	repo domain.Repository
}

func NewGetSlotBoard(repo domain.Repository) *GetSlotBoard {
	return &GetSlotBoard{repo: repo}
}

// Execute monta a grade de slots do dia com o indicador de ocupado.
// Um slot está ocupado quando sua janela cruza a janela de algum
// agendamento ativo do profissional.
func (uc *GetSlotBoard) Execute(
	ctx context.Context,
	in domain.SlotBoardInput,
) ([]domain.SlotStatus, error) {

	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	// margem de uma janela inteira para pegar agendamentos de
	// madrugada que invadem o dia
	active, err := uc.repo.ListActiveForPeriod(
		ctx,
		in.TenantID,
		in.ProfessionalID,
		dayStart.Add(-2*domain.SlotHalfWidth),
		dayEnd.Add(2*domain.SlotHalfWidth),
	)
	if err != nil {
		return nil, err
	}

	step := domain.SlotHalfWidth
	slots := make([]domain.SlotStatus, 0, 24*time.Hour/step)

	apIdx := 0

	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(step) {

		// avança agendamentos cuja janela já ficou para trás
		for apIdx < len(active) && !domain.WindowsOverlap(cur, active[apIdx].Date) &&
			active[apIdx].Date.Before(cur) {
			apIdx++
		}

		busy := false
		for i := apIdx; i < len(active); i++ {
			if domain.WindowsOverlap(cur, active[i].Date) {
				busy = true
				break
			}
			if active[i].Date.After(cur.Add(2 * domain.SlotHalfWidth)) {
				break
			}
		}

		slots = append(slots, domain.SlotStatus{
			Start: cur.Format("15:04"),
			Busy:  busy,
		})
	}

	return slots, nil
}
