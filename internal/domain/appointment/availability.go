package appointment

import "time"

type SlotBoardInput struct {
	TenantID       uint
	ProfessionalID uint
	Date           time.Time
}

// SlotStatus é um slot do dia com o indicador ao vivo de ocupado.
type SlotStatus struct {
	Start string `json:"start"`
	Busy  bool   `json:"busy"`
}
