package lock

import (
	"context"
	"fmt"
)

// Locker serializa operações de escrita na agenda de um profissional.
// A chave delimita o escopo: profissionais (e tenants) diferentes
// nunca se bloqueiam entre si.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// ScheduleKey é o escopo de exclusão mútua por (tenant, profissional).
func ScheduleKey(tenantID, professionalID uint) string {
	return fmt.Sprintf("schedule:%d:%d", tenantID, professionalID)
}
