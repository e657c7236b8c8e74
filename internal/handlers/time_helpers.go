package handlers

import (
	"time"

	"github.com/rdssystems/UniStyle-sub001/internal/models"
	"github.com/rdssystems/UniStyle-sub001/internal/timezone"
)

func locationFromTenant(tenant *models.Tenant) *time.Location {
	return timezone.Location(tenant.Timezone)
}

func parseDateInTenant(tenant *models.Tenant, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromTenant(tenant),
	)
}

// parseTimestamp aceita o timestamp ISO-8601 do contrato e, por
// conveniência dos formulários, "data hora" no fuso do tenant.
func parseTimestamp(tenant *models.Tenant, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.ParseInLocation(
		"2006-01-02 15:04",
		value,
		locationFromTenant(tenant),
	)
}
