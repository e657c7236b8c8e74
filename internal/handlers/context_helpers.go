package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
	"github.com/rdssystems/UniStyle-sub001/internal/httperr"
	"github.com/rdssystems/UniStyle-sub001/internal/httpresp"
	"github.com/rdssystems/UniStyle-sub001/internal/middleware"
)

// actorFrom monta o Actor a partir do que o middleware de auth
// colocou no contexto.
func actorFrom(c *gin.Context) domain.Actor {
	actor := domain.Actor{
		UserID: c.MustGet(middleware.ContextUserID).(uint),
		Role:   c.MustGet(middleware.ContextUserRole).(string),
	}

	if v, ok := c.Get(middleware.ContextProfessionalID); ok {
		id := v.(uint)
		actor.ProfessionalID = &id
	}

	return actor
}

func tenantIDFrom(c *gin.Context) uint {
	return c.MustGet(middleware.ContextTenantID).(uint)
}

// writeEngineError traduz falhas do engine para o contrato HTTP:
// conflito tem flag própria, negações de política viram 403,
// referências ausentes viram 404 e o resto é falha de infra.
func writeEngineError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "scheduling_conflict") {
		httpresp.Conflict(c)
		return
	}

	if be, ok := httperr.BusinessCode(err); ok {
		switch be.Code {
		case "appointment_not_found", "tenant_not_found", "reference_not_found", "tenant_mismatch":
			httpresp.Fail(c, http.StatusNotFound, be.Code)
		case "checkout_not_authorized", "professional_not_allowed":
			httpresp.Fail(c, http.StatusForbidden, be.Code)
		default:
			// illegal_transition, invalid_status, invalid_date_or_time...
			httpresp.Fail(c, http.StatusBadRequest, be.Code)
		}
		return
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		httpresp.Fail(c, http.StatusServiceUnavailable, "storage_unavailable")
		return
	}

	httpresp.Fail(c, http.StatusInternalServerError, "storage_unavailable")
}
