package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rdssystems/UniStyle-sub001/internal/httperr"
	"github.com/rdssystems/UniStyle-sub001/internal/models"
	"github.com/rdssystems/UniStyle-sub001/internal/timezone"
)

type TenantHandler struct {
	db *gorm.DB
}

func NewTenantHandler(db *gorm.DB) *TenantHandler {
	return &TenantHandler{db: db}
}

type UpdateTenantConfigRequest struct {
	Name                *string `json:"name"`
	Phone               *string `json:"phone"`
	Timezone            *string `json:"timezone"`
	AllowBarberCheckout *bool   `json:"allow_barber_checkout"`
}

func (h *TenantHandler) GetMeTenant(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	var tenant models.Tenant
	if err := h.db.First(&tenant, tenantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "tenant_not_found", "Conta não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_tenant", "Erro ao buscar dados da conta.")
		return
	}

	c.JSON(http.StatusOK, tenant)
}

func (h *TenantHandler) UpdateMeTenant(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	var tenant models.Tenant
	if err := h.db.First(&tenant, tenantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "tenant_not_found", "Conta não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_tenant", "Erro ao buscar dados da conta.")
		return
	}

	var req UpdateTenantConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Phone != nil {
		tenant.Phone = *req.Phone
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		tenant.Timezone = *req.Timezone
	}
	if req.AllowBarberCheckout != nil {
		tenant.AllowBarberCheckout = *req.AllowBarberCheckout
	}

	if err := h.db.Save(&tenant).Error; err != nil {
		httperr.Internal(c, "failed_to_update_tenant", "Erro ao atualizar a conta.")
		return
	}

	c.JSON(http.StatusOK, tenant)
}
