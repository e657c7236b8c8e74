package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
	"github.com/rdssystems/UniStyle-sub001/internal/httpresp"
	"github.com/rdssystems/UniStyle-sub001/internal/models"
	ucAppointment "github.com/rdssystems/UniStyle-sub001/internal/usecase/appointment"
)

// PublicHandler atende o fluxo de reserva sem login, escopado pelo
// slug do tenant.
type PublicHandler struct {
	db          *gorm.DB
	repo        domain.Repository
	createUC    *ucAppointment.CreateAppointment
	slotBoardUC *ucAppointment.GetSlotBoard
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	createUC *ucAppointment.CreateAppointment,
	slotBoardUC *ucAppointment.GetSlotBoard,
) *PublicHandler {
	return &PublicHandler{
		db:          db,
		repo:        repo,
		createUC:    createUC,
		slotBoardUC: slotBoardUC,
	}
}

// --------- Requests ---------

type PublicCreateAppointmentRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	ClientEmail    string `json:"client_email"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Notes          string `json:"notes"`
}

// --------- Helpers ---------

func (h *PublicHandler) tenantBySlug(c *gin.Context) (*models.Tenant, bool) {
	slug := c.Param("slug")

	var tenant models.Tenant
	if err := h.db.Where("slug = ?", slug).First(&tenant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tenant_not_found"})
		return nil, false
	}

	return &tenant, true
}

// --------- Handlers ---------

func (h *PublicHandler) ListServices(c *gin.Context) {
	tenant, ok := h.tenantBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("tenant_id = ? AND active = ?", tenant.ID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	tenant, ok := h.tenantBySlug(c)
	if !ok {
		return
	}

	var pros []models.Professional
	if err := h.db.
		Where("tenant_id = ? AND active = ?", tenant.ID, true).
		Order("name ASC").
		Find(&pros).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_professionals"})
		return
	}

	c.JSON(http.StatusOK, pros)
}

func (h *PublicHandler) SlotBoard(c *gin.Context) {
	tenant, ok := h.tenantBySlug(c)
	if !ok {
		return
	}

	date, err := parseDateInTenant(tenant, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	proID, ok := parseUintQuery(c, "professional_id")
	if !ok {
		return
	}

	slots, err := h.slotBoardUC.Execute(c.Request.Context(), domain.SlotBoardInput{
		TenantID:       tenant.ID,
		ProfessionalID: proID,
		Date:           date,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_slots"})
		return
	}

	httpresp.List(c, slots)
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	tenant, ok := h.tenantBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, http.StatusBadRequest, "invalid_request")
		return
	}

	date, err := parseTimestamp(tenant, req.Date)
	if err != nil {
		httpresp.Fail(c, http.StatusBadRequest, "invalid_date_or_time")
		return
	}

	client, err := h.repo.GetOrCreateClient(
		c.Request.Context(),
		tenant.ID,
		req.ClientName,
		req.ClientPhone,
		req.ClientEmail,
	)
	if err != nil {
		httpresp.Fail(c, http.StatusInternalServerError, "failed_to_register_client")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		TenantID:       tenant.ID,
		Actor:          domain.Actor{Role: "public"},
		ClientID:       client.ID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           date,
		Notes:          req.Notes,
	})
	if err != nil {
		writeEngineError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func parseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_" + name})
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_" + name})
		return 0, false
	}

	return uint(id), true
}
