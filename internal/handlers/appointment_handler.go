package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
	"github.com/rdssystems/UniStyle-sub001/internal/httperr"
	"github.com/rdssystems/UniStyle-sub001/internal/httpresp"
	"github.com/rdssystems/UniStyle-sub001/internal/models"
	ucAppointment "github.com/rdssystems/UniStyle-sub001/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC    *ucAppointment.CreateAppointment
	updateUC    *ucAppointment.UpdateAppointment
	deleteUC    *ucAppointment.DeleteAppointment
	listDateUC  *ucAppointment.ListAppointmentsByDate
	listMonthUC *ucAppointment.ListAppointmentsByMonth
	slotBoardUC *ucAppointment.GetSlotBoard
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listDateUC *ucAppointment.ListAppointmentsByDate,
	listMonthUC *ucAppointment.ListAppointmentsByMonth,
	slotBoardUC *ucAppointment.GetSlotBoard,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:          db,
		createUC:    createUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		listDateUC:  listDateUC,
		listMonthUC: listMonthUC,
		slotBoardUC: slotBoardUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       uint   `json:"client_id" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ClientID       *uint   `json:"client_id"`
	ProfessionalID *uint   `json:"professional_id"`
	ServiceID      *uint   `json:"service_id"`
	Date           *string `json:"date"`
	Status         *string `json:"status"`
	Notes          *string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	tenantID := tenantIDFrom(c)
	actor := actorFrom(c)

	var tenant models.Tenant
	if err := h.db.First(&tenant, tenantID).Error; err != nil {
		httpresp.Fail(c, http.StatusNotFound, "tenant_not_found")
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, http.StatusBadRequest, "invalid_request")
		return
	}

	date, err := parseTimestamp(&tenant, req.Date)
	if err != nil {
		httpresp.Fail(c, http.StatusBadRequest, "invalid_date_or_time")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		TenantID:       tenantID,
		Actor:          actor,
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           date,
		Status:         req.Status,
		Notes:          req.Notes,
	})
	if err != nil {
		writeEngineError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	tenantID := tenantIDFrom(c)
	actor := actorFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpresp.Fail(c, http.StatusBadRequest, "invalid_appointment_id")
		return
	}

	var tenant models.Tenant
	if err := h.db.First(&tenant, tenantID).Error; err != nil {
		httpresp.Fail(c, http.StatusNotFound, "tenant_not_found")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, http.StatusBadRequest, "invalid_request")
		return
	}

	in := ucAppointment.UpdateAppointmentInput{
		TenantID:       tenantID,
		Actor:          actor,
		AppointmentID:  uint(id),
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Status:         req.Status,
		Notes:          req.Notes,
	}

	if req.Date != nil {
		date, err := parseTimestamp(&tenant, *req.Date)
		if err != nil {
			httpresp.Fail(c, http.StatusBadRequest, "invalid_date_or_time")
			return
		}
		in.Date = &date
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	httpresp.Updated(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	tenantID := tenantIDFrom(c)
	actor := actorFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpresp.Fail(c, http.StatusBadRequest, "invalid_appointment_id")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), tenantID, actor, uint(id)); err != nil {
		writeEngineError(c, err)
		return
	}

	httpresp.Deleted(c)
}

// ======================================================
// LIST
// ======================================================

// scopeProfessional resolve o filtro de profissional: admins veem
// qualquer agenda (ou todas), barbeiros só a própria.
func scopeProfessional(c *gin.Context, actor domain.Actor) (uint, bool) {
	if actor.Role == domain.RoleBarber {
		if actor.ProfessionalID == nil {
			httpresp.Fail(c, http.StatusForbidden, "professional_not_allowed")
			return 0, false
		}
		return *actor.ProfessionalID, true
	}

	proStr := c.Query("professional_id")
	if proStr == "" {
		return 0, true
	}

	proID, err := strconv.ParseUint(proStr, 10, 64)
	if err != nil {
		httpresp.Fail(c, http.StatusBadRequest, "invalid_professional_id")
		return 0, false
	}
	return uint(proID), true
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	tenantID := tenantIDFrom(c)
	actor := actorFrom(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var tenant models.Tenant
	if err := h.db.First(&tenant, tenantID).Error; err != nil {
		httperr.NotFound(c, "tenant_not_found", "Conta não encontrada.")
		return
	}

	date, err := parseDateInTenant(&tenant, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	professionalID, ok := scopeProfessional(c, actor)
	if !ok {
		return
	}

	out, err := h.listDateUC.Execute(c.Request.Context(), tenantID, professionalID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	tenantID := tenantIDFrom(c)
	actor := actorFrom(c)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	professionalID, ok := scopeProfessional(c, actor)
	if !ok {
		return
	}

	out, err := h.listMonthUC.Execute(c.Request.Context(), tenantID, professionalID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// SLOT BOARD (indicador ao vivo de horários ocupados)
// ======================================================

func (h *AppointmentHandler) SlotBoard(c *gin.Context) {
	tenantID := tenantIDFrom(c)
	actor := actorFrom(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var tenant models.Tenant
	if err := h.db.First(&tenant, tenantID).Error; err != nil {
		httperr.NotFound(c, "tenant_not_found", "Conta não encontrada.")
		return
	}

	date, err := parseDateInTenant(&tenant, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	professionalID, ok := scopeProfessional(c, actor)
	if !ok {
		return
	}
	if professionalID == 0 {
		httperr.BadRequest(c, "missing_professional_id", "Profissional obrigatório.")
		return
	}

	slots, err := h.slotBoardUC.Execute(c.Request.Context(), domain.SlotBoardInput{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		Date:           date,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_get_slots", "Erro ao montar a grade de horários.")
		return
	}

	httpresp.List(c, slots)
}
