package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/rdssystems/UniStyle-sub001/internal/domain/appointment"
	"github.com/rdssystems/UniStyle-sub001/internal/httperr"
	"github.com/rdssystems/UniStyle-sub001/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type CreateProfessionalAccountRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	q := h.db.Where("tenant_id = ?", tenantID)

	if activeStr := strings.TrimSpace(c.Query("active")); activeStr != "" {
		q = q.Where("active = ?", activeStr == "true")
	}

	var pros []models.Professional
	if err := q.Order("name ASC").Find(&pros).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_professionals"})
		return
	}

	c.JSON(http.StatusOK, pros)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	tenantID := tenantIDFrom(c)
	actor := actorFrom(c)

	if actor.Role != domain.RoleAdmin {
		httperr.Forbidden(c, "admin_only", "Apenas administradores podem cadastrar profissionais.")
		return
	}

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pro := models.Professional{
		TenantID: tenantID,
		Name:     req.Name,
		Phone:    req.Phone,
		Active:   true,
	}

	if err := h.db.Create(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao cadastrar profissional.")
		return
	}

	c.JSON(http.StatusCreated, pro)
}

// CreateAccount cria a conta de login (role barber) vinculada a um
// profissional do tenant.
func (h *ProfessionalHandler) CreateAccount(c *gin.Context) {
	tenantID := tenantIDFrom(c)
	actor := actorFrom(c)

	if actor.Role != domain.RoleAdmin {
		httperr.Forbidden(c, "admin_only", "Apenas administradores podem criar contas.")
		return
	}

	proID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Profissional inválido.")
		return
	}

	var pro models.Professional
	if err := h.db.
		Where("id = ? AND tenant_id = ?", proID, tenantID).
		First(&pro).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req CreateProfessionalAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar conta.")
		return
	}

	user := models.User{
		TenantID:       tenantID,
		Name:           pro.Name,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:   string(hashed),
		Role:           domain.RoleBarber,
		ProfessionalID: &pro.ID,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar conta.")
		return
	}

	if pro.UserID == nil {
		pro.UserID = &user.ID
		h.db.Save(&pro)
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":              user.ID,
		"email":           user.Email,
		"role":            user.Role,
		"professional_id": user.ProfessionalID,
	})
}
