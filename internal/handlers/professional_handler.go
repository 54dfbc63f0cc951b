package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/audit"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httpresp"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/middleware"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

type ProfessionalHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProfessionalHandler(db *gorm.DB, audit *audit.Dispatcher) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, audit: audit}
}

type ProfessionalRequest struct {
	Name         string `json:"name" binding:"required"`
	AvatarURL    string `json:"avatar_url"`
	SpecialtyIDs []uint `json:"specialty_ids"`
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	var pros []models.Professional
	if err := h.db.
		Preload("Specialties", "active = true").
		Where("active = true").
		Order("name ASC").
		Find(&pros).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, pros)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	specialties, err := h.loadSpecialties(req.SpecialtyIDs)
	if err != nil {
		httperr.BadRequest(c, "invalid_specialties", "Especialidade inexistente.")
		return
	}

	pro := models.Professional{
		Name:        req.Name,
		AvatarURL:   req.AvatarURL,
		Active:      true,
		Specialties: specialties,
	}

	if err := h.db.Create(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "professional_created",
		Entity:   "professional",
		EntityID: &pro.ID,
	})

	httpresp.Created(c, pro)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var pro models.Professional
	if err := h.db.First(&pro, id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	specialties, err := h.loadSpecialties(req.SpecialtyIDs)
	if err != nil {
		httperr.BadRequest(c, "invalid_specialties", "Especialidade inexistente.")
		return
	}

	pro.Name = req.Name
	if req.AvatarURL != "" {
		pro.AvatarURL = req.AvatarURL
	}

	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	if err := h.db.Model(&pro).Association("Specialties").Replace(specialties); err != nil {
		httperr.Internal(c, "failed_to_update_specialties", "Erro ao atualizar especialidades.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "professional_updated",
		Entity:   "professional",
		EntityID: &pro.ID,
	})

	httpresp.OK(c, pro)
}

func (h *ProfessionalHandler) Deactivate(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var pro models.Professional
	if err := h.db.First(&pro, id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	pro.Active = false
	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "professional_deactivated",
		Entity:   "professional",
		EntityID: &pro.ID,
	})

	httpresp.OK(c, pro)
}

func (h *ProfessionalHandler) loadSpecialties(ids []uint) ([]models.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var services []models.Service
	if err := h.db.Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, gorm.ErrRecordNotFound
	}
	return services, nil
}
