package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/audit"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/cache"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/schedule"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/middleware"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

type BusinessHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewBusinessHoursHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	c *cache.AvailabilityCache,
) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db, audit: audit, cache: c}
}

type WorkDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Open       bool   `json:"open"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	HasLunch   bool   `json:"has_lunch"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type BusinessHoursUpdateRequest struct {
	Days []WorkDayConfig `json:"days" binding:"required,len=7"`
}

// Get devolve sempre os 7 dias; banco vazio cai na grade padrão.
func (h *BusinessHoursHandler) Get(c *gin.Context) {
	var days []models.WorkDay
	if err := h.db.
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_business_hours"})
		return
	}

	week := schedule.DefaultWeek()
	for _, d := range days {
		if d.Weekday >= 0 && d.Weekday <= 6 {
			week[d.Weekday] = d
		}
	}

	c.JSON(http.StatusOK, gin.H{"days": week})
}

// Update substitui a semana inteira atomicamente: ou a configuração
// nova vale completa, ou nada muda.
func (h *BusinessHoursHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req BusinessHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := map[int]bool{}
	for _, d := range req.Days {
		if seen[d.Weekday] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_weekday"})
			return
		}
		seen[d.Weekday] = true

		if !d.Open {
			continue
		}

		start, err := schedule.ParseClock(d.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time"})
			return
		}
		end, err := schedule.ParseClock(d.EndTime)
		if err != nil || start >= end {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time"})
			return
		}
	}

	toCreate := make([]models.WorkDay, 0, len(req.Days))
	for _, d := range req.Days {
		toCreate = append(toCreate, models.WorkDay{
			Weekday:    d.Weekday,
			Open:       d.Open,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			HasLunch:   d.HasLunch,
			LunchStart: d.LunchStart,
			LunchEnd:   d.LunchEnd,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("1 = 1").
			Delete(&models.WorkDay{}).Error; err != nil {
			return err
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_business_hours"})
		return
	}

	h.cache.InvalidateAll(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID: &adminID,
		Action: "business_hours_saved",
		Entity: "work_day",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
