package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collectorhq/sticker-tracker/backend/internal/database"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
	"github.com/collectorhq/sticker-tracker/backend/internal/services"
)

type MemorabiliaHandler struct {
	stats *services.StatsService
}

func NewMemorabiliaHandler(stats *services.StatsService) *MemorabiliaHandler {
	return &MemorabiliaHandler{stats: stats}
}

func (h *MemorabiliaHandler) CreateMemorabilia(c *gin.Context) {
	var req models.CreateMemorabiliaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Condition.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid condition"})
		return
	}

	db := database.GetDB()
	var album models.Album
	if err := db.First(&album, req.AlbumID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}

	item := models.Memorabilia{
		AlbumID:            req.AlbumID,
		Name:               req.Name,
		Type:               req.Type,
		Description:        req.Description,
		CompetitionYear:    req.CompetitionYear,
		AuthenticationCode: req.AuthenticationCode,
		Condition:          req.Condition,
		RarityLevel:        req.RarityLevel,
		IsAuthenticated:    req.IsAuthenticated,
		MetaInfo:           req.MetaInfo,
	}
	if err := db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MemorabiliaHandler) GetMemorabilia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var item models.Memorabilia
	if err := database.GetDB().First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "memorabilia not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MemorabiliaHandler) ListAlbumMemorabilia(c *gin.Context) {
	albumID, err := strconv.ParseUint(c.Param("albumId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid album id"})
		return
	}

	query := database.GetDB().Where("album_id = ?", albumID)
	if itemType := c.Query("type"); itemType != "" {
		query = query.Where("type = ?", itemType)
	}
	if auth := c.Query("is_authenticated"); auth != "" {
		query = query.Where("is_authenticated = ?", auth == "true")
	}

	var items []models.Memorabilia
	if err := query.Order("id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MemorabiliaHandler) AddCollectorMemorabilia(c *gin.Context) {
	var req models.AddCollectorMemorabiliaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Condition.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid condition"})
		return
	}

	db := database.GetDB()
	var collector models.Collector
	if err := db.First(&collector, req.CollectorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector not found"})
		return
	}
	var item models.Memorabilia
	if err := db.First(&item, req.MemorabiliaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "memorabilia not found"})
		return
	}

	owned := models.CollectorMemorabilia{
		CollectorID:      req.CollectorID,
		MemorabiliaID:    req.MemorabiliaID,
		Condition:        req.Condition,
		IsDisplayed:      req.IsDisplayed,
		AcquisitionDate:  req.AcquisitionDate,
		AcquisitionPrice: req.AcquisitionPrice,
		Notes:            req.Notes,
		MetaInfo:         req.MetaInfo,
	}
	if err := db.Create(&owned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.stats.Invalidate(req.CollectorID)
	c.JSON(http.StatusCreated, owned)
}

func (h *MemorabiliaHandler) ListCollectorMemorabilia(c *gin.Context) {
	collectorID, err := strconv.ParseUint(c.Param("collectorId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
		return
	}

	query := database.GetDB().Where("collector_id = ?", collectorID)
	if displayed := c.Query("is_displayed"); displayed != "" {
		query = query.Where("is_displayed = ?", displayed == "true")
	}

	var items []models.CollectorMemorabilia
	if err := query.Order("id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MemorabiliaHandler) UpdateCollectorMemorabilia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateCollectorMemorabiliaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var owned models.CollectorMemorabilia
	if err := db.First(&owned, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector memorabilia not found"})
		return
	}

	if req.Condition != nil {
		if !req.Condition.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid condition"})
			return
		}
		owned.Condition = *req.Condition
	}
	if req.IsDisplayed != nil {
		owned.IsDisplayed = *req.IsDisplayed
	}
	if req.AcquisitionDate != nil {
		owned.AcquisitionDate = *req.AcquisitionDate
	}
	if req.Notes != nil {
		owned.Notes = *req.Notes
	}

	if err := db.Save(&owned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.stats.Invalidate(owned.CollectorID)
	c.JSON(http.StatusOK, owned)
}
