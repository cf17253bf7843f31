package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collectorhq/sticker-tracker/backend/internal/database"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
	"github.com/collectorhq/sticker-tracker/backend/internal/services"
)

type BoxHandler struct {
	stats *services.StatsService
}

func NewBoxHandler(stats *services.StatsService) *BoxHandler {
	return &BoxHandler{stats: stats}
}

func (h *BoxHandler) CreateBox(c *gin.Context) {
	var req models.CreateBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var album models.Album
	if err := db.First(&album, req.AlbumID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}

	box := models.Box{
		AlbumID:         req.AlbumID,
		Publisher:       req.Publisher,
		Edition:         req.Edition,
		PackCount:       req.PackCount,
		SpecialFeatures: req.SpecialFeatures,
	}
	if err := db.Create(&box).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, box)
}

func (h *BoxHandler) GetBox(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var box models.Box
	if err := database.GetDB().First(&box, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "box not found"})
		return
	}
	c.JSON(http.StatusOK, box)
}

func (h *BoxHandler) ListAlbumBoxes(c *gin.Context) {
	albumID, err := strconv.ParseUint(c.Param("albumId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid album id"})
		return
	}

	var boxes []models.Box
	if err := database.GetDB().Where("album_id = ?", albumID).Order("id").Find(&boxes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, boxes)
}

func (h *BoxHandler) AddCollectorBox(c *gin.Context) {
	var req models.AddCollectorBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
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
	var box models.Box
	if err := db.First(&box, req.BoxID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "box not found"})
		return
	}

	isSealed := true
	if req.IsSealed != nil {
		isSealed = *req.IsSealed
	}
	collectorBox := models.CollectorBox{
		CollectorID: req.CollectorID,
		BoxID:       req.BoxID,
		Quantity:    quantity,
		Condition:   req.Condition,
		IsSealed:    isSealed,
	}
	if err := db.Create(&collectorBox).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.stats.Invalidate(req.CollectorID)
	c.JSON(http.StatusCreated, collectorBox)
}

func (h *BoxHandler) ListCollectorBoxes(c *gin.Context) {
	collectorID, err := strconv.ParseUint(c.Param("collectorId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
		return
	}

	query := database.GetDB().Where("collector_id = ?", collectorID)
	if sealed := c.Query("is_sealed"); sealed != "" {
		query = query.Where("is_sealed = ?", sealed == "true")
	}

	var boxes []models.CollectorBox
	if err := query.Order("id").Find(&boxes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, boxes)
}

func (h *BoxHandler) UpdateCollectorBox(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateCollectorBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var collectorBox models.CollectorBox
	if err := db.First(&collectorBox, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector box not found"})
		return
	}

	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
			return
		}
		collectorBox.Quantity = *req.Quantity
	}
	if req.Condition != nil {
		if !req.Condition.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid condition"})
			return
		}
		collectorBox.Condition = *req.Condition
	}
	if req.IsSealed != nil {
		collectorBox.IsSealed = *req.IsSealed
	}

	if err := db.Save(&collectorBox).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.stats.Invalidate(collectorBox.CollectorID)
	c.JSON(http.StatusOK, collectorBox)
}
