package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collectorhq/sticker-tracker/backend/internal/database"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
	"github.com/collectorhq/sticker-tracker/backend/internal/services"
)

type CollectorHandler struct {
	stats *services.StatsService
}

func NewCollectorHandler(stats *services.StatsService) *CollectorHandler {
	return &CollectorHandler{stats: stats}
}

func (h *CollectorHandler) CreateCollector(c *gin.Context) {
	var req models.CreateCollectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var existing models.Collector
	if err := db.Where("user_id = ?", req.UserID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "collector profile already exists for this user"})
		return
	}

	collector := models.Collector{
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Focus:       req.Focus,
	}
	if err := db.Create(&collector).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, collector)
}

func (h *CollectorHandler) GetCollector(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var collector models.Collector
	if err := database.GetDB().First(&collector, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector not found"})
		return
	}
	c.JSON(http.StatusOK, collector)
}

func (h *CollectorHandler) UpdateCollector(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateCollectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var collector models.Collector
	if err := db.First(&collector, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector not found"})
		return
	}

	if req.DisplayName != nil {
		collector.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		collector.Bio = *req.Bio
	}
	if req.Focus != nil {
		collector.Focus = req.Focus
	}

	if err := db.Save(&collector).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, collector)
}

func (h *CollectorHandler) GetStatistics(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	stats, err := h.stats.CollectorStatistics(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AddCollectorAlbum starts tracking an album for a collector. Repeat adds of
// the same album return the existing record unchanged.
func (h *CollectorHandler) AddCollectorAlbum(c *gin.Context) {
	collectorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
		return
	}

	var req models.AddCollectorAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var collector models.Collector
	if err := db.First(&collector, collectorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector not found"})
		return
	}
	var album models.Album
	if err := db.First(&album, req.AlbumID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}

	completion := req.Completion
	if completion == "" {
		completion = "0%"
	}
	collectorAlbum := models.CollectorAlbum{
		CollectorID: uint(collectorID),
		AlbumID:     req.AlbumID,
	}
	err = db.Where(models.CollectorAlbum{CollectorID: uint(collectorID), AlbumID: req.AlbumID}).
		Attrs(models.CollectorAlbum{Completion: completion, TotalStickersOwned: req.TotalStickersOwned}).
		FirstOrCreate(&collectorAlbum).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.stats.Invalidate(uint(collectorID))
	c.JSON(http.StatusCreated, collectorAlbum)
}

func (h *CollectorHandler) ListOwnedAlbums(c *gin.Context) {
	collectorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
		return
	}

	db := database.GetDB()
	var collector models.Collector
	if err := db.First(&collector, collectorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector not found"})
		return
	}

	var albums []models.CollectorAlbum
	if err := db.Where("collector_id = ?", collectorID).Order("id").Find(&albums).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, albums)
}

// RecalculateCompletion recomputes an owned album's completion percentage
// from the distinct stickers held versus the album's sticker count.
func (h *CollectorHandler) RecalculateCompletion(c *gin.Context) {
	collectorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
		return
	}
	albumID, err := strconv.ParseUint(c.Param("albumId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid album id"})
		return
	}

	db := database.GetDB()
	var collectorAlbum models.CollectorAlbum
	if err := db.Where("collector_id = ? AND album_id = ?", collectorID, albumID).
		First(&collectorAlbum).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector album not found"})
		return
	}
	var album models.Album
	if err := db.First(&album, albumID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}

	var distinct int64
	err = db.Model(&models.CollectorSticker{}).
		Where("collector_album_id = ?", collectorAlbum.ID).
		Distinct("sticker_id").Count(&distinct).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	percent := 0
	if album.TotalStickers > 0 {
		percent = int(distinct * 100 / int64(album.TotalStickers))
	}
	collectorAlbum.Completion = strconv.Itoa(percent) + "%"

	if err := db.Model(&models.CollectorAlbum{}).Where("id = ?", collectorAlbum.ID).
		Update("completion", collectorAlbum.Completion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.stats.Invalidate(uint(collectorID))
	c.JSON(http.StatusOK, collectorAlbum)
}
