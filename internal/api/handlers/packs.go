package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collectorhq/sticker-tracker/backend/internal/database"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
	"github.com/collectorhq/sticker-tracker/backend/internal/services"
)

type PackHandler struct {
	stats *services.StatsService
}

func NewPackHandler(stats *services.StatsService) *PackHandler {
	return &PackHandler{stats: stats}
}

func (h *PackHandler) CreatePack(c *gin.Context) {
	var req models.CreatePackRequest
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

	pack := models.Pack{
		AlbumID:         req.AlbumID,
		Publisher:       req.Publisher,
		ContainerType:   req.ContainerType,
		Edition:         req.Edition,
		Language:        req.Language,
		StickerCount:    req.StickerCount,
		SpecialFeatures: req.SpecialFeatures,
	}
	if err := db.Create(&pack).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pack)
}

func (h *PackHandler) GetPack(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var pack models.Pack
	if err := database.GetDB().First(&pack, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pack not found"})
		return
	}
	c.JSON(http.StatusOK, pack)
}

func (h *PackHandler) ListAlbumPacks(c *gin.Context) {
	albumID, err := strconv.ParseUint(c.Param("albumId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid album id"})
		return
	}

	var packs []models.Pack
	if err := database.GetDB().Where("album_id = ?", albumID).Order("id").Find(&packs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, packs)
}

func (h *PackHandler) AddCollectorPack(c *gin.Context) {
	var req models.AddCollectorPackRequest
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

	db := database.GetDB()
	var collector models.Collector
	if err := db.First(&collector, req.CollectorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector not found"})
		return
	}
	var pack models.Pack
	if err := db.First(&pack, req.PackID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pack not found"})
		return
	}

	isSealed := true
	if req.IsSealed != nil {
		isSealed = *req.IsSealed
	}
	collectorPack := models.CollectorPack{
		CollectorID: req.CollectorID,
		PackID:      req.PackID,
		Quantity:    quantity,
		Condition:   req.Condition,
		IsSealed:    isSealed,
	}
	if err := db.Create(&collectorPack).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.stats.Invalidate(req.CollectorID)
	c.JSON(http.StatusCreated, collectorPack)
}

func (h *PackHandler) ListCollectorPacks(c *gin.Context) {
	collectorID, err := strconv.ParseUint(c.Param("collectorId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
		return
	}

	query := database.GetDB().Where("collector_id = ?", collectorID)
	if sealed := c.Query("is_sealed"); sealed != "" {
		query = query.Where("is_sealed = ?", sealed == "true")
	}

	var packs []models.CollectorPack
	if err := query.Order("id").Find(&packs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, packs)
}

func (h *PackHandler) UpdateCollectorPack(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateCollectorPackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var collectorPack models.CollectorPack
	if err := db.First(&collectorPack, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector pack not found"})
		return
	}

	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
			return
		}
		collectorPack.Quantity = *req.Quantity
	}
	if req.Condition != nil {
		collectorPack.Condition = *req.Condition
	}
	if req.IsSealed != nil {
		collectorPack.IsSealed = *req.IsSealed
	}

	if err := db.Save(&collectorPack).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.stats.Invalidate(collectorPack.CollectorID)
	c.JSON(http.StatusOK, collectorPack)
}
