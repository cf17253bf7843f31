package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/collectorhq/sticker-tracker/backend/internal/database"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
	"github.com/collectorhq/sticker-tracker/backend/internal/services"
)

type StickerHandler struct {
	stats *services.StatsService
}

func NewStickerHandler(stats *services.StatsService) *StickerHandler {
	return &StickerHandler{stats: stats}
}

func (h *StickerHandler) CreateSticker(c *gin.Context) {
	var req models.CreateStickerRequest
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

	sticker := models.Sticker{
		AlbumID:        req.AlbumID,
		Name:           req.Name,
		Number:         req.Number,
		Edition:        req.Edition,
		RarityLevel:    req.RarityLevel,
		Language:       req.Language,
		PrintVariation: req.PrintVariation,
	}
	if err := db.Create(&sticker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sticker)
}

func (h *StickerHandler) GetSticker(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var sticker models.Sticker
	if err := database.GetDB().First(&sticker, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sticker not found"})
		return
	}
	c.JSON(http.StatusOK, sticker)
}

func (h *StickerHandler) ListAlbumStickers(c *gin.Context) {
	albumID, err := strconv.ParseUint(c.Param("albumId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid album id"})
		return
	}

	query := database.GetDB().Where("album_id = ?", albumID)
	if edition := c.Query("edition"); edition != "" {
		query = query.Where("edition = ?", edition)
	}
	if rarity := c.Query("rarity"); rarity != "" {
		query = query.Where("rarity_level = ?", rarity)
	}

	var stickers []models.Sticker
	if err := query.Order("id").Find(&stickers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stickers)
}

// AddCollectorSticker adds a sticker to a collector's album. The album's
// running sticker counter moves in the same transaction as the new row.
func (h *StickerHandler) AddCollectorSticker(c *gin.Context) {
	var req models.AddCollectorStickerRequest
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

	var collectorAlbum models.CollectorAlbum
	if err := db.First(&collectorAlbum, req.CollectorAlbumID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector album not found"})
		return
	}

	var sticker models.Sticker
	if err := db.First(&sticker, req.StickerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sticker not found"})
		return
	}

	collectorSticker := models.CollectorSticker{
		CollectorAlbumID: req.CollectorAlbumID,
		StickerID:        req.StickerID,
		Quantity:         quantity,
		Condition:        req.Condition,
		IsDuplicate:      req.IsDuplicate,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&collectorSticker).Error; err != nil {
			return err
		}
		return tx.Model(&models.CollectorAlbum{}).Where("id = ?", collectorAlbum.ID).
			Update("total_stickers_owned", gorm.Expr("total_stickers_owned + ?", quantity)).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.stats.Invalidate(collectorAlbum.CollectorID)
	c.JSON(http.StatusCreated, collectorSticker)
}

func (h *StickerHandler) ListCollectorStickers(c *gin.Context) {
	collectorAlbumID, err := strconv.ParseUint(c.Param("collectorAlbumId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector album id"})
		return
	}

	db := database.GetDB()
	var collectorAlbum models.CollectorAlbum
	if err := db.First(&collectorAlbum, collectorAlbumID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector album not found"})
		return
	}

	query := db.Where("collector_album_id = ?", collectorAlbumID)
	if dup := c.Query("is_duplicate"); dup != "" {
		query = query.Where("is_duplicate = ?", dup == "true")
	}

	var stickers []models.CollectorSticker
	if err := query.Order("id").Find(&stickers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stickers)
}

// UpdateCollectorSticker applies partial updates to a holding. A quantity
// change moves the album counter by the difference, in one transaction.
func (h *StickerHandler) UpdateCollectorSticker(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateCollectorStickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var collectorSticker models.CollectorSticker
	if err := db.First(&collectorSticker, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector sticker not found"})
		return
	}

	quantityDelta := 0
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
			return
		}
		quantityDelta = *req.Quantity - collectorSticker.Quantity
		collectorSticker.Quantity = *req.Quantity
	}
	if req.Condition != nil {
		if !req.Condition.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid condition"})
			return
		}
		collectorSticker.Condition = *req.Condition
	}
	if req.IsDuplicate != nil {
		collectorSticker.IsDuplicate = *req.IsDuplicate
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&collectorSticker).Error; err != nil {
			return err
		}
		if quantityDelta == 0 {
			return nil
		}
		return tx.Model(&models.CollectorAlbum{}).Where("id = ?", collectorSticker.CollectorAlbumID).
			Update("total_stickers_owned", gorm.Expr("total_stickers_owned + ?", quantityDelta)).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var collectorAlbum models.CollectorAlbum
	if db.First(&collectorAlbum, collectorSticker.CollectorAlbumID).Error == nil {
		h.stats.Invalidate(collectorAlbum.CollectorID)
	}
	c.JSON(http.StatusOK, collectorSticker)
}

// ListMissingStickers lists album stickers the collector does not hold yet.
func (h *StickerHandler) ListMissingStickers(c *gin.Context) {
	collectorAlbumID, err := strconv.ParseUint(c.Param("collectorAlbumId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector album id"})
		return
	}

	db := database.GetDB()
	var collectorAlbum models.CollectorAlbum
	if err := db.First(&collectorAlbum, collectorAlbumID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector album not found"})
		return
	}

	var stickers []models.Sticker
	err = db.Where("album_id = ?", collectorAlbum.AlbumID).
		Where("id NOT IN (?)", db.Model(&models.CollectorSticker{}).
			Select("sticker_id").Where("collector_album_id = ?", collectorAlbumID)).
		Order("id").Find(&stickers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stickers)
}
