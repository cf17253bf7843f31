package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collectorhq/sticker-tracker/backend/internal/database"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
)

type AlbumHandler struct{}

func NewAlbumHandler() *AlbumHandler {
	return &AlbumHandler{}
}

func (h *AlbumHandler) ListAlbums(c *gin.Context) {
	db := database.GetDB()

	query := db.Order("id")
	if competitionID := c.Query("competition_id"); competitionID != "" {
		query = query.Where("competition_id = ?", competitionID)
	}
	if edition := c.Query("edition"); edition != "" {
		query = query.Where("edition = ?", edition)
	}
	if language := c.Query("language"); language != "" {
		query = query.Where("language = ?", language)
	}
	if publisher := c.Query("publisher"); publisher != "" {
		query = query.Where("publisher = ?", publisher)
	}

	var albums []models.Album
	if err := query.Find(&albums).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, albums)
}

func (h *AlbumHandler) CreateAlbum(c *gin.Context) {
	var req models.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()

	var competition models.Competition
	if err := db.First(&competition, req.CompetitionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "competition not found"})
		return
	}

	album := models.Album{
		CompetitionID: req.CompetitionID,
		Title:         req.Title,
		Edition:       req.Edition,
		CoverType:     req.CoverType,
		Language:      req.Language,
		Publisher:     req.Publisher,
		TotalStickers: req.TotalStickers,
		ReleaseYear:   req.ReleaseYear,
	}
	if err := db.Create(&album).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, album)
}

func (h *AlbumHandler) GetAlbum(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var album models.Album
	if err := database.GetDB().First(&album, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}
	c.JSON(http.StatusOK, album)
}

func (h *AlbumHandler) UpdateAlbum(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var album models.Album
	if err := db.First(&album, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}

	if req.Title != nil {
		album.Title = *req.Title
	}
	if req.Edition != nil {
		album.Edition = *req.Edition
	}
	if req.CoverType != nil {
		album.CoverType = *req.CoverType
	}
	if req.Language != nil {
		album.Language = *req.Language
	}
	if req.Publisher != nil {
		album.Publisher = *req.Publisher
	}
	if req.TotalStickers != nil {
		album.TotalStickers = *req.TotalStickers
	}
	if req.ReleaseYear != nil {
		album.ReleaseYear = *req.ReleaseYear
	}

	if err := db.Save(&album).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, album)
}

func (h *AlbumHandler) CreateAlbumSection(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.CreateAlbumSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var album models.Album
	if err := db.First(&album, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}

	section := models.AlbumSection{
		AlbumID:      album.ID,
		Name:         req.Name,
		Order:        req.Order,
		Type:         req.Type,
		StickerCount: req.StickerCount,
	}
	if err := db.Create(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (h *AlbumHandler) ListAlbumSections(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	db := database.GetDB()
	var album models.Album
	if err := db.First(&album, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}

	var sections []models.AlbumSection
	if err := db.Where("album_id = ?", id).Order("section_order").Find(&sections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sections)
}

// ListCollectorAlbums lists albums owned by a collector, optionally filtered
// by completion status.
func (h *AlbumHandler) ListCollectorAlbums(c *gin.Context) {
	collectorID, err := strconv.ParseUint(c.Param("collectorId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
		return
	}

	query := database.GetDB().Where("collector_id = ?", collectorID)
	if completion := c.Query("completion"); completion != "" {
		query = query.Where("completion = ?", completion)
	}

	var albums []models.CollectorAlbum
	if err := query.Order("id").Find(&albums).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, albums)
}
