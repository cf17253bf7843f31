package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collectorhq/sticker-tracker/backend/internal/database"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
)

type CompetitionHandler struct{}

func NewCompetitionHandler() *CompetitionHandler {
	return &CompetitionHandler{}
}

func (h *CompetitionHandler) ListCompetitions(c *gin.Context) {
	db := database.GetDB()

	query := db.Order("id")
	if year := c.Query("year"); year != "" {
		query = query.Where("year = ?", year)
	}
	if compType := c.Query("type"); compType != "" {
		query = query.Where("type = ?", compType)
	}

	var competitions []models.Competition
	if err := query.Find(&competitions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, competitions)
}

func (h *CompetitionHandler) CreateCompetition(c *gin.Context) {
	var req models.CreateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	competition := models.Competition{
		Name:        req.Name,
		Year:        req.Year,
		Type:        req.Type,
		HostCountry: req.HostCountry,
		Winner:      req.Winner,
	}
	if err := database.GetDB().Create(&competition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, competition)
}

func (h *CompetitionHandler) GetCompetition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var competition models.Competition
	if err := database.GetDB().First(&competition, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "competition not found"})
		return
	}
	c.JSON(http.StatusOK, competition)
}

func (h *CompetitionHandler) UpdateCompetition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var competition models.Competition
	if err := db.First(&competition, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "competition not found"})
		return
	}

	if req.Name != nil {
		competition.Name = *req.Name
	}
	if req.Year != nil {
		competition.Year = *req.Year
	}
	if req.Type != nil {
		competition.Type = *req.Type
	}
	if req.HostCountry != nil {
		competition.HostCountry = *req.HostCountry
	}
	if req.Winner != nil {
		competition.Winner = *req.Winner
	}

	if err := db.Save(&competition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, competition)
}

func (h *CompetitionHandler) DeleteCompetition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	db := database.GetDB()

	// Albums referencing the competition block the delete.
	var albumCount int64
	db.Model(&models.Album{}).Where("competition_id = ?", id).Count(&albumCount)
	if albumCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "competition has albums and cannot be deleted"})
		return
	}

	result := db.Delete(&models.Competition{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "competition not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *CompetitionHandler) GetCompetitionStats(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	db := database.GetDB()
	var competition models.Competition
	if err := db.First(&competition, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "competition not found"})
		return
	}

	stats := models.CompetitionStats{CompetitionID: competition.ID}

	var count int64
	db.Model(&models.Album{}).Where("competition_id = ?", id).Count(&count)
	stats.TotalAlbums = int(count)

	db.Model(&models.Sticker{}).
		Joins("JOIN albums ON albums.id = stickers.album_id").
		Where("albums.competition_id = ?", id).Count(&count)
	stats.TotalStickers = int(count)

	db.Model(&models.Card{}).Where("competition_id = ?", id).Count(&count)
	stats.TotalCards = int(count)

	db.Model(&models.CollectorAlbum{}).
		Joins("JOIN albums ON albums.id = collector_albums.album_id").
		Where("albums.competition_id = ?", id).
		Distinct("collector_albums.collector_id").Count(&count)
	stats.TotalCollectors = int(count)

	var completed int64
	db.Model(&models.CollectorAlbum{}).
		Joins("JOIN albums ON albums.id = collector_albums.album_id").
		Where("albums.competition_id = ? AND collector_albums.completion = ?", id, "100%").
		Count(&completed)
	if stats.TotalCollectors > 0 {
		stats.CompletionRate = float64(completed) / float64(stats.TotalCollectors) * 100
	}

	c.JSON(http.StatusOK, stats)
}
