package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collectorhq/sticker-tracker/backend/internal/database"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
	"github.com/collectorhq/sticker-tracker/backend/internal/services"
)

type CardHandler struct {
	stats *services.StatsService
}

func NewCardHandler(stats *services.StatsService) *CardHandler {
	return &CardHandler{stats: stats}
}

func (h *CardHandler) CreateCard(c *gin.Context) {
	var req models.CreateCardRequest
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

	card := models.Card{
		CompetitionID: req.CompetitionID,
		Number:        req.Number,
		PlayerName:    req.PlayerName,
		Team:          req.Team,
		Edition:       req.Edition,
		RarityLevel:   req.RarityLevel,
		Language:      req.Language,
	}
	if err := db.Create(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) GetCard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var card models.Card
	if err := database.GetDB().First(&card, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) ListCompetitionCards(c *gin.Context) {
	competitionID, err := strconv.ParseUint(c.Param("competitionId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid competition id"})
		return
	}

	query := database.GetDB().Where("competition_id = ?", competitionID)
	if team := c.Query("team"); team != "" {
		query = query.Where("team = ?", team)
	}
	if player := c.Query("player_name"); player != "" {
		query = query.Where("player_name = ?", player)
	}

	var cards []models.Card
	if err := query.Order("id").Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) AddCollectorCard(c *gin.Context) {
	var req models.AddCollectorCardRequest
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
	var card models.Card
	if err := db.First(&card, req.CardID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}

	collectorCard := models.CollectorCard{
		CollectorID: req.CollectorID,
		CardID:      req.CardID,
		Quantity:    quantity,
		Condition:   req.Condition,
		IsDuplicate: req.IsDuplicate,
	}
	if err := db.Create(&collectorCard).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.stats.Invalidate(req.CollectorID)
	c.JSON(http.StatusCreated, collectorCard)
}

func (h *CardHandler) ListCollectorCards(c *gin.Context) {
	collectorID, err := strconv.ParseUint(c.Param("collectorId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
		return
	}

	query := database.GetDB().Where("collector_id = ?", collectorID)
	if dup := c.Query("is_duplicate"); dup != "" {
		query = query.Where("is_duplicate = ?", dup == "true")
	}

	var cards []models.CollectorCard
	if err := query.Order("id").Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) UpdateCollectorCard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateCollectorCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var collectorCard models.CollectorCard
	if err := db.First(&collectorCard, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collector card not found"})
		return
	}

	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
			return
		}
		collectorCard.Quantity = *req.Quantity
	}
	if req.Condition != nil {
		if !req.Condition.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid condition"})
			return
		}
		collectorCard.Condition = *req.Condition
	}
	if req.IsDuplicate != nil {
		collectorCard.IsDuplicate = *req.IsDuplicate
	}

	if err := db.Save(&collectorCard).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.stats.Invalidate(collectorCard.CollectorID)
	c.JSON(http.StatusOK, collectorCard)
}
