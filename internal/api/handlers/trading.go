package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collectorhq/sticker-tracker/backend/internal/models"
	"github.com/collectorhq/sticker-tracker/backend/internal/services"
)

// TradeHandler exposes the trade request lifecycle. All state and stock
// changes happen inside the trade service; the handler only binds, calls
// and translates errors.
type TradeHandler struct {
	trades *services.TradeService
	stats  *services.StatsService
}

func NewTradeHandler(trades *services.TradeService, stats *services.StatsService) *TradeHandler {
	return &TradeHandler{trades: trades, stats: stats}
}

func (h *TradeHandler) CreateTradeRequest(c *gin.Context) {
	var req models.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trade, err := h.trades.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trade)
}

func (h *TradeHandler) GetTradeRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	trade, err := h.trades.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trade)
}

func (h *TradeHandler) ListTradeRequests(c *gin.Context) {
	var q models.ListTradeRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.Status != "" && !q.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	trades, err := h.trades.List(&q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trades)
}

func (h *TradeHandler) AcceptTradeRequest(c *gin.Context) {
	h.transition(c, h.trades.Accept)
}

func (h *TradeHandler) RejectTradeRequest(c *gin.Context) {
	h.transition(c, h.trades.Reject)
}

func (h *TradeHandler) CancelTradeRequest(c *gin.Context) {
	h.transition(c, h.trades.Cancel)
}

func (h *TradeHandler) CompleteTradeRequest(c *gin.Context) {
	h.transition(c, h.trades.Complete)
}

func (h *TradeHandler) transition(c *gin.Context, apply func(uint) (*models.TradeRequest, error)) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	trade, err := apply(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	// Holdings on both sides may have moved, so drop both cache entries.
	h.stats.Invalidate(trade.CollectorID)
	h.stats.Invalidate(trade.CounterpartyCollectorID)
	c.JSON(http.StatusOK, trade)
}

type InventoryHandler struct {
	inventory *services.InventoryService
}

func NewInventoryHandler(inventory *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

func (h *InventoryHandler) AddInventory(c *gin.Context) {
	var req models.AddInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.inventory.Add(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) GetInventory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	item, err := h.inventory.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) ListInventory(c *gin.Context) {
	itemType := models.ItemType(c.Query("item_type"))
	if itemType != "" && !itemType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item type"})
		return
	}

	var isActive *bool
	if active := c.Query("is_active"); active != "" {
		v := active == "true"
		isActive = &v
	}
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	items, err := h.inventory.List(itemType, isActive, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.inventory.Update(uint(id), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	var req models.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movement, err := h.inventory.RecordMovement(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movement)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	movements, err := h.inventory.ListMovements(uint(id), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}
