package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/collectorhq/sticker-tracker/backend/internal/database"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
	"github.com/collectorhq/sticker-tracker/backend/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	tradeService := services.NewTradeService(db, services.NewTransferEngine())
	inventoryService := services.NewInventoryService(db)
	statsService, err := services.NewStatsService(db)
	if err != nil {
		t.Fatalf("stats service: %v", err)
	}

	return SetupRouter(tradeService, inventoryService, statsService)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health returned %d", w.Code)
	}
}

func TestCompetitionLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/competitions", gin.H{
		"name": "World Cup", "year": 2026, "type": "world_cup", "host_country": "USA",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	var competition models.Competition
	decode(t, w, &competition)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/competitions/%d", competition.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get returned %d", w.Code)
	}

	// An album under the competition blocks the delete.
	w = doJSON(t, router, http.MethodPost, "/api/v1/albums", gin.H{
		"competition_id": competition.ID, "title": "Official Album", "edition": "international",
		"cover_type": "softcover", "language": "en", "publisher": "Panini",
		"total_stickers": 680, "release_year": 2026,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create album returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/competitions/%d", competition.ID), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("delete with albums returned %d, want 409", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/competitions/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete missing returned %d, want 404", w.Code)
	}
}

func TestTradeLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	db := database.GetDB()

	alice := models.Collector{UserID: 1, DisplayName: "alice"}
	bob := models.Collector{UserID: 2, DisplayName: "bob"}
	if err := db.Create(&alice).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&bob).Error; err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/trading/request", gin.H{
		"collector_id":              alice.ID,
		"counterparty_collector_id": bob.ID,
		"shipping_address":          "123 Main St",
		"items": []gin.H{
			{"item_type": "sticker", "item_id": 1, "quantity": 1},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	var trade models.TradeRequest
	decode(t, w, &trade)

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/trading/request/%d/accept", trade.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("accept returned %d: %s", w.Code, w.Body.String())
	}
	var accepted models.TradeRequest
	decode(t, w, &accepted)
	if accepted.Status != models.TradeStatusAccepted || accepted.TrackingNumber == "" {
		t.Errorf("accepted trade = %+v, want accepted status with tracking number", accepted)
	}

	// Repeating the accept must read as not found: the scoped lookup only
	// sees pending requests.
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/trading/request/%d/accept", trade.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second accept returned %d, want 404", w.Code)
	}

	// Completing fails with 404-style scoping too once the item is missing.
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/trading/request/%d/complete", trade.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("complete without holdings returned %d, want 404", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/trading/requests?collector_id=%d", alice.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d", w.Code)
	}
	var trades []models.TradeRequest
	decode(t, w, &trades)
	if len(trades) != 1 {
		t.Errorf("list returned %d trades, want 1", len(trades))
	}
}

func TestInventoryEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory", gin.H{
		"item_type": "sticker", "item_id": 7, "quantity_available": 10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add returned %d: %s", w.Code, w.Body.String())
	}
	var item models.CompanyInventory
	decode(t, w, &item)

	w = doJSON(t, router, http.MethodPost, "/api/v1/inventory/movement", gin.H{
		"inventory_id": item.ID, "movement_type": "sale", "quantity": 4,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("movement returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/inventory/%d", item.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get returned %d", w.Code)
	}
	var after models.CompanyInventory
	decode(t, w, &after)
	if after.QuantityAvailable != 6 {
		t.Errorf("available after sale = %d, want 6", after.QuantityAvailable)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/inventory/movement", gin.H{
		"inventory_id": item.ID, "movement_type": "theft", "quantity": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad movement type returned %d, want 400", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/inventory/%d/movements", item.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("movements returned %d", w.Code)
	}
	var movements []models.InventoryMovement
	decode(t, w, &movements)
	if len(movements) != 1 {
		t.Errorf("ledger has %d entries, want 1", len(movements))
	}
}

func TestCollectorStatisticsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	db := database.GetDB()

	collector := models.Collector{UserID: 3, DisplayName: "carol"}
	if err := db.Create(&collector).Error; err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/collectors/%d/statistics", collector.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("statistics returned %d: %s", w.Code, w.Body.String())
	}
	var stats models.CollectorStatistics
	decode(t, w, &stats)
	if stats.TotalAlbums != 0 || stats.TotalTrades != 0 {
		t.Errorf("fresh collector stats = %+v, want zeros", stats)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/collectors/999/statistics", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing collector returned %d, want 404", w.Code)
	}
}
