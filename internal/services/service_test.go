package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/collectorhq/sticker-tracker/backend/internal/database"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
)

// newTestDB opens an in-memory database with the full schema. Connections
// are capped at one so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func seedCollector(t *testing.T, db *gorm.DB, name string) *models.Collector {
	t.Helper()

	collector := models.Collector{UserID: uint(len(name)) + 1000, DisplayName: name}
	if err := db.Create(&collector).Error; err != nil {
		t.Fatalf("seed collector %s: %v", name, err)
	}
	return &collector
}

// seedAlbum creates a competition and an album under it.
func seedAlbum(t *testing.T, db *gorm.DB) *models.Album {
	t.Helper()

	competition := models.Competition{
		Name: "World Cup", Year: 2026, Type: models.CompetitionWorldCup, HostCountry: "USA",
	}
	if err := db.Create(&competition).Error; err != nil {
		t.Fatalf("seed competition: %v", err)
	}

	album := models.Album{
		CompetitionID: competition.ID,
		Title:         "World Cup 2026 Official",
		Edition:       "international",
		CoverType:     models.CoverSoftcover,
		Language:      "en",
		Publisher:     "Panini",
		TotalStickers: 680,
		ReleaseYear:   2026,
	}
	if err := db.Create(&album).Error; err != nil {
		t.Fatalf("seed album: %v", err)
	}
	return &album
}

func seedSticker(t *testing.T, db *gorm.DB, albumID uint, number string) *models.Sticker {
	t.Helper()

	sticker := models.Sticker{
		AlbumID:     albumID,
		Name:        "Sticker " + number,
		Number:      number,
		Edition:     "international",
		RarityLevel: 1,
		Language:    "en",
	}
	if err := db.Create(&sticker).Error; err != nil {
		t.Fatalf("seed sticker %s: %v", number, err)
	}
	return &sticker
}

// seedHolding gives a collector an album record plus a sticker holding.
func seedHolding(t *testing.T, db *gorm.DB, collectorID, albumID, stickerID uint, quantity int) *models.CollectorSticker {
	t.Helper()

	collectorAlbum := models.CollectorAlbum{CollectorID: collectorID, AlbumID: albumID}
	err := db.Where("collector_id = ? AND album_id = ?", collectorID, albumID).
		Attrs(models.CollectorAlbum{Completion: "0%"}).
		FirstOrCreate(&collectorAlbum).Error
	if err != nil {
		t.Fatalf("seed collector album: %v", err)
	}

	holding := models.CollectorSticker{
		CollectorAlbumID: collectorAlbum.ID,
		StickerID:        stickerID,
		Quantity:         quantity,
		Condition:        models.ConditionGood,
	}
	if err := db.Create(&holding).Error; err != nil {
		t.Fatalf("seed holding: %v", err)
	}

	err = db.Model(&models.CollectorAlbum{}).Where("id = ?", collectorAlbum.ID).
		Update("total_stickers_owned", gorm.Expr("total_stickers_owned + ?", quantity)).Error
	if err != nil {
		t.Fatalf("bump album counter: %v", err)
	}
	return &holding
}
