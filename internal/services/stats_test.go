package services

import (
	"errors"
	"testing"

	"github.com/collectorhq/sticker-tracker/backend/internal/models"
)

func TestCollectorStatistics(t *testing.T) {
	db := newTestDB(t)
	svc, err := NewStatsService(db)
	if err != nil {
		t.Fatalf("new stats service: %v", err)
	}

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")
	album := seedAlbum(t, db)
	sticker := seedSticker(t, db, album.ID, "1")
	seedHolding(t, db, alice.ID, album.ID, sticker.ID, 3)

	dup := seedSticker(t, db, album.ID, "2")
	var collectorAlbum models.CollectorAlbum
	if err := db.Where("collector_id = ?", alice.ID).First(&collectorAlbum).Error; err != nil {
		t.Fatalf("collector album: %v", err)
	}
	if err := db.Create(&models.CollectorSticker{
		CollectorAlbumID: collectorAlbum.ID, StickerID: dup.ID, Quantity: 4,
		Condition: models.ConditionGood, IsDuplicate: true,
	}).Error; err != nil {
		t.Fatalf("seed duplicate: %v", err)
	}

	trades := NewTradeService(db, NewTransferEngine())
	completedTrade := createPendingTrade(t, trades, alice.ID, bob.ID)
	if _, err := trades.Accept(completedTrade.ID); err != nil {
		t.Fatal(err)
	}
	if err := db.Model(&models.TradeRequest{}).Where("id = ?", completedTrade.ID).
		Update("status", models.TradeStatusCompleted).Error; err != nil {
		t.Fatal(err)
	}
	cancelledTrade := createPendingTrade(t, trades, alice.ID, bob.ID)
	if _, err := trades.Cancel(cancelledTrade.ID); err != nil {
		t.Fatal(err)
	}
	createPendingTrade(t, trades, alice.ID, bob.ID)

	stats, err := svc.CollectorStatistics(alice.ID)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}

	if stats.TotalAlbums != 1 {
		t.Errorf("total albums = %d, want 1", stats.TotalAlbums)
	}
	if stats.TotalStickers != 7 {
		t.Errorf("total stickers = %d, want 7", stats.TotalStickers)
	}
	if stats.DuplicateStickers != 3 {
		t.Errorf("duplicate stickers = %d, want 3 (copies beyond the first)", stats.DuplicateStickers)
	}
	if stats.TotalTrades != 3 {
		t.Errorf("total trades = %d, want 3", stats.TotalTrades)
	}
	if stats.SuccessfulTrades != 1 || stats.CancelledTrades != 1 || stats.PendingTrades != 1 {
		t.Errorf("trade buckets = %d/%d/%d, want 1/1/1",
			stats.SuccessfulTrades, stats.CancelledTrades, stats.PendingTrades)
	}
	if stats.TradeSuccessRate != 50 {
		t.Errorf("trade success rate = %.1f, want 50.0", stats.TradeSuccessRate)
	}
}

func TestCollectorStatisticsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc, err := NewStatsService(db)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.CollectorStatistics(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestCollectorStatisticsCache(t *testing.T) {
	db := newTestDB(t)
	svc, err := NewStatsService(db)
	if err != nil {
		t.Fatal(err)
	}

	alice := seedCollector(t, db, "alice")
	album := seedAlbum(t, db)
	sticker := seedSticker(t, db, album.ID, "1")
	seedHolding(t, db, alice.ID, album.ID, sticker.ID, 2)

	first, err := svc.CollectorStatistics(alice.ID)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	if first.TotalStickers != 2 {
		t.Fatalf("total stickers = %d, want 2", first.TotalStickers)
	}

	// A write the service does not see keeps serving the cached value.
	if err := db.Model(&models.CollectorSticker{}).
		Where("sticker_id = ?", sticker.ID).Update("quantity", 10).Error; err != nil {
		t.Fatal(err)
	}

	cached, err := svc.CollectorStatistics(alice.ID)
	if err != nil {
		t.Fatalf("cached read: %v", err)
	}
	if cached.TotalStickers != 2 {
		t.Errorf("cached total stickers = %d, want 2", cached.TotalStickers)
	}

	svc.Invalidate(alice.ID)
	fresh, err := svc.CollectorStatistics(alice.ID)
	if err != nil {
		t.Fatalf("fresh read: %v", err)
	}
	if fresh.TotalStickers != 10 {
		t.Errorf("total stickers after invalidation = %d, want 10", fresh.TotalStickers)
	}
}
