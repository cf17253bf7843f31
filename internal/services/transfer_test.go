package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/collectorhq/sticker-tracker/backend/internal/models"
)

func TestTransferStickerPartial(t *testing.T) {
	db := newTestDB(t)
	engine := NewTransferEngine()

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")
	album := seedAlbum(t, db)
	sticker := seedSticker(t, db, album.ID, "7")
	seedHolding(t, db, alice.ID, album.ID, sticker.ID, 4)

	item := &models.TradeItem{ItemType: models.ItemTypeSticker, ItemID: sticker.ID, Quantity: 3}
	err := db.Transaction(func(tx *gorm.DB) error {
		return engine.Transfer(tx, item, alice.ID, bob.ID)
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	var aliceAlbum, bobAlbum models.CollectorAlbum
	if err := db.Where("collector_id = ?", alice.ID).First(&aliceAlbum).Error; err != nil {
		t.Fatalf("source album: %v", err)
	}
	if err := db.Where("collector_id = ?", bob.ID).First(&bobAlbum).Error; err != nil {
		t.Fatalf("destination album: %v", err)
	}
	if aliceAlbum.TotalStickersOwned != 1 {
		t.Errorf("source album counter = %d, want 1", aliceAlbum.TotalStickersOwned)
	}
	if bobAlbum.TotalStickersOwned != 3 {
		t.Errorf("destination album counter = %d, want 3", bobAlbum.TotalStickersOwned)
	}

	var src, dst models.CollectorSticker
	if err := db.Where("collector_album_id = ?", aliceAlbum.ID).First(&src).Error; err != nil {
		t.Fatalf("source holding: %v", err)
	}
	if err := db.Where("collector_album_id = ?", bobAlbum.ID).First(&dst).Error; err != nil {
		t.Fatalf("destination holding: %v", err)
	}
	if src.Quantity != 1 {
		t.Errorf("source quantity = %d, want 1", src.Quantity)
	}
	if dst.Quantity != 3 {
		t.Errorf("destination quantity = %d, want 3", dst.Quantity)
	}
	if dst.Condition != src.Condition {
		t.Errorf("condition should carry over, got %s want %s", dst.Condition, src.Condition)
	}
	if dst.IsDuplicate {
		t.Error("received holding should not start as a duplicate")
	}
}

func TestTransferStickerDrainsRow(t *testing.T) {
	db := newTestDB(t)
	engine := NewTransferEngine()

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")
	album := seedAlbum(t, db)
	sticker := seedSticker(t, db, album.ID, "7")
	holding := seedHolding(t, db, alice.ID, album.ID, sticker.ID, 2)

	item := &models.TradeItem{ItemType: models.ItemTypeSticker, ItemID: sticker.ID, Quantity: 2}
	err := db.Transaction(func(tx *gorm.DB) error {
		return engine.Transfer(tx, item, alice.ID, bob.ID)
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	// Moving the full quantity removes the source row instead of leaving a zero.
	var count int64
	db.Model(&models.CollectorSticker{}).Where("id = ?", holding.ID).Count(&count)
	if count != 0 {
		t.Error("fully drained holding should be deleted")
	}
}

func TestTransferStickerInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	engine := NewTransferEngine()

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")
	album := seedAlbum(t, db)
	sticker := seedSticker(t, db, album.ID, "7")
	seedHolding(t, db, alice.ID, album.ID, sticker.ID, 1)

	item := &models.TradeItem{ItemType: models.ItemTypeSticker, ItemID: sticker.ID, Quantity: 2}
	err := db.Transaction(func(tx *gorm.DB) error {
		return engine.Transfer(tx, item, alice.ID, bob.ID)
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestTransferStickerMissingHolding(t *testing.T) {
	db := newTestDB(t)
	engine := NewTransferEngine()

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")
	album := seedAlbum(t, db)
	sticker := seedSticker(t, db, album.ID, "7")

	item := &models.TradeItem{ItemType: models.ItemTypeSticker, ItemID: sticker.ID, Quantity: 1}
	err := db.Transaction(func(tx *gorm.DB) error {
		return engine.Transfer(tx, item, alice.ID, bob.ID)
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTransferCard(t *testing.T) {
	db := newTestDB(t)
	engine := NewTransferEngine()

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")

	competition := models.Competition{Name: "Euro", Year: 2024, Type: models.CompetitionWorldCup, HostCountry: "Germany"}
	if err := db.Create(&competition).Error; err != nil {
		t.Fatalf("seed competition: %v", err)
	}
	card := models.Card{
		CompetitionID: competition.ID, Number: "10", PlayerName: "Player Ten",
		Team: "Brazil", Edition: "base", RarityLevel: 3, Language: "en",
	}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("seed card: %v", err)
	}
	holding := models.CollectorCard{
		CollectorID: alice.ID, CardID: card.ID, Quantity: 2, Condition: models.ConditionMint,
	}
	if err := db.Create(&holding).Error; err != nil {
		t.Fatalf("seed holding: %v", err)
	}

	item := &models.TradeItem{ItemType: models.ItemTypeCard, ItemID: card.ID, Quantity: 1}
	err := db.Transaction(func(tx *gorm.DB) error {
		return engine.Transfer(tx, item, alice.ID, bob.ID)
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	var bobCard models.CollectorCard
	if err := db.Where("collector_id = ? AND card_id = ?", bob.ID, card.ID).First(&bobCard).Error; err != nil {
		t.Fatalf("destination holding: %v", err)
	}
	if bobCard.Quantity != 1 || bobCard.Condition != models.ConditionMint {
		t.Errorf("destination holding = %+v, want quantity 1 condition mint", bobCard)
	}
}

func TestTransferMemorabilia(t *testing.T) {
	db := newTestDB(t)
	engine := NewTransferEngine()

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")
	album := seedAlbum(t, db)

	memorabilia := models.Memorabilia{
		AlbumID: album.ID, Name: "Final Match Ball", Type: "ball",
		CompetitionYear: 2026, Condition: models.ConditionMint, RarityLevel: 5,
	}
	if err := db.Create(&memorabilia).Error; err != nil {
		t.Fatalf("seed memorabilia: %v", err)
	}
	owned := models.CollectorMemorabilia{
		CollectorID: alice.ID, MemorabiliaID: memorabilia.ID,
		Condition: models.ConditionMint, IsDisplayed: true,
	}
	if err := db.Create(&owned).Error; err != nil {
		t.Fatalf("seed owned: %v", err)
	}

	item := &models.TradeItem{ItemType: models.ItemTypeMemorabilia, ItemID: memorabilia.ID, Quantity: 2}
	err := db.Transaction(func(tx *gorm.DB) error {
		return engine.Transfer(tx, item, alice.ID, bob.ID)
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("quantity above one should fail validation, got %v", err)
	}

	item.Quantity = 1
	err = db.Transaction(func(tx *gorm.DB) error {
		return engine.Transfer(tx, item, alice.ID, bob.ID)
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	var after models.CollectorMemorabilia
	if err := db.First(&after, owned.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if after.CollectorID != bob.ID {
		t.Errorf("owner = %d, want %d", after.CollectorID, bob.ID)
	}
	if after.IsDisplayed {
		t.Error("display flag should reset on transfer")
	}
}
