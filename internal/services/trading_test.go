package services

import (
	"errors"
	"testing"

	"github.com/collectorhq/sticker-tracker/backend/internal/models"
)

func TestCreateTradeRequestValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db, NewTransferEngine())

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")

	item := models.TradeItemRequest{ItemType: models.ItemTypeSticker, ItemID: 1, Quantity: 1}

	tests := []struct {
		name string
		req  models.CreateTradeRequest
	}{
		{
			name: "no items",
			req: models.CreateTradeRequest{
				CollectorID: alice.ID, CounterpartyCollectorID: bob.ID,
				ShippingAddress: "123 Main St",
			},
		},
		{
			name: "self trade",
			req: models.CreateTradeRequest{
				CollectorID: alice.ID, CounterpartyCollectorID: alice.ID,
				ShippingAddress: "123 Main St",
				Items:           []models.TradeItemRequest{item},
			},
		},
		{
			name: "negative quantity",
			req: models.CreateTradeRequest{
				CollectorID: alice.ID, CounterpartyCollectorID: bob.ID,
				ShippingAddress: "123 Main St",
				Items: []models.TradeItemRequest{
					{ItemType: models.ItemTypeSticker, ItemID: 1, Quantity: -2},
				},
			},
		},
		{
			name: "unknown item type",
			req: models.CreateTradeRequest{
				CollectorID: alice.ID, CounterpartyCollectorID: bob.ID,
				ShippingAddress: "123 Main St",
				Items: []models.TradeItemRequest{
					{ItemType: "coin", ItemID: 1, Quantity: 1},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(&tc.req)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateTradeRequestMissingCounterparty(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db, NewTransferEngine())

	alice := seedCollector(t, db, "alice")

	_, err := svc.Create(&models.CreateTradeRequest{
		CollectorID:             alice.ID,
		CounterpartyCollectorID: 999,
		ShippingAddress:         "123 Main St",
		Items: []models.TradeItemRequest{
			{ItemType: models.ItemTypeSticker, ItemID: 1, Quantity: 1},
		},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}

	// The rejected request must not leave partial rows behind.
	var trades, items int64
	db.Model(&models.TradeRequest{}).Count(&trades)
	db.Model(&models.TradeItem{}).Count(&items)
	if trades != 0 || items != 0 {
		t.Errorf("expected no rows, got %d trades and %d items", trades, items)
	}
}

func TestCreateTradeRequestDefaultsQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db, NewTransferEngine())

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")

	trade, err := svc.Create(&models.CreateTradeRequest{
		CollectorID:             alice.ID,
		CounterpartyCollectorID: bob.ID,
		ShippingAddress:         "123 Main St",
		Items: []models.TradeItemRequest{
			{ItemType: models.ItemTypeSticker, ItemID: 42},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if trade.Status != models.TradeStatusPending {
		t.Errorf("new request status = %s, want pending", trade.Status)
	}
	if len(trade.Items) != 1 || trade.Items[0].Quantity != 1 {
		t.Errorf("expected one item with quantity defaulted to 1, got %+v", trade.Items)
	}
}

func TestAcceptAssignsTrackingNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db, NewTransferEngine())

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")
	trade := createPendingTrade(t, svc, alice.ID, bob.ID)

	accepted, err := svc.Accept(trade.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != models.TradeStatusAccepted {
		t.Errorf("status = %s, want accepted", accepted.Status)
	}
	if accepted.TrackingNumber == "" {
		t.Error("accept should assign a tracking number")
	}
}

func TestTransitionScopedToPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db, NewTransferEngine())

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")

	tests := []struct {
		name  string
		apply func(uint) (*models.TradeRequest, error)
		want  models.TradeStatus
	}{
		{"accept", svc.Accept, models.TradeStatusAccepted},
		{"reject", svc.Reject, models.TradeStatusRejected},
		{"cancel", svc.Cancel, models.TradeStatusCancelled},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trade := createPendingTrade(t, svc, alice.ID, bob.ID)

			got, err := tc.apply(trade.ID)
			if err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			if got.Status != tc.want {
				t.Errorf("status = %s, want %s", got.Status, tc.want)
			}

			// Re-applying to a no-longer-pending request reads as not found.
			if _, err := tc.apply(trade.ID); !errors.Is(err, ErrNotFound) {
				t.Errorf("second %s: expected not found, got %v", tc.name, err)
			}
		})
	}

	t.Run("missing id", func(t *testing.T) {
		if _, err := svc.Accept(9999); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestCompleteRequiresAccepted(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db, NewTransferEngine())

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")
	trade := createPendingTrade(t, svc, alice.ID, bob.ID)

	if _, err := svc.Complete(trade.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("completing a pending request should read as not found, got %v", err)
	}
}

func TestCompleteTransfersOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db, NewTransferEngine())

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")
	album := seedAlbum(t, db)
	sticker := seedSticker(t, db, album.ID, "101")
	seedHolding(t, db, alice.ID, album.ID, sticker.ID, 5)

	trade, err := svc.Create(&models.CreateTradeRequest{
		CollectorID:             alice.ID,
		CounterpartyCollectorID: bob.ID,
		ShippingAddress:         "123 Main St",
		Items: []models.TradeItemRequest{
			{ItemType: models.ItemTypeSticker, ItemID: sticker.ID, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Accept(trade.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	completed, err := svc.Complete(trade.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != models.TradeStatusCompleted {
		t.Errorf("status = %s, want completed", completed.Status)
	}

	// Quantity must be conserved across both sides.
	var total int
	db.Model(&models.CollectorSticker{}).
		Where("sticker_id = ?", sticker.ID).
		Select("COALESCE(SUM(quantity), 0)").Scan(&total)
	if total != 5 {
		t.Errorf("total quantity after trade = %d, want 5", total)
	}

	var bobAlbum models.CollectorAlbum
	if err := db.Where("collector_id = ? AND album_id = ?", bob.ID, album.ID).First(&bobAlbum).Error; err != nil {
		t.Fatalf("counterparty album record should be created: %v", err)
	}
	if bobAlbum.TotalStickersOwned != 2 {
		t.Errorf("counterparty album counter = %d, want 2", bobAlbum.TotalStickersOwned)
	}
}

func TestCompleteRollsBackOnShortStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db, NewTransferEngine())

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")
	album := seedAlbum(t, db)
	sticker := seedSticker(t, db, album.ID, "101")
	other := seedSticker(t, db, album.ID, "102")
	seedHolding(t, db, alice.ID, album.ID, sticker.ID, 5)
	seedHolding(t, db, alice.ID, album.ID, other.ID, 1)

	trade, err := svc.Create(&models.CreateTradeRequest{
		CollectorID:             alice.ID,
		CounterpartyCollectorID: bob.ID,
		ShippingAddress:         "123 Main St",
		Items: []models.TradeItemRequest{
			{ItemType: models.ItemTypeSticker, ItemID: sticker.ID, Quantity: 2},
			{ItemType: models.ItemTypeSticker, ItemID: other.ID, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Accept(trade.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if _, err := svc.Complete(trade.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on short stock, got %v", err)
	}

	// The failed second item must roll back the first transfer too.
	var holding models.CollectorSticker
	if err := db.Where("sticker_id = ?", sticker.ID).First(&holding).Error; err != nil {
		t.Fatalf("source holding: %v", err)
	}
	if holding.Quantity != 5 {
		t.Errorf("source quantity after rollback = %d, want 5", holding.Quantity)
	}

	got, err := svc.Get(trade.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.TradeStatusAccepted {
		t.Errorf("status after failed complete = %s, want accepted", got.Status)
	}
}

func TestListTradeRequestsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db, NewTransferEngine())

	alice := seedCollector(t, db, "alice")
	bob := seedCollector(t, db, "bob")
	carol := seedCollector(t, db, "carol")

	first := createPendingTrade(t, svc, alice.ID, bob.ID)
	createPendingTrade(t, svc, alice.ID, carol.ID)
	createPendingTrade(t, svc, bob.ID, carol.ID)

	if _, err := svc.Cancel(first.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	byCollector, err := svc.List(&models.ListTradeRequestsQuery{CollectorID: alice.ID})
	if err != nil {
		t.Fatalf("list by collector: %v", err)
	}
	if len(byCollector) != 2 {
		t.Errorf("collector filter returned %d, want 2", len(byCollector))
	}

	cancelled, err := svc.List(&models.ListTradeRequestsQuery{
		CollectorID: alice.ID,
		Status:      models.TradeStatusCancelled,
	})
	if err != nil {
		t.Fatalf("list cancelled: %v", err)
	}
	if len(cancelled) != 1 || cancelled[0].ID != first.ID {
		t.Errorf("conjunctive filter returned %+v, want only trade %d", cancelled, first.ID)
	}

	if _, err := svc.List(&models.ListTradeRequestsQuery{Status: "shipped"}); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown status should fail validation, got %v", err)
	}
}

func createPendingTrade(t *testing.T, svc *TradeService, from, to uint) *models.TradeRequest {
	t.Helper()

	trade, err := svc.Create(&models.CreateTradeRequest{
		CollectorID:             from,
		CounterpartyCollectorID: to,
		ShippingAddress:         "123 Main St",
		Items: []models.TradeItemRequest{
			{ItemType: models.ItemTypeSticker, ItemID: 1, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create pending trade: %v", err)
	}
	return trade
}
