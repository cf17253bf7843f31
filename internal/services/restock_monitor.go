package services

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/collectorhq/sticker-tracker/backend/internal/metrics"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
)

// RestockMonitor periodically scans active company inventory for items at or
// below their restock threshold and reports them.
type RestockMonitor struct {
	db            *gorm.DB
	checkInterval time.Duration
}

func NewRestockMonitor(db *gorm.DB) *RestockMonitor {
	return &RestockMonitor{
		db:            db,
		checkInterval: 15 * time.Minute,
	}
}

// Start begins the background scan loop. Blocks until ctx is cancelled.
func (m *RestockMonitor) Start(ctx context.Context) {
	log.Println("Restock monitor started: will flag low company inventory")

	m.check()

	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Restock monitor stopping...")
			return
		case <-ticker.C:
			m.check()
		}
	}
}

func (m *RestockMonitor) check() {
	low, err := m.BelowThreshold()
	if err != nil {
		log.Printf("Restock monitor: scan failed: %v", err)
		return
	}

	metrics.InventoryBelowThreshold.Set(float64(len(low)))

	for _, item := range low {
		log.Printf("Restock needed: inventory %d (%s %d) has %d available, threshold %d",
			item.ID, item.ItemType, item.ItemID, item.QuantityAvailable, *item.RestockThreshold)
	}
}

// BelowThreshold returns active inventory rows at or below their restock
// threshold. Rows without a threshold are never flagged.
func (m *RestockMonitor) BelowThreshold() ([]models.CompanyInventory, error) {
	var items []models.CompanyInventory
	err := m.db.
		Where("is_active = ? AND restock_threshold IS NOT NULL AND quantity_available <= restock_threshold", true).
		Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
