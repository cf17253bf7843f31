package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/collectorhq/sticker-tracker/backend/internal/metrics"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
)

// InventoryService tracks company-held stock and the append-only movement
// ledger that adjusts it.
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

func (s *InventoryService) Add(req *models.AddInventoryRequest) (*models.CompanyInventory, error) {
	if !req.ItemType.IsValid() {
		return nil, fmt.Errorf("%w: unknown item type %q", ErrValidation, req.ItemType)
	}
	if req.QuantityAvailable < 0 || req.QuantityAllocated < 0 {
		return nil, fmt.Errorf("%w: quantities cannot be negative", ErrValidation)
	}

	inventory := models.CompanyInventory{
		ItemType:          req.ItemType,
		ItemID:            req.ItemID,
		QuantityAvailable: req.QuantityAvailable,
		QuantityAllocated: req.QuantityAllocated,
		IsActive:          true,
		RestockThreshold:  req.RestockThreshold,
		Notes:             req.Notes,
		MetaInfo:          req.MetaInfo,
	}
	if req.IsActive != nil {
		inventory.IsActive = *req.IsActive
	}

	if err := s.db.Create(&inventory).Error; err != nil {
		return nil, err
	}

	metrics.InventoryAvailable.WithLabelValues(string(inventory.ItemType)).Add(float64(inventory.QuantityAvailable))
	return &inventory, nil
}

func (s *InventoryService) Get(id uint) (*models.CompanyInventory, error) {
	var inventory models.CompanyInventory
	if err := s.db.First(&inventory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: inventory item %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &inventory, nil
}

func (s *InventoryService) List(itemType models.ItemType, isActive *bool, skip, limit int) ([]models.CompanyInventory, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := s.db.Order("id")
	if itemType != "" {
		if !itemType.IsValid() {
			return nil, fmt.Errorf("%w: unknown item type %q", ErrValidation, itemType)
		}
		query = query.Where("item_type = ?", itemType)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var items []models.CompanyInventory
	if err := query.Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies partial field updates. Movement history is the only way to
// change stock in normal operation, but direct quantity edits stay available
// for corrections, matching the update endpoint's original contract.
func (s *InventoryService) Update(id uint, req *models.UpdateInventoryRequest) (*models.CompanyInventory, error) {
	var inventory models.CompanyInventory
	if err := s.db.First(&inventory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: inventory item %d", ErrNotFound, id)
		}
		return nil, err
	}

	if req.QuantityAvailable != nil {
		inventory.QuantityAvailable = *req.QuantityAvailable
	}
	if req.QuantityAllocated != nil {
		inventory.QuantityAllocated = *req.QuantityAllocated
	}
	if req.IsActive != nil {
		inventory.IsActive = *req.IsActive
	}
	if req.RestockThreshold != nil {
		inventory.RestockThreshold = req.RestockThreshold
	}
	if req.Notes != nil {
		inventory.Notes = *req.Notes
	}
	if req.MetaInfo != nil {
		inventory.MetaInfo = req.MetaInfo
	}

	if err := s.db.Save(&inventory).Error; err != nil {
		return nil, err
	}
	return &inventory, nil
}

// RecordMovement appends a ledger entry and applies its signed effect to
// the available quantity, both in one transaction. The storage layer does
// not block a negative result; a movement that overdraws stock is recorded
// and logged so the ledger still explains the balance.
func (s *InventoryService) RecordMovement(req *models.RecordMovementRequest) (*models.InventoryMovement, error) {
	if !req.MovementType.IsValid() {
		return nil, fmt.Errorf("%w: unknown movement type %q", ErrValidation, req.MovementType)
	}
	if req.Quantity == 0 {
		return nil, fmt.Errorf("%w: movement quantity cannot be zero", ErrValidation)
	}
	if req.Quantity < 0 && req.MovementType != models.MovementAdjustment {
		return nil, fmt.Errorf("%w: only adjustments may carry a negative quantity", ErrValidation)
	}

	var movement models.InventoryMovement
	var itemType models.ItemType
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var inventory models.CompanyInventory
		if err := tx.First(&inventory, req.InventoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: inventory item %d", ErrNotFound, req.InventoryID)
			}
			return err
		}

		effect := req.MovementType.SignedEffect(req.Quantity)
		inventory.QuantityAvailable += effect
		if inventory.QuantityAvailable < 0 {
			log.Printf("Inventory %d went negative (%d) after %s movement of %d",
				inventory.ID, inventory.QuantityAvailable, req.MovementType, req.Quantity)
		}
		if req.MovementType == models.MovementRestock {
			now := time.Now()
			inventory.LastRestockDate = &now
		}

		movement = models.InventoryMovement{
			InventoryID:    inventory.ID,
			MovementType:   req.MovementType,
			Quantity:       req.Quantity,
			TradeRequestID: req.TradeRequestID,
			Notes:          req.Notes,
			MetaInfo:       req.MetaInfo,
		}
		if err := tx.Create(&movement).Error; err != nil {
			return err
		}

		itemType = inventory.ItemType
		return tx.Save(&inventory).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.InventoryMovementsTotal.WithLabelValues(string(req.MovementType)).Inc()
	metrics.InventoryAvailable.WithLabelValues(string(itemType)).Add(float64(req.MovementType.SignedEffect(req.Quantity)))
	return &movement, nil
}

// ListMovements returns the ledger for one inventory item, oldest first.
func (s *InventoryService) ListMovements(inventoryID uint, skip, limit int) ([]models.InventoryMovement, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var inventory models.CompanyInventory
	if err := s.db.First(&inventory, inventoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: inventory item %d", ErrNotFound, inventoryID)
		}
		return nil, err
	}

	var movements []models.InventoryMovement
	err := s.db.Where("inventory_id = ?", inventoryID).
		Order("id").Offset(skip).Limit(limit).Find(&movements).Error
	if err != nil {
		return nil, err
	}
	return movements, nil
}
