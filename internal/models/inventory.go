package models

import (
	"time"

	"gorm.io/datatypes"
)

type MovementType string

const (
	MovementRestock    MovementType = "restock"
	MovementSale       MovementType = "sale"
	MovementReturn     MovementType = "return"
	MovementAdjustment MovementType = "adjustment"
	MovementTrade      MovementType = "trade"
)

func (t MovementType) IsValid() bool {
	switch t {
	case MovementRestock, MovementSale, MovementReturn, MovementAdjustment, MovementTrade:
		return true
	}
	return false
}

// SignedEffect returns the delta a movement applies to the available
// quantity. Restocks and returns add stock, sales and outgoing trades
// remove it. Adjustments carry the caller's sign unchanged.
func (t MovementType) SignedEffect(quantity int) int {
	switch t {
	case MovementSale, MovementTrade:
		return -quantity
	default:
		return quantity
	}
}

// CompanyInventory is platform-held stock for one item. ItemID points into
// the table named by ItemType, same convention as TradeItem.
type CompanyInventory struct {
	ID                uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	ItemType          ItemType       `json:"item_type" gorm:"not null;index"`
	ItemID            uint           `json:"item_id" gorm:"not null"`
	QuantityAvailable int            `json:"quantity_available" gorm:"not null;default:0"`
	QuantityAllocated int            `json:"quantity_allocated" gorm:"not null;default:0"`
	IsActive          bool           `json:"is_active" gorm:"not null;default:true"`
	RestockThreshold  *int           `json:"restock_threshold"`
	LastRestockDate   *time.Time     `json:"last_restock_date"`
	Notes             string         `json:"notes"`
	MetaInfo          datatypes.JSON `json:"meta_info"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// InventoryMovement is an append-only ledger entry. Rows are never updated
// or deleted once written.
type InventoryMovement struct {
	ID             uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	InventoryID    uint           `json:"inventory_id" gorm:"not null;index"`
	MovementType   MovementType   `json:"movement_type" gorm:"not null"`
	Quantity       int            `json:"quantity" gorm:"not null"`
	TradeRequestID *uint          `json:"trade_request_id"`
	Notes          string         `json:"notes"`
	MetaInfo       datatypes.JSON `json:"meta_info"`
	CreatedAt      time.Time      `json:"created_at"`
}

type AddInventoryRequest struct {
	ItemType          ItemType       `json:"item_type" binding:"required"`
	ItemID            uint           `json:"item_id" binding:"required"`
	QuantityAvailable int            `json:"quantity_available"`
	QuantityAllocated int            `json:"quantity_allocated"`
	IsActive          *bool          `json:"is_active"`
	RestockThreshold  *int           `json:"restock_threshold"`
	Notes             string         `json:"notes"`
	MetaInfo          datatypes.JSON `json:"meta_info"`
}

type UpdateInventoryRequest struct {
	QuantityAvailable *int           `json:"quantity_available"`
	QuantityAllocated *int           `json:"quantity_allocated"`
	IsActive          *bool          `json:"is_active"`
	RestockThreshold  *int           `json:"restock_threshold"`
	Notes             *string        `json:"notes"`
	MetaInfo          datatypes.JSON `json:"meta_info"`
}

type RecordMovementRequest struct {
	InventoryID    uint           `json:"inventory_id" binding:"required"`
	MovementType   MovementType   `json:"movement_type" binding:"required"`
	Quantity       int            `json:"quantity" binding:"required"`
	TradeRequestID *uint          `json:"trade_request_id"`
	Notes          string         `json:"notes"`
	MetaInfo       datatypes.JSON `json:"meta_info"`
}
