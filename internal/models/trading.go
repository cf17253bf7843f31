package models

import (
	"time"
)

type TradeStatus string

const (
	TradeStatusPending   TradeStatus = "pending"
	TradeStatusAccepted  TradeStatus = "accepted"
	TradeStatusCompleted TradeStatus = "completed"
	TradeStatusRejected  TradeStatus = "rejected"
	TradeStatusCancelled TradeStatus = "cancelled"
)

func (s TradeStatus) IsValid() bool {
	switch s {
	case TradeStatusPending, TradeStatusAccepted, TradeStatusCompleted,
		TradeStatusRejected, TradeStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to target.
// Completed, rejected and cancelled are terminal.
func (s TradeStatus) CanTransitionTo(target TradeStatus) bool {
	switch s {
	case TradeStatusPending:
		return target == TradeStatusAccepted || target == TradeStatusCancelled ||
			target == TradeStatusRejected
	case TradeStatusAccepted:
		return target == TradeStatusCompleted
	}
	return false
}

type ItemType string

const (
	ItemTypeSticker     ItemType = "sticker"
	ItemTypeCard        ItemType = "card"
	ItemTypePack        ItemType = "pack"
	ItemTypeBox         ItemType = "box"
	ItemTypeMemorabilia ItemType = "memorabilia"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeSticker, ItemTypeCard, ItemTypePack, ItemTypeBox, ItemTypeMemorabilia:
		return true
	}
	return false
}

// TradeRequest is a bilateral, pre-agreed exchange between the initiating
// collector and an explicit counterparty, tracked through a status lifecycle.
type TradeRequest struct {
	ID                      uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	CollectorID             uint        `json:"collector_id" gorm:"not null;index"`
	CounterpartyCollectorID uint        `json:"counterparty_collector_id" gorm:"not null;index"`
	ShippingAddress         string      `json:"shipping_address" gorm:"not null"`
	Status                  TradeStatus `json:"status" gorm:"not null;default:'pending';index"`
	TrackingNumber          string      `json:"tracking_number"`
	Items                   []TradeItem `json:"items" gorm:"foreignKey:TradeRequestID"`
	CreatedAt               time.Time   `json:"created_at"`
	UpdatedAt               time.Time   `json:"updated_at"`
}

// TradeItem is one line of a trade request. It is created together with its
// parent request and never modified afterward. ItemID points into the table
// named by ItemType; there is no foreign key across tables.
type TradeItem struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	TradeRequestID uint      `json:"trade_request_id" gorm:"not null;index"`
	ItemType       ItemType  `json:"item_type" gorm:"not null"`
	ItemID         uint      `json:"item_id" gorm:"not null"`
	Quantity       int       `json:"quantity" gorm:"not null;default:1"`
	IsIncoming     bool      `json:"is_incoming" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
}

type TradeItemRequest struct {
	ItemType   ItemType `json:"item_type" binding:"required"`
	ItemID     uint     `json:"item_id" binding:"required"`
	Quantity   int      `json:"quantity"`
	IsIncoming bool     `json:"is_incoming"`
}

type CreateTradeRequest struct {
	CollectorID             uint               `json:"collector_id" binding:"required"`
	CounterpartyCollectorID uint               `json:"counterparty_collector_id" binding:"required"`
	ShippingAddress         string             `json:"shipping_address" binding:"required"`
	Items                   []TradeItemRequest `json:"items" binding:"required"`
}

type ListTradeRequestsQuery struct {
	CollectorID uint        `form:"collector_id"`
	Status      TradeStatus `form:"status"`
	Skip        int         `form:"skip"`
	Limit       int         `form:"limit"`
}
