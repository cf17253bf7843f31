package models

import (
	"time"

	"gorm.io/datatypes"
)

type Condition string

const (
	ConditionMint      Condition = "mint"
	ConditionNearMint  Condition = "near_mint"
	ConditionExcellent Condition = "excellent"
	ConditionVeryGood  Condition = "very_good"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

func (c Condition) IsValid() bool {
	switch c {
	case ConditionMint, ConditionNearMint, ConditionExcellent,
		ConditionVeryGood, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type Collector struct {
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	DisplayName string         `json:"display_name" gorm:"not null"`
	Bio         string         `json:"bio"`
	Focus       datatypes.JSON `json:"focus"` // list of interests: albums, stickers, cards, ...
	CreatedAt   time.Time      `json:"created_at"`
}

type CreateCollectorRequest struct {
	UserID      uint           `json:"user_id" binding:"required"`
	DisplayName string         `json:"display_name" binding:"required"`
	Bio         string         `json:"bio"`
	Focus       datatypes.JSON `json:"focus"`
}

type UpdateCollectorRequest struct {
	DisplayName *string        `json:"display_name"`
	Bio         *string        `json:"bio"`
	Focus       datatypes.JSON `json:"focus"`
}

// CollectorStatistics aggregates one collector's holdings and trade history.
type CollectorStatistics struct {
	TotalAlbums       int     `json:"total_albums"`
	CompletedAlbums   int     `json:"completed_albums"`
	CompletionRate    float64 `json:"completion_rate"`
	TotalStickers     int     `json:"total_stickers"`
	DuplicateStickers int     `json:"duplicate_stickers"`
	TotalCards        int     `json:"total_cards"`
	DuplicateCards    int     `json:"duplicate_cards"`
	TotalPacks        int     `json:"total_packs"`
	SealedPacks       int     `json:"sealed_packs"`
	TotalBoxes        int     `json:"total_boxes"`
	SealedBoxes       int     `json:"sealed_boxes"`
	TotalMemorabilia  int     `json:"total_memorabilia"`
	TotalTrades       int     `json:"total_trades"`
	SuccessfulTrades  int     `json:"successful_trades"`
	PendingTrades     int     `json:"pending_trades"`
	CancelledTrades   int     `json:"cancelled_trades"`
	TradeSuccessRate  float64 `json:"trade_success_rate"`
}
