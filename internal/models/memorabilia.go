package models

import (
	"gorm.io/datatypes"
)

type Memorabilia struct {
	ID                 uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	AlbumID            uint           `json:"album_id" gorm:"not null;index"`
	Name               string         `json:"name" gorm:"not null"`
	Type               string         `json:"type" gorm:"not null"` // jersey, ball, scarf, ...
	Description        string         `json:"description"`
	CompetitionYear    int            `json:"competition_year" gorm:"not null"`
	AuthenticationCode string         `json:"authentication_code"`
	Condition          Condition      `json:"condition" gorm:"not null"`
	RarityLevel        int            `json:"rarity_level" gorm:"not null"`
	IsAuthenticated    bool           `json:"is_authenticated" gorm:"not null;default:false"`
	MetaInfo           datatypes.JSON `json:"meta_info"`
}

// CollectorMemorabilia tracks a single physical memorabilia item owned by a
// collector. Unlike stickers and cards there is no quantity; each row is one item.
type CollectorMemorabilia struct {
	ID              uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	CollectorID     uint           `json:"collector_id" gorm:"not null;index"`
	MemorabiliaID   uint           `json:"memorabilia_id" gorm:"not null;index"`
	Condition       Condition      `json:"condition" gorm:"not null"`
	IsDisplayed     bool           `json:"is_displayed" gorm:"not null;default:false"`
	AcquisitionDate string         `json:"acquisition_date"`
	AcquisitionPrice int           `json:"acquisition_price"` // cents
	Notes           string         `json:"notes"`
	MetaInfo        datatypes.JSON `json:"meta_info"`
}

type CreateMemorabiliaRequest struct {
	AlbumID            uint           `json:"album_id" binding:"required"`
	Name               string         `json:"name" binding:"required"`
	Type               string         `json:"type" binding:"required"`
	Description        string         `json:"description"`
	CompetitionYear    int            `json:"competition_year" binding:"required"`
	AuthenticationCode string         `json:"authentication_code"`
	Condition          Condition      `json:"condition" binding:"required"`
	RarityLevel        int            `json:"rarity_level" binding:"required"`
	IsAuthenticated    bool           `json:"is_authenticated"`
	MetaInfo           datatypes.JSON `json:"meta_info"`
}

type AddCollectorMemorabiliaRequest struct {
	CollectorID      uint           `json:"collector_id" binding:"required"`
	MemorabiliaID    uint           `json:"memorabilia_id" binding:"required"`
	Condition        Condition      `json:"condition" binding:"required"`
	IsDisplayed      bool           `json:"is_displayed"`
	AcquisitionDate  string         `json:"acquisition_date"`
	AcquisitionPrice int            `json:"acquisition_price"`
	Notes            string         `json:"notes"`
	MetaInfo         datatypes.JSON `json:"meta_info"`
}

type UpdateCollectorMemorabiliaRequest struct {
	Condition       *Condition `json:"condition"`
	IsDisplayed     *bool      `json:"is_displayed"`
	AcquisitionDate *string    `json:"acquisition_date"`
	Notes           *string    `json:"notes"`
}
