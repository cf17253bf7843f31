package models

import (
	"time"
)

type CoverType string

const (
	CoverHardcover CoverType = "hardcover"
	CoverSoftcover CoverType = "softcover"
	CoverSpiral    CoverType = "spiral"
	CoverDigital   CoverType = "digital"
)

type Album struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CompetitionID uint      `json:"competition_id" gorm:"not null;index"`
	Title         string    `json:"title" gorm:"not null"`
	Edition       string    `json:"edition" gorm:"not null"`
	CoverType     CoverType `json:"cover_type" gorm:"not null"`
	Language      string    `json:"language" gorm:"not null"`
	Publisher     string    `json:"publisher" gorm:"not null"`
	TotalStickers int       `json:"total_stickers" gorm:"not null"`
	ReleaseYear   int       `json:"release_year" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

type AlbumSection struct {
	ID           uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	AlbumID      uint   `json:"album_id" gorm:"not null;index"`
	Name         string `json:"name" gorm:"not null"`
	Order        int    `json:"order" gorm:"column:section_order;not null"`
	Type         string `json:"type" gorm:"not null"` // teams, stadiums, special_events, etc.
	StickerCount int    `json:"sticker_count" gorm:"not null"`
}

// CollectorAlbum is one collector's ownership record for one album.
// TotalStickersOwned is a running counter maintained by every sticker
// mutation; it is never recomputed from the sticker rows.
type CollectorAlbum struct {
	ID                 uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	CollectorID        uint   `json:"collector_id" gorm:"not null;uniqueIndex:idx_collector_album"`
	AlbumID            uint   `json:"album_id" gorm:"not null;uniqueIndex:idx_collector_album"`
	Completion         string `json:"completion" gorm:"not null;default:'0%'"`
	TotalStickersOwned int    `json:"total_stickers_owned" gorm:"not null;default:0"`
}

type CreateAlbumRequest struct {
	CompetitionID uint      `json:"competition_id" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	Edition       string    `json:"edition" binding:"required"`
	CoverType     CoverType `json:"cover_type" binding:"required"`
	Language      string    `json:"language" binding:"required"`
	Publisher     string    `json:"publisher" binding:"required"`
	TotalStickers int       `json:"total_stickers" binding:"required"`
	ReleaseYear   int       `json:"release_year" binding:"required"`
}

type UpdateAlbumRequest struct {
	Title         *string    `json:"title"`
	Edition       *string    `json:"edition"`
	CoverType     *CoverType `json:"cover_type"`
	Language      *string    `json:"language"`
	Publisher     *string    `json:"publisher"`
	TotalStickers *int       `json:"total_stickers"`
	ReleaseYear   *int       `json:"release_year"`
}

type CreateAlbumSectionRequest struct {
	Name         string `json:"name" binding:"required"`
	Order        int    `json:"order"`
	Type         string `json:"type" binding:"required"`
	StickerCount int    `json:"sticker_count"`
}

type AddCollectorAlbumRequest struct {
	AlbumID            uint   `json:"album_id" binding:"required"`
	Completion         string `json:"completion"`
	TotalStickersOwned int    `json:"total_stickers_owned"`
}
