package models

type Sticker struct {
	ID             uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	AlbumID        uint   `json:"album_id" gorm:"not null;index"`
	Name           string `json:"name" gorm:"not null"`
	Number         string `json:"number" gorm:"not null"`
	Edition        string `json:"edition" gorm:"not null"`
	RarityLevel    int    `json:"rarity_level" gorm:"not null;check:rarity_level BETWEEN 1 AND 5"`
	Language       string `json:"language"`
	PrintVariation string `json:"print_variation"` // normal, misprint, special_foil, ...
}

// CollectorSticker is a collector's holding of one sticker inside one of
// their albums. Rows are created on add or trade-in, decremented on
// trade-out, and deleted when the quantity reaches zero.
type CollectorSticker struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CollectorAlbumID uint      `json:"collector_album_id" gorm:"not null;index"`
	StickerID        uint      `json:"sticker_id" gorm:"not null;index"`
	Quantity         int       `json:"quantity" gorm:"not null;default:1"`
	Condition        Condition `json:"condition" gorm:"not null"`
	IsDuplicate      bool      `json:"is_duplicate" gorm:"not null;default:false"`
}

type CreateStickerRequest struct {
	AlbumID        uint   `json:"album_id" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Number         string `json:"number" binding:"required"`
	Edition        string `json:"edition" binding:"required"`
	RarityLevel    int    `json:"rarity_level" binding:"required"`
	Language       string `json:"language"`
	PrintVariation string `json:"print_variation"`
}

type AddCollectorStickerRequest struct {
	CollectorAlbumID uint      `json:"collector_album_id" binding:"required"`
	StickerID        uint      `json:"sticker_id" binding:"required"`
	Quantity         int       `json:"quantity"`
	Condition        Condition `json:"condition" binding:"required"`
	IsDuplicate      bool      `json:"is_duplicate"`
}

type UpdateCollectorStickerRequest struct {
	Quantity    *int       `json:"quantity"`
	Condition   *Condition `json:"condition"`
	IsDuplicate *bool      `json:"is_duplicate"`
}
