package models

type Pack struct {
	ID              uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	AlbumID         uint   `json:"album_id" gorm:"not null;index"`
	Publisher       string `json:"publisher" gorm:"not null"`
	ContainerType   string `json:"container_type" gorm:"not null"` // paper, tin, plastic, ...
	Edition         string `json:"edition" gorm:"not null"`
	Language        string `json:"language" gorm:"not null"`
	StickerCount    int    `json:"sticker_count" gorm:"not null"`
	SpecialFeatures string `json:"special_features"`
}

type CollectorPack struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CollectorID uint      `json:"collector_id" gorm:"not null;index"`
	PackID      uint      `json:"pack_id" gorm:"not null;index"`
	Quantity    int       `json:"quantity" gorm:"not null;default:1"`
	Condition   Condition `json:"condition"`
	IsSealed    bool      `json:"is_sealed" gorm:"not null;default:true"`
}

type CreatePackRequest struct {
	AlbumID         uint   `json:"album_id" binding:"required"`
	Publisher       string `json:"publisher" binding:"required"`
	ContainerType   string `json:"container_type" binding:"required"`
	Edition         string `json:"edition" binding:"required"`
	Language        string `json:"language" binding:"required"`
	StickerCount    int    `json:"sticker_count" binding:"required"`
	SpecialFeatures string `json:"special_features"`
}

type AddCollectorPackRequest struct {
	CollectorID uint      `json:"collector_id" binding:"required"`
	PackID      uint      `json:"pack_id" binding:"required"`
	Quantity    int       `json:"quantity"`
	Condition   Condition `json:"condition"`
	IsSealed    *bool     `json:"is_sealed"`
}

type UpdateCollectorPackRequest struct {
	Quantity  *int       `json:"quantity"`
	Condition *Condition `json:"condition"`
	IsSealed  *bool      `json:"is_sealed"`
}
