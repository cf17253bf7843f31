package models

type Box struct {
	ID              uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	AlbumID         uint   `json:"album_id" gorm:"not null;index"`
	Publisher       string `json:"publisher" gorm:"not null"`
	Edition         string `json:"edition" gorm:"not null"`
	PackCount       int    `json:"pack_count" gorm:"not null"`
	SpecialFeatures string `json:"special_features"`
}

type CollectorBox struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CollectorID uint      `json:"collector_id" gorm:"not null;index"`
	BoxID       uint      `json:"box_id" gorm:"not null;index"`
	Quantity    int       `json:"quantity" gorm:"not null;default:1"`
	Condition   Condition `json:"condition" gorm:"not null"`
	IsSealed    bool      `json:"is_sealed" gorm:"not null;default:true"`
}

type CreateBoxRequest struct {
	AlbumID         uint   `json:"album_id" binding:"required"`
	Publisher       string `json:"publisher" binding:"required"`
	Edition         string `json:"edition" binding:"required"`
	PackCount       int    `json:"pack_count" binding:"required"`
	SpecialFeatures string `json:"special_features"`
}

type AddCollectorBoxRequest struct {
	CollectorID uint      `json:"collector_id" binding:"required"`
	BoxID       uint      `json:"box_id" binding:"required"`
	Quantity    int       `json:"quantity"`
	Condition   Condition `json:"condition"`
	IsSealed    *bool     `json:"is_sealed"`
}

type UpdateCollectorBoxRequest struct {
	Quantity  *int       `json:"quantity"`
	Condition *Condition `json:"condition"`
	IsSealed  *bool      `json:"is_sealed"`
}
