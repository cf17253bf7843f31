package models

type Card struct {
	ID            uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	CompetitionID uint   `json:"competition_id" gorm:"not null;index"`
	Number        string `json:"number" gorm:"not null"`
	PlayerName    string `json:"player_name" gorm:"not null"`
	Team          string `json:"team" gorm:"not null"`
	Edition       string `json:"edition" gorm:"not null"`
	RarityLevel   int    `json:"rarity_level" gorm:"not null;check:rarity_level BETWEEN 1 AND 5"`
	Language      string `json:"language" gorm:"not null"`
}

type CollectorCard struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CollectorID uint      `json:"collector_id" gorm:"not null;index"`
	CardID      uint      `json:"card_id" gorm:"not null;index"`
	Quantity    int       `json:"quantity" gorm:"not null;default:1"`
	Condition   Condition `json:"condition" gorm:"not null"`
	IsDuplicate bool      `json:"is_duplicate" gorm:"not null;default:false"`
}

type CreateCardRequest struct {
	CompetitionID uint   `json:"competition_id" binding:"required"`
	Number        string `json:"number" binding:"required"`
	PlayerName    string `json:"player_name" binding:"required"`
	Team          string `json:"team" binding:"required"`
	Edition       string `json:"edition" binding:"required"`
	RarityLevel   int    `json:"rarity_level" binding:"required"`
	Language      string `json:"language" binding:"required"`
}

type AddCollectorCardRequest struct {
	CollectorID uint      `json:"collector_id" binding:"required"`
	CardID      uint      `json:"card_id" binding:"required"`
	Quantity    int       `json:"quantity"`
	Condition   Condition `json:"condition" binding:"required"`
	IsDuplicate bool      `json:"is_duplicate"`
}

type UpdateCollectorCardRequest struct {
	Quantity    *int       `json:"quantity"`
	Condition   *Condition `json:"condition"`
	IsDuplicate *bool      `json:"is_duplicate"`
}
