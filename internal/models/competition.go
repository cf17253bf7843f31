package models

import (
	"time"
)

type CompetitionType string

const (
	CompetitionWorldCup        CompetitionType = "world_cup"
	CompetitionEuro            CompetitionType = "euro"
	CompetitionCopaAmerica     CompetitionType = "copa_america"
	CompetitionChampionsLeague CompetitionType = "champions_league"
	CompetitionPremierLeague   CompetitionType = "premier_league"
	CompetitionLaLiga          CompetitionType = "la_liga"
	CompetitionBundesliga      CompetitionType = "bundesliga"
	CompetitionSerieA          CompetitionType = "serie_a"
)

type Competition struct {
	ID          uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"not null"`
	Year        int             `json:"year" gorm:"not null"`
	Type        CompetitionType `json:"type" gorm:"not null"`
	HostCountry string          `json:"host_country" gorm:"not null"`
	Winner      string          `json:"winner"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreateCompetitionRequest struct {
	Name        string          `json:"name" binding:"required"`
	Year        int             `json:"year" binding:"required"`
	Type        CompetitionType `json:"type" binding:"required"`
	HostCountry string          `json:"host_country" binding:"required"`
	Winner      string          `json:"winner"`
}

type UpdateCompetitionRequest struct {
	Name        *string          `json:"name"`
	Year        *int             `json:"year"`
	Type        *CompetitionType `json:"type"`
	HostCountry *string          `json:"host_country"`
	Winner      *string          `json:"winner"`
}

// CompetitionStats summarizes collection activity across one competition's albums.
type CompetitionStats struct {
	CompetitionID  uint    `json:"competition_id"`
	TotalAlbums    int     `json:"total_albums"`
	TotalStickers  int     `json:"total_stickers"`
	TotalCards     int     `json:"total_cards"`
	TotalCollectors int    `json:"total_collectors"`
	CompletionRate float64 `json:"completion_rate"`
}
