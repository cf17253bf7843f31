package database

import (
	"log"

	"github.com/collectorhq/sticker-tracker/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Initialize(dbPath string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	log.Println("Database connected successfully")

	// Auto-migrate the schema
	err = Migrate(DB)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}

// Migrate creates or updates the schema for every entity. Also used by
// tests against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Competition{},
		&models.Album{},
		&models.AlbumSection{},
		&models.Sticker{},
		&models.Card{},
		&models.Pack{},
		&models.Box{},
		&models.Memorabilia{},
		&models.Collector{},
		&models.CollectorAlbum{},
		&models.CollectorSticker{},
		&models.CollectorCard{},
		&models.CollectorPack{},
		&models.CollectorBox{},
		&models.CollectorMemorabilia{},
		&models.TradeRequest{},
		&models.TradeItem{},
		&models.CompanyInventory{},
		&models.InventoryMovement{},
	); err != nil {
		return err
	}
	return RunMigrations(db)
}

func GetDB() *gorm.DB {
	return DB
}
