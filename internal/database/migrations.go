package database

import (
	"log"

	"gorm.io/gorm"
)

// RunMigrations runs data migrations that AutoMigrate cannot express.
// Each step is safe to run repeatedly.
func RunMigrations(db *gorm.DB) error {
	if err := migrateStatusCasing(db); err != nil {
		return err
	}
	return migrateMissingConditions(db)
}

// migrateStatusCasing normalizes trade statuses written by the pre-Go
// importer, which stored them uppercase.
func migrateStatusCasing(db *gorm.DB) error {
	if !db.Migrator().HasTable("trade_requests") {
		return nil
	}

	result := db.Exec(`UPDATE trade_requests SET status = LOWER(status) WHERE status != LOWER(status)`)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Normalized casing on %d trade_requests rows", result.RowsAffected)
	}
	return nil
}

// migrateMissingConditions backfills collector sticker rows imported without
// a condition value.
func migrateMissingConditions(db *gorm.DB) error {
	if !db.Migrator().HasTable("collector_stickers") {
		return nil
	}

	result := db.Exec(`UPDATE collector_stickers SET condition = 'good' WHERE condition IS NULL OR condition = ''`)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Backfilled condition on %d collector_stickers rows", result.RowsAffected)
	}
	return nil
}
