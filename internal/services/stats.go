package services

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"gorm.io/gorm"

	"github.com/collectorhq/sticker-tracker/backend/internal/models"
)

// StatsService aggregates a collector's holdings and trade history. Results
// are cached per collector; every mutation path invalidates the affected
// entries.
type StatsService struct {
	db    *gorm.DB
	cache *lru.Cache[uint, models.CollectorStatistics]
}

func NewStatsService(db *gorm.DB) (*StatsService, error) {
	cache, err := lru.New[uint, models.CollectorStatistics](256)
	if err != nil {
		return nil, err
	}
	return &StatsService{db: db, cache: cache}, nil
}

// Invalidate drops the cached statistics for a collector.
func (s *StatsService) Invalidate(collectorID uint) {
	s.cache.Remove(collectorID)
}

func (s *StatsService) CollectorStatistics(collectorID uint) (*models.CollectorStatistics, error) {
	if stats, ok := s.cache.Get(collectorID); ok {
		return &stats, nil
	}

	var collector models.Collector
	if err := s.db.First(&collector, collectorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: collector %d", ErrNotFound, collectorID)
		}
		return nil, err
	}

	var stats models.CollectorStatistics

	var totalAlbums, completedAlbums int64
	s.db.Model(&models.CollectorAlbum{}).
		Where("collector_id = ?", collectorID).Count(&totalAlbums)
	s.db.Model(&models.CollectorAlbum{}).
		Where("collector_id = ? AND completion = ?", collectorID, "100%").Count(&completedAlbums)
	stats.TotalAlbums = int(totalAlbums)
	stats.CompletedAlbums = int(completedAlbums)
	if totalAlbums > 0 {
		stats.CompletionRate = float64(completedAlbums) / float64(totalAlbums) * 100
	}

	s.db.Model(&models.CollectorSticker{}).
		Joins("JOIN collector_albums ON collector_albums.id = collector_stickers.collector_album_id").
		Where("collector_albums.collector_id = ?", collectorID).
		Select("COALESCE(SUM(collector_stickers.quantity), 0)").Scan(&stats.TotalStickers)

	// A duplicate holding contributes every copy beyond the first.
	s.db.Model(&models.CollectorSticker{}).
		Joins("JOIN collector_albums ON collector_albums.id = collector_stickers.collector_album_id").
		Where("collector_albums.collector_id = ? AND collector_stickers.is_duplicate = ?", collectorID, true).
		Select("COALESCE(SUM(collector_stickers.quantity - 1), 0)").Scan(&stats.DuplicateStickers)

	var count int64
	s.db.Model(&models.CollectorCard{}).Where("collector_id = ?", collectorID).Count(&count)
	stats.TotalCards = int(count)
	s.db.Model(&models.CollectorCard{}).
		Where("collector_id = ? AND is_duplicate = ?", collectorID, true).Count(&count)
	stats.DuplicateCards = int(count)

	s.db.Model(&models.CollectorPack{}).Where("collector_id = ?", collectorID).Count(&count)
	stats.TotalPacks = int(count)
	s.db.Model(&models.CollectorPack{}).
		Where("collector_id = ? AND is_sealed = ?", collectorID, true).Count(&count)
	stats.SealedPacks = int(count)

	s.db.Model(&models.CollectorBox{}).Where("collector_id = ?", collectorID).Count(&count)
	stats.TotalBoxes = int(count)
	s.db.Model(&models.CollectorBox{}).
		Where("collector_id = ? AND is_sealed = ?", collectorID, true).Count(&count)
	stats.SealedBoxes = int(count)

	s.db.Model(&models.CollectorMemorabilia{}).Where("collector_id = ?", collectorID).Count(&count)
	stats.TotalMemorabilia = int(count)

	s.db.Model(&models.TradeRequest{}).Where("collector_id = ?", collectorID).Count(&count)
	stats.TotalTrades = int(count)
	s.db.Model(&models.TradeRequest{}).
		Where("collector_id = ? AND status = ?", collectorID, models.TradeStatusCompleted).Count(&count)
	stats.SuccessfulTrades = int(count)
	s.db.Model(&models.TradeRequest{}).
		Where("collector_id = ? AND status = ?", collectorID, models.TradeStatusPending).Count(&count)
	stats.PendingTrades = int(count)
	s.db.Model(&models.TradeRequest{}).
		Where("collector_id = ? AND status = ?", collectorID, models.TradeStatusCancelled).Count(&count)
	stats.CancelledTrades = int(count)

	settled := stats.SuccessfulTrades + stats.CancelledTrades
	if settled > 0 {
		stats.TradeSuccessRate = float64(stats.SuccessfulTrades) / float64(settled) * 100
	}

	s.cache.Add(collectorID, stats)
	return &stats, nil
}
