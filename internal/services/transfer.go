package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/collectorhq/sticker-tracker/backend/internal/metrics"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
)

// TransferEngine moves ownership of a traded item from the initiating
// collector to the counterparty. All methods operate on the transaction
// handle passed by the caller, so a multi-item trade either applies every
// transfer or none of them.
type TransferEngine struct{}

func NewTransferEngine() *TransferEngine {
	return &TransferEngine{}
}

// Transfer dispatches on the item type. Every branch follows the same
// pattern: locate the source holding, move the traded quantity to the
// counterparty, keep any derived counters in step.
func (e *TransferEngine) Transfer(tx *gorm.DB, item *models.TradeItem, fromCollectorID, toCollectorID uint) error {
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: transfer quantity must be positive", ErrValidation)
	}

	var err error
	switch item.ItemType {
	case models.ItemTypeSticker:
		err = e.transferSticker(tx, item, fromCollectorID, toCollectorID)
	case models.ItemTypeCard:
		err = e.transferCard(tx, item, fromCollectorID, toCollectorID)
	case models.ItemTypePack:
		err = e.transferPack(tx, item, fromCollectorID, toCollectorID)
	case models.ItemTypeBox:
		err = e.transferBox(tx, item, fromCollectorID, toCollectorID)
	case models.ItemTypeMemorabilia:
		err = e.transferMemorabilia(tx, item, fromCollectorID, toCollectorID)
	default:
		err = fmt.Errorf("%w: unknown item type %q", ErrValidation, item.ItemType)
	}

	if err == nil {
		metrics.OwnershipTransfersTotal.WithLabelValues(string(item.ItemType)).Inc()
	}
	return err
}

// transferSticker moves sticker ownership between two collectors' album
// holdings. The sticker's album determines which CollectorAlbum rows are
// involved; the destination album record is created on first trade-in.
func (e *TransferEngine) transferSticker(tx *gorm.DB, item *models.TradeItem, from, to uint) error {
	var sticker models.Sticker
	if err := tx.First(&sticker, item.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: sticker %d", ErrNotFound, item.ItemID)
		}
		return err
	}

	var srcAlbum models.CollectorAlbum
	err := tx.Where("collector_id = ? AND album_id = ?", from, sticker.AlbumID).
		First(&srcAlbum).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: collector %d has no album %d", ErrNotFound, from, sticker.AlbumID)
		}
		return err
	}

	var src models.CollectorSticker
	err = tx.Where("collector_album_id = ? AND sticker_id = ?", srcAlbum.ID, sticker.ID).
		First(&src).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: collector %d does not hold sticker %d", ErrNotFound, from, sticker.ID)
		}
		return err
	}

	if err := e.drainQuantity(tx, &models.CollectorSticker{}, src.ID, item.Quantity); err != nil {
		return fmt.Errorf("sticker %d: %w", sticker.ID, err)
	}

	dstAlbum := models.CollectorAlbum{
		CollectorID: to,
		AlbumID:     sticker.AlbumID,
	}
	err = tx.Where("collector_id = ? AND album_id = ?", to, sticker.AlbumID).
		Attrs(models.CollectorAlbum{Completion: "0%", TotalStickersOwned: 0}).
		FirstOrCreate(&dstAlbum).Error
	if err != nil {
		return err
	}

	dst := models.CollectorSticker{
		CollectorAlbumID: dstAlbum.ID,
		StickerID:        sticker.ID,
		Quantity:         item.Quantity,
		Condition:        src.Condition,
		IsDuplicate:      false,
	}
	if err := tx.Create(&dst).Error; err != nil {
		return err
	}

	err = tx.Model(&models.CollectorAlbum{}).Where("id = ?", srcAlbum.ID).
		Update("total_stickers_owned", gorm.Expr("total_stickers_owned - ?", item.Quantity)).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.CollectorAlbum{}).Where("id = ?", dstAlbum.ID).
		Update("total_stickers_owned", gorm.Expr("total_stickers_owned + ?", item.Quantity)).Error
}

func (e *TransferEngine) transferCard(tx *gorm.DB, item *models.TradeItem, from, to uint) error {
	var src models.CollectorCard
	err := tx.Where("collector_id = ? AND card_id = ?", from, item.ItemID).First(&src).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: collector %d does not hold card %d", ErrNotFound, from, item.ItemID)
		}
		return err
	}

	if err := e.drainQuantity(tx, &models.CollectorCard{}, src.ID, item.Quantity); err != nil {
		return fmt.Errorf("card %d: %w", item.ItemID, err)
	}

	dst := models.CollectorCard{
		CollectorID: to,
		CardID:      src.CardID,
		Quantity:    item.Quantity,
		Condition:   src.Condition,
		IsDuplicate: false,
	}
	return tx.Create(&dst).Error
}

func (e *TransferEngine) transferPack(tx *gorm.DB, item *models.TradeItem, from, to uint) error {
	var src models.CollectorPack
	err := tx.Where("collector_id = ? AND pack_id = ?", from, item.ItemID).First(&src).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: collector %d does not hold pack %d", ErrNotFound, from, item.ItemID)
		}
		return err
	}

	if err := e.drainQuantity(tx, &models.CollectorPack{}, src.ID, item.Quantity); err != nil {
		return fmt.Errorf("pack %d: %w", item.ItemID, err)
	}

	dst := models.CollectorPack{
		CollectorID: to,
		PackID:      src.PackID,
		Quantity:    item.Quantity,
		Condition:   src.Condition,
		IsSealed:    src.IsSealed,
	}
	return tx.Create(&dst).Error
}

func (e *TransferEngine) transferBox(tx *gorm.DB, item *models.TradeItem, from, to uint) error {
	var src models.CollectorBox
	err := tx.Where("collector_id = ? AND box_id = ?", from, item.ItemID).First(&src).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: collector %d does not hold box %d", ErrNotFound, from, item.ItemID)
		}
		return err
	}

	if err := e.drainQuantity(tx, &models.CollectorBox{}, src.ID, item.Quantity); err != nil {
		return fmt.Errorf("box %d: %w", item.ItemID, err)
	}

	dst := models.CollectorBox{
		CollectorID: to,
		BoxID:       src.BoxID,
		Quantity:    item.Quantity,
		Condition:   src.Condition,
		IsSealed:    src.IsSealed,
	}
	return tx.Create(&dst).Error
}

// transferMemorabilia reassigns the single owned row. Memorabilia items are
// individual physical objects, so the traded quantity must be exactly 1.
func (e *TransferEngine) transferMemorabilia(tx *gorm.DB, item *models.TradeItem, from, to uint) error {
	if item.Quantity != 1 {
		return fmt.Errorf("%w: memorabilia trades move exactly one item", ErrValidation)
	}

	var src models.CollectorMemorabilia
	err := tx.Where("collector_id = ? AND memorabilia_id = ?", from, item.ItemID).First(&src).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: collector %d does not hold memorabilia %d", ErrNotFound, from, item.ItemID)
		}
		return err
	}

	return tx.Model(&models.CollectorMemorabilia{}).Where("id = ?", src.ID).
		Updates(map[string]interface{}{
			"collector_id": to,
			"is_displayed": false,
		}).Error
}

// drainQuantity applies the guarded decrement-then-delete used by every
// quantity-carrying holding: refuse if the stock is short (a concurrent
// trade already drained what this trade was agreed against), drop the row
// once it hits zero.
func (e *TransferEngine) drainQuantity(tx *gorm.DB, model interface{}, id uint, quantity int) error {
	result := tx.Model(model).
		Where("id = ? AND quantity >= ?", id, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: stock changed under trade", ErrConflict)
	}
	return tx.Where("id = ? AND quantity <= 0", id).Delete(model).Error
}
