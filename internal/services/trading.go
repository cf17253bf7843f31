package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/collectorhq/sticker-tracker/backend/internal/metrics"
	"github.com/collectorhq/sticker-tracker/backend/internal/models"
)

const defaultListLimit = 100

// TradeService owns the trade request state machine. Requests move along
// pending -> {accepted -> completed, rejected, cancelled}; completed,
// rejected and cancelled are terminal.
type TradeService struct {
	db       *gorm.DB
	transfer *TransferEngine
}

func NewTradeService(db *gorm.DB, transfer *TransferEngine) *TradeService {
	return &TradeService{db: db, transfer: transfer}
}

// Create persists a trade request and its items in one transaction. A bad
// item rejects the whole request; nothing is partially created.
func (s *TradeService) Create(req *models.CreateTradeRequest) (*models.TradeRequest, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: trade request needs at least one item", ErrValidation)
	}
	if req.CollectorID == req.CounterpartyCollectorID {
		return nil, fmt.Errorf("%w: cannot trade with yourself", ErrValidation)
	}

	for i := range req.Items {
		if req.Items[i].Quantity == 0 {
			req.Items[i].Quantity = 1
		}
		if req.Items[i].Quantity < 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", ErrValidation)
		}
		if !req.Items[i].ItemType.IsValid() {
			return nil, fmt.Errorf("%w: unknown item type %q", ErrValidation, req.Items[i].ItemType)
		}
	}

	var trade models.TradeRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range []uint{req.CollectorID, req.CounterpartyCollectorID} {
			var collector models.Collector
			if err := tx.First(&collector, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: collector %d", ErrNotFound, id)
				}
				return err
			}
		}

		trade = models.TradeRequest{
			CollectorID:             req.CollectorID,
			CounterpartyCollectorID: req.CounterpartyCollectorID,
			ShippingAddress:         req.ShippingAddress,
			Status:                  models.TradeStatusPending,
		}
		for _, item := range req.Items {
			trade.Items = append(trade.Items, models.TradeItem{
				ItemType:   item.ItemType,
				ItemID:     item.ItemID,
				Quantity:   item.Quantity,
				IsIncoming: item.IsIncoming,
			})
		}
		return tx.Create(&trade).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.TradeRequestsTotal.WithLabelValues(string(models.TradeStatusPending)).Inc()
	return &trade, nil
}

func (s *TradeService) Get(id uint) (*models.TradeRequest, error) {
	var trade models.TradeRequest
	err := s.db.Preload("Items").First(&trade, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trade request %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &trade, nil
}

// List returns trade requests in insertion order. Filters are conjunctive;
// zero values mean "no filter".
func (s *TradeService) List(q *models.ListTradeRequestsQuery) ([]models.TradeRequest, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := s.db.Preload("Items").Order("id")
	if q.CollectorID != 0 {
		query = query.Where("collector_id = ?", q.CollectorID)
	}
	if q.Status != "" {
		if !q.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, q.Status)
		}
		query = query.Where("status = ?", q.Status)
	}

	var trades []models.TradeRequest
	if err := query.Offset(q.Skip).Limit(limit).Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

// Accept moves a pending request to accepted and assigns a tracking number
// for the shipping leg.
func (s *TradeService) Accept(id uint) (*models.TradeRequest, error) {
	return s.transitionFromPending(id, models.TradeStatusAccepted, func(tx *gorm.DB, trade *models.TradeRequest) error {
		trade.TrackingNumber = uuid.New().String()
		return nil
	})
}

// Reject moves a pending request to rejected.
func (s *TradeService) Reject(id uint) (*models.TradeRequest, error) {
	return s.transitionFromPending(id, models.TradeStatusRejected, nil)
}

// Cancel moves a pending request to cancelled.
func (s *TradeService) Cancel(id uint) (*models.TradeRequest, error) {
	return s.transitionFromPending(id, models.TradeStatusCancelled, nil)
}

// transitionFromPending implements the scoped-lookup contract: the request
// is fetched by id AND pending status, so an already-transitioned id and a
// nonexistent id report the same not-found error.
func (s *TradeService) transitionFromPending(id uint, target models.TradeStatus, prepare func(*gorm.DB, *models.TradeRequest) error) (*models.TradeRequest, error) {
	var trade models.TradeRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Items").
			Where("id = ? AND status = ?", id, models.TradeStatusPending).
			First(&trade).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: trade request %d not found or not in pending status", ErrNotFound, id)
			}
			return err
		}

		trade.Status = target
		if prepare != nil {
			if err := prepare(tx, &trade); err != nil {
				return err
			}
		}
		return tx.Save(&trade).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.TradeRequestsTotal.WithLabelValues(string(target)).Inc()
	return &trade, nil
}

// Complete finishes an accepted trade: every item's ownership transfer and
// the status update run in one transaction, so a failing transfer leaves
// the request accepted with no rows moved.
func (s *TradeService) Complete(id uint) (*models.TradeRequest, error) {
	var trade models.TradeRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Items").
			Where("id = ? AND status = ?", id, models.TradeStatusAccepted).
			First(&trade).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: trade request %d not found or not in accepted status", ErrNotFound, id)
			}
			return err
		}

		for i := range trade.Items {
			item := &trade.Items[i]
			from, to := trade.CollectorID, trade.CounterpartyCollectorID
			if item.IsIncoming {
				from, to = to, from
			}
			if err := s.transfer.Transfer(tx, item, from, to); err != nil {
				return fmt.Errorf("trade item %d: %w", item.ID, err)
			}
		}

		trade.Status = models.TradeStatusCompleted
		return tx.Save(&trade).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.TradeRequestsTotal.WithLabelValues(string(models.TradeStatusCompleted)).Inc()
	return &trade, nil
}
