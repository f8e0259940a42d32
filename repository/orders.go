package repository

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tuffahtayn/delivery-api/models"
)

// OrderDraft carries the fields a store supplies when placing an order.
// Status and courier assignment are owned by the repository, never the caller.
type OrderDraft struct {
	CustomerName string
	Address      string
	Notes        string
	Value        decimal.Decimal
	Fee          decimal.Decimal
	StoreID      uint
}

// Orders is the canonical order record store for the session. It is handed to
// each controller explicitly; there is no package-level instance.
//
// All listings are most-recent-first: that ordering is a display contract for
// the dashboards, not an accident of storage.
type Orders struct {
	db *gorm.DB
}

// NewOrders creates the order record store on top of db.
func NewOrders(db *gorm.DB) *Orders {
	return &Orders{db: db}
}

// Create admits a new order. Every created order starts as pending with no
// courier assigned, regardless of what the draft's origin claims.
func (r *Orders) Create(draft OrderDraft) (models.Order, error) {
	order := models.Order{
		CustomerName: draft.CustomerName,
		Address:      draft.Address,
		Notes:        draft.Notes,
		Value:        draft.Value,
		Fee:          draft.Fee,
		Status:       models.StatusPending,
		StoreID:      draft.StoreID,
		CourierID:    nil,
	}
	if err := r.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Get returns a single order by id.
func (r *Orders) Get(id uint) (models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}
	return order, nil
}

// List returns every order in the session, most recent first.
func (r *Orders) List() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByStore returns the orders owned by one store, most recent first.
func (r *Orders) ListByStore(storeID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("store_id = ?", storeID).Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Accept moves a pending order into delivery and assigns the courier. The
// update is a single conditional write, so when two couriers race for the
// same order exactly one of them wins; the loser gets ErrOrderTaken.
func (r *Orders) Accept(id, courierID uint) (models.Order, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":     models.StatusInDelivery,
			"courier_id": courierID,
		})
	if res.Error != nil {
		return models.Order{}, res.Error
	}
	if res.RowsAffected == 0 {
		order, err := r.Get(id)
		if err != nil {
			return models.Order{}, err
		}
		if order.Status == models.StatusInDelivery && order.CourierID != nil && *order.CourierID != courierID {
			return models.Order{}, ErrOrderTaken
		}
		return models.Order{}, ErrInvalidStatus
	}
	return r.Get(id)
}

// Complete marks an in-delivery order as delivered. Only the courier that
// accepted the order may complete it; the assignment never changes.
func (r *Orders) Complete(id, courierID uint) (models.Order, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ? AND courier_id = ?", id, models.StatusInDelivery, courierID).
		Update("status", models.StatusDelivered)
	if res.Error != nil {
		return models.Order{}, res.Error
	}
	if res.RowsAffected == 0 {
		order, err := r.Get(id)
		if err != nil {
			return models.Order{}, err
		}
		if order.Status != models.StatusInDelivery {
			return models.Order{}, ErrInvalidStatus
		}
		return models.Order{}, ErrNotAssignee
	}
	return r.Get(id)
}
