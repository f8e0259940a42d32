package services

import (
	"sync"

	"github.com/tuffahtayn/delivery-api/models"
)

// Rejections remembers which orders each courier has declined. Rejection is
// deliberately courier-scoped: it removes the order from that courier's new
// tab only and leaves the order pending for everyone else, so declining is
// never a global state transition.
type Rejections struct {
	mu   sync.RWMutex
	byID map[uint]map[uint]struct{} // courierID -> set of orderIDs
}

// NewRejections creates an empty rejection memory.
func NewRejections() *Rejections {
	return &Rejections{byID: make(map[uint]map[uint]struct{})}
}

// Reject records that the courier declined the order.
func (r *Rejections) Reject(courierID, orderID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.byID[courierID]
	if !ok {
		set = make(map[uint]struct{})
		r.byID[courierID] = set
	}
	set[orderID] = struct{}{}
}

// Rejected reports whether the courier has declined the order.
func (r *Rejections) Rejected(courierID, orderID uint) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[courierID][orderID]
	return ok
}

// Filter removes the courier's rejected orders from the slice, preserving order.
func (r *Rejections) Filter(orders []models.Order, courierID uint) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.byID[courierID]
	if len(set) == 0 {
		return orders
	}
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if _, rejected := set[o.ID]; !rejected {
			out = append(out, o)
		}
	}
	return out
}
