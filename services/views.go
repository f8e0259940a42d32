package services

import (
	"github.com/shopspring/decimal"

	"github.com/tuffahtayn/delivery-api/models"
)

// Role-scoped view selectors. Every function here is a pure projection over
// an order snapshot: no caching, no mutation, recomputed on each read so a
// view can never go stale relative to the record store. Input ordering is
// preserved throughout.

// StorePartition splits a store's orders into the two dashboard tabs.
// Every order lands in exactly one of the two slices.
type StorePartition struct {
	Current []models.Order // pending or in-delivery
	Past    []models.Order // delivered or canceled
}

// PartitionForStore selects the orders owned by storeID and partitions them.
func PartitionForStore(orders []models.Order, storeID uint) StorePartition {
	p := StorePartition{Current: []models.Order{}, Past: []models.Order{}}
	for _, o := range orders {
		if o.StoreID != storeID {
			continue
		}
		switch o.Status {
		case models.StatusPending, models.StatusInDelivery:
			p.Current = append(p.Current, o)
		default:
			p.Past = append(p.Past, o)
		}
	}
	return p
}

// NewOrders returns the unclaimed orders visible to couriers: every pending
// order system-wide. Couriers are not scoped to a store; any courier may
// accept any pending order, first accept wins.
func NewOrders(orders []models.Order) []models.Order {
	out := []models.Order{}
	for _, o := range orders {
		if o.Status == models.StatusPending {
			out = append(out, o)
		}
	}
	return out
}

// ActiveForCourier returns the orders the courier is currently delivering.
func ActiveForCourier(orders []models.Order, courierID uint) []models.Order {
	out := []models.Order{}
	for _, o := range orders {
		if o.Status == models.StatusInDelivery && o.CourierID != nil && *o.CourierID == courierID {
			out = append(out, o)
		}
	}
	return out
}

// Earnings sums the delivery fees of the courier's delivered orders.
func Earnings(orders []models.Order, courierID uint) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.Status == models.StatusDelivered && o.CourierID != nil && *o.CourierID == courierID {
			total = total.Add(o.Fee)
		}
	}
	return total
}

// Summary is the supervisor's reporting projection over the full collection.
type Summary struct {
	TotalOrders    int `json:"total_orders"`
	InDelivery     int `json:"in_delivery"`
	ActiveCouriers int `json:"active_couriers"`
	Stores         int `json:"stores"`
}

// BuildSummary computes the supervisor dashboard counts.
func BuildSummary(orders []models.Order, stores []models.Store, couriers []models.Courier) Summary {
	s := Summary{TotalOrders: len(orders), Stores: len(stores)}
	for _, o := range orders {
		if o.Status == models.StatusInDelivery {
			s.InDelivery++
		}
	}
	for _, c := range couriers {
		if c.Active {
			s.ActiveCouriers++
		}
	}
	return s
}
