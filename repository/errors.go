package repository

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrStoreNotFound   = errors.New("store not found")
	ErrCourierNotFound = errors.New("courier not found")

	// ErrOrderTaken means another courier accepted the order first.
	ErrOrderTaken = errors.New("order already accepted by another courier")
	// ErrNotAssignee means the order is in delivery with a different courier.
	ErrNotAssignee = errors.New("order is assigned to another courier")
	// ErrInvalidStatus means the order's current status does not allow the transition.
	ErrInvalidStatus = errors.New("order status does not allow this transition")
)
