package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tuffahtayn/delivery-api/repository"
)

// OrderSource is a feed of incoming order drafts. Dashboards never talk to a
// source directly; main consumes it and appends through the record store, so
// the simulated source below can be swapped for a real feed without touching
// anything else.
type OrderSource interface {
	// Orders yields incoming drafts. The channel is closed when the source
	// is exhausted or its context is canceled.
	Orders() <-chan repository.OrderDraft
}

// SimulatedSource emits a single demo order after a fixed delay, imitating a
// customer placing an order mid-session. Canceling the context before the
// delay elapses suppresses the emission; the channel closes either way.
type SimulatedSource struct {
	ch chan repository.OrderDraft
}

// NewSimulatedSource starts the simulation clock immediately.
func NewSimulatedSource(ctx context.Context, delay time.Duration) *SimulatedSource {
	s := &SimulatedSource{ch: make(chan repository.OrderDraft, 1)}
	go s.run(ctx, delay)
	return s
}

func (s *SimulatedSource) run(ctx context.Context, delay time.Duration) {
	defer close(s.ch)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	draft := repository.OrderDraft{
		CustomerName: "عميل جديد",
		Address:      "عنوان افتراضي",
		Notes:        "طلب تمت إضافته للتو",
		Value:        decimal.NewFromInt(120),
		Fee:          decimal.NewFromInt(20),
		StoreID:      2,
	}

	select {
	case <-ctx.Done():
	case s.ch <- draft:
	}
}

// Orders implements OrderSource.
func (s *SimulatedSource) Orders() <-chan repository.OrderDraft {
	return s.ch
}
