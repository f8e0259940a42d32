package services

import (
	"sync"
	"time"
)

// NewOrderMessage is the toast text shown when the new-orders tab grows.
const NewOrderMessage = "🔔 طلب جديد في انتظارك!"

// Notification is a transient signal raised for one courier.
type Notification struct {
	Message   string    `json:"message"`
	RaisedAt  time.Time `json:"raised_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Notifier watches the size of each courier's visible new-orders subset and
// raises a one-shot notification whenever it grows between observations.
//
// The first observation for a courier only primes the watcher; it never
// fires, so a dashboard's initial render stays quiet. Each raised
// notification auto-clears after the configured TTL unless dismissed
// earlier, independent of any further order-store activity.
type Notifier struct {
	mu       sync.Mutex
	ttl      time.Duration
	watchers map[uint]*watcher
}

type watcher struct {
	primed bool
	prev   int
	active *Notification
	timer  *time.Timer
}

// NewNotifier creates a Notifier whose notifications live for ttl.
func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl, watchers: make(map[uint]*watcher)}
}

// Observe records the current size of the courier's new-orders subset and
// returns the notification raised by this observation, or nil. The
// remembered count is updated whether or not the subset grew.
func (n *Notifier) Observe(courierID uint, count int) *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	w, ok := n.watchers[courierID]
	if !ok {
		w = &watcher{}
		n.watchers[courierID] = w
	}

	var raised *Notification
	if w.primed && count > w.prev {
		raised = n.raiseLocked(courierID, w)
	}
	w.primed = true
	w.prev = count
	return raised
}

// raiseLocked installs a fresh notification and re-arms the dismiss timer.
// Caller must hold n.mu.
func (n *Notifier) raiseLocked(courierID uint, w *watcher) *Notification {
	now := time.Now()
	note := &Notification{
		Message:   NewOrderMessage,
		RaisedAt:  now,
		ExpiresAt: now.Add(n.ttl),
	}
	w.active = note
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if w.active == note {
			w.active = nil
		}
	})
	return note
}

// Active returns the courier's currently visible notification, if any.
func (n *Notifier) Active(courierID uint) *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if w, ok := n.watchers[courierID]; ok {
		return w.active
	}
	return nil
}

// Dismiss clears the courier's notification ahead of its TTL.
func (n *Notifier) Dismiss(courierID uint) {
	n.mu.Lock()
	defer n.mu.Unlock()
	w, ok := n.watchers[courierID]
	if !ok {
		return
	}
	w.active = nil
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

// Close stops every pending dismiss timer.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, w := range n.watchers {
		if w.timer != nil {
			w.timer.Stop()
			w.timer = nil
		}
		w.active = nil
	}
}
