package client

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
)

// DefaultAlertTimeout matches the display duration used across the
// app's call sites.
const DefaultAlertTimeout = 1000 * time.Millisecond

// Alert is an ephemeral user-facing notice. It lives in the notifier's
// active set until its timer fires or it is dismissed.
type Alert struct {
	ID        string    `json:"id"`
	Msg       string    `json:"msg"`
	Severity  Severity  `json:"alertType"`
	CreatedAt time.Time `json:"createdAt"`
}

// AlertNotifier owns the active alert set. Each alert gets an expiry
// timer at creation; dismissal cancels the timer, and the expiry
// callback re-checks membership under the lock so a dismissed or
// replaced alert is never removed twice.
type AlertNotifier struct {
	mu      sync.Mutex
	alerts  []Alert
	timers  map[string]*time.Timer
	timeout time.Duration
}

// NewAlertNotifier builds a notifier with the given default display
// duration; zero means DefaultAlertTimeout.
func NewAlertNotifier(timeout time.Duration) *AlertNotifier {
	if timeout <= 0 {
		timeout = DefaultAlertTimeout
	}
	return &AlertNotifier{
		timers:  make(map[string]*time.Timer),
		timeout: timeout,
	}
}

// Push inserts an alert with the notifier's default duration and
// returns its id.
func (n *AlertNotifier) Push(msg string, severity Severity) string {
	return n.PushWithTimeout(msg, severity, n.timeout)
}

// PushWithTimeout inserts an alert that expires after d.
func (n *AlertNotifier) PushWithTimeout(msg string, severity Severity, d time.Duration) string {
	if d <= 0 {
		d = n.timeout
	}
	id := uuid.New().String()

	n.mu.Lock()
	n.alerts = append(n.alerts, Alert{
		ID:        id,
		Msg:       msg,
		Severity:  severity,
		CreatedAt: time.Now(),
	})
	n.timers[id] = time.AfterFunc(d, func() { n.expire(id) })
	n.mu.Unlock()

	return id
}

func (n *AlertNotifier) expire(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// the alert may have been dismissed between timer fire and lock
	if _, pending := n.timers[id]; !pending {
		return
	}
	delete(n.timers, id)
	n.removeLocked(id)
}

// Dismiss removes the alert early and cancels its pending timer.
// Unknown ids are a no-op, so racing an expiry is harmless.
func (n *AlertNotifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	timer, pending := n.timers[id]
	if !pending {
		return
	}
	timer.Stop()
	delete(n.timers, id)
	n.removeLocked(id)
}

// Active returns the visible alerts in insertion order.
func (n *AlertNotifier) Active() []Alert {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Alert, len(n.alerts))
	copy(out, n.alerts)
	return out
}

// Stop cancels every pending timer and clears the active set.
func (n *AlertNotifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, timer := range n.timers {
		timer.Stop()
		delete(n.timers, id)
	}
	n.alerts = nil
}

func (n *AlertNotifier) removeLocked(id string) {
	for i, a := range n.alerts {
		if a.ID == id {
			n.alerts = append(n.alerts[:i], n.alerts[i+1:]...)
			return
		}
	}
}
