// Package notifier surfaces important messages through the logger.
package notifier

import (
	"slices"
	"sync"

	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
)

// DefaultHistorySize is the number of notifications kept by New.
const DefaultHistorySize = 64

var _ ports.Notifier = (*Notifier)(nil)

// Notifier implements ports.Notifier by logging warnings. The most recent
// notifications are kept so commands can report them at the end of a run.
type Notifier struct {
	logger ports.Logger
	limit  int

	mu      sync.Mutex
	history []domain.Notification
}

// New creates a Notifier keeping DefaultHistorySize notifications.
func New(logger ports.Logger) *Notifier {
	return NewWithLimit(logger, DefaultHistorySize)
}

// NewWithLimit creates a Notifier keeping at most limit notifications.
func NewWithLimit(logger ports.Logger, limit int) *Notifier {
	return &Notifier{logger: logger, limit: max(limit, 0)}
}

// Important logs the message at warn level and records it.
func (n *Notifier) Important(title, message string) {
	n.logger.Warn(title + ": " + message)

	if n.limit == 0 {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.history) == n.limit {
		n.history = slices.Delete(n.history, 0, 1)
	}
	n.history = append(n.history, domain.Notification{Title: title, Message: message})
}

// History returns the recorded notifications, oldest first.
func (n *Notifier) History() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.history)
}

// Reset forgets the recorded notifications.
func (n *Notifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.history = nil
}
