package telegram

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"phonebot/internal/logger"
)

var messagesCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "phonebot",
		Name:      "telegram_messages_total",
		Help:      "Total bot replies handed to Telegram, by result.",
	},
	[]string{"result"}, // "sent", "failed"
)

// Sender is the subset of Client used by Dispatcher.
type Sender interface {
	SendHTML(chatID int64, text string) error
}

// Dispatcher sends replies in the background. Failures are logged and
// counted but never reach the caller.
type Dispatcher struct {
	sender Sender
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher delivering through sender.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

// Notify queues text for chatID and returns immediately.
func (d *Dispatcher) Notify(chatID int64, text string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		if err := d.sender.SendHTML(chatID, text); err != nil {
			messagesCounter.WithLabelValues("failed").Inc()
			logger.Get().Warnw("Failed to deliver bot reply",
				"chat_id", chatID,
				"error", err,
			)
			return
		}
		messagesCounter.WithLabelValues("sent").Inc()
	}()
}

// Wait blocks until every queued reply has been attempted.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
