package event

import (
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/service"
)

type Handler func(event service.Event) error

// Dispatcher delivers domain events synchronously to the handlers subscribed to their type.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	all      []Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

func (d *Dispatcher) Subscribe(eventType string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

func (d *Dispatcher) SubscribeAll(handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.all = append(d.all, handler)
}

func (d *Dispatcher) Dispatch(event service.Event) error {
	d.mu.RLock()
	handlers := make([]Handler, 0, len(d.all)+len(d.handlers[event.Type()]))
	handlers = append(handlers, d.all...)
	handlers = append(handlers, d.handlers[event.Type()]...)
	d.mu.RUnlock()

	log.WithField("event", event.Type()).Debug("dispatching event")

	var firstErr error
	for _, handler := range handlers {
		if err := handler(event); err != nil {
			log.WithError(err).WithField("event", event.Type()).Error("event handler failed")
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "failed to handle %s", event.Type())
			}
		}
	}
	return firstErr
}

// ReceiptJournal stores the receipt of every completed purchase.
func ReceiptJournal(repo model.ReceiptRepository) Handler {
	return func(event service.Event) error {
		completed, ok := event.(model.PurchaseCompleted)
		if !ok {
			return nil
		}
		receipt := completed.Receipt
		if err := repo.Store(&receipt); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"receipt": receipt.ID,
			"total":   model.FormatPrice(receipt.TotalCents),
		}).Info("receipt stored")
		return nil
	}
}
