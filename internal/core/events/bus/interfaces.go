package bus

// EventBus is a synchronous in-process pub/sub bus used by the simulation to
// announce contacts and entity lifecycle changes.
//
// Key characteristics:
// - Type-based fan-out: handlers subscribe by Event.Type.
// - Synchronous delivery: Publish runs handlers in the caller goroutine, in
//   subscription order, so a frame's events are observed deterministically.
// - Error aggregation: handler errors are joined and returned from Publish.
// - Optional observers receive per-publish metrics callbacks.
type EventBus interface {
	// Publish delivers the event to all active subscribers of event.Type.
	Publish(event Event) error
	// PublishBatch publishes events in order and aggregates errors across them.
	PublishBatch(events ...Event) error
	// Subscribe registers a handler for eventType and returns a handle to cancel it.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. Nil is ignored.
	Unsubscribe(Subscription) error

	AddObserver(obs EventBusObserver)
	RemoveObserver(obs EventBusObserver)
	// GetMetrics returns accumulated counters. Counters only move while at least
	// one observer is registered.
	GetMetrics() EventBusMetrics
}

// Event is a message transported by the EventBus. Frame is the simulation frame
// the event was raised in; Source names the publisher.
type Event struct {
	Type   string
	Source string
	Frame  uint64
	Data   any
}

// NewEvent creates an Event.
func NewEvent(typ, src string, frame uint64, data any) Event {
	return Event{Type: typ, Source: src, Frame: frame, Data: data}
}

type (
	// EventHandler is invoked per delivered event.
	EventHandler func(event Event) error
)

// Subscription represents a registered handler bound to an event type.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	// Cancel de-registers the handler. Multiple calls are safe.
	Cancel() error
}

// EventBusObserver is notified about deliveries.
type EventBusObserver interface {
	OnPublish(eventType string, event Event)
	OnDelivered(eventType string, handlers int, err error)
}

type EventBusMetrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	SubscribersActive uint64
}
