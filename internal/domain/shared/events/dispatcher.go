package events

import (
	"fmt"
	"sync"
)

// InMemoryDispatcher fans events out to subscribed handlers on a buffered
// channel. Delivery is asynchronous and best-effort: a full buffer drops the
// event rather than blocking the publisher.
type InMemoryDispatcher struct {
	handlers map[string][]Handler
	mu       sync.RWMutex
	running  bool
	stopCh   chan struct{}
	eventCh  chan DomainEvent
	wg       sync.WaitGroup
	onError  func(event DomainEvent, err error)
	onDrop   func(event DomainEvent)
}

type DispatcherOption func(*InMemoryDispatcher)

// WithErrorCallback installs a callback for handler failures, typically a
// logging hook.
func WithErrorCallback(fn func(event DomainEvent, err error)) DispatcherOption {
	return func(d *InMemoryDispatcher) { d.onError = fn }
}

// WithDropCallback installs a callback for events dropped on a full buffer.
func WithDropCallback(fn func(event DomainEvent)) DispatcherOption {
	return func(d *InMemoryDispatcher) { d.onDrop = fn }
}

func NewInMemoryDispatcher(bufferSize int, opts ...DispatcherOption) *InMemoryDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	d := &InMemoryDispatcher{
		handlers: make(map[string][]Handler),
		stopCh:   make(chan struct{}),
		eventCh:  make(chan DomainEvent, bufferSize),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *InMemoryDispatcher) Subscribe(eventType string, handler Handler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

// Publish enqueues the event. It never blocks and never fails the caller; a
// full buffer drops the event.
func (d *InMemoryDispatcher) Publish(event DomainEvent) {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()
	if !running {
		return
	}

	select {
	case d.eventCh <- event:
	default:
		if d.onDrop != nil {
			d.onDrop(event)
		}
	}
}

func (d *InMemoryDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}
	d.running = true
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		d.processEvents()
	}()
	return nil
}

func (d *InMemoryDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	return nil
}

func (d *InMemoryDispatcher) processEvents() {
	for {
		select {
		case <-d.stopCh:
			// Drain what is already queued before shutting down.
			for {
				select {
				case event := <-d.eventCh:
					d.handleEvent(event)
				default:
					return
				}
			}
		case event := <-d.eventCh:
			d.handleEvent(event)
		}
	}
}

func (d *InMemoryDispatcher) handleEvent(event DomainEvent) {
	d.mu.RLock()
	handlers := append([]Handler(nil), d.handlers[event.EventType()]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil && d.onError != nil {
					d.onError(event, fmt.Errorf("handler panic: %v", r))
				}
			}()
			if err := handler(event); err != nil && d.onError != nil {
				d.onError(event, err)
			}
		}()
	}
}
