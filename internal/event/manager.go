package event

import "sync"

// represents a single registered event listener
type eventListener struct {
	id        int
	eventType EventType
	channel   chan Event
}

// EventManager implements the Manager interface using per-type
// listener channels
type EventManager struct {
	listeners      []*eventListener
	nextListenerID int
	mux            sync.Mutex
}

// NewEventManager returns a new instance of EventManager
func NewEventManager() *EventManager {
	return &EventManager{
		listeners:      []*eventListener{},
		nextListenerID: 1,
		mux:            sync.Mutex{},
	}
}

// RegisterListener registers a channel to receive events of the given type
func (m *EventManager) RegisterListener(eventType EventType, listener chan Event) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	l := &eventListener{
		id:        m.nextListenerID,
		eventType: eventType,
		channel:   listener,
	}

	m.listeners = append(m.listeners, l)
	m.nextListenerID++

	return l.id
}

// RemoveListener removes a registered listener by id and returns the id
func (m *EventManager) RemoveListener(id int) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	listeners := []*eventListener{}

	for _, l := range m.listeners {
		if l.id != id {
			listeners = append(listeners, l)
		}
	}

	m.listeners = listeners

	return id
}

// Send delivers an event to every listener registered for its type.
// Delivery is synchronous so a listener observes events in send order;
// listener channels should be buffered to keep from blocking senders.
func (m *EventManager) Send(evt Event) {
	m.mux.Lock()
	defer m.mux.Unlock()

	for _, l := range m.listeners {
		if l.eventType == evt.Type {
			l.channel <- evt
		}
	}
}

// ReportFatalError sends an event of type FatalErrorEventType
func (m *EventManager) ReportFatalError(err error) {
	m.Send(Event{
		Type:    FatalErrorEventType,
		Payload: err,
	})
}

// ReportError sends an event of type ErrorEventType
func (m *EventManager) ReportError(err error) {
	m.Send(Event{
		Type:    ErrorEventType,
		Payload: err,
	})
}
