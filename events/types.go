package events

import (
	"MicroGlue/constants"
	"MicroGlue/dto"
	"sync"
)

// EventKey partitions the event space the same way the board's message bus
// does: one component, one event.
type EventKey struct {
	ComponentID constants.ComponentID
	EventID     constants.EventID
}

// Listener receives event records from the message bus. Multiple listeners may
// be attached to the same key at the bus level.
type Listener interface {
	HandleEvent(event dto.EventData)
}

// listenerEntry tracks one attachment of a listener to a key. deliverMutex is
// read-held for the duration of every delivery, so Ignore can block until all
// in-flight deliveries to the entry have drained before reporting it detached.
type listenerEntry struct {
	listener     Listener
	deliverMutex sync.RWMutex
	active       bool
}
