package handler

import (
	"MicroGlue/constants"
	"MicroGlue/events"
	"sync"

	"go.uber.org/zap"
)

// Bus is the slice of the message bus the manager needs. The real bus promises
// that once Ignore returns there is no further delivery to the detached
// listener through that key.
type Bus interface {
	Listen(componentID constants.ComponentID, eventID constants.EventID, listener events.Listener)
	Ignore(componentID constants.ComponentID, eventID constants.EventID, listener events.Listener)
}

func NewHandlerManager(bus Bus, logger *zap.Logger) *HandlerManager {
	return &HandlerManager{
		bus:      bus,
		logger:   logger,
		handlers: make(map[events.EventKey]*CallbackAdapter),
	}
}

// HandlerManager keeps at most one live adapter per (component, event) key.
// Registering for an occupied key replaces the old handler, never adds a
// second one. Handlers cannot be removed, only replaced; registering a nil
// handler is a no-op and leaves any existing handler active.
//
// A handler callback must not call Register or RegisterWithValue. Replacement
// waits for in-flight deliveries to the old adapter to drain while holding
// the manager's mutex, so a registration issued from inside a running
// callback deadlocks against its own drain.
type HandlerManager struct {
	bus      Bus
	logger   *zap.Logger
	handlers map[events.EventKey]*CallbackAdapter
	mutex    sync.Mutex
}

func (instance *HandlerManager) Register(componentID constants.ComponentID, eventID constants.EventID, action Action) {
	if action == nil {
		return
	}
	instance.install(componentID, eventID, func() *CallbackAdapter {
		return NewCallbackAdapter(action)
	})
}

func (instance *HandlerManager) RegisterWithValue(componentID constants.ComponentID, eventID constants.EventID, action ActionWithValue) {
	if action == nil {
		return
	}
	instance.install(componentID, eventID, func() *CallbackAdapter {
		return NewValueCallbackAdapter(action)
	})
}

// install replaces the adapter for a key. The ordering is load-bearing: the
// old adapter is detached from the bus before its table entry is dropped, so
// the bus can never invoke a released adapter, and the new adapter is attached
// before it is stored. The mutex serializes replacements against each other;
// dispatch runs on the bus's pool and never touches this table.
func (instance *HandlerManager) install(componentID constants.ComponentID, eventID constants.EventID, build func() *CallbackAdapter) {
	key := events.EventKey{ComponentID: componentID, EventID: eventID}
	instance.mutex.Lock()
	defer instance.mutex.Unlock()

	if old, exists := instance.handlers[key]; exists {
		instance.bus.Ignore(componentID, eventID, old)
		delete(instance.handlers, key)
		instance.logger.Debug("replaced event handler",
			zap.String("component", componentID.String()),
			zap.String("event", eventID.String()))
	}

	adapter := build()
	instance.bus.Listen(componentID, eventID, adapter)
	instance.handlers[key] = adapter
}

// Active reports whether a handler is installed for the key.
func (instance *HandlerManager) Active(componentID constants.ComponentID, eventID constants.EventID) bool {
	key := events.EventKey{ComponentID: componentID, EventID: eventID}
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	_, exists := instance.handlers[key]
	return exists
}
