package events

import (
	glueerror "MicroGlue/GlueError"
	"MicroGlue/config"
	"MicroGlue/constants"
	"MicroGlue/dto"
	"MicroGlue/types"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

func NewMessageBus(config config.BusConfig, logger *zap.Logger) (*MessageBus, error) {
	pool, err := ants.NewPool(config.PoolSize, ants.WithPreAlloc(true))
	if err != nil {
		return nil, glueerror.Wrap(err, glueerror.FailCreateEventBus, "Fail Create Ant Pool")
	}
	bus := &MessageBus{
		listeners: make(map[EventKey][]*listenerEntry),
		logger:    logger,
		pool:      pool,
	}
	return bus, nil
}

type MessageBus struct {
	listeners     map[EventKey][]*listenerEntry
	listenerMutex sync.RWMutex
	stats         BusStats
	logger        *zap.Logger
	pool          *ants.Pool
}

func (instance *MessageBus) Close() {
	instance.pool.Release()
}

func (instance *MessageBus) Stats() BusStatsSnapshot {
	return instance.stats.Snapshot()
}

// Listen attaches listener to the (componentID, eventID) key. Attaching the
// same listener twice delivers twice; single-handler semantics live in the
// handler manager, not here.
func (instance *MessageBus) Listen(componentID constants.ComponentID, eventID constants.EventID, listener Listener) {
	if listener == nil {
		return
	}
	key := EventKey{ComponentID: componentID, EventID: eventID}
	entry := &listenerEntry{listener: listener, active: true}
	instance.listenerMutex.Lock()
	defer instance.listenerMutex.Unlock()
	instance.listeners[key] = append(instance.listeners[key], entry)
}

// Ignore detaches exactly the given listener from the key. Once Ignore
// returns, no further delivery to the listener happens through this key: the
// call drains deliveries that are already in flight. A listener must not
// Ignore itself from inside its own callback.
func (instance *MessageBus) Ignore(componentID constants.ComponentID, eventID constants.EventID, listener Listener) {
	key := EventKey{ComponentID: componentID, EventID: eventID}
	var removed *listenerEntry
	instance.listenerMutex.Lock()
	entries := instance.listeners[key]
	for index, entry := range entries {
		if entry.listener == listener {
			removed = entry
			instance.listeners[key] = append(entries[:index], entries[index+1:]...)
			break
		}
	}
	if len(instance.listeners[key]) == 0 {
		delete(instance.listeners, key)
	}
	instance.listenerMutex.Unlock()
	if removed == nil {
		return
	}
	removed.deliverMutex.Lock()
	removed.active = false
	removed.deliverMutex.Unlock()
}

// Publish delivers the event to every listener of its key and to listeners of
// (ComponentID, EventAny). Delivery runs on the worker pool.
func (instance *MessageBus) Publish(event dto.EventData) {
	if event.TraceID.IsNil() {
		event.TraceID = types.NewTraceID()
	}
	if event.TimeStamp.IsZero() {
		event.TimeStamp = time.Now()
	}
	keys := []EventKey{{ComponentID: event.ComponentID, EventID: event.EventID}}
	if event.EventID != constants.EventAny {
		keys = append(keys, EventKey{ComponentID: event.ComponentID, EventID: constants.EventAny})
	}

	instance.listenerMutex.RLock()
	copyed := make([]*listenerEntry, 0, 4)
	for _, key := range keys {
		copyed = append(copyed, instance.listeners[key]...)
	}
	instance.listenerMutex.RUnlock()

	instance.stats.published.Add(1)
	for _, entry := range copyed {
		copyedEntry := entry
		instance.pool.Submit(func() {
			instance.deliver(copyedEntry, event)
		})
	}
}

func (instance *MessageBus) deliver(entry *listenerEntry, event dto.EventData) {
	entry.deliverMutex.RLock()
	defer entry.deliverMutex.RUnlock()
	if !entry.active {
		return
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			instance.stats.recovered.Add(1)
			instance.logger.Error("", zap.Any("recover", recovered),
				zap.String("trace_id", event.TraceID.String()),
				zap.Error(glueerror.Wrap(
					nil,
					glueerror.FailHandleEvent,
					"Fail HandleEvent",
				)))
		}
	}()
	instance.stats.dispatched.Add(1)
	entry.listener.HandleEvent(event)
}
