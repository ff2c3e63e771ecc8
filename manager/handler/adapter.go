package handler

import (
	"MicroGlue/dto"
)

// Action is a callback that ignores the event record entirely.
type Action func()

// ActionWithValue is a callback that consumes the payload field of the event
// that triggered it.
type ActionWithValue func(value int)

// CallbackAdapter unifies the two callback shapes behind the single dispatch
// entry point the message bus invokes. Exactly one of the two closures is set;
// the constructors are the only way to build one, so the both-empty state is
// unreachable. Any failure inside the closure is the application's problem,
// the adapter adds nothing.
type CallbackAdapter struct {
	action      Action
	valueAction ActionWithValue
}

func NewCallbackAdapter(action Action) *CallbackAdapter {
	return &CallbackAdapter{action: action}
}

func NewValueCallbackAdapter(action ActionWithValue) *CallbackAdapter {
	return &CallbackAdapter{valueAction: action}
}

func (instance *CallbackAdapter) HandleEvent(event dto.EventData) {
	if instance.action != nil {
		instance.action()
		return
	}
	instance.valueAction(event.Payload)
}
