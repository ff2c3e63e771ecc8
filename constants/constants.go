package constants

import "fmt"

// ComponentID identifies the hardware component that produced an event.
// The values mirror the component numbering of the board's message bus.
type ComponentID int

const (
	ComponentButtonA = ComponentID(iota + 1)
	ComponentButtonB
	ComponentButtonAB
	ComponentPin0
	ComponentPin1
	ComponentPin2
	ComponentDisplay
	ComponentRemoteControl
	ComponentCamera
	ComponentAudioRecorder
	ComponentAlert
)

func (instance ComponentID) String() string {
	switch instance {
	case ComponentButtonA:
		return "ButtonA"
	case ComponentButtonB:
		return "ButtonB"
	case ComponentButtonAB:
		return "ButtonAB"
	case ComponentPin0:
		return "Pin0"
	case ComponentPin1:
		return "Pin1"
	case ComponentPin2:
		return "Pin2"
	case ComponentDisplay:
		return "Display"
	case ComponentRemoteControl:
		return "RemoteControl"
	case ComponentCamera:
		return "Camera"
	case ComponentAudioRecorder:
		return "AudioRecorder"
	case ComponentAlert:
		return "Alert"
	default:
		return fmt.Sprintf("Component(%d)", int(instance))
	}
}

type EventID int

// EventAny subscribes to every event of a component.
const EventAny = EventID(0)

const (
	EventButtonDown = EventID(iota + 1)
	EventButtonUp
	EventButtonClick
	EventButtonLongClick
	EventButtonHold
)

func (instance EventID) String() string {
	switch instance {
	case EventAny:
		return "Any"
	case EventButtonDown:
		return "Down"
	case EventButtonUp:
		return "Up"
	case EventButtonClick:
		return "Click"
	case EventButtonLongClick:
		return "LongClick"
	case EventButtonHold:
		return "Hold"
	default:
		return fmt.Sprintf("Event(%d)", int(instance))
	}
}
