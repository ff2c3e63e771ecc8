package dto

import (
	"MicroGlue/constants"
	"MicroGlue/types"
	"time"
)

// EventData is the record the message bus delivers to listeners. It exists
// only for the duration of one dispatch.
type EventData struct {
	ComponentID constants.ComponentID
	EventID     constants.EventID
	Payload     int
	TraceID     types.TraceID
	TimeStamp   time.Time
}
