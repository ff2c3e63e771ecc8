package types

import "github.com/google/uuid"

type TraceID uuid.UUID

func NewTraceID() TraceID {
	return TraceID(uuid.New())
}

func (instance TraceID) String() string {
	return uuid.UUID(instance).String()
}

func (instance TraceID) IsNil() bool {
	return uuid.UUID(instance) == uuid.Nil
}

type SessionID uuid.UUID

func NewSessionID() SessionID {
	return SessionID(uuid.New())
}

func (instance SessionID) String() string {
	return uuid.UUID(instance).String()
}

func (instance SessionID) IsNil() bool {
	return uuid.UUID(instance) == uuid.Nil
}
