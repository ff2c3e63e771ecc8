package glueerror

type ErrorCode uint

// Contract-violation codes delivered through the fatal handler.
// The numeric values are part of the device's panic protocol.
const (
	UninitializedObject = ErrorCode(40 + iota)
	OutOfBounds
	BadUsage
)

const (
	FailLoggerSetup = ErrorCode(100 + iota)
	FailReadConfig
	FailCreateEventBus
)

const (
	FailRunApp = ErrorCode(200 + iota)
	FailHandleEvent
)

const (
	FailHalAccess = ErrorCode(300 + iota)
	FailClockAccess
)
