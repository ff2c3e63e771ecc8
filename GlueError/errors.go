package glueerror

import (
	"fmt"
	"time"
)

type GlueError struct {
	ErrorCode ErrorCode
	Message   string
	Cause     error
	Timestamp time.Time
}

func (instance *GlueError) Error() string {
	if instance.Cause != nil {
		return fmt.Sprintf("[%d] %s : %v", instance.ErrorCode, instance.Message, instance.Cause)
	}
	return fmt.Sprintf("[%d] %s", instance.ErrorCode, instance.Message)
}

func (instance *GlueError) Unwrap() error {
	return instance.Cause
}

func Wrap(err error, errorCode ErrorCode, message string) *GlueError {
	return &GlueError{
		ErrorCode: errorCode,
		Message:   message,
		Cause:     err,
		Timestamp: time.Now(),
	}
}
