package glueerror

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// FatalHandler receives contract violations that the device cannot recover from.
// The default handler reports the error code and halts the process, matching the
// panic behaviour of the target board. Tests install their own handler.
type FatalHandler func(glueError *GlueError)

var (
	fatalMutex   sync.RWMutex
	fatalHandler FatalHandler = defaultFatalHandler
)

func defaultFatalHandler(glueError *GlueError) {
	fmt.Fprintf(os.Stderr, "fatal: %s\n", glueError.Error())
	os.Exit(int(glueError.ErrorCode))
}

func SetFatalHandler(handler FatalHandler) {
	fatalMutex.Lock()
	defer fatalMutex.Unlock()
	if handler == nil {
		fatalHandler = defaultFatalHandler
		return
	}
	fatalHandler = handler
}

func Fatal(errorCode ErrorCode, message string) {
	Fail(Wrap(nil, errorCode, message))
}

// Fail routes an error to the fatal handler. Errors that are not a GlueError
// are reported as BadUsage.
func Fail(err error) {
	var glueError *GlueError
	if !errors.As(err, &glueError) {
		glueError = Wrap(err, BadUsage, "Unexpected Error")
	}
	fatalMutex.RLock()
	handler := fatalHandler
	fatalMutex.RUnlock()
	handler(glueError)
}
