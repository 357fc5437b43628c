package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var resetHook atomic.Pointer[func()]

// SetResetHook registers the function that restores the host terminal before a crash report
// The engine stays independent of the terminal package; the host injects this at startup
func SetResetHook(fn func()) {
	if fn == nil {
		resetHook.Store(nil)
		return
	}
	resetHook.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if hook := resetHook.Load(); hook != nil {
		(*hook)()
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()
	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
