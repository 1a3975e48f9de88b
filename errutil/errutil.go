package errutil

import (
	"fmt"
	"os"
)

// debug enables the invariant checks below. Set DEBUG=1 to turn them on.
var debug = os.Getenv("DEBUG") == "1"

// Debug reports whether invariant checks are enabled.
func Debug() bool {
	return debug
}

// SetDebug toggles invariant checks and returns the previous setting.
func SetDebug(on bool) bool {
	prev := debug
	debug = on
	return prev
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func Bug(format string, msg ...any) {
	if debug {
		panic(fmt.Sprintf("BUG: "+format, msg...))
	}
}

func BugOn(cond bool, format string, msg ...any) {
	if debug && cond {
		Bug(format, msg...)
	}
}
