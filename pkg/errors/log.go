package errors

import "github.com/go-drift/sidenav/pkg/log"

// LogHandler is an ErrorHandler that writes through pkg/log.
type LogHandler struct {
	// Verbose adds stack traces to panic reports.
	Verbose bool
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	log.Errorf("%v", err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	log.Errorf("%v", err)
	if h.Verbose && err.StackTrace != "" {
		log.Errorf("stack trace:\n%s", err.StackTrace)
	}
}
