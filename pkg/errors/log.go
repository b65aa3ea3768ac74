package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including timestamps.
	Verbose bool
}

// HandleError logs a WeftError to stderr.
func (h *LogHandler) HandleError(err *WeftError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[weft error] %s %s [%s]", err.Timestamp.Format("15:04:05.000"), err.Op, err.Kind)
		if err.Detail != "" {
			fmt.Fprintf(os.Stderr, " detail=%s", err.Detail)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "[weft error] %s: %v\n", err.Op, err.Err)
}
