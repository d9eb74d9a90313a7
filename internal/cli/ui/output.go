package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/aki/gdctl/internal/core/devlog"
)

// Print functions for consistent output

func Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorIcon, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", SuccessIcon, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", InfoIcon, InfoStyle.Render(fmt.Sprintf(format, args...)))
}

func Warning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", WarningIcon, WarningStyle.Render(fmt.Sprintf(format, args...)))
}

// OutputLine prints a formatted line to stdout
func OutputLine(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// PrintLogEntry displays one log entry, falling back to the raw line for
// entries that did not parse
func PrintLogEntry(entry devlog.Entry) {
	if !entry.Parsed() {
		OutputLine("%s", entry.Raw)
		return
	}

	ts := time.Unix(int64(entry.Timestamp), 0).Format("15:04:05")
	OutputLine("%s %s %s",
		DimStyle.Render(fmt.Sprintf("[%s]", ts)),
		BoldStyle.Render(fmt.Sprintf("[%s]", entry.Category)),
		entry.Message,
	)
}
