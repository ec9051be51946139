package core

import "io"

// UI defines the interface for user interaction and output. The orchestrator
// only produces message strings; rendering them is the UI's concern.
type UI interface {
	// Section prints a section header.
	Section(title string)
	// Title prints a main title.
	Title(title string)
	// Success prints a success message.
	Success(msg string)
	// Info prints an informational message.
	Info(msg string)
	// Debug prints a debug message.
	Debug(msg string)
	// Warning prints a warning message.
	Warning(msg string)
	// Error prints an error message.
	Error(msg string)
	// Printf prints a formatted message to standard output.
	Printf(format string, args ...interface{})
	// Println prints a line to standard output.
	Println(args ...interface{})
	// StartProgress begins a progress bar over total steps.
	StartProgress(title string, total int)
	// IncrementProgress advances the live progress bar by one step.
	IncrementProgress()
	// StopProgress finishes the live progress bar, if any.
	StopProgress()
	// WithWriter returns a new UI instance writing to the specified writer.
	WithWriter(w io.Writer) UI
}
