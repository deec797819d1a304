package model

import (
	"termfolio/pkg/logging"
)

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// DispatchMsg runs Fn inside the update loop. The control surface uses it
// so mutations from server goroutines reach the model safely.
type DispatchMsg struct {
	Fn func()
}

// RunCommandMsg fires after the echo delay to execute a submitted command.
type RunCommandMsg struct {
	Raw string
}

// FocusTerminalMsg moves focus to the terminal input.
type FocusTerminalMsg struct{}

// ContactResetMsg restores the contact form. Seq guards against stale timers.
type ContactResetMsg struct {
	Seq int
}


// ClearStatusBarMsg clears the status bar.
type ClearStatusBarMsg struct{}
