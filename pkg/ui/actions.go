package ui

import "time"

// Actions are the carousel operations bound to the popover buttons.
type Actions interface {
	Advance() error
	ApplyCurrent() error
	Retry()
}

// Controller is everything the UI drives.
type Controller interface {
	Actions
	CacheDir() string
	SetRefreshInterval(d time.Duration)
	Close()
}

// Notifier is a function that notifies the user.
type Notifier func(title, message string)
