package ui

import "time"

// aboutSplashTime is how long the about splash stays on screen
const aboutSplashTime = 3 * time.Second

// Popover geometry in logical pixels
const (
	popoverWidth  = 460
	popoverHeight = 300
	centerWidth   = 260
	centerHeight  = 200
)

// User-facing copy
const (
	statusLoading       = "Fetching wallpapers..."
	statusApplied       = "Wallpaper updated"
	statusLoadFailedFmt = "Could not load wallpapers: %v"
	appliedNoticeTitle  = "Wallpaper Change"
)
