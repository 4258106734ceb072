package usecase

import "errors"

// Sentinel errors returned by the shortcut use cases.
var (
	ErrInvalidShortcut  = errors.New("invalid shortcut")
	ErrShortcutNotFound = errors.New("shortcut not found")
	ErrStatsDisabled    = errors.New("lookup statistics are disabled")
)
