package core

import "errors"

// Caller-facing conditions. Handlers map these to HTTP statuses; none of
// them is fatal to the process.
var (
	// ErrAlreadyClockedOut rejects any clock transition on a terminal record.
	ErrAlreadyClockedOut = errors.New("already clocked out for the day")

	// ErrWeekLocked rejects mutations against a submitted week.
	ErrWeekLocked = errors.New("week is submitted and locked")

	ErrNoAssignees   = errors.New("assignee set must not be empty")
	ErrNoProject     = errors.New("project reference is required")
	ErrNegativeHours = errors.New("worked hours must not be negative")
	ErrUnknownGroup  = errors.New("no entries exist for task group")
	ErrNotMonday     = errors.New("week start must be a Monday")
)
