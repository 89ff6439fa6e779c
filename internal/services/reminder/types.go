package reminder

import (
	"context"
	"time"
)

// FireFunc runs when a reminder comes due
type FireFunc func(ctx context.Context, key string, fireAt time.Time)

// ScheduleInput contains parameters for arming a reminder
type ScheduleInput struct {
	// Key identifies the reminder, normally a session ID
	Key string

	// FireAt is when the reminder should run
	FireAt time.Time

	// OnFire is invoked on its own goroutine
	OnFire FireFunc
}

// ScheduleOutput contains the result of arming a reminder
type ScheduleOutput struct {
	// Scheduled is false when FireAt had already passed
	Scheduled bool

	// Replaced is true when an earlier reminder for the key was cancelled
	Replaced bool
}

// CancelInput contains parameters for disarming a reminder
type CancelInput struct {
	Key string
}

// CancelOutput contains the result of disarming a reminder
type CancelOutput struct {
	// Cancelled is false when nothing was pending for the key
	Cancelled bool
}
