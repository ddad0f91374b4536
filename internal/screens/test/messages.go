package test

import "time"

// tickMsg is sent every second to advance the countdown.
type tickMsg time.Time

// persistedMsg confirms the attempt events were appended to the local
// store. Failures are non-fatal; the report already exists in memory.
type persistedMsg struct {
	Err error
}
