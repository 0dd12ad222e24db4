package session

import "time"

// Clock provides the current time. The session layer is the only place
// that samples it; handlers receive the instant as an argument.
type Clock interface {
	Now() time.Time
}

// RealClock uses the system time
type RealClock struct{}

// Now returns the current system time in UTC
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
