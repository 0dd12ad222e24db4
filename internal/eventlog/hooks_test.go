package eventlog

import "time"

// internals returns the concrete service behind the interface
func internals(s Service) *service {
	return s.(*service)
}

// withClock pins the retention cutoff clock of s
func withClock(s Service, now time.Time) Service {
	internals(s).now = func() time.Time { return now }
	return s
}
