package clock

import "time"

// Clock abstracts time so that lifecycle timestamping (paid_at and friends)
// stays testable.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// New returns a Clock backed by the system time in UTC
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}
