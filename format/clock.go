package format

import "time"

// Clock supplies the render-time "now". Header labels compare against the
// current wall clock on every call, so a conversation left open overnight
// relabels its "Today" entries without new data.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the wall-clock backed Clock used outside of tests.
func SystemClock() Clock {
	return systemClock{}
}
