package format

import (
	"fmt"
	"log/slog"
	"time"
)

// Sentinels returned for unformattable input.
const (
	TimeSentinel = "--:--"
	DateSentinel = "Invalid Date"
)

// Relative header labels.
const (
	LabelToday     = "Today"
	LabelYesterday = "Yesterday"
)

// DefaultTimeLayout renders hour and minute only, no seconds.
// The Go standard library has no locale-aware time rendering, so the layout
// is injected configuration; 12-hour devices pass "3:04 PM".
const DefaultTimeLayout = "15:04"

// longDateLayout renders e.g. "3 January 2024".
const longDateLayout = "2 January 2006"

// Formatter renders message timestamps for the conversation view and the
// chat-list summary. All dependencies are injected: the clock (render-time
// "now"), the device-local calendar, the hour/minute layout and the
// diagnostic sink for invalid input. The zero value is not usable; construct
// with NewFormatter.
type Formatter struct {
	clock      Clock
	loc        *time.Location
	timeLayout string
	log        *slog.Logger
}

func NewFormatter(clock Clock, loc *time.Location, timeLayout string, log *slog.Logger) *Formatter {
	if clock == nil {
		clock = SystemClock()
	}
	if loc == nil {
		loc = time.Local
	}
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Formatter{clock: clock, loc: loc, timeLayout: timeLayout, log: log}
}

// FormatTime renders a timestamp as hour:minute, or the "--:--" sentinel
// when the value does not parse. Never returns an error and never panics.
func (f *Formatter) FormatTime(value string) string {
	t, ok := ParseTimestamp(value)
	if !ok {
		f.log.Warn("Invalid timestamp for time formatting", "value", value)
		return TimeSentinel
	}
	return t.In(f.loc).Format(f.timeLayout)
}

// FormatDateHeader renders the label of a date separator.
//
// Comparison uses local calendar date fields against the render-time now,
// never elapsed-millisecond thresholds: a message at 00:01 today is "Today"
// regardless of how many hours have passed since.
//
//	same calendar day            -> "Today"
//	previous calendar day        -> "Yesterday"
//	2..6 calendar days back      -> full weekday name ("Monday")
//	anything else (incl. future) -> "3 January 2024"
func (f *Formatter) FormatDateHeader(value string) string {
	t, ok := ParseTimestamp(value)
	if !ok {
		f.log.Warn("Invalid timestamp for date header", "value", value)
		return DateSentinel
	}

	return f.HeaderLabel(t)
}

// HeaderLabel is FormatDateHeader for an already-parsed timestamp.
func (f *Formatter) HeaderLabel(t time.Time) string {
	local := t.In(f.loc)
	daysAgo := f.calendarDaysAgo(local)

	switch {
	case daysAgo == 0:
		return LabelToday
	case daysAgo == 1:
		return LabelYesterday
	case daysAgo >= 2 && daysAgo <= 6:
		return local.Weekday().String()
	default:
		return local.Format(longDateLayout)
	}
}

// calendarDaysAgo counts whole calendar days between t and now, both in the
// device-local calendar. Midnight boundaries are computed from date fields,
// which keeps the count stable across DST transitions.
func (f *Formatter) calendarDaysAgo(t time.Time) int {
	now := f.clock.Now().In(f.loc)
	nowMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, f.loc)
	tMidnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, f.loc)
	return int(nowMidnight.Sub(tMidnight).Round(24*time.Hour) / (24 * time.Hour))
}

// CalendarDate returns the yyyy-mm-dd portion of t in the device-local
// calendar. Separator keys derive from this value, so the same calendar
// date always yields the same key.
func CalendarDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return fmt.Sprintf("%04d-%02d-%02d", local.Year(), local.Month(), local.Day())
}
