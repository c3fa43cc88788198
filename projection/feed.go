// Package projection builds renderable conversation feeds from raw message
// history. Handles calendar-day segmentation and defensive handling of
// malformed timestamps. Does not talk to the network or the UI directly.
package projection

import (
	"log/slog"
	"time"

	"chat-client/domain"
	"chat-client/format"
)

// EntryKind discriminates the two row types a conversation feed can hold.
type EntryKind string

const (
	KindDate    EntryKind = "date"
	KindMessage EntryKind = "message"
)

// DateSeparator is a synthetic row injected before the first message of each
// calendar day. At is the timestamp of that first message; the header label
// is derived from it at render time.
type DateSeparator struct {
	Key string
	At  time.Time
}

// Entry is one renderable feed row, either a separator or a message.
// Key is stable across re-renders: separators derive theirs from the
// calendar date, messages use their ID.
type Entry struct {
	Kind      EntryKind
	Key       string
	Separator DateSeparator
	Message   domain.Message
}

// Grouper turns an ordered message history into a feed. It is a pure
// projection: it never re-sorts input and needs no clock, only each
// message's own calendar date.
type Grouper struct {
	loc *time.Location
	log *slog.Logger
}

func NewGrouper(loc *time.Location, log *slog.Logger) *Grouper {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = slog.Default()
	}
	return &Grouper{loc: loc, log: log}
}

// Group scans messages once, left to right, emitting a DateSeparator before
// the first valid message of each new calendar day and a message entry for
// every valid message, in input order.
//
// Messages whose timestamp does not parse are dropped from the feed
// entirely. That is a deliberate data-loss policy for malformed upstream
// entries, not an error: the diagnostic goes to the log and the scan
// continues. Consequently separators are never adjacent and the output
// never exceeds twice the input length.
func (g *Grouper) Group(messages []domain.Message) []Entry {
	if len(messages) == 0 {
		return nil
	}

	entries := make([]Entry, 0, 2*len(messages))
	currentDate := ""

	for _, msg := range messages {
		at, ok := format.ParseTimestamp(msg.Timestamp)
		if !ok {
			g.log.Warn("Dropping message with invalid timestamp",
				"id", msg.ID, "timestamp", msg.Timestamp)
			continue
		}

		date := format.CalendarDate(at, g.loc)
		if date != currentDate {
			entries = append(entries, Entry{
				Kind:      KindDate,
				Key:       "date-" + date,
				Separator: DateSeparator{Key: "date-" + date, At: at},
			})
			currentDate = date
		}

		entries = append(entries, Entry{
			Kind:    KindMessage,
			Key:     msg.ID,
			Message: msg,
		})
	}

	return entries
}
