// Package fixtures provides the static conversation data the client ships
// with until a real backend feeds it. Timestamps are generated relative to
// now so every header shape (Today, Yesterday, weekday, long form) shows up.
package fixtures

import (
	"time"

	"chat-client/domain"
	"chat-client/format"
)

func stamp(now time.Time, back time.Duration) string {
	return now.Add(-back).Format(time.RFC3339)
}

// Users returns the demo participant directory.
func Users() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Alice Martin", Avatar: "https://picsum.photos/seed/alice/200/200", Online: true},
		{ID: 2, Name: "Bob Keller", Avatar: "https://picsum.photos/seed/bob/200/200", Online: false},
		{ID: 3, Name: "Design Team", Avatar: "https://picsum.photos/seed/team/200/200", Online: false},
		{ID: 4, Name: "Clara Novak", Avatar: "https://picsum.photos/seed/clara/200/200", Online: true},
	}
}

// Chats returns the demo conversations, histories ordered oldest first.
// Chat 4 carries a deliberately malformed timestamp to exercise the
// grouper's drop policy end to end.
func Chats(now time.Time) []domain.Chat {
	users := Users()
	const day = 24 * time.Hour

	return []domain.Chat{
		{
			ID:          1,
			User:        users[0],
			UnreadCount: 2,
			Messages: []domain.Message{
				{ID: "1-1", Content: "See you on Monday!", Timestamp: stamp(now, 3*day+2*time.Hour), Sender: "1", Status: domain.StatusRead},
				{ID: "1-2", Content: "Sure, have a great weekend!", Timestamp: stamp(now, 3*day+110*time.Minute), Sender: domain.SenderMe, Status: domain.StatusRead},
				{ID: "1-3", Content: "Good morning!", Timestamp: stamp(now, day+3*time.Hour), Sender: "1", Status: domain.StatusRead},
				{ID: "1-4", Content: "Morning! How was your night?", Timestamp: stamp(now, day+170*time.Minute), Sender: domain.SenderMe, Status: domain.StatusRead},
				{ID: "1-5", Content: "Hey, how are you?", Timestamp: stamp(now, 25*time.Minute), Sender: "1", Status: domain.StatusRead},
				{ID: "1-6", Content: "I am good, thanks! How about you?", Timestamp: stamp(now, 20*time.Minute), Sender: domain.SenderMe, Status: domain.StatusRead},
				{ID: "1-7", Content: "Doing great, just busy with the new project.", Timestamp: stamp(now, 10*time.Minute), Sender: "1", Status: domain.StatusDelivered},
			},
		},
		{
			ID:          2,
			User:        users[1],
			UnreadCount: 0,
			Messages: []domain.Message{
				{ID: "2-1", Content: "Thanks for the help!", Timestamp: stamp(now, day+time.Hour), Sender: "2", Status: domain.StatusRead},
				{ID: "2-2", Content: "Can you send me the file?", Timestamp: stamp(now, 2*time.Hour), Sender: "2", Status: domain.StatusRead},
				{ID: "2-3", Content: "Sure, just sent it.", Timestamp: stamp(now, 115*time.Minute), Sender: domain.SenderMe, Status: domain.StatusRead},
			},
		},
		{
			ID:          3,
			User:        users[2],
			UnreadCount: 5,
			Messages: []domain.Message{
				{ID: "3-1", Content: "Meeting postponed to tomorrow", Timestamp: stamp(now, 6*day), Sender: "3", Status: domain.StatusRead},
				{ID: "3-2", Content: "Team meeting at 3 PM.", Timestamp: stamp(now, time.Hour), Sender: "3", Status: domain.StatusDelivered},
				{ID: "3-3", Content: "Got it.", Timestamp: stamp(now, 55*time.Minute), Sender: domain.SenderMe, Status: domain.StatusRead},
				{ID: "3-4", Content: "Don't forget the presentation slides.", Timestamp: stamp(now, 50*time.Minute), Sender: "3", Status: domain.StatusDelivered},
			},
		},
		{
			ID:          4,
			User:        users[3],
			UnreadCount: 0,
			Messages: []domain.Message{
				{ID: "4-1", Content: "Coffee was great!", Timestamp: stamp(now, 12*day), Sender: "4", Status: domain.StatusRead},
				{ID: "4-2", Content: "This one got corrupted upstream", Timestamp: "not-a-real-timestamp", Sender: "4", Status: domain.StatusRead},
				{ID: "4-3", Content: "See you tomorrow!", Timestamp: stamp(now, day+30*time.Minute), Sender: "4", Status: domain.StatusRead},
			},
		},
	}
}

// ChatByID looks a fixture conversation up, the way the data source
// collaborator hands a single chat to a freshly opened session.
func ChatByID(now time.Time, id domain.ChatID) (domain.Chat, bool) {
	for _, c := range Chats(now) {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Chat{}, false
}

// Source adapts the fixture data to the data-source contract of the service
// layer. The reference instant is captured once at construction so repeated
// reads return identical histories.
type Source struct {
	now time.Time
}

func NewSource(clock format.Clock) *Source {
	if clock == nil {
		clock = format.SystemClock()
	}
	return &Source{now: clock.Now()}
}

func (s *Source) Chats() []domain.Chat {
	return Chats(s.now)
}

func (s *Source) ChatByID(id domain.ChatID) (domain.Chat, bool) {
	return ChatByID(s.now, id)
}
