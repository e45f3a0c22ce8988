// Package fixture holds the sample data the preview runs on.
package fixture

import (
	"time"

	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/thread"
)

const placeholderAvatar = "/placeholder.svg"

// GeneralChatID is the conversation the sample messages belong to.
const GeneralChatID = "1"

// Set is a complete snapshot of everything the store serves.
type Set struct {
	Conversations []roster.Conversation
	Contacts      []roster.Contact
	Requests      []roster.PendingRequest
	Messages      []thread.Message
}

// Sample returns the sample data with timestamps relative to now.
func Sample(now time.Time) Set {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	lastSeen := ago(time.Hour)

	alex := sender{id: "2", name: "Alex Johnson"}
	sarah := sender{id: "1", name: "Sarah Wilson"}
	mike := sender{id: "3", name: "Mike Chen"}

	return Set{
		Conversations: []roster.Conversation{
			{ID: GeneralChatID, Name: "General Chat", Avatar: placeholderAvatar, LastMessage: "That sounds awesome! I need to get back into a workout routine myself...", LastActivity: ago(15 * time.Second), UnreadCount: 3, Online: true, Group: true, Pinned: true, MemberCount: 24},
			{ID: "2", Name: "Sarah Wilson", Avatar: placeholderAvatar, LastMessage: "Thanks for the help earlier! 😊", LastActivity: ago(5 * time.Minute), UnreadCount: 1, Online: true},
			{ID: "3", Name: "Design Team", Avatar: placeholderAvatar, LastMessage: "Mike: The new mockups look great!", LastActivity: ago(10 * time.Minute), Group: true, MemberCount: 8},
			{ID: "4", Name: "Emma Davis", Avatar: placeholderAvatar, LastMessage: "See you tomorrow!", LastActivity: ago(time.Hour)},
			{ID: "5", Name: "Project Alpha", Avatar: placeholderAvatar, LastMessage: "John: Updated the documentation", LastActivity: ago(2 * time.Hour), Group: true, Muted: true, MemberCount: 12},
		},
		Contacts: []roster.Contact{
			{ID: "1", Name: "Sarah Wilson", Handle: "@sarahw", Avatar: placeholderAvatar, Presence: roster.Online, StatusMessage: "Working on something cool", MutualFriends: 5},
			{ID: "2", Name: "Mike Chen", Handle: "@mikec", Avatar: placeholderAvatar, Presence: roster.Away, StatusMessage: "In a meeting", MutualFriends: 3},
			{ID: "3", Name: "Emma Davis", Handle: "@emmad", Avatar: placeholderAvatar, Presence: roster.Busy, StatusMessage: "Do not disturb", MutualFriends: 8},
			{ID: "4", Name: "John Smith", Handle: "@johns", Avatar: placeholderAvatar, Presence: roster.Offline, LastSeen: &lastSeen, MutualFriends: 2},
		},
		Requests: []roster.PendingRequest{
			{ID: "1", Name: "Alex Rodriguez", Handle: "@alexr", Avatar: placeholderAvatar, MutualFriends: 4, ReceivedAt: ago(5 * time.Minute)},
			{ID: "2", Name: "Lisa Park", Handle: "@lisap", Avatar: placeholderAvatar, MutualFriends: 2, ReceivedAt: ago(10 * time.Minute)},
		},
		Messages: []thread.Message{
			sarah.say("1", "Hey everyone! How are you doing today?", ago(time.Minute), false,
				thread.Reaction{Emoji: "👋", Count: 3}, thread.Reaction{Emoji: "😊", Count: 1, HasReacted: true}),
			alex.say("2", "Pretty good! Just finished a great workout. How about you?", ago(45*time.Second), true),
			mike.say("3", "That sounds awesome! I need to get back into a workout routine myself. Any recommendations?", ago(30*time.Second), false),
			alex.say("4", "I've been doing a mix of cardio and strength training. There's this great app called FitTracker that has some amazing routines!", ago(15*time.Second), true),
		},
	}
}

// Self is the signed-in user the sample thread is written from.
var Self = struct {
	Name   string
	Handle string
}{Name: "Alex Johnson", Handle: "@alexj"}

type sender struct {
	id   string
	name string
}

func (s sender) say(id, content string, at time.Time, own bool, reactions ...thread.Reaction) thread.Message {
	return thread.Message{
		ID:             id,
		ConversationID: GeneralChatID,
		SenderID:       s.id,
		SenderName:     s.name,
		SenderAvatar:   placeholderAvatar,
		Content:        content,
		SentAt:         at,
		Own:            own,
		Reactions:      reactions,
	}
}
