package store

import (
	"fmt"
	"strings"

	"github.com/matheus3301/huddle/internal/fixture"
	"github.com/matheus3301/huddle/internal/roster"
)

// Validate checks a fixture set against the invariants the views rely on.
// Every error wraps ErrInvalidRecord.
func Validate(set fixture.Set) error {
	conversations := make(map[string]bool, len(set.Conversations))
	for _, c := range set.Conversations {
		switch {
		case c.ID == "":
			return invalid("conversation with empty id")
		case conversations[c.ID]:
			return invalid("duplicate conversation id %q", c.ID)
		case strings.TrimSpace(c.Name) == "":
			return invalid("conversation %q has no name", c.ID)
		case c.UnreadCount < 0:
			return invalid("conversation %q has negative unread count %d", c.ID, c.UnreadCount)
		case c.MemberCount != 0 && !c.Group:
			return invalid("conversation %q has a member count but is not a group", c.ID)
		case c.MemberCount < 0:
			return invalid("conversation %q has negative member count", c.ID)
		case c.LastActivity.IsZero():
			return invalid("conversation %q has no last activity", c.ID)
		}
		conversations[c.ID] = true
	}

	contacts := make(map[string]bool, len(set.Contacts))
	for _, c := range set.Contacts {
		switch {
		case c.ID == "":
			return invalid("contact with empty id")
		case contacts[c.ID]:
			return invalid("duplicate contact id %q", c.ID)
		case strings.TrimSpace(c.Name) == "":
			return invalid("contact %q has no name", c.ID)
		case !c.Presence.Valid():
			return invalid("contact %q has unknown presence %q", c.ID, c.Presence)
		case c.LastSeen != nil && c.Presence != roster.Offline:
			return invalid("contact %q has a last seen time but is %s", c.ID, c.Presence)
		case c.MutualFriends < 0:
			return invalid("contact %q has negative mutual friends", c.ID)
		}
		contacts[c.ID] = true
	}

	requests := make(map[string]bool, len(set.Requests))
	for _, r := range set.Requests {
		switch {
		case r.ID == "":
			return invalid("request with empty id")
		case requests[r.ID]:
			return invalid("duplicate request id %q", r.ID)
		case strings.TrimSpace(r.Name) == "":
			return invalid("request %q has no name", r.ID)
		case r.MutualFriends < 0:
			return invalid("request %q has negative mutual friends", r.ID)
		}
		requests[r.ID] = true
	}

	messages := make(map[string]bool, len(set.Messages))
	for _, m := range set.Messages {
		key := m.ConversationID + "/" + m.ID
		switch {
		case m.ID == "":
			return invalid("message with empty id in %q", m.ConversationID)
		case !conversations[m.ConversationID]:
			return invalid("message %q references unknown conversation %q", m.ID, m.ConversationID)
		case messages[key]:
			return invalid("duplicate message id %q in %q", m.ID, m.ConversationID)
		}
		emojis := map[string]bool{}
		for _, r := range m.Reactions {
			if r.Emoji == "" || r.Count < 0 || emojis[r.Emoji] {
				return invalid("message %q has a bad reaction %q", m.ID, r.Emoji)
			}
			emojis[r.Emoji] = true
		}
		messages[key] = true
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRecord, fmt.Sprintf(format, args...))
}
