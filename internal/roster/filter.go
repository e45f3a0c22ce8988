package roster

import "strings"

// FilterConversations keeps conversations whose name or last message contains
// query (case-insensitive) and splits them into pinned and regular sections.
// An empty query keeps everything.
func FilterConversations(records []Conversation, query string) Partition {
	q := strings.ToLower(query)
	var p Partition
	for _, c := range records {
		if !matches(q, c.Name, c.LastMessage) {
			continue
		}
		if c.Pinned {
			p.Pinned = append(p.Pinned, c)
		} else {
			p.Regular = append(p.Regular, c)
		}
	}
	return p
}

// FilterContacts narrows contacts to the online ones when filter is
// FilterOnline, then keeps those whose name or handle contains query.
func FilterContacts(records []Contact, query string, filter ContactFilter) []Contact {
	q := strings.ToLower(query)
	out := make([]Contact, 0, len(records))
	for _, c := range records {
		if filter == FilterOnline && c.Presence != Online {
			continue
		}
		if !matches(q, c.Name, c.Handle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// matches expects q already lower-cased.
func matches(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
