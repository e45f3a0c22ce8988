package store

import (
	"database/sql"
	"time"

	"github.com/matheus3301/huddle/internal/roster"
)

// ListContacts returns every contact in the order it was seeded.
func (db *DB) ListContacts() ([]roster.Contact, error) {
	rows, err := db.Query(`
		SELECT id, name, handle, avatar, presence, status_message, mutual_friends, last_seen
		FROM contacts ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []roster.Contact
	for rows.Next() {
		var (
			c        roster.Contact
			presence string
			lastSeen sql.NullInt64
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Handle, &c.Avatar, &presence, &c.StatusMessage, &c.MutualFriends, &lastSeen); err != nil {
			return nil, err
		}
		c.Presence = roster.ParsePresence(presence)
		if lastSeen.Valid {
			t := time.UnixMilli(lastSeen.Int64)
			c.LastSeen = &t
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListRequests returns every pending friend request in the order it was seeded.
func (db *DB) ListRequests() ([]roster.PendingRequest, error) {
	rows, err := db.Query(`
		SELECT id, name, handle, avatar, mutual_friends, received_at
		FROM friend_requests ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []roster.PendingRequest
	for rows.Next() {
		var (
			r          roster.PendingRequest
			receivedAt int64
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Handle, &r.Avatar, &r.MutualFriends, &receivedAt); err != nil {
			return nil, err
		}
		r.ReceivedAt = time.UnixMilli(receivedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}
