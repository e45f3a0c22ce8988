package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/matheus3301/huddle/internal/fixture"
)

// Seed replaces every collection with the contents of set in one transaction.
// The set is validated first; nothing is written if it is invalid.
func (db *DB) Seed(set fixture.Set, now time.Time) error {
	if err := Validate(set); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"reactions", "messages", "conversations", "contacts", "friend_requests"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, c := range set.Conversations {
		var members sql.NullInt64
		if c.Group && c.MemberCount > 0 {
			members = sql.NullInt64{Int64: int64(c.MemberCount), Valid: true}
		}
		_, err := tx.Exec(`
			INSERT INTO conversations (id, position, name, avatar, last_message, last_activity, unread_count, online, is_group, pinned, muted, member_count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, i, c.Name, c.Avatar, c.LastMessage, c.LastActivity.UnixMilli(), c.UnreadCount,
			c.Online, c.Group, c.Pinned, c.Muted, members)
		if err != nil {
			return fmt.Errorf("insert conversation %s: %w", c.ID, err)
		}
	}

	for i, c := range set.Contacts {
		var lastSeen sql.NullInt64
		if c.LastSeen != nil {
			lastSeen = sql.NullInt64{Int64: c.LastSeen.UnixMilli(), Valid: true}
		}
		_, err := tx.Exec(`
			INSERT INTO contacts (id, position, name, handle, avatar, presence, status_message, mutual_friends, last_seen)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, i, c.Name, c.Handle, c.Avatar, string(c.Presence), c.StatusMessage, c.MutualFriends, lastSeen)
		if err != nil {
			return fmt.Errorf("insert contact %s: %w", c.ID, err)
		}
	}

	for i, r := range set.Requests {
		_, err := tx.Exec(`
			INSERT INTO friend_requests (id, position, name, handle, avatar, mutual_friends, received_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, i, r.Name, r.Handle, r.Avatar, r.MutualFriends, r.ReceivedAt.UnixMilli())
		if err != nil {
			return fmt.Errorf("insert request %s: %w", r.ID, err)
		}
	}

	for i, m := range set.Messages {
		_, err := tx.Exec(`
			INSERT INTO messages (conversation_id, id, position, sender_id, sender_name, sender_avatar, content, sent_at, own)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ConversationID, m.ID, i, m.SenderID, m.SenderName, m.SenderAvatar, m.Content, m.SentAt.UnixMilli(), m.Own)
		if err != nil {
			return fmt.Errorf("insert message %s: %w", m.ID, err)
		}
		for j, r := range m.Reactions {
			_, err := tx.Exec(`
				INSERT INTO reactions (conversation_id, message_id, position, emoji, count, has_reacted)
				VALUES (?, ?, ?, ?, ?, ?)`,
				m.ConversationID, m.ID, j, r.Emoji, r.Count, r.HasReacted)
			if err != nil {
				return fmt.Errorf("insert reaction on %s: %w", m.ID, err)
			}
		}
	}

	if err := setMeta(tx, MetaSeededAt, now.UTC().Format(time.RFC3339), now); err != nil {
		return err
	}
	return tx.Commit()
}
