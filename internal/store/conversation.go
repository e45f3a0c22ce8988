package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/matheus3301/huddle/internal/roster"
)

const conversationColumns = `id, name, avatar, last_message, last_activity, unread_count, online, is_group, pinned, muted, member_count`

// ListConversations returns every conversation in the order it was seeded.
func (db *DB) ListConversations() ([]roster.Conversation, error) {
	rows, err := db.Query(`SELECT ` + conversationColumns + ` FROM conversations ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []roster.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetConversation returns a single conversation, or nil if it does not exist.
func (db *DB) GetConversation(id string) (*roster.Conversation, error) {
	c, err := scanConversation(db.QueryRow(`SELECT `+conversationColumns+` FROM conversations WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversation(s scanner) (roster.Conversation, error) {
	var (
		c            roster.Conversation
		lastActivity int64
		members      sql.NullInt64
	)
	if err := s.Scan(&c.ID, &c.Name, &c.Avatar, &c.LastMessage, &lastActivity, &c.UnreadCount,
		&c.Online, &c.Group, &c.Pinned, &c.Muted, &members); err != nil {
		return roster.Conversation{}, err
	}
	c.LastActivity = time.UnixMilli(lastActivity)
	if members.Valid {
		c.MemberCount = int(members.Int64)
	}
	return c, nil
}
