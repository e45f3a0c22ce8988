package store

import (
	"fmt"
	"time"

	"github.com/matheus3301/huddle/internal/thread"
)

// ListMessages returns a conversation's messages, oldest first, with their reactions.
func (db *DB) ListMessages(conversationID string) ([]thread.Message, error) {
	rows, err := db.Query(`
		SELECT id, conversation_id, sender_id, sender_name, sender_avatar, content, sent_at, own
		FROM messages
		WHERE conversation_id = ?
		ORDER BY position`, conversationID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var msgs []thread.Message
	index := map[string]int{}
	for rows.Next() {
		var (
			m      thread.Message
			sentAt int64
		)
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.SenderName, &m.SenderAvatar, &m.Content, &sentAt, &m.Own); err != nil {
			return nil, err
		}
		m.SentAt = time.UnixMilli(sentAt)
		index[m.ID] = len(msgs)
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.attachReactions(conversationID, msgs, index); err != nil {
		return nil, fmt.Errorf("load reactions: %w", err)
	}
	return msgs, nil
}

func (db *DB) attachReactions(conversationID string, msgs []thread.Message, index map[string]int) error {
	if len(msgs) == 0 {
		return nil
	}
	rows, err := db.Query(`
		SELECT message_id, emoji, count, has_reacted
		FROM reactions
		WHERE conversation_id = ?
		ORDER BY message_id, position`, conversationID)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			msgID string
			r     thread.Reaction
		)
		if err := rows.Scan(&msgID, &r.Emoji, &r.Count, &r.HasReacted); err != nil {
			return err
		}
		if i, ok := index[msgID]; ok {
			msgs[i].Reactions = append(msgs[i].Reactions, r)
		}
	}
	return rows.Err()
}
