package chat

import (
	"context"
	"time"
)

type MessageRepository interface {
	Create(ctx context.Context, m Message) (Message, error)
	ListByChat(ctx context.Context, chatID string) ([]Message, error)
}

type ChatRepository interface {
	GetByID(ctx context.Context, id string) (Chat, error)
	ListByParticipant(ctx context.Context, userID string) ([]Chat, error)
	// SetLastMessage updates the summary of a chat. Missing chats are
	// reported with ErrChatNotFound.
	SetLastMessage(ctx context.Context, id, content string, at time.Time) (Chat, error)
}
