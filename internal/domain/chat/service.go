package chat

import "context"

type ChatService interface {
	// SendMessage appends the message and then updates the chat summary as
	// a second, independent write. A chat id with no matching chat still
	// stores the message.
	SendMessage(ctx context.Context, chatID, content string) (Message, error)
	Chats(ctx context.Context) ([]Chat, error)
	Messages(ctx context.Context, chatID string) ([]Message, error)
}
