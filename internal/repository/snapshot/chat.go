package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/chat"
)

type messageRepositoryImpl struct {
	records collection[chat.Message]
}

func NewMessageRepository(store *Store) chat.MessageRepository {
	return &messageRepositoryImpl{records: collection[chat.Message]{
		store: store,
		slot:  func(d *Snapshot) *[]chat.Message { return &d.Messages },
		id:    func(m chat.Message) string { return m.ID },
	}}
}

// Create implements chat.MessageRepository.
func (r *messageRepositoryImpl) Create(ctx context.Context, m chat.Message) (chat.Message, error) {
	if err := r.records.insert(ctx, m); err != nil {
		return chat.Message{}, err
	}
	return m, nil
}

// ListByChat implements chat.MessageRepository.
func (r *messageRepositoryImpl) ListByChat(ctx context.Context, chatID string) ([]chat.Message, error) {
	return r.records.filter(func(m chat.Message) bool { return m.ChatID == chatID }), nil
}

type chatRepositoryImpl struct {
	records collection[chat.Chat]
}

func NewChatRepository(store *Store) chat.ChatRepository {
	return &chatRepositoryImpl{records: collection[chat.Chat]{
		store: store,
		slot:  func(d *Snapshot) *[]chat.Chat { return &d.Chats },
		id:    func(c chat.Chat) string { return c.ID },
	}}
}

// GetByID implements chat.ChatRepository.
func (r *chatRepositoryImpl) GetByID(ctx context.Context, id string) (chat.Chat, error) {
	c, err := r.records.get(id)
	if errors.Is(err, ErrRecordNotFound) {
		return chat.Chat{}, chat.ErrChatNotFound
	}
	return c, err
}

// ListByParticipant implements chat.ChatRepository.
func (r *chatRepositoryImpl) ListByParticipant(ctx context.Context, userID string) ([]chat.Chat, error) {
	return r.records.filter(func(c chat.Chat) bool { return c.HasParticipant(userID) }), nil
}

// SetLastMessage implements chat.ChatRepository.
func (r *chatRepositoryImpl) SetLastMessage(ctx context.Context, id, content string, at time.Time) (chat.Chat, error) {
	c, err := r.records.replace(ctx, id, func(c chat.Chat) chat.Chat {
		c.LastMessage = content
		c.LastMessageTime = &at
		return c
	})
	if errors.Is(err, ErrRecordNotFound) {
		return chat.Chat{}, chat.ErrChatNotFound
	}
	return c, err
}
