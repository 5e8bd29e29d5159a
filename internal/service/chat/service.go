package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/grofast/portal-backend-go/internal/domain/chat"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/idgen"
	"github.com/grofast/portal-backend-go/internal/pkg/sse"
)

type ChatServiceImpl struct {
	chat.MessageRepository
	chat.ChatRepository
	hub *sse.Hub
	now clock.Clock
}

// NewChatService wires the chat store. hub may be nil when live streams
// are disabled.
func NewChatService(messages chat.MessageRepository, chats chat.ChatRepository, hub *sse.Hub, now clock.Clock) chat.ChatService {
	return &ChatServiceImpl{
		MessageRepository: messages,
		ChatRepository:    chats,
		hub:               hub,
		now:               now,
	}
}

// SendMessage implements chat.ChatService.
func (s *ChatServiceImpl) SendMessage(ctx context.Context, chatID, content string) (chat.Message, error) {
	req := chat.SendMessageRequest{Content: content}
	if err := req.Validate(); err != nil {
		return chat.Message{}, err
	}
	identity, err := user.FromContext(ctx)
	if err != nil {
		return chat.Message{}, err
	}

	msg := chat.Message{
		ID:         idgen.New(idgen.PrefixMessage),
		ChatID:     chatID,
		SenderID:   identity.ID,
		SenderName: identity.Name,
		Content:    content,
		Timestamp:  s.now().UTC(),
	}
	msg, err = s.MessageRepository.Create(ctx, msg)
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to save message: %w", err)
	}

	c, err := s.ChatRepository.SetLastMessage(ctx, chatID, content, msg.Timestamp)
	switch {
	case errors.Is(err, chat.ErrChatNotFound):
		slog.Warn("message stored for unknown chat", "chat_id", chatID, "message_id", msg.ID)
		return msg, nil
	case err != nil:
		slog.Error("failed to update chat summary", "chat_id", chatID, "error", err)
		return msg, nil
	}

	if s.hub != nil {
		s.hub.PublishToMany(c.Participants, sse.Event{Name: chat.EventMessage, Data: msg})
	}
	return msg, nil
}

// Chats implements chat.ChatService, most recently active first.
func (s *ChatServiceImpl) Chats(ctx context.Context) ([]chat.Chat, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	chats, err := s.ChatRepository.ListByParticipant(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(chats, func(i, j int) bool {
		a, b := chats[i].LastMessageTime, chats[j].LastMessageTime
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
	return chats, nil
}

// Messages implements chat.ChatService.
func (s *ChatServiceImpl) Messages(ctx context.Context, chatID string) ([]chat.Message, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.ChatRepository.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(identity.ID) {
		return nil, chat.ErrNotParticipant
	}
	return s.MessageRepository.ListByChat(ctx, chatID)
}
