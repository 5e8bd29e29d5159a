package chat

import (
	"context"
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/chat"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/fixtures"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/pkg/sse"
	"github.com/grofast/portal-backend-go/internal/repository/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (chat.ChatService, *sse.Hub) {
	t.Helper()
	store, err := snapshot.Open(context.Background(), kvstore.NewMemoryStore(), "", fixtures.Seed(clock.Date(testNow)))
	require.NoError(t, err)
	hub := sse.NewHub()
	return NewChatService(snapshot.NewMessageRepository(store), snapshot.NewChatRepository(store), hub, clock.Fixed(testNow)), hub
}

func as(i int) context.Context {
	return user.WithIdentity(context.Background(), fixtures.DemoIdentities()[i])
}

func TestSendMessage_UpdatesChatAndStreams(t *testing.T) {
	svc, hub := setup(t)
	events, cancel := hub.Subscribe("tl-001")
	defer cancel()

	msg, err := svc.SendMessage(as(0), "chat-emp001-tl001", "hello")
	require.NoError(t, err)
	assert.Equal(t, "emp-001", msg.SenderID)
	assert.Equal(t, "Ravi Kumar", msg.SenderName)
	assert.False(t, msg.Read)

	chats, err := svc.Chats(as(0))
	require.NoError(t, err)
	require.NotEmpty(t, chats)
	assert.Equal(t, "chat-emp001-tl001", chats[0].ID, "most recent first")
	assert.Equal(t, "hello", chats[0].LastMessage)
	assert.True(t, chats[0].LastMessageTime.Equal(testNow))

	msgs, err := svc.Messages(as(1), "chat-emp001-tl001")
	require.NoError(t, err)
	last := msgs[len(msgs)-1]
	assert.Equal(t, "hello", last.Content)
	assert.Equal(t, "emp-001", last.SenderID)

	select {
	case ev := <-events:
		assert.Equal(t, chat.EventMessage, ev.Name)
		assert.Equal(t, msg, ev.Data)
	default:
		t.Fatal("no live event published")
	}
}

func TestSendMessage_OrphanChat(t *testing.T) {
	svc, _ := setup(t)

	msg, err := svc.SendMessage(as(0), "chat-missing", "anyone?")
	require.NoError(t, err)
	assert.Equal(t, "chat-missing", msg.ChatID)

	_, err = svc.Messages(as(0), "chat-missing")
	assert.ErrorIs(t, err, chat.ErrChatNotFound)
}

func TestMessages_NotParticipant(t *testing.T) {
	svc, _ := setup(t)
	_, err := svc.Messages(as(2), "chat-emp001-tl001")
	assert.ErrorIs(t, err, chat.ErrNotParticipant)
}

func TestSendMessage_Validation(t *testing.T) {
	svc, _ := setup(t)
	_, err := svc.SendMessage(as(0), "chat-team-001", "")
	assert.Error(t, err)
}
