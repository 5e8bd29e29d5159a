package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/grofast/portal-backend-go/internal/domain/chat"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
	"github.com/grofast/portal-backend-go/internal/pkg/jwt"
	"github.com/grofast/portal-backend-go/internal/pkg/sse"
)

const streamKeepalive = 30 * time.Second

type ChatHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Messages(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
	StreamToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type chatHandlerImpl struct {
	chatService chat.ChatService
	jwtService  jwt.Service
	hub         *sse.Hub
}

func NewChatHandler(chatService chat.ChatService, jwtService jwt.Service, hub *sse.Hub) ChatHandler {
	return &chatHandlerImpl{
		chatService: chatService,
		jwtService:  jwtService,
		hub:         hub,
	}
}

// List implements ChatHandler.
func (h *chatHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	chats, err := h.chatService.Chats(r.Context())
	if err != nil {
		slog.Error("Chats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, chats, &response.Meta{Total: len(chats)})
}

// Messages implements ChatHandler.
func (h *chatHandlerImpl) Messages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chatService.Messages(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Messages service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, messages, &response.Meta{Total: len(messages)})
}

// Send implements ChatHandler.
func (h *chatHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	var req chat.SendMessageRequest
	if !decodeJSON(w, r, &req, "SendMessage") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	message, err := h.chatService.SendMessage(r.Context(), chi.URLParam(r, "id"), req.Content)
	if err != nil {
		slog.Error("SendMessage service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Message sent", message)
}

// StreamToken implements ChatHandler. EventSource cannot send headers, so
// the stream authenticates with this short-lived query token instead.
func (h *chatHandlerImpl) StreamToken(w http.ResponseWriter, r *http.Request) {
	identity, err := user.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresIn, err := h.jwtService.GenerateStreamToken(identity.ID)
	if err != nil {
		slog.Error("GenerateStreamToken error", "error", err)
		response.InternalServerError(w, "failed to issue stream token")
		return
	}
	response.Success(w, chat.StreamTokenResponse{Token: token, ExpiresIn: expiresIn})
}

// Stream implements ChatHandler.
func (h *chatHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}
	userID, err := h.jwtService.ValidateStreamToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cancel := h.hub.Subscribe(userID)
	defer cancel()

	sse.Event{Name: "connected", Data: map[string]string{"status": "connected", "user_id": userID}}.WriteTo(w)
	flusher.Flush()

	keepalive := time.NewTicker(streamKeepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if _, err := event.WriteTo(w); err != nil {
				slog.Warn("chat stream write failed", "user_id", userID, "error", err)
				continue
			}
			flusher.Flush()
		case t := <-keepalive.C:
			sse.Event{Name: "ping", Data: map[string]int64{"timestamp": t.Unix()}}.WriteTo(w)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}
