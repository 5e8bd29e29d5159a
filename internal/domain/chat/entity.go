package chat

import "time"

type Type string

const (
	TypeDirect Type = "direct"
	TypeGroup  Type = "group"
)

type Message struct {
	ID         string    `json:"id"`
	ChatID     string    `json:"chatId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

type Chat struct {
	ID              string     `json:"id"`
	Type            Type       `json:"type"`
	Name            string     `json:"name,omitempty"`
	Participants    []string   `json:"participants"`
	LastMessage     string     `json:"lastMessage"`
	LastMessageTime *time.Time `json:"lastMessageTime"`
	UnreadCount     int        `json:"unreadCount"`
}

func (c Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// EventMessage is the live stream event name for a new message.
const EventMessage = "chat.message"
