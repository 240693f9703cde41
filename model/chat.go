package model

import (
	"time"

	"github.com/muhammadheryan/marketplace/constant"
)

// ChatMessageEntity represents the chat_message table entity
type ChatMessageEntity struct {
	ID         uint64    `db:"id"`
	SenderID   uint64    `db:"sender_id"`
	ReceiverID uint64    `db:"receiver_id"`
	Message    string    `db:"message"`
	Timestamp  time.Time `db:"timestamp"`
}

type SendMessageRequest struct {
	ReceiverID uint64 `json:"receiver_id" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

type SendMessageResponse struct {
	Message string `json:"message"`
}

type ConversationMessage struct {
	SenderID  uint64                    `json:"sender_id"`
	FirstName string                    `json:"firstName"`
	Message   string                    `json:"message"`
	Timestamp time.Time                 `json:"timestamp"`
	Type      constant.MessageDirection `json:"type"`
}

// Conversation groups messages exchanged with one counterpart. ReceiverName is
// only present when the conversation was opened by a message the participant sent.
type Conversation struct {
	ReceiverID   uint64                `json:"receiver_id"`
	ReceiverName *string               `json:"receiver_name,omitempty"`
	Messages     []ConversationMessage `json:"messages"`
}
