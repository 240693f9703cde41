package chat

import (
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
)

// conversationOrigin records which scan opened a conversation. Only conversations
// opened by the participant's own sent message carry the counterpart's name.
type conversationOrigin int

const (
	openedBySent conversationOrigin = iota
	openedByReceived
)

type conversationBuilder struct {
	counterpartID   uint64
	origin          conversationOrigin
	counterpartName string
	messages        []model.ConversationMessage
}

func (b *conversationBuilder) build() model.Conversation {
	conv := model.Conversation{
		ReceiverID: b.counterpartID,
		Messages:   b.messages,
	}
	if b.origin == openedBySent {
		name := b.counterpartName
		conv.ReceiverName = &name
	}
	return conv
}

func entry(msg model.ChatMessageEntity, senderName string, dir constant.MessageDirection) model.ConversationMessage {
	return model.ConversationMessage{
		SenderID:  msg.SenderID,
		FirstName: senderName,
		Message:   msg.Message,
		Timestamp: msg.Timestamp,
		Type:      dir,
	}
}

// aggregateConversations groups a participant's messages by counterpart. The sent
// set is scanned before the received set and messages keep encounter order, so a
// conversation whose first seen message was received has no counterpart name.
// names must hold the first name of every sender and of every receiver in sent.
func aggregateConversations(sent, received []model.ChatMessageEntity, names map[uint64]string) []model.Conversation {
	builders := make([]*conversationBuilder, 0)
	byCounterpart := make(map[uint64]*conversationBuilder)

	for _, msg := range sent {
		e := entry(msg, names[msg.SenderID], constant.MessageSent)
		if b, ok := byCounterpart[msg.ReceiverID]; ok {
			b.messages = append(b.messages, e)
			continue
		}
		b := &conversationBuilder{
			counterpartID:   msg.ReceiverID,
			origin:          openedBySent,
			counterpartName: names[msg.ReceiverID],
			messages:        []model.ConversationMessage{e},
		}
		byCounterpart[msg.ReceiverID] = b
		builders = append(builders, b)
	}

	for _, msg := range received {
		e := entry(msg, names[msg.SenderID], constant.MessageReceived)
		if b, ok := byCounterpart[msg.SenderID]; ok {
			b.messages = append(b.messages, e)
			continue
		}
		b := &conversationBuilder{
			counterpartID: msg.SenderID,
			origin:        openedByReceived,
			messages:      []model.ConversationMessage{e},
		}
		byCounterpart[msg.SenderID] = b
		builders = append(builders, b)
	}

	conversations := make([]model.Conversation, 0, len(builders))
	for _, b := range builders {
		conversations = append(conversations, b.build())
	}
	return conversations
}

// referencedUserIDs lists, without duplicates and in first-seen order, the users
// whose names aggregateConversations will read.
func referencedUserIDs(sent, received []model.ChatMessageEntity) []uint64 {
	seen := make(map[uint64]struct{})
	ids := make([]uint64, 0)
	add := func(id uint64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, msg := range sent {
		add(msg.SenderID)
		add(msg.ReceiverID)
	}
	for _, msg := range received {
		add(msg.SenderID)
	}
	return ids
}
