package chat

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice uint64 = 1
	bob   uint64 = 2
	carol uint64 = 3
)

var (
	names = map[uint64]string{alice: "Alice", bob: "Bob", carol: "Carol"}
	t0    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func message(id, from, to uint64, text string) model.ChatMessageEntity {
	return model.ChatMessageEntity{
		ID:         id,
		SenderID:   from,
		ReceiverID: to,
		Message:    text,
		Timestamp:  t0.Add(time.Duration(id) * time.Minute),
	}
}

func TestAggregateConversations_SentScanLabelsCounterpart(t *testing.T) {
	aToB := message(1, alice, bob, "is the lamp still available?")
	bToA := message(2, bob, alice, "yes")

	got := aggregateConversations([]model.ChatMessageEntity{aToB}, []model.ChatMessageEntity{bToA}, names)

	require.Len(t, got, 1)
	conv := got[0]
	assert.Equal(t, bob, conv.ReceiverID)
	require.NotNil(t, conv.ReceiverName)
	assert.Equal(t, "Bob", *conv.ReceiverName)

	require.Len(t, conv.Messages, 2)
	assert.Equal(t, model.ConversationMessage{
		SenderID:  alice,
		FirstName: "Alice",
		Message:   "is the lamp still available?",
		Timestamp: aToB.Timestamp,
		Type:      constant.MessageSent,
	}, conv.Messages[0])
	assert.Equal(t, model.ConversationMessage{
		SenderID:  bob,
		FirstName: "Bob",
		Message:   "yes",
		Timestamp: bToA.Timestamp,
		Type:      constant.MessageReceived,
	}, conv.Messages[1])
}

func TestAggregateConversations_ReceivedScanOmitsLabel(t *testing.T) {
	aToB := message(1, alice, bob, "is the lamp still available?")

	got := aggregateConversations(nil, []model.ChatMessageEntity{aToB}, names)

	require.Len(t, got, 1)
	assert.Equal(t, alice, got[0].ReceiverID)
	assert.Nil(t, got[0].ReceiverName)
	require.Len(t, got[0].Messages, 1)
	assert.Equal(t, constant.MessageReceived, got[0].Messages[0].Type)
	assert.Equal(t, "Alice", got[0].Messages[0].FirstName)

	raw, err := json.Marshal(got[0])
	require.NoError(t, err)
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "receiver_name")
	assert.Contains(t, fields, "receiver_id")
}

func TestAggregateConversations_EncounterOrder(t *testing.T) {
	sent := []model.ChatMessageEntity{
		message(1, bob, carol, "first to carol"),
		message(4, bob, carol, "second to carol"),
	}
	received := []model.ChatMessageEntity{
		message(2, alice, bob, "hello from alice"),
		message(3, carol, bob, "reply from carol"),
		message(5, alice, bob, "again from alice"),
	}

	got := aggregateConversations(sent, received, names)

	require.Len(t, got, 2)

	assert.Equal(t, carol, got[0].ReceiverID)
	require.NotNil(t, got[0].ReceiverName)
	assert.Equal(t, "Carol", *got[0].ReceiverName)
	texts := make([]string, 0, len(got[0].Messages))
	for _, m := range got[0].Messages {
		texts = append(texts, m.Message)
	}
	// sent entries come before received ones regardless of timestamps
	assert.Equal(t, []string{"first to carol", "second to carol", "reply from carol"}, texts)

	assert.Equal(t, alice, got[1].ReceiverID)
	assert.Nil(t, got[1].ReceiverName)
	require.Len(t, got[1].Messages, 2)
	assert.Equal(t, "hello from alice", got[1].Messages[0].Message)
	assert.Equal(t, "again from alice", got[1].Messages[1].Message)
}

func TestAggregateConversations_Empty(t *testing.T) {
	got := aggregateConversations(nil, nil, names)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReferencedUserIDs(t *testing.T) {
	sent := []model.ChatMessageEntity{
		message(1, bob, carol, "a"),
		message(2, bob, alice, "b"),
	}
	received := []model.ChatMessageEntity{
		message(3, carol, bob, "c"),
		message(4, alice, bob, "d"),
	}

	assert.Equal(t, []uint64{bob, carol, alice}, referencedUserIDs(sent, received))
	assert.Equal(t, []uint64{alice}, referencedUserIDs(nil, received[1:]))
	assert.Empty(t, referencedUserIDs(nil, nil))
}
