package chat

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ChatRepository interface {
	Insert(ctx context.Context, msg *model.ChatMessageEntity) (uint64, error)
	ListBySender(ctx context.Context, senderID uint64) ([]model.ChatMessageEntity, error)
	ListByReceiver(ctx context.Context, receiverID uint64) ([]model.ChatMessageEntity, error)
}

func NewChatRepository(conn *sqlx.DB) ChatRepository {
	return &SQL{conn: conn}
}

const (
	insertMessage  = `INSERT INTO chat_message (sender_id, receiver_id, message, timestamp) VALUES (?, ?, ?, ?)`
	listBySender   = `SELECT id, sender_id, receiver_id, message, timestamp FROM chat_message WHERE sender_id = ? ORDER BY id`
	listByReceiver = `SELECT id, sender_id, receiver_id, message, timestamp FROM chat_message WHERE receiver_id = ? ORDER BY id`
)

func (r *SQL) Insert(ctx context.Context, msg *model.ChatMessageEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertMessage, msg.SenderID, msg.ReceiverID, msg.Message, msg.Timestamp)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) ListBySender(ctx context.Context, senderID uint64) ([]model.ChatMessageEntity, error) {
	msgs := make([]model.ChatMessageEntity, 0)
	if err := r.conn.SelectContext(ctx, &msgs, listBySender, senderID); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *SQL) ListByReceiver(ctx context.Context, receiverID uint64) ([]model.ChatMessageEntity, error) {
	msgs := make([]model.ChatMessageEntity, 0)
	if err := r.conn.SelectContext(ctx, &msgs, listByReceiver, receiverID); err != nil {
		return nil, err
	}
	return msgs, nil
}
