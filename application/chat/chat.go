package chat

import (
	"context"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	chatrepo "github.com/muhammadheryan/marketplace/repository/chat"
	userrepo "github.com/muhammadheryan/marketplace/repository/user"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type ChatApp interface {
	SendMessage(ctx context.Context, senderID uint64, req *model.SendMessageRequest) (*model.SendMessageResponse, error)
	GetConversations(ctx context.Context, participantID uint64) ([]model.Conversation, error)
}

type chatAppImpl struct {
	chatRepo chatrepo.ChatRepository
	userRepo userrepo.UserRepository
}

func NewChatApp(chatRepo chatrepo.ChatRepository, userRepo userrepo.UserRepository) ChatApp {
	return &chatAppImpl{chatRepo: chatRepo, userRepo: userRepo}
}

func (s *chatAppImpl) SendMessage(ctx context.Context, senderID uint64, req *model.SendMessageRequest) (*model.SendMessageResponse, error) {
	if senderID == 0 || req == nil || req.ReceiverID == 0 || req.Message == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	_, err := s.chatRepo.Insert(ctx, &model.ChatMessageEntity{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
		Timestamp:  time.Now().UTC(),
	})
	if err != nil {
		logger.Error("[SendMessage] error chatRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SendMessageResponse{Message: constant.MessageChatSent}, nil
}

func (s *chatAppImpl) GetConversations(ctx context.Context, participantID uint64) ([]model.Conversation, error) {
	if participantID == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	sent, err := s.chatRepo.ListBySender(ctx, participantID)
	if err != nil {
		logger.Error("[GetConversations] error chatRepo.ListBySender", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	received, err := s.chatRepo.ListByReceiver(ctx, participantID)
	if err != nil {
		logger.Error("[GetConversations] error chatRepo.ListByReceiver", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	ids := referencedUserIDs(sent, received)
	if len(ids) == 0 {
		return []model.Conversation{}, nil
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Error("[GetConversations] error userRepo.GetByIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	names := make(map[uint64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FirstName
	}
	for _, id := range ids {
		if _, ok := names[id]; !ok {
			logger.Warn("[GetConversations] unknown user in chat log", zap.Uint64("user_id", id))
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	}

	return aggregateConversations(sent, received, names), nil
}
