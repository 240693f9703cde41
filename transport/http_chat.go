package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/model"
)

// SendMessage handler
// @Summary Send a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SendMessageRequest true "Message"
// @Success 200 {object} model.SendMessageResponse
// @Router /chat [post]
func (s *RestHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	senderID, ok := s.principal(w, r)
	if !ok {
		return
	}

	var req model.SendMessageRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.ChatApp.SendMessage(r.Context(), senderID, &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}

// GetConversations handler
// @Summary Conversations of the logged-in user
// @Description receiver_name is only set on conversations the user opened
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Conversation
// @Router /chat [get]
func (s *RestHandler) GetConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.principal(w, r)
	if !ok {
		return
	}

	res, err := s.ChatApp.GetConversations(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}
