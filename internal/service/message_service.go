package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kuvica/kuvica-api/internal/mappers"
	"github.com/kuvica/kuvica-api/internal/models"
	"github.com/kuvica/kuvica-api/internal/realtime"
	"github.com/kuvica/kuvica-api/internal/repository"
)

type SendMessageInput struct {
	Content      string
	SenderID     uuid.UUID
	RecipientID  uuid.UUID
	IsFromClient bool
}

type MessageService struct {
	repo     repository.MessageRepository
	notifier realtime.Notifier
}

func NewMessageService(repo repository.MessageRepository, notifier realtime.Notifier) *MessageService {
	return &MessageService{repo: repo, notifier: notifier}
}

// Send persists the message, then pushes a receive_message event to the
// recipient's room. The push is best-effort and cannot fail the send.
func (s *MessageService) Send(ctx context.Context, in SendMessageInput) (*mappers.MessageResponse, error) {
	msg := &models.Message{
		Content:      in.Content,
		SenderID:     in.SenderID,
		RecipientID:  in.RecipientID,
		IsFromClient: in.IsFromClient,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	resp := mappers.ToMessageResponse(msg)
	s.notifier.NotifyUser(ctx, in.RecipientID, map[string]interface{}{
		"type":    "receive_message",
		"message": resp,
	})
	return resp, nil
}

// Conversation returns the full exchange between two users, either party
// as sender, oldest first.
func (s *MessageService) Conversation(ctx context.Context, a, b uuid.UUID) ([]mappers.MessageResponse, error) {
	msgs, err := s.repo.FindConversation(ctx, a, b)
	if err != nil {
		return nil, err
	}
	return mappers.ToMessageResponses(msgs), nil
}

func (s *MessageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
