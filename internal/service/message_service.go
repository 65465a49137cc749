package service

import (
	"context"
	"fmt"
	"time"

	"foodigo/internal/domain"

	"github.com/google/uuid"
)

type MessageService struct {
	messages MessageRepository
}

func NewMessageService(messages MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Send stores a support message. UserID is empty for guests.
func (s *MessageService) Send(ctx context.Context, message *domain.Message) error {
	if message.Name == "" || message.Email == "" || message.Subject == "" || message.Message == "" {
		return invalid("Name, email, subject and message are required")
	}
	message.ID = uuid.NewString()
	message.IsRead = false
	message.Replies = []domain.Reply{}
	message.Timestamp = time.Now()
	if err := s.messages.CreateMessage(ctx, message); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

func (s *MessageService) ListForUser(ctx context.Context, userID string) ([]domain.Message, error) {
	return s.messages.ListUserMessages(ctx, userID)
}

func (s *MessageService) List(ctx context.Context) ([]domain.Message, error) {
	return s.messages.ListMessages(ctx)
}

func (s *MessageService) CountUnread(ctx context.Context) (int, error) {
	return s.messages.CountUnreadMessages(ctx)
}

func (s *MessageService) MarkRead(ctx context.Context, id string) error {
	rows, err := s.messages.MarkMessageRead(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	if rows == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// Reply appends an admin reply and marks the message read.
func (s *MessageService) Reply(ctx context.Context, adminID, id, text string) error {
	if text == "" {
		return invalid("Reply text is required")
	}
	rows, err := s.messages.AddReply(ctx, id, domain.Reply{
		AdminID:   adminID,
		ReplyText: text,
		Timestamp: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to save reply: %w", err)
	}
	if rows == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	rows, err := s.messages.DeleteMessage(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if rows == 0 {
		return ErrMessageNotFound
	}
	return nil
}

var _ MessageServiceInterface = (*MessageService)(nil)
