package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// MessageService implements direct messaging and in-app notifications.
type MessageService struct {
	messages      ports.MessageRepository
	notifications ports.NotificationRepository
	users         ports.UserRepository
	notifier      ports.Notifier
}

func NewMessageService(
	messages ports.MessageRepository,
	notifications ports.NotificationRepository,
	users ports.UserRepository,
	notifier ports.Notifier,
) *MessageService {
	return &MessageService{
		messages:      messages,
		notifications: notifications,
		users:         users,
		notifier:      notifier,
	}
}

// Send delivers a direct message to another user. The recipient must exist
// and be active; an unknown recipient surfaces as not-found.
func (s *MessageService) Send(ctx context.Context, actor *domain.User, input ports.SendMessageInput) (*domain.Message, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if input.RecipientID == actor.ID {
		return nil, domain.ErrForbidden
	}

	recipient, err := s.users.FindByID(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}
	if !recipient.Active {
		return nil, domain.ErrUserNotFound
	}

	msg := &domain.Message{
		SenderID:    actor.ID,
		RecipientID: recipient.ID,
		Subject:     strings.TrimSpace(input.Subject),
		Body:        input.Body,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.messages.Insert(ctx, msg); err != nil {
		return nil, err
	}

	s.notifier.Enqueue(ports.NotificationEvent{
		RecipientID: recipient.ID,
		Kind:        domain.NotifyMessageReceived,
		Payload: map[string]string{
			"message_id": msg.ID,
			"sender_id":  actor.ID,
		},
	})
	return msg, nil
}

func (s *MessageService) ListMessages(ctx context.Context, actor *domain.User, limit int) ([]*domain.Message, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	_, limit = normalizePage(1, limit)
	return s.messages.ListForUser(ctx, actor.ID, limit)
}

// MarkMessageRead marks a message read. Only the recipient may; anyone else
// gets not-found so message ids cannot be probed.
func (s *MessageService) MarkMessageRead(ctx context.Context, actor *domain.User, id string) error {
	if err := access.RequireActive(actor); err != nil {
		return err
	}

	msg, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if msg.RecipientID != actor.ID {
		return domain.ErrMessageNotFound
	}
	return s.messages.MarkRead(ctx, id)
}

func (s *MessageService) ListNotifications(ctx context.Context, actor *domain.User, limit int) ([]*domain.Notification, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	_, limit = normalizePage(1, limit)
	return s.notifications.ListForUser(ctx, actor.ID, limit)
}

func (s *MessageService) MarkNotificationRead(ctx context.Context, actor *domain.User, id string) error {
	if err := access.RequireActive(actor); err != nil {
		return err
	}

	n, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotifyNotFound) {
			return domain.ErrNotifyNotFound
		}
		return err
	}
	if n.RecipientID != actor.ID {
		return domain.ErrNotifyNotFound
	}
	return s.notifications.MarkRead(ctx, id)
}
