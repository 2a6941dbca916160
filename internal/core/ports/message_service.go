package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// SendMessageInput carries a direct message.
type SendMessageInput struct {
	RecipientID string
	Subject     string
	Body        string
}

// MessageService defines messaging and in-app notification use cases.
type MessageService interface {
	Send(ctx context.Context, actor *domain.User, input SendMessageInput) (*domain.Message, error)
	ListMessages(ctx context.Context, actor *domain.User, limit int) ([]*domain.Message, error)
	MarkMessageRead(ctx context.Context, actor *domain.User, id string) error
	ListNotifications(ctx context.Context, actor *domain.User, limit int) ([]*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, actor *domain.User, id string) error
}
