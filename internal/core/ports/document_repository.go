package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// CVRepository stores CV documents in the document store.
type CVRepository interface {
	// Upsert stores the document keyed by owner and returns its id.
	Upsert(ctx context.Context, doc *domain.CVDocument) (string, error)
	FindByOwner(ctx context.Context, ownerID string) (*domain.CVDocument, error)
}

// MessageRepository stores direct messages.
type MessageRepository interface {
	Insert(ctx context.Context, msg *domain.Message) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	// ListForUser returns messages sent or received by userID, newest first.
	ListForUser(ctx context.Context, userID string, limit int) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id string) error
}

// NotificationRepository stores in-app notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// MatchRepository stores LLM match assessments.
type MatchRepository interface {
	Insert(ctx context.Context, a *domain.MatchAssessment) (string, error)
	ListForCandidate(ctx context.Context, candidateID string, limit int) ([]*domain.MatchAssessment, error)
}
