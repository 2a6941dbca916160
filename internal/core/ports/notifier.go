package ports

import "github.com/talentbridge/recruitment-crm/internal/core/domain"

// NotificationEvent is the unit of work handed to the dispatcher workers.
type NotificationEvent struct {
	RecipientID string
	Kind        domain.NotificationKind
	Payload     map[string]string
}

// Notifier enqueues notification events for asynchronous delivery.
type Notifier interface {
	Enqueue(event NotificationEvent)
}
