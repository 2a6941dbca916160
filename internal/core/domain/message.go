package domain

import "time"

// Message is a direct message between two users, stored in the document store.
type Message struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	SenderID    string    `json:"sender_id" bson:"sender_id"`
	RecipientID string    `json:"recipient_id" bson:"recipient_id"`
	Subject     string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Body        string    `json:"body" bson:"body"`
	Read        bool      `json:"read" bson:"read"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// NotificationKind tags what a notification is about.
type NotificationKind string

const (
	NotifyApplicationReceived NotificationKind = "application_received"
	NotifyApplicationStatus   NotificationKind = "application_status"
	NotifyMessageReceived     NotificationKind = "message_received"
)

// Notification is an in-app notification delivered by the dispatcher workers.
type Notification struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	RecipientID string            `json:"recipient_id" bson:"recipient_id"`
	Kind        NotificationKind  `json:"kind" bson:"kind"`
	Payload     map[string]string `json:"payload" bson:"payload"`
	Read        bool              `json:"read" bson:"read"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
}
