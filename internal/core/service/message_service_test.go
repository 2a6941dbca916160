package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

type stubMessageRepo struct {
	messages map[string]*domain.Message
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{messages: make(map[string]*domain.Message)}
}

func (r *stubMessageRepo) Insert(_ context.Context, msg *domain.Message) (string, error) {
	msg.ID = fmt.Sprintf("msg-%d", len(r.messages)+1)
	clone := *msg
	r.messages[msg.ID] = &clone
	return msg.ID, nil
}

func (r *stubMessageRepo) FindByID(_ context.Context, id string) (*domain.Message, error) {
	m, ok := r.messages[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMessageRepo) ListForUser(_ context.Context, userID string, _ int) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.messages {
		if m.SenderID == userID || m.RecipientID == userID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubMessageRepo) MarkRead(_ context.Context, id string) error {
	m, ok := r.messages[id]
	if !ok {
		return domain.ErrMessageNotFound
	}
	m.Read = true
	return nil
}

type stubNotificationRepo struct {
	notifications map[string]*domain.Notification
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{notifications: make(map[string]*domain.Notification)}
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) (string, error) {
	n.ID = fmt.Sprintf("ntf-%d", len(r.notifications)+1)
	clone := *n
	r.notifications[n.ID] = &clone
	return n.ID, nil
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, domain.ErrNotifyNotFound
	}
	clone := *n
	return &clone, nil
}

func (r *stubNotificationRepo) ListForUser(_ context.Context, userID string, _ int) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range r.notifications {
		if n.RecipientID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) error {
	n, ok := r.notifications[id]
	if !ok {
		return domain.ErrNotifyNotFound
	}
	n.Read = true
	return nil
}

func newMessageSvc(f *fixture, messages *stubMessageRepo, notifications *stubNotificationRepo) *MessageService {
	return NewMessageService(messages, notifications, f.users, f.notifier)
}

func TestMessageService_Send(t *testing.T) {
	f := newFixture()
	messages := newStubMessageRepo()
	svc := newMessageSvc(f, messages, newStubNotificationRepo())

	sender := f.addUser("u-sender", domain.RoleConsultant, true)
	recipient := f.addUser("u-recv", domain.RoleCandidate, true)

	msg, err := svc.Send(context.Background(), sender, ports.SendMessageInput{
		RecipientID: recipient.ID,
		Subject:     " Interview ",
		Body:        "Are you available Tuesday?",
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if msg.Subject != "Interview" {
		t.Fatalf("expected trimmed subject, got %q", msg.Subject)
	}

	// The recipient is notified asynchronously.
	if len(f.notifier.events) != 1 || f.notifier.events[0].Kind != domain.NotifyMessageReceived {
		t.Fatalf("expected message notification, got %+v", f.notifier.events)
	}
}

func TestMessageService_Send_Rejections(t *testing.T) {
	f := newFixture()
	svc := newMessageSvc(f, newStubMessageRepo(), newStubNotificationRepo())

	sender := f.addUser("u-sender", domain.RoleCandidate, true)

	// Messaging yourself is rejected.
	if _, err := svc.Send(context.Background(), sender, ports.SendMessageInput{RecipientID: sender.ID}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for self-message, got %v", err)
	}

	// Unknown recipient surfaces as not-found.
	if _, err := svc.Send(context.Background(), sender, ports.SendMessageInput{RecipientID: "ghost"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	// Deactivated recipients look identical to unknown ones.
	off := f.addUser("u-off", domain.RoleCandidate, false)
	if _, err := svc.Send(context.Background(), sender, ports.SendMessageInput{RecipientID: off.ID}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for inactive recipient, got %v", err)
	}
}

func TestMessageService_MarkMessageRead_RecipientOnly(t *testing.T) {
	f := newFixture()
	messages := newStubMessageRepo()
	svc := newMessageSvc(f, messages, newStubNotificationRepo())

	sender := f.addUser("u-sender", domain.RoleCandidate, true)
	recipient := f.addUser("u-recv", domain.RoleEmployer, true)

	msg, err := svc.Send(context.Background(), sender, ports.SendMessageInput{RecipientID: recipient.ID, Body: "hi"})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	// The sender cannot mark it read; the id does not leak either way.
	if err := svc.MarkMessageRead(context.Background(), sender, msg.ID); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound for sender, got %v", err)
	}
	if err := svc.MarkMessageRead(context.Background(), recipient, msg.ID); err != nil {
		t.Fatalf("recipient mark read failed: %v", err)
	}
	if !messages.messages[msg.ID].Read {
		t.Fatalf("expected message marked read")
	}
}

func TestMessageService_Notifications(t *testing.T) {
	f := newFixture()
	notifications := newStubNotificationRepo()
	svc := newMessageSvc(f, newStubMessageRepo(), notifications)

	user := f.addUser("u-1", domain.RoleCandidate, true)
	other := f.addUser("u-2", domain.RoleCandidate, true)

	id, _ := notifications.Insert(context.Background(), &domain.Notification{
		RecipientID: user.ID,
		Kind:        domain.NotifyApplicationStatus,
	})

	got, err := svc.ListNotifications(context.Background(), user, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}

	// Another user cannot mark it read.
	if err := svc.MarkNotificationRead(context.Background(), other, id); !errors.Is(err, domain.ErrNotifyNotFound) {
		t.Fatalf("expected ErrNotifyNotFound, got %v", err)
	}
	if err := svc.MarkNotificationRead(context.Background(), user, id); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
}
