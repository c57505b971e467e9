// Package contact provides use cases for the contact form: accepting
// submissions, notifying site owners, and managing the message inbox.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/observability/metrics"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/usecase/notify"
)

// ErrMessageNotFound is returned when the requested message does not exist.
var ErrMessageNotFound = errors.New("contact message not found")

// SubmitInput carries a contact form submission.
type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Service handles contact message submission and inbox management.
type Service struct {
	Repo     repository.ContactMessageRepository
	Notifier notify.Service
}

// NewService creates a contact service. Notifier may be nil, in which case
// submissions are stored without dispatching notifications.
func NewService(repo repository.ContactMessageRepository, notifier notify.Service) *Service {
	return &Service{Repo: repo, Notifier: notifier}
}

// Submit validates and stores a contact form submission, then notifies
// configured channels. Notification failures never fail the submission.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*entity.ContactMessage, error) {
	msg := &entity.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := msg.Validate(); err != nil {
		metrics.RecordContactMessage(false)
		return nil, fmt.Errorf("Submit: %w", err)
	}

	if err := s.Repo.Create(ctx, msg); err != nil {
		metrics.RecordContactMessage(false)
		return nil, fmt.Errorf("Submit: %w", err)
	}
	metrics.RecordContactMessage(true)

	slog.Info("Contact message received",
		slog.Int64("message_id", msg.ID),
		slog.String("subject", msg.Subject))

	if s.Notifier != nil {
		if err := s.Notifier.NotifyContactMessage(ctx, msg); err != nil {
			slog.Warn("Failed to dispatch contact notification",
				slog.Int64("message_id", msg.ID),
				slog.Any("error", err))
		}
	}

	return msg, nil
}

// Get retrieves a single message by ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.ContactMessage, error) {
	msg, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	return msg, nil
}

// List retrieves all messages, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	msgs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return msgs, nil
}

// MarkRead flags a message as read.
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	msg, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("MarkRead: %w", err)
	}
	if msg == nil {
		return ErrMessageNotFound
	}

	if err := s.Repo.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("MarkRead: %w", err)
	}
	return nil
}

// Delete removes a message.
func (s *Service) Delete(ctx context.Context, id int64) error {
	msg, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if msg == nil {
		return ErrMessageNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

// CountUnread returns the number of unread messages.
func (s *Service) CountUnread(ctx context.Context) (int64, error) {
	count, err := s.Repo.CountUnread(ctx)
	if err != nil {
		return 0, fmt.Errorf("CountUnread: %w", err)
	}
	return count, nil
}
