package repository

import (
	"context"

	"portfolio-backend/internal/domain/entity"
)

type ContactMessageRepository interface {
	Get(ctx context.Context, id int64) (*entity.ContactMessage, error)
	// List retrieves messages ordered by created_at DESC, newest first.
	List(ctx context.Context) ([]*entity.ContactMessage, error)
	Create(ctx context.Context, msg *entity.ContactMessage) error
	// MarkRead flags a message as read. Marking an already-read message is a no-op.
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	CountUnread(ctx context.Context) (int64, error)
}
