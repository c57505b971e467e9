package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/repository"
)

type ContactMessageRepo struct{ db *sql.DB }

func NewContactMessageRepo(db *sql.DB) repository.ContactMessageRepository {
	return &ContactMessageRepo{db: db}
}

func (repo *ContactMessageRepo) Get(ctx context.Context, id int64) (*entity.ContactMessage, error) {
	const query = `
SELECT id, name, email, subject, message, read, created_at
FROM contact_messages
WHERE id = $1
LIMIT 1`
	var msg entity.ContactMessage
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.Read, &msg.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &msg, nil
}

func (repo *ContactMessageRepo) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	const query = `
SELECT id, name, email, subject, message, read, created_at
FROM contact_messages
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	messages := make([]*entity.ContactMessage, 0, 50)
	for rows.Next() {
		var msg entity.ContactMessage
		if err := rows.Scan(
			&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.Read, &msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		messages = append(messages, &msg)
	}
	return messages, rows.Err()
}

func (repo *ContactMessageRepo) Create(ctx context.Context, msg *entity.ContactMessage) error {
	const query = `
INSERT INTO contact_messages (name, email, subject, message)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ContactMessageRepo) MarkRead(ctx context.Context, id int64) error {
	const query = `UPDATE contact_messages SET read = TRUE WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("MarkRead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("MarkRead: no rows affected")
	}
	return nil
}

func (repo *ContactMessageRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM contact_messages WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *ContactMessageRepo) CountUnread(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM contact_messages WHERE read = FALSE`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountUnread: %w", err)
	}
	return count, nil
}
