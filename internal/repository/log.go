package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/templui/brightlog/internal/model"
)

type LogRepository interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	// Recent returns up to limit entries, newest date first. Entries on the
	// same date are ordered by insertion time, newest first.
	Recent(ctx context.Context, userUUID string, limit int) ([]*model.LogEntry, error)
}

type logRepository struct {
	db *sqlx.DB
}

func NewLogRepository(db *sqlx.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO logs (id, user_uuid, nickname, date, entry, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserUUID,
		entry.Nickname,
		entry.Date,
		entry.Entry,
		entry.CreatedAt,
	)

	return err
}

func (r *logRepository) Recent(ctx context.Context, userUUID string, limit int) ([]*model.LogEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit: %d", limit)
	}

	var entries []*model.LogEntry
	query := `SELECT id, user_uuid, nickname, date, entry, created_at
	          FROM logs WHERE user_uuid = $1
	          ORDER BY date DESC, created_at DESC
	          LIMIT $2`

	err := r.db.SelectContext(ctx, &entries, query, userUUID, limit)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
