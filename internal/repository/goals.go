package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/brightlog/internal/model"
)

type GoalsRepository interface {
	ByUserUUID(ctx context.Context, userUUID string) (*model.GoalsRecord, error)
	// Upsert writes all four goal fields and the nickname, inserting the
	// row on first save and updating it in place afterwards.
	Upsert(ctx context.Context, record *model.GoalsRecord) error
}

type goalsRepository struct {
	db *sqlx.DB
}

func NewGoalsRepository(db *sqlx.DB) GoalsRepository {
	return &goalsRepository{db: db}
}

func (r *goalsRepository) ByUserUUID(ctx context.Context, userUUID string) (*model.GoalsRecord, error) {
	record := &model.GoalsRecord{}
	query := `SELECT user_uuid, nickname, body_mind, career, relationships, others, updated_at
	          FROM goals WHERE user_uuid = $1`

	err := r.db.GetContext(ctx, record, query, userUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalsNotFound
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *goalsRepository) Upsert(ctx context.Context, record *model.GoalsRecord) error {
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	query := `INSERT INTO goals (user_uuid, nickname, body_mind, career, relationships, others, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (user_uuid) DO UPDATE
	          SET nickname = excluded.nickname,
	              body_mind = excluded.body_mind,
	              career = excluded.career,
	              relationships = excluded.relationships,
	              others = excluded.others,
	              updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		record.UserUUID,
		record.Nickname,
		record.BodyMind,
		record.Career,
		record.Relationships,
		record.Others,
		record.UpdatedAt,
	)

	return err
}
