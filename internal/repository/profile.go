package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/brightlog/internal/model"
)

type ProfileRepository interface {
	ByNickname(ctx context.Context, nickname string) (*model.UserProfile, error)
	ByUUID(ctx context.Context, userUUID string) (*model.UserProfile, error)
	// Create inserts the profile unless the nickname is already taken.
	// It reports whether a row was written.
	Create(ctx context.Context, profile *model.UserProfile) (bool, error)
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByNickname(ctx context.Context, nickname string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.db.GetContext(ctx, &profile, `SELECT user_uuid, nickname, created_at FROM user_profiles WHERE nickname = $1`, nickname)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) ByUUID(ctx context.Context, userUUID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.db.GetContext(ctx, &profile, `SELECT user_uuid, nickname, created_at FROM user_profiles WHERE user_uuid = $1`, userUUID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *model.UserProfile) (bool, error) {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_uuid, nickname, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (nickname) DO NOTHING
	`, profile.UserUUID, profile.Nickname, profile.CreatedAt)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
