package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/templui/brightlog/internal/model"
	"github.com/templui/brightlog/internal/supabase"
)

// Supabase-backed repositories. They talk to the same three tables as the
// sql repositories, through the PostgREST API instead of a database driver.

const (
	profileColumns = "user_uuid,nickname,created_at"
	goalsColumns   = "user_uuid,nickname,body_mind,career,relationships,others,updated_at"
	logColumns     = "id,user_uuid,nickname,date,entry,created_at"
)

type profileRow struct {
	UserUUID  string             `json:"user_uuid"`
	Nickname  string             `json:"nickname"`
	CreatedAt supabase.Timestamp `json:"created_at"`
}

func (row profileRow) model() *model.UserProfile {
	return &model.UserProfile{
		UserUUID:  row.UserUUID,
		Nickname:  row.Nickname,
		CreatedAt: row.CreatedAt.Time,
	}
}

type supabaseProfileRepository struct {
	client *supabase.Client
}

func NewSupabaseProfileRepository(client *supabase.Client) ProfileRepository {
	return &supabaseProfileRepository{client: client}
}

func (r *supabaseProfileRepository) ByNickname(ctx context.Context, nickname string) (*model.UserProfile, error) {
	return r.first(ctx, "nickname", nickname)
}

func (r *supabaseProfileRepository) ByUUID(ctx context.Context, userUUID string) (*model.UserProfile, error) {
	return r.first(ctx, "user_uuid", userUUID)
}

func (r *supabaseProfileRepository) first(ctx context.Context, column, value string) (*model.UserProfile, error) {
	resp, err := r.client.From("user_profiles").
		Select(profileColumns).
		Eq(column, value).
		Limit(1).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	var rows []profileRow
	err = resp.JSON(&rows)
	if err != nil {
		return nil, fmt.Errorf("decode user_profiles: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrProfileNotFound
	}

	return rows[0].model(), nil
}

func (r *supabaseProfileRepository) Create(ctx context.Context, profile *model.UserProfile) (bool, error) {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	resp, err := r.client.From("user_profiles").
		Upsert("nickname", true).
		ExecuteInsert(ctx, profileRow{
			UserUUID:  profile.UserUUID,
			Nickname:  profile.Nickname,
			CreatedAt: supabase.Timestamp{Time: profile.CreatedAt},
		})
	if err != nil {
		return false, err
	}

	// Ignored duplicates come back as an empty representation.
	var written []profileRow
	err = resp.JSON(&written)
	if err != nil {
		return false, fmt.Errorf("decode user_profiles: %w", err)
	}

	return len(written) > 0, nil
}

type goalsRow struct {
	UserUUID  string             `json:"user_uuid"`
	Nickname  string             `json:"nickname"`
	UpdatedAt supabase.Timestamp `json:"updated_at"`
	model.Goals
}

type supabaseGoalsRepository struct {
	client *supabase.Client
}

func NewSupabaseGoalsRepository(client *supabase.Client) GoalsRepository {
	return &supabaseGoalsRepository{client: client}
}

func (r *supabaseGoalsRepository) ByUserUUID(ctx context.Context, userUUID string) (*model.GoalsRecord, error) {
	resp, err := r.client.From("goals").
		Select(goalsColumns).
		Eq("user_uuid", userUUID).
		Limit(1).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	var rows []goalsRow
	err = resp.JSON(&rows)
	if err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrGoalsNotFound
	}

	return &model.GoalsRecord{
		UserUUID:  rows[0].UserUUID,
		Nickname:  rows[0].Nickname,
		UpdatedAt: rows[0].UpdatedAt.Time,
		Goals:     rows[0].Goals,
	}, nil
}

func (r *supabaseGoalsRepository) Upsert(ctx context.Context, record *model.GoalsRecord) error {
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	resp, err := r.client.From("goals").
		Upsert("user_uuid", false).
		ExecuteInsert(ctx, goalsRow{
			UserUUID:  record.UserUUID,
			Nickname:  record.Nickname,
			UpdatedAt: supabase.Timestamp{Time: record.UpdatedAt},
			Goals:     record.Goals,
		})
	if err != nil {
		return err
	}

	return resp.Err()
}

// logRow mirrors logs with the DATE column as PostgREST renders it.
type logRow struct {
	ID        string             `json:"id"`
	UserUUID  string             `json:"user_uuid"`
	Nickname  string             `json:"nickname"`
	Date      string             `json:"date"`
	Entry     string             `json:"entry"`
	CreatedAt supabase.Timestamp `json:"created_at"`
}

type supabaseLogRepository struct {
	client *supabase.Client
}

func NewSupabaseLogRepository(client *supabase.Client) LogRepository {
	return &supabaseLogRepository{client: client}
}

func (r *supabaseLogRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	resp, err := r.client.From("logs").ExecuteInsert(ctx, logRow{
		ID:        entry.ID,
		UserUUID:  entry.UserUUID,
		Nickname:  entry.Nickname,
		Date:      entry.Date.Format(model.DateLayout),
		Entry:     entry.Entry,
		CreatedAt: supabase.Timestamp{Time: entry.CreatedAt},
	})
	if err != nil {
		return err
	}

	return resp.Err()
}

func (r *supabaseLogRepository) Recent(ctx context.Context, userUUID string, limit int) ([]*model.LogEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit: %d", limit)
	}

	resp, err := r.client.From("logs").
		Select(logColumns).
		Eq("user_uuid", userUUID).
		Order("date", false).
		Order("created_at", false).
		Limit(limit).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	var rows []logRow
	err = resp.JSON(&rows)
	if err != nil {
		return nil, fmt.Errorf("decode logs: %w", err)
	}

	entries := make([]*model.LogEntry, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(model.DateLayout, row.Date)
		if err != nil {
			return nil, fmt.Errorf("parse log date %q: %w", row.Date, err)
		}
		entries = append(entries, &model.LogEntry{
			ID:        row.ID,
			UserUUID:  row.UserUUID,
			Nickname:  row.Nickname,
			Date:      date,
			Entry:     row.Entry,
			CreatedAt: row.CreatedAt.Time,
		})
	}

	return entries, nil
}
