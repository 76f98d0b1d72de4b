package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/templui/brightlog/internal/model"
	"github.com/templui/brightlog/internal/repository"
)

type GoalsService struct {
	repo repository.GoalsRepository
}

func NewGoalsService(repo repository.GoalsRepository) *GoalsService {
	return &GoalsService{repo: repo}
}

// Load returns the user's goals, or four empty fields if none were saved.
func (s *GoalsService) Load(ctx context.Context, userUUID string) (model.Goals, error) {
	record, err := s.repo.ByUserUUID(ctx, userUUID)
	if errors.Is(err, repository.ErrGoalsNotFound) {
		return model.Goals{}, nil
	}
	if err != nil {
		return model.Goals{}, fmt.Errorf("failed to load goals: %w", err)
	}
	return record.Goals, nil
}

// Save writes all four fields at once.
func (s *GoalsService) Save(ctx context.Context, userUUID, nickname string, goals model.Goals) error {
	err := s.repo.Upsert(ctx, &model.GoalsRecord{
		UserUUID: userUUID,
		Nickname: nickname,
		Goals:    goals,
	})
	if err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	return nil
}
