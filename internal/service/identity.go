package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/templui/brightlog/internal/model"
	"github.com/templui/brightlog/internal/repository"
	"github.com/templui/brightlog/internal/validation"
)

type IdentityService struct {
	profileRepo repository.ProfileRepository
	newID       func() string
}

func NewIdentityService(profileRepo repository.ProfileRepository) *IdentityService {
	return &IdentityService{
		profileRepo: profileRepo,
		newID:       func() string { return uuid.New().String() },
	}
}

// Resolve returns the profile for a nickname, creating it on first sight.
// Nicknames are unique in the store; when two first submissions race, the
// loser re-reads and gets the winner's identifier.
func (s *IdentityService) Resolve(ctx context.Context, nickname string) (*model.UserProfile, error) {
	nickname = strings.TrimSpace(nickname)

	err := validation.ValidateNickname(nickname)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.ByNickname(ctx, nickname)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to look up nickname: %w", err)
	}

	profile = &model.UserProfile{
		UserUUID: s.newID(),
		Nickname: nickname,
	}

	created, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	if created {
		slog.Info("profile created", "user_uuid", profile.UserUUID)
		return profile, nil
	}

	existing, err := s.profileRepo.ByNickname(ctx, nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return existing, nil
}

func (s *IdentityService) ByUUID(ctx context.Context, userUUID string) (*model.UserProfile, error) {
	if _, err := uuid.Parse(userUUID); err != nil {
		return nil, repository.ErrProfileNotFound
	}
	return s.profileRepo.ByUUID(ctx, userUUID)
}
