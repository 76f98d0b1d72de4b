package service

import (
	"context"
	"fmt"
	"time"

	"github.com/templui/brightlog/internal/model"
	"github.com/templui/brightlog/internal/repository"
	"github.com/templui/brightlog/internal/validation"
	"golang.org/x/text/language"
)

// RecentLimit is how many entries the history view shows.
const RecentLimit = 5

var ErrEmptyEntry = validation.ErrEntryRequired

type JournalService struct {
	logRepo      repository.LogRepository
	goalsService *GoalsService
	replyService *ReplyService
	location     *time.Location
	now          func() time.Time
}

func NewJournalService(
	logRepo repository.LogRepository,
	goalsService *GoalsService,
	replyService *ReplyService,
	location *time.Location,
) *JournalService {
	if location == nil {
		location = time.Local
	}
	return &JournalService{
		logRepo:      logRepo,
		goalsService: goalsService,
		replyService: replyService,
		location:     location,
		now:          time.Now,
	}
}

// Today returns the current calendar date in the journal's location, as
// midnight UTC.
func (s *JournalService) Today() time.Time {
	y, m, d := s.now().In(s.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Append stores a new entry. Entries are never deduplicated.
func (s *JournalService) Append(ctx context.Context, userUUID, nickname string, date time.Time, text string) (*model.LogEntry, error) {
	err := validation.ValidateEntry(text)
	if err != nil {
		return nil, err
	}

	entry := &model.LogEntry{
		UserUUID:  userUUID,
		Nickname:  nickname,
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Entry:     text,
		CreatedAt: s.now().UTC(),
	}

	err = s.logRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	return entry, nil
}

// Recent returns at most RecentLimit entries, newest first. A limit outside
// 1..RecentLimit is clamped to RecentLimit.
func (s *JournalService) Recent(ctx context.Context, userUUID string, limit int) ([]*model.LogEntry, error) {
	if limit <= 0 || limit > RecentLimit {
		limit = RecentLimit
	}

	entries, err := s.logRepo.Recent(ctx, userUUID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}

// Submission is the outcome of recording today's entry.
type Submission struct {
	Entry *model.LogEntry
	Reply string
}

// Record saves today's entry and asks for a reply based on the entry and
// the user's current goals. A blank entry is rejected before anything is
// stored or generated. When only the reply fails, the saved entry is
// returned together with an error wrapping ErrReplyFailed.
func (s *JournalService) Record(ctx context.Context, profile *model.UserProfile, lang language.Tag, text string) (*Submission, error) {
	err := validation.ValidateEntry(text)
	if err != nil {
		return nil, err
	}

	entry, err := s.Append(ctx, profile.UserUUID, profile.Nickname, s.Today(), text)
	if err != nil {
		return nil, err
	}

	submission := &Submission{Entry: entry}

	goals, err := s.goalsService.Load(ctx, profile.UserUUID)
	if err != nil {
		return submission, err
	}

	reply, err := s.replyService.Generate(ctx, lang, text, goals)
	if err != nil {
		return submission, err
	}

	submission.Reply = reply
	return submission, nil
}
