package service

import (
	"context"
	"sort"
	"sync"

	"github.com/templui/brightlog/internal/model"
	"github.com/templui/brightlog/internal/repository"
	"github.com/tmc/langchaingo/llms"
)

// memProfileRepo is an in-memory ProfileRepository.
type memProfileRepo struct {
	mu         sync.Mutex
	byNickname map[string]*model.UserProfile
	// beforeCreate lets a test slip in a competing insert.
	beforeCreate func()
	lookupErr    error
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{byNickname: make(map[string]*model.UserProfile)}
}

func (m *memProfileRepo) ByNickname(ctx context.Context, nickname string) (*model.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	p, ok := m.byNickname[nickname]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProfileRepo) ByUUID(ctx context.Context, userUUID string) (*model.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.byNickname {
		if p.UserUUID == userUUID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrProfileNotFound
}

func (m *memProfileRepo) Create(ctx context.Context, profile *model.UserProfile) (bool, error) {
	if m.beforeCreate != nil {
		m.beforeCreate()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byNickname[profile.Nickname]; ok {
		return false, nil
	}
	cp := *profile
	m.byNickname[profile.Nickname] = &cp
	return true, nil
}

func (m *memProfileRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byNickname)
}

// memGoalsRepo is an in-memory GoalsRepository.
type memGoalsRepo struct {
	mu      sync.Mutex
	records map[string]model.GoalsRecord
	err     error
}

func newMemGoalsRepo() *memGoalsRepo {
	return &memGoalsRepo{records: make(map[string]model.GoalsRecord)}
}

func (m *memGoalsRepo) ByUserUUID(ctx context.Context, userUUID string) (*model.GoalsRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.records[userUUID]
	if !ok {
		return nil, repository.ErrGoalsNotFound
	}
	return &r, nil
}

func (m *memGoalsRepo) Upsert(ctx context.Context, record *model.GoalsRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records[record.UserUUID] = *record
	return nil
}

// memLogRepo is an in-memory LogRepository with the same ordering rules
// as the sql one.
type memLogRepo struct {
	mu      sync.Mutex
	entries []model.LogEntry
	err     error
}

func (m *memLogRepo) Create(ctx context.Context, entry *model.LogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memLogRepo) Recent(ctx context.Context, userUUID string, limit int) ([]*model.LogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []*model.LogEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].UserUUID == userUUID {
			e := m.entries[i]
			out = append(out, &e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeLLM records prompts and call options.
type fakeLLM struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
	options []llms.CallOptions
}

func (f *fakeLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	var opts llms.CallOptions
	for _, o := range options {
		o(&opts)
	}

	var prompt string
	for _, m := range messages {
		for _, p := range m.Parts {
			if tc, ok := p.(llms.TextContent); ok {
				prompt += tc.Text
			}
		}
	}

	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.options = append(f.options, opts)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}
