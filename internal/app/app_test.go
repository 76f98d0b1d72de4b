package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/brightlog/internal/config"
	"github.com/tmc/langchaingo/llms"
	"golang.org/x/text/language"
)

type stubLLM struct{}

func (stubLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: " nice work "}}}, nil
}

func (s stubLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, s, prompt, options...)
}

func TestNewWithSQLite(t *testing.T) {
	cfg := &config.Config{
		AppEnv:        "development",
		DefaultLocale: "ja",
		DBDriver:      config.DriverSQLite,
		DBConnection:  filepath.Join(t.TempDir(), "app.db") + "?_pragma=foreign_keys(1)",
	}

	a, err := NewWithLLM(cfg, stubLLM{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.NotNil(t, a.Stores.DB)
	require.NoError(t, a.Stores.Pinger.PingContext(context.Background()))
	assert.Equal(t, language.Japanese, a.Localizer.Fallback())

	ctx := context.Background()
	profile, err := a.IdentityService.Resolve(ctx, "alice")
	require.NoError(t, err)

	sub, err := a.JournalService.Record(ctx, profile, language.Japanese, "good day")
	require.NoError(t, err)
	assert.Equal(t, "nice work", sub.Reply)
}

func TestNewWithSupabase(t *testing.T) {
	cfg := &config.Config{
		AppEnv:        "development",
		DefaultLocale: "en",
		DBDriver:      config.DriverSupabase,
		SupabaseURL:   "https://example.supabase.co",
		SupabaseKey:   "anon",
	}

	a, err := NewWithLLM(cfg, stubLLM{})
	require.NoError(t, err)
	assert.Nil(t, a.Stores.DB)
	assert.NotNil(t, a.Stores.Pinger)
	assert.NoError(t, a.Close())
	assert.Equal(t, language.English, a.Localizer.Fallback())
}

func TestNewWithSupabaseRequiresKey(t *testing.T) {
	_, err := NewWithLLM(&config.Config{DBDriver: config.DriverSupabase, SupabaseURL: "https://x"}, stubLLM{})
	require.Error(t, err)
}

func TestNewBuildsOpenAIClient(t *testing.T) {
	cfg := &config.Config{
		DBDriver:     config.DriverSQLite,
		DBConnection: filepath.Join(t.TempDir(), "app.db"),
		LLMAPIKey:    "sk-test",
		LLMBaseURL:   "https://openrouter.ai/api/v1",
	}
	a, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	assert.NotNil(t, a.ReplyService)
}
