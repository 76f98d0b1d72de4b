package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/brightlog/internal/db"
	"github.com/templui/brightlog/internal/i18n"
	"github.com/templui/brightlog/internal/markdown"
	"github.com/templui/brightlog/internal/middleware"
	"github.com/templui/brightlog/internal/repository"
	"github.com/templui/brightlog/internal/service"
	"github.com/tmc/langchaingo/llms"
)

type fakeLLM struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
}

func (f *fakeLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

type testEnv struct {
	handler  http.Handler
	identity *service.IdentityService
	journal  *service.JournalService
	llm      *fakeLLM
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	conn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	database, err := db.Init("sqlite", conn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	llm := &fakeLLM{reply: "**Wonderful!** Keep it up."}
	identity := service.NewIdentityService(repository.NewProfileRepository(database))
	goals := service.NewGoalsService(repository.NewGoalsRepository(database))
	journal := service.NewJournalService(
		repository.NewLogRepository(database),
		goals,
		service.NewReplyService(llm),
		time.UTC,
	)

	home := NewHomeHandler()
	session := NewSessionHandler(identity)
	j := NewJournalHandler(identity, goals, journal, markdown.NewParser())
	health := NewHealthHandler(database)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("POST /session", session.Start)
	mux.HandleFunc("GET /journal/{user_uuid}", j.JournalPage)
	mux.HandleFunc("POST /journal/{user_uuid}/goals", j.SaveGoals)
	mux.HandleFunc("POST /journal/{user_uuid}/entries", j.SubmitEntry)
	mux.HandleFunc("GET /healthz", health.Health)
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	return &testEnv{
		handler:  middleware.Chain(mux, middleware.Locale(i18n.New("en")), middleware.WithURLPath),
		identity: identity,
		journal:  journal,
		llm:      llm,
	}
}

func (e *testEnv) do(t *testing.T, method, target string, form url.Values, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Accept-Language", "en")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) start(t *testing.T, nickname string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/session", url.Values{"nickname": {nickname}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, "/journal/"), loc)
	return loc
}

func TestHomePage(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/session"`)

	rec = env.do(t, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionStart(t *testing.T) {
	env := newTestEnv(t)

	first := env.start(t, "alice")
	second := env.start(t, "  alice ")
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, env.start(t, "bob"))

	rec := env.do(t, http.MethodPost, "/session", url.Values{"nickname": {"   "}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter your ID")
}

func TestSessionStartLongNickname(t *testing.T) {
	env := newTestEnv(t)
	nickname := strings.Repeat("な", 101)

	first := env.start(t, nickname)
	assert.Equal(t, first, env.start(t, nickname))

	rec := env.do(t, http.MethodGet, first, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownJournalRedirectsHome(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/journal/not-a-uuid", "/journal/6f1c2f9e-3c1a-4b8e-9d55-0d5c2b6c1a11"} {
		rec := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	}
}

func TestSaveGoals(t *testing.T) {
	env := newTestEnv(t)
	page := env.start(t, "alice")

	form := url.Values{
		"body_mind":     {"sleep 7h"},
		"career":        {"ship v1"},
		"relationships": {""},
		"others":        {"paint"},
	}
	rec := env.do(t, http.MethodPost, page+"/goals", form)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Goals saved!")
	assert.Contains(t, body, "ship v1</textarea>")

	// htmx requests only get the toast back.
	form.Set("career", "ship v2")
	rec = env.do(t, http.MethodPost, page+"/goals", form, "HX-Request", "true")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hx-swap-oob="beforeend:#toast-container"`)
	assert.NotContains(t, rec.Body.String(), "<textarea")

	rec = env.do(t, http.MethodGet, page+"?view=history", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "ship v2")
	assert.Contains(t, body, "(not set)")
	assert.Contains(t, body, "No entries yet.")
}

func TestSubmitEntry(t *testing.T) {
	env := newTestEnv(t)
	page := env.start(t, "alice")

	rec := env.do(t, http.MethodPost, page+"/entries", url.Values{"entry": {"Finished the prototype"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="reply"`)
	assert.Contains(t, body, "<strong>Wonderful!</strong>")
	assert.Contains(t, body, "?view=history")

	rec = env.do(t, http.MethodGet, page+"?view=history", nil)
	body = rec.Body.String()
	assert.Contains(t, body, "Finished the prototype")
	assert.Contains(t, body, time.Now().UTC().Format("2006-01-02"))
}

func TestSubmitBlankEntry(t *testing.T) {
	env := newTestEnv(t)
	page := env.start(t, "alice")

	rec := env.do(t, http.MethodPost, page+"/entries", url.Values{"entry": {"  \n "}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please write something first")
	assert.NotContains(t, rec.Body.String(), `id="reply"`)
	assert.Equal(t, 0, env.llm.calls)

	profile, err := env.identity.Resolve(context.Background(), "alice")
	require.NoError(t, err)
	recent, err := env.journal.Recent(context.Background(), profile.UserUUID, service.RecentLimit)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestSubmitEntryReplyFailure(t *testing.T) {
	env := newTestEnv(t)
	env.llm.err = errors.New("upstream down")
	page := env.start(t, "alice")

	rec := env.do(t, http.MethodPost, page+"/entries", url.Values{"entry": {"walked the dog"}})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="reply"`)
	assert.Contains(t, body, "Entry saved!")

	rec = env.do(t, http.MethodGet, page+"?view=history", nil)
	assert.Contains(t, rec.Body.String(), "walked the dog")
}

func TestReplyViewIsNotReachableByURL(t *testing.T) {
	env := newTestEnv(t)
	page := env.start(t, "alice")

	rec := env.do(t, http.MethodGet, page+"?view=reply", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `id="reply"`)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
