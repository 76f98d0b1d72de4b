package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/templui/brightlog/internal/i18n"
	"github.com/templui/brightlog/internal/model"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/text/language"
)

// Every reply uses the same model and sampling temperature.
const (
	ReplyModel       = "openai/gpt-3.5-turbo"
	ReplyTemperature = 0.7
)

var ErrReplyFailed = errors.New("reply generation failed")

// NewOpenAICompatibleLLM returns a chat model for any OpenAI-compatible
// endpoint (OpenRouter by default).
func NewOpenAICompatibleLLM(apiKey, baseURL string) (llms.Model, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(ReplyModel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}
	return llm, nil
}

// ReplyService turns a journal entry and the user's goals into one short
// encouraging message. Every call reaches the model; nothing is cached.
type ReplyService struct {
	llm llms.Model
}

func NewReplyService(llm llms.Model) *ReplyService {
	return &ReplyService{llm: llm}
}

func (s *ReplyService) Generate(ctx context.Context, lang language.Tag, entry string, goals model.Goals) (string, error) {
	prompt := BuildPrompt(lang, entry, goals)

	start := time.Now()
	out, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt,
		llms.WithModel(ReplyModel),
		llms.WithTemperature(ReplyTemperature),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReplyFailed, err)
	}

	reply := strings.TrimSpace(out)
	slog.Debug("reply generated", "model", ReplyModel, "empty", reply == "", "lang", lang.String(), "duration_ms", time.Since(start).Milliseconds())
	return reply, nil
}

// BuildPrompt fills the fixed instruction template for lang. The entry
// and goals are inserted verbatim.
func BuildPrompt(lang language.Tag, entry string, goals model.Goals) string {
	tmpl := promptJA
	if i18n.Base(lang) == language.English {
		tmpl = promptEN
	}

	r := strings.NewReplacer(
		"{entry}", entry,
		"{body_mind}", goals.BodyMind,
		"{career}", goals.Career,
		"{relationships}", goals.Relationships,
		"{others}", goals.Others,
	)
	return r.Replace(tmpl)
}

const promptJA = `
あなたはユーザーをあたたかく励ましたり褒めたりしてくれる優しいチャットボットです。
堅苦しくなく、やわらかい言葉で話してください。口調は丁寧なです・ます調でお願いします。
以下はユーザーが今日書いたポジティブな出来事です：
「{entry}」
この出来事に対して、自然で前向きな励ましや共感の言葉を一文〜二文で返してください。
また、ユーザーが設定している将来の目標はこちらです：
身体・心理面：{body_mind}
学業・仕事：{career}
人間関係：{relationships}
その他：{others}
今日書いたポジティブな出来事「{entry}」が目標に関連している場合には、さりげなく触れてください。
ただし、あくまでもユーザーが今日書いた出来事に対するフィードバックが中心で、目標についてはあまり触れないでください。
`

const promptEN = `
You are a kind chatbot that warmly encourages and praises the user.
Speak gently and casually, but stay polite.
Here is something positive the user wrote about today:
"{entry}"
Reply to it with one or two natural, upbeat sentences of encouragement or empathy.
These are the goals the user has set for the future:
Body and mind: {body_mind}
Study and work: {career}
Relationships: {relationships}
Everything else: {others}
If today's entry "{entry}" relates to one of the goals, mention it lightly.
Keep the focus on what the user wrote today and say little about the goals.
`
