package ctxkeys

import (
	"context"

	"github.com/templui/brightlog/internal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	URLPathKey   contextKey = "url_path"
	ConfigKey    contextKey = "config"
	CSRFTokenKey contextKey = "csrf_token"
	LocaleKey    contextKey = "locale"
	PrinterKey   contextKey = "printer"
)

func URLPath(ctx context.Context) string {
	path, _ := ctx.Value(URLPathKey).(string)
	return path
}

func WithURLPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, URLPathKey, path)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(CSRFTokenKey).(string)
	return token
}

func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CSRFTokenKey, token)
}

// Locale returns the request language, Japanese if none was set.
func Locale(ctx context.Context) language.Tag {
	tag, ok := ctx.Value(LocaleKey).(language.Tag)
	if !ok {
		return language.Japanese
	}
	return tag
}

func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, LocaleKey, tag)
}

// Printer returns the localized printer for the request, or a printer for
// Locale(ctx) with no catalog.
func Printer(ctx context.Context) *message.Printer {
	p, ok := ctx.Value(PrinterKey).(*message.Printer)
	if !ok {
		return message.NewPrinter(Locale(ctx))
	}
	return p
}

func WithPrinter(ctx context.Context, p *message.Printer) context.Context {
	return context.WithValue(ctx, PrinterKey, p)
}
