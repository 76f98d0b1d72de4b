package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	l := New("ja")

	assert.Equal(t, language.Japanese, l.Match("", ""))
	assert.Equal(t, language.English, l.Match("", "en-US,en;q=0.9"))
	assert.Equal(t, language.Japanese, l.Match("", "ja-JP"))
	assert.Equal(t, language.Japanese, l.Match("", "fr-FR"))
	assert.Equal(t, language.Japanese, l.Match("ja", "en-US"))
	assert.Equal(t, language.English, l.Match("en", "ja"))
}

func TestFallbackEnglish(t *testing.T) {
	l := New("en")
	assert.Equal(t, language.English, l.Fallback())
	assert.Equal(t, language.English, l.Match("", "de"))

	assert.Equal(t, language.Japanese, New("not a tag").Fallback())
}

func TestPrinter(t *testing.T) {
	l := New("ja")

	ja := l.Printer(language.Japanese)
	assert.Equal(t, "（未入力）", ja.Sprintf(HistoryUnset))
	assert.Equal(t, "1. 身体・心理面の理想", ja.Sprintf(GoalTitle("body_mind")))

	en := l.Printer(language.MustParse("en-GB"))
	assert.Equal(t, "(not set)", en.Sprintf(HistoryUnset))
	assert.Equal(t, "Relationships", en.Sprintf(GoalShort("relationships")))
}

func TestEveryMessageHasBothLanguages(t *testing.T) {
	for key, m := range messages {
		assert.NotEmpty(t, m.ja, key)
		assert.NotEmpty(t, m.en, key)
		assert.NotContains(t, m.ja, "%", key)
		assert.NotContains(t, m.en, "%", key)
	}
}
