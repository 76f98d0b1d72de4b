package validation

import (
	"errors"
	"strings"
)

var (
	ErrNicknameRequired = errors.New("nickname is required")
	ErrEntryRequired    = errors.New("entry is required")
)

// ValidateNickname checks a nickname after surrounding whitespace has been
// removed. Nicknames have no format or length rules beyond being present.
func ValidateNickname(nickname string) error {
	if strings.TrimSpace(nickname) == "" {
		return ErrNicknameRequired
	}
	return nil
}

// ValidateEntry rejects empty and whitespace-only journal entries.
func ValidateEntry(entry string) error {
	if strings.TrimSpace(entry) == "" {
		return ErrEntryRequired
	}
	return nil
}
