package repository

import (
	"github.com/google/uuid"
	"github.com/templui/brightlog/internal/model"
)

func newProfileFixture(nickname string) *model.UserProfile {
	return &model.UserProfile{UserUUID: uuid.New().String(), Nickname: nickname}
}

func goalsFixture(userUUID, nickname, bodyMind, career, relationships, others string) *model.GoalsRecord {
	return &model.GoalsRecord{
		UserUUID: userUUID,
		Nickname: nickname,
		Goals: model.Goals{
			BodyMind:      bodyMind,
			Career:        career,
			Relationships: relationships,
			Others:        others,
		},
	}
}
