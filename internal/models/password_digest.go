package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordDigest — сохранённый дайджест пароля пользователя.
//
// История дайджестов append-only: при смене пароля добавляется новая строка,
// при проверке используется самая свежая по CreatedAt.
type PasswordDigest struct {
	UserID    uuid.UUID
	Digest    string
	CreatedAt time.Time
}
