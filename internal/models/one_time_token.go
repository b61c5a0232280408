package models

import (
	"time"

	"github.com/google/uuid"
)

// Виды одноразовых токенов.
const (
	// OneTimeKindReset — токен восстановления пароля.
	OneTimeKindReset = "reset"
	// OneTimeKindMFA — токен MFA-челленджа.
	OneTimeKindMFA = "mfa"
)

// OneTimeToken — серверная сторона одноразового токена (reset/MFA).
//
// Сам токен не хранится: в БД попадает только sha256-хэш, а погашение
// выполняется атомарно (active -> used), так что токен срабатывает не более
// одного раза независимо от числа конкурентных попыток.
type OneTimeToken struct {
	// TokenHash — base64(sha256) предъявляемого токена, первичный ключ.
	TokenHash string
	UserID    uuid.UUID
	// Kind — OneTimeKindReset или OneTimeKindMFA.
	Kind      string
	CreatedAt time.Time
	ExpiresAt time.Time
	Used      bool
}
