package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthRecord — единственная запись аутентификации пользователя.
//
// Инвариант: на одного пользователя существует не более одной живой записи
// (user_id уникален). Поля Access/Refresh хранят плейнтекст-пейлоады,
// выпущенные последними; клиенту отдаётся только их запечатанная (HMAC) форма,
// поэтому владение запечаткой и есть учётная запись.
//
// PrevRefresh всегда содержит refresh-пейлоад, действовавший непосредственно
// перед последней ротацией (пустая строка до первой ротации). Его повторное
// предъявление — достоверный признак кражи токена.
//
// После защитной инвалидации поля перезаписываются случайными непрозрачными
// строками: они не парсятся как пейлоады и никогда не совпадут с предъявленным
// токеном.
type AuthRecord struct {
	// UserID — владелец записи.
	UserID uuid.UUID
	// Access — текущий access-пейлоад.
	Access string
	// Refresh — текущий refresh-пейлоад.
	Refresh string
	// PrevRefresh — refresh-пейлоад, вытесненный последней ротацией.
	PrevRefresh string
	// CreatedAt — момент первого Provision (UTC).
	CreatedAt time.Time
	// UpdatedAt — момент последней перезаписи полей (UTC).
	UpdatedAt time.Time
}
