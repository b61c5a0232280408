// tokens реализует формат учётных данных движка ротации:
// JSON-пейлоады access/refresh-токенов, их детерминированную запечатку
// (HMAC-SHA256 под серверным ключом) и криптослучайные строки.
//
// Токен непрозрачен для держателя: внутри нет самостоятельно проверяемой
// подписи, валидность доказывается только повторной запечаткой хранимого
// пейлоада и сравнением за константное время.
package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedPayload — пейлоад не парсится или не содержит ожидаемых полей.
// На уровне сервиса трактуется как ошибка аутентификации, не как сбой процесса.
var ErrMalformedPayload = errors.New("malformed token payload")

// Claims — содержимое пейлоада токена.
//
// Для access-токена заполняются iss/sub/iat/exp; refresh дополнительно несёт
// случайный sid, единственная роль которого — диверсифицировать запечатку.
type Claims struct {
	Issuer    string `json:"iss"`
	Subject   string `json:"sub"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
	// SessionID — только в refresh-пейлоадах.
	SessionID string `json:"sid,omitempty"`
}

// NewAccessPayload собирает access-пейлоад со сроком действия now+ttl.
func NewAccessPayload(issuer string, subject string, now time.Time, ttl time.Duration) (string, error) {
	const op = "tokens.NewAccessPayload"

	raw, err := json.Marshal(Claims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(raw), nil
}

// NewRefreshPayload собирает refresh-пейлоад со свежим случайным session id.
func NewRefreshPayload(issuer string, subject string, now time.Time, ttl time.Duration) (string, error) {
	const op = "tokens.NewRefreshPayload"

	sid, err := RandomString(16)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	raw, err := json.Marshal(Claims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
		SessionID: sid,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(raw), nil
}

// ParseClaims разбирает пейлоад.
// Любая ошибка парсинга и нулевой exp маппятся в ErrMalformedPayload:
// после защитной инвалидации в полях записи лежат случайные строки,
// и именно здесь они должны превращаться в отказ аутентификации.
func ParseClaims(payload string) (*Claims, error) {
	const op = "tokens.ParseClaims"

	var c Claims
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrMalformedPayload)
	}

	if c.ExpiresAt == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrMalformedPayload)
	}

	return &c, nil
}

// IsExpired сообщает, истёк ли пейлоад на момент now.
// Ошибка возвращается только для неразборчивого пейлоада (ErrMalformedPayload).
func IsExpired(payload string, now time.Time) (bool, error) {
	const op = "tokens.IsExpired"

	c, err := ParseClaims(payload)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return !now.Before(time.Unix(c.ExpiresAt, 0)), nil
}
