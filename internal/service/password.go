package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/avilovaa/kinship/auth-service/internal/models"
	"github.com/avilovaa/kinship/auth-service/internal/pkg/log"
	"github.com/avilovaa/kinship/auth-service/internal/tokens"

	"github.com/google/uuid"
)

// maxPasswordLen ограничивает длину плейнтекста в байтах.
const maxPasswordLen = 1024

// HashPassword вычисляет детерминированный дайджест пароля:
// HMAC-SHA256 под серверным ключом, base64 RawURL. Один и тот же плейнтекст
// всегда даёт один и тот же дайджест — сравнение при входе сводится к
// повторному вычислению.
func (s *Service) HashPassword(plaintext string) (string, error) {
	const op = "service.password.HashPassword"

	if plaintext == "" {
		return "", fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}
	if len(plaintext) > maxPasswordLen {
		return "", fmt.Errorf("%s: %w", op, ErrPasswordTooLong)
	}

	h := hmac.New(sha256.New, []byte(s.cfg.HMACSecret))
	h.Write([]byte(plaintext))

	return base64.RawURLEncoding.EncodeToString(h.Sum(nil)), nil
}

// IsPasswordCorrect сверяет плейнтекст с самым свежим сохранённым дайджестом
// пользователя за константное время.
//
// Контракт: при любой внутренней ошибке (пустой плейнтекст, отсутствие
// дайджеста, сбой хранилища) возвращается false, а не ошибка — проверка
// пароля не должна сообщать вызывающему разницу между «пароль неверен»
// и «вход некорректен».
func (s *Service) IsPasswordCorrect(ctx context.Context, plaintext string, userID uuid.UUID) bool {
	const op = "service.password.IsPasswordCorrect"

	computed, err := s.HashPassword(plaintext)
	if err != nil {
		return false
	}

	stored, err := s.storage.LatestPasswordDigest(ctx, userID)
	if err != nil {
		log.From(ctx).Warn("password_digest_lookup_failed",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
		)
		return false
	}

	return tokens.ConstantTimeEqual(computed, stored.Digest)
}

// SetPassword добавляет новый дайджест пароля пользователя
// (история append-only, действующим считается самый свежий).
func (s *Service) SetPassword(ctx context.Context, userID uuid.UUID, plaintext string) error {
	const op = "service.password.SetPassword"

	digest, err := s.HashPassword(plaintext)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	record := &models.PasswordDigest{
		UserID:    userID,
		Digest:    digest,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.SavePasswordDigest(ctx, record); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DecryptPassword расшифровывает пароль, который клиент зашифровал публичным
// ключом сервера (RSA-OAEP) и закодировал base64.
func (s *Service) DecryptPassword(ciphertextB64 string) (string, error) {
	const op = "service.password.DecryptPassword"

	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	plaintext, err := s.keys.Decrypt(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(plaintext), nil
}
