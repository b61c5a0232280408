package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/avilovaa/kinship/auth-service/internal/models"
	"github.com/avilovaa/kinship/auth-service/internal/pkg/log"
	"github.com/avilovaa/kinship/auth-service/internal/pkg/redact"
	"github.com/avilovaa/kinship/auth-service/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// resetClaims — содержимое reset-токена: стандартные клеймы плюс флаг
// «сброс разрешён». Токен подписывается RS256 приватным ключом сервера —
// его подлинность не зависит от HMAC-запечатки движка ротации.
type resetClaims struct {
	ResetGranted bool `json:"reset"`
	jwt.RegisteredClaims
}

// RequestPasswordReset выпускает одноразовый time-boxed reset-токен и
// передаёт готовую ссылку внешнему отправителю писем.
//
// На сервере остаётся только sha256-хэш токена; погашение атомарно,
// так что ссылка срабатывает не более одного раза.
func (s *Service) RequestPasswordReset(ctx context.Context, userID uuid.UUID, email string) error {
	const op = "service.reset.RequestPasswordReset"

	lg := log.From(ctx)
	now := time.Now().UTC()

	claims := resetClaims{
		ResetGranted: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.ResetTokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.keys.Private())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.SaveOneTimeToken(ctx, &models.OneTimeToken{
		TokenHash: oneTimeHash(token),
		UserID:    userID,
		Kind:      models.OneTimeKindReset,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.ResetTokenTTL),
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	link := s.cfg.ResetLinkBase + "?token=" + url.QueryEscape(token)

	if s.mailer == nil {
		lg.Warn("mailer_not_configured",
			slog.String("op", op),
			slog.String("email", redact.Email(email)),
		)
		return nil
	}

	if err := s.mailer.SendResetLink(ctx, email, link); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("reset_link_sent",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.String("email", redact.Email(email)),
	)

	return nil
}

// ConfirmPasswordReset проверяет reset-токен, гасит его и устанавливает
// новый пароль. Действующая сессия пользователя сжигается: украденный ранее
// refresh после сброса пароля бесполезен.
func (s *Service) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	const op = "service.reset.ConfirmPasswordReset"

	claims, err := s.parseResetClaims(token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if newPassword == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	consumed, err := s.storage.ConsumeOneTimeToken(ctx, oneTimeHash(token))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return fmt.Errorf("%s: %w", op, err)
	}
	if !consumed {
		return fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	// Новый пароль не должен совпадать с действующим.
	if s.IsPasswordCorrect(ctx, newPassword, userID) {
		return fmt.Errorf("%s: %w", op, ErrPasswordReused)
	}

	if err := s.SetPassword(ctx, userID, newPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.InvalidateSession(ctx, userID); err != nil && !errors.Is(err, ErrNoSession) {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("password_reset_confirmed",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	return nil
}

// parseResetClaims валидирует подпись, издателя и срок reset-токена.
func (s *Service) parseResetClaims(tokenStr string) (*resetClaims, error) {
	const op = "service.reset.parseResetClaims"

	token, err := jwt.ParseWithClaims(tokenStr, &resetClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodRS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return s.keys.Public(), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*resetClaims)
	if !ok || !token.Valid || !claims.ResetGranted {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims, nil
}

// oneTimeHash — каноничный хэш одноразового токена для хранения в БД.
func oneTimeHash(token string) string {
	sum := sha256.Sum256([]byte(token))

	return base64.RawURLEncoding.EncodeToString(sum[:])
}
