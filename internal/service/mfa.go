package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/avilovaa/kinship/auth-service/internal/models"
	"github.com/avilovaa/kinship/auth-service/internal/pkg/log"
	"github.com/avilovaa/kinship/auth-service/internal/pkg/redact"
	"github.com/avilovaa/kinship/auth-service/internal/storage"
	"github.com/avilovaa/kinship/auth-service/internal/tokens"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// mfaClaims — содержимое MFA-токена: стандартные клеймы плюс числовой
// код подтверждения. Подписывается RS256, как и reset-токен.
type mfaClaims struct {
	Code string `json:"code"`
	jwt.RegisteredClaims
}

// IssueMFAChallenge выпускает MFA-челлендж: шестизначный код уходит
// пользователю почтой, подписанный токен возвращается клиенту.
// Челлендж одноразовый и time-boxed.
func (s *Service) IssueMFAChallenge(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	const op = "service.mfa.IssueMFAChallenge"

	lg := log.From(ctx)
	now := time.Now().UTC()

	code, err := randomPasscode()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	claims := mfaClaims{
		Code: code,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.MFACodeTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.keys.Private())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.SaveOneTimeToken(ctx, &models.OneTimeToken{
		TokenHash: oneTimeHash(token),
		UserID:    userID,
		Kind:      models.OneTimeKindMFA,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.MFACodeTTL),
	}); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendMFACode(ctx, email, code); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	} else {
		lg.Warn("mailer_not_configured",
			slog.String("op", op),
			slog.String("email", redact.Email(email)),
		)
	}

	lg.Info("mfa_challenge_issued",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	return token, nil
}

// VerifyMFAChallenge проверяет токен и код и, при успехе, выпускает пару
// токенов (завершение входа).
//
// Челлендж гасится до сравнения кода: на один токен даётся ровно одна
// попытка, перебор шестизначного кода по одному токену невозможен.
func (s *Service) VerifyMFAChallenge(ctx context.Context, token, code string) (*models.TokenPair, uuid.UUID, error) {
	const op = "service.mfa.VerifyMFAChallenge"

	claims, err := s.parseMFAClaims(token)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	consumed, err := s.storage.ConsumeOneTimeToken(ctx, oneTimeHash(token))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	if !consumed {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if !tokens.ConstantTimeEqual(claims.Code, code) {
		log.From(ctx).Warn("mfa_code_mismatch",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
		)
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	pair, err := s.Provision(ctx, userID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, userID, nil
}

// parseMFAClaims валидирует подпись, издателя и срок MFA-токена.
func (s *Service) parseMFAClaims(tokenStr string) (*mfaClaims, error) {
	const op = "service.mfa.parseMFAClaims"

	token, err := jwt.ParseWithClaims(tokenStr, &mfaClaims{},
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

	claims, ok := token.Claims.(*mfaClaims)
	if !ok || !token.Valid || claims.Code == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims, nil
}

// randomPasscode возвращает криптослучайный шестизначный код.
func randomPasscode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
