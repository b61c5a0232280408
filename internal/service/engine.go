package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avilovaa/kinship/auth-service/internal/models"
	"github.com/avilovaa/kinship/auth-service/internal/pkg/log"
	"github.com/avilovaa/kinship/auth-service/internal/storage"
	"github.com/avilovaa/kinship/auth-service/internal/tokens"

	"github.com/google/uuid"
)

// Provision выпускает свежую пару access+refresh для пользователя.
//
// Вызывается ровно один раз на успешный вход/регистрацию: действующие
// учётные данные безусловно заменяются, любая сессия в полёте становится
// недействительной. Если записи ещё нет, она создаётся с пустым
// previous-refresh; при перезаписи previous-refresh не трогается.
func (s *Service) Provision(ctx context.Context, userID uuid.UUID) (*models.TokenPair, error) {
	const op = "service.engine.Provision"

	lg := log.From(ctx)
	now := time.Now().UTC()

	access, err := tokens.NewAccessPayload(s.cfg.Issuer, userID.String(), now, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, err := tokens.NewRefreshPayload(s.cfg.Issuer, userID.String(), now, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	record, err := s.lookupRecord(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		record = &models.AuthRecord{
			UserID:      userID,
			PrevRefresh: "",
			CreatedAt:   now,
		}
	}

	record.Access = access
	record.Refresh = refresh
	record.UpdatedAt = now

	if err := s.saveRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("session_provisioned",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	return s.pairFromRecord(record)
}

// Check — ядро машины состояний ротации. Проверяет предъявленную пару,
// ротирует или гасит хранимую и возвращает (возможно обновлённую) пару.
// Порядок шагов — осознанное решение безопасности, менять его нельзя.
func (s *Service) Check(ctx context.Context, userID uuid.UUID, presentedAccess, presentedRefresh string) (*models.TokenPair, error) {
	const op = "service.engine.Check"

	lg := log.From(ctx)
	now := time.Now().UTC()

	// Шаг 1: запись пользователя. Нет записи — нет живой сессии.
	record, err := s.lookupRecord(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNoSession)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Шаг 2: access обязан запечатываться в точности из текущего пейлоада,
	// даже если тот просрочен, — это первичная проверка учётных данных.
	if !s.sealer.Matches(presentedAccess, record.Access) {
		lg.Warn("access_token_mismatch",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidAccessToken)
	}

	// Шаг 3: предъявлен refresh предыдущего поколения — достоверная улика
	// кражи (легитимный клиент уже ротировал мимо него). Сжигаем сессию
	// целиком до любых других мутаций.
	if s.sealer.Matches(presentedRefresh, record.PrevRefresh) {
		lg.Warn("refresh_replay_detected",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
		)

		if err := s.burnRecord(ctx, record, now); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrAccessDenied)
	}

	// Шаг 4: валидность refresh — совпадение запечатки с текущим пейлоадом
	// И непросроченность пейлоада. Неразборчивый хранимый пейлоад (после
	// защитной инвалидации в нём лежит случайная строка) — отказ.
	refreshExpired, err := tokens.IsExpired(record.Refresh, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	validRefresh := s.sealer.Matches(presentedRefresh, record.Refresh) && !refreshExpired

	// Шаг 5: просроченный access без валидного refresh ротировать нечем.
	accessExpired, err := tokens.IsExpired(record.Access, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if accessExpired {
		if !validRefresh {
			return nil, fmt.Errorf("%s: %w", op, ErrReauthRequired)
		}

		access, err := tokens.NewAccessPayload(s.cfg.Issuer, userID.String(), now, s.cfg.AccessTokenTTL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		record.Access = access
	}

	// Шаг 6: ротация refresh либо тихая защитная инвалидация.
	if validRefresh {
		refresh, err := tokens.NewRefreshPayload(s.cfg.Issuer, userID.String(), now, s.cfg.RefreshTokenTTL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		record.PrevRefresh = record.Refresh
		record.Refresh = refresh
	} else {
		// Access ещё действовал, refresh — нет: гасим обе стороны refresh
		// случайными строками, не роняя сам запрос. Отказ закрыт, различий
		// состояния возможно скомпрометированному клиенту не сообщаем.
		if err := s.invalidateRefresh(record); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		lg.Warn("refresh_invalidated",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
		)
	}

	record.UpdatedAt = now
	if err := s.saveRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Шаг 7: пост-мутационная пара.
	return s.pairFromRecord(record)
}

// InvalidateSession сжигает запись пользователя (logout/компрометация):
// все три поля перезаписываются случайными непрозрачными строками.
func (s *Service) InvalidateSession(ctx context.Context, userID uuid.UUID) error {
	const op = "service.engine.InvalidateSession"

	record, err := s.lookupRecord(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNoSession)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.burnRecord(ctx, record, time.Now().UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// burnRecord перезаписывает все три поля записи независимыми случайными
// строками и сохраняет её: ни один ранее выданный токен больше не совпадёт,
// а случайные строки не парсятся как пейлоады.
func (s *Service) burnRecord(ctx context.Context, record *models.AuthRecord, now time.Time) error {
	access, err := tokens.RandomString(32)
	if err != nil {
		return err
	}

	if err := s.invalidateRefresh(record); err != nil {
		return err
	}

	record.Access = access
	record.UpdatedAt = now

	return s.saveRecord(ctx, record)
}

// invalidateRefresh гасит refresh и previous-refresh случайными строками,
// не трогая access и не сохраняя запись.
func (s *Service) invalidateRefresh(record *models.AuthRecord) error {
	refresh, err := tokens.RandomString(32)
	if err != nil {
		return err
	}

	prev, err := tokens.RandomString(32)
	if err != nil {
		return err
	}

	record.Refresh = refresh
	record.PrevRefresh = prev

	return nil
}

// lookupRecord читает запись из кэша (если он есть), иначе — из хранилища.
// Ошибки кэша деградируют до похода в БД.
func (s *Service) lookupRecord(ctx context.Context, userID uuid.UUID) (*models.AuthRecord, error) {
	if s.rcache != nil {
		if record, ok, err := s.rcache.Get(ctx, userID); err == nil && ok {
			return record, nil
		}
	}

	return s.storage.AuthRecordByUserID(ctx, userID)
}

// saveRecord сохраняет запись в хранилище и best-effort обновляет кэш.
func (s *Service) saveRecord(ctx context.Context, record *models.AuthRecord) error {
	if err := s.storage.UpsertAuthRecord(ctx, record); err != nil {
		return err
	}

	if s.rcache != nil {
		if err := s.rcache.Set(ctx, record, s.cfg.RefreshTokenTTL); err != nil {
			log.From(ctx).Warn("auth_cache_set_failed",
				slog.String("err", err.Error()),
			)
		}
	}

	return nil
}

// pairFromRecord запечатывает текущие пейлоады записи в выдаваемую пару.
// Срок действия access берётся из пейлоада; если пейлоад сожжён (случайная
// строка), срок остаётся нулевым — такую пару всё равно нельзя предъявить.
func (s *Service) pairFromRecord(record *models.AuthRecord) (*models.TokenPair, error) {
	pair := &models.TokenPair{
		AccessToken:  s.sealer.Seal(record.Access),
		RefreshToken: s.sealer.Seal(record.Refresh),
	}

	if claims, err := tokens.ParseClaims(record.Access); err == nil {
		pair.AccessExpiresAt = time.Unix(claims.ExpiresAt, 0).UTC()
	}

	return pair, nil
}
