package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/avilovaa/kinship/auth-service/internal/models"
	"github.com/avilovaa/kinship/auth-service/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Файл интеграционных тестов для пакета postgres (репозиторий credentials.go):
// - история дайджестов паролей append-only и выбор самого свежего;
// - машина состояний одноразовых токенов: активен -> погашен,
//   повторное гашение и гашение несуществующего токена;
// - уборка просроченных токенов.
//
// Контейнер и миграции поднимаются хелпером startPostgres (auth_record_test.go).

// TestIntegration_PasswordDigests_AppendOnly_LatestWins — при нескольких сменах
// пароля LatestPasswordDigest возвращает самый свежий по created_at.
func TestIntegration_PasswordDigests_AppendOnly_LatestWins(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	base := time.Now().UTC().Add(-time.Hour)

	for i, d := range []string{"digest-old", "digest-mid", "digest-new"} {
		require.NoError(t, st.SavePasswordDigest(context.Background(), &models.PasswordDigest{
			UserID:    userID,
			Digest:    d,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := st.LatestPasswordDigest(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, userID, got.UserID)
	require.Equal(t, "digest-new", got.Digest)
}

// TestIntegration_LatestPasswordDigest_NotFound — у пользователя без истории
// паролей ожидаем storage.ErrNotFound.
func TestIntegration_LatestPasswordDigest_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.LatestPasswordDigest(context.Background(), uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_ConsumeOneTimeToken_StateMachine — полный цикл одноразового токена:
// первое гашение (true, nil), повторное (false, nil), несуществующий (false, ErrNotFound).
func TestIntegration_ConsumeOneTimeToken_StateMachine(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	now := time.Now().UTC()
	tok := &models.OneTimeToken{
		TokenHash: "hash-1",
		UserID:    uuid.New(),
		Kind:      models.OneTimeKindReset,
		CreatedAt: now,
		ExpiresAt: now.Add(30 * time.Minute),
	}
	require.NoError(t, st.SaveOneTimeToken(context.Background(), tok))

	ok, err := st.ConsumeOneTimeToken(context.Background(), tok.TokenHash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.ConsumeOneTimeToken(context.Background(), tok.TokenHash)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = st.ConsumeOneTimeToken(context.Background(), "absent-hash")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.False(t, ok)
}

// TestIntegration_SaveOneTimeToken_Duplicate_Violation — конфликт по первичному
// ключу token_hash, ожидаем storage.ErrAlreadyExists.
func TestIntegration_SaveOneTimeToken_Duplicate_Violation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	now := time.Now().UTC()
	tok := &models.OneTimeToken{
		TokenHash: "hash-dup",
		UserID:    uuid.New(),
		Kind:      models.OneTimeKindMFA,
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}
	require.NoError(t, st.SaveOneTimeToken(context.Background(), tok))

	err := st.SaveOneTimeToken(context.Background(), tok)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

// TestIntegration_DeleteExpiredOneTimeTokens_OnlyExpired — уборка затрагивает
// только просроченные токены; живой остаётся гасимым.
func TestIntegration_DeleteExpiredOneTimeTokens_OnlyExpired(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	now := time.Now().UTC()

	expired := &models.OneTimeToken{
		TokenHash: "hash-expired",
		UserID:    uuid.New(),
		Kind:      models.OneTimeKindReset,
		CreatedAt: now.Add(-time.Hour),
		ExpiresAt: now.Add(-time.Minute),
	}
	alive := &models.OneTimeToken{
		TokenHash: "hash-alive",
		UserID:    uuid.New(),
		Kind:      models.OneTimeKindReset,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, st.SaveOneTimeToken(context.Background(), expired))
	require.NoError(t, st.SaveOneTimeToken(context.Background(), alive))

	require.NoError(t, st.DeleteExpiredOneTimeTokens(context.Background(), now))

	_, err := st.ConsumeOneTimeToken(context.Background(), expired.TokenHash)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)

	ok, err := st.ConsumeOneTimeToken(context.Background(), alive.TokenHash)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestIntegration_SaveOneTimeToken_ContextCanceled — отменённый контекст должен
// «просочиться» в ошибку записи как context.Canceled.
func TestIntegration_SaveOneTimeToken_ContextCanceled(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	now := time.Now().UTC()
	err := st.SaveOneTimeToken(ctx, &models.OneTimeToken{
		TokenHash: "hash-ctx",
		UserID:    uuid.New(),
		Kind:      models.OneTimeKindMFA,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Minute),
	})
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}
