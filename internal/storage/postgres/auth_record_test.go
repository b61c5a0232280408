package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/avilovaa/kinship/auth-service/internal/models"
	"github.com/avilovaa/kinship/auth-service/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Файл интеграционных тестов для пакета postgres (репозиторий auth_record.go):
// - поднимает реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяет миграции из ./migrations;
// - проверяет upsert-семантику записи аутентификации (created_at только при вставке,
//   перезапись полей на месте) и сценарии отсутствия записей (storage.ErrNotFound);
// - валидирует корректную обработку ошибок контекста (Canceled/DeadlineExceeded).
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает временный экземпляр PostgreSQL через testcontainers-go,
// применяет все миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	for _, m := range []string{
		"1_init_auth_records.up.sql",
		"2_init_password_digests.up.sql",
		"3_init_one_time_tokens.up.sql",
	} {
		_, err = pool.Exec(ctx, readMigration(t, m))
		require.NoError(t, err)
	}

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// TestIntegration_UpsertAuthRecord_Insert_And_Lookup_OK — happy-path:
// вставка записи и последующий поиск по user_id; сверка всех полей и таймстемпов.
func TestIntegration_UpsertAuthRecord_Insert_And_Lookup_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	now := time.Now().UTC()
	rec := &models.AuthRecord{
		UserID:      uuid.New(),
		Access:      "access-payload",
		Refresh:     "refresh-payload",
		PrevRefresh: "",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	require.NoError(t, st.UpsertAuthRecord(context.Background(), rec))

	got, err := st.AuthRecordByUserID(context.Background(), rec.UserID)
	require.NoError(t, err)
	require.Equal(t, rec.UserID, got.UserID)
	require.Equal(t, rec.Access, got.Access)
	require.Equal(t, rec.Refresh, got.Refresh)
	require.Equal(t, rec.PrevRefresh, got.PrevRefresh)
	require.WithinDuration(t, rec.CreatedAt, got.CreatedAt, time.Second)
	require.WithinDuration(t, rec.UpdatedAt, got.UpdatedAt, time.Second)
}

// TestIntegration_UpsertAuthRecord_Update_OverwritesInPlace — повторный upsert
// перезаписывает токены и updated_at, но created_at остаётся от первой вставки.
func TestIntegration_UpsertAuthRecord_Update_OverwritesInPlace(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	first := time.Now().UTC().Add(-time.Hour)

	initial := &models.AuthRecord{
		UserID:    userID,
		Access:    "a1",
		Refresh:   "r1",
		CreatedAt: first,
		UpdatedAt: first,
	}
	require.NoError(t, st.UpsertAuthRecord(context.Background(), initial))

	later := time.Now().UTC()
	rotated := &models.AuthRecord{
		UserID:      userID,
		Access:      "a1",
		Refresh:     "r2",
		PrevRefresh: "r1",
		CreatedAt:   later, // должен быть проигнорирован при UPDATE
		UpdatedAt:   later,
	}
	require.NoError(t, st.UpsertAuthRecord(context.Background(), rotated))

	got, err := st.AuthRecordByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, "r2", got.Refresh)
	require.Equal(t, "r1", got.PrevRefresh)
	require.WithinDuration(t, first, got.CreatedAt, time.Second)
	require.WithinDuration(t, later, got.UpdatedAt, time.Second)
}

// TestIntegration_AuthRecordByUserID_NotFound — поиск для отсутствующей записи,
// ожидаем storage.ErrNotFound.
func TestIntegration_AuthRecordByUserID_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.AuthRecordByUserID(context.Background(), uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_UpsertAuthRecord_ContextDeadlineExceeded — upsert с мгновенным
// дедлайном должен завершиться ошибкой context.DeadlineExceeded.
func TestIntegration_UpsertAuthRecord_ContextDeadlineExceeded(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	now := time.Now().UTC()
	rec := &models.AuthRecord{
		UserID:    uuid.New(),
		Access:    "a",
		Refresh:   "r",
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := st.UpsertAuthRecord(ctx, rec)
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestIntegration_AuthRecordByUserID_ContextCanceled — отменённый контекст должен
// «просочиться» в ошибку чтения как context.Canceled.
func TestIntegration_AuthRecordByUserID_ContextCanceled(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // отменяем заранее

	_, err := st.AuthRecordByUserID(ctx, uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}
