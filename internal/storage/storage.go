package storage

import (
	"context"
	"errors"
	"time"

	"github.com/avilovaa/kinship/auth-service/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — запись не найдена (auth-запись/дайджест/одноразовый токен).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (одноразовый токен).
	ErrAlreadyExists = errors.New("already exists")
)

// AuthRecordStorage выполняет операции над записями аутентификации.
//
// Движок ротации — единственный мутатор записей; каждый его вызов — это один
// read-modify-write по user_id. Хранилище обязано давать изоляцию не слабее
// read committed в рамках одного вызова, транзакций между вызовами нет:
// гонка двух конкурентных Check по одному пользователю разрешается политикой
// last-writer-wins (см. DESIGN.md).
type AuthRecordStorage interface {
	// AuthRecordByUserID находит запись по владельцу.
	AuthRecordByUserID(ctx context.Context, userID uuid.UUID) (*models.AuthRecord, error)
	// UpsertAuthRecord создаёт запись либо перезаписывает её поля на месте.
	UpsertAuthRecord(ctx context.Context, record *models.AuthRecord) error
}

// CredentialStorage выполняет операции над дайджестами паролей.
type CredentialStorage interface {
	// SavePasswordDigest добавляет новый дайджест (история append-only).
	SavePasswordDigest(ctx context.Context, digest *models.PasswordDigest) error
	// LatestPasswordDigest возвращает самый свежий дайджест пользователя.
	LatestPasswordDigest(ctx context.Context, userID uuid.UUID) (*models.PasswordDigest, error)
}

// OneTimeTokenStorage выполняет операции над одноразовыми токенами (reset/MFA).
type OneTimeTokenStorage interface {
	// SaveOneTimeToken сохраняет хэш выпущенного одноразового токена.
	SaveOneTimeToken(ctx context.Context, token *models.OneTimeToken) error
	// ConsumeOneTimeToken пытается погасить токен:
	//   (true, nil)  — токен был активен и погашен сейчас;
	//   (false, nil) — токен существует, но уже был использован;
	//   (false, ErrNotFound) — токен не найден.
	ConsumeOneTimeToken(ctx context.Context, hash string) (bool, error)
	// DeleteExpiredOneTimeTokens удаляет все просроченные одноразовые токены.
	DeleteExpiredOneTimeTokens(ctx context.Context, now time.Time) error
}

// Storage задает контракт работы с БД.
type Storage interface {
	AuthRecordStorage
	CredentialStorage
	OneTimeTokenStorage
	Close()
}
