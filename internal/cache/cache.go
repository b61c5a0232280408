package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/avilovaa/kinship/auth-service/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AuthCache — минимальный контракт кэша записей аутентификации.
//
// Кэш сквозной и best-effort: источником истины остаётся БД, движок ротации
// обновляет ключ после каждой своей мутации, а ошибки кэша деградируют до
// похода в хранилище.
type AuthCache interface {
	// Get возвращает запись и признак её наличия в кэше.
	Get(ctx context.Context, userID uuid.UUID) (*models.AuthRecord, bool, error)
	// Set сохраняет запись с TTL (обычно TTL refresh-токена).
	Set(ctx context.Context, record *models.AuthRecord, ttl time.Duration) error
	// Invalidate удаляет запись из кэша.
	Invalidate(ctx context.Context, userID uuid.UUID) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "auth:rec:".
func NewRedisCache(redisURL, prefix string) (AuthCache, error) {
	if prefix == "" {
		prefix = "auth:rec:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(userID uuid.UUID) string { return c.prefix + userID.String() }

// Храним как Redis Hash с полями: acc, ref, prev, cre (unix), upd (unix).
func (c *redisCache) Get(ctx context.Context, userID uuid.UUID) (*models.AuthRecord, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(userID)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	creUnix, err := strconv.ParseInt(m["cre"], 10, 64)
	if err != nil {
		return nil, false, err
	}

	updUnix, err := strconv.ParseInt(m["upd"], 10, 64)
	if err != nil {
		return nil, false, err
	}

	return &models.AuthRecord{
		UserID:      userID,
		Access:      m["acc"],
		Refresh:     m["ref"],
		PrevRefresh: m["prev"],
		CreatedAt:   time.Unix(creUnix, 0).UTC(),
		UpdatedAt:   time.Unix(updUnix, 0).UTC(),
	}, true, nil
}

func (c *redisCache) Set(ctx context.Context, record *models.AuthRecord, ttl time.Duration) error {
	kv := map[string]string{
		"acc":  record.Access,
		"ref":  record.Refresh,
		"prev": record.PrevRefresh,
		"cre":  strconv.FormatInt(record.CreatedAt.Unix(), 10),
		"upd":  strconv.FormatInt(record.UpdatedAt.Unix(), 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(record.UserID), kv)
	pipe.Expire(ctx, c.key(record.UserID), ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.rdb.Del(ctx, c.key(userID)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
