// Пакет log привязывает *slog.Logger к context.Context: интерсепторы
// обогащают логгер полями запроса (request_id, метод, peer), а сервисный
// слой достаёт его через From, не таская логгер параметром.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into возвращает контекст с привязанным логгером.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From возвращает логгер из контекста либо slog.Default(),
// если логгер не привязан (или привязано что-то другое).
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}

	return slog.Default()
}

// WithAttrs обогащает контекстный логгер атрибутами и возвращает контекст
// с результатом; исходный контекст не меняется.
func WithAttrs(ctx context.Context, attrs ...any) context.Context {
	return Into(ctx, From(ctx).With(attrs...))
}
