// recover.go реализует перехватчик паник для unary-вызовов.
package interceptors

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/avilovaa/kinship/auth-service/internal/pkg/log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Recover перехватывает паники в обработчиках: пишет лог уровня Error
// с методом, значением паники и стеком, а клиенту отвечает нейтральным
// codes.Internal без внутренних деталей.
//
// Логгер берётся из контекста (pkg/log); если его там нет — используется
// base, затем slog.Default().
func Recover(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			l := log.From(ctx)
			if l == slog.Default() && base != nil {
				l = base
			}

			l.Error("panic_recovered",
				slog.String("method", info.FullMethod),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)

			resp = nil
			err = status.Error(codes.Internal, "internal server error")
		}()

		return handler(ctx, req)
	}
}
