package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/avilovaa/kinship/auth-service/internal/pkg/log"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// UnaryLoggingInterceptor логирует unary-вызовы и кладёт обогащённый
// логгер в контекст (pkg/log), чтобы сервисный слой писал с теми же полями.
//
// Поведение:
//   - request_id берётся из metadata x-request-id, иначе генерируется UUID;
//     сгенерированный id возвращается клиенту заголовком x-request-id;
//   - после handler пишется одна строка: msg="rpc", code, dur;
//   - уровень зависит от исхода: Internal/Unknown — Error, остальные — Info.
//     Unauthenticated и NotFound для auth-сервиса — штатные исходы Check,
//     поэтому уровнем Error не считаются;
//   - тела запросов и токены в лог не попадают.
func UnaryLoggingInterceptor(base *slog.Logger) grpc.UnaryServerInterceptor {
	if base == nil {
		base = slog.Default()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		var rid string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get("x-request-id"); len(v) > 0 && v[0] != "" {
				rid = v[0]
			}
		}
		if rid == "" {
			rid = uuid.NewString()
			_ = grpc.SetHeader(ctx, metadata.Pairs("x-request-id", rid))
		}

		peerStr := "-"
		if p, ok := peer.FromContext(ctx); ok && p != nil && p.Addr != nil {
			peerStr = p.Addr.String()
		}

		l := base.With(
			slog.String("request_id", rid),
			slog.String("method", info.FullMethod),
			slog.String("peer", peerStr),
		)

		resp, err := handler(log.Into(ctx, l), req)

		code := status.Code(err)
		lvl := slog.LevelInfo
		if code == codes.Internal || code == codes.Unknown {
			lvl = slog.LevelError
		}

		l.Log(ctx, lvl, "rpc",
			slog.String("code", code.String()),
			slog.Duration("dur", time.Since(start)),
		)

		return resp, err
	}
}
