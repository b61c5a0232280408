// transport/grpc содержит реализацию gRPC-эндпоинтов AuthService.
// Здесь выполняется только маппинг данных и ошибок доменного слоя (service) в gRPC.
// Вся валидация и бизнес-логика находятся в пакете service.
//
// Принципы:
//   - Контекст запроса прокидывается в сервис без потерь;
//   - Ошибки сервиса явно транслируются в коды gRPC:
//   - ErrNoSession -> codes.NotFound;
//   - ErrInvalidAccessToken/ErrAccessDenied/ErrReauthRequired -> codes.Unauthenticated;
//   - ErrInvalidToken/ErrTokenExpired -> codes.Unauthenticated;
//   - ErrEmptyPassword/ErrPasswordReused/keys.ErrCrypto -> codes.InvalidArgument;
//   - иные ошибки -> codes.Internal c единым безопасным сообщением;
//   - детали несовпадения (просрочен/подделан) клиенту не сообщаются —
//     наружу уходит только грубое деление Unauthenticated/NotFound.
//
// Безопасность:
//   - Для codes.Internal наружу не утекают детали внутренних ошибок; подробности
//     должны попадать в логи через интерсепторы на уровне сервера.
package grpc

import (
	"context"
	"errors"

	authv1 "github.com/avilovaa/kinship/auth-service/gen/go/auth"
	"github.com/avilovaa/kinship/auth-service/internal/keys"
	"github.com/avilovaa/kinship/auth-service/internal/service"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type AuthServer struct {
	authv1.UnimplementedAuthServiceServer
	service *service.Service
}

// NewAuthServer создаёт gRPC-сервер авторизации поверх сервисного слоя.
func NewAuthServer(service *service.Service) *AuthServer {
	return &AuthServer{service: service}
}

// Provision выпускает свежую пару токенов после успешного входа/регистрации.
// Вызывается внешним слоем ровно один раз на событие аутентификации.
func (s *AuthServer) Provision(ctx context.Context, req *authv1.ProvisionRequest) (*authv1.TokenPairResponse, error) {
	const op = "transport/grpc/server/Provision"

	uid, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user id", op)
	}

	pair, err := s.service.Provision(ctx, uid)
	if err != nil {
		return nil, mapServiceErr(op, err)
	}

	return &authv1.TokenPairResponse{
		UserId:          uid.String(),
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: pair.AccessExpiresAt.Unix(),
	}, nil
}

// Check валидирует предъявленную пару и возвращает (возможно обновлённую).
// Клиент обязан заменить обе свои строки на возвращённые.
func (s *AuthServer) Check(ctx context.Context, req *authv1.CheckRequest) (*authv1.TokenPairResponse, error) {
	const op = "transport/grpc/server/Check"

	uid, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user id", op)
	}

	pair, err := s.service.Check(ctx, uid, req.GetAccessToken(), req.GetRefreshToken())
	if err != nil {
		return nil, mapServiceErr(op, err)
	}

	return &authv1.TokenPairResponse{
		UserId:          uid.String(),
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: pair.AccessExpiresAt.Unix(),
	}, nil
}

// PublicKey отдаёт публичную половину серверной пары (PEM).
func (s *AuthServer) PublicKey(ctx context.Context, _ *authv1.PublicKeyRequest) (*authv1.PublicKeyResponse, error) {
	const op = "transport/grpc/server/PublicKey"

	pem, err := s.service.PublicKeyPEM()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &authv1.PublicKeyResponse{PublicKeyPem: pem}, nil
}

// VerifyPassword сверяет пароль (зашифрованный публичным ключом сервера)
// с действующим дайджестом. Контракт: ошибки проверки наружу не уходят —
// любой внутренний сбой выглядит как {Correct:false}.
func (s *AuthServer) VerifyPassword(ctx context.Context, req *authv1.VerifyPasswordRequest) (*authv1.VerifyPasswordResponse, error) {
	const op = "transport/grpc/server/VerifyPassword"

	uid, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user id", op)
	}

	plaintext, err := s.service.DecryptPassword(req.GetPasswordCiphertext())
	if err != nil {
		return &authv1.VerifyPasswordResponse{Correct: false}, nil
	}

	return &authv1.VerifyPasswordResponse{
		Correct: s.service.IsPasswordCorrect(ctx, plaintext, uid),
	}, nil
}

// InvalidateSession сжигает запись пользователя (logout).
func (s *AuthServer) InvalidateSession(ctx context.Context, req *authv1.InvalidateSessionRequest) (*authv1.InvalidateSessionResponse, error) {
	const op = "transport/grpc/server/InvalidateSession"

	uid, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user id", op)
	}

	if err := s.service.InvalidateSession(ctx, uid); err != nil {
		return nil, mapServiceErr(op, err)
	}

	return &authv1.InvalidateSessionResponse{Ok: true}, nil
}

// RequestPasswordReset выпускает одноразовый reset-токен и шлёт письмо.
func (s *AuthServer) RequestPasswordReset(ctx context.Context, req *authv1.RequestPasswordResetRequest) (*authv1.RequestPasswordResetResponse, error) {
	const op = "transport/grpc/server/RequestPasswordReset"

	uid, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user id", op)
	}

	if err := s.service.RequestPasswordReset(ctx, uid, req.GetEmail()); err != nil {
		return nil, mapServiceErr(op, err)
	}

	return &authv1.RequestPasswordResetResponse{Ok: true}, nil
}

// ConfirmPasswordReset гасит reset-токен и устанавливает новый пароль
// (пароль приходит зашифрованным публичным ключом сервера).
func (s *AuthServer) ConfirmPasswordReset(ctx context.Context, req *authv1.ConfirmPasswordResetRequest) (*authv1.ConfirmPasswordResetResponse, error) {
	const op = "transport/grpc/server/ConfirmPasswordReset"

	plaintext, err := s.service.DecryptPassword(req.GetPasswordCiphertext())
	if err != nil {
		return nil, mapServiceErr(op, err)
	}

	if err := s.service.ConfirmPasswordReset(ctx, req.GetToken(), plaintext); err != nil {
		return nil, mapServiceErr(op, err)
	}

	return &authv1.ConfirmPasswordResetResponse{Ok: true}, nil
}

// IssueMFAChallenge выпускает MFA-челлендж (код уходит почтой).
func (s *AuthServer) IssueMFAChallenge(ctx context.Context, req *authv1.IssueMFAChallengeRequest) (*authv1.IssueMFAChallengeResponse, error) {
	const op = "transport/grpc/server/IssueMFAChallenge"

	uid, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user id", op)
	}

	token, err := s.service.IssueMFAChallenge(ctx, uid, req.GetEmail())
	if err != nil {
		return nil, mapServiceErr(op, err)
	}

	return &authv1.IssueMFAChallengeResponse{ChallengeToken: token}, nil
}

// VerifyMFAChallenge проверяет код и при успехе выпускает пару токенов.
func (s *AuthServer) VerifyMFAChallenge(ctx context.Context, req *authv1.VerifyMFAChallengeRequest) (*authv1.TokenPairResponse, error) {
	const op = "transport/grpc/server/VerifyMFAChallenge"

	pair, uid, err := s.service.VerifyMFAChallenge(ctx, req.GetChallengeToken(), req.GetCode())
	if err != nil {
		return nil, mapServiceErr(op, err)
	}

	return &authv1.TokenPairResponse{
		UserId:          uid.String(),
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: pair.AccessExpiresAt.Unix(),
	}, nil
}

// mapServiceErr транслирует сентинелы сервиса в коды gRPC.
func mapServiceErr(op string, err error) error {
	switch {
	case errors.Is(err, service.ErrNoSession):
		return status.Errorf(codes.NotFound, "%s: %v", op, service.ErrNoSession)
	case errors.Is(err, service.ErrInvalidAccessToken),
		errors.Is(err, service.ErrAccessDenied),
		errors.Is(err, service.ErrReauthRequired),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired):
		return status.Errorf(codes.Unauthenticated, "%s: %v", op, err)
	case errors.Is(err, service.ErrEmptyPassword),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, service.ErrPasswordReused),
		errors.Is(err, keys.ErrCrypto):
		return status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	default:
		return status.Errorf(codes.Internal, "internal server error")
	}
}
