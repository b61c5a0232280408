package grpc

import (
	"context"
	"encoding/base64"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	authv1 "github.com/avilovaa/kinship/auth-service/gen/go/auth"
	"github.com/avilovaa/kinship/auth-service/internal/config"
	"github.com/avilovaa/kinship/auth-service/internal/keys"
	"github.com/avilovaa/kinship/auth-service/internal/models"
	"github.com/avilovaa/kinship/auth-service/internal/service"
	"github.com/avilovaa/kinship/auth-service/internal/storage"
	"github.com/avilovaa/kinship/auth-service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// Файл unit-тестов транспортного слоя (gRPC) для AuthService.
// Все тесты изолированы: для каждого создаётся отдельный bufconn-сервер.

// testCfg — минимальная конфигурация сервиса для тестов транспорта.
func testCfg() config.AuthConfig {
	return config.AuthConfig{
		HMACSecret:      "unit-hmac",
		StaticSecret:    "unit-static",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 1 * time.Hour,
		ResetTokenTTL:   30 * time.Minute,
		MFACodeTTL:      5 * time.Minute,
		Issuer:          "kinship-auth",
		ResetLinkBase:   "https://kinship.local/reset",
	}
}

var (
	kmOnce sync.Once
	kmVal  *keys.Manager
)

func testKM(t *testing.T) *keys.Manager {
	t.Helper()

	kmOnce.Do(func() {
		km, err := keys.Generate(2048)
		if err != nil {
			panic(err)
		}
		kmVal = km
	})

	return kmVal
}

// newSvcWithMock — фабрика сервисного слоя с gomock-хранилищем.
func newSvcWithMock(t *testing.T) (*service.Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	return service.New(st, testCfg(), testKM(t)), st, ctrl
}

// startGRPC — поднимает bufconn-gRPC-сервер с переданным сервисом
// и возвращает клиент и функцию очистки.
func startGRPC(t *testing.T, svc *service.Service) (authv1.AuthServiceClient, func()) {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	authv1.RegisterAuthServiceServer(s, NewAuthServer(svc))

	go func() { _ = s.Serve(lis) }()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }

	cc, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	cleanup := func() { _ = cc.Close(); s.Stop() }
	return authv1.NewAuthServiceClient(cc), cleanup
}

// stubMailer — запоминает последний код/ссылку вместо доставки.
type stubMailer struct {
	link string
	code string
}

func (m *stubMailer) SendResetLink(_ context.Context, _, link string) error {
	m.link = link
	return nil
}

func (m *stubMailer) SendMFACode(_ context.Context, _, code string) error {
	m.code = code
	return nil
}

// encryptPW — шифрует пароль публичным ключом сервера, как это делает клиент.
func encryptPW(t *testing.T, password string) string {
	t.Helper()

	ciphertext, err := testKM(t).Encrypt([]byte(password))
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(ciphertext)
}

func TestProvision_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	userID := uuid.New()
	st.EXPECT().AuthRecordByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
	st.EXPECT().UpsertAuthRecord(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := client.Provision(context.Background(), &authv1.ProvisionRequest{UserId: userID.String()})
	require.NoError(t, err)
	require.Equal(t, userID.String(), resp.GetUserId())
	require.NotEmpty(t, resp.GetAccessToken())
	require.NotEmpty(t, resp.GetRefreshToken())
	require.Greater(t, resp.GetAccessExpiresAt(), time.Now().Unix())
}

func TestProvision_InvalidUserID(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	_, err := client.Provision(context.Background(), &authv1.ProvisionRequest{UserId: "not-a-uuid"})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCheck_NoSession_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	userID := uuid.New()
	st.EXPECT().AuthRecordByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

	_, err := client.Check(context.Background(), &authv1.CheckRequest{
		UserId:       userID.String(),
		AccessToken:  "a",
		RefreshToken: "r",
	})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}

// TestCheck_RotationAndReplay — сквозной сценарий через транспорт:
// выпуск пары, ротация по валидной паре, повтор старого refresh — отказ.
func TestCheck_RotationAndReplay(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	userID := uuid.New()
	ctx := context.Background()

	// Хранилище-в-памяти поверх мока: запись живёт между вызовами.
	var rec *models.AuthRecord
	st.EXPECT().AuthRecordByUserID(gomock.Any(), userID).
		DoAndReturn(func(context.Context, uuid.UUID) (*models.AuthRecord, error) {
			if rec == nil {
				return nil, storage.ErrNotFound
			}
			cp := *rec
			return &cp, nil
		}).AnyTimes()
	st.EXPECT().UpsertAuthRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.AuthRecord) error {
			cp := *r
			rec = &cp
			return nil
		}).AnyTimes()

	issued, err := client.Provision(ctx, &authv1.ProvisionRequest{UserId: userID.String()})
	require.NoError(t, err)

	rotated, err := client.Check(ctx, &authv1.CheckRequest{
		UserId:       userID.String(),
		AccessToken:  issued.GetAccessToken(),
		RefreshToken: issued.GetRefreshToken(),
	})
	require.NoError(t, err)
	require.Equal(t, issued.GetAccessToken(), rotated.GetAccessToken())
	require.NotEqual(t, issued.GetRefreshToken(), rotated.GetRefreshToken())

	// Повтор refresh предыдущего поколения — сессия сжигается.
	_, err = client.Check(ctx, &authv1.CheckRequest{
		UserId:       userID.String(),
		AccessToken:  rotated.GetAccessToken(),
		RefreshToken: issued.GetRefreshToken(),
	})
	require.Error(t, err)
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	// После сжигания даже свежая пара мертва.
	_, err = client.Check(ctx, &authv1.CheckRequest{
		UserId:       userID.String(),
		AccessToken:  rotated.GetAccessToken(),
		RefreshToken: rotated.GetRefreshToken(),
	})
	require.Error(t, err)
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestPublicKey_OK(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	resp, err := client.PublicKey(context.Background(), &authv1.PublicKeyRequest{})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(resp.GetPublicKeyPem(), "-----BEGIN PUBLIC KEY-----"))
}

func TestVerifyPassword_Correct(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	userID := uuid.New()
	digest, err := svc.HashPassword("s3cret")
	require.NoError(t, err)

	st.EXPECT().LatestPasswordDigest(gomock.Any(), userID).
		Return(&models.PasswordDigest{UserID: userID, Digest: digest}, nil)

	resp, err := client.VerifyPassword(context.Background(), &authv1.VerifyPasswordRequest{
		UserId:             userID.String(),
		PasswordCiphertext: encryptPW(t, "s3cret"),
	})
	require.NoError(t, err)
	require.True(t, resp.GetCorrect())
}

func TestVerifyPassword_UndecryptableCiphertext_IsJustIncorrect(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	resp, err := client.VerifyPassword(context.Background(), &authv1.VerifyPasswordRequest{
		UserId:             uuid.New().String(),
		PasswordCiphertext: "%%%not-a-ciphertext%%%",
	})
	require.NoError(t, err)
	require.False(t, resp.GetCorrect())
}

func TestInvalidateSession_NoSession_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	userID := uuid.New()
	st.EXPECT().AuthRecordByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

	_, err := client.InvalidateSession(context.Background(), &authv1.InvalidateSessionRequest{UserId: userID.String()})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestRequestPasswordReset_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	userID := uuid.New()
	st.EXPECT().SaveOneTimeToken(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := client.RequestPasswordReset(context.Background(), &authv1.RequestPasswordResetRequest{
		UserId: userID.String(),
		Email:  "user@example.com",
	})
	require.NoError(t, err)
	require.True(t, resp.GetOk())
}

func TestConfirmPasswordReset_BadCiphertext_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	_, err := client.ConfirmPasswordReset(context.Background(), &authv1.ConfirmPasswordResetRequest{
		Token:              "whatever",
		PasswordCiphertext: "%%%not-base64%%%",
	})
	require.Error(t, err)
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestMFA_IssueAndVerify_Flow(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()

	ml := &stubMailer{}
	svc.SetMailer(ml)

	client, done := startGRPC(t, svc)
	defer done()

	userID := uuid.New()
	ctx := context.Background()

	st.EXPECT().SaveOneTimeToken(gomock.Any(), gomock.Any()).Return(nil)

	issued, err := client.IssueMFAChallenge(ctx, &authv1.IssueMFAChallengeRequest{
		UserId: userID.String(),
		Email:  "user@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, issued.GetChallengeToken())
	require.Len(t, ml.code, 6)

	st.EXPECT().ConsumeOneTimeToken(gomock.Any(), gomock.Any()).Return(true, nil)
	st.EXPECT().AuthRecordByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
	st.EXPECT().UpsertAuthRecord(gomock.Any(), gomock.Any()).Return(nil)

	pair, err := client.VerifyMFAChallenge(ctx, &authv1.VerifyMFAChallengeRequest{
		ChallengeToken: issued.GetChallengeToken(),
		Code:           ml.code,
	})
	require.NoError(t, err)
	require.Equal(t, userID.String(), pair.GetUserId())
	require.NotEmpty(t, pair.GetAccessToken())
	require.NotEmpty(t, pair.GetRefreshToken())
}
