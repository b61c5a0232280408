package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/avilovaa/kinship/auth-service/internal/keys"
	"github.com/avilovaa/kinship/auth-service/internal/models"
	"github.com/avilovaa/kinship/auth-service/internal/storage"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	a, err := svc.HashPassword("s3cret")
	require.NoError(t, err)
	b, err := svc.HashPassword("s3cret")
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := svc.HashPassword("другой пароль")
	require.NoError(t, err)
	require.NotEqual(t, a, c)

	// Дайджест зависит от серверного ключа.
	otherCfg := testAuthCfg()
	otherCfg.HMACSecret = "another-key"
	other := New(nil, otherCfg, testKM(t))
	d, err := other.HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, a, d)
}

func TestHashPassword_Empty(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.HashPassword("")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestHashPassword_TooLong(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	long := make([]byte, maxPasswordLen+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.HashPassword(string(long))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrPasswordTooLong)

	// Ровно на пределе — допустимо.
	_, err = svc.HashPassword(string(long[:maxPasswordLen]))
	require.NoError(t, err)
}

func TestIsPasswordCorrect_Match(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	digest, err := svc.HashPassword("s3cret")
	require.NoError(t, err)

	st.EXPECT().LatestPasswordDigest(gomock.Any(), userID).
		Return(&models.PasswordDigest{UserID: userID, Digest: digest, CreatedAt: time.Now().UTC()}, nil)

	require.True(t, svc.IsPasswordCorrect(context.Background(), "s3cret", userID))
}

func TestIsPasswordCorrect_NeverErrors(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	digest, err := svc.HashPassword("s3cret")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		st.EXPECT().LatestPasswordDigest(gomock.Any(), userID).
			Return(&models.PasswordDigest{UserID: userID, Digest: digest}, nil)

		require.False(t, svc.IsPasswordCorrect(context.Background(), "wrong", userID))
	})

	t.Run("no digest stored", func(t *testing.T) {
		st.EXPECT().LatestPasswordDigest(gomock.Any(), userID).
			Return(nil, storage.ErrNotFound)

		require.False(t, svc.IsPasswordCorrect(context.Background(), "s3cret", userID))
	})

	t.Run("storage failure", func(t *testing.T) {
		st.EXPECT().LatestPasswordDigest(gomock.Any(), userID).
			Return(nil, context.DeadlineExceeded)

		require.False(t, svc.IsPasswordCorrect(context.Background(), "s3cret", userID))
	})

	t.Run("empty plaintext", func(t *testing.T) {
		// До хранилища дело не доходит.
		require.False(t, svc.IsPasswordCorrect(context.Background(), "", userID))
	})
}

func TestSetPassword_AppendsDigest(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	want, err := svc.HashPassword("n3w-pass")
	require.NoError(t, err)

	var saved *models.PasswordDigest
	st.EXPECT().SavePasswordDigest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.PasswordDigest) error {
			saved = d
			return nil
		})

	require.NoError(t, svc.SetPassword(context.Background(), userID, "n3w-pass"))
	require.NotNil(t, saved)
	require.Equal(t, userID, saved.UserID)
	require.Equal(t, want, saved.Digest)
	require.WithinDuration(t, time.Now().UTC(), saved.CreatedAt, 2*time.Second)
}

func TestSetPassword_Empty(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	err := svc.SetPassword(context.Background(), uuid.New(), "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestDecryptPassword_RoundTrip(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	km := testKM(t)
	ciphertext, err := km.Encrypt([]byte("plain-password"))
	require.NoError(t, err)

	got, err := svc.DecryptPassword(base64.StdEncoding.EncodeToString(ciphertext))
	require.NoError(t, err)
	require.Equal(t, "plain-password", got)
}

func TestDecryptPassword_Malformed(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	t.Run("not base64", func(t *testing.T) {
		_, err := svc.DecryptPassword("%%%not-base64%%%")
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("foreign ciphertext", func(t *testing.T) {
		foreign, err := keys.Generate(2048)
		require.NoError(t, err)
		ciphertext, err := foreign.Encrypt([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.DecryptPassword(base64.StdEncoding.EncodeToString(ciphertext))
		require.Error(t, err)
		require.ErrorIs(t, err, keys.ErrCrypto)
	})
}
