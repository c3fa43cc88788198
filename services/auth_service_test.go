package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-client/auth"
	. "chat-client/services"
	"chat-client/errors"
	"chat-client/mocks"
	"chat-client/repositories"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

const testPhone = "+33612345678"

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newAuthService(otpRepo repositories.IOTPRepository, stateRepo repositories.IAuthStateRepository) *AuthService {
	return NewAuthService(nil, otpRepo, stateRepo, fakeClock{now: testNow}, nil,
		5*time.Minute, 24*time.Hour, 3)
}

func TestAuthService_RequestOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	otpRepo := mocks.NewMockIOTPRepository(ctrl)
	stateRepo := mocks.NewMockIAuthStateRepository(ctrl)
	svc := newAuthService(otpRepo, stateRepo)

	t.Run("should store a hashed challenge for a valid phone", func(t *testing.T) {
		req := require.New(t)

		otpRepo.EXPECT().
			StorePending(testPhone, gomock.Any(), 5*time.Minute).
			DoAndReturn(func(_ string, pending repositories.PendingVerification, _ time.Duration) error {
				req.Contains(pending.CodeHash, "$argon2id$")
				req.True(pending.ExpiresAt.Equal(testNow.Add(5 * time.Minute)))
				return nil
			}).
			Times(1)

		req.NoError(svc.RequestOTP(context.Background(), testPhone))
	})

	t.Run("should reject a malformed phone before storing anything", func(t *testing.T) {
		req := require.New(t)

		otpRepo.EXPECT().StorePending(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.RequestOTP(context.Background(), "0612345678")
		req.ErrorIs(err, errors.ErrInvalidPhone)
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	hash, err := auth.HashCode("123456")
	require.NoError(t, err)

	pending := repositories.PendingVerification{
		CodeHash:  hash,
		IssuedAt:  testNow.Add(-time.Minute),
		ExpiresAt: testNow.Add(4 * time.Minute),
	}

	t.Run("should mint a token and persist login on the right code", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otpRepo := mocks.NewMockIOTPRepository(ctrl)
		stateRepo := mocks.NewMockIAuthStateRepository(ctrl)
		svc := newAuthService(otpRepo, stateRepo)

		otpRepo.EXPECT().GetPending(testPhone).Return(pending, true, nil)
		otpRepo.EXPECT().Delete(testPhone).Return(nil)
		stateRepo.EXPECT().Load().Return(repositories.StoredAuthState{}, false, nil)
		stateRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(state repositories.StoredAuthState) error {
				req.True(state.LoggedIn)
				req.False(state.ProfileCompleted)
				req.Equal(testPhone, state.Phone)
				req.NotEmpty(state.UserID)
				return nil
			})

		token, err := svc.VerifyOTP(context.Background(), testPhone, "123456")
		req.NoError(err)

		claims, err := auth.ValidateToken(string(token))
		req.NoError(err)
		req.Equal(testPhone, claims.Phone)
	})

	t.Run("should keep the user identity across re-logins", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otpRepo := mocks.NewMockIOTPRepository(ctrl)
		stateRepo := mocks.NewMockIAuthStateRepository(ctrl)
		svc := newAuthService(otpRepo, stateRepo)

		existing := repositories.StoredAuthState{
			UserID:           "user-42",
			Phone:            testPhone,
			ProfileCompleted: true,
		}
		otpRepo.EXPECT().GetPending(testPhone).Return(pending, true, nil)
		otpRepo.EXPECT().Delete(testPhone).Return(nil)
		stateRepo.EXPECT().Load().Return(existing, true, nil)
		stateRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(state repositories.StoredAuthState) error {
				req.Equal("user-42", state.UserID)
				req.True(state.ProfileCompleted)
				return nil
			})

		_, err := svc.VerifyOTP(context.Background(), testPhone, "123456")
		req.NoError(err)
	})

	t.Run("should count the attempt on a wrong code", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otpRepo := mocks.NewMockIOTPRepository(ctrl)
		stateRepo := mocks.NewMockIAuthStateRepository(ctrl)
		svc := newAuthService(otpRepo, stateRepo)

		otpRepo.EXPECT().GetPending(testPhone).Return(pending, true, nil)
		otpRepo.EXPECT().IncrementAttempts(testPhone).Return(1, nil)

		_, err := svc.VerifyOTP(context.Background(), testPhone, "000000")
		req.ErrorIs(err, errors.ErrOTPMismatch)
	})

	t.Run("should refuse without a pending challenge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otpRepo := mocks.NewMockIOTPRepository(ctrl)
		svc := newAuthService(otpRepo, mocks.NewMockIAuthStateRepository(ctrl))

		otpRepo.EXPECT().GetPending(testPhone).Return(repositories.PendingVerification{}, false, nil)

		_, err := svc.VerifyOTP(context.Background(), testPhone, "123456")
		require.ErrorIs(t, err, errors.ErrOTPNotFound)
	})

	t.Run("should refuse an expired challenge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otpRepo := mocks.NewMockIOTPRepository(ctrl)
		svc := newAuthService(otpRepo, mocks.NewMockIAuthStateRepository(ctrl))

		expired := pending
		expired.ExpiresAt = testNow.Add(-time.Second)
		otpRepo.EXPECT().GetPending(testPhone).Return(expired, true, nil)

		_, err := svc.VerifyOTP(context.Background(), testPhone, "123456")
		require.ErrorIs(t, err, errors.ErrOTPExpired)
	})

	t.Run("should lock out after too many attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otpRepo := mocks.NewMockIOTPRepository(ctrl)
		svc := newAuthService(otpRepo, mocks.NewMockIAuthStateRepository(ctrl))

		locked := pending
		locked.Attempts = 3
		otpRepo.EXPECT().GetPending(testPhone).Return(locked, true, nil)

		_, err := svc.VerifyOTP(context.Background(), testPhone, "123456")
		require.ErrorIs(t, err, errors.ErrTooManyAttempts)
	})
}

func TestAuthService_CompleteProfile(t *testing.T) {
	profile := auth.ProfileRequest{
		FirstName: "Alice",
		LastName:  "Martin",
		Country:   "France",
	}

	t.Run("should persist the profile for a logged-in user", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stateRepo := mocks.NewMockIAuthStateRepository(ctrl)
		svc := newAuthService(mocks.NewMockIOTPRepository(ctrl), stateRepo)

		stateRepo.EXPECT().Load().
			Return(repositories.StoredAuthState{UserID: "user-42", LoggedIn: true}, true, nil)
		stateRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(state repositories.StoredAuthState) error {
				req.True(state.ProfileCompleted)
				req.Equal("Alice", state.FirstName)
				req.Equal("Martin", state.LastName)
				return nil
			})

		req.NoError(svc.CompleteProfile(context.Background(), profile))
	})

	t.Run("should refuse when nobody is logged in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stateRepo := mocks.NewMockIAuthStateRepository(ctrl)
		svc := newAuthService(mocks.NewMockIOTPRepository(ctrl), stateRepo)

		stateRepo.EXPECT().Load().Return(repositories.StoredAuthState{}, false, nil)

		err := svc.CompleteProfile(context.Background(), profile)
		require.ErrorIs(t, err, errors.ErrNotAuthenticated)
	})

	t.Run("should reject an incomplete form without touching storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stateRepo := mocks.NewMockIAuthStateRepository(ctrl)
		svc := newAuthService(mocks.NewMockIOTPRepository(ctrl), stateRepo)

		stateRepo.EXPECT().Load().Times(0)

		err := svc.CompleteProfile(context.Background(), auth.ProfileRequest{FirstName: "Alice"})
		require.ErrorIs(t, err, errors.ErrInvalidProfile)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stateRepo := mocks.NewMockIAuthStateRepository(ctrl)
	svc := newAuthService(mocks.NewMockIOTPRepository(ctrl), stateRepo)

	stateRepo.EXPECT().Clear().Return(nil)
	require.NoError(t, svc.Logout())
}
