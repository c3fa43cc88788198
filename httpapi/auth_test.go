package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-client/errors"
	"chat-client/mocks"
	"chat-client/repositories"
	"chat-client/services"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockIAuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIAuthService(ctrl)
	handler := NewAuthHandler(svc, nil)

	r := gin.New()
	r.POST("/api/auth/otp", handler.RequestOTP)
	r.POST("/api/auth/verify", handler.VerifyOTP)
	r.GET("/api/auth/state", handler.State)
	return r, svc
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestOTP(t *testing.T) {
	req := require.New(t)
	router, svc := setupAuthRouter(t)

	svc.EXPECT().RequestOTP(gomock.Any(), "+33612345678").Return(nil)

	rec := postJSON(router, "/api/auth/otp", `{"phone":"+33612345678"}`)
	req.Equal(http.StatusAccepted, rec.Code)
}

func TestRequestOTPInvalidPhone(t *testing.T) {
	req := require.New(t)
	router, svc := setupAuthRouter(t)

	svc.EXPECT().RequestOTP(gomock.Any(), "12345").Return(errors.ErrInvalidPhone)

	rec := postJSON(router, "/api/auth/otp", `{"phone":"12345"}`)
	req.Equal(http.StatusBadRequest, rec.Code)
}

func TestRequestOTPMissingBody(t *testing.T) {
	router, _ := setupAuthRouter(t)
	rec := postJSON(router, "/api/auth/otp", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTP(t *testing.T) {
	req := require.New(t)
	router, svc := setupAuthRouter(t)

	svc.EXPECT().
		VerifyOTP(gomock.Any(), "+33612345678", "123456").
		Return(services.Token("signed-token"), nil)

	rec := postJSON(router, "/api/auth/verify", `{"phone":"+33612345678","code":"123456"}`)
	req.Equal(http.StatusOK, rec.Code)

	var resp map[string]string
	req.NoError(json.NewDecoder(rec.Body).Decode(&resp))
	req.Equal("signed-token", resp["token"])
}

func TestVerifyOTPErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"no pending", errors.ErrOTPNotFound, http.StatusNotFound},
		{"expired", errors.ErrOTPExpired, http.StatusGone},
		{"locked", errors.ErrTooManyAttempts, http.StatusTooManyRequests},
		{"mismatch", errors.ErrOTPMismatch, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, svc := setupAuthRouter(t)
			svc.EXPECT().
				VerifyOTP(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(services.Token(""), tc.err)

			rec := postJSON(router, "/api/auth/verify", `{"phone":"+33612345678","code":"000000"}`)
			require.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestAuthStateHidesToken(t *testing.T) {
	req := require.New(t)
	router, svc := setupAuthRouter(t)

	svc.EXPECT().CurrentState().Return(repositories.StoredAuthState{
		UserID:   "u-1",
		Phone:    "+33612345678",
		Token:    "secret",
		LoggedIn: true,
	}, true, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/state", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.NotContains(rec.Body.String(), "secret")
}
