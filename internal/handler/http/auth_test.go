package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack/worktrack-backend-go/internal/domain/auth"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/jwt"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/oauth"
)

// fakeAuthService returns canned responses so handler behavior can be tested
// without a database.
type fakeAuthService struct {
	tokens auth.TokenResponse
	err    error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	return f.tokens, f.err
}

func (f *fakeAuthService) LoginWithGoogle(ctx context.Context, googleEmail, googleID string, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	return f.tokens, f.err
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	return f.tokens, f.err
}

func (f *fakeAuthService) Logout(ctx context.Context, refreshToken string) error {
	return f.err
}

func newTestAuthHandler(svc auth.AuthService) AuthHandler {
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	googleSvc := oauth.NewGoogleService("test-client-id", "test-client-secret", "http://localhost:3000/callback", []string{"email"})
	return NewAuthHandler(jwtSvc, svc, googleSvc, "http://localhost:3000")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := newTestAuthHandler(&fakeAuthService{
		tokens: auth.TokenResponse{
			AccessToken:           "access-token",
			AccessTokenExpiresIn:  1700000000,
			RefreshToken:          "refresh-token",
			RefreshTokenExpiresIn: 1700086400,
		},
	})

	body, _ := json.Marshal(auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp["success"].(bool))

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "access-token", data["access_token"])

	var refreshCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "refresh_token" {
			refreshCookie = cookie
			break
		}
	}
	require.NotNil(t, refreshCookie)
	assert.Equal(t, "refresh-token", refreshCookie.Value)
	assert.True(t, refreshCookie.HttpOnly)
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	handler := newTestAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	handler := newTestAuthHandler(&fakeAuthService{})

	body, _ := json.Marshal(auth.LoginRequest{
		Email:    "not-an-email",
		Password: "",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp["success"].(bool))
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := newTestAuthHandler(&fakeAuthService{err: auth.ErrInvalidCredentials})

	body, _ := json.Marshal(auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrongpassword",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LoginWithGoogle_Redirect(t *testing.T) {
	handler := newTestAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/login/oauth/google", nil)
	w := httptest.NewRecorder()

	handler.LoginWithGoogle(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.NotEmpty(t, w.Header().Get("Location"))

	var stateCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "state" {
			stateCookie = cookie
			break
		}
	}
	require.NotNil(t, stateCookie)
	assert.NotEmpty(t, stateCookie.Value)
}

func TestAuthHandler_Logout_NoCookie(t *testing.T) {
	handler := newTestAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()

	handler.Logout(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	handler := newTestAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "some-refresh-token"})
	w := httptest.NewRecorder()

	handler.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var refreshCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "refresh_token" {
			refreshCookie = cookie
			break
		}
	}
	require.NotNil(t, refreshCookie)
	assert.Empty(t, refreshCookie.Value)
}

func TestAuthHandler_RefreshToken_NoCookie(t *testing.T) {
	handler := newTestAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	w := httptest.NewRecorder()

	handler.RefreshToken(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	handler := newTestAuthHandler(&fakeAuthService{
		tokens: auth.TokenResponse{
			AccessToken:          "new-access-token",
			AccessTokenExpiresIn: 1700000000,
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "some-refresh-token"})
	w := httptest.NewRecorder()

	handler.RefreshToken(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "new-access-token", data["access_token"])
}
