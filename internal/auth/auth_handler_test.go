package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrapp/internal/auth"
	autherrors "hrapp/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeAuthService struct {
	registerFn        func(ctx context.Context, req auth.RegisterRequest) (string, *auth.AuthResponse, error)
	loginFn           func(ctx context.Context, req auth.LoginRequest) (string, *auth.AuthResponse, error)
	forgotPasswordFn  func(ctx context.Context, email string) error
	verifyResetCodeFn func(ctx context.Context, email, code string) (string, error)
	resetPasswordFn   func(ctx context.Context, resetToken, newPassword string) error
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (string, *auth.AuthResponse, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (string, *auth.AuthResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) ForgotPassword(ctx context.Context, email string) error {
	return f.forgotPasswordFn(ctx, email)
}

func (f *fakeAuthService) VerifyResetCode(ctx context.Context, email, code string) (string, error) {
	return f.verifyResetCodeFn(ctx, email, code)
}

func (f *fakeAuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return f.resetPasswordFn(ctx, resetToken, newPassword)
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success sets cookie and returns token with user", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeAuthService{
			registerFn: func(ctx context.Context, req auth.RegisterRequest) (string, *auth.AuthResponse, error) {
				assert.Equal(t, "amine@example.com", req.Email)
				return "signed-token", &auth.AuthResponse{
					ID:    userID,
					Name:  req.Name,
					Email: req.Email,
					Role:  "EMPLOYEE",
				}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := postJSON(t, h.Register, "/auth/register",
			`{"name":"Amine","email":"amine@example.com","password":"secret123"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)

		var got struct {
			Token string            `json:"token"`
			User  auth.AuthResponse `json:"user"`
		}
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "signed-token", got.Token)
		assert.Equal(t, userID, got.User.ID)

		cookies := w.Result().Cookies()
		assert.NotEmpty(t, cookies)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
	})

	t.Run("negative invalid role rejected by binding", func(t *testing.T) {
		svc := &fakeAuthService{
			registerFn: func(ctx context.Context, req auth.RegisterRequest) (string, *auth.AuthResponse, error) {
				t.Fatal("service must not be called on binding failure")
				return "", nil, nil
			},
		}

		h := auth.NewHandler(svc)
		w := postJSON(t, h.Register, "/auth/register",
			`{"name":"Amine","email":"amine@example.com","password":"secret123","role":"SUPERUSER"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "VALIDATION_ERROR", env.Error)
	})

	t.Run("negative duplicate email", func(t *testing.T) {
		svc := &fakeAuthService{
			registerFn: func(ctx context.Context, req auth.RegisterRequest) (string, *auth.AuthResponse, error) {
				return "", nil, autherrors.ErrEmailAlreadyRegistered
			},
		}

		h := auth.NewHandler(svc)
		w := postJSON(t, h.Register, "/auth/register",
			`{"name":"Amine","email":"amine@example.com","password":"secret123"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "DUPLICATE_KEY", env.Error)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, req auth.LoginRequest) (string, *auth.AuthResponse, error) {
				return "signed-token", &auth.AuthResponse{
					ID:    uuid.New().String(),
					Email: req.Email,
					Role:  "ADMIN",
				}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := postJSON(t, h.Login, "/auth/login",
			`{"email":"admin@example.com","password":"secret123"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
	})

	t.Run("negative invalid credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, req auth.LoginRequest) (string, *auth.AuthResponse, error) {
				return "", nil, autherrors.ErrInvalidCredentials
			},
		}

		h := auth.NewHandler(svc)
		w := postJSON(t, h.Login, "/auth/login",
			`{"email":"admin@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "UNAUTHORIZED", env.Error)
	})
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	t.Run("success message does not reveal registration status", func(t *testing.T) {
		svc := &fakeAuthService{
			forgotPasswordFn: func(ctx context.Context, email string) error {
				return nil
			},
		}

		h := auth.NewHandler(svc)
		w := postJSON(t, h.ForgotPassword, "/auth/forgot-password",
			`{"email":"nobody@example.com"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		assert.Contains(t, env.Message, "If the email is registered")
	})
}

func TestAuthHandler_VerifyResetCode(t *testing.T) {
	t.Run("success returns reset token", func(t *testing.T) {
		svc := &fakeAuthService{
			verifyResetCodeFn: func(ctx context.Context, email, code string) (string, error) {
				assert.Equal(t, "123456", code)
				return "reset-token", nil
			},
		}

		h := auth.NewHandler(svc)
		w := postJSON(t, h.VerifyResetCode, "/auth/verify-reset-code",
			`{"email":"fatma@example.com","code":"123456"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got struct {
			ResetToken string `json:"reset_token"`
		}
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "reset-token", got.ResetToken)
	})

	t.Run("negative code length enforced by binding", func(t *testing.T) {
		svc := &fakeAuthService{
			verifyResetCodeFn: func(ctx context.Context, email, code string) (string, error) {
				t.Fatal("service must not be called on binding failure")
				return "", nil
			},
		}

		h := auth.NewHandler(svc)
		w := postJSON(t, h.VerifyResetCode, "/auth/verify-reset-code",
			`{"email":"fatma@example.com","code":"12345"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative wrong code", func(t *testing.T) {
		svc := &fakeAuthService{
			verifyResetCodeFn: func(ctx context.Context, email, code string) (string, error) {
				return "", autherrors.ErrInvalidResetCode
			},
		}

		h := auth.NewHandler(svc)
		w := postJSON(t, h.VerifyResetCode, "/auth/verify-reset-code",
			`{"email":"fatma@example.com","code":"654321"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			resetPasswordFn: func(ctx context.Context, resetToken, newPassword string) error {
				assert.Equal(t, "reset-token", resetToken)
				return nil
			},
		}

		h := auth.NewHandler(svc)
		w := postJSON(t, h.ResetPassword, "/auth/reset-password",
			`{"reset_token":"reset-token","new_password":"new-secret-456"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative invalid token", func(t *testing.T) {
		svc := &fakeAuthService{
			resetPasswordFn: func(ctx context.Context, resetToken, newPassword string) error {
				return autherrors.ErrInvalidResetToken
			},
		}

		h := auth.NewHandler(svc)
		w := postJSON(t, h.ResetPassword, "/auth/reset-password",
			`{"reset_token":"garbage","new_password":"new-secret-456"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
