package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrapp/internal/auth"
	autherrors "hrapp/internal/auth/errors"
	"hrapp/internal/messaging/kafka"
	"hrapp/internal/shared/testutil"
	"hrapp/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	createFn         func(ctx context.Context, u *user.User) error
	getByEmailFn     func(ctx context.Context, email string) (*user.User, error)
	getByIDFn        func(ctx context.Context, id string) (*user.User, error)
	updatePasswordFn func(ctx context.Context, id, hashedPassword string) error
}

func (f *fakeAuthRepository) WithTx(tx *gorm.DB) auth.Repository { return f }

func (f *fakeAuthRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeAuthRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	if f.updatePasswordFn != nil {
		return f.updatePasswordFn(ctx, id, hashedPassword)
	}
	return nil
}

type fakeCodeStore struct {
	saveFn   func(ctx context.Context, email, codeHash string, ttl time.Duration) error
	getFn    func(ctx context.Context, email string) (string, error)
	deleteFn func(ctx context.Context, email string) error
}

func (f *fakeCodeStore) Save(ctx context.Context, email, codeHash string, ttl time.Duration) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, email, codeHash, ttl)
	}
	return nil
}

func (f *fakeCodeStore) Get(ctx context.Context, email string) (string, error) {
	if f.getFn != nil {
		return f.getFn(ctx, email)
	}
	return "", redis.Nil
}

func (f *fakeCodeStore) Delete(ctx context.Context, email string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, email)
	}
	return nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event *kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event *kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type authServiceDeps struct {
	sqlMock sqlmock.Sqlmock
	service auth.Service
	repo    *fakeAuthRepository
	codes   *fakeCodeStore
	outbox  *fakeOutboxRepository
}

func setupAuthServiceTest(t *testing.T) *authServiceDeps {
	t.Helper()
	t.Setenv("JWT_SECRET", "unit-test-secret")

	db, mock := testutil.NewGormMock(t)
	repo := &fakeAuthRepository{}
	codes := &fakeCodeStore{}
	outbox := &fakeOutboxRepository{}
	svc := auth.NewService(db, repo, codes, outbox)

	return &authServiceDeps{
		sqlMock: mock,
		service: svc,
		repo:    repo,
		codes:   codes,
		outbox:  outbox,
	}
}

func parseTokenClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		return []byte("unit-test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	return claims
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success defaults role to EMPLOYEE", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		userID := uuid.New()
		deps.repo.createFn = func(ctx context.Context, u *user.User) error {
			assert.Equal(t, "EMPLOYEE", u.Role)
			assert.NotEqual(t, "secret123", u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
			u.ID = userID
			return nil
		}

		token, resp, err := deps.service.Register(ctx, auth.RegisterRequest{
			Name:     "Amine Ben Salah",
			Email:    "amine@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, userID.String(), resp.ID)
		assert.Equal(t, "EMPLOYEE", resp.Role)

		claims := parseTokenClaims(t, token)
		assert.Equal(t, userID.String(), claims["user_id"])
		assert.Equal(t, "EMPLOYEE", claims["role"])
		assert.NotContains(t, claims, "purpose")
	})

	t.Run("negative duplicate email", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		deps.repo.getByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{ID: uuid.New(), Email: email}, nil
		}

		_, _, err := deps.service.Register(ctx, auth.RegisterRequest{
			Name:     "Amine",
			Email:    "amine@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("negative malformed date_of_birth", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		_, _, err := deps.service.Register(ctx, auth.RegisterRequest{
			Name:        "Amine",
			Email:       "amine@example.com",
			Password:    "secret123",
			DateOfBirth: "31-12-1990",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	stored := &user.User{
		ID:       uuid.New(),
		Name:     "Fatma",
		Email:    "fatma@example.com",
		Password: string(hashed),
		Role:     "CHEF_SERVICE",
	}

	t.Run("success", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		deps.repo.getByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			return stored, nil
		}

		token, resp, err := deps.service.Login(ctx, auth.LoginRequest{
			Email:    "fatma@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, stored.ID.String(), resp.ID)
		assert.Equal(t, "CHEF_SERVICE", resp.Role)

		claims := parseTokenClaims(t, token)
		assert.Equal(t, "CHEF_SERVICE", claims["role"])
	})

	t.Run("negative wrong password", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		deps.repo.getByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			return stored, nil
		}

		_, _, err := deps.service.Login(ctx, auth.LoginRequest{
			Email:    "fatma@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative unknown email maps to same error", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		deps.repo.getByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, _, err := deps.service.Login(ctx, auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores hashed code and enqueues outbox event", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		stored := &user.User{ID: uuid.New(), Name: "Fatma", Email: "fatma@example.com"}
		deps.repo.getByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			return stored, nil
		}

		var savedHash string
		deps.codes.saveFn = func(ctx context.Context, email, codeHash string, ttl time.Duration) error {
			assert.Equal(t, "fatma@example.com", email)
			assert.Equal(t, 10*time.Minute, ttl)
			savedHash = codeHash
			return nil
		}

		var enqueued *kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event *kafka.OutboxEvent) error {
			enqueued = event
			return nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		err := deps.service.ForgotPassword(ctx, "fatma@example.com")

		assert.NoError(t, err)
		assert.NotEmpty(t, savedHash)
		assert.NotNil(t, enqueued)
		assert.Equal(t, "hr.notification.email.v1", enqueued.Topic)
		assert.Equal(t, "password_reset.requested", enqueued.EventType)
		assert.Equal(t, stored.ID.String(), enqueued.AggregateID)
		// payload tidak boleh berisi hash, hanya kode mentah untuk email
		assert.NotContains(t, string(enqueued.Payload), savedHash)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success for unknown email without side effects", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		deps.repo.getByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		}
		deps.codes.saveFn = func(ctx context.Context, email, codeHash string, ttl time.Duration) error {
			t.Fatal("code must not be stored for unknown email")
			return nil
		}

		err := deps.service.ForgotPassword(ctx, "nobody@example.com")

		assert.NoError(t, err)
	})

	t.Run("negative outbox failure surfaces", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		deps.repo.getByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{ID: uuid.New(), Email: email}, nil
		}
		deps.outbox.createFn = func(ctx context.Context, event *kafka.OutboxEvent) error {
			return errors.New("insert failed")
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		err := deps.service.ForgotPassword(ctx, "fatma@example.com")

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAuthService_VerifyResetCode(t *testing.T) {
	ctx := context.Background()

	codeHash, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	stored := &user.User{ID: uuid.New(), Email: "fatma@example.com"}

	t.Run("success issues single-use reset token", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		deps.codes.getFn = func(ctx context.Context, email string) (string, error) {
			return string(codeHash), nil
		}
		deps.repo.getByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			return stored, nil
		}

		deleted := false
		deps.codes.deleteFn = func(ctx context.Context, email string) error {
			deleted = true
			return nil
		}

		token, err := deps.service.VerifyResetCode(ctx, "fatma@example.com", "123456")

		assert.NoError(t, err)
		assert.True(t, deleted)

		claims := parseTokenClaims(t, token)
		assert.Equal(t, "password_reset", claims["purpose"])
		assert.Equal(t, stored.ID.String(), claims["user_id"])
	})

	t.Run("negative wrong code", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		deps.codes.getFn = func(ctx context.Context, email string) (string, error) {
			return string(codeHash), nil
		}

		_, err := deps.service.VerifyResetCode(ctx, "fatma@example.com", "654321")

		assert.ErrorIs(t, err, autherrors.ErrInvalidResetCode)
	})

	t.Run("negative expired or missing code", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		deps.codes.getFn = func(ctx context.Context, email string) (string, error) {
			return "", redis.Nil
		}

		_, err := deps.service.VerifyResetCode(ctx, "fatma@example.com", "123456")

		assert.ErrorIs(t, err, autherrors.ErrInvalidResetCode)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	signFor := func(t *testing.T, claims jwt.MapClaims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("unit-test-secret"))
		assert.NoError(t, err)
		return token
	}

	t.Run("success", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		stored := &user.User{ID: uuid.New(), Email: "fatma@example.com"}
		deps.repo.getByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			assert.Equal(t, stored.ID.String(), id)
			return stored, nil
		}

		var updatedHash string
		deps.repo.updatePasswordFn = func(ctx context.Context, id, hashedPassword string) error {
			updatedHash = hashedPassword
			return nil
		}

		token := signFor(t, jwt.MapClaims{
			"user_id": stored.ID.String(),
			"purpose": "password_reset",
			"exp":     time.Now().Add(15 * time.Minute).Unix(),
		})

		err := deps.service.ResetPassword(ctx, token, "new-secret-456")

		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updatedHash), []byte("new-secret-456")))
	})

	t.Run("negative access token is not a reset token", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		token := signFor(t, jwt.MapClaims{
			"user_id": uuid.New().String(),
			"role":    "EMPLOYEE",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		err := deps.service.ResetPassword(ctx, token, "new-secret-456")

		assert.ErrorIs(t, err, autherrors.ErrInvalidResetToken)
	})

	t.Run("negative expired reset token", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		token := signFor(t, jwt.MapClaims{
			"user_id": uuid.New().String(),
			"purpose": "password_reset",
			"exp":     time.Now().Add(-time.Minute).Unix(),
		})

		err := deps.service.ResetPassword(ctx, token, "new-secret-456")

		assert.ErrorIs(t, err, autherrors.ErrInvalidResetToken)
	})
}
