package auth

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "hrapp/internal/auth/errors"
	"hrapp/internal/events"
	"hrapp/internal/messaging/kafka"
	"hrapp/internal/shared/apperror"
	"hrapp/internal/user"
)

const (
	accessTokenTTL = 24 * time.Hour
	resetTokenTTL  = 15 * time.Minute
	resetCodeTTL   = 10 * time.Minute

	resetTokenPurpose = "password_reset"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (string, *AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (string, *AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	codes  CodeStore
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, codes CodeStore, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{db: db, repo: repo, codes: codes, outbox: outbox, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (string, *AuthResponse, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return "", nil, autherrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to check existing email", 500)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to hash password", 500)
	}

	role := req.Role
	if role == "" {
		role = "EMPLOYEE"
	}

	u := &user.User{
		Name:          req.Name,
		Email:         req.Email,
		Password:      string(hashed),
		Role:          role,
		Phone:         req.Phone,
		CinNumber:     req.CinNumber,
		CnssNumber:    req.CnssNumber,
		MaritalStatus: req.MaritalStatus,
		JobTitle:      req.JobTitle,
		Service:       req.Service,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return "", nil, apperror.New(apperror.CodeValidation, "date_of_birth must be in YYYY-MM-DD format", 400)
		}
		u.DateOfBirth = &dob
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if apperror.IsUniqueViolation(err) {
			return "", nil, autherrors.ErrEmailAlreadyRegistered
		}
		return "", nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to create user", 500)
	}

	token, err := s.signAccessToken(u)
	if err != nil {
		return "", nil, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user registered",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
	)

	return token, toAuthResponse(u), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, *AuthResponse, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, autherrors.ErrInvalidCredentials
		}
		return "", nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch user", 500)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return "", nil, autherrors.ErrInvalidCredentials
	}

	token, err := s.signAccessToken(u)
	if err != nil {
		return "", nil, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user logged in", zap.String("user_id", u.ID.String()))

	return token, toAuthResponse(u), nil
}

// ForgotPassword selalu sukses dari sisi client, supaya endpoint ini
// tidak bisa dipakai untuk enumerasi email yang terdaftar.
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info("password reset requested for unknown email")
			return nil
		}
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch user", 500)
	}

	code, err := generateResetCode()
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to generate reset code", 500)
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to hash reset code", 500)
	}

	if err := s.codes.Save(ctx, u.Email, string(codeHash), resetCodeTTL); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to store reset code", 500)
	}

	event := events.PasswordResetRequestedEvent{
		EventType:        events.EventTypePasswordResetRequested,
		Email:            u.Email,
		Name:             u.Name,
		Code:             code,
		ExpiresInMinutes: int(resetCodeTTL.Minutes()),
		RequestedAt:      time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to encode reset event", 500)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.outbox.WithTx(tx).Create(ctx, &kafka.OutboxEvent{
			AggregateType: "user",
			AggregateID:   u.ID.String(),
			EventType:     events.EventTypePasswordResetRequested,
			Topic:         events.EmailNotificationTopic,
			Payload:       payload,
		})
	})
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to enqueue reset email", 500)
	}

	s.logger.Info("password reset code issued", zap.String("user_id", u.ID.String()))
	return nil
}

func (s *service) VerifyResetCode(ctx context.Context, email, code string) (string, error) {
	storedHash, err := s.codes.Get(ctx, email)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", autherrors.ErrInvalidResetCode
		}
		return "", apperror.Wrap(err, apperror.CodeInternalError, "failed to read reset code", 500)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(code)); err != nil {
		return "", autherrors.ErrInvalidResetCode
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", autherrors.ErrInvalidResetCode
		}
		return "", apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch user", 500)
	}

	// kode sekali pakai
	if err := s.codes.Delete(ctx, email); err != nil {
		s.logger.Warn("failed to delete used reset code", zap.Error(err))
	}

	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"purpose": resetTokenPurpose,
		"exp":     time.Now().Add(resetTokenTTL).Unix(),
	}
	token, err := signToken(claims)
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("reset code verified", zap.String("user_id", u.ID.String()))
	return token, nil
}

func (s *service) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(resetToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsed.Valid {
		return autherrors.ErrInvalidResetToken
	}

	purpose, _ := claims["purpose"].(string)
	if purpose != resetTokenPurpose {
		return autherrors.ErrInvalidResetToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return autherrors.ErrInvalidResetToken
	}

	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch user", 500)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to hash password", 500)
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to update password", 500)
	}

	s.logger.Info("password reset completed", zap.String("user_id", userID))
	return nil
}

func (s *service) signAccessToken(u *user.User) (string, error) {
	return signToken(jwt.MapClaims{
		"user_id": u.ID.String(),
		"role":    u.Role,
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
	})
}

func signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func toAuthResponse(u *user.User) *AuthResponse {
	return &AuthResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
