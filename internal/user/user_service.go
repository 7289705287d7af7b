package user

import (
	"context"
	"errors"
	"time"

	"hrapp/internal/shared/contextutil"
	usererrors "hrapp/internal/user/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetMe(ctx context.Context, userID string) (UserResponse, error)
	GetAll(ctx context.Context, query ListUsersQuery) ([]UserResponse, int64, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetMe(ctx context.Context, userID string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context, query ListUsersQuery) ([]UserResponse, int64, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	users, total, err := s.repo.FindAll(ctx, query.Search, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, total, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidDateOfBirth
		}
		u.DateOfBirth = &dob
	}
	if req.CinNumber != nil {
		u.CinNumber = *req.CinNumber
	}
	if req.CnssNumber != nil {
		u.CnssNumber = *req.CnssNumber
	}
	if req.MaritalStatus != nil {
		u.MaritalStatus = *req.MaritalStatus
	}
	if req.JobTitle != nil {
		u.JobTitle = *req.JobTitle
	}
	if req.Service != nil {
		u.Service = *req.Service
	}

	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("update profile persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	l.Info("profile updated", zap.String("user_id", userID))
	return mapToResponse(*u), nil
}

func (s *service) DeleteAccount(ctx context.Context, userID string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	// Baris milik user ikut dihapus dalam transaksi yang sama
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.DeleteOwned(ctx, userID); err != nil {
			return err
		}
		return qtx.Delete(ctx, userID)
	})
	if err != nil {
		l.Error("delete account failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	l.Info("account deleted", zap.String("user_id", userID))
	return nil
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:            u.ID.String(),
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Phone:         u.Phone,
		CinNumber:     u.CinNumber,
		CnssNumber:    u.CnssNumber,
		MaritalStatus: u.MaritalStatus,
		JobTitle:      u.JobTitle,
		Service:       u.Service,
		CreatedAt:     u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.DateOfBirth != nil {
		v := u.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &v
	}
	return resp
}
