package leavebalance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	leavebalanceerrors "hrapp/internal/leavebalance/errors"
	"hrapp/internal/rbac"
	"hrapp/internal/shared/apperror"
)

//go:generate mockgen -source=leavebalance_service.go -destination=mock/leavebalance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveBalanceRequest) (*LeaveBalanceResponse, error)
	GetAll(ctx context.Context) ([]LeaveBalanceResponse, error)
	GetForUser(ctx context.Context, actorID, actorRole, targetUserID string, year int) ([]LeaveBalanceResponse, error)
	GetByID(ctx context.Context, actorID, actorRole, id string) (*LeaveBalanceResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveBalanceRequest) (*LeaveBalanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveBalanceRequest) (*LeaveBalanceResponse, error) {
	// Pre-check supaya error-nya deskriptif; unique index tetap jadi
	// penjaga terakhir untuk race antar request.
	if _, err := s.repo.FindByUserYearType(ctx, req.UserID, req.Year, req.LeaveTypeID); err == nil {
		return nil, leavebalanceerrors.ErrDuplicateBalance
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to check existing balance", 500)
	}

	b := &LeaveBalance{
		UserID:           uuid.MustParse(req.UserID),
		Year:             req.Year,
		LeaveTypeID:      req.LeaveTypeID,
		InitialBalance:   req.InitialBalance,
		UsedBalance:      0,
		RemainingBalance: req.InitialBalance,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		if apperror.IsUniqueViolation(err) {
			return nil, leavebalanceerrors.ErrDuplicateBalance
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to create leave balance", 500)
	}

	s.logger.Info("leave balance created",
		zap.String("balance_id", b.ID.String()),
		zap.String("user_id", req.UserID),
		zap.Int("year", req.Year),
	)
	return mapToResponse(b), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveBalanceResponse, error) {
	balances, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list leave balances", 500)
	}

	resp := make([]LeaveBalanceResponse, 0, len(balances))
	for i := range balances {
		resp = append(resp, *mapToResponse(&balances[i]))
	}
	return resp, nil
}

func (s *service) GetForUser(ctx context.Context, actorID, actorRole, targetUserID string, year int) ([]LeaveBalanceResponse, error) {
	if targetUserID == "" {
		targetUserID = actorID
	}
	if targetUserID != actorID && actorRole != rbac.RoleAdmin {
		return nil, leavebalanceerrors.ErrForbidden
	}
	if year <= 0 {
		year = time.Now().Year()
	}

	balances, err := s.repo.FindAllByUser(ctx, targetUserID, year)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list user balances", 500)
	}

	resp := make([]LeaveBalanceResponse, 0, len(balances))
	for i := range balances {
		resp = append(resp, *mapToResponse(&balances[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, actorID, actorRole, id string) (*LeaveBalanceResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavebalanceerrors.ErrBalanceNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch leave balance", 500)
	}

	if b.UserID.String() != actorID && actorRole != rbac.RoleAdmin {
		return nil, leavebalanceerrors.ErrForbidden
	}
	return mapToResponse(b), nil
}

// Update men-set field yang dikirim apa adanya. remaining tidak
// dihitung ulang dari initial-used; admin bertanggung jawab atas
// konsistensinya.
func (s *service) Update(ctx context.Context, id string, req UpdateLeaveBalanceRequest) (*LeaveBalanceResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavebalanceerrors.ErrBalanceNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch leave balance", 500)
	}

	if req.Year != nil {
		b.Year = *req.Year
	}
	if req.InitialBalance != nil {
		b.InitialBalance = *req.InitialBalance
	}
	if req.UsedBalance != nil {
		b.UsedBalance = *req.UsedBalance
	}
	if req.RemainingBalance != nil {
		b.RemainingBalance = *req.RemainingBalance
	}

	if err := s.repo.Update(ctx, b); err != nil {
		if apperror.IsUniqueViolation(err) {
			return nil, leavebalanceerrors.ErrDuplicateBalance
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to update leave balance", 500)
	}

	return mapToResponse(b), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leavebalanceerrors.ErrBalanceNotFound
		}
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch leave balance", 500)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to delete leave balance", 500)
	}

	s.logger.Info("leave balance deleted", zap.String("balance_id", id))
	return nil
}

func mapToResponse(b *LeaveBalance) *LeaveBalanceResponse {
	return &LeaveBalanceResponse{
		ID:               b.ID.String(),
		UserID:           b.UserID.String(),
		LeaveTypeID:      b.LeaveTypeID,
		Year:             b.Year,
		InitialBalance:   b.InitialBalance,
		UsedBalance:      b.UsedBalance,
		RemainingBalance: b.RemainingBalance,
	}
}
