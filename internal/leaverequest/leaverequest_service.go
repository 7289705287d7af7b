package leaverequest

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hrapp/internal/leavebalance"
	leaverequesterrors "hrapp/internal/leaverequest/errors"
	"hrapp/internal/rbac"
	"hrapp/internal/shared/apperror"
)

//go:generate mockgen -source=leaverequest_service.go -destination=mock/leaverequest_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateLeaveRequestRequest) (*LeaveRequestResponse, error)
	GetAll(ctx context.Context, actorID, actorRole string) ([]LeaveRequestResponse, error)
	GetByID(ctx context.Context, actorID, actorRole, id string) (*LeaveRequestResponse, error)
	Update(ctx context.Context, actorID, actorRole, id string, req UpdateLeaveRequestRequest) (*LeaveRequestResponse, error)
	Delete(ctx context.Context, actorID, actorRole, id string) error
}

type service struct {
	db       *gorm.DB
	repo     Repository
	balances leavebalance.Repository
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, balances leavebalance.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaverequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.service")
	}
	return &service{db: db, repo: repo, balances: balances, logger: l}
}

func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, leaverequesterrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, leaverequesterrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, leaverequesterrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreateLeaveRequestRequest) (*LeaveRequestResponse, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	l := &LeaveRequest{
		UserID:        userID,
		LeaveTypeID:   req.LeaveTypeID,
		StartDate:     start,
		EndDate:       end,
		Status:        StatusPending,
		Reason:        req.Reason,
		AttachmentURL: req.AttachmentURL,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to create leave request", 500)
	}

	// Reload untuk mendapatkan join user dan leave type
	created, err := s.repo.FindByID(ctx, l.ID.String())
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to reload leave request", 500)
	}

	s.logger.Info("leave request created",
		zap.String("request_id", l.ID.String()),
		zap.String("user_id", actorID),
		zap.Int("days", l.Days()),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context, actorID, actorRole string) ([]LeaveRequestResponse, error) {
	var (
		requests []LeaveRequest
		err      error
	)
	if rbac.IsPrivileged(actorRole) {
		requests, err = s.repo.FindAll(ctx)
	} else {
		requests, err = s.repo.FindAllByUser(ctx, actorID)
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list leave requests", 500)
	}

	resp := make([]LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		resp = append(resp, *mapToResponse(&requests[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, actorID, actorRole, id string) (*LeaveRequestResponse, error) {
	l, err := s.findVisible(ctx, s.repo, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(l), nil
}

// Update hanya berlaku untuk request PENDING. Pemilik boleh mengubah
// tanggal/alasan; perubahan status hanya untuk role privileged, dan
// approval mendebit saldo dalam transaksi yang sama dengan flip status.
func (s *service) Update(ctx context.Context, actorID, actorRole, id string, req UpdateLeaveRequestRequest) (*LeaveRequestResponse, error) {
	var updated *LeaveRequest

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		l, err := s.findVisible(ctx, qtx, actorID, actorRole, id)
		if err != nil {
			return err
		}
		if IsTerminal(l.Status) {
			return leaverequesterrors.ErrRequestNotPending
		}

		if req.StartDate != nil || req.EndDate != nil {
			startStr := l.StartDate.Format("2006-01-02")
			endStr := l.EndDate.Format("2006-01-02")
			if req.StartDate != nil {
				startStr = *req.StartDate
			}
			if req.EndDate != nil {
				endStr = *req.EndDate
			}
			start, end, err := parseDateRange(startStr, endStr)
			if err != nil {
				return err
			}
			l.StartDate = start
			l.EndDate = end
		}
		if req.Reason != nil {
			l.Reason = *req.Reason
		}
		if req.Comment != nil {
			l.Comment = *req.Comment
		}
		if req.AttachmentURL != nil {
			l.AttachmentURL = *req.AttachmentURL
		}

		if req.Status != nil {
			if !rbac.IsPrivileged(actorRole) {
				return leaverequesterrors.ErrStatusChangeForbidden
			}
			if *req.Status == StatusApproved {
				_, err := leavebalance.Debit(
					ctx,
					s.balances.WithTx(tx),
					l.UserID.String(),
					l.StartDate.Year(),
					l.LeaveTypeID,
					l.Days(),
				)
				if err != nil {
					return err
				}
			}
			l.Status = *req.Status
		}

		if err := qtx.Update(ctx, l); err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError, "failed to update leave request", 500)
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status != StatusPending {
		s.logger.Info("leave request resolved",
			zap.String("request_id", id),
			zap.String("status", updated.Status),
			zap.String("resolved_by", actorID),
		)
	}
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, actorID, actorRole, id string) error {
	l, err := s.findVisible(ctx, s.repo, actorID, actorRole, id)
	if err != nil {
		return err
	}
	if IsTerminal(l.Status) {
		return leaverequesterrors.ErrRequestNotPending
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to delete leave request", 500)
	}

	s.logger.Info("leave request deleted", zap.String("request_id", id))
	return nil
}

func (s *service) findVisible(ctx context.Context, repo Repository, actorID, actorRole, id string) (*LeaveRequest, error) {
	l, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaverequesterrors.ErrRequestNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch leave request", 500)
	}

	if !rbac.IsPrivileged(actorRole) && l.UserID.String() != actorID {
		return nil, leaverequesterrors.ErrForbidden
	}
	return l, nil
}

func mapToResponse(l *LeaveRequest) *LeaveRequestResponse {
	resp := &LeaveRequestResponse{
		ID:            l.ID.String(),
		UserID:        l.UserID.String(),
		LeaveTypeID:   l.LeaveTypeID,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		Days:          l.Days(),
		Status:        l.Status,
		Reason:        l.Reason,
		Comment:       l.Comment,
		AttachmentURL: l.AttachmentURL,
	}
	if l.User != nil {
		resp.User = &UserSummary{
			ID:    l.User.ID.String(),
			Name:  l.User.Name,
			Email: l.User.Email,
		}
	}
	if l.LeaveType != nil {
		resp.LeaveType = &LeaveTypeSummary{
			ID:       l.LeaveType.ID,
			Name:     l.LeaveType.Name,
			Category: l.LeaveType.Category,
		}
	}
	return resp
}
