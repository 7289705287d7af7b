package leavetype

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	leavetypeerrors "hrapp/internal/leavetype/errors"
	"hrapp/internal/shared/apperror"
)

const (
	leaveTypeAllKey       = "leavetypes:all"
	leaveTypeDetailPrefix = "leavetypes:detail:"

	// Data master, jarang berubah
	leaveTypeCacheTTL = 30 * time.Minute
)

func leaveTypeDetailKey(id uint) string {
	return leaveTypeDetailPrefix + strconv.FormatUint(uint64(id), 10)
}

//go:generate mockgen -source=leavetype_service.go -destination=mock/leavetype_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (*LeaveTypeResponse, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id uint) (*LeaveTypeResponse, error)
	Update(ctx context.Context, id uint, req UpdateLeaveTypeRequest) (*LeaveTypeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (*LeaveTypeResponse, error) {
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, leavetypeerrors.ErrDuplicateName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to check leave type name", 500)
	}

	lt := &LeaveType{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, lt); err != nil {
		if apperror.IsUniqueViolation(err) {
			return nil, leavetypeerrors.ErrDuplicateName
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to create leave type", 500)
	}

	s.invalidate(ctx, lt.ID)
	s.logger.Info("leave type created", zap.Uint("leave_type_id", lt.ID))
	return mapToResponse(lt), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, leaveTypeAllKey).Result()
		if err == nil {
			var resp []LeaveTypeResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Singleflight mencegah stampede ke DB saat cache kosong
	v, err, _ := s.sf.Do(leaveTypeAllKey, func() (interface{}, error) {
		types, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]LeaveTypeResponse, len(types))
		for i := range types {
			resp[i] = *mapToResponse(&types[i])
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, leaveTypeAllKey, jsonData, leaveTypeCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list leave types", 500)
	}

	return v.([]LeaveTypeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*LeaveTypeResponse, error) {
	cacheKey := leaveTypeDetailKey(id)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp LeaveTypeResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		lt, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}

		resp := mapToResponse(lt)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, leaveTypeCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavetypeerrors.ErrLeaveTypeNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch leave type", 500)
	}

	return v.(*LeaveTypeResponse), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateLeaveTypeRequest) (*LeaveTypeResponse, error) {
	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavetypeerrors.ErrLeaveTypeNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch leave type", 500)
	}

	if req.Name != nil {
		lt.Name = *req.Name
	}
	if req.Category != nil {
		lt.Category = *req.Category
	}
	if req.Description != nil {
		lt.Description = *req.Description
	}

	if err := s.repo.Update(ctx, lt); err != nil {
		if apperror.IsUniqueViolation(err) {
			return nil, leavetypeerrors.ErrDuplicateName
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to update leave type", 500)
	}

	s.invalidate(ctx, id)
	return mapToResponse(lt), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leavetypeerrors.ErrLeaveTypeNotFound
		}
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch leave type", 500)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to delete leave type", 500)
	}

	s.invalidate(ctx, id)
	s.logger.Info("leave type deleted", zap.Uint("leave_type_id", id))
	return nil
}

// invalidate menghapus key list dan detail setelah mutasi resmi tersimpan.
func (s *service) invalidate(ctx context.Context, id uint) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, leaveTypeAllKey, leaveTypeDetailKey(id)).Err(); err != nil {
		s.logger.Error("failed to invalidate leave type cache",
			zap.String("key", fmt.Sprintf("%s,%s", leaveTypeAllKey, leaveTypeDetailKey(id))),
			zap.Error(err),
		)
	}
}

func mapToResponse(lt *LeaveType) *LeaveTypeResponse {
	return &LeaveTypeResponse{
		ID:          lt.ID,
		Name:        lt.Name,
		Category:    lt.Category,
		Description: lt.Description,
	}
}
