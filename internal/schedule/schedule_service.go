package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hrapp/internal/rbac"
	scheduleerrors "hrapp/internal/schedule/errors"
	"hrapp/internal/shared/apperror"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateScheduleRequest) (*ScheduleResponse, error)
	GetAll(ctx context.Context, actorID, actorRole string) ([]ScheduleResponse, error)
	GetMy(ctx context.Context, actorID string) ([]ScheduleResponse, error)
	GetByID(ctx context.Context, actorID, actorRole, id string) (*ScheduleResponse, error)
	Update(ctx context.Context, id string, req UpdateScheduleRequest) (*ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{repo: repo, logger: l}
}

func parseDate(raw string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, scheduleerrors.ErrInvalidDate
	}
	return d, nil
}

func normalizeTime(raw string) (string, error) {
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return "", scheduleerrors.ErrInvalidTime
	}
	return t.Format("15:04"), nil
}

func (s *service) Create(ctx context.Context, req CreateScheduleRequest) (*ScheduleResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	start, err := normalizeTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := normalizeTime(req.EndTime)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, scheduleerrors.ErrInvalidTimeRange
	}

	conflict, err := s.repo.HasOverlap(ctx, req.UserID, date, start, end, nil)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to check schedule overlap", 500)
	}
	if conflict {
		return nil, scheduleerrors.ErrScheduleConflict
	}

	sched := &Schedule{
		UserID:    uuid.MustParse(req.UserID),
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Service:   req.Service,
	}
	if err := s.repo.Create(ctx, sched); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to create schedule", 500)
	}

	s.logger.Info("schedule created",
		zap.String("schedule_id", sched.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("date", req.Date),
	)
	return mapToResponse(sched), nil
}

func (s *service) GetAll(ctx context.Context, actorID, actorRole string) ([]ScheduleResponse, error) {
	var (
		schedules []Schedule
		err       error
	)
	if rbac.IsPrivileged(actorRole) {
		schedules, err = s.repo.FindAll(ctx)
	} else {
		schedules, err = s.repo.FindAllByUser(ctx, actorID)
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list schedules", 500)
	}
	return mapToListResponse(schedules), nil
}

func (s *service) GetMy(ctx context.Context, actorID string) ([]ScheduleResponse, error) {
	schedules, err := s.repo.FindAllByUser(ctx, actorID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list schedules", 500)
	}
	return mapToListResponse(schedules), nil
}

func (s *service) GetByID(ctx context.Context, actorID, actorRole, id string) (*ScheduleResponse, error) {
	sched, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduleerrors.ErrScheduleNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch schedule", 500)
	}

	if !rbac.IsPrivileged(actorRole) && sched.UserID.String() != actorID {
		return nil, scheduleerrors.ErrForbidden
	}
	return mapToResponse(sched), nil
}

// Update menggabungkan field yang dikirim di atas record yang ada,
// lalu memvalidasi ulang hasil gabungannya termasuk cek tabrakan
// dengan mengecualikan record itu sendiri.
func (s *service) Update(ctx context.Context, id string, req UpdateScheduleRequest) (*ScheduleResponse, error) {
	sched, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduleerrors.ErrScheduleNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch schedule", 500)
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		sched.Date = date
	}
	if req.StartTime != nil {
		start, err := normalizeTime(*req.StartTime)
		if err != nil {
			return nil, err
		}
		sched.StartTime = start
	}
	if req.EndTime != nil {
		end, err := normalizeTime(*req.EndTime)
		if err != nil {
			return nil, err
		}
		sched.EndTime = end
	}
	if req.Service != nil {
		sched.Service = *req.Service
	}

	if sched.EndTime <= sched.StartTime {
		return nil, scheduleerrors.ErrInvalidTimeRange
	}

	conflict, err := s.repo.HasOverlap(ctx, sched.UserID.String(), sched.Date, sched.StartTime, sched.EndTime, &id)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to check schedule overlap", 500)
	}
	if conflict {
		return nil, scheduleerrors.ErrScheduleConflict
	}

	if err := s.repo.Update(ctx, sched); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to update schedule", 500)
	}
	return mapToResponse(sched), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scheduleerrors.ErrScheduleNotFound
		}
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch schedule", 500)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to delete schedule", 500)
	}

	s.logger.Info("schedule deleted", zap.String("schedule_id", id))
	return nil
}

func mapToResponse(sched *Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:        sched.ID.String(),
		UserID:    sched.UserID.String(),
		Date:      sched.Date.Format("2006-01-02"),
		StartTime: sched.StartTime,
		EndTime:   sched.EndTime,
		Service:   sched.Service,
	}
}

func mapToListResponse(schedules []Schedule) []ScheduleResponse {
	resp := make([]ScheduleResponse, len(schedules))
	for i := range schedules {
		resp[i] = *mapToResponse(&schedules[i])
	}
	return resp
}
