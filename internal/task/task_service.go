package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hrapp/internal/rbac"
	"hrapp/internal/shared/apperror"
	taskerrors "hrapp/internal/task/errors"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error)
	GetAll(ctx context.Context, actorID, actorRole string, query ListTasksQuery) ([]TaskResponse, error)
	GetByID(ctx context.Context, actorID, actorRole, id string) (*TaskResponse, error)
	Update(ctx context.Context, actorID, actorRole, id string, req UpdateTaskRequest) (*TaskResponse, error)
	Toggle(ctx context.Context, actorID, actorRole, id string) (*TaskResponse, error)
	Delete(ctx context.Context, actorID, actorRole, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

func (s *service) Create(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error) {
	t := &Task{
		UserID:      uuid.MustParse(req.UserID),
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != "" {
		due, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, taskerrors.ErrInvalidDueDate
		}
		t.DueDate = &due
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to create task", 500)
	}

	s.logger.Info("task created",
		zap.String("task_id", t.ID.String()),
		zap.String("user_id", req.UserID),
	)
	return mapToResponse(t), nil
}

func (s *service) GetAll(ctx context.Context, actorID, actorRole string, query ListTasksQuery) ([]TaskResponse, error) {
	var overdueBefore *time.Time
	if query.Overdue {
		now := s.now()
		overdueBefore = &now
	}

	var (
		tasks []Task
		err   error
	)
	if rbac.IsPrivileged(actorRole) {
		tasks, err = s.repo.FindAll(ctx, overdueBefore)
	} else {
		tasks, err = s.repo.FindAllByUser(ctx, actorID, overdueBefore)
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list tasks", 500)
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, *mapToResponse(&tasks[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, actorID, actorRole, id string) (*TaskResponse, error) {
	t, err := s.findOwned(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(t), nil
}

func (s *service) Update(ctx context.Context, actorID, actorRole, id string, req UpdateTaskRequest) (*TaskResponse, error) {
	t, err := s.findOwned(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			t.DueDate = nil
		} else {
			due, err := parseDueDate(*req.DueDate)
			if err != nil {
				return nil, taskerrors.ErrInvalidDueDate
			}
			t.DueDate = &due
		}
	}
	if req.IsCompleted != nil {
		t.IsCompleted = *req.IsCompleted
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to update task", 500)
	}
	return mapToResponse(t), nil
}

// Toggle membalik is_completed tanpa body request.
func (s *service) Toggle(ctx context.Context, actorID, actorRole, id string) (*TaskResponse, error) {
	t, err := s.findOwned(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	t.IsCompleted = !t.IsCompleted
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to toggle task", 500)
	}

	return mapToResponse(t), nil
}

func (s *service) Delete(ctx context.Context, actorID, actorRole, id string) error {
	if _, err := s.findOwned(ctx, actorID, actorRole, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to delete task", 500)
	}

	s.logger.Info("task deleted", zap.String("task_id", id))
	return nil
}

func (s *service) findOwned(ctx context.Context, actorID, actorRole, id string) (*Task, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taskerrors.ErrTaskNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch task", 500)
	}

	if !rbac.IsPrivileged(actorRole) && t.UserID.String() != actorID {
		return nil, taskerrors.ErrForbidden
	}
	return t, nil
}

func mapToResponse(t *Task) *TaskResponse {
	resp := &TaskResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(time.RFC3339)
	}
	return resp
}
