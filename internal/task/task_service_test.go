package task_test

import (
	"context"
	"testing"
	"time"

	"hrapp/internal/task"
	taskerrors "hrapp/internal/task/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTaskRepository struct {
	createFn        func(ctx context.Context, t *task.Task) error
	findByIDFn      func(ctx context.Context, id string) (*task.Task, error)
	findAllFn       func(ctx context.Context, overdueBefore *time.Time) ([]task.Task, error)
	findAllByUserFn func(ctx context.Context, userID string, overdueBefore *time.Time) ([]task.Task, error)
	updateFn        func(ctx context.Context, t *task.Task) error
	deleteFn        func(ctx context.Context, id string) error
}

func (f *fakeTaskRepository) WithTx(tx *gorm.DB) task.Repository { return f }

func (f *fakeTaskRepository) Create(ctx context.Context, t *task.Task) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTaskRepository) FindByID(ctx context.Context, id string) (*task.Task, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaskRepository) FindAll(ctx context.Context, overdueBefore *time.Time) ([]task.Task, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, overdueBefore)
	}
	return nil, nil
}

func (f *fakeTaskRepository) FindAllByUser(ctx context.Context, userID string, overdueBefore *time.Time) ([]task.Task, error) {
	if f.findAllByUserFn != nil {
		return f.findAllByUserFn(ctx, userID, overdueBefore)
	}
	return nil, nil
}

func (f *fakeTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func (f *fakeTaskRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success with plain date due_date", func(t *testing.T) {
		repo := &fakeTaskRepository{
			createFn: func(ctx context.Context, tk *task.Task) error {
				assert.NotNil(t, tk.DueDate)
				assert.Equal(t, "2026-05-01", tk.DueDate.Format("2006-01-02"))
				assert.False(t, tk.IsCompleted)
				tk.ID = uuid.New()
				return nil
			},
		}
		svc := task.NewService(repo)

		resp, err := svc.Create(ctx, task.CreateTaskRequest{
			UserID:  userID,
			Title:   "Prepare onboarding documents",
			DueDate: "2026-05-01",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.DueDate)
	})

	t.Run("success without due_date", func(t *testing.T) {
		repo := &fakeTaskRepository{
			createFn: func(ctx context.Context, tk *task.Task) error {
				assert.Nil(t, tk.DueDate)
				return nil
			},
		}
		svc := task.NewService(repo)

		resp, err := svc.Create(ctx, task.CreateTaskRequest{
			UserID: userID,
			Title:  "Review CVs",
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.DueDate)
	})

	t.Run("negative malformed due_date", func(t *testing.T) {
		svc := task.NewService(&fakeTaskRepository{})

		_, err := svc.Create(ctx, task.CreateTaskRequest{
			UserID:  userID,
			Title:   "Review CVs",
			DueDate: "next tuesday",
		})

		assert.ErrorIs(t, err, taskerrors.ErrInvalidDueDate)
	})
}

func TestTaskService_GetAll(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("overdue filter passes a cutoff", func(t *testing.T) {
		repo := &fakeTaskRepository{
			findAllByUserFn: func(ctx context.Context, userID string, overdueBefore *time.Time) ([]task.Task, error) {
				assert.NotNil(t, overdueBefore)
				assert.WithinDuration(t, time.Now(), *overdueBefore, 5*time.Second)
				return nil, nil
			},
		}
		svc := task.NewService(repo)

		_, err := svc.GetAll(ctx, actorID, "EMPLOYEE", task.ListTasksQuery{Overdue: true})

		assert.NoError(t, err)
	})

	t.Run("no filter without overdue flag", func(t *testing.T) {
		repo := &fakeTaskRepository{
			findAllFn: func(ctx context.Context, overdueBefore *time.Time) ([]task.Task, error) {
				assert.Nil(t, overdueBefore)
				return []task.Task{{ID: uuid.New(), UserID: uuid.New(), Title: "t"}}, nil
			},
		}
		svc := task.NewService(repo)

		resp, err := svc.GetAll(ctx, actorID, "ADMIN", task.ListTasksQuery{})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})
}

func TestTaskService_Toggle(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("flips is_completed both ways", func(t *testing.T) {
		current := &task.Task{ID: uuid.New(), UserID: ownerID, Title: "t", IsCompleted: false}
		repo := &fakeTaskRepository{
			findByIDFn: func(ctx context.Context, id string) (*task.Task, error) {
				return current, nil
			},
		}
		svc := task.NewService(repo)

		resp, err := svc.Toggle(ctx, ownerID.String(), "EMPLOYEE", current.ID.String())
		assert.NoError(t, err)
		assert.True(t, resp.IsCompleted)

		resp, err = svc.Toggle(ctx, ownerID.String(), "EMPLOYEE", current.ID.String())
		assert.NoError(t, err)
		assert.False(t, resp.IsCompleted)
	})

	t.Run("negative other employee forbidden", func(t *testing.T) {
		repo := &fakeTaskRepository{
			findByIDFn: func(ctx context.Context, id string) (*task.Task, error) {
				return &task.Task{ID: uuid.New(), UserID: ownerID}, nil
			},
		}
		svc := task.NewService(repo)

		_, err := svc.Toggle(ctx, uuid.New().String(), "EMPLOYEE", uuid.New().String())

		assert.ErrorIs(t, err, taskerrors.ErrForbidden)
	})

	t.Run("negative unknown task", func(t *testing.T) {
		svc := task.NewService(&fakeTaskRepository{})

		_, err := svc.Toggle(ctx, ownerID.String(), "EMPLOYEE", uuid.New().String())

		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("clearing due_date with empty string", func(t *testing.T) {
		due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		repo := &fakeTaskRepository{
			findByIDFn: func(ctx context.Context, id string) (*task.Task, error) {
				return &task.Task{ID: uuid.New(), UserID: ownerID, Title: "t", DueDate: &due}, nil
			},
			updateFn: func(ctx context.Context, tk *task.Task) error {
				assert.Nil(t, tk.DueDate)
				return nil
			},
		}
		svc := task.NewService(repo)

		empty := ""
		resp, err := svc.Update(ctx, ownerID.String(), "EMPLOYEE", uuid.New().String(), task.UpdateTaskRequest{
			DueDate: &empty,
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.DueDate)
	})

	t.Run("privileged role may update someone else's task", func(t *testing.T) {
		repo := &fakeTaskRepository{
			findByIDFn: func(ctx context.Context, id string) (*task.Task, error) {
				return &task.Task{ID: uuid.New(), UserID: ownerID, Title: "t"}, nil
			},
		}
		svc := task.NewService(repo)

		title := "Updated title"
		resp, err := svc.Update(ctx, uuid.New().String(), "CHEF_SERVICE", uuid.New().String(), task.UpdateTaskRequest{
			Title: &title,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Updated title", resp.Title)
	})
}
