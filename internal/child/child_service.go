package child

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	childerrors "hrapp/internal/child/errors"
	"hrapp/internal/rbac"
	"hrapp/internal/shared/apperror"
)

//go:generate mockgen -source=child_service.go -destination=mock/child_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateChildRequest) (*ChildResponse, error)
	GetAll(ctx context.Context, actorID, actorRole string) ([]ChildResponse, error)
	GetByID(ctx context.Context, actorID, actorRole, id string) (*ChildResponse, error)
	Update(ctx context.Context, actorID, actorRole, id string, req UpdateChildRequest) (*ChildResponse, error)
	Delete(ctx context.Context, actorID, actorRole, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("child.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("child.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateChildRequest) (*ChildResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, childerrors.ErrInvalidDateOfBirth
	}

	userID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	c := &Child{
		UserID:      userID,
		Name:        req.Name,
		DateOfBirth: dob,
		Gender:      req.Gender,
	}
	if req.HasDisability != nil {
		c.HasDisability = *req.HasDisability
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to create child", 500)
	}

	s.logger.Info("child created",
		zap.String("child_id", c.ID.String()),
		zap.String("user_id", actorID),
	)

	return mapToResponse(c), nil
}

func (s *service) GetAll(ctx context.Context, actorID, actorRole string) ([]ChildResponse, error) {
	var (
		children []Child
		err      error
	)
	if rbac.IsPrivileged(actorRole) {
		children, err = s.repo.FindAll(ctx)
	} else {
		children, err = s.repo.FindAllByUser(ctx, actorID)
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list children", 500)
	}

	resp := make([]ChildResponse, 0, len(children))
	for i := range children {
		resp = append(resp, *mapToResponse(&children[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, actorID, actorRole, id string) (*ChildResponse, error) {
	c, err := s.findOwned(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(c), nil
}

func (s *service) Update(ctx context.Context, actorID, actorRole, id string, req UpdateChildRequest) (*ChildResponse, error) {
	c, err := s.findOwned(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, childerrors.ErrInvalidDateOfBirth
		}
		c.DateOfBirth = dob
	}
	if req.Gender != nil {
		c.Gender = *req.Gender
	}
	if req.HasDisability != nil {
		c.HasDisability = *req.HasDisability
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to update child", 500)
	}

	return mapToResponse(c), nil
}

func (s *service) Delete(ctx context.Context, actorID, actorRole, id string) error {
	if _, err := s.findOwned(ctx, actorID, actorRole, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to delete child", 500)
	}

	s.logger.Info("child deleted", zap.String("child_id", id))
	return nil
}

// findOwned memuat record dan memastikan pemanggil adalah pemilik,
// kecuali role-nya privileged.
func (s *service) findOwned(ctx context.Context, actorID, actorRole, id string) (*Child, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, childerrors.ErrChildNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to fetch child", 500)
	}

	if !rbac.IsPrivileged(actorRole) && c.UserID.String() != actorID {
		return nil, childerrors.ErrForbidden
	}
	return c, nil
}

func mapToResponse(c *Child) *ChildResponse {
	return &ChildResponse{
		ID:            c.ID.String(),
		UserID:        c.UserID.String(),
		Name:          c.Name,
		DateOfBirth:   c.DateOfBirth.Format("2006-01-02"),
		Gender:        c.Gender,
		HasDisability: c.HasDisability,
	}
}
