package leaverequest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrapp/internal/leaverequest"
	leaverequesterrors "hrapp/internal/leaverequest/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveRequestService struct {
	createFn  func(ctx context.Context, actorID string, req leaverequest.CreateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error)
	getAllFn  func(ctx context.Context, actorID, actorRole string) ([]leaverequest.LeaveRequestResponse, error)
	getByIDFn func(ctx context.Context, actorID, actorRole, id string) (*leaverequest.LeaveRequestResponse, error)
	updateFn  func(ctx context.Context, actorID, actorRole, id string, req leaverequest.UpdateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error)
	deleteFn  func(ctx context.Context, actorID, actorRole, id string) error
}

func (f *fakeLeaveRequestService) Create(ctx context.Context, actorID string, req leaverequest.CreateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error) {
	return f.createFn(ctx, actorID, req)
}

func (f *fakeLeaveRequestService) GetAll(ctx context.Context, actorID, actorRole string) ([]leaverequest.LeaveRequestResponse, error) {
	return f.getAllFn(ctx, actorID, actorRole)
}

func (f *fakeLeaveRequestService) GetByID(ctx context.Context, actorID, actorRole, id string) (*leaverequest.LeaveRequestResponse, error) {
	return f.getByIDFn(ctx, actorID, actorRole, id)
}

func (f *fakeLeaveRequestService) Update(ctx context.Context, actorID, actorRole, id string, req leaverequest.UpdateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error) {
	return f.updateFn(ctx, actorID, actorRole, id, req)
}

func (f *fakeLeaveRequestService) Delete(ctx context.Context, actorID, actorRole, id string) error {
	return f.deleteFn(ctx, actorID, actorRole, id)
}

func newRequestContext(t *testing.T, method, path, body, actorID, role string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id_validated", actorID)
	c.Set("role", role)
	c.Params = params
	return c, w
}

func TestLeaveRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 201 with created request", func(t *testing.T) {
		actorID := uuid.NewString()
		svc := &fakeLeaveRequestService{
			createFn: func(ctx context.Context, gotActor string, req leaverequest.CreateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error) {
				assert.Equal(t, actorID, gotActor)
				assert.Equal(t, uint(3), req.LeaveTypeID)
				return &leaverequest.LeaveRequestResponse{
					ID:        uuid.NewString(),
					UserID:    actorID,
					StartDate: req.StartDate,
					EndDate:   req.EndDate,
					Days:      3,
					Status:    leaverequest.StatusPending,
				}, nil
			},
		}
		handler := leaverequest.NewHandler(svc)

		c, w := newRequestContext(t, http.MethodPost, "/leave-request/create",
			`{"leave_type_id":3,"start_date":"2026-09-07","end_date":"2026-09-09","reason":"family"}`,
			actorID, "EMPLOYEE", nil)
		handler.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)

		var resp leaverequest.LeaveRequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, leaverequest.StatusPending, resp.Status)
		assert.Equal(t, 3, resp.Days)
	})

	t.Run("negative missing required fields returns validation error", func(t *testing.T) {
		svc := &fakeLeaveRequestService{
			createFn: func(ctx context.Context, actorID string, req leaverequest.CreateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error) {
				t.Fatal("service should not be reached")
				return nil, nil
			},
		}
		handler := leaverequest.NewHandler(svc)

		c, w := newRequestContext(t, http.MethodPost, "/leave-request/create",
			`{"start_date":"2026-09-07"}`, uuid.NewString(), "EMPLOYEE", nil)
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "VALIDATION_ERROR", env.Error)
	})

	t.Run("negative insufficient balance surfaces taxonomy code", func(t *testing.T) {
		svc := &fakeLeaveRequestService{
			createFn: func(ctx context.Context, actorID string, req leaverequest.CreateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error) {
				return nil, leaverequesterrors.ErrInvalidDateRange
			},
		}
		handler := leaverequest.NewHandler(svc)

		c, w := newRequestContext(t, http.MethodPost, "/leave-request/create",
			`{"leave_type_id":3,"start_date":"2026-09-09","end_date":"2026-09-07"}`,
			uuid.NewString(), "EMPLOYEE", nil)
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "VALIDATION_ERROR", env.Error)
	})
}

func TestLeaveRequestHandler_CreateIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cacheKey := "idemp:/api/v1/leave-request/create:user-1:req-42"
	lockKey := cacheKey + ":lock"

	t.Run("success caches response and releases lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		created := &leaverequest.LeaveRequestResponse{
			ID:        uuid.NewString(),
			UserID:    "user-1",
			StartDate: "2026-09-07",
			EndDate:   "2026-09-09",
			Days:      3,
			Status:    leaverequest.StatusPending,
		}
		payload, err := json.Marshal(created)
		assert.NoError(t, err)

		mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		svc := &fakeLeaveRequestService{
			createFn: func(ctx context.Context, actorID string, req leaverequest.CreateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error) {
				return created, nil
			},
		}
		handler := leaverequest.NewHandlerWithRedis(svc, rdb)

		c, w := newRequestContext(t, http.MethodPost, "/leave-request/create",
			`{"leave_type_id":3,"start_date":"2026-09-07","end_date":"2026-09-09","reason":"family"}`,
			"user-1", "EMPLOYEE", nil)
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)
		handler.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative service error releases lock without caching", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(lockKey).SetVal(1)

		svc := &fakeLeaveRequestService{
			createFn: func(ctx context.Context, actorID string, req leaverequest.CreateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error) {
				return nil, leaverequesterrors.ErrInvalidDateRange
			},
		}
		handler := leaverequest.NewHandlerWithRedis(svc, rdb)

		c, w := newRequestContext(t, http.MethodPost, "/leave-request/create",
			`{"leave_type_id":3,"start_date":"2026-09-09","end_date":"2026-09-07"}`,
			"user-1", "EMPLOYEE", nil)
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeaveRequestHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success approval forwards status and id", func(t *testing.T) {
		actorID := uuid.NewString()
		requestID := uuid.NewString()
		svc := &fakeLeaveRequestService{
			updateFn: func(ctx context.Context, gotActor, gotRole, gotID string, req leaverequest.UpdateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error) {
				assert.Equal(t, actorID, gotActor)
				assert.Equal(t, "CHEF_SERVICE", gotRole)
				assert.Equal(t, requestID, gotID)
				if assert.NotNil(t, req.Status) {
					assert.Equal(t, leaverequest.StatusApproved, *req.Status)
				}
				return &leaverequest.LeaveRequestResponse{ID: requestID, Status: leaverequest.StatusApproved}, nil
			},
		}
		handler := leaverequest.NewHandler(svc)

		c, w := newRequestContext(t, http.MethodPut, "/leave-request/update/"+requestID,
			`{"status":"APPROVED","comment":"enjoy"}`, actorID, "CHEF_SERVICE",
			gin.Params{{Key: "id", Value: requestID}})
		handler.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
	})

	t.Run("negative status outside enum rejected at binding", func(t *testing.T) {
		svc := &fakeLeaveRequestService{
			updateFn: func(ctx context.Context, actorID, actorRole, id string, req leaverequest.UpdateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error) {
				t.Fatal("service should not be reached")
				return nil, nil
			},
		}
		handler := leaverequest.NewHandler(svc)

		c, w := newRequestContext(t, http.MethodPut, "/leave-request/update/x",
			`{"status":"PENDING"}`, uuid.NewString(), "ADMIN",
			gin.Params{{Key: "id", Value: "x"}})
		handler.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error)
	})

	t.Run("negative terminal request maps to invalid state transition", func(t *testing.T) {
		svc := &fakeLeaveRequestService{
			updateFn: func(ctx context.Context, actorID, actorRole, id string, req leaverequest.UpdateLeaveRequestRequest) (*leaverequest.LeaveRequestResponse, error) {
				return nil, leaverequesterrors.ErrRequestNotPending
			},
		}
		handler := leaverequest.NewHandler(svc)

		c, w := newRequestContext(t, http.MethodPut, "/leave-request/update/x",
			`{"comment":"late edit"}`, uuid.NewString(), "ADMIN",
			gin.Params{{Key: "id", Value: "x"}})
		handler.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_STATE_TRANSITION", env.Error)
	})
}

func TestLeaveRequestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success forwards actor identity", func(t *testing.T) {
		actorID := uuid.NewString()
		svc := &fakeLeaveRequestService{
			getAllFn: func(ctx context.Context, gotActor, gotRole string) ([]leaverequest.LeaveRequestResponse, error) {
				assert.Equal(t, actorID, gotActor)
				assert.Equal(t, "EMPLOYEE", gotRole)
				return []leaverequest.LeaveRequestResponse{{ID: uuid.NewString()}}, nil
			},
		}
		handler := leaverequest.NewHandler(svc)

		c, w := newRequestContext(t, http.MethodGet, "/leave-request/all", "", actorID, "EMPLOYEE", nil)
		handler.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)

		var resp []leaverequest.LeaveRequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Len(t, resp, 1)
	})
}

func TestLeaveRequestHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("negative not found surfaces 404", func(t *testing.T) {
		svc := &fakeLeaveRequestService{
			deleteFn: func(ctx context.Context, actorID, actorRole, id string) error {
				return leaverequesterrors.ErrRequestNotFound
			},
		}
		handler := leaverequest.NewHandler(svc)

		c, w := newRequestContext(t, http.MethodDelete, "/leave-request/delete/x", "",
			uuid.NewString(), "EMPLOYEE", gin.Params{{Key: "id", Value: "x"}})
		handler.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error)
	})
}
