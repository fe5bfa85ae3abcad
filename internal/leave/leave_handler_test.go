package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leaveflow/internal/leave"
	leaveerrors "leaveflow/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveService struct {
	RequestLeaveFn func(ctx context.Context, userID string, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error)
	ApproveFn      func(ctx context.Context, approvalID, approverID string, req leave.ActionRequest) (leave.LeaveRequestResponse, error)
	RejectFn       func(ctx context.Context, approvalID, approverID string, req leave.ActionRequest) (leave.LeaveRequestResponse, error)
	CancelFn       func(ctx context.Context, requestID, userID string, req leave.ActionRequest) (leave.LeaveRequestResponse, error)
	GetFn          func(ctx context.Context, requestID, callerID string) (leave.LeaveRequestResponse, error)
	HistoryFn      func(ctx context.Context, userID string) ([]leave.LeaveRequestResponse, error)
	IncomingFn     func(ctx context.Context, approverID string) ([]leave.IncomingApprovalResponse, error)
	OnLeaveTodayFn func(ctx context.Context) ([]leave.OnLeaveTodayResponse, error)
}

func (f *fakeLeaveService) RequestLeave(ctx context.Context, userID string, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	return f.RequestLeaveFn(ctx, userID, req)
}
func (f *fakeLeaveService) Approve(ctx context.Context, approvalID, approverID string, req leave.ActionRequest) (leave.LeaveRequestResponse, error) {
	return f.ApproveFn(ctx, approvalID, approverID, req)
}
func (f *fakeLeaveService) Reject(ctx context.Context, approvalID, approverID string, req leave.ActionRequest) (leave.LeaveRequestResponse, error) {
	return f.RejectFn(ctx, approvalID, approverID, req)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, requestID, userID string, req leave.ActionRequest) (leave.LeaveRequestResponse, error) {
	return f.CancelFn(ctx, requestID, userID, req)
}
func (f *fakeLeaveService) Get(ctx context.Context, requestID, callerID string) (leave.LeaveRequestResponse, error) {
	return f.GetFn(ctx, requestID, callerID)
}
func (f *fakeLeaveService) History(ctx context.Context, userID string) ([]leave.LeaveRequestResponse, error) {
	return f.HistoryFn(ctx, userID)
}
func (f *fakeLeaveService) Incoming(ctx context.Context, approverID string) ([]leave.IncomingApprovalResponse, error) {
	return f.IncomingFn(ctx, approverID)
}
func (f *fakeLeaveService) OnLeaveToday(ctx context.Context) ([]leave.OnLeaveTodayResponse, error) {
	return f.OnLeaveTodayFn(ctx)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userID := uuid.New().String()
		leaveTypeID := uuid.New().String()

		svc := &fakeLeaveService{
			RequestLeaveFn: func(_ context.Context, uid string, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, leaveTypeID, req.LeaveTypeID)
				return leave.LeaveRequestResponse{
					ID:     uuid.New().String(),
					Status: leave.StatusPending,
				}, nil
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(t)
		body := `{"leave_type_id":"` + leaveTypeID + `","start_date":"2026-09-07","end_date":"2026-09-08","reason":"family event"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("user_id", userID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), leave.StatusPending)
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &fakeLeaveService{}
		h := leave.NewHandler(svc)

		c, w := newTestContext(t)
		body := `{"start_date":"2026-09-07"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error is mapped", func(t *testing.T) {
		svc := &fakeLeaveService{
			RequestLeaveFn: func(_ context.Context, _ string, _ leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
				return leave.LeaveRequestResponse{}, leaveerrors.ErrNoWorkingDays
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(t)
		body := `{"leave_type_id":"` + uuid.New().String() + `","start_date":"2026-09-05","end_date":"2026-09-06"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("user_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_Approve(t *testing.T) {
	t.Run("success with empty body", func(t *testing.T) {
		approvalID := uuid.New().String()
		approverID := uuid.New().String()

		svc := &fakeLeaveService{
			ApproveFn: func(_ context.Context, aid, uid string, _ leave.ActionRequest) (leave.LeaveRequestResponse, error) {
				assert.Equal(t, approvalID, aid)
				assert.Equal(t, approverID, uid)
				return leave.LeaveRequestResponse{ID: uuid.New().String(), Status: leave.StatusApproved}, nil
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/approvals/"+approvalID+"/approve", nil)
		c.Request = req
		c.Params = gin.Params{{Key: "approvalId", Value: approvalID}}
		c.Set("user_id", approverID)

		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), leave.StatusApproved)
	})

	t.Run("wrong approver", func(t *testing.T) {
		svc := &fakeLeaveService{
			ApproveFn: func(_ context.Context, _, _ string, _ leave.ActionRequest) (leave.LeaveRequestResponse, error) {
				return leave.LeaveRequestResponse{}, leaveerrors.ErrNotAuthorizedApprover
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/approvals/x/approve", nil)
		c.Params = gin.Params{{Key: "approvalId", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		h.Approve(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("duplicate action conflicts", func(t *testing.T) {
		svc := &fakeLeaveService{
			ApproveFn: func(_ context.Context, _, _ string, _ leave.ActionRequest) (leave.LeaveRequestResponse, error) {
				return leave.LeaveRequestResponse{}, leaveerrors.ErrAlreadyActed
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/approvals/x/approve", nil)
		c.Params = gin.Params{{Key: "approvalId", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		h.Approve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLeaveHandler_Reject(t *testing.T) {
	t.Run("comment is passed through", func(t *testing.T) {
		approvalID := uuid.New().String()

		svc := &fakeLeaveService{
			RejectFn: func(_ context.Context, _, _ string, req leave.ActionRequest) (leave.LeaveRequestResponse, error) {
				assert.NotNil(t, req.Comment)
				assert.Equal(t, "headcount freeze", *req.Comment)
				return leave.LeaveRequestResponse{Status: leave.StatusRejected}, nil
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(t)
		body := `{"comment":"headcount freeze"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/approvals/"+approvalID+"/reject", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "approvalId", Value: approvalID}}
		c.Set("user_id", uuid.New().String())

		h.Reject(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLeaveHandler_Cancel(t *testing.T) {
	t.Run("cancel after a started leave conflicts", func(t *testing.T) {
		svc := &fakeLeaveService{
			CancelFn: func(_ context.Context, _, _ string, _ leave.ActionRequest) (leave.LeaveRequestResponse, error) {
				return leave.LeaveRequestResponse{}, leaveerrors.ErrCancelAfterStart
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/leaves/x/cancel", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		h.Cancel(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLeaveHandler_Incoming(t *testing.T) {
	t.Run("lists the caller's pending turn", func(t *testing.T) {
		approverID := uuid.New().String()

		svc := &fakeLeaveService{
			IncomingFn: func(_ context.Context, uid string) ([]leave.IncomingApprovalResponse, error) {
				assert.Equal(t, approverID, uid)
				return []leave.IncomingApprovalResponse{
					{ApprovalID: uuid.New().String(), Level: 1, RequesterName: "Employee"},
				}, nil
			},
		}
		h := leave.NewHandler(svc)

		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/leaves/incoming", nil)
		c.Set("user_id", approverID)

		h.Incoming(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee")
	})
}
