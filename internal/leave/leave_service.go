package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"leaveflow/internal/balance"
	"leaveflow/internal/events"
	leaveerrors "leaveflow/internal/leave/errors"
	"leaveflow/internal/messaging/kafka"
	"leaveflow/internal/org"
	"leaveflow/internal/policy"
	"leaveflow/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	RequestLeave(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveRequestResponse, error)
	Approve(ctx context.Context, approvalID, approverID string, req ActionRequest) (LeaveRequestResponse, error)
	Reject(ctx context.Context, approvalID, approverID string, req ActionRequest) (LeaveRequestResponse, error)
	Cancel(ctx context.Context, requestID, userID string, req ActionRequest) (LeaveRequestResponse, error)
	Get(ctx context.Context, requestID, callerID string) (LeaveRequestResponse, error)
	History(ctx context.Context, userID string) ([]LeaveRequestResponse, error)
	Incoming(ctx context.Context, approverID string) ([]IncomingApprovalResponse, error)
	OnLeaveToday(ctx context.Context) ([]OnLeaveTodayResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	orgRepo  org.Repository
	policies policy.Service
	ledger   balance.Service
	chain    *ChainBuilder
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	orgRepo org.Repository,
	policies policy.Service,
	ledger balance.Service,
	chain *ChainBuilder,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		orgRepo:  orgRepo,
		policies: policies,
		ledger:   ledger,
		chain:    chain,
		outbox:   outboxRepo,
		logger:   l,
	}
}

// businessDays counts weekdays in the inclusive range.
func businessDays(start, end time.Time) decimal.Decimal {
	days := int64(0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		default:
			days++
		}
	}
	return decimal.NewFromInt(days)
}

func (s *service) RequestLeave(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("request leave requested",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
		zap.String("leave_type_id", req.LeaveTypeID),
	)

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if end.Before(start) {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if req.HalfDay && !start.Equal(end) {
		return LeaveRequestResponse{}, leaveerrors.ErrHalfDayRange
	}

	requester, err := s.orgRepo.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrRequesterNotFound
		}
		return LeaveRequestResponse{}, err
	}

	resolved, err := s.policies.Resolve(ctx, requester.RoleID.String(), req.LeaveTypeID)
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	totalDays := businessDays(start, end)
	if req.HalfDay {
		totalDays = decimal.NewFromFloat(0.5)
	}
	if totalDays.IsZero() {
		return LeaveRequestResponse{}, leaveerrors.ErrNoWorkingDays
	}

	if err := s.ledger.CheckSufficiency(ctx, userID, req.LeaveTypeID, start.Year(), totalDays, resolved.Unbounded); err != nil {
		return LeaveRequestResponse{}, err
	}

	chain, err := s.chain.Build(ctx, requester, resolved.ApprovalBreadth, totalDays)
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("request leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	request := &LeaveRequest{
		ID:                 uuid.New(),
		UserID:             requester.ID,
		LeaveTypeID:        resolved.LeaveTypeID,
		StartDate:          start,
		EndDate:            end,
		HalfDay:            req.HalfDay,
		HalfDayType:        req.HalfDayType,
		TotalDays:          totalDays,
		Reason:             req.Reason,
		Status:             initialStatus(chain.FinalLevel),
		FinalApprovalLevel: chain.FinalLevel,
	}
	if err := qtx.CreateRequest(ctx, request); err != nil {
		s.logger.Error("request leave persist failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	approvals := s.buildApprovalRows(request, chain, requester.ID)
	if err := qtx.CreateApprovals(ctx, approvals); err != nil {
		s.logger.Error("request leave approvals persist failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if chain.AutoApprove() {
		if err := s.ledger.Debit(ctx, tx, userID, req.LeaveTypeID, start.Year(), totalDays, resolved.Unbounded); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if s.outbox != nil {
		event := events.LeaveRequestedEvent{
			EventType:          "leave.requested",
			RequestID:          rid,
			LeaveRequestID:     request.ID.String(),
			UserID:             userID,
			LeaveTypeID:        req.LeaveTypeID,
			TotalDays:          totalDays.String(),
			Status:             request.Status,
			FinalApprovalLevel: request.FinalApprovalLevel,
			OccurredAt:         time.Now().UTC(),
		}
		if err := s.enqueueEvent(ctx, tx, rid, request.ID.String(), event.EventType, event); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("request leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("request leave success",
		zap.String("request_id", rid),
		zap.String("leave_request_id", request.ID.String()),
		zap.String("status", request.Status),
		zap.Int("final_level", request.FinalApprovalLevel),
	)

	request.Approvals = approvals
	return mapToRequestResponse(*request), nil
}

// buildApprovalRows materializes the chain into one pending record per
// level. The auto-approve path gets a single synthetic record attributed
// to the requester, already approved.
func (s *service) buildApprovalRows(request *LeaveRequest, chain Chain, requesterID uuid.UUID) []LeaveApproval {
	if chain.AutoApprove() {
		now := time.Now().UTC()
		return []LeaveApproval{{
			ID:             uuid.New(),
			LeaveRequestID: request.ID,
			ApproverID:     requesterID,
			Level:          1,
			Status:         ApprovalApproved,
			ActedAt:        &now,
		}}
	}

	rows := make([]LeaveApproval, 0, chain.FinalLevel)
	for i, approverID := range chain.Approvers {
		rows = append(rows, LeaveApproval{
			ID:             uuid.New(),
			LeaveRequestID: request.ID,
			ApproverID:     approverID,
			Level:          i + 1,
			Status:         ApprovalPending,
		})
	}
	return rows
}

func (s *service) Approve(ctx context.Context, approvalID, approverID string, req ActionRequest) (LeaveRequestResponse, error) {
	return s.act(ctx, approvalID, approverID, req.Comment, true)
}

func (s *service) Reject(ctx context.Context, approvalID, approverID string, req ActionRequest) (LeaveRequestResponse, error) {
	return s.act(ctx, approvalID, approverID, req.Comment, false)
}

func (s *service) act(ctx context.Context, approvalID, approverID string, comment *string, approve bool) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	approval, err := s.repo.FindApproval(ctx, approvalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrApprovalNotFound
		}
		return LeaveRequestResponse{}, err
	}
	request := approval.Request
	if request == nil {
		return LeaveRequestResponse{}, leaveerrors.ErrRequestNotFound
	}
	if isTerminal(request.Status) {
		return LeaveRequestResponse{}, leaveerrors.ErrRequestTerminal
	}
	if activeLevel(request.Status) != approval.Level {
		return LeaveRequestResponse{}, leaveerrors.ErrApprovalLevelNotActive
	}

	toStatus := ApprovalApproved
	if !approve {
		toStatus = ApprovalRejected
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	affected, err := qtx.ActOnApproval(ctx, approvalID, approverID, toStatus, comment)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	if affected == 0 {
		// Distinguish the wrong person from a duplicate click.
		if approval.ApproverID.String() != approverID {
			return LeaveRequestResponse{}, leaveerrors.ErrNotAuthorizedApprover
		}
		return LeaveRequestResponse{}, leaveerrors.ErrAlreadyActed
	}

	fromStatus := request.Status
	newStatus := StatusRejected
	if approve {
		newStatus = nextStatus(approval.Level, request.FinalApprovalLevel)
	}
	if err := qtx.UpdateRequestStatus(ctx, request.ID.String(), newStatus); err != nil {
		return LeaveRequestResponse{}, err
	}

	if approve && newStatus == StatusApproved {
		unbounded := request.LeaveType != nil && request.LeaveType.Unbounded
		if err := s.ledger.Debit(ctx, tx, request.UserID.String(), request.LeaveTypeID.String(), request.StartDate.Year(), request.TotalDays, unbounded); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if s.outbox != nil {
		event := events.LeaveStatusChangedEvent{
			EventType:      "leave.status_changed",
			RequestID:      rid,
			LeaveRequestID: request.ID.String(),
			UserID:         request.UserID.String(),
			FromStatus:     fromStatus,
			ToStatus:       newStatus,
			ActedBy:        approverID,
			Level:          approval.Level,
			OccurredAt:     time.Now().UTC(),
		}
		if err := s.enqueueEvent(ctx, tx, rid, request.ID.String(), event.EventType, event); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approval commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("approval recorded",
		zap.String("request_id", rid),
		zap.String("leave_request_id", request.ID.String()),
		zap.Int("level", approval.Level),
		zap.String("to_status", newStatus),
	)

	updated, err := s.repo.FindRequest(ctx, request.ID.String())
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	return mapToRequestResponse(*updated), nil
}

func (s *service) Cancel(ctx context.Context, requestID, userID string, req ActionRequest) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	request, err := s.repo.FindRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}
	if request.UserID.String() != userID {
		return LeaveRequestResponse{}, leaveerrors.ErrNotRequestOwner
	}
	switch request.Status {
	case StatusRejected, StatusCancelled:
		return LeaveRequestResponse{}, leaveerrors.ErrRequestTerminal
	}

	wasApproved := request.Status == StatusApproved
	if wasApproved {
		// Approved leave can only be withdrawn before it starts.
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if !request.StartDate.After(today) {
			return LeaveRequestResponse{}, leaveerrors.ErrCancelAfterStart
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpdateRequestStatus(ctx, requestID, StatusCancelled); err != nil {
		return LeaveRequestResponse{}, err
	}
	if err := qtx.CancelOpenApprovals(ctx, requestID); err != nil {
		return LeaveRequestResponse{}, err
	}

	if wasApproved {
		unbounded := request.LeaveType != nil && request.LeaveType.Unbounded
		if err := s.ledger.Credit(ctx, tx, userID, request.LeaveTypeID.String(), request.StartDate.Year(), request.TotalDays, unbounded); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if s.outbox != nil {
		event := events.LeaveStatusChangedEvent{
			EventType:      "leave.status_changed",
			RequestID:      rid,
			LeaveRequestID: requestID,
			UserID:         userID,
			FromStatus:     request.Status,
			ToStatus:       StatusCancelled,
			OccurredAt:     time.Now().UTC(),
		}
		if err := s.enqueueEvent(ctx, tx, rid, requestID, event.EventType, event); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("cancel leave success",
		zap.String("request_id", rid),
		zap.String("leave_request_id", requestID),
		zap.Bool("was_approved", wasApproved),
	)

	updated, err := s.repo.FindRequest(ctx, requestID)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	return mapToRequestResponse(*updated), nil
}

func (s *service) Get(ctx context.Context, requestID, callerID string) (LeaveRequestResponse, error) {
	request, err := s.repo.FindRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}

	if request.UserID.String() != callerID && !isAssignedApprover(request, callerID) {
		return LeaveRequestResponse{}, leaveerrors.ErrRequestNotFound
	}
	return mapToRequestResponse(*request), nil
}

func isAssignedApprover(request *LeaveRequest, callerID string) bool {
	for _, a := range request.Approvals {
		if a.ApproverID.String() == callerID {
			return true
		}
	}
	return false
}

func (s *service) History(ctx context.Context, userID string) ([]LeaveRequestResponse, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveRequestResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToRequestResponse(row)
	}
	return resp, nil
}

func (s *service) Incoming(ctx context.Context, approverID string) ([]IncomingApprovalResponse, error) {
	rows, err := s.repo.ListIncoming(ctx, approverID)
	if err != nil {
		return nil, err
	}

	resp := make([]IncomingApprovalResponse, 0, len(rows))
	for _, a := range rows {
		if a.Request == nil {
			continue
		}
		item := IncomingApprovalResponse{
			ApprovalID:    a.ID.String(),
			Level:         a.Level,
			RequestID:     a.Request.ID.String(),
			StartDate:     a.Request.StartDate.Format(dateLayout),
			EndDate:       a.Request.EndDate.Format(dateLayout),
			TotalDays:     a.Request.TotalDays,
			RequestStatus: a.Request.Status,
		}
		if a.Request.User != nil {
			item.RequesterName = a.Request.User.Name
		}
		if a.Request.LeaveType != nil {
			item.LeaveTypeName = a.Request.LeaveType.Name
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *service) OnLeaveToday(ctx context.Context) ([]OnLeaveTodayResponse, error) {
	rows, err := s.repo.ListApprovedCovering(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	resp := make([]OnLeaveTodayResponse, 0, len(rows))
	for _, row := range rows {
		item := OnLeaveTodayResponse{
			UserID:    row.UserID.String(),
			StartDate: row.StartDate.Format(dateLayout),
			EndDate:   row.EndDate.Format(dateLayout),
			HalfDay:   row.HalfDay,
		}
		if row.User != nil {
			item.UserName = row.User.Name
		}
		if row.LeaveType != nil {
			item.LeaveTypeName = row.LeaveType.Name
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, rid, aggregateID, eventType string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         events.LeaveRequestLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("outbox persist failed",
			zap.String("leave_request_id", aggregateID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
