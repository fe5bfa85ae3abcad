package leave

import (
	"context"
	"errors"

	leaveerrors "leaveflow/internal/leave/errors"
	"leaveflow/internal/org"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Requests of this many days or more escalate to the requester's full
// approval-depth ceiling regardless of the leave type's breadth.
var escalationThreshold = decimal.NewFromInt(5)

// maxChainDepth also guards against manager cycles in dirty data.
const maxChainDepth = 3

// Chain is the approval ladder frozen for one request: Approvers[k-1]
// acts at level k. A zero FinalLevel means the request self-approves.
type Chain struct {
	FinalLevel int
	Approvers  []uuid.UUID
}

func (c Chain) AutoApprove() bool {
	return c.FinalLevel == 0
}

// ChainBuilder resolves who has to sign off on a request and in what
// order, by walking the requester's manager chain.
type ChainBuilder struct {
	orgRepo org.Repository
	logger  *zap.Logger
}

func NewChainBuilder(orgRepo org.Repository, logger ...*zap.Logger) *ChainBuilder {
	l := zap.L().Named("leave.chain")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.chain")
	}
	return &ChainBuilder{orgRepo: orgRepo, logger: l}
}

// Build computes the required depth and the concrete approvers.
//
// Depth: escalated requests use the role's full ceiling; otherwise the
// smaller of the policy breadth and the ceiling. A missing ceiling means
// the role answers to nobody and the depth is zero.
//
// The chain is truncated to however many managers actually exist above
// the requester; a requester with no manager at all self-approves.
func (b *ChainBuilder) Build(ctx context.Context, requester *org.User, policyBreadth int, totalDays decimal.Decimal) (Chain, error) {
	if requester == nil || requester.Role == nil {
		return Chain{}, leaveerrors.ErrRequesterNotFound
	}

	roleCap := 0
	if requester.Role.ApprovalLevel != nil {
		roleCap = *requester.Role.ApprovalLevel
	}

	finalLevel := policyBreadth
	if totalDays.GreaterThanOrEqual(escalationThreshold) {
		finalLevel = roleCap
	} else if roleCap < finalLevel {
		finalLevel = roleCap
	}
	if finalLevel > maxChainDepth {
		finalLevel = maxChainDepth
	}
	if finalLevel == 0 {
		return Chain{}, nil
	}

	approvers := make([]uuid.UUID, 0, finalLevel)
	seen := map[uuid.UUID]struct{}{requester.ID: {}}
	current := requester
	for level := 1; level <= finalLevel; level++ {
		if current.ManagerID == nil {
			break
		}
		managerID := *current.ManagerID
		if _, cycle := seen[managerID]; cycle {
			b.logger.Warn("manager cycle detected, truncating chain",
				zap.String("user_id", requester.ID.String()),
				zap.String("manager_id", managerID.String()),
			)
			break
		}
		seen[managerID] = struct{}{}

		manager, err := b.orgRepo.FindUser(ctx, managerID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				break
			}
			return Chain{}, err
		}

		approvers = append(approvers, manager.ID)
		current = manager
	}

	chain := Chain{FinalLevel: len(approvers), Approvers: approvers}
	if chain.FinalLevel < finalLevel {
		b.logger.Debug("approval chain truncated",
			zap.String("user_id", requester.ID.String()),
			zap.Int("required", finalLevel),
			zap.Int("reachable", chain.FinalLevel),
		)
	}
	return chain, nil
}
