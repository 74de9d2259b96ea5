package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/hospital-role-service/internal/domain"
	"github.com/spec-kit/hospital-role-service/internal/events"
	"github.com/spec-kit/hospital-role-service/internal/repository"
)

// StartAuditWorker subscribes the audit trail to evaluation and session
// events. Persistence failures are logged, never propagated back to the
// request path.
func StartAuditWorker(dispatcher events.Dispatcher, audits repository.EvaluationAuditRepository, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dispatcher.Subscribe(events.EventEvaluationChecked, func(ctx context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.EvaluationCheckedPayload)
		if !ok {
			logger.Warn("evaluation event with unexpected payload", zap.String("event_id", event.ID))
			return nil
		}

		checkedAt := event.Timestamp
		if checkedAt.IsZero() {
			checkedAt = time.Now()
		}

		record := &domain.EvaluationRecord{
			ID:               event.ID,
			LeaderID:         payload.LeaderID,
			SubordinateID:    payload.SubordinateID,
			LeaderCargo:      payload.LeaderCargo,
			SubordinateCargo: payload.SubordinateCargo,
			Allowed:          payload.Allowed,
			CheckedAt:        checkedAt,
		}
		if audits != nil {
			if err := audits.Record(ctx, record); err != nil {
				logger.Error("failed to persist evaluation audit", zap.String("event_id", event.ID), zap.Error(err))
			}
		}
		return nil
	})

	dispatcher.Subscribe(events.EventSessionRevoked, func(_ context.Context, event events.Event) error {
		if payload, ok := event.Payload.(events.SessionRevokedPayload); ok {
			logger.Info("session revoked",
				zap.String("employee_id", payload.EmployeeID),
				zap.String("token_id", payload.TokenID),
			)
		}
		return nil
	})
}
