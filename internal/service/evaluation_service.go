package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/hospital-role-service/internal/domain"
	"github.com/spec-kit/hospital-role-service/internal/events"
	"github.com/spec-kit/hospital-role-service/internal/hierarchy"
)

// EvaluationDecision is the result of a directory-backed permission check.
type EvaluationDecision struct {
	LeaderID         string
	SubordinateID    string
	LeaderCargo      domain.Cargo
	SubordinateCargo domain.Cargo
	Allowed          bool
}

// EvaluationService answers "may this employee evaluate that one" by
// resolving both sides through the directory and querying the hierarchy
// table. A directory failure is returned as an error, never as a false
// decision.
type EvaluationService struct {
	directory  *DirectoryService
	dispatcher events.Dispatcher
}

// NewEvaluationService builds the service.
func NewEvaluationService(directory *DirectoryService, dispatcher events.Dispatcher) *EvaluationService {
	return &EvaluationService{directory: directory, dispatcher: dispatcher}
}

// CanEvaluate resolves both employees and checks direct leadership.
func (s *EvaluationService) CanEvaluate(ctx context.Context, leaderID, subordinateID string) (*EvaluationDecision, error) {
	leader, _, err := s.directory.GetEmployee(ctx, leaderID)
	if err != nil {
		return nil, err
	}
	subordinate, _, err := s.directory.GetEmployee(ctx, subordinateID)
	if err != nil {
		return nil, err
	}

	decision := &EvaluationDecision{
		LeaderID:         leader.ID,
		SubordinateID:    subordinate.ID,
		LeaderCargo:      leader.Cargo,
		SubordinateCargo: subordinate.Cargo,
		Allowed:          hierarchy.CanEvaluate(leader.Cargo, subordinate.Cargo),
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventEvaluationChecked,
			Timestamp: time.Now(),
			Payload: events.EvaluationCheckedPayload{
				LeaderID:         decision.LeaderID,
				SubordinateID:    decision.SubordinateID,
				LeaderCargo:      decision.LeaderCargo,
				SubordinateCargo: decision.SubordinateCargo,
				Allowed:          decision.Allowed,
			},
		})
	}

	return decision, nil
}

// CheckCargos answers the raw title-pair query. Inputs pass through to the
// engine untouched; unknown or empty titles simply yield false.
func (s *EvaluationService) CheckCargos(leader, subordinate domain.Cargo) bool {
	return hierarchy.CanEvaluate(leader, subordinate)
}
