package events

import (
	"time"

	"github.com/spec-kit/hospital-role-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEvaluationChecked EventType = "evaluation_checked"
	EventSessionRevoked    EventType = "session_revoked"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EvaluationCheckedPayload carries one evaluation-permission decision.
type EvaluationCheckedPayload struct {
	LeaderID         string       `json:"leader_id"`
	SubordinateID    string       `json:"subordinate_id"`
	LeaderCargo      domain.Cargo `json:"leader_cargo"`
	SubordinateCargo domain.Cargo `json:"subordinate_cargo"`
	Allowed          bool         `json:"allowed"`
}

// SessionRevokedPayload marks a logout.
type SessionRevokedPayload struct {
	EmployeeID string `json:"employee_id"`
	TokenID    string `json:"token_id"`
}
