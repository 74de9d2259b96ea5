package dto

import (
	"time"

	"github.com/spec-kit/hospital-role-service/internal/domain"
)

// EvaluateCargosRequest is the raw title-pair query.
type EvaluateCargosRequest struct {
	LeaderCargo      string `json:"leader_cargo"`
	SubordinateCargo string `json:"subordinate_cargo"`
}

// EvaluateCargosResponse echoes the pair with the decision.
type EvaluateCargosResponse struct {
	LeaderCargo      string `json:"leader_cargo"`
	SubordinateCargo string `json:"subordinate_cargo"`
	Allowed          bool   `json:"allowed"`
}

// EvaluationDecisionResponse is the directory-backed decision.
type EvaluationDecisionResponse struct {
	LeaderID         string       `json:"leader_id"`
	SubordinateID    string       `json:"subordinate_id"`
	LeaderCargo      domain.Cargo `json:"leader_cargo"`
	SubordinateCargo domain.Cargo `json:"subordinate_cargo"`
	Allowed          bool         `json:"allowed"`
}

// CargoResponse is one catalog entry.
type CargoResponse struct {
	Cargo domain.Cargo `json:"cargo"`
	Nivel domain.Nivel `json:"nivel"`
}

// DirectReportsResponse lists the cargos a leader directly leads.
type DirectReportsResponse struct {
	Cargo   domain.Cargo   `json:"cargo"`
	Reports []domain.Cargo `json:"reports"`
}

// MenuEntryResponse is one sidebar item visible to the caller.
type MenuEntryResponse struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// AuditEntryResponse is one persisted evaluation decision.
type AuditEntryResponse struct {
	ID               string       `json:"id"`
	LeaderID         string       `json:"leader_id"`
	SubordinateID    string       `json:"subordinate_id"`
	LeaderCargo      domain.Cargo `json:"leader_cargo"`
	SubordinateCargo domain.Cargo `json:"subordinate_cargo"`
	Allowed          bool         `json:"allowed"`
	CheckedAt        time.Time    `json:"checked_at"`
}
