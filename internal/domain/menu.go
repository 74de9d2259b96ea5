package domain

import "time"

// MenuEntry is one sidebar navigation item. Visibility is gated by tier
// (nivel), never by cargo.
type MenuEntry struct {
	Label    string
	Path     string
	MinNivel Nivel
}

// EvaluationRecord is an audit row for a single evaluation-permission check.
type EvaluationRecord struct {
	ID               string
	LeaderID         string
	SubordinateID    string
	LeaderCargo      Cargo
	SubordinateCargo Cargo
	Allowed          bool
	CheckedAt        time.Time
}
