// Package hierarchy answers evaluation-permission queries over the fixed
// organizational chart of the hospital. The chart is compiled-in
// configuration: it is built once and never mutated, so any number of
// goroutines may query it without coordination.
package hierarchy

import "github.com/spec-kit/hospital-role-service/internal/domain"

// lideranca maps each leader cargo to the cargos it directly leads. The
// relation is deliberately non-transitive: a Supervisor lists Chefe roles,
// not the roles those Chefes lead. Fundador keeps an empty entry but is
// resolved by the short-circuit in CanEvaluate, never by this table.
var lideranca = map[domain.Cargo][]domain.Cargo{
	domain.CargoFundador: {},
	domain.CargoDiretor: {
		domain.CargoCoordenadorGeral,
	},
	domain.CargoCoordenadorGeral: {
		domain.CargoSupervisorClinico,
		domain.CargoSupervisorAdministrativo,
	},
	domain.CargoSupervisorClinico: {
		domain.CargoChefeDeCirurgia,
		domain.CargoChefeDePediatria,
		domain.CargoChefeDeEnfermagem,
	},
	domain.CargoSupervisorAdministrativo: {
		domain.CargoChefeDeRecepcao,
		domain.CargoChefeDeFarmacia,
		domain.CargoAnalista,
	},
	domain.CargoChefeDeCirurgia: {
		domain.CargoCirurgia,
		domain.CargoResidente,
	},
	domain.CargoChefeDePediatria: {
		domain.CargoPediatria,
	},
	domain.CargoChefeDeEnfermagem: {
		domain.CargoEnfermagem,
		domain.CargoEstagiario,
	},
	domain.CargoChefeDeRecepcao: {
		domain.CargoRecepcao,
	},
	domain.CargoChefeDeFarmacia: {
		domain.CargoFarmacia,
	},
}

// liderados indexes the table for O(1) membership checks. Built once at
// package init; read-only afterwards.
var liderados = buildIndex()

func buildIndex() map[domain.Cargo]map[domain.Cargo]struct{} {
	index := make(map[domain.Cargo]map[domain.Cargo]struct{}, len(lideranca))
	for leader, reports := range lideranca {
		set := make(map[domain.Cargo]struct{}, len(reports))
		for _, cargo := range reports {
			set[cargo] = struct{}{}
		}
		index[leader] = set
	}
	return index
}

// CanEvaluate reports whether a holder of the leader cargo is authorized to
// evaluate a holder of the subordinate cargo. The check is direct leadership
// only; no transitive reach is computed. Comparison is exact and
// case-sensitive.
func CanEvaluate(leader, subordinate domain.Cargo) bool {
	// Guard against malformed upstream data, not a domain rule: an unknown
	// or missing cargo can never evaluate nor be evaluated.
	if leader == "" || subordinate == "" {
		return false
	}

	// Fundador evaluates every cargo except another Fundador. Resolved
	// before any table lookup.
	if leader == domain.CargoFundador {
		return subordinate != domain.CargoFundador
	}

	reports, ok := liderados[leader]
	if !ok {
		return false
	}
	_, direct := reports[subordinate]
	return direct
}

// DirectReports returns a copy of the cargos directly led by the given
// leader. The second result is false when the leader has no table entry.
func DirectReports(leader domain.Cargo) ([]domain.Cargo, bool) {
	reports, ok := lideranca[leader]
	if !ok {
		return nil, false
	}
	out := make([]domain.Cargo, len(reports))
	copy(out, reports)
	return out, true
}

// Leaders returns every cargo that holds a table entry, Fundador included.
func Leaders() []domain.Cargo {
	out := make([]domain.Cargo, 0, len(lideranca))
	for leader := range lideranca {
		out = append(out, leader)
	}
	return out
}
