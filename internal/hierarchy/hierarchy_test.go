package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hospital-role-service/internal/domain"
)

func TestCanEvaluateEmptyInputs(t *testing.T) {
	for _, cargo := range domain.AllCargos() {
		assert.False(t, CanEvaluate("", cargo), "empty leader vs %s", cargo)
		assert.False(t, CanEvaluate(cargo, ""), "%s vs empty subordinate", cargo)
	}
	assert.False(t, CanEvaluate("", ""))
}

func TestFundadorEvaluatesEveryoneButItself(t *testing.T) {
	for _, cargo := range domain.AllCargos() {
		if cargo == domain.CargoFundador {
			assert.False(t, CanEvaluate(domain.CargoFundador, cargo),
				"Fundador must not evaluate a peer Fundador")
			continue
		}
		assert.True(t, CanEvaluate(domain.CargoFundador, cargo),
			"Fundador should evaluate %s", cargo)
	}
}

func TestCanEvaluateDirectEntries(t *testing.T) {
	tests := []struct {
		name        string
		leader      domain.Cargo
		subordinate domain.Cargo
		want        bool
	}{
		{"chefe evaluates own specialty", domain.CargoChefeDeCirurgia, domain.CargoCirurgia, true},
		{"supervisor evaluates chefe", domain.CargoSupervisorClinico, domain.CargoChefeDeCirurgia, true},
		{"supervisor does not skip a tier", domain.CargoSupervisorClinico, domain.CargoCirurgia, false},
		{"diretor does not skip to supervisor", domain.CargoDiretor, domain.CargoSupervisorClinico, false},
		{"no entry for analista", domain.CargoAnalista, domain.CargoChefeDeRecepcao, false},
		{"leaf cargo cannot evaluate upward", domain.CargoCirurgia, domain.CargoChefeDeCirurgia, false},
		{"sibling chefes cannot evaluate each other", domain.CargoChefeDeCirurgia, domain.CargoChefeDePediatria, false},
		{"admin supervisor evaluates analista", domain.CargoSupervisorAdministrativo, domain.CargoAnalista, true},
		{"unknown leader", domain.Cargo("Diretor de RH"), domain.CargoAnalista, false},
		{"unknown subordinate", domain.CargoDiretor, domain.Cargo("Zelador"), false},
		{"comparison is case-sensitive", domain.Cargo("chefe de cirurgia"), domain.CargoCirurgia, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEvaluate(tt.leader, tt.subordinate))
		})
	}
}

func TestCanEvaluateIsNotTransitive(t *testing.T) {
	// Supervisor Clínico leads Chefe de Cirurgia, which leads Cirurgia.
	require.True(t, CanEvaluate(domain.CargoSupervisorClinico, domain.CargoChefeDeCirurgia))
	require.True(t, CanEvaluate(domain.CargoChefeDeCirurgia, domain.CargoCirurgia))
	assert.False(t, CanEvaluate(domain.CargoSupervisorClinico, domain.CargoCirurgia))
}

func TestCanEvaluateIsIdempotent(t *testing.T) {
	first := CanEvaluate(domain.CargoSupervisorClinico, domain.CargoChefeDePediatria)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, CanEvaluate(domain.CargoSupervisorClinico, domain.CargoChefeDePediatria))
	}
}

func TestDirectReportsReturnsCopy(t *testing.T) {
	reports, ok := DirectReports(domain.CargoSupervisorClinico)
	require.True(t, ok)
	require.NotEmpty(t, reports)

	// Mutating the returned slice must not leak into later queries.
	reports[0] = domain.Cargo("Adulterado")
	again, ok := DirectReports(domain.CargoSupervisorClinico)
	require.True(t, ok)
	assert.Contains(t, again, domain.CargoChefeDeCirurgia)
	assert.True(t, CanEvaluate(domain.CargoSupervisorClinico, domain.CargoChefeDeCirurgia))
}

func TestDirectReportsUnknownLeader(t *testing.T) {
	_, ok := DirectReports(domain.CargoAnalista)
	assert.False(t, ok)
}

func TestFundadorEntryIsEmptyAndNeverConsulted(t *testing.T) {
	reports, ok := DirectReports(domain.CargoFundador)
	require.True(t, ok)
	assert.Empty(t, reports)
	// The short-circuit, not the empty entry, decides Fundador queries.
	assert.True(t, CanEvaluate(domain.CargoFundador, domain.CargoEstagiario))
}

func TestEveryListedReportBelongsToCatalog(t *testing.T) {
	for _, leader := range Leaders() {
		reports, ok := DirectReports(leader)
		require.True(t, ok)
		for _, cargo := range reports {
			assert.True(t, cargo.Known(), "%s lists unknown cargo %s", leader, cargo)
		}
	}
}
