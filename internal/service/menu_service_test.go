package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hospital-role-service/internal/domain"
)

func menuLabels(entries []domain.MenuEntry) []string {
	labels := make([]string, 0, len(entries))
	for _, entry := range entries {
		labels = append(labels, entry.Label)
	}
	return labels
}

func TestMenuEntriesForBaseTier(t *testing.T) {
	menu := NewMenuService()

	entries := menu.EntriesFor(domain.NivelN0)
	assert.Equal(t, []string{"Início", "Meu Perfil", "Minha Escala"}, menuLabels(entries))
}

func TestMenuEntriesForChefeTier(t *testing.T) {
	menu := NewMenuService()

	labels := menuLabels(menu.EntriesFor(domain.NivelN6))
	assert.Contains(t, labels, "Equipe")
	assert.Contains(t, labels, "Avaliações")
	assert.NotContains(t, labels, "Relatórios")
	assert.NotContains(t, labels, "Administração")
}

func TestMenuEntriesForTopTierSeesEverything(t *testing.T) {
	menu := NewMenuService()

	entries := menu.EntriesFor(domain.NivelN10)
	require.Len(t, entries, 8)
}

func TestMenuEntriesUnknownTierSeesNothing(t *testing.T) {
	menu := NewMenuService()
	assert.Empty(t, menu.EntriesFor(domain.Nivel("N99")))
}
