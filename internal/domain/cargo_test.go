package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCargo(t *testing.T) {
	cargo, ok := ParseCargo("Chefe de Pediatria")
	require.True(t, ok)
	assert.Equal(t, CargoChefeDePediatria, cargo)

	_, ok = ParseCargo("Chefe de Pediatria ") // trailing space, no trimming
	assert.False(t, ok)

	_, ok = ParseCargo("chefe de pediatria")
	assert.False(t, ok)

	_, ok = ParseCargo("")
	assert.False(t, ok)
}

func TestNivelForCargoCoversCatalog(t *testing.T) {
	for _, cargo := range AllCargos() {
		nivel, ok := NivelForCargo(cargo)
		require.True(t, ok, "cargo %s missing tier", cargo)
		assert.GreaterOrEqual(t, nivel.Rank(), 0)
	}
}

func TestNivelOrdering(t *testing.T) {
	assert.Equal(t, 10, NivelN10.Rank())
	assert.Equal(t, 0, NivelN0.Rank())
	assert.Equal(t, -1, Nivel("N99").Rank())

	assert.True(t, NivelN10.AtLeast(NivelN7))
	assert.True(t, NivelN7.AtLeast(NivelN7))
	assert.False(t, NivelN6.AtLeast(NivelN7))
	assert.False(t, Nivel("N99").AtLeast(NivelN0))
}

func TestFundadorSitsAtTheTop(t *testing.T) {
	nivel, ok := NivelForCargo(CargoFundador)
	require.True(t, ok)
	assert.Equal(t, NivelN10, nivel)
}

func TestAllCargosReturnsCopy(t *testing.T) {
	first := AllCargos()
	first[0] = Cargo("Adulterado")
	assert.Equal(t, CargoFundador, AllCargos()[0])
}
