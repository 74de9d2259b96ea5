package domain

// Cargo names a specific job title inside the hospital (e.g. "Chefe de
// Cirurgia"). Comparison is exact and case-sensitive; no normalization is
// applied anywhere.
type Cargo string

const (
	CargoFundador                 Cargo = "Fundador"
	CargoDiretor                  Cargo = "Diretor"
	CargoCoordenadorGeral         Cargo = "Coordenador Geral"
	CargoSupervisorClinico        Cargo = "Supervisor Clínico"
	CargoSupervisorAdministrativo Cargo = "Supervisor Administrativo"
	CargoChefeDeCirurgia          Cargo = "Chefe de Cirurgia"
	CargoChefeDePediatria         Cargo = "Chefe de Pediatria"
	CargoChefeDeEnfermagem        Cargo = "Chefe de Enfermagem"
	CargoChefeDeRecepcao          Cargo = "Chefe de Recepção"
	CargoChefeDeFarmacia          Cargo = "Chefe de Farmácia"
	CargoCirurgia                 Cargo = "Cirurgia"
	CargoPediatria                Cargo = "Pediatria"
	CargoEnfermagem               Cargo = "Enfermagem"
	CargoFarmacia                 Cargo = "Farmácia"
	CargoRecepcao                 Cargo = "Recepção"
	CargoAnalista                 Cargo = "Analista"
	CargoResidente                Cargo = "Residente"
	CargoEstagiario               Cargo = "Estagiário"
)

// Nivel is the coarse hierarchical tier label ("N0".."N10") attached to each
// cargo. It drives menu visibility only; evaluation permission is decided by
// cargo, never by nivel.
type Nivel string

const (
	NivelN0  Nivel = "N0"
	NivelN1  Nivel = "N1"
	NivelN2  Nivel = "N2"
	NivelN3  Nivel = "N3"
	NivelN4  Nivel = "N4"
	NivelN5  Nivel = "N5"
	NivelN6  Nivel = "N6"
	NivelN7  Nivel = "N7"
	NivelN8  Nivel = "N8"
	NivelN9  Nivel = "N9"
	NivelN10 Nivel = "N10"
)

var nivelRank = map[Nivel]int{
	NivelN0:  0,
	NivelN1:  1,
	NivelN2:  2,
	NivelN3:  3,
	NivelN4:  4,
	NivelN5:  5,
	NivelN6:  6,
	NivelN7:  7,
	NivelN8:  8,
	NivelN9:  9,
	NivelN10: 10,
}

// Rank returns the numeric position of the tier, -1 for unknown labels.
func (n Nivel) Rank() int {
	rank, ok := nivelRank[n]
	if !ok {
		return -1
	}
	return rank
}

// AtLeast reports whether n sits at or above the given tier.
func (n Nivel) AtLeast(min Nivel) bool {
	return n.Rank() >= 0 && n.Rank() >= min.Rank()
}

var cargoNivel = map[Cargo]Nivel{
	CargoFundador:                 NivelN10,
	CargoDiretor:                  NivelN9,
	CargoCoordenadorGeral:         NivelN8,
	CargoSupervisorClinico:        NivelN7,
	CargoSupervisorAdministrativo: NivelN7,
	CargoChefeDeCirurgia:          NivelN6,
	CargoChefeDePediatria:         NivelN6,
	CargoChefeDeEnfermagem:        NivelN6,
	CargoChefeDeRecepcao:          NivelN6,
	CargoChefeDeFarmacia:          NivelN6,
	CargoCirurgia:                 NivelN5,
	CargoPediatria:                NivelN5,
	CargoEnfermagem:               NivelN4,
	CargoFarmacia:                 NivelN4,
	CargoRecepcao:                 NivelN3,
	CargoAnalista:                 NivelN2,
	CargoResidente:                NivelN1,
	CargoEstagiario:               NivelN0,
}

var allCargos = []Cargo{
	CargoFundador,
	CargoDiretor,
	CargoCoordenadorGeral,
	CargoSupervisorClinico,
	CargoSupervisorAdministrativo,
	CargoChefeDeCirurgia,
	CargoChefeDePediatria,
	CargoChefeDeEnfermagem,
	CargoChefeDeRecepcao,
	CargoChefeDeFarmacia,
	CargoCirurgia,
	CargoPediatria,
	CargoEnfermagem,
	CargoFarmacia,
	CargoRecepcao,
	CargoAnalista,
	CargoResidente,
	CargoEstagiario,
}

// ParseCargo validates a raw title against the catalog.
func ParseCargo(raw string) (Cargo, bool) {
	cargo := Cargo(raw)
	_, ok := cargoNivel[cargo]
	return cargo, ok
}

// Known reports whether the cargo belongs to the catalog.
func (c Cargo) Known() bool {
	_, ok := cargoNivel[c]
	return ok
}

// NivelForCargo resolves the tier of a cargo.
func NivelForCargo(cargo Cargo) (Nivel, bool) {
	nivel, ok := cargoNivel[cargo]
	return nivel, ok
}

// AllCargos returns the full catalog, highest tier first.
func AllCargos() []Cargo {
	out := make([]Cargo, len(allCargos))
	copy(out, allCargos)
	return out
}
