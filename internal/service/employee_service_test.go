package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hospital-role-service/internal/auth"
	"github.com/spec-kit/hospital-role-service/internal/domain"
	"github.com/spec-kit/hospital-role-service/internal/repository"
)

func emptyStubRepo() *stubEmployeeRepository {
	return &stubEmployeeRepository{employees: map[string]*domain.Employee{}}
}

func TestEnsureFounderProvisionsFreshDatabase(t *testing.T) {
	repo := emptyStubRepo()
	svc := NewEmployeeService(repo, 4, nil)

	require.NoError(t, svc.EnsureFounder(context.Background(), "fundador@hospital.local", "fundador-dev"))

	founder, err := repo.GetByEmail(context.Background(), "fundador@hospital.local")
	require.NoError(t, err)
	assert.Equal(t, domain.CargoFundador, founder.Cargo)
	assert.Equal(t, domain.EmployeeStatusActive, founder.Status)
	assert.NoError(t, auth.ComparePassword(founder.PasswordHash, "fundador-dev"),
		"provisioned founder must be able to log in")
}

func TestEnsureFounderIsIdempotent(t *testing.T) {
	repo := emptyStubRepo()
	svc := NewEmployeeService(repo, 4, nil)

	require.NoError(t, svc.EnsureFounder(context.Background(), "fundador@hospital.local", "fundador-dev"))
	require.NoError(t, svc.EnsureFounder(context.Background(), "fundador@hospital.local", "fundador-dev"))
	assert.Len(t, repo.employees, 1)
}

func TestEnsureFounderSkipsWithoutCredentials(t *testing.T) {
	repo := emptyStubRepo()
	svc := NewEmployeeService(repo, 4, nil)

	require.NoError(t, svc.EnsureFounder(context.Background(), "", ""))
	assert.Empty(t, repo.employees)
}

func TestCreateEmployee(t *testing.T) {
	repo := emptyStubRepo()
	svc := NewEmployeeService(repo, 4, nil)

	employee, nivel, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:     "Helena",
		Email:    "helena@hospital.local",
		Password: "bisturi-afiado",
		Cargo:    "Chefe de Cirurgia",
		Setor:    "Cirurgia",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, employee.ID)
	assert.Equal(t, domain.CargoChefeDeCirurgia, employee.Cargo)
	assert.Equal(t, domain.NivelN6, nivel)
	assert.NotEqual(t, "bisturi-afiado", employee.PasswordHash)
	assert.NoError(t, auth.ComparePassword(employee.PasswordHash, "bisturi-afiado"))
}

func TestCreateEmployeeRejectsUnknownCargo(t *testing.T) {
	svc := NewEmployeeService(emptyStubRepo(), 4, nil)

	_, _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:     "Zé",
		Email:    "ze@hospital.local",
		Password: "senha-segura",
		Cargo:    "Zelador",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}

func TestCreateEmployeeRejectsShortPassword(t *testing.T) {
	svc := NewEmployeeService(emptyStubRepo(), 4, nil)

	_, _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:     "Ana",
		Email:    "ana@hospital.local",
		Password: "curta",
		Cargo:    "Analista",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}

func TestCreateEmployeeRejectsDuplicateEmail(t *testing.T) {
	repo := emptyStubRepo()
	svc := NewEmployeeService(repo, 4, nil)

	input := CreateEmployeeInput{
		Name:     "Marta",
		Email:    "marta@hospital.local",
		Password: "senha-segura",
		Cargo:    "Supervisor Clínico",
	}
	_, _, err := svc.CreateEmployee(context.Background(), input)
	require.NoError(t, err)

	_, _, err = svc.CreateEmployee(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", domainCode(t, err))
}

func TestListEmployeesFiltersByCargo(t *testing.T) {
	repo := newStubRepo()
	svc := NewEmployeeService(repo, 4, nil)

	cargo := domain.CargoCirurgia
	employees, err := svc.ListEmployees(context.Background(), repository.EmployeeFilter{Cargo: &cargo})
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "med", employees[0].ID)
}
