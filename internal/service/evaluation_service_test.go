package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hospital-role-service/internal/domain"
	"github.com/spec-kit/hospital-role-service/internal/events"
	"github.com/spec-kit/hospital-role-service/internal/repository"
	apperrors "github.com/spec-kit/hospital-role-service/pkg/util"
)

// stubEmployeeRepository serves canned employees keyed by id and records
// writes like a real repository would.
type stubEmployeeRepository struct {
	employees map[string]*domain.Employee
	failWith  error
}

func (s *stubEmployeeRepository) Create(_ context.Context, employee *domain.Employee) error {
	if s.failWith != nil {
		return s.failWith
	}
	if employee.ID == "" {
		employee.ID = fmt.Sprintf("emp-%d", len(s.employees)+1)
	}
	s.employees[employee.ID] = employee
	return nil
}

func (s *stubEmployeeRepository) Update(context.Context, *domain.Employee) error { return nil }

func (s *stubEmployeeRepository) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	employee, ok := s.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return employee, nil
}

func (s *stubEmployeeRepository) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, employee := range s.employees {
		if employee.Email == email {
			return employee, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubEmployeeRepository) List(_ context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []domain.Employee
	for _, employee := range s.employees {
		if filter.Cargo != nil && employee.Cargo != *filter.Cargo {
			continue
		}
		if filter.Setor != nil && employee.Setor != *filter.Setor {
			continue
		}
		if filter.Status != nil && employee.Status != *filter.Status {
			continue
		}
		out = append(out, *employee)
	}
	return out, nil
}

// captureDispatcher records published events.
type captureDispatcher struct {
	published []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func newStubRepo() *stubEmployeeRepository {
	return &stubEmployeeRepository{employees: map[string]*domain.Employee{
		"chefe": {ID: "chefe", Name: "Helena", Cargo: domain.CargoChefeDeCirurgia},
		"med":   {ID: "med", Name: "Rafael", Cargo: domain.CargoCirurgia},
		"sup":   {ID: "sup", Name: "Marta", Cargo: domain.CargoSupervisorClinico},
		"bad":   {ID: "bad", Name: "Sem Cargo", Cargo: ""},
		"odd":   {ID: "odd", Name: "Cargo Estranho", Cargo: domain.Cargo("Zelador")},
	}}
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	return domainErr.Code
}

func TestCanEvaluateDirectLeadership(t *testing.T) {
	repo := newStubRepo()
	dispatcher := &captureDispatcher{}
	svc := NewEvaluationService(NewDirectoryService(repo, nil, 0, nil), dispatcher)

	decision, err := svc.CanEvaluate(context.Background(), "chefe", "med")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, domain.CargoChefeDeCirurgia, decision.LeaderCargo)
	assert.Equal(t, domain.CargoCirurgia, decision.SubordinateCargo)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventEvaluationChecked, dispatcher.published[0].Type)
}

func TestCanEvaluateDeniesSkippedTier(t *testing.T) {
	svc := NewEvaluationService(NewDirectoryService(newStubRepo(), nil, 0, nil), nil)

	decision, err := svc.CanEvaluate(context.Background(), "sup", "med")
	require.NoError(t, err)
	assert.False(t, decision.Allowed, "supervisor must not reach through the chefe tier")
}

func TestCanEvaluateNotFoundIsAnErrorNotFalse(t *testing.T) {
	svc := NewEvaluationService(NewDirectoryService(newStubRepo(), nil, 0, nil), nil)

	decision, err := svc.CanEvaluate(context.Background(), "chefe", "missing")
	require.Error(t, err)
	assert.Nil(t, decision)
	assert.Equal(t, "EMPLOYEE_NOT_FOUND", domainCode(t, err))
}

func TestCanEvaluateMalformedRecord(t *testing.T) {
	svc := NewEvaluationService(NewDirectoryService(newStubRepo(), nil, 0, nil), nil)

	for _, id := range []string{"bad", "odd"} {
		decision, err := svc.CanEvaluate(context.Background(), id, "med")
		require.Error(t, err, "id %s", id)
		assert.Nil(t, decision)
		assert.Equal(t, "MALFORMED_RECORD", domainCode(t, err))
	}
}

func TestCanEvaluateBackendUnavailable(t *testing.T) {
	repo := newStubRepo()
	repo.failWith = errors.New("connection refused")
	svc := NewEvaluationService(NewDirectoryService(repo, nil, 0, nil), nil)

	decision, err := svc.CanEvaluate(context.Background(), "chefe", "med")
	require.Error(t, err)
	assert.Nil(t, decision)
	assert.Equal(t, "BACKEND_UNAVAILABLE", domainCode(t, err))
}

func TestCheckCargosPassesThroughToEngine(t *testing.T) {
	svc := NewEvaluationService(NewDirectoryService(newStubRepo(), nil, 0, nil), nil)

	assert.True(t, svc.CheckCargos(domain.CargoFundador, domain.CargoAnalista))
	assert.False(t, svc.CheckCargos(domain.CargoFundador, domain.CargoFundador))
	assert.False(t, svc.CheckCargos("", domain.CargoAnalista))
	assert.False(t, svc.CheckCargos(domain.Cargo("Zelador"), domain.CargoAnalista))
}

func TestDirectoryGetEmployeeDerivesNivel(t *testing.T) {
	directory := NewDirectoryService(newStubRepo(), nil, 0, nil)

	employee, nivel, err := directory.GetEmployee(context.Background(), "sup")
	require.NoError(t, err)
	assert.Equal(t, domain.CargoSupervisorClinico, employee.Cargo)
	assert.Equal(t, domain.NivelN7, nivel)
}

func TestDirectoryRejectsEmptyID(t *testing.T) {
	directory := NewDirectoryService(newStubRepo(), nil, 0, nil)

	_, _, err := directory.GetEmployee(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}
