package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-role-service/internal/auth"
	"github.com/spec-kit/hospital-role-service/internal/domain"
	"github.com/spec-kit/hospital-role-service/internal/repository"
	apperrors "github.com/spec-kit/hospital-role-service/pkg/util"
)

// CreateEmployeeInput carries the fields for admin employee creation.
type CreateEmployeeInput struct {
	Name     string
	Email    string
	Password string
	Cargo    string
	Setor    string
}

// EmployeeService handles the write side of the directory: founder
// bootstrapping on a fresh database and admin-driven employee management.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	bcryptCost int
	logger     *zap.Logger
}

// NewEmployeeService builds the service.
func NewEmployeeService(employees repository.EmployeeRepository, bcryptCost int, logger *zap.Logger) *EmployeeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{employees: employees, bcryptCost: bcryptCost, logger: logger}
}

// EnsureFounder provisions the Fundador account when it does not exist yet,
// so a fresh deployment has a working login. Idempotent across restarts.
func (s *EmployeeService) EnsureFounder(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		s.logger.Warn("founder bootstrap skipped; bootstrap email or password not configured")
		return nil
	}

	if _, err := s.employees.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	if err := auth.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}

	founder := &domain.Employee{
		Name:         "Fundador",
		Email:        email,
		PasswordHash: hash,
		Cargo:        domain.CargoFundador,
		Status:       domain.EmployeeStatusActive,
	}
	if err := s.employees.Create(ctx, founder); err != nil {
		return err
	}

	s.logger.Info("founder account provisioned", zap.String("email", email))
	return nil
}

// CreateEmployee registers a new directory record. The cargo must belong to
// the catalog; rejecting unknown titles here keeps malformed rows out of the
// evaluation path.
func (s *EmployeeService) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, domain.Nivel, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, "", apperrors.NewValidationError("name, email and password required", nil)
	}
	cargo, ok := domain.ParseCargo(input.Cargo)
	if !ok {
		return nil, "", apperrors.NewValidationError("unknown cargo", map[string]any{"cargo": input.Cargo})
	}
	if err := auth.ValidatePassword(input.Password); err != nil {
		return nil, "", apperrors.NewValidationError(err.Error(), nil)
	}

	if _, err := s.employees.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	employee := &domain.Employee{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Cargo:        cargo,
		Setor:        input.Setor,
		Status:       domain.EmployeeStatusActive,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, "", err
	}

	nivel, _ := domain.NivelForCargo(cargo)
	return employee, nivel, nil
}

// ListEmployees returns directory records matching the filter.
func (s *EmployeeService) ListEmployees(ctx context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	return s.employees.List(ctx, filter)
}
