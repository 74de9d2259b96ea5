package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-role-service/internal/domain"
	"github.com/spec-kit/hospital-role-service/internal/repository"
	apperrors "github.com/spec-kit/hospital-role-service/pkg/util"
)

const employeeKeyPrefix = "directory:employee:"

// DirectoryService resolves employee records and derives their hierarchical
// tier. Lookup failures keep their taxonomy (not-found, malformed record,
// backend unavailable) so callers never mistake "could not determine" for a
// negative answer.
type DirectoryService struct {
	employees repository.EmployeeRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewDirectoryService builds the service. A nil cache client disables caching.
func NewDirectoryService(employees repository.EmployeeRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{employees: employees, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// cachedEmployee is the cache representation. The password hash never enters
// the cache.
type cachedEmployee struct {
	ID     string                `json:"id"`
	Name   string                `json:"name"`
	Email  string                `json:"email"`
	Cargo  domain.Cargo          `json:"cargo"`
	Setor  string                `json:"setor"`
	Status domain.EmployeeStatus `json:"status"`
}

// GetEmployee resolves an employee and the tier derived from its cargo.
func (s *DirectoryService) GetEmployee(ctx context.Context, id string) (*domain.Employee, domain.Nivel, error) {
	if id == "" {
		return nil, "", apperrors.NewValidationError("employee id required", nil)
	}

	if employee, ok := s.fromCache(ctx, id); ok {
		return s.validate(employee)
	}

	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.NewEmployeeNotFound(id)
		}
		return nil, "", apperrors.NewBackendUnavailable(err)
	}

	s.store(ctx, employee)
	return s.validate(employee)
}

// validate enforces the malformed-record rule: a directory row must carry a
// cargo from the catalog before it can participate in any evaluation.
func (s *DirectoryService) validate(employee *domain.Employee) (*domain.Employee, domain.Nivel, error) {
	if employee.Cargo == "" {
		return nil, "", apperrors.NewMalformedRecord(employee.ID, "missing cargo")
	}
	nivel, ok := domain.NivelForCargo(employee.Cargo)
	if !ok {
		return nil, "", apperrors.NewMalformedRecord(employee.ID, "unknown cargo")
	}
	return employee, nivel, nil
}

func (s *DirectoryService) fromCache(ctx context.Context, id string) (*domain.Employee, bool) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, employeeKeyPrefix+id).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("directory cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var cached cachedEmployee
	if err := json.Unmarshal(raw, &cached); err != nil {
		s.logger.Warn("directory cache entry corrupt", zap.String("employee_id", id), zap.Error(err))
		return nil, false
	}
	return &domain.Employee{
		ID:     cached.ID,
		Name:   cached.Name,
		Email:  cached.Email,
		Cargo:  cached.Cargo,
		Setor:  cached.Setor,
		Status: cached.Status,
	}, true
}

func (s *DirectoryService) store(ctx context.Context, employee *domain.Employee) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(cachedEmployee{
		ID:     employee.ID,
		Name:   employee.Name,
		Email:  employee.Email,
		Cargo:  employee.Cargo,
		Setor:  employee.Setor,
		Status: employee.Status,
	})
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, employeeKeyPrefix+employee.ID, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("directory cache write failed", zap.Error(err))
	}
}
