package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-role-service/internal/auth"
	"github.com/spec-kit/hospital-role-service/internal/config"
	"github.com/spec-kit/hospital-role-service/internal/domain"
	"github.com/spec-kit/hospital-role-service/internal/events"
	"github.com/spec-kit/hospital-role-service/internal/repository"
)

// AuthService coordinates login, logout and password changes.
type AuthService struct {
	employees   repository.EmployeeRepository
	tokenMgr    *auth.TokenManager
	revocations *RevocationStore
	dispatcher  events.Dispatcher
	bcryptCost  int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	Revocations  *RevocationStore
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		employees:   deps.EmployeeRepo,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		revocations: deps.Revocations,
		dispatcher:  deps.Dispatcher,
		bcryptCost:  cfg.Auth.BcryptCost,
	}
}

// Login authenticates an employee and issues a cargo-bearing token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Employee, domain.Nivel, string, time.Time, error) {
	employee, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", "", time.Time{}, errors.New("invalid credentials")
		}
		return nil, "", "", time.Time{}, err
	}
	if employee.Status == domain.EmployeeStatusInactive {
		return nil, "", "", time.Time{}, errors.New("employee inactive")
	}
	if err := auth.ComparePassword(employee.PasswordHash, password); err != nil {
		return nil, "", "", time.Time{}, errors.New("invalid credentials")
	}

	nivel, ok := domain.NivelForCargo(employee.Cargo)
	if !ok {
		nivel = domain.NivelN0
	}

	token, exp, err := s.tokenMgr.GenerateToken(employee, nivel)
	if err != nil {
		return nil, "", "", time.Time{}, err
	}
	return employee, nivel, token, exp, nil
}

// Logout revokes the caller's token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, employeeID, tokenID string) error {
	if err := s.revocations.Revoke(ctx, tokenID, s.tokenMgr.TTL()); err != nil {
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        tokenID,
			Type:      events.EventSessionRevoked,
			Timestamp: time.Now(),
			Payload: events.SessionRevokedPayload{
				EmployeeID: employeeID,
				TokenID:    tokenID,
			},
		})
	}
	return nil
}

// ChangePassword verifies the current password before updating to a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, employeeID, currentPassword, newPassword string) error {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(employee.PasswordHash, currentPassword); err != nil {
		return errors.New("invalid credentials")
	}
	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	employee.PasswordHash = hash
	return s.employees.Update(ctx, employee)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
