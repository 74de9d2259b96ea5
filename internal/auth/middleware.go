package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-role-service/internal/domain"
	"github.com/spec-kit/hospital-role-service/internal/repository"
	apperrors "github.com/spec-kit/hospital-role-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated employee.
type Principal struct {
	Employee *domain.Employee
	Nivel    domain.Nivel
	TokenID  string
}

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens      *TokenManager
	employees   repository.EmployeeRepository
	revocations RevocationChecker
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, employees repository.EmployeeRepository, revocations RevocationChecker) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, employees: employees, revocations: revocations}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	if m.revocations != nil {
		revoked, err := m.revocations.IsRevoked(c.Context(), claims.ID)
		if err != nil {
			return apperrors.MapError(err)
		}
		if revoked {
			return apperrors.NewUnauthorized("token revoked")
		}
	}

	employee, err := m.employees.GetByID(c.Context(), claims.SubjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("employee not found")
		}
		return apperrors.MapError(err)
	}
	if employee.Status == domain.EmployeeStatusInactive {
		return apperrors.NewForbidden("employee inactive")
	}

	nivel, ok := domain.NivelForCargo(employee.Cargo)
	if !ok {
		// Record carries a cargo outside the catalog; treat as the lowest
		// tier rather than locking the account out entirely.
		nivel = domain.NivelN0
	}

	c.Locals(principalKey, &Principal{Employee: employee, Nivel: nivel, TokenID: claims.ID})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated employee.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
