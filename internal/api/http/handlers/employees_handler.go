package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-role-service/internal/api/dto"
	"github.com/spec-kit/hospital-role-service/internal/auth"
	"github.com/spec-kit/hospital-role-service/internal/domain"
	"github.com/spec-kit/hospital-role-service/internal/repository"
	"github.com/spec-kit/hospital-role-service/internal/service"
)

// EmployeesHandler exposes directory lookups, admin employee management and
// directory-backed evaluation-permission checks.
type EmployeesHandler struct {
	directory   *service.DirectoryService
	employees   *service.EmployeeService
	evaluations *service.EvaluationService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(directory *service.DirectoryService, employees *service.EmployeeService, evaluations *service.EvaluationService) *EmployeesHandler {
	return &EmployeesHandler{directory: directory, employees: employees, evaluations: evaluations}
}

// Create handles POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	employee, nivel, err := h.employees.CreateEmployee(c.Context(), service.CreateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Cargo:    req.Cargo,
		Setor:    req.Setor,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewEmployeeResponse(employee, nivel),
	})
}

// List handles GET /employees with optional cargo/setor/status filters.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	filter := repository.EmployeeFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("cargo"); raw != "" {
		cargo, ok := domain.ParseCargo(raw)
		if !ok {
			return fiber.NewError(http.StatusBadRequest, "unknown cargo")
		}
		filter.Cargo = &cargo
	}
	if raw := c.Query("setor"); raw != "" {
		filter.Setor = &raw
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.EmployeeStatus(raw)
		filter.Status = &status
	}

	employees, err := h.employees.ListEmployees(c.Context(), filter)
	if err != nil {
		return err
	}

	out := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		nivel, _ := domain.NivelForCargo(employees[i].Cargo)
		out = append(out, dto.NewEmployeeResponse(&employees[i], nivel))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Me handles GET /employees/me.
func (h *EmployeesHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	return c.JSON(fiber.Map{
		"data": dto.NewEmployeeResponse(principal.Employee, principal.Nivel),
	})
}

// Get handles GET /employees/:id. Directory failures surface with their own
// taxonomy (not found, malformed record, backend unavailable).
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	employee, nivel, err := h.directory.GetEmployee(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.NewEmployeeResponse(employee, nivel),
	})
}

// CanEvaluate handles GET /employees/:id/evaluation/:subordinate_id. A failed
// lookup is an error response, never a false decision.
func (h *EmployeesHandler) CanEvaluate(c *fiber.Ctx) error {
	leaderID := c.Params("id")
	subordinateID := c.Params("subordinate_id")

	decision, err := h.evaluations.CanEvaluate(c.Context(), leaderID, subordinateID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.EvaluationDecisionResponse{
			LeaderID:         decision.LeaderID,
			SubordinateID:    decision.SubordinateID,
			LeaderCargo:      decision.LeaderCargo,
			SubordinateCargo: decision.SubordinateCargo,
			Allowed:          decision.Allowed,
		},
	})
}
