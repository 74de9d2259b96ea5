package handlers

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-role-service/internal/api/dto"
	"github.com/spec-kit/hospital-role-service/internal/domain"
	"github.com/spec-kit/hospital-role-service/internal/hierarchy"
	"github.com/spec-kit/hospital-role-service/internal/repository"
	"github.com/spec-kit/hospital-role-service/internal/service"
)

// HierarchyHandler exposes the cargo catalog and the raw title-pair query.
type HierarchyHandler struct {
	evaluations *service.EvaluationService
	audits      repository.EvaluationAuditRepository
}

// NewHierarchyHandler constructs handler.
func NewHierarchyHandler(evaluations *service.EvaluationService, audits repository.EvaluationAuditRepository) *HierarchyHandler {
	return &HierarchyHandler{evaluations: evaluations, audits: audits}
}

// Evaluate handles POST /hierarchy/evaluate. The engine contract applies
// verbatim: empty or unknown titles yield allowed=false, no error.
func (h *HierarchyHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateCargosRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	allowed := h.evaluations.CheckCargos(domain.Cargo(req.LeaderCargo), domain.Cargo(req.SubordinateCargo))
	return c.JSON(fiber.Map{
		"data": dto.EvaluateCargosResponse{
			LeaderCargo:      req.LeaderCargo,
			SubordinateCargo: req.SubordinateCargo,
			Allowed:          allowed,
		},
	})
}

// ListCargos handles GET /hierarchy/cargos.
func (h *HierarchyHandler) ListCargos(c *fiber.Ctx) error {
	catalog := domain.AllCargos()
	out := make([]dto.CargoResponse, 0, len(catalog))
	for _, cargo := range catalog {
		nivel, _ := domain.NivelForCargo(cargo)
		out = append(out, dto.CargoResponse{Cargo: cargo, Nivel: nivel})
	}
	return c.JSON(fiber.Map{"data": out})
}

// DirectReports handles GET /hierarchy/cargos/:cargo/reports.
func (h *HierarchyHandler) DirectReports(c *fiber.Ctx) error {
	raw, err := url.PathUnescape(c.Params("cargo"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid cargo")
	}

	cargo, ok := domain.ParseCargo(raw)
	if !ok {
		return fiber.NewError(http.StatusNotFound, "unknown cargo")
	}

	reports, ok := hierarchy.DirectReports(cargo)
	if !ok {
		reports = []domain.Cargo{}
	}
	return c.JSON(fiber.Map{
		"data": dto.DirectReportsResponse{Cargo: cargo, Reports: reports},
	})
}

// Audit handles GET /evaluations/audit.
func (h *HierarchyHandler) Audit(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	records, err := h.audits.ListRecent(c.Context(), limit)
	if err != nil {
		return err
	}

	out := make([]dto.AuditEntryResponse, 0, len(records))
	for _, record := range records {
		out = append(out, dto.AuditEntryResponse{
			ID:               record.ID,
			LeaderID:         record.LeaderID,
			SubordinateID:    record.SubordinateID,
			LeaderCargo:      record.LeaderCargo,
			SubordinateCargo: record.SubordinateCargo,
			Allowed:          record.Allowed,
			CheckedAt:        record.CheckedAt,
		})
	}
	return c.JSON(fiber.Map{"data": out})
}
