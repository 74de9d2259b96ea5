package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-role-service/internal/api/dto"
	"github.com/spec-kit/hospital-role-service/internal/auth"
	"github.com/spec-kit/hospital-role-service/internal/service"
)

// MenuHandler serves the tier-gated sidebar entries.
type MenuHandler struct {
	menu *service.MenuService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menuService}
}

// Entries handles GET /menu, returning the items visible to the caller's
// tier.
func (h *MenuHandler) Entries(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	entries := h.menu.EntriesFor(principal.Nivel)
	out := make([]dto.MenuEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.MenuEntryResponse{Label: entry.Label, Path: entry.Path})
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"nivel":   principal.Nivel,
			"entries": out,
		},
	})
}
