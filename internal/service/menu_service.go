package service

import "github.com/spec-kit/hospital-role-service/internal/domain"

// menuCatalog lists every sidebar entry with the minimum tier that may see
// it. Ordering matches the rendered sidebar, top to bottom.
var menuCatalog = []domain.MenuEntry{
	{Label: "Início", Path: "/inicio", MinNivel: domain.NivelN0},
	{Label: "Meu Perfil", Path: "/perfil", MinNivel: domain.NivelN0},
	{Label: "Minha Escala", Path: "/escala", MinNivel: domain.NivelN0},
	{Label: "Equipe", Path: "/equipe", MinNivel: domain.NivelN6},
	{Label: "Avaliações", Path: "/avaliacoes", MinNivel: domain.NivelN6},
	{Label: "Relatórios", Path: "/relatorios", MinNivel: domain.NivelN7},
	{Label: "Auditoria", Path: "/auditoria", MinNivel: domain.NivelN7},
	{Label: "Administração", Path: "/administracao", MinNivel: domain.NivelN9},
}

// MenuService serves the tier-gated sidebar entries. Visibility depends on
// nivel only; job titles play no part here.
type MenuService struct{}

// NewMenuService builds the service.
func NewMenuService() *MenuService {
	return &MenuService{}
}

// EntriesFor returns the entries visible to the given tier, in sidebar order.
func (s *MenuService) EntriesFor(nivel domain.Nivel) []domain.MenuEntry {
	out := make([]domain.MenuEntry, 0, len(menuCatalog))
	for _, entry := range menuCatalog {
		if nivel.AtLeast(entry.MinNivel) {
			out = append(out, entry)
		}
	}
	return out
}
