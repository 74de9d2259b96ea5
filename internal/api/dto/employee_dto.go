package dto

import "github.com/spec-kit/hospital-role-service/internal/domain"

// EmployeeResponse is the directory view of an employee. The hierarchical
// level is derived from the cargo catalog, never stored.
type EmployeeResponse struct {
	ID     string                `json:"id"`
	Name   string                `json:"name"`
	Email  string                `json:"email"`
	Cargo  domain.Cargo          `json:"cargo"`
	Nivel  domain.Nivel          `json:"nivel"`
	Setor  string                `json:"setor,omitempty"`
	Status domain.EmployeeStatus `json:"status"`
}

// CreateEmployeeRequest payload for admin employee creation.
type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Cargo    string `json:"cargo"`
	Setor    string `json:"setor"`
}

// NewEmployeeResponse maps a domain employee plus derived tier.
func NewEmployeeResponse(employee *domain.Employee, nivel domain.Nivel) EmployeeResponse {
	return EmployeeResponse{
		ID:     employee.ID,
		Name:   employee.Name,
		Email:  employee.Email,
		Cargo:  employee.Cargo,
		Nivel:  nivel,
		Setor:  employee.Setor,
		Status: employee.Status,
	}
}
