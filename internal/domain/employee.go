package domain

import "time"

// EmployeeStatus represents lifecycle states for a hospital employee.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ATIVO"
	EmployeeStatusVacation EmployeeStatus = "FERIAS"
	EmployeeStatusInactive EmployeeStatus = "INATIVO"
)

// Employee is the domain model for hospital staff records kept in the
// directory. Cargo may be empty or unknown on malformed rows; the directory
// layer is responsible for surfacing that as an error.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Cargo        Cargo
	Setor        string
	Status       EmployeeStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
