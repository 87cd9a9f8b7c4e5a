package models

import "time"

// Roles a credential can carry. Role is fixed at provisioning time and
// never changes afterwards.
const (
	RoleTeacher   = "teacher"
	RolePrincipal = "principal"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"-" validate:"required,min=8"`
	Name      string    `json:"name" validate:"required"`
	Subject   string    `json:"subject,omitempty"`
	Role      string    `json:"role" validate:"required,oneof=teacher principal"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
