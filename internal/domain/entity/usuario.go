package entity

import "time"

// Roles de usuario.
const (
	RolAdmin      = "admin"
	RolTrabajador = "trabajador"
)

// Usuario cuenta del sistema. El hash de password es bcrypt.
type Usuario struct {
	ID            int64
	Email         string
	Nombre        string
	PasswordHash  string
	Rol           string // RolAdmin | RolTrabajador
	FechaCreacion time.Time
}
