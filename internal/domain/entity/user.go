package entity

import "time"

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	GenderID     string // vacío si no informado
	RoleID       string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
