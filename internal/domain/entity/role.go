package entity

import "time"

// Role representa un rol de usuario. Nombre único.
type Role struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
