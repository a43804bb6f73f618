package entity

import "time"

// Gender representa un género para el perfil de usuario. Nombre único.
type Gender struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
