package entity

import "time"

// Warehouse representa un almacén donde se guardan productos. Nombre único.
// No puede eliminarse (lógica o físicamente) mientras tenga productos activos.
type Warehouse struct {
	ID          string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
