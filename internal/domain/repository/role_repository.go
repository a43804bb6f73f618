package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	ListAll() ([]*entity.Role, error)
	HardDelete(id string) error
}
