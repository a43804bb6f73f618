package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// GenderRepository define el puerto de persistencia para Gender (DIP).
type GenderRepository interface {
	Create(gender *entity.Gender) error
	GetByID(id string) (*entity.Gender, error)
	GetByName(name string) (*entity.Gender, error)
	ListAll() ([]*entity.Gender, error)
	HardDelete(id string) error
}
