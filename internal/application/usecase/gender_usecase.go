package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// GenderUseCase administra géneros para el perfil de usuario.
type GenderUseCase struct {
	genderRepo repository.GenderRepository
}

// NewGenderUseCase construye el caso de uso de géneros.
func NewGenderUseCase(genderRepo repository.GenderRepository) *GenderUseCase {
	return &GenderUseCase{genderRepo: genderRepo}
}

// Create crea un género. El nombre es único.
func (uc *GenderUseCase) Create(in dto.CreateGenderRequest) (*dto.GenderResponse, error) {
	if in.Name == "" {
		return nil, domain.Validationf("el nombre del género es requerido")
	}
	gender := &entity.Gender{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.genderRepo.Create(gender); err != nil {
		return nil, err
	}
	return toGenderResponse(gender), nil
}

// GetByID devuelve un género por su ID, o nil si no existe.
func (uc *GenderUseCase) GetByID(id string) (*dto.GenderResponse, error) {
	gender, err := uc.genderRepo.GetByID(id)
	if err != nil || gender == nil {
		return nil, err
	}
	return toGenderResponse(gender), nil
}

// ListAll devuelve todos los géneros.
func (uc *GenderUseCase) ListAll() ([]*dto.GenderResponse, error) {
	genders, err := uc.genderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GenderResponse, 0, len(genders))
	for _, g := range genders {
		out = append(out, toGenderResponse(g))
	}
	return out, nil
}

// HardDelete elimina un género. Devuelve domain.ErrNotFound si no existe.
func (uc *GenderUseCase) HardDelete(id string) error {
	gender, err := uc.genderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if gender == nil {
		return domain.ErrNotFound
	}
	return uc.genderRepo.HardDelete(id)
}

func toGenderResponse(g *entity.Gender) *dto.GenderResponse {
	return &dto.GenderResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}
}
