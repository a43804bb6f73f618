package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// CategoryUseCase administra categorías de productos.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	log          *logger.Logger
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, productRepo: productRepo, log: log}
}

// Create crea una categoría. El nombre es único.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.Validationf("el nombre de la categoría es requerido")
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	uc.log.Info().Str("category_id", category.ID).Str("name", category.Name).Msg("categoría creada")
	return toCategoryResponse(category), nil
}

// GetByID devuelve una categoría por su ID, o nil si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// ListActive devuelve las categorías activas.
func (uc *CategoryUseCase) ListActive() ([]*dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validationf("el nombre de la categoría es requerido")
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Active != nil {
		category.Active = *in.Active
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// guardDelete rechaza el borrado si la categoría aún tiene productos activos.
func (uc *CategoryUseCase) guardDelete(category *entity.Category) error {
	count, err := uc.productRepo.CountActiveByCategory(category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.Validationf("no se puede eliminar la categoría '%s' porque tiene productos asociados", category.Name)
	}
	return nil
}

// Delete desactiva una categoría (borrado lógico), rechazando si tiene
// productos activos asociados. Devuelve domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if err := uc.guardDelete(category); err != nil {
		return err
	}
	category.Active = false
	category.UpdatedAt = time.Now()
	return uc.categoryRepo.Update(category)
}

// HardDelete elimina una categoría de forma permanente, con la misma guarda
// de productos asociados que el borrado lógico.
func (uc *CategoryUseCase) HardDelete(id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if err := uc.guardDelete(category); err != nil {
		return err
	}
	return uc.categoryRepo.HardDelete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
