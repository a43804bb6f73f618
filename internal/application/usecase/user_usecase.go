package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// UserUseCase administra usuarios del sistema.
type UserUseCase struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	genderRepo repository.GenderRepository
	log        *logger.Logger
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, genderRepo repository.GenderRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo, genderRepo: genderRepo, log: log}
}

// validateRefs verifica que el rol y el género (si viene) existan.
func (uc *UserUseCase) validateRefs(roleID, genderID string) error {
	role, err := uc.roleRepo.GetByID(roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.Validationf("ID de rol inválido: %s", roleID)
	}
	if genderID != "" {
		gender, err := uc.genderRepo.GetByID(genderID)
		if err != nil {
			return err
		}
		if gender == nil {
			return domain.Validationf("ID de género inválido: %s", genderID)
		}
	}
	return nil
}

// Create crea un usuario con la contraseña hasheada con bcrypt.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" {
		return nil, domain.Validationf("el nombre del usuario es requerido")
	}
	if in.Email == "" {
		return nil, domain.Validationf("el email es requerido")
	}
	if len(in.Password) < 8 {
		return nil, domain.Validationf("la contraseña debe tener al menos 8 caracteres")
	}
	if in.RoleID == "" {
		return nil, domain.Validationf("el ID del rol es requerido")
	}
	if err := uc.validateRefs(in.RoleID, in.GenderID); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		GenderID:     in.GenderID,
		RoleID:       in.RoleID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("usuario creado")
	return uc.toResponse(user), nil
}

// GetByID devuelve un usuario por su ID, o nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil || user == nil {
		return nil, err
	}
	return uc.toResponse(user), nil
}

// ListActive devuelve los usuarios activos.
func (uc *UserUseCase) ListActive() ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, uc.toResponse(u))
	}
	return out, nil
}

// Update actualiza un usuario. Si viene contraseña se re-hashea.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil || user == nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validationf("el nombre del usuario es requerido")
		}
		user.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.Validationf("el email es requerido")
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, domain.Validationf("la contraseña debe tener al menos 8 caracteres")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.GenderID != nil {
		user.GenderID = *in.GenderID
	}
	if in.RoleID != nil {
		user.RoleID = *in.RoleID
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if err := uc.validateRefs(user.RoleID, user.GenderID); err != nil {
		return nil, err
	}

	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return uc.toResponse(user), nil
}

// Delete desactiva un usuario (borrado lógico). Devuelve domain.ErrNotFound si
// no existe.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	user.Active = false
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// HardDelete elimina un usuario de forma permanente.
func (uc *UserUseCase) HardDelete(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.HardDelete(id)
}

// toResponse arma la salida sin el hash de contraseña; un fallo al resolver
// nombres de rol o género deja el campo vacío.
func (uc *UserUseCase) toResponse(u *entity.User) *dto.UserResponse {
	out := &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		GenderID:  u.GenderID,
		RoleID:    u.RoleID,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if role, err := uc.roleRepo.GetByID(u.RoleID); err == nil && role != nil {
		out.RoleName = role.Name
	}
	if u.GenderID != "" {
		if gender, err := uc.genderRepo.GetByID(u.GenderID); err == nil && gender != nil {
			out.GenderName = gender.Name
		}
	}
	return out
}
