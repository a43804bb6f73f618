package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/jwt"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// UseCase autentica usuarios y emite tokens JWT.
type UseCase struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	genderRepo repository.GenderRepository
	jwtCfg     config.JWTConfig
	log        *logger.Logger
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	genderRepo repository.GenderRepository,
	jwtCfg config.JWTConfig,
	log *logger.Logger,
) *UseCase {
	return &UseCase{userRepo: userRepo, roleRepo: roleRepo, genderRepo: genderRepo, jwtCfg: jwtCfg, log: log}
}

// Login valida credenciales y devuelve un token JWT más el usuario.
// Las credenciales inválidas y los usuarios inactivos responden el mismo
// domain.ErrUnauthorized para no filtrar cuáles emails existen.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.Validationf("email y contraseña son requeridos")
	}

	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.RoleID, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Msg("login exitoso")

	out := &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			GenderID:  user.GenderID,
			RoleID:    user.RoleID,
			Active:    user.Active,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}
	if role, err := uc.roleRepo.GetByID(user.RoleID); err == nil && role != nil {
		out.User.RoleName = role.Name
	}
	if user.GenderID != "" {
		if gender, err := uc.genderRepo.GetByID(user.GenderID); err == nil && gender != nil {
			out.User.GenderName = gender.Name
		}
	}
	return out, nil
}
