package auth_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/jwt"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error             { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) ListActive() ([]*entity.User, error) { return nil, nil }
func (r *memUserRepo) Update(u *entity.User) error         { r.users[u.ID] = u; return nil }
func (r *memUserRepo) HardDelete(id string) error          { delete(r.users, id); return nil }

type memRoleRepo struct{ roles map[string]*entity.Role }

func (r *memRoleRepo) Create(x *entity.Role) error               { r.roles[x.ID] = x; return nil }
func (r *memRoleRepo) GetByID(id string) (*entity.Role, error)   { return r.roles[id], nil }
func (r *memRoleRepo) GetByName(string) (*entity.Role, error)    { return nil, nil }
func (r *memRoleRepo) ListAll() ([]*entity.Role, error)          { return nil, nil }
func (r *memRoleRepo) HardDelete(id string) error                { delete(r.roles, id); return nil }

type memGenderRepo struct{}

func (r *memGenderRepo) Create(*entity.Gender) error              { return nil }
func (r *memGenderRepo) GetByID(string) (*entity.Gender, error)   { return nil, nil }
func (r *memGenderRepo) GetByName(string) (*entity.Gender, error) { return nil, nil }
func (r *memGenderRepo) ListAll() ([]*entity.Gender, error)       { return nil, nil }
func (r *memGenderRepo) HardDelete(string) error                  { return nil }

const loginSecret = "test-secret-key-for-unit-tests"

func buildAuth(t *testing.T, password string, active bool) (*auth.UseCase, *entity.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	role := &entity.Role{ID: uuid.New().String(), Name: "admin"}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Ana",
		Email:        "ana@almacen.test",
		PasswordHash: string(hash),
		RoleID:       role.ID,
		Active:       active,
	}
	users := &memUserRepo{users: map[string]*entity.User{user.ID: user}}
	roles := &memRoleRepo{roles: map[string]*entity.Role{role.ID: role}}

	uc := auth.NewUseCase(users, roles, &memGenderRepo{}, config.JWTConfig{
		Secret:     loginSecret,
		Expiration: 60,
		Issuer:     "almacen-api-test",
	}, logger.Nop())
	return uc, user
}

func TestLogin_CredencialesValidasEmiteToken(t *testing.T) {
	uc, user := buildAuth(t, "secreta123", true)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@almacen.test", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, "admin", out.User.RoleName)

	userID, roleID, err := jwt.Parse(loginSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, user.RoleID, roleID)
}

func TestLogin_PasswordIncorrectaRetornaUnauthorized(t *testing.T) {
	uc, _ := buildAuth(t, "secreta123", true)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@almacen.test", Password: "otra"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_EmailInexistenteRetornaUnauthorized(t *testing.T) {
	uc, _ := buildAuth(t, "secreta123", true)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@almacen.test", Password: "secreta123"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized),
		"email inexistente y password incorrecta deben responder igual")
}

func TestLogin_UsuarioInactivoRetornaUnauthorized(t *testing.T) {
	uc, _ := buildAuth(t, "secreta123", false)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@almacen.test", Password: "secreta123"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}
