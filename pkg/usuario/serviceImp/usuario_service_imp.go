package serviceImp

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/usuario/repository"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// límite de cuentas registrables
const maxUsuarios = 1000

type CreateUsuario struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

type UpdateUsuario struct {
	Nombre   *string `json:"nombre,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Rol      *string `json:"rol,omitempty"`
}

type Estadisticas struct {
	TotalUsuarios   int64            `json:"total_usuarios"`
	UsuariosActivos int64            `json:"usuarios_activos"`
	UsuariosPorRol  map[string]int64 `json:"usuarios_por_rol"`
}

type UsuarioSvc struct{ repo repository.UsuarioRepository }

func NewUsuarioService(repo repository.UsuarioRepository) *UsuarioSvc {
	return &UsuarioSvc{repo}
}

func (s *UsuarioSvc) GetAll() ([]entities.Usuario, error) { return s.repo.FindAll() }

func (s *UsuarioSvc) GetByID(id uint) (*entities.Usuario, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NotFound("Usuario", id)
	}
	return u, nil
}

func (s *UsuarioSvc) Create(data CreateUsuario) (*entities.Usuario, error) {
	nombre := strings.TrimSpace(data.Nombre)
	email := strings.ToLower(strings.TrimSpace(data.Email))
	rol := strings.TrimSpace(data.Rol)

	if len(nombre) < 2 {
		return nil, apperrors.Validation("El nombre debe tener al menos 2 caracteres")
	}
	if !emailRegex.MatchString(email) {
		return nil, apperrors.Validation("El email no es válido")
	}
	if len(data.Password) < 6 {
		return nil, apperrors.Validation("La contraseña debe tener al menos 6 caracteres")
	}
	if len(rol) < 2 {
		return nil, apperrors.Validation("El rol es requerido")
	}

	existente, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, apperrors.Validation("Ya existe un usuario con ese email")
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	if total >= maxUsuarios {
		return nil, apperrors.Validation("Se ha alcanzado el límite máximo de usuarios (%d)", maxUsuarios)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entities.Usuario{
		Nombre:   nombre,
		Email:    email,
		Password: string(hash),
		Rol:      rol,
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UsuarioSvc) Update(id uint, data UpdateUsuario) (*entities.Usuario, error) {
	existente, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, apperrors.NotFound("Usuario", id)
	}

	if data.Nombre != nil && len(strings.TrimSpace(*data.Nombre)) < 2 {
		return nil, apperrors.Validation("El nombre debe tener al menos 2 caracteres")
	}
	if data.Password != nil && len(*data.Password) < 6 {
		return nil, apperrors.Validation("La contraseña debe tener al menos 6 caracteres")
	}

	campos := map[string]any{}
	if data.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*data.Email))
		if !emailRegex.MatchString(email) {
			return nil, apperrors.Validation("El email no es válido")
		}
		duplicado, err := s.repo.FindByEmail(email)
		if err != nil {
			return nil, err
		}
		if duplicado != nil && duplicado.ID != id {
			return nil, apperrors.Validation("Ya existe un usuario con ese email")
		}
		campos["email"] = email
	}
	if data.Nombre != nil {
		campos["nombre"] = strings.TrimSpace(*data.Nombre)
	}
	if data.Rol != nil {
		campos["rol"] = strings.TrimSpace(*data.Rol)
	}
	if data.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*data.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		campos["password"] = string(hash)
	}

	if len(campos) > 0 {
		if _, err := s.repo.Update(id, campos); err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *UsuarioSvc) Delete(id uint) error {
	ok, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("Usuario", id)
	}
	return nil
}

// GetEstadisticas agrega los usuarios registrados por rol. Todas las cuentas
// cuentan como activas: no hay baja lógica de usuarios.
func (s *UsuarioSvc) GetEstadisticas() (*Estadisticas, error) {
	usuarios, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	est := &Estadisticas{
		TotalUsuarios:   int64(len(usuarios)),
		UsuariosActivos: int64(len(usuarios)),
		UsuariosPorRol:  map[string]int64{},
	}
	for _, u := range usuarios {
		est.UsuariosPorRol[u.Rol]++
	}
	return est, nil
}
