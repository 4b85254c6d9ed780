package serviceImp

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/auth/repository"
)

type RegisterInput struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Sesion struct {
	Token   string            `json:"token"`
	Usuario *entities.Usuario `json:"usuario"`
}

type Claims struct {
	UsuarioID uint   `json:"usuario_id"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
	jwt.StandardClaims
}

type AuthSvc struct {
	repo   repository.UsuarioRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(repo repository.UsuarioRepository, secret string) *AuthSvc {
	return &AuthSvc{repo: repo, secret: []byte(secret), ttl: 24 * time.Hour, now: time.Now}
}

func (s *AuthSvc) Register(data RegisterInput) (*Sesion, error) {
	data.Nombre = strings.TrimSpace(data.Nombre)
	data.Email = strings.ToLower(strings.TrimSpace(data.Email))
	if data.Nombre == "" || data.Email == "" {
		return nil, apperrors.Validation("Nombre y email son obligatorios")
	}
	if len(data.Password) < 6 {
		return nil, apperrors.Validation("La contraseña debe tener al menos 6 caracteres")
	}
	existente, err := s.repo.FindByEmail(data.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, apperrors.Validation("El email %s ya está registrado", data.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entities.Usuario{
		Nombre:   data.Nombre,
		Email:    data.Email,
		Password: string(hash),
		Rol:      "usuario",
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}
	return s.sesion(u)
}

func (s *AuthSvc) Login(data LoginInput) (*Sesion, error) {
	data.Email = strings.ToLower(strings.TrimSpace(data.Email))
	u, err := s.repo.FindByEmail(data.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.Validation("Credenciales inválidas")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(data.Password)) != nil {
		return nil, apperrors.Validation("Credenciales inválidas")
	}
	return s.sesion(u)
}

func (s *AuthSvc) Perfil(id uint) (*entities.Usuario, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NotFound("Usuario", id)
	}
	return u, nil
}

// Logout guarda el token en la lista de revocados hasta que expire, con un
// margen de siete días para no acumular filas viejas indefinidamente.
func (s *AuthSvc) Logout(tokenStr string, usuarioID uint) error {
	return s.repo.RevocarToken(tokenStr, usuarioID, s.now().Add(7*24*time.Hour))
}

// ValidarToken combina la verificación de firma con la lista de revocados.
// Un token cerrado por logout se rechaza aunque la firma siga siendo válida.
func (s *AuthSvc) ValidarToken(tokenStr string) (*Claims, error) {
	revocado, err := s.repo.TokenRevocado(tokenStr)
	if err != nil {
		return nil, err
	}
	if revocado {
		return nil, apperrors.Validation("Token inválido o expirado")
	}
	return s.ParseToken(tokenStr)
}

// ParseToken valida la firma y la expiración y devuelve los claims.
func (s *AuthSvc) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.Validation("Método de firma inesperado")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Validation("Token inválido o expirado")
	}
	return claims, nil
}

func (s *AuthSvc) sesion(u *entities.Usuario) (*Sesion, error) {
	ahora := s.now()
	claims := Claims{
		UsuarioID: u.ID,
		Email:     u.Email,
		Rol:       u.Rol,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  ahora.Unix(),
			ExpiresAt: ahora.Add(s.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	firmado, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &Sesion{Token: firmado, Usuario: u}, nil
}
