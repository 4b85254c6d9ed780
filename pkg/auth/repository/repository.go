package repository

import (
	"time"

	"github.com/Sebinhas/backPH/entities"
)

type UsuarioRepository interface {
	FindByEmail(email string) (*entities.Usuario, error)
	FindByID(id uint) (*entities.Usuario, error)
	Create(u *entities.Usuario) error
	RevocarToken(token string, usuarioID uint, expiraEn time.Time) error
	TokenRevocado(token string) (bool, error)
}
