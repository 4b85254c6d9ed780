package repository

import "github.com/Sebinhas/backPH/entities"

type UsuarioRepository interface {
	FindAll() ([]entities.Usuario, error)
	FindByID(id uint) (*entities.Usuario, error)
	FindByEmail(email string) (*entities.Usuario, error)
	Count() (int64, error)
	Create(u *entities.Usuario) error
	Update(id uint, campos map[string]any) (bool, error)
	Delete(id uint) (bool, error)
	Exists(id uint) (bool, error)
}
