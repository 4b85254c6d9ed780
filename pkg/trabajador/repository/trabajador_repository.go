package repository

import "github.com/Sebinhas/backPH/entities"

type TrabajadorRepository interface {
	FindAll() ([]entities.Trabajador, error)
	// FindByID returns (nil, nil) when the id does not exist.
	FindByID(id uint) (*entities.Trabajador, error)
	FindByDocumento(documento string) (*entities.Trabajador, error)
	Search(query string) ([]entities.Trabajador, error)
	Create(t *entities.Trabajador) error
	Update(id uint, campos map[string]any) (bool, error)
	Delete(id uint) (bool, error)
	Exists(id uint) (bool, error)
}
