package repository

import "github.com/Sebinhas/backPH/entities"

type LoteRepository interface {
	FindAll() ([]entities.Lote, error)
	// FindByID returns (nil, nil) when the id does not exist.
	FindByID(id uint) (*entities.Lote, error)
	FindByCodigo(codigo string) (*entities.Lote, error)
	Create(l *entities.Lote) error
	Update(id uint, campos map[string]any) (bool, error)
	Delete(id uint) (bool, error)
	Exists(id uint) (bool, error)
}
