package repository

import "github.com/Sebinhas/backPH/entities"

type LaborRepository interface {
	FindAll() ([]entities.Labor, error)
	// FindByID returns (nil, nil) when the id does not exist.
	FindByID(id uint) (*entities.Labor, error)
	FindByDateRange(fechaInicio, fechaFin string) ([]entities.Labor, error)
	FindByTrabajador(trabajadorID uint) ([]entities.Labor, error)
	Create(l *entities.Labor) error
	Update(id uint, campos map[string]any) (bool, error)
	Delete(id uint) (bool, error)
	Exists(id uint) (bool, error)
}
