package repository

import "github.com/Sebinhas/backPH/entities"

type CultivoRepository interface {
	FindAll() ([]entities.Cultivo, error)
	FindActive() ([]entities.Cultivo, error)
	// FindByID returns (nil, nil) when the id does not exist.
	FindByID(id uint) (*entities.Cultivo, error)
	Create(c *entities.Cultivo) error
	Update(id uint, campos map[string]any) (bool, error)
	// Delete deactivates the crop instead of removing the row, so historic
	// plots and activities keep their reference.
	Delete(id uint) (bool, error)
}
