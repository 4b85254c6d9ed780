package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/cultivo/repository"
)

type cultivoRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CultivoRepository { return &cultivoRepo{db} }

func (r *cultivoRepo) FindAll() ([]entities.Cultivo, error) {
	var out []entities.Cultivo
	if err := r.db.Order("fecha_creacion DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cultivoRepo) FindActive() ([]entities.Cultivo, error) {
	var out []entities.Cultivo
	if err := r.db.Where("activo = ?", true).Order("nombre ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cultivoRepo) FindByID(id uint) (*entities.Cultivo, error) {
	var c entities.Cultivo
	if err := r.db.Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *cultivoRepo) Create(c *entities.Cultivo) error { return r.db.Create(c).Error }

func (r *cultivoRepo) Update(id uint, campos map[string]any) (bool, error) {
	res := r.db.Model(&entities.Cultivo{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *cultivoRepo) Delete(id uint) (bool, error) {
	res := r.db.Model(&entities.Cultivo{}).Where("id = ?", id).Update("activo", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
