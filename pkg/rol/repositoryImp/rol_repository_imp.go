package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
)

type RolRepository struct{ db *gorm.DB }

func New(db *gorm.DB) *RolRepository { return &RolRepository{db} }

func (r *RolRepository) FindAll() ([]entities.Rol, error) {
	var out []entities.Rol
	if err := r.db.Order("fecha_creacion DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RolRepository) FindByID(id uint) (*entities.Rol, error) {
	var rol entities.Rol
	if err := r.db.Where("id = ?", id).First(&rol).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rol, nil
}

func (r *RolRepository) FindByNombre(nombre string) (*entities.Rol, error) {
	var rol entities.Rol
	if err := r.db.Where("nombre = ?", nombre).First(&rol).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rol, nil
}

func (r *RolRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&entities.Rol{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RolRepository) Create(rol *entities.Rol) error { return r.db.Create(rol).Error }

func (r *RolRepository) Update(id uint, campos map[string]any) (bool, error) {
	res := r.db.Model(&entities.Rol{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *RolRepository) Delete(id uint) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&entities.Rol{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
