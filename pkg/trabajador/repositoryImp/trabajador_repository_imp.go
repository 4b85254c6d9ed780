package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/trabajador/repository"
)

type trabajadorRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TrabajadorRepository { return &trabajadorRepo{db} }

func (r *trabajadorRepo) FindAll() ([]entities.Trabajador, error) {
	var out []entities.Trabajador
	if err := r.db.Order("fecha_creacion DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *trabajadorRepo) FindByID(id uint) (*entities.Trabajador, error) {
	var t entities.Trabajador
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *trabajadorRepo) FindByDocumento(documento string) (*entities.Trabajador, error) {
	var t entities.Trabajador
	if err := r.db.Where("documento = ?", documento).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *trabajadorRepo) Search(query string) ([]entities.Trabajador, error) {
	term := "%" + query + "%"
	var out []entities.Trabajador
	err := r.db.Where(
		"nombres LIKE ? OR apellidos LIKE ? OR email LIKE ? OR documento LIKE ? OR cargo LIKE ?",
		term, term, term, term, term,
	).Order("nombres ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *trabajadorRepo) Create(t *entities.Trabajador) error { return r.db.Create(t).Error }

func (r *trabajadorRepo) Update(id uint, campos map[string]any) (bool, error) {
	res := r.db.Model(&entities.Trabajador{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *trabajadorRepo) Delete(id uint) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&entities.Trabajador{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *trabajadorRepo) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&entities.Trabajador{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
