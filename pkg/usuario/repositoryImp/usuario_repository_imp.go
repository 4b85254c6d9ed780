package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/usuario/repository"
)

type usuarioRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UsuarioRepository { return &usuarioRepo{db} }

func (r *usuarioRepo) FindAll() ([]entities.Usuario, error) {
	var out []entities.Usuario
	if err := r.db.Order("fecha_creacion DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *usuarioRepo) FindByID(id uint) (*entities.Usuario, error) {
	var u entities.Usuario
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByEmail(email string) (*entities.Usuario, error) {
	var u entities.Usuario
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&entities.Usuario{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *usuarioRepo) Create(u *entities.Usuario) error { return r.db.Create(u).Error }

func (r *usuarioRepo) Update(id uint, campos map[string]any) (bool, error) {
	res := r.db.Model(&entities.Usuario{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *usuarioRepo) Delete(id uint) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&entities.Usuario{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *usuarioRepo) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&entities.Usuario{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
