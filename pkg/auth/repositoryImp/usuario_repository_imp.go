package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/auth/repository"
)

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) repository.UsuarioRepository {
	return &usuarioRepo{db}
}

func (r *usuarioRepo) FindByEmail(email string) (*entities.Usuario, error) {
	var u entities.Usuario
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByID(id uint) (*entities.Usuario, error) {
	var u entities.Usuario
	err := r.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Create(u *entities.Usuario) error {
	return r.db.Create(u).Error
}

func (r *usuarioRepo) RevocarToken(token string, usuarioID uint, expiraEn time.Time) error {
	return r.db.Create(&entities.TokenRevocado{
		Token:     token,
		UsuarioID: usuarioID,
		ExpiraEn:  expiraEn,
	}).Error
}

func (r *usuarioRepo) TokenRevocado(token string) (bool, error) {
	var total int64
	err := r.db.Model(&entities.TokenRevocado{}).Where("token = ?", token).Count(&total).Error
	if err != nil {
		return false, err
	}
	return total > 0, nil
}
