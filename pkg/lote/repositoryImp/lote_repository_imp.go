package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/lote/repository"
)

type loteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LoteRepository { return &loteRepo{db} }

func (r *loteRepo) FindAll() ([]entities.Lote, error) {
	var out []entities.Lote
	if err := r.db.Order("fecha_creacion DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		r.cargarCultivoNombre(&out[i])
	}
	return out, nil
}

func (r *loteRepo) FindByID(id uint) (*entities.Lote, error) {
	var l entities.Lote
	if err := r.db.Where("id = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	r.cargarCultivoNombre(&l)
	return &l, nil
}

func (r *loteRepo) FindByCodigo(codigo string) (*entities.Lote, error) {
	var l entities.Lote
	if err := r.db.Where("codigo = ?", codigo).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *loteRepo) cargarCultivoNombre(l *entities.Lote) {
	if l.CultivoID == nil {
		return
	}
	var nombres []string
	r.db.Model(&entities.Cultivo{}).Where("id = ?", *l.CultivoID).
		Pluck("nombre", &nombres)
	if len(nombres) > 0 {
		l.CultivoNombre = nombres[0]
	}
}

func (r *loteRepo) Create(l *entities.Lote) error { return r.db.Create(l).Error }

func (r *loteRepo) Update(id uint, campos map[string]any) (bool, error) {
	res := r.db.Model(&entities.Lote{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *loteRepo) Delete(id uint) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&entities.Lote{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *loteRepo) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&entities.Lote{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
