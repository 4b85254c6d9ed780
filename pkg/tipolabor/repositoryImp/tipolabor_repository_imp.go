package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
)

// TipoLaborRepository es el catálogo de tipos de labor. Suficientemente chico
// como para no partirlo en contrato + implementación.
type TipoLaborRepository struct{ db *gorm.DB }

func New(db *gorm.DB) *TipoLaborRepository { return &TipoLaborRepository{db} }

func (r *TipoLaborRepository) FindAll() ([]entities.TipoLabor, error) {
	var out []entities.TipoLabor
	if err := r.db.Order("nombre ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TipoLaborRepository) FindByID(id uint) (*entities.TipoLabor, error) {
	var t entities.TipoLabor
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TipoLaborRepository) Create(t *entities.TipoLabor) error { return r.db.Create(t).Error }

func (r *TipoLaborRepository) Update(id uint, campos map[string]any) (bool, error) {
	res := r.db.Model(&entities.TipoLabor{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TipoLaborRepository) Delete(id uint) (bool, error) {
	res := r.db.Model(&entities.TipoLabor{}).Where("id = ?", id).Update("activo", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
