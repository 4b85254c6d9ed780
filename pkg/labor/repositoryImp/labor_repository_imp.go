package repositoryImp

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/labor/repository"
)

type laborRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LaborRepository { return &laborRepo{db} }

func (r *laborRepo) FindAll() ([]entities.Labor, error) {
	var out []entities.Labor
	if err := r.db.Order("fecha DESC, fecha_creacion DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.cargarNombres(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *laborRepo) FindByID(id uint) (*entities.Labor, error) {
	var l entities.Labor
	if err := r.db.Where("id = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.cargarNombres(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *laborRepo) FindByDateRange(fechaInicio, fechaFin string) ([]entities.Labor, error) {
	var out []entities.Labor
	if err := r.db.Where("fecha >= ? AND fecha <= ?", fechaInicio, fechaFin).
		Order("fecha DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.cargarNombres(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *laborRepo) FindByTrabajador(trabajadorID uint) ([]entities.Labor, error) {
	var out []entities.Labor
	if err := r.db.Where("trabajador_id = ?", trabajadorID).
		Order("fecha DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.cargarNombres(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *laborRepo) cargarNombres(l *entities.Labor) error {
	var nombres struct {
		TrabajadorNombre sql.NullString
		TipoLaborNombre  sql.NullString
	}
	err := r.db.Raw(`
		SELECT t.nombres || ' ' || t.apellidos AS trabajador_nombre,
		       tl.nombre AS tipo_labor_nombre
		FROM labores l
		LEFT JOIN trabajadores t ON l.trabajador_id = t.id
		LEFT JOIN tipos_labor tl ON l.tipo_labor_id = tl.id
		WHERE l.id = ?`, l.ID).Scan(&nombres).Error
	if err != nil {
		return err
	}
	l.TrabajadorNombre = nombres.TrabajadorNombre.String
	l.TipoLaborNombre = nombres.TipoLaborNombre.String
	return nil
}

func (r *laborRepo) Create(l *entities.Labor) error { return r.db.Create(l).Error }

func (r *laborRepo) Update(id uint, campos map[string]any) (bool, error) {
	res := r.db.Model(&entities.Labor{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *laborRepo) Delete(id uint) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&entities.Labor{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *laborRepo) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&entities.Labor{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
