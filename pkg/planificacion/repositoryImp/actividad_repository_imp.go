package repositoryImp

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/planificacion/repository"
	"github.com/Sebinhas/backPH/pkg/planificacion/types"
)

// errSinFilas señala dentro de la transacción que el UPDATE no tocó filas,
// para forzar el rollback y devolver false.
var errSinFilas = errors.New("actividad sin filas afectadas")

type actividadRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActividadRepository { return &actividadRepo{db} }

func (r *actividadRepo) FindAll() ([]entities.ActividadPlanificada, error) {
	var out []entities.ActividadPlanificada
	if err := r.db.Order("fecha_inicio_planificada DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.cargarRelaciones(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *actividadRepo) FindByID(id uint) (*entities.ActividadPlanificada, error) {
	var a entities.ActividadPlanificada
	if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.cargarRelaciones(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *actividadRepo) FindByLote(loteID uint) ([]entities.ActividadPlanificada, error) {
	var out []entities.ActividadPlanificada
	if err := r.db.Where("lote_id = ?", loteID).
		Order("fecha_inicio_planificada DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.cargarRelaciones(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// cargarRelaciones rellena nombres relacionados, trabajadores, metas y
// alertas sin resolver de una actividad ya leída.
func (r *actividadRepo) cargarRelaciones(a *entities.ActividadPlanificada) error {
	var nombres struct {
		LoteNombre        sql.NullString
		CultivoNombre     sql.NullString
		ResponsableNombre sql.NullString
	}
	err := r.db.Raw(`
		SELECT l.nombre AS lote_nombre,
		       c.nombre AS cultivo_nombre,
		       u.nombre AS responsable_nombre
		FROM actividades_planificadas a
		LEFT JOIN lotes l ON a.lote_id = l.id
		LEFT JOIN cultivos c ON a.cultivo_id = c.id
		LEFT JOIN usuarios u ON a.responsable_id = u.id
		WHERE a.id = ?`, a.ID).Scan(&nombres).Error
	if err != nil {
		return err
	}
	a.LoteNombre = nombres.LoteNombre.String
	a.CultivoNombre = nombres.CultivoNombre.String
	a.ResponsableNombre = nombres.ResponsableNombre.String

	a.TrabajadoresAsignados = []uint{}
	if err := r.db.Model(&entities.ActividadTrabajador{}).
		Where("actividad_id = ?", a.ID).Order("id ASC").
		Pluck("trabajador_id", &a.TrabajadoresAsignados).Error; err != nil {
		return err
	}

	a.TrabajadoresNombres = []string{}
	if err := r.db.Raw(`
		SELECT t.nombres || ' ' || t.apellidos AS nombre
		FROM actividad_trabajadores at
		JOIN trabajadores t ON at.trabajador_id = t.id
		WHERE at.actividad_id = ?
		ORDER BY at.id ASC`, a.ID).Scan(&a.TrabajadoresNombres).Error; err != nil {
		return err
	}

	a.Metas = []entities.MetaActividad{}
	if err := r.db.Where("actividad_id = ?", a.ID).Order("id ASC").
		Find(&a.Metas).Error; err != nil {
		return err
	}

	a.AlertasActivas = []entities.Alerta{}
	return r.db.Where("actividad_id = ? AND resuelta = ?", a.ID, false).
		Order("fecha_generacion DESC").Find(&a.AlertasActivas).Error
}

func (r *actividadRepo) Create(data types.CreateActividad, creadoPor *uint) (uint, error) {
	a := entities.ActividadPlanificada{
		Nombre:                 data.Nombre,
		Descripcion:            data.Descripcion,
		Tipo:                   data.Tipo,
		Prioridad:              data.Prioridad,
		Estado:                 entities.EstadoPendiente,
		FechaInicioPlanificada: data.FechaInicioPlanificada,
		FechaFinPlanificada:    data.FechaFinPlanificada,
		DuracionEstimadaHoras:  data.DuracionEstimadaHoras,
		Periodo:                data.Periodo,
		LoteID:                 data.LoteID,
		CultivoID:              data.CultivoID,
		ResponsableID:          data.ResponsableID,
		Notas:                  data.Notas,
		CreadoPor:              creadoPor,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		if err := insertarTrabajadores(tx, a.ID, data.TrabajadoresAsignados, data.DuracionEstimadaHoras); err != nil {
			return err
		}
		return insertarMetas(tx, a.ID, data.Metas)
	})
	if err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (r *actividadRepo) Update(id uint, data types.UpdateActividad) (bool, error) {
	campos := camposActualizables(data)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if len(campos) > 0 {
			res := tx.Model(&entities.ActividadPlanificada{}).
				Where("id = ?", id).Updates(campos)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errSinFilas
			}
		}

		// reemplazo completo de colecciones hijas cuando vienen en el payload
		if data.TrabajadoresAsignados != nil {
			if err := tx.Where("actividad_id = ?", id).
				Delete(&entities.ActividadTrabajador{}).Error; err != nil {
				return err
			}
			duracion := 0.0
			if data.DuracionEstimadaHoras != nil {
				duracion = *data.DuracionEstimadaHoras
			}
			if err := insertarTrabajadores(tx, id, *data.TrabajadoresAsignados, duracion); err != nil {
				return err
			}
		}

		if data.Metas != nil {
			if err := tx.Where("actividad_id = ?", id).
				Delete(&entities.MetaActividad{}).Error; err != nil {
				return err
			}
			if err := insertarMetas(tx, id, *data.Metas); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errSinFilas) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *actividadRepo) UpdateEstado(id uint, estado entities.EstadoActividad) error {
	return r.db.Model(&entities.ActividadPlanificada{}).
		Where("id = ?", id).Update("estado", estado).Error
}

func (r *actividadRepo) Delete(id uint) (bool, error) {
	var afectadas int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("actividad_id = ?", id).
			Delete(&entities.ActividadTrabajador{}).Error; err != nil {
			return err
		}
		if err := tx.Where("actividad_id = ?", id).
			Delete(&entities.MetaActividad{}).Error; err != nil {
			return err
		}
		if err := tx.Where("actividad_id = ?", id).
			Delete(&entities.Alerta{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.ActividadPlanificada{})
		if res.Error != nil {
			return res.Error
		}
		afectadas = res.RowsAffected
		return nil
	})
	if err != nil {
		return false, err
	}
	return afectadas > 0, nil
}

func (r *actividadRepo) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&entities.ActividadPlanificada{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *actividadRepo) Estadisticas() (*types.Estadisticas, error) {
	var est types.Estadisticas
	err := r.db.Raw(`
		SELECT
			COUNT(*) AS total_actividades,
			COUNT(CASE WHEN estado = 'PENDIENTE' THEN 1 END) AS pendientes,
			COUNT(CASE WHEN estado = 'EN_PROGRESO' THEN 1 END) AS en_progreso,
			COUNT(CASE WHEN estado = 'COMPLETADA' THEN 1 END) AS completadas,
			COUNT(CASE WHEN estado = 'ATRASADA' THEN 1 END) AS atrasadas,
			COALESCE(AVG(progreso_porcentaje), 0) AS progreso_promedio,
			COUNT(CASE WHEN requiere_atencion THEN 1 END) AS requieren_atencion
		FROM actividades_planificadas`).Scan(&est).Error
	if err != nil {
		return nil, err
	}
	return &est, nil
}

func insertarTrabajadores(tx *gorm.DB, actividadID uint, trabajadores []uint, duracionHoras float64) error {
	if len(trabajadores) == 0 {
		return nil
	}
	horas := duracionHoras / float64(len(trabajadores))
	filas := make([]entities.ActividadTrabajador, 0, len(trabajadores))
	for _, tid := range trabajadores {
		filas = append(filas, entities.ActividadTrabajador{
			ActividadID:       actividadID,
			TrabajadorID:      tid,
			HorasPlanificadas: horas,
		})
	}
	return tx.Create(&filas).Error
}

func insertarMetas(tx *gorm.DB, actividadID uint, metas []types.MetaInput) error {
	if len(metas) == 0 {
		return nil
	}
	filas := make([]entities.MetaActividad, 0, len(metas))
	for _, m := range metas {
		filas = append(filas, entities.MetaActividad{
			ActividadID:   actividadID,
			Descripcion:   m.Descripcion,
			ValorObjetivo: m.ValorObjetivo,
			Unidad:        m.Unidad,
		})
	}
	return tx.Create(&filas).Error
}

func camposActualizables(data types.UpdateActividad) map[string]any {
	campos := map[string]any{}
	if data.Nombre != nil {
		campos["nombre"] = *data.Nombre
	}
	if data.Descripcion != nil {
		campos["descripcion"] = *data.Descripcion
	}
	if data.Tipo != nil {
		campos["tipo"] = *data.Tipo
	}
	if data.Prioridad != nil {
		campos["prioridad"] = *data.Prioridad
	}
	if data.Estado != nil {
		campos["estado"] = *data.Estado
	}
	if data.FechaInicioPlanificada != nil {
		campos["fecha_inicio_planificada"] = *data.FechaInicioPlanificada
	}
	if data.FechaFinPlanificada != nil {
		campos["fecha_fin_planificada"] = *data.FechaFinPlanificada
	}
	if data.DuracionEstimadaHoras != nil {
		campos["duracion_estimada_horas"] = *data.DuracionEstimadaHoras
	}
	if data.FechaInicioReal != nil {
		campos["fecha_inicio_real"] = *data.FechaInicioReal
	}
	if data.FechaFinReal != nil {
		campos["fecha_fin_real"] = *data.FechaFinReal
	}
	if data.DuracionRealHoras != nil {
		campos["duracion_real_horas"] = *data.DuracionRealHoras
	}
	if data.ProgresoPorcentaje != nil {
		campos["progreso_porcentaje"] = *data.ProgresoPorcentaje
	}
	if data.LoteID != nil {
		campos["lote_id"] = *data.LoteID
	}
	if data.CultivoID != nil {
		campos["cultivo_id"] = *data.CultivoID
	}
	if data.ResponsableID != nil {
		campos["responsable_id"] = *data.ResponsableID
	}
	if data.Notas != nil {
		campos["notas"] = *data.Notas
	}
	return campos
}
