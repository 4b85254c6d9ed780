package repository

import (
	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/planificacion/types"
)

// ActividadRepository is the persistence contract of the planning module.
// Every read returns activities with joined lote/cultivo/responsable names,
// goals, unresolved alerts and assigned-worker ids/names populated.
type ActividadRepository interface {
	FindAll() ([]entities.ActividadPlanificada, error)
	// FindByID returns (nil, nil) when the id does not exist.
	FindByID(id uint) (*entities.ActividadPlanificada, error)
	FindByLote(loteID uint) ([]entities.ActividadPlanificada, error)
	// Create inserts the activity, its worker assignments (splitting
	// duracion_estimada_horas evenly) and its goals in one transaction.
	Create(data types.CreateActividad, creadoPor *uint) (uint, error)
	// Update applies the present scalar fields and, when trabajadores or
	// metas are present, fully replaces those child rows. Returns false when
	// no row matched the id.
	Update(id uint, data types.UpdateActividad) (bool, error)
	UpdateEstado(id uint, estado entities.EstadoActividad) error
	// Delete removes the activity and cascades to workers, goals and alerts.
	Delete(id uint) (bool, error)
	Exists(id uint) (bool, error)
	Estadisticas() (*types.Estadisticas, error)
}
