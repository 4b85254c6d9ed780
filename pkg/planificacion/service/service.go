package service

import (
	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/planificacion/types"
)

type PlanificacionService interface {
	GetAllActividades() ([]entities.ActividadPlanificada, error)
	GetActividadByID(id uint) (*entities.ActividadPlanificada, error)
	GetActividadesPorLote(loteID uint) ([]entities.ActividadPlanificada, error)
	CreateActividad(data types.CreateActividad, userID *uint) (*entities.ActividadPlanificada, error)
	UpdateActividad(id uint, data types.UpdateActividad) (*entities.ActividadPlanificada, error)
	UpdateProgreso(id uint, data types.UpdateProgreso) (*entities.ActividadPlanificada, error)
	DeleteActividad(id uint) error
	GetEstadisticas() (*types.Estadisticas, error)
}
