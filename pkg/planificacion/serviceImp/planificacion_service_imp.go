package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/planificacion/repository"
	"github.com/Sebinhas/backPH/pkg/planificacion/types"
)

type PlanificacionSvc struct {
	repo repository.ActividadRepository
	now  func() time.Time
}

func NewPlanificacionService(repo repository.ActividadRepository) *PlanificacionSvc {
	return &PlanificacionSvc{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj del servicio; lo usan los tests para evaluar
// la derivación con un "ahora" fijo.
func (s *PlanificacionSvc) WithClock(now func() time.Time) *PlanificacionSvc {
	s.now = now
	return s
}

func (s *PlanificacionSvc) GetAllActividades() ([]entities.ActividadPlanificada, error) {
	actividades, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range actividades {
		if err := s.reconciliar(&actividades[i]); err != nil {
			return nil, err
		}
	}
	return actividades, nil
}

func (s *PlanificacionSvc) GetActividadByID(id uint) (*entities.ActividadPlanificada, error) {
	actividad, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if actividad == nil {
		return nil, apperrors.NotFound("Actividad", id)
	}
	if err := s.reconciliar(actividad); err != nil {
		return nil, err
	}
	return actividad, nil
}

func (s *PlanificacionSvc) GetActividadesPorLote(loteID uint) ([]entities.ActividadPlanificada, error) {
	actividades, err := s.repo.FindByLote(loteID)
	if err != nil {
		return nil, err
	}
	for i := range actividades {
		if err := s.reconciliar(&actividades[i]); err != nil {
			return nil, err
		}
	}
	return actividades, nil
}

func (s *PlanificacionSvc) CreateActividad(data types.CreateActividad, userID *uint) (*entities.ActividadPlanificada, error) {
	if strings.TrimSpace(data.Nombre) == "" {
		return nil, apperrors.Validation("El nombre de la actividad es requerido")
	}
	if strings.TrimSpace(data.Descripcion) == "" {
		return nil, apperrors.Validation("La descripción es requerida")
	}
	if data.FechaInicioPlanificada.IsZero() || data.FechaFinPlanificada.IsZero() {
		return nil, apperrors.Validation("Las fechas de inicio y fin son requeridas")
	}
	if !data.FechaFinPlanificada.After(data.FechaInicioPlanificada) {
		return nil, apperrors.Validation("La fecha de fin debe ser posterior a la fecha de inicio")
	}
	if data.DuracionEstimadaHoras <= 0 {
		return nil, apperrors.Validation("La duración estimada debe ser mayor a 0")
	}

	id, err := s.repo.Create(data, userID)
	if err != nil {
		return nil, err
	}

	actividad, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if actividad == nil {
		return nil, fmt.Errorf("error al crear la actividad %d", id)
	}
	if err := s.reconciliar(actividad); err != nil {
		return nil, err
	}
	return actividad, nil
}

func (s *PlanificacionSvc) UpdateActividad(id uint, data types.UpdateActividad) (*entities.ActividadPlanificada, error) {
	exists, err := s.repo.Exists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("Actividad", id)
	}

	if data.Nombre != nil && strings.TrimSpace(*data.Nombre) == "" {
		return nil, apperrors.Validation("El nombre no puede estar vacío")
	}
	if data.FechaInicioPlanificada != nil && data.FechaFinPlanificada != nil {
		if !data.FechaFinPlanificada.After(*data.FechaInicioPlanificada) {
			return nil, apperrors.Validation("La fecha de fin debe ser posterior a la fecha de inicio")
		}
	}
	if data.ProgresoPorcentaje != nil {
		if *data.ProgresoPorcentaje < 0 || *data.ProgresoPorcentaje > 100 {
			return nil, apperrors.Validation("El progreso debe estar entre 0 y 100")
		}
	}

	ok, err := s.repo.Update(id, data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound("Actividad", id)
	}

	actividad, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if actividad == nil {
		return nil, apperrors.NotFound("Actividad", id)
	}
	if err := s.reconciliar(actividad); err != nil {
		return nil, err
	}
	return actividad, nil
}

func (s *PlanificacionSvc) UpdateProgreso(id uint, data types.UpdateProgreso) (*entities.ActividadPlanificada, error) {
	if _, err := s.GetActividadByID(id); err != nil {
		return nil, err
	}
	if data.ProgresoPorcentaje < 0 || data.ProgresoPorcentaje > 100 {
		return nil, apperrors.Validation("El progreso debe estar entre 0 y 100")
	}

	progreso := data.ProgresoPorcentaje
	update := types.UpdateActividad{
		ProgresoPorcentaje: &progreso,
		FechaInicioReal:    data.FechaInicioReal,
		FechaFinReal:       data.FechaFinReal,
		DuracionRealHoras:  data.DuracionRealHoras,
	}

	// pista explícita previa a la derivación; la siguiente lectura vuelve a
	// derivar de todos modos
	if progreso == 100 {
		estado := entities.EstadoCompletada
		update.Estado = &estado
	} else if progreso > 0 {
		estado := entities.EstadoEnProgreso
		update.Estado = &estado
	}

	ok, err := s.repo.Update(id, update)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound("Actividad", id)
	}

	return s.GetActividadByID(id)
}

func (s *PlanificacionSvc) DeleteActividad(id uint) error {
	exists, err := s.repo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("Actividad", id)
	}
	_, err = s.repo.Delete(id)
	return err
}

func (s *PlanificacionSvc) GetEstadisticas() (*types.Estadisticas, error) {
	return s.repo.Estadisticas()
}

// reconciliar aplica la derivación completa sobre una actividad recién leída:
// desviación de tiempo, estado (con write-back solo si cambió) y metas. El
// cálculo es puro; la única escritura es la corrección del estado almacenado.
func (s *PlanificacionSvc) reconciliar(a *entities.ActividadPlanificada) error {
	ahora := s.now()

	calcularDesviacion(a, ahora)

	if nuevo := calcularEstado(a, ahora); nuevo != a.Estado {
		if err := s.repo.UpdateEstado(a.ID, nuevo); err != nil {
			return err
		}
		a.Estado = nuevo
	}

	recalcularMetas(a)
	return nil
}
