package serviceImp

import (
	"math"
	"time"

	"github.com/Sebinhas/backPH/entities"
)

// calcularEstado deriva el estado de la actividad a partir de fechas y
// progreso. El orden de las ramas y los límites estrictos se mantienen tal
// cual: cuando `ahora` cae exactamente sobre fecha_fin_planificada con
// progreso < 100 la actividad NO queda atrasada, cae a EN_PROGRESO si hay
// progreso y de lo contrario conserva su estado actual.
//
// La rama ATRASADA marca requiere_atencion sobre la actividad en memoria;
// esa marca nunca se limpia desde aquí.
func calcularEstado(a *entities.ActividadPlanificada, ahora time.Time) entities.EstadoActividad {
	switch {
	case a.ProgresoPorcentaje == 100:
		return entities.EstadoCompletada
	case ahora.After(a.FechaFinPlanificada) && a.ProgresoPorcentaje < 100:
		a.RequiereAtencion = true
		return entities.EstadoAtrasada
	case !ahora.Before(a.FechaInicioPlanificada) && !ahora.After(a.FechaFinPlanificada) && a.ProgresoPorcentaje > 0:
		return entities.EstadoEnProgreso
	case ahora.Before(a.FechaInicioPlanificada):
		return entities.EstadoPendiente
	default:
		return a.Estado
	}
}

// calcularDesviacion actualiza desviacion_tiempo_dias cuando la actividad ya
// arrancó: días (redondeados hacia arriba) entre el fin real (o `ahora` si
// sigue abierta) y el fin planificado.
func calcularDesviacion(a *entities.ActividadPlanificada, ahora time.Time) {
	if a.FechaInicioReal == nil {
		return
	}
	finReal := ahora
	if a.FechaFinReal != nil {
		finReal = *a.FechaFinReal
	}
	a.DesviacionTiempoDias = int(math.Ceil(finReal.Sub(a.FechaFinPlanificada).Hours() / 24))
}

// recalcularMetas recalcula cumplimiento de metas solo en memoria; los valores
// almacenados nunca se consideran autoritativos.
func recalcularMetas(a *entities.ActividadPlanificada) {
	for i := range a.Metas {
		m := &a.Metas[i]
		if m.ValorObjetivo > 0 {
			m.PorcentajeCumplimiento = math.Min(100, math.Round(m.ValorActual/m.ValorObjetivo*100))
			m.Cumplida = m.ValorActual >= m.ValorObjetivo
		}
	}
}
