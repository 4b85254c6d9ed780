package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sebinhas/backPH/entities"
)

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalcularEstado(t *testing.T) {
	base := func() *entities.ActividadPlanificada {
		return &entities.ActividadPlanificada{
			Estado:                 entities.EstadoPendiente,
			FechaInicioPlanificada: fecha("2026-03-10 08:00"),
			FechaFinPlanificada:    fecha("2026-03-20 18:00"),
		}
	}

	t.Run("progreso completo gana sin importar fechas", func(t *testing.T) {
		a := base()
		a.ProgresoPorcentaje = 100
		// muy pasado el fin planificado
		got := calcularEstado(a, fecha("2026-06-01 00:00"))
		assert.Equal(t, entities.EstadoCompletada, got)
		assert.False(t, a.RequiereAtencion)
	})

	t.Run("vencida con progreso parcial queda atrasada y marcada", func(t *testing.T) {
		a := base()
		a.ProgresoPorcentaje = 60
		got := calcularEstado(a, fecha("2026-03-21 00:00"))
		assert.Equal(t, entities.EstadoAtrasada, got)
		assert.True(t, a.RequiereAtencion)
	})

	t.Run("dentro de ventana con progreso", func(t *testing.T) {
		a := base()
		a.ProgresoPorcentaje = 30
		got := calcularEstado(a, fecha("2026-03-15 12:00"))
		assert.Equal(t, entities.EstadoEnProgreso, got)
	})

	t.Run("dentro de ventana sin progreso conserva el estado", func(t *testing.T) {
		a := base()
		a.Estado = entities.EstadoCancelada
		got := calcularEstado(a, fecha("2026-03-15 12:00"))
		assert.Equal(t, entities.EstadoCancelada, got)
	})

	t.Run("antes del inicio vuelve a pendiente", func(t *testing.T) {
		a := base()
		a.Estado = entities.EstadoEnProgreso
		got := calcularEstado(a, fecha("2026-03-01 00:00"))
		assert.Equal(t, entities.EstadoPendiente, got)
	})

	t.Run("exactamente sobre el fin no es atrasada", func(t *testing.T) {
		// After es estricto: ahora == fin no dispara la rama de atraso
		a := base()
		a.ProgresoPorcentaje = 50
		got := calcularEstado(a, fecha("2026-03-20 18:00"))
		assert.Equal(t, entities.EstadoEnProgreso, got)
		assert.False(t, a.RequiereAtencion)
	})

	t.Run("exactamente sobre el fin sin progreso conserva el estado", func(t *testing.T) {
		a := base()
		a.Estado = entities.EstadoPendiente
		got := calcularEstado(a, fecha("2026-03-20 18:00"))
		assert.Equal(t, entities.EstadoPendiente, got)
	})

	t.Run("exactamente sobre el inicio con progreso entra en progreso", func(t *testing.T) {
		a := base()
		a.ProgresoPorcentaje = 10
		got := calcularEstado(a, fecha("2026-03-10 08:00"))
		assert.Equal(t, entities.EstadoEnProgreso, got)
	})
}

func TestCalcularDesviacion(t *testing.T) {
	t.Run("sin inicio real no toca la desviacion", func(t *testing.T) {
		a := &entities.ActividadPlanificada{
			FechaFinPlanificada:  fecha("2026-03-20 18:00"),
			DesviacionTiempoDias: 7,
		}
		calcularDesviacion(a, fecha("2026-04-01 00:00"))
		assert.Equal(t, 7, a.DesviacionTiempoDias)
	})

	t.Run("actividad abierta usa ahora", func(t *testing.T) {
		inicio := fecha("2026-03-10 08:00")
		a := &entities.ActividadPlanificada{
			FechaFinPlanificada: fecha("2026-03-20 18:00"),
			FechaInicioReal:     &inicio,
		}
		// 30h después del fin planificado -> ceil(30/24) = 2 días
		calcularDesviacion(a, fecha("2026-03-22 00:00"))
		assert.Equal(t, 2, a.DesviacionTiempoDias)
	})

	t.Run("cerrada antes de tiempo da desviacion negativa", func(t *testing.T) {
		inicio := fecha("2026-03-10 08:00")
		fin := fecha("2026-03-18 18:00")
		a := &entities.ActividadPlanificada{
			FechaFinPlanificada: fecha("2026-03-20 18:00"),
			FechaInicioReal:     &inicio,
			FechaFinReal:        &fin,
		}
		calcularDesviacion(a, fecha("2026-06-01 00:00"))
		assert.Equal(t, -2, a.DesviacionTiempoDias)
	})
}

func TestRecalcularMetas(t *testing.T) {
	a := &entities.ActividadPlanificada{
		Metas: []entities.MetaActividad{
			{ValorObjetivo: 200, ValorActual: 50},
			{ValorObjetivo: 100, ValorActual: 150},
			{ValorObjetivo: 0, ValorActual: 10, Cumplida: true, PorcentajeCumplimiento: 99},
			{ValorObjetivo: 3, ValorActual: 1},
		},
	}
	recalcularMetas(a)

	assert.Equal(t, 25.0, a.Metas[0].PorcentajeCumplimiento)
	assert.False(t, a.Metas[0].Cumplida)

	// por encima del objetivo se recorta a 100
	assert.Equal(t, 100.0, a.Metas[1].PorcentajeCumplimiento)
	assert.True(t, a.Metas[1].Cumplida)

	// objetivo cero se deja tal cual
	assert.Equal(t, 99.0, a.Metas[2].PorcentajeCumplimiento)
	assert.True(t, a.Metas[2].Cumplida)

	// 1/3 -> 33.33 redondeado a 33
	assert.Equal(t, 33.0, a.Metas[3].PorcentajeCumplimiento)
}
