package types

import (
	"time"

	"github.com/Sebinhas/backPH/entities"
)

type MetaInput struct {
	Descripcion   string  `json:"descripcion"`
	ValorObjetivo float64 `json:"valor_objetivo"`
	Unidad        string  `json:"unidad"`
}

type CreateActividad struct {
	Nombre                 string                  `json:"nombre"`
	Descripcion            string                  `json:"descripcion"`
	Tipo                   entities.TipoActividad  `json:"tipo"`
	Prioridad              entities.NivelPrioridad `json:"prioridad"`
	FechaInicioPlanificada time.Time               `json:"fecha_inicio_planificada"`
	FechaFinPlanificada    time.Time               `json:"fecha_fin_planificada"`
	DuracionEstimadaHoras  float64                 `json:"duracion_estimada_horas"`
	Periodo                entities.PeriodoTiempo  `json:"periodo"`
	LoteID                 *uint                   `json:"lote_id,omitempty"`
	CultivoID              *uint                   `json:"cultivo_id,omitempty"`
	ResponsableID          *uint                   `json:"responsable_id,omitempty"`
	Notas                  string                  `json:"notas,omitempty"`
	TrabajadoresAsignados  []uint                  `json:"trabajadores_asignados,omitempty"`
	Metas                  []MetaInput             `json:"metas,omitempty"`
}

// UpdateActividad is a partial update: nil means "leave untouched". The child
// collections use *[]T so that an explicit empty list still triggers the full
// delete-and-reinsert replacement.
type UpdateActividad struct {
	Nombre                 *string                   `json:"nombre,omitempty"`
	Descripcion            *string                   `json:"descripcion,omitempty"`
	Tipo                   *entities.TipoActividad   `json:"tipo,omitempty"`
	Prioridad              *entities.NivelPrioridad  `json:"prioridad,omitempty"`
	Estado                 *entities.EstadoActividad `json:"estado,omitempty"`
	FechaInicioPlanificada *time.Time                `json:"fecha_inicio_planificada,omitempty"`
	FechaFinPlanificada    *time.Time                `json:"fecha_fin_planificada,omitempty"`
	DuracionEstimadaHoras  *float64                  `json:"duracion_estimada_horas,omitempty"`
	FechaInicioReal        *time.Time                `json:"fecha_inicio_real,omitempty"`
	FechaFinReal           *time.Time                `json:"fecha_fin_real,omitempty"`
	DuracionRealHoras      *float64                  `json:"duracion_real_horas,omitempty"`
	ProgresoPorcentaje     *float64                  `json:"progreso_porcentaje,omitempty"`
	LoteID                 *uint                     `json:"lote_id,omitempty"`
	CultivoID              *uint                     `json:"cultivo_id,omitempty"`
	ResponsableID          *uint                     `json:"responsable_id,omitempty"`
	Notas                  *string                   `json:"notas,omitempty"`
	TrabajadoresAsignados  *[]uint                   `json:"trabajadores_asignados,omitempty"`
	Metas                  *[]MetaInput              `json:"metas,omitempty"`
}

type UpdateProgreso struct {
	ProgresoPorcentaje float64    `json:"progreso_porcentaje"`
	FechaInicioReal    *time.Time `json:"fecha_inicio_real,omitempty"`
	FechaFinReal       *time.Time `json:"fecha_fin_real,omitempty"`
	DuracionRealHoras  *float64   `json:"duracion_real_horas,omitempty"`
}

type Estadisticas struct {
	TotalActividades  int64   `json:"total_actividades"`
	Pendientes        int64   `json:"pendientes"`
	EnProgreso        int64   `json:"en_progreso"`
	Completadas       int64   `json:"completadas"`
	Atrasadas         int64   `json:"atrasadas"`
	ProgresoPromedio  float64 `json:"progreso_promedio"`
	RequierenAtencion int64   `json:"requieren_atencion"`
}
