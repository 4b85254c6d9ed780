package entities

import "time"

type TipoActividad string

const (
	ActividadSiembra       TipoActividad = "SIEMBRA"
	ActividadRiego         TipoActividad = "RIEGO"
	ActividadFumigacion    TipoActividad = "FUMIGACION"
	ActividadFertilizacion TipoActividad = "FERTILIZACION"
	ActividadCosecha       TipoActividad = "COSECHA"
	ActividadMantenimiento TipoActividad = "MANTENIMIENTO"
	ActividadPoda          TipoActividad = "PODA"
	ActividadControlPlagas TipoActividad = "CONTROL_PLAGAS"
	ActividadOtro          TipoActividad = "OTRO"
)

type NivelPrioridad string

const (
	PrioridadBaja    NivelPrioridad = "BAJA"
	PrioridadMedia   NivelPrioridad = "MEDIA"
	PrioridadAlta    NivelPrioridad = "ALTA"
	PrioridadUrgente NivelPrioridad = "URGENTE"
)

type EstadoActividad string

const (
	EstadoPendiente  EstadoActividad = "PENDIENTE"
	EstadoEnProgreso EstadoActividad = "EN_PROGRESO"
	EstadoCompletada EstadoActividad = "COMPLETADA"
	EstadoAtrasada   EstadoActividad = "ATRASADA"
	EstadoCancelada  EstadoActividad = "CANCELADA"
)

type PeriodoTiempo string

const (
	PeriodoDia       PeriodoTiempo = "DIA"
	PeriodoSemana    PeriodoTiempo = "SEMANA"
	PeriodoQuincenal PeriodoTiempo = "QUINCENAL"
	PeriodoMes       PeriodoTiempo = "MES"
)

// ActividadPlanificada is the aggregate root of the planning module. The
// estado column is a cached view over fechas/progreso; the service rederives
// it on every read and writes it back only when it changed.
type ActividadPlanificada struct {
	ID                     uint            `gorm:"primaryKey" json:"id"`
	Nombre                 string          `json:"nombre"`
	Descripcion            string          `json:"descripcion"`
	Tipo                   TipoActividad   `json:"tipo"`
	Prioridad              NivelPrioridad  `json:"prioridad"`
	Estado                 EstadoActividad `gorm:"default:PENDIENTE" json:"estado"`
	FechaInicioPlanificada time.Time       `json:"fecha_inicio_planificada"`
	FechaFinPlanificada    time.Time       `json:"fecha_fin_planificada"`
	DuracionEstimadaHoras  float64         `json:"duracion_estimada_horas"`
	Periodo                PeriodoTiempo   `json:"periodo"`
	FechaInicioReal        *time.Time      `json:"fecha_inicio_real,omitempty"`
	FechaFinReal           *time.Time      `json:"fecha_fin_real,omitempty"`
	DuracionRealHoras      *float64        `json:"duracion_real_horas,omitempty"`
	ProgresoPorcentaje     float64         `json:"progreso_porcentaje"`
	LoteID                 *uint           `gorm:"index" json:"lote_id,omitempty"`
	CultivoID              *uint           `gorm:"index" json:"cultivo_id,omitempty"`
	ResponsableID          *uint           `json:"responsable_id,omitempty"`
	DesviacionTiempoDias   int             `json:"desviacion_tiempo_dias"`
	RequiereAtencion       bool            `json:"requiere_atencion"`
	Notas                  string          `json:"notas,omitempty"`
	CreadoPor              *uint           `json:"creado_por,omitempty"`
	FechaCreacion          time.Time       `gorm:"autoCreateTime" json:"fecha_creacion"`
	UltimaActualizacion    time.Time       `gorm:"autoUpdateTime" json:"ultima_actualizacion"`

	// populated by the repository on reads, never stored on this table
	LoteNombre            string                `gorm:"-" json:"lote_nombre,omitempty"`
	CultivoNombre         string                `gorm:"-" json:"cultivo_nombre,omitempty"`
	ResponsableNombre     string                `gorm:"-" json:"responsable_nombre,omitempty"`
	TrabajadoresAsignados []uint                `gorm:"-" json:"trabajadores_asignados"`
	TrabajadoresNombres   []string              `gorm:"-" json:"trabajadores_nombres"`
	Metas                 []MetaActividad       `gorm:"-" json:"metas"`
	AlertasActivas        []Alerta              `gorm:"-" json:"alertas_activas"`
}

func (ActividadPlanificada) TableName() string { return "actividades_planificadas" }

// ActividadTrabajador asigna un trabajador a una actividad. HorasPlanificadas
// se reparte en partes iguales entre los asignados al momento de asignar.
type ActividadTrabajador struct {
	ID                uint     `gorm:"primaryKey" json:"id"`
	ActividadID       uint     `gorm:"index" json:"actividad_id"`
	TrabajadorID      uint     `gorm:"index" json:"trabajador_id"`
	HorasPlanificadas float64  `json:"horas_planificadas"`
	HorasReales       *float64 `json:"horas_reales,omitempty"`
}

func (ActividadTrabajador) TableName() string { return "actividad_trabajadores" }

// MetaActividad: cumplida y porcentaje_cumplimiento se recalculan en cada
// lectura a partir de valor_actual/valor_objetivo, nunca se confían tal cual.
type MetaActividad struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	ActividadID            uint       `gorm:"index" json:"actividad_id"`
	Descripcion            string     `json:"descripcion"`
	ValorObjetivo          float64    `json:"valor_objetivo"`
	ValorActual            float64    `json:"valor_actual"`
	Unidad                 string     `json:"unidad"`
	Cumplida               bool       `json:"cumplida"`
	PorcentajeCumplimiento float64    `json:"porcentaje_cumplimiento"`
	FechaCumplimiento      *time.Time `json:"fecha_cumplimiento,omitempty"`
}

func (MetaActividad) TableName() string { return "actividad_metas" }

type TipoAlerta string

const (
	AlertaRetraso             TipoAlerta = "RETRASO"
	AlertaBajoRendimiento     TipoAlerta = "BAJO_RENDIMIENTO"
	AlertaActividadVencida    TipoAlerta = "ACTIVIDAD_VENCIDA"
	AlertaDesviacionTiempo    TipoAlerta = "DESVIACION_TIEMPO"
	AlertaDesviacionRecursos  TipoAlerta = "DESVIACION_RECURSOS"
	AlertaClimaAdverso        TipoAlerta = "CLIMA_ADVERSO"
	AlertaFaltaRecursos       TipoAlerta = "FALTA_RECURSOS"
)

type SeveridadAlerta string

const (
	SeveridadInfo     SeveridadAlerta = "INFO"
	SeveridadWarning  SeveridadAlerta = "WARNING"
	SeveridadError    SeveridadAlerta = "ERROR"
	SeveridadCritical SeveridadAlerta = "CRITICAL"
)

type Alerta struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ActividadID     uint            `gorm:"index" json:"actividad_id"`
	Tipo            TipoAlerta      `json:"tipo"`
	Severidad       SeveridadAlerta `json:"severidad"`
	Titulo          string          `json:"titulo"`
	Mensaje         string          `json:"mensaje"`
	FechaGeneracion time.Time       `gorm:"autoCreateTime" json:"fecha_generacion"`
	Leida           bool            `json:"leida"`
	Resuelta        bool            `json:"resuelta"`
	FechaResolucion *time.Time      `json:"fecha_resolucion,omitempty"`
}

func (Alerta) TableName() string { return "alertas" }
