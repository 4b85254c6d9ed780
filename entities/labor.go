package entities

import "time"

type UnidadMedida string

const (
	UnidadKg        UnidadMedida = "kg"
	UnidadLitros    UnidadMedida = "litros"
	UnidadUnidades  UnidadMedida = "unidades"
	UnidadToneladas UnidadMedida = "toneladas"
	UnidadQuintales UnidadMedida = "quintales"
)

type EstadoLabor string

const (
	LaborEnProceso  EstadoLabor = "en_proceso"
	LaborCompletada EstadoLabor = "completada"
	LaborPausada    EstadoLabor = "pausada"
	LaborCancelada  EstadoLabor = "cancelada"
)

type UbicacionGPS struct {
	Latitud  float64 `json:"latitud"`
	Longitud float64 `json:"longitud"`
}

type CondicionesClimaticas struct {
	Temperatura *float64 `json:"temperatura,omitempty"`
	Humedad     *float64 `json:"humedad,omitempty"`
	Lluvia      *bool    `json:"lluvia,omitempty"`
}

// Labor registra trabajo de campo ejecutado, opcionalmente vinculado a una
// actividad planificada. DuracionMinutos y RendimientoPorHora se derivan de
// hora_inicio/hora_fin y cantidad_recolectada al crear o actualizar.
type Labor struct {
	ID                     uint                   `gorm:"primaryKey" json:"id"`
	Fecha                  string                 `gorm:"index" json:"fecha"` // YYYY-MM-DD
	Cultivo                string                 `json:"cultivo"`
	Lote                   string                 `json:"lote"`
	TrabajadorID           uint                   `gorm:"index" json:"trabajador_id"`
	TipoLaborID            uint                   `gorm:"index" json:"tipo_labor_id"`
	CantidadRecolectada    float64                `json:"cantidad_recolectada"`
	UnidadMedida           UnidadMedida           `json:"unidad_medida"`
	PesoTotal              float64                `json:"peso_total"`
	HoraInicio             string                 `json:"hora_inicio"` // HH:mm
	HoraFin                string                 `json:"hora_fin"`    // HH:mm
	UbicacionGPS           UbicacionGPS           `gorm:"serializer:json" json:"ubicacion_gps"`
	CondicionesClimaticas  *CondicionesClimaticas `gorm:"serializer:json" json:"condiciones_climaticas,omitempty"`
	HerramientasInsumos    []string               `gorm:"serializer:json" json:"herramientas_insumos,omitempty"`
	Observaciones          string                 `json:"observaciones,omitempty"`
	Fotos                  []string               `gorm:"serializer:json" json:"fotos,omitempty"`
	DuracionMinutos        int                    `json:"duracion_minutos"`
	RendimientoPorHora     float64                `json:"rendimiento_por_hora"`
	CostoEstimado          *float64               `json:"costo_estimado,omitempty"`
	Estado                 EstadoLabor            `gorm:"default:en_proceso" json:"estado"`
	SupervisorID           *uint                  `json:"supervisor_id,omitempty"`
	ActividadPlanificadaID *uint                  `gorm:"index" json:"actividad_planificada_id,omitempty"`
	FechaCreacion          time.Time              `gorm:"autoCreateTime" json:"fecha_creacion"`
	UltimaModificacion     time.Time              `gorm:"autoUpdateTime" json:"ultima_modificacion"`

	TrabajadorNombre string `gorm:"-" json:"trabajador_nombre,omitempty"`
	TipoLaborNombre  string `gorm:"-" json:"tipo_labor_nombre,omitempty"`
}

func (Labor) TableName() string { return "labores" }

type TipoLabor struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Nombre        string    `gorm:"uniqueIndex" json:"nombre"`
	Descripcion   string    `json:"descripcion,omitempty"`
	Activo        bool      `gorm:"default:true" json:"activo"`
	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
}

func (TipoLabor) TableName() string { return "tipos_labor" }
