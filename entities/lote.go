package entities

import "time"

type EstadoLote string

const (
	LoteEnCrecimiento   EstadoLote = "EN_CRECIMIENTO"
	LoteEnCosecha       EstadoLote = "EN_COSECHA"
	LoteEnMantenimiento EstadoLote = "EN_MANTENIMIENTO"
	LoteInactivo        EstadoLote = "INACTIVO"
)

type TipoSuelo string

const (
	SueloArcilloso TipoSuelo = "ARCILLOSO"
	SueloArenoso   TipoSuelo = "ARENOSO"
	SueloLimoso    TipoSuelo = "LIMOSO"
	SueloFranco    TipoSuelo = "FRANCO"
	SueloHumifero  TipoSuelo = "HUMIFERO"
)

type Topografia string

const (
	TopografiaPlano     Topografia = "PLANO"
	TopografiaOndulado  Topografia = "ONDULADO"
	TopografiaMontanoso Topografia = "MONTAÑOSO"
)

type SistemaRiego string

const (
	RiegoGoteo     SistemaRiego = "GOTEO"
	RiegoAspersion SistemaRiego = "ASPERSION"
	RiegoGravedad  SistemaRiego = "GRAVEDAD"
	RiegoNinguno   SistemaRiego = "NINGUNO"
)

type Coordenada struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Lote struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	Codigo          string       `gorm:"uniqueIndex" json:"codigo"`
	Nombre          string       `json:"nombre"`
	Descripcion     string       `json:"descripcion,omitempty"`
	AreaHectareas   float64      `json:"area_hectareas"`
	PerimetroMetros *float64     `json:"perimetro_metros,omitempty"`
	AltitudMsnm     *float64     `json:"altitud_msnm,omitempty"`
	CultivoID       *uint        `gorm:"index" json:"cultivo_id,omitempty"`
	Estado          EstadoLote   `gorm:"default:EN_CRECIMIENTO" json:"estado"`
	TipoSuelo       TipoSuelo    `json:"tipo_suelo,omitempty"`
	PhSuelo         *float64     `json:"ph_suelo,omitempty"`
	Topografia      Topografia   `json:"topografia,omitempty"`
	SistemaRiego    SistemaRiego `json:"sistema_riego,omitempty"`
	TieneCerca      bool         `json:"tiene_cerca"`
	TieneSombra     bool         `json:"tiene_sombra"`
	AccesoVehicular bool         `json:"acceso_vehicular"`
	Notas           string       `json:"notas,omitempty"`
	Coordenadas     []Coordenada `gorm:"serializer:json" json:"coordenadas"`

	FechaCreacion           time.Time  `gorm:"autoCreateTime" json:"fecha_creacion"`
	FechaUltimaModificacion time.Time  `gorm:"autoUpdateTime" json:"fecha_ultima_modificacion"`
	FechaUltimaActividad    *time.Time `json:"fecha_ultima_actividad,omitempty"`
	ProximaActividad        string     `json:"proxima_actividad,omitempty"`

	CultivoNombre string `gorm:"-" json:"cultivo_nombre,omitempty"`
}

func (Lote) TableName() string { return "lotes" }
