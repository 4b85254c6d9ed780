package entities

import "time"

type TipoCultivo string

const (
	CultivoHortaliza  TipoCultivo = "Hortaliza"
	CultivoFruta      TipoCultivo = "Fruta"
	CultivoCereal     TipoCultivo = "Cereal"
	CultivoLeguminosa TipoCultivo = "Leguminosa"
	CultivoTuberculo  TipoCultivo = "Tubérculo"
	CultivoFlor       TipoCultivo = "Flor"
	CultivoOtro       TipoCultivo = "Otro"
)

type Cultivo struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	Nombre           string      `json:"nombre"`
	NombreCientifico string      `json:"nombre_cientifico,omitempty"`
	Tipo             TipoCultivo `json:"tipo"`
	CicloDias        int         `json:"ciclo_dias"`
	Descripcion      string      `json:"descripcion,omitempty"`
	Activo           bool        `gorm:"default:true" json:"activo"`
	FechaCreacion    time.Time   `gorm:"autoCreateTime" json:"fecha_creacion"`
}

func (Cultivo) TableName() string { return "cultivos" }
