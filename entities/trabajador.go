package entities

import "time"

type TipoDocumento string

const (
	DocumentoDNI       TipoDocumento = "DNI"
	DocumentoPasaporte TipoDocumento = "Pasaporte"
	DocumentoCedula    TipoDocumento = "Cédula"
	DocumentoOtro      TipoDocumento = "Otro"
)

type EstadoTrabajador string

const (
	TrabajadorActivo     EstadoTrabajador = "activo"
	TrabajadorInactivo   EstadoTrabajador = "inactivo"
	TrabajadorVacaciones EstadoTrabajador = "vacaciones"
	TrabajadorLicencia   EstadoTrabajador = "licencia"
)

type Trabajador struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	Nombres            string           `json:"nombres"`
	Apellidos          string           `json:"apellidos"`
	Documento          string           `gorm:"uniqueIndex" json:"documento"`
	TipoDocumento      TipoDocumento    `json:"tipo_documento"`
	Telefono           string           `json:"telefono"`
	Email              string           `json:"email"`
	Cargo              string           `json:"cargo"`
	FechaIngreso       string           `json:"fecha_ingreso"` // YYYY-MM-DD
	Estado             EstadoTrabajador `gorm:"default:activo" json:"estado"`
	Direccion          string           `json:"direccion"`
	FechaCreacion      time.Time        `gorm:"autoCreateTime" json:"fecha_creacion"`
	UltimaModificacion time.Time        `gorm:"autoUpdateTime" json:"ultima_modificacion"`
}

func (Trabajador) TableName() string { return "trabajadores" }
