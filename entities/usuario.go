package entities

import "time"

type Usuario struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `gorm:"uniqueIndex" json:"email"`
	Password      string    `json:"-"`
	Rol           string    `gorm:"default:usuario" json:"rol"`
	Avatar        string    `json:"avatar,omitempty"`
	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
}

func (Usuario) TableName() string { return "usuarios" }

type Rol struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Nombre             string    `gorm:"uniqueIndex" json:"nombre"`
	FechaCreacion      time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	UltimaModificacion time.Time `gorm:"autoUpdateTime" json:"ultima_modificacion"`
}

func (Rol) TableName() string { return "roles" }

// TokenRevocado guarda tokens cerrados por logout hasta que expiran; el
// middleware los rechaza aunque la firma siga siendo válida.
type TokenRevocado struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"index" json:"token"`
	UsuarioID uint      `json:"usuario_id"`
	ExpiraEn  time.Time `json:"expira_en"`
}

func (TokenRevocado) TableName() string { return "token_blacklist" }
