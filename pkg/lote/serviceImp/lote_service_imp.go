package serviceImp

import (
	"encoding/json"
	"strings"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/lote/repository"
)

type CreateLote struct {
	Codigo          string                `json:"codigo"`
	Nombre          string                `json:"nombre"`
	Descripcion     string                `json:"descripcion,omitempty"`
	AreaHectareas   float64               `json:"area_hectareas"`
	PerimetroMetros *float64              `json:"perimetro_metros,omitempty"`
	AltitudMsnm     *float64              `json:"altitud_msnm,omitempty"`
	CultivoID       *uint                 `json:"cultivo_id,omitempty"`
	Estado          entities.EstadoLote   `json:"estado,omitempty"`
	TipoSuelo       entities.TipoSuelo    `json:"tipo_suelo,omitempty"`
	PhSuelo         *float64              `json:"ph_suelo,omitempty"`
	Topografia      entities.Topografia   `json:"topografia,omitempty"`
	SistemaRiego    entities.SistemaRiego `json:"sistema_riego,omitempty"`
	TieneCerca      bool                  `json:"tiene_cerca"`
	TieneSombra     bool                  `json:"tiene_sombra"`
	AccesoVehicular bool                  `json:"acceso_vehicular"`
	Notas           string                `json:"notas,omitempty"`
	Coordenadas     []entities.Coordenada `json:"coordenadas"`
}

type UpdateLote struct {
	Codigo          *string                `json:"codigo,omitempty"`
	Nombre          *string                `json:"nombre,omitempty"`
	Descripcion     *string                `json:"descripcion,omitempty"`
	AreaHectareas   *float64               `json:"area_hectareas,omitempty"`
	PerimetroMetros *float64               `json:"perimetro_metros,omitempty"`
	AltitudMsnm     *float64               `json:"altitud_msnm,omitempty"`
	CultivoID       *uint                  `json:"cultivo_id,omitempty"`
	Estado          *entities.EstadoLote   `json:"estado,omitempty"`
	TipoSuelo       *entities.TipoSuelo    `json:"tipo_suelo,omitempty"`
	PhSuelo         *float64               `json:"ph_suelo,omitempty"`
	Topografia      *entities.Topografia   `json:"topografia,omitempty"`
	SistemaRiego    *entities.SistemaRiego `json:"sistema_riego,omitempty"`
	TieneCerca      *bool                  `json:"tiene_cerca,omitempty"`
	TieneSombra     *bool                  `json:"tiene_sombra,omitempty"`
	AccesoVehicular *bool                  `json:"acceso_vehicular,omitempty"`
	Notas           *string                `json:"notas,omitempty"`
	Coordenadas     *[]entities.Coordenada `json:"coordenadas,omitempty"`
}

type LoteSvc struct{ repo repository.LoteRepository }

func NewLoteService(repo repository.LoteRepository) *LoteSvc { return &LoteSvc{repo} }

func (s *LoteSvc) GetAll() ([]entities.Lote, error) { return s.repo.FindAll() }

func (s *LoteSvc) GetByID(id uint) (*entities.Lote, error) {
	l, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperrors.NotFound("Lote", id)
	}
	return l, nil
}

func (s *LoteSvc) Create(data CreateLote) (*entities.Lote, error) {
	if strings.TrimSpace(data.Codigo) == "" {
		return nil, apperrors.Validation("El código del lote es requerido")
	}
	if strings.TrimSpace(data.Nombre) == "" {
		return nil, apperrors.Validation("El nombre del lote es requerido")
	}
	if data.AreaHectareas <= 0 {
		return nil, apperrors.Validation("El área debe ser mayor a 0")
	}
	existente, err := s.repo.FindByCodigo(data.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, apperrors.Validation("Ya existe un lote con el código %s", data.Codigo)
	}

	estado := data.Estado
	if estado == "" {
		estado = entities.LoteEnCrecimiento
	}
	l := &entities.Lote{
		Codigo:          data.Codigo,
		Nombre:          data.Nombre,
		Descripcion:     data.Descripcion,
		AreaHectareas:   data.AreaHectareas,
		PerimetroMetros: data.PerimetroMetros,
		AltitudMsnm:     data.AltitudMsnm,
		CultivoID:       data.CultivoID,
		Estado:          estado,
		TipoSuelo:       data.TipoSuelo,
		PhSuelo:         data.PhSuelo,
		Topografia:      data.Topografia,
		SistemaRiego:    data.SistemaRiego,
		TieneCerca:      data.TieneCerca,
		TieneSombra:     data.TieneSombra,
		AccesoVehicular: data.AccesoVehicular,
		Notas:           data.Notas,
		Coordenadas:     data.Coordenadas,
	}
	if err := s.repo.Create(l); err != nil {
		return nil, err
	}
	return s.GetByID(l.ID)
}

func (s *LoteSvc) Update(id uint, data UpdateLote) (*entities.Lote, error) {
	exists, err := s.repo.Exists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("Lote", id)
	}
	if data.Nombre != nil && strings.TrimSpace(*data.Nombre) == "" {
		return nil, apperrors.Validation("El nombre no puede estar vacío")
	}
	if data.AreaHectareas != nil && *data.AreaHectareas <= 0 {
		return nil, apperrors.Validation("El área debe ser mayor a 0")
	}
	if data.Codigo != nil {
		existente, err := s.repo.FindByCodigo(*data.Codigo)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != id {
			return nil, apperrors.Validation("Ya existe un lote con el código %s", *data.Codigo)
		}
	}

	campos := map[string]any{}
	if data.Codigo != nil {
		campos["codigo"] = *data.Codigo
	}
	if data.Nombre != nil {
		campos["nombre"] = *data.Nombre
	}
	if data.Descripcion != nil {
		campos["descripcion"] = *data.Descripcion
	}
	if data.AreaHectareas != nil {
		campos["area_hectareas"] = *data.AreaHectareas
	}
	if data.PerimetroMetros != nil {
		campos["perimetro_metros"] = *data.PerimetroMetros
	}
	if data.AltitudMsnm != nil {
		campos["altitud_msnm"] = *data.AltitudMsnm
	}
	if data.CultivoID != nil {
		campos["cultivo_id"] = *data.CultivoID
	}
	if data.Estado != nil {
		campos["estado"] = *data.Estado
	}
	if data.TipoSuelo != nil {
		campos["tipo_suelo"] = *data.TipoSuelo
	}
	if data.PhSuelo != nil {
		campos["ph_suelo"] = *data.PhSuelo
	}
	if data.Topografia != nil {
		campos["topografia"] = *data.Topografia
	}
	if data.SistemaRiego != nil {
		campos["sistema_riego"] = *data.SistemaRiego
	}
	if data.TieneCerca != nil {
		campos["tiene_cerca"] = *data.TieneCerca
	}
	if data.TieneSombra != nil {
		campos["tiene_sombra"] = *data.TieneSombra
	}
	if data.AccesoVehicular != nil {
		campos["acceso_vehicular"] = *data.AccesoVehicular
	}
	if data.Notas != nil {
		campos["notas"] = *data.Notas
	}
	if data.Coordenadas != nil {
		// Updates con map no pasa por el serializer json del campo
		raw, err := json.Marshal(*data.Coordenadas)
		if err != nil {
			return nil, err
		}
		campos["coordenadas"] = string(raw)
	}
	if len(campos) > 0 {
		if _, err := s.repo.Update(id, campos); err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *LoteSvc) Delete(id uint) error {
	ok, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("Lote", id)
	}
	return nil
}
