package serviceImp

import (
	"strings"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/trabajador/repository"
)

type CreateTrabajador struct {
	Nombres       string                 `json:"nombres"`
	Apellidos     string                 `json:"apellidos"`
	Documento     string                 `json:"documento"`
	TipoDocumento entities.TipoDocumento `json:"tipo_documento"`
	Telefono      string                 `json:"telefono"`
	Email         string                 `json:"email"`
	Cargo         string                 `json:"cargo"`
	FechaIngreso  string                 `json:"fecha_ingreso"`
	Direccion     string                 `json:"direccion"`
}

type UpdateTrabajador struct {
	Nombres       *string                    `json:"nombres,omitempty"`
	Apellidos     *string                    `json:"apellidos,omitempty"`
	Documento     *string                    `json:"documento,omitempty"`
	TipoDocumento *entities.TipoDocumento    `json:"tipo_documento,omitempty"`
	Telefono      *string                    `json:"telefono,omitempty"`
	Email         *string                    `json:"email,omitempty"`
	Cargo         *string                    `json:"cargo,omitempty"`
	FechaIngreso  *string                    `json:"fecha_ingreso,omitempty"`
	Estado        *entities.EstadoTrabajador `json:"estado,omitempty"`
	Direccion     *string                    `json:"direccion,omitempty"`
}

type TrabajadorSvc struct{ repo repository.TrabajadorRepository }

func NewTrabajadorService(repo repository.TrabajadorRepository) *TrabajadorSvc {
	return &TrabajadorSvc{repo}
}

func (s *TrabajadorSvc) GetAll() ([]entities.Trabajador, error) { return s.repo.FindAll() }

func (s *TrabajadorSvc) Search(query string) ([]entities.Trabajador, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.FindAll()
	}
	return s.repo.Search(query)
}

func (s *TrabajadorSvc) GetByID(id uint) (*entities.Trabajador, error) {
	t, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperrors.NotFound("Trabajador", id)
	}
	return t, nil
}

func (s *TrabajadorSvc) Create(data CreateTrabajador) (*entities.Trabajador, error) {
	if strings.TrimSpace(data.Nombres) == "" || strings.TrimSpace(data.Apellidos) == "" {
		return nil, apperrors.Validation("Nombres y apellidos son requeridos")
	}
	if strings.TrimSpace(data.Documento) == "" {
		return nil, apperrors.Validation("El documento es requerido")
	}
	existente, err := s.repo.FindByDocumento(data.Documento)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, apperrors.Validation("Ya existe un trabajador con el documento %s", data.Documento)
	}

	t := &entities.Trabajador{
		Nombres:       data.Nombres,
		Apellidos:     data.Apellidos,
		Documento:     data.Documento,
		TipoDocumento: data.TipoDocumento,
		Telefono:      data.Telefono,
		Email:         data.Email,
		Cargo:         data.Cargo,
		FechaIngreso:  data.FechaIngreso,
		Estado:        entities.TrabajadorActivo,
		Direccion:     data.Direccion,
	}
	if err := s.repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TrabajadorSvc) Update(id uint, data UpdateTrabajador) (*entities.Trabajador, error) {
	exists, err := s.repo.Exists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("Trabajador", id)
	}
	if data.Documento != nil {
		existente, err := s.repo.FindByDocumento(*data.Documento)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != id {
			return nil, apperrors.Validation("Ya existe un trabajador con el documento %s", *data.Documento)
		}
	}

	campos := map[string]any{}
	if data.Nombres != nil {
		campos["nombres"] = *data.Nombres
	}
	if data.Apellidos != nil {
		campos["apellidos"] = *data.Apellidos
	}
	if data.Documento != nil {
		campos["documento"] = *data.Documento
	}
	if data.TipoDocumento != nil {
		campos["tipo_documento"] = *data.TipoDocumento
	}
	if data.Telefono != nil {
		campos["telefono"] = *data.Telefono
	}
	if data.Email != nil {
		campos["email"] = *data.Email
	}
	if data.Cargo != nil {
		campos["cargo"] = *data.Cargo
	}
	if data.FechaIngreso != nil {
		campos["fecha_ingreso"] = *data.FechaIngreso
	}
	if data.Estado != nil {
		campos["estado"] = *data.Estado
	}
	if data.Direccion != nil {
		campos["direccion"] = *data.Direccion
	}
	if len(campos) > 0 {
		if _, err := s.repo.Update(id, campos); err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *TrabajadorSvc) Delete(id uint) error {
	ok, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("Trabajador", id)
	}
	return nil
}
