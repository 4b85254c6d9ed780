package serviceImp

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/labor/repository"
)

var (
	fechaRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	horaRegex  = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// costo estimado: $0.5 por minuto trabajado
const costoPorMinuto = 0.5

type CreateLabor struct {
	Fecha                  string                          `json:"fecha"`
	Cultivo                string                          `json:"cultivo"`
	Lote                   string                          `json:"lote"`
	TrabajadorID           uint                            `json:"trabajador_id"`
	TipoLaborID            uint                            `json:"tipo_labor_id"`
	CantidadRecolectada    float64                         `json:"cantidad_recolectada"`
	UnidadMedida           entities.UnidadMedida           `json:"unidad_medida"`
	PesoTotal              float64                         `json:"peso_total"`
	HoraInicio             string                          `json:"hora_inicio"`
	HoraFin                string                          `json:"hora_fin"`
	UbicacionGPS           entities.UbicacionGPS           `json:"ubicacion_gps"`
	CondicionesClimaticas  *entities.CondicionesClimaticas `json:"condiciones_climaticas,omitempty"`
	HerramientasInsumos    []string                        `json:"herramientas_insumos,omitempty"`
	Observaciones          string                          `json:"observaciones,omitempty"`
	Fotos                  []string                        `json:"fotos,omitempty"`
	ActividadPlanificadaID *uint                           `json:"actividad_planificada_id,omitempty"`
}

type UpdateLabor struct {
	Fecha                  *string                         `json:"fecha,omitempty"`
	Cultivo                *string                         `json:"cultivo,omitempty"`
	Lote                   *string                         `json:"lote,omitempty"`
	TrabajadorID           *uint                           `json:"trabajador_id,omitempty"`
	TipoLaborID            *uint                           `json:"tipo_labor_id,omitempty"`
	CantidadRecolectada    *float64                        `json:"cantidad_recolectada,omitempty"`
	UnidadMedida           *entities.UnidadMedida          `json:"unidad_medida,omitempty"`
	PesoTotal              *float64                        `json:"peso_total,omitempty"`
	HoraInicio             *string                         `json:"hora_inicio,omitempty"`
	HoraFin                *string                         `json:"hora_fin,omitempty"`
	UbicacionGPS           *entities.UbicacionGPS          `json:"ubicacion_gps,omitempty"`
	CondicionesClimaticas  *entities.CondicionesClimaticas `json:"condiciones_climaticas,omitempty"`
	HerramientasInsumos    *[]string                       `json:"herramientas_insumos,omitempty"`
	Observaciones          *string                         `json:"observaciones,omitempty"`
	Estado                 *entities.EstadoLabor           `json:"estado,omitempty"`
	ActividadPlanificadaID *uint                           `json:"actividad_planificada_id,omitempty"`
}

type LaborSvc struct {
	repo repository.LaborRepository
	now  func() time.Time
}

func NewLaborService(repo repository.LaborRepository) *LaborSvc {
	return &LaborSvc{repo: repo, now: time.Now}
}

func (s *LaborSvc) WithClock(now func() time.Time) *LaborSvc {
	s.now = now
	return s
}

func (s *LaborSvc) GetAll() ([]entities.Labor, error) { return s.repo.FindAll() }

func (s *LaborSvc) GetByID(id uint) (*entities.Labor, error) {
	l, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperrors.NotFound("Labor", id)
	}
	return l, nil
}

func (s *LaborSvc) GetByDateRange(fechaInicio, fechaFin string) ([]entities.Labor, error) {
	if !fechaRegex.MatchString(fechaInicio) || !fechaRegex.MatchString(fechaFin) {
		return nil, apperrors.Validation("El formato de fecha debe ser YYYY-MM-DD")
	}
	return s.repo.FindByDateRange(fechaInicio, fechaFin)
}

func (s *LaborSvc) GetByTrabajador(trabajadorID uint) ([]entities.Labor, error) {
	return s.repo.FindByTrabajador(trabajadorID)
}

func (s *LaborSvc) Create(data CreateLabor) (*entities.Labor, error) {
	if err := s.validarCreate(data); err != nil {
		return nil, err
	}

	duracion, rendimiento, costo := calcularMetricas(data.HoraInicio, data.HoraFin, data.CantidadRecolectada)
	l := &entities.Labor{
		Fecha:                  data.Fecha,
		Cultivo:                data.Cultivo,
		Lote:                   data.Lote,
		TrabajadorID:           data.TrabajadorID,
		TipoLaborID:            data.TipoLaborID,
		CantidadRecolectada:    data.CantidadRecolectada,
		UnidadMedida:           data.UnidadMedida,
		PesoTotal:              data.PesoTotal,
		HoraInicio:             data.HoraInicio,
		HoraFin:                data.HoraFin,
		UbicacionGPS:           data.UbicacionGPS,
		CondicionesClimaticas:  data.CondicionesClimaticas,
		HerramientasInsumos:    data.HerramientasInsumos,
		Observaciones:          data.Observaciones,
		Fotos:                  data.Fotos,
		DuracionMinutos:        duracion,
		RendimientoPorHora:     rendimiento,
		CostoEstimado:          &costo,
		Estado:                 entities.LaborEnProceso,
		ActividadPlanificadaID: data.ActividadPlanificadaID,
	}
	if err := s.repo.Create(l); err != nil {
		return nil, err
	}
	return s.GetByID(l.ID)
}

func (s *LaborSvc) Update(id uint, data UpdateLabor) (*entities.Labor, error) {
	actual, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, apperrors.NotFound("Labor", id)
	}

	if data.Fecha != nil && !fechaRegex.MatchString(*data.Fecha) {
		return nil, apperrors.Validation("El formato de fecha debe ser YYYY-MM-DD")
	}
	if data.HoraInicio != nil && !horaRegex.MatchString(*data.HoraInicio) {
		return nil, apperrors.Validation("El formato de horas debe ser HH:mm")
	}
	if data.HoraFin != nil && !horaRegex.MatchString(*data.HoraFin) {
		return nil, apperrors.Validation("El formato de horas debe ser HH:mm")
	}

	campos := map[string]any{}
	if data.Fecha != nil {
		campos["fecha"] = *data.Fecha
	}
	if data.Cultivo != nil {
		campos["cultivo"] = *data.Cultivo
	}
	if data.Lote != nil {
		campos["lote"] = *data.Lote
	}
	if data.TrabajadorID != nil {
		campos["trabajador_id"] = *data.TrabajadorID
	}
	if data.TipoLaborID != nil {
		campos["tipo_labor_id"] = *data.TipoLaborID
	}
	if data.CantidadRecolectada != nil {
		campos["cantidad_recolectada"] = *data.CantidadRecolectada
	}
	if data.UnidadMedida != nil {
		campos["unidad_medida"] = *data.UnidadMedida
	}
	if data.PesoTotal != nil {
		campos["peso_total"] = *data.PesoTotal
	}
	if data.HoraInicio != nil {
		campos["hora_inicio"] = *data.HoraInicio
	}
	if data.HoraFin != nil {
		campos["hora_fin"] = *data.HoraFin
	}
	// Updates con map no pasa por el serializer json de estos campos
	if data.UbicacionGPS != nil {
		raw, err := json.Marshal(*data.UbicacionGPS)
		if err != nil {
			return nil, err
		}
		campos["ubicacion_gps"] = string(raw)
	}
	if data.CondicionesClimaticas != nil {
		raw, err := json.Marshal(*data.CondicionesClimaticas)
		if err != nil {
			return nil, err
		}
		campos["condiciones_climaticas"] = string(raw)
	}
	if data.HerramientasInsumos != nil {
		raw, err := json.Marshal(*data.HerramientasInsumos)
		if err != nil {
			return nil, err
		}
		campos["herramientas_insumos"] = string(raw)
	}
	if data.Observaciones != nil {
		campos["observaciones"] = *data.Observaciones
	}
	if data.Estado != nil {
		campos["estado"] = *data.Estado
	}
	if data.ActividadPlanificadaID != nil {
		campos["actividad_planificada_id"] = *data.ActividadPlanificadaID
	}

	// recalcular métricas cuando cambian horas o cantidad
	if data.HoraInicio != nil || data.HoraFin != nil || data.CantidadRecolectada != nil {
		horaInicio := actual.HoraInicio
		if data.HoraInicio != nil {
			horaInicio = *data.HoraInicio
		}
		horaFin := actual.HoraFin
		if data.HoraFin != nil {
			horaFin = *data.HoraFin
		}
		cantidad := actual.CantidadRecolectada
		if data.CantidadRecolectada != nil {
			cantidad = *data.CantidadRecolectada
		}
		if minutos(horaFin) <= minutos(horaInicio) {
			return nil, apperrors.Validation("La hora de fin debe ser posterior a la hora de inicio")
		}
		duracion, rendimiento, costo := calcularMetricas(horaInicio, horaFin, cantidad)
		campos["duracion_minutos"] = duracion
		campos["rendimiento_por_hora"] = rendimiento
		campos["costo_estimado"] = costo
	}

	if len(campos) > 0 {
		if _, err := s.repo.Update(id, campos); err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *LaborSvc) Delete(id uint) error {
	ok, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("Labor", id)
	}
	return nil
}

func (s *LaborSvc) validarCreate(data CreateLabor) error {
	if strings.TrimSpace(data.Fecha) == "" {
		return apperrors.Validation("La fecha es requerida")
	}
	if strings.TrimSpace(data.Cultivo) == "" {
		return apperrors.Validation("El cultivo es requerido")
	}
	if strings.TrimSpace(data.Lote) == "" {
		return apperrors.Validation("El lote es requerido")
	}
	if data.TrabajadorID == 0 {
		return apperrors.Validation("El trabajador es requerido")
	}
	if data.TipoLaborID == 0 {
		return apperrors.Validation("El tipo de labor es requerido")
	}
	if data.CantidadRecolectada < 0 {
		return apperrors.Validation("La cantidad recolectada no puede ser negativa")
	}
	if data.PesoTotal < 0 {
		return apperrors.Validation("El peso total no puede ser negativo")
	}
	if !fechaRegex.MatchString(data.Fecha) {
		return apperrors.Validation("El formato de fecha debe ser YYYY-MM-DD")
	}

	hoy := s.now().Format("2006-01-02")
	if data.Fecha > hoy {
		return apperrors.Validation("La fecha de labor no puede ser futura")
	}

	if !horaRegex.MatchString(data.HoraInicio) || !horaRegex.MatchString(data.HoraFin) {
		return apperrors.Validation("El formato de horas debe ser HH:mm")
	}
	if minutos(data.HoraFin) <= minutos(data.HoraInicio) {
		return apperrors.Validation("La hora de fin debe ser posterior a la hora de inicio")
	}

	if data.UbicacionGPS.Latitud < -90 || data.UbicacionGPS.Latitud > 90 {
		return apperrors.Validation("La latitud debe estar entre -90 y 90")
	}
	if data.UbicacionGPS.Longitud < -180 || data.UbicacionGPS.Longitud > 180 {
		return apperrors.Validation("La longitud debe estar entre -180 y 180")
	}

	if cc := data.CondicionesClimaticas; cc != nil && cc.Humedad != nil {
		if *cc.Humedad < 0 || *cc.Humedad > 100 {
			return apperrors.Validation("La humedad debe estar entre 0 y 100")
		}
	}
	return nil
}

func minutos(hora string) int {
	partes := strings.SplitN(hora, ":", 2)
	h, _ := strconv.Atoi(partes[0])
	m, _ := strconv.Atoi(partes[1])
	return h*60 + m
}

func calcularMetricas(horaInicio, horaFin string, cantidad float64) (duracionMinutos int, rendimientoPorHora, costoEstimado float64) {
	duracionMinutos = minutos(horaFin) - minutos(horaInicio)
	horas := float64(duracionMinutos) / 60
	if horas > 0 {
		rendimientoPorHora = math.Round(cantidad/horas*100) / 100
	}
	costoEstimado = math.Round(float64(duracionMinutos)*costoPorMinuto*100) / 100
	return duracionMinutos, rendimientoPorHora, costoEstimado
}
