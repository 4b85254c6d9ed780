package serviceImp

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/pkg/apperrors"
)

// Reporte es un libro xlsx ya serializado listo para descargar.
type Reporte struct {
	Nombre    string
	Contenido []byte
}

type ReportesSvc struct{ db *gorm.DB }

func NewReportesService(db *gorm.DB) *ReportesSvc { return &ReportesSvc{db} }

// ReporteLabores exporta las labores registradas entre dos fechas (YYYY-MM-DD,
// ambas inclusive) a una hoja de cálculo.
func (s *ReportesSvc) ReporteLabores(desde, hasta string) (*Reporte, error) {
	if desde == "" || hasta == "" {
		return nil, apperrors.Validation("Los parámetros desde y hasta son obligatorios")
	}
	if desde > hasta {
		return nil, apperrors.Validation("La fecha desde no puede ser posterior a hasta")
	}

	type fila struct {
		ID                  uint
		Fecha               string
		Cultivo             string
		Lote                string
		TrabajadorNombre    string
		TipoLaborNombre     string
		CantidadRecolectada float64
		UnidadMedida        string
		PesoTotal           float64
		HoraInicio          string
		HoraFin             string
		DuracionMinutos     int
		RendimientoPorHora  float64
		Estado              string
	}
	var filas []fila
	err := s.db.Raw(`
		SELECT l.id, l.fecha, l.cultivo, l.lote,
		       COALESCE(t.nombres || ' ' || t.apellidos, '') AS trabajador_nombre,
		       COALESCE(tl.nombre, '') AS tipo_labor_nombre,
		       l.cantidad_recolectada, l.unidad_medida, l.peso_total,
		       l.hora_inicio, l.hora_fin, l.duracion_minutos,
		       l.rendimiento_por_hora, l.estado
		FROM labores l
		LEFT JOIN trabajadores t ON l.trabajador_id = t.id
		LEFT JOIN tipos_labor tl ON l.tipo_labor_id = tl.id
		WHERE l.fecha BETWEEN ? AND ?
		ORDER BY l.fecha ASC, l.id ASC`, desde, hasta).Scan(&filas).Error
	if err != nil {
		return nil, err
	}

	x := excelize.NewFile()
	defer x.Close()
	hoja := "Labores"
	x.SetSheetName("Sheet1", hoja)

	encabezados := []string{
		"ID", "Fecha", "Cultivo", "Lote", "Trabajador", "Tipo de labor",
		"Cantidad", "Unidad", "Peso total", "Hora inicio", "Hora fin",
		"Duración (min)", "Rendimiento/h", "Estado",
	}
	for i, h := range encabezados {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		x.SetCellValue(hoja, celda, h)
	}
	for i, f := range filas {
		valores := []interface{}{
			f.ID, f.Fecha, f.Cultivo, f.Lote, f.TrabajadorNombre, f.TipoLaborNombre,
			f.CantidadRecolectada, f.UnidadMedida, f.PesoTotal,
			f.HoraInicio, f.HoraFin, f.DuracionMinutos, f.RendimientoPorHora,
			f.Estado,
		}
		for j, v := range valores {
			celda, _ := excelize.CoordinatesToCellName(j+1, i+2)
			x.SetCellValue(hoja, celda, v)
		}
	}

	return serializar(x, "labores")
}

// ReporteActividades exporta las actividades planificadas cuya fecha de inicio
// planificada cae en el rango dado.
func (s *ReportesSvc) ReporteActividades(desde, hasta string) (*Reporte, error) {
	if desde == "" || hasta == "" {
		return nil, apperrors.Validation("Los parámetros desde y hasta son obligatorios")
	}
	if desde > hasta {
		return nil, apperrors.Validation("La fecha desde no puede ser posterior a hasta")
	}

	type fila struct {
		ID                     uint
		Nombre                 string
		Tipo                   string
		LoteNombre             string
		CultivoNombre          string
		ResponsableNombre      string
		FechaInicioPlanificada time.Time
		FechaFinPlanificada    time.Time
		Estado                 string
		Prioridad              string
		ProgresoPorcentaje     float64
		DuracionEstimadaHoras  float64
		DesviacionTiempoDias   int
	}
	var filas []fila
	err := s.db.Raw(`
		SELECT a.id, a.nombre, a.tipo,
		       COALESCE(l.nombre, '') AS lote_nombre,
		       COALESCE(c.nombre, '') AS cultivo_nombre,
		       COALESCE(u.nombre, '') AS responsable_nombre,
		       a.fecha_inicio_planificada, a.fecha_fin_planificada,
		       a.estado, a.prioridad, a.progreso_porcentaje,
		       a.duracion_estimada_horas, a.desviacion_tiempo_dias
		FROM actividades_planificadas a
		LEFT JOIN lotes l ON a.lote_id = l.id
		LEFT JOIN cultivos c ON a.cultivo_id = c.id
		LEFT JOIN usuarios u ON a.responsable_id = u.id
		WHERE date(a.fecha_inicio_planificada) BETWEEN ? AND ?
		ORDER BY a.fecha_inicio_planificada ASC, a.id ASC`, desde, hasta).Scan(&filas).Error
	if err != nil {
		return nil, err
	}

	x := excelize.NewFile()
	defer x.Close()
	hoja := "Actividades"
	x.SetSheetName("Sheet1", hoja)

	encabezados := []string{
		"ID", "Nombre", "Tipo", "Lote", "Cultivo", "Responsable",
		"Inicio planificado", "Fin planificado", "Estado", "Prioridad",
		"Progreso (%)", "Duración (h)", "Desviación (días)",
	}
	for i, h := range encabezados {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		x.SetCellValue(hoja, celda, h)
	}
	for i, f := range filas {
		valores := []interface{}{
			f.ID, f.Nombre, f.Tipo, f.LoteNombre, f.CultivoNombre,
			f.ResponsableNombre,
			f.FechaInicioPlanificada.Format("2006-01-02"),
			f.FechaFinPlanificada.Format("2006-01-02"),
			f.Estado, f.Prioridad,
			f.ProgresoPorcentaje, f.DuracionEstimadaHoras, f.DesviacionTiempoDias,
		}
		for j, v := range valores {
			celda, _ := excelize.CoordinatesToCellName(j+1, i+2)
			x.SetCellValue(hoja, celda, v)
		}
	}

	return serializar(x, "actividades")
}

func serializar(x *excelize.File, prefijo string) (*Reporte, error) {
	var buf bytes.Buffer
	if err := x.Write(&buf); err != nil {
		return nil, err
	}
	return &Reporte{
		Nombre:    fmt.Sprintf("reporte_%s_%s.xlsx", prefijo, uuid.NewString()),
		Contenido: buf.Bytes(),
	}, nil
}
