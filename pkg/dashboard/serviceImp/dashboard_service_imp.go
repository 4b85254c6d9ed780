package serviceImp

import (
	"gorm.io/gorm"
)

type EstadisticasGenerales struct {
	TotalArea           float64 `json:"total_area"`
	CamposActivos       int64   `json:"campos_activos"`
	CultivosEnProceso   int64   `json:"cultivos_en_proceso"`
	TotalProduccion     float64 `json:"total_produccion"`
	EficienciaPromedio  float64 `json:"eficiencia_promedio"`
	RendimientoPromedio float64 `json:"rendimiento_promedio"`
	VariacionMensual    float64 `json:"variacion_mensual"`
}

type ProduccionMensual struct {
	Mes        string  `json:"mes"`
	Produccion float64 `json:"produccion"`
}

type DistribucionCultivo struct {
	Cultivo string  `json:"cultivo"`
	Area    float64 `json:"area"`
	Lotes   int64   `json:"lotes"`
}

type LaborDiaria struct {
	Fecha   string `json:"fecha"`
	Labores int64  `json:"labores"`
}

type EstadoLotes struct {
	Estado string `json:"estado"`
	Total  int64  `json:"total"`
}

type RendimientoTrabajador struct {
	TrabajadorID uint    `json:"trabajador_id"`
	Nombre       string  `json:"nombre"`
	Labores      int64   `json:"labores"`
	PesoTotal    float64 `json:"peso_total"`
	Rendimiento  float64 `json:"rendimiento_promedio"`
}

type DashboardSvc struct{ db *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardSvc { return &DashboardSvc{db} }

func (s *DashboardSvc) EstadisticasGenerales() (*EstadisticasGenerales, error) {
	var fila struct {
		TotalArea          float64
		CamposActivos      int64
		CultivosEnProceso  int64
		TotalProduccion    float64
		EficienciaPromedio float64
		MesActual          float64
		MesAnterior        float64
	}
	err := s.db.Raw(`
		SELECT
			COALESCE(SUM(l.area_hectareas), 0) AS total_area,
			COUNT(DISTINCT l.id) AS campos_activos,
			COUNT(DISTINCT l.cultivo_id) AS cultivos_en_proceso,
			COALESCE((SELECT SUM(peso_total) FROM labores
				WHERE estado = 'completada'
				AND strftime('%Y-%m', fecha) = strftime('%Y-%m', 'now')), 0) AS total_produccion,
			COALESCE((SELECT AVG(rendimiento_por_hora) FROM labores
				WHERE estado = 'completada'
				AND strftime('%Y-%m', fecha) = strftime('%Y-%m', 'now')), 0) AS eficiencia_promedio,
			COALESCE((SELECT SUM(peso_total) FROM labores
				WHERE estado = 'completada'
				AND strftime('%Y-%m', fecha) = strftime('%Y-%m', 'now')), 0) AS mes_actual,
			COALESCE((SELECT SUM(peso_total) FROM labores
				WHERE estado = 'completada'
				AND strftime('%Y-%m', fecha) = strftime('%Y-%m', 'now', '-1 month')), 0) AS mes_anterior
		FROM lotes l
		WHERE l.estado != 'INACTIVO'`).Scan(&fila).Error
	if err != nil {
		return nil, err
	}

	est := &EstadisticasGenerales{
		TotalArea:          fila.TotalArea,
		CamposActivos:      fila.CamposActivos,
		CultivosEnProceso:  fila.CultivosEnProceso,
		TotalProduccion:    fila.TotalProduccion,
		EficienciaPromedio: fila.EficienciaPromedio,
	}
	if fila.TotalArea > 0 {
		est.RendimientoPromedio = fila.TotalProduccion / fila.TotalArea
	}
	if fila.MesAnterior > 0 {
		est.VariacionMensual = (fila.MesActual - fila.MesAnterior) / fila.MesAnterior * 100
	}
	return est, nil
}

// ProduccionPorMes agrega el peso recolectado de labores completadas de los
// últimos seis meses.
func (s *DashboardSvc) ProduccionPorMes() ([]ProduccionMensual, error) {
	var out []ProduccionMensual
	err := s.db.Raw(`
		SELECT strftime('%Y-%m', fecha) AS mes,
		       COALESCE(SUM(peso_total), 0) AS produccion
		FROM labores
		WHERE estado = 'completada'
		AND fecha >= date('now', '-6 months')
		GROUP BY mes
		ORDER BY mes ASC`).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DashboardSvc) DistribucionPorCultivo() ([]DistribucionCultivo, error) {
	var out []DistribucionCultivo
	err := s.db.Raw(`
		SELECT COALESCE(c.nombre, 'Sin cultivo') AS cultivo,
		       COALESCE(SUM(l.area_hectareas), 0) AS area,
		       COUNT(l.id) AS lotes
		FROM lotes l
		LEFT JOIN cultivos c ON l.cultivo_id = c.id
		WHERE l.estado != 'INACTIVO'
		GROUP BY c.nombre
		ORDER BY area DESC`).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DashboardSvc) LaboresPorDia() ([]LaborDiaria, error) {
	var out []LaborDiaria
	err := s.db.Raw(`
		SELECT fecha, COUNT(*) AS labores
		FROM labores
		WHERE fecha >= date('now', '-30 days')
		GROUP BY fecha
		ORDER BY fecha ASC`).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DashboardSvc) EstadoDeLotes() ([]EstadoLotes, error) {
	var out []EstadoLotes
	err := s.db.Raw(`
		SELECT estado, COUNT(*) AS total
		FROM lotes
		GROUP BY estado
		ORDER BY total DESC`).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DashboardSvc) RendimientoPorTrabajador() ([]RendimientoTrabajador, error) {
	var out []RendimientoTrabajador
	err := s.db.Raw(`
		SELECT t.id AS trabajador_id,
		       t.nombres || ' ' || t.apellidos AS nombre,
		       COUNT(l.id) AS labores,
		       COALESCE(SUM(l.peso_total), 0) AS peso_total,
		       COALESCE(AVG(l.rendimiento_por_hora), 0) AS rendimiento
		FROM trabajadores t
		LEFT JOIN labores l ON l.trabajador_id = t.id AND l.estado = 'completada'
		GROUP BY t.id
		ORDER BY peso_total DESC`).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
