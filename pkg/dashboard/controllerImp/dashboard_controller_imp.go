package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/pkg/dashboard/serviceImp"
)

type DashboardCtrl struct {
	service *serviceImp.DashboardSvc
}

func NewDashboardController(service *serviceImp.DashboardSvc) *DashboardCtrl {
	return &DashboardCtrl{service: service}
}

func (ctrl *DashboardCtrl) GetEstadisticas(c echo.Context) error {
	est, err := ctrl.service.EstadisticasGenerales()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error al obtener estadísticas"})
	}
	return c.JSON(http.StatusOK, est)
}

func (ctrl *DashboardCtrl) GetProduccionMensual(c echo.Context) error {
	datos, err := ctrl.service.ProduccionPorMes()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error al obtener producción mensual"})
	}
	return c.JSON(http.StatusOK, datos)
}

func (ctrl *DashboardCtrl) GetDistribucionCultivos(c echo.Context) error {
	datos, err := ctrl.service.DistribucionPorCultivo()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error al obtener distribución de cultivos"})
	}
	return c.JSON(http.StatusOK, datos)
}

func (ctrl *DashboardCtrl) GetLaboresPorDia(c echo.Context) error {
	datos, err := ctrl.service.LaboresPorDia()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error al obtener labores por día"})
	}
	return c.JSON(http.StatusOK, datos)
}

func (ctrl *DashboardCtrl) GetEstadoLotes(c echo.Context) error {
	datos, err := ctrl.service.EstadoDeLotes()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error al obtener estado de lotes"})
	}
	return c.JSON(http.StatusOK, datos)
}

func (ctrl *DashboardCtrl) GetRendimientoTrabajadores(c echo.Context) error {
	datos, err := ctrl.service.RendimientoPorTrabajador()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error al obtener rendimiento por trabajador"})
	}
	return c.JSON(http.StatusOK, datos)
}
