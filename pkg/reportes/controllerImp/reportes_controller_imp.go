package controllerImp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/reportes/serviceImp"
)

type ReportesCtrl struct {
	service *serviceImp.ReportesSvc
}

func NewReportesController(service *serviceImp.ReportesSvc) *ReportesCtrl {
	return &ReportesCtrl{service: service}
}

func (ctrl *ReportesCtrl) GetReporteLabores(c echo.Context) error {
	reporte, err := ctrl.service.ReporteLabores(c.QueryParam("desde"), c.QueryParam("hasta"))
	if err != nil {
		return responderError(c, err)
	}
	return descargar(c, reporte)
}

func (ctrl *ReportesCtrl) GetReporteActividades(c echo.Context) error {
	reporte, err := ctrl.service.ReporteActividades(c.QueryParam("desde"), c.QueryParam("hasta"))
	if err != nil {
		return responderError(c, err)
	}
	return descargar(c, reporte)
}

func descargar(c echo.Context, r *serviceImp.Reporte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, r.Nombre))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Contenido)
}

func responderError(c echo.Context, err error) error {
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": valErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error al generar el reporte"})
}
