package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/planificacion/service"
	"github.com/Sebinhas/backPH/pkg/planificacion/types"
)

type PlanificacionCtrl struct{ svc service.PlanificacionService }

func New(svc service.PlanificacionService) *PlanificacionCtrl {
	return &PlanificacionCtrl{svc}
}

func (h *PlanificacionCtrl) GetAll(c echo.Context) error {
	actividades, err := h.svc.GetAllActividades()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, actividades)
}

func (h *PlanificacionCtrl) GetEstadisticas(c echo.Context) error {
	est, err := h.svc.GetEstadisticas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, est)
}

func (h *PlanificacionCtrl) GetByLote(c echo.Context) error {
	loteID, err := strconv.Atoi(c.Param("loteId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID de lote inválido"})
	}
	actividades, err := h.svc.GetActividadesPorLote(uint(loteID))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, actividades)
}

func (h *PlanificacionCtrl) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	actividad, err := h.svc.GetActividadByID(uint(id))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, actividad)
}

func (h *PlanificacionCtrl) Create(c echo.Context) error {
	var data types.CreateActividad
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	// id del usuario autenticado, o nil si no hay sesión
	var userID *uint
	if uid, ok := c.Get("uid").(uint); ok {
		userID = &uid
	}

	actividad, err := h.svc.CreateActividad(data, userID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusCreated, actividad)
}

func (h *PlanificacionCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	var data types.UpdateActividad
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	actividad, err := h.svc.UpdateActividad(uint(id), data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, actividad)
}

func (h *PlanificacionCtrl) UpdateProgreso(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	var data types.UpdateProgreso
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	actividad, err := h.svc.UpdateProgreso(uint(id), data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, actividad)
}

func (h *PlanificacionCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	if err := h.svc.DeleteActividad(uint(id)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Actividad eliminada correctamente"})
}

// responderError distingue los errores de dominio por tipo, no por texto.
func responderError(c echo.Context, err error) error {
	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": notFound.Error()})
	}
	var validation *apperrors.ValidationError
	if errors.As(err, &validation) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": validation.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
}
