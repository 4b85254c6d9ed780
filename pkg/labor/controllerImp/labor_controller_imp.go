package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/labor/serviceImp"
)

type LaborCtrl struct{ svc *serviceImp.LaborSvc }

func New(svc *serviceImp.LaborSvc) *LaborCtrl { return &LaborCtrl{svc} }

func (h *LaborCtrl) GetAll(c echo.Context) error {
	desde := c.QueryParam("desde")
	hasta := c.QueryParam("hasta")
	if desde != "" && hasta != "" {
		out, err := h.svc.GetByDateRange(desde, hasta)
		if err != nil {
			return responderError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}
	if q := c.QueryParam("trabajador_id"); q != "" {
		tid, err := strconv.Atoi(q)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID de trabajador inválido"})
		}
		out, err := h.svc.GetByTrabajador(uint(tid))
		if err != nil {
			return responderError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}
	out, err := h.svc.GetAll()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LaborCtrl) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	l, err := h.svc.GetByID(uint(id))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LaborCtrl) Create(c echo.Context) error {
	var data serviceImp.CreateLabor
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	l, err := h.svc.Create(data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LaborCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	var data serviceImp.UpdateLabor
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	l, err := h.svc.Update(uint(id), data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LaborCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Labor eliminada correctamente"})
}

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
