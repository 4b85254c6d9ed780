package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/trabajador/serviceImp"
)

type TrabajadorCtrl struct{ svc *serviceImp.TrabajadorSvc }

func New(svc *serviceImp.TrabajadorSvc) *TrabajadorCtrl { return &TrabajadorCtrl{svc} }

func (h *TrabajadorCtrl) GetAll(c echo.Context) error {
	// ?q= busca por nombres, apellidos, email, documento o cargo
	out, err := h.svc.Search(c.QueryParam("q"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TrabajadorCtrl) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	t, err := h.svc.GetByID(uint(id))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TrabajadorCtrl) Create(c echo.Context) error {
	var data serviceImp.CreateTrabajador
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	t, err := h.svc.Create(data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TrabajadorCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	var data serviceImp.UpdateTrabajador
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	t, err := h.svc.Update(uint(id), data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TrabajadorCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Trabajador eliminado correctamente"})
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
