package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/lote/serviceImp"
)

type LoteCtrl struct{ svc *serviceImp.LoteSvc }

func New(svc *serviceImp.LoteSvc) *LoteCtrl { return &LoteCtrl{svc} }

func (h *LoteCtrl) GetAll(c echo.Context) error {
	lotes, err := h.svc.GetAll()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, lotes)
}

func (h *LoteCtrl) GetByID(c echo.Context) error {
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

func (h *LoteCtrl) Create(c echo.Context) error {
	var data serviceImp.CreateLote
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	l, err := h.svc.Create(data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LoteCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	var data serviceImp.UpdateLote
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	l, err := h.svc.Update(uint(id), data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoteCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Lote eliminado correctamente"})
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
