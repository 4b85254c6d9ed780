package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/usuario/serviceImp"
)

type UsuarioCtrl struct{ svc *serviceImp.UsuarioSvc }

func New(svc *serviceImp.UsuarioSvc) *UsuarioCtrl { return &UsuarioCtrl{svc} }

func (h *UsuarioCtrl) GetAll(c echo.Context) error {
	out, err := h.svc.GetAll()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UsuarioCtrl) GetEstadisticas(c echo.Context) error {
	est, err := h.svc.GetEstadisticas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, est)
}

func (h *UsuarioCtrl) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	u, err := h.svc.GetByID(uint(id))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UsuarioCtrl) Create(c echo.Context) error {
	var data serviceImp.CreateUsuario
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	u, err := h.svc.Create(data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *UsuarioCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	var data serviceImp.UpdateUsuario
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	u, err := h.svc.Update(uint(id), data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UsuarioCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Usuario eliminado correctamente"})
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
