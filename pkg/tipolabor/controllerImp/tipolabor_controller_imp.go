package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/tipolabor/repositoryImp"
)

type TipoLaborCtrl struct{ repo *repositoryImp.TipoLaborRepository }

func New(repo *repositoryImp.TipoLaborRepository) *TipoLaborCtrl { return &TipoLaborCtrl{repo} }

func (h *TipoLaborCtrl) GetAll(c echo.Context) error {
	out, err := h.repo.FindAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TipoLaborCtrl) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	t, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if t == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Tipo de labor no encontrado"})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TipoLaborCtrl) Create(c echo.Context) error {
	var body struct {
		Nombre      string `json:"nombre"`
		Descripcion string `json:"descripcion"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	if strings.TrimSpace(body.Nombre) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "El nombre es requerido"})
	}
	t := &entities.TipoLabor{Nombre: body.Nombre, Descripcion: body.Descripcion, Activo: true}
	if err := h.repo.Create(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TipoLaborCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	var body struct {
		Nombre      *string `json:"nombre,omitempty"`
		Descripcion *string `json:"descripcion,omitempty"`
		Activo      *bool   `json:"activo,omitempty"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	campos := map[string]any{}
	if body.Nombre != nil {
		campos["nombre"] = *body.Nombre
	}
	if body.Descripcion != nil {
		campos["descripcion"] = *body.Descripcion
	}
	if body.Activo != nil {
		campos["activo"] = *body.Activo
	}
	if len(campos) > 0 {
		ok, err := h.repo.Update(uint(id), campos)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
		}
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Tipo de labor no encontrado"})
		}
	}
	t, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TipoLaborCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	ok, err := h.repo.Delete(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Tipo de labor no encontrado"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Tipo de labor desactivado correctamente"})
}
