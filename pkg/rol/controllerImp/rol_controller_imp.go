package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/rol/repositoryImp"
)

// límite de roles del catálogo
const maxRoles = 100

type RolCtrl struct{ repo *repositoryImp.RolRepository }

func New(repo *repositoryImp.RolRepository) *RolCtrl { return &RolCtrl{repo} }

func (h *RolCtrl) GetAll(c echo.Context) error {
	out, err := h.repo.FindAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RolCtrl) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	rol, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if rol == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Rol no encontrado"})
	}
	return c.JSON(http.StatusOK, rol)
}

func (h *RolCtrl) Create(c echo.Context) error {
	var body struct {
		Nombre string `json:"nombre"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	nombre := strings.TrimSpace(body.Nombre)
	if msg := validarNombre(nombre); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg})
	}
	existente, err := h.repo.FindByNombre(nombre)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if existente != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Ya existe un rol con ese nombre"})
	}
	total, err := h.repo.Count()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if total >= maxRoles {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Se ha alcanzado el límite máximo de roles (100)"})
	}

	rol := &entities.Rol{Nombre: nombre}
	if err := h.repo.Create(rol); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, rol)
}

func (h *RolCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	var body struct {
		Nombre *string `json:"nombre,omitempty"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	campos := map[string]any{}
	if body.Nombre != nil {
		nombre := strings.TrimSpace(*body.Nombre)
		if msg := validarNombre(nombre); msg != "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": msg})
		}
		existente, err := h.repo.FindByNombre(nombre)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
		}
		if existente != nil && existente.ID != uint(id) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Ya existe un rol con ese nombre"})
		}
		campos["nombre"] = nombre
	}
	if len(campos) > 0 {
		ok, err := h.repo.Update(uint(id), campos)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
		}
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Rol no encontrado"})
		}
	}
	rol, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if rol == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Rol no encontrado"})
	}
	return c.JSON(http.StatusOK, rol)
}

func (h *RolCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	ok, err := h.repo.Delete(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Rol no encontrado"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Rol eliminado correctamente"})
}

func validarNombre(nombre string) string {
	if len(nombre) < 3 {
		return "El nombre del rol debe tener al menos 3 caracteres"
	}
	if len(nombre) > 50 {
		return "El nombre del rol no puede exceder 50 caracteres"
	}
	return ""
}
