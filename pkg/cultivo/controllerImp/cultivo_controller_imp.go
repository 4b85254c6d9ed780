package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/cultivo/repository"
)

type CultivoCtrl struct{ repo repository.CultivoRepository }

func New(repo repository.CultivoRepository) *CultivoCtrl { return &CultivoCtrl{repo} }

type createReq struct {
	Nombre           string               `json:"nombre"`
	NombreCientifico string               `json:"nombre_cientifico"`
	Tipo             entities.TipoCultivo `json:"tipo"`
	CicloDias        int                  `json:"ciclo_dias"`
	Descripcion      string               `json:"descripcion"`
}

type updateReq struct {
	Nombre           *string               `json:"nombre,omitempty"`
	NombreCientifico *string               `json:"nombre_cientifico,omitempty"`
	Tipo             *entities.TipoCultivo `json:"tipo,omitempty"`
	CicloDias        *int                  `json:"ciclo_dias,omitempty"`
	Descripcion      *string               `json:"descripcion,omitempty"`
	Activo           *bool                 `json:"activo,omitempty"`
}

func (h *CultivoCtrl) GetAll(c echo.Context) error {
	// ?activos=true limita a cultivos activos
	if c.QueryParam("activos") == "true" {
		out, err := h.repo.FindActive()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	out, err := h.repo.FindAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CultivoCtrl) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	cultivo, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if cultivo == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Cultivo no encontrado"})
	}
	return c.JSON(http.StatusOK, cultivo)
}

func (h *CultivoCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	if strings.TrimSpace(req.Nombre) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "El nombre del cultivo es requerido"})
	}
	if req.CicloDias <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "El ciclo en días debe ser mayor a 0"})
	}
	cultivo := &entities.Cultivo{
		Nombre:           req.Nombre,
		NombreCientifico: req.NombreCientifico,
		Tipo:             req.Tipo,
		CicloDias:        req.CicloDias,
		Descripcion:      req.Descripcion,
		Activo:           true,
	}
	if err := h.repo.Create(cultivo); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, cultivo)
}

func (h *CultivoCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "JSON inválido"})
	}
	campos := map[string]any{}
	if req.Nombre != nil {
		if strings.TrimSpace(*req.Nombre) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "El nombre no puede estar vacío"})
		}
		campos["nombre"] = *req.Nombre
	}
	if req.NombreCientifico != nil {
		campos["nombre_cientifico"] = *req.NombreCientifico
	}
	if req.Tipo != nil {
		campos["tipo"] = *req.Tipo
	}
	if req.CicloDias != nil {
		campos["ciclo_dias"] = *req.CicloDias
	}
	if req.Descripcion != nil {
		campos["descripcion"] = *req.Descripcion
	}
	if req.Activo != nil {
		campos["activo"] = *req.Activo
	}
	if len(campos) > 0 {
		ok, err := h.repo.Update(uint(id), campos)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
		}
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Cultivo no encontrado"})
		}
	}
	cultivo, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, cultivo)
}

func (h *CultivoCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "ID inválido"})
	}
	ok, err := h.repo.Delete(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Cultivo no encontrado"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Cultivo desactivado correctamente"})
}
