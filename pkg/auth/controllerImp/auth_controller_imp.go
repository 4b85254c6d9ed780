package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/auth/controller"
	"github.com/Sebinhas/backPH/pkg/auth/serviceImp"
)

type authCtrl struct {
	service *serviceImp.AuthSvc
}

func NewAuthController(service *serviceImp.AuthSvc) controller.AuthController {
	return &authCtrl{service: service}
}

func (h *authCtrl) Register(c echo.Context) error {
	var body serviceImp.RegisterInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Cuerpo de la petición inválido"})
	}
	sesion, err := h.service.Register(body)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusCreated, sesion)
}

func (h *authCtrl) Login(c echo.Context) error {
	var body serviceImp.LoginInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Cuerpo de la petición inválido"})
	}
	sesion, err := h.service.Login(body)
	if err != nil {
		var valErr *apperrors.ValidationError
		if errors.As(err, &valErr) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": valErr.Message})
		}
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, sesion)
}

// Verify confirma que el token del encabezado sigue siendo válido y devuelve
// el usuario autenticado.
func (h *authCtrl) Verify(c echo.Context) error {
	uid, ok := c.Get("uid").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "No autenticado"})
	}
	u, err := h.service.Perfil(uid)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"valido": true, "usuario": u})
}

func (h *authCtrl) Logout(c echo.Context) error {
	uid, ok := c.Get("uid").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "No autenticado"})
	}
	token, _ := c.Get("token").(string)
	if err := h.service.Logout(token, uid); err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Sesión cerrada correctamente"})
}

func responderError(c echo.Context, err error) error {
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": valErr.Message})
	}
	var nfErr *apperrors.NotFoundError
	if errors.As(err, &nfErr) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": nfErr.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error interno del servidor"})
}
