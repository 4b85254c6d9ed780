package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Sebinhas/backPH/pkg/auth/serviceImp"
)

// JWT valida el token Bearer y deja el id del usuario en el contexto bajo
// "uid". Con required=false la petición pasa sin token; si el token viene y
// es válido el uid igual queda disponible (el creador de una actividad es
// opcional).
func JWT(auth *serviceImp.AuthSvc, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				if !required {
					return next(c)
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token no proporcionado"})
			}
			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if tokenStr == header {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Formato de autorización inválido"})
			}
			claims, err := auth.ValidarToken(tokenStr)
			if err != nil {
				if !required {
					return next(c)
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token inválido o expirado"})
			}
			c.Set("uid", claims.UsuarioID)
			c.Set("rol", claims.Rol)
			c.Set("token", tokenStr)
			return next(c)
		}
	}
}
