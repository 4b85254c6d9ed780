package router

import (
	"github.com/labstack/echo/v4"
)

type crudCtrl interface {
	GetAll(echo.Context) error
	GetByID(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func New(
	e *echo.Echo,
	jwt echo.MiddlewareFunc,
	jwtOptional echo.MiddlewareFunc,
	planCtrl interface {
		crudCtrl
		GetEstadisticas(echo.Context) error
		GetByLote(echo.Context) error
		UpdateProgreso(echo.Context) error
	},
	loteCtrl crudCtrl,
	cultivoCtrl crudCtrl,
	trabajadorCtrl crudCtrl,
	laborCtrl crudCtrl,
	tipoLaborCtrl crudCtrl,
	usuarioCtrl interface {
		crudCtrl
		GetEstadisticas(echo.Context) error
	},
	rolCtrl crudCtrl,
	dashCtrl interface {
		GetEstadisticas(echo.Context) error
		GetProduccionMensual(echo.Context) error
		GetDistribucionCultivos(echo.Context) error
		GetLaboresPorDia(echo.Context) error
		GetEstadoLotes(echo.Context) error
		GetRendimientoTrabajadores(echo.Context) error
	},
	reportesCtrl interface {
		GetReporteLabores(echo.Context) error
		GetReporteActividades(echo.Context) error
	},
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		Verify(echo.Context) error
		Logout(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")

	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.GET("/auth/verify", authCtrl.Verify, jwt)
	api.POST("/auth/logout", authCtrl.Logout, jwt)

	// estadisticas y lote van antes de :id para que Echo no las capture como id
	plan := api.Group("/planificacion")
	plan.GET("", planCtrl.GetAll, jwtOptional)
	plan.GET("/estadisticas", planCtrl.GetEstadisticas, jwtOptional)
	plan.GET("/lote/:loteId", planCtrl.GetByLote, jwtOptional)
	plan.GET("/:id", planCtrl.GetByID, jwtOptional)
	// el creador de una actividad es opcional, por eso el POST no exige token
	plan.POST("", planCtrl.Create, jwtOptional)
	plan.PUT("/:id", planCtrl.Update, jwt)
	plan.PUT("/:id/progreso", planCtrl.UpdateProgreso, jwt)
	plan.DELETE("/:id", planCtrl.Delete, jwt)

	// lecturas abiertas (el token, si viene, igual se valida); mutaciones con token
	crud := func(g *echo.Group, ctrl crudCtrl) {
		g.GET("", ctrl.GetAll, jwtOptional)
		g.GET("/:id", ctrl.GetByID, jwtOptional)
		g.POST("", ctrl.Create, jwt)
		g.PUT("/:id", ctrl.Update, jwt)
		g.DELETE("/:id", ctrl.Delete, jwt)
	}
	crud(api.Group("/lotes"), loteCtrl)
	crud(api.Group("/cultivos"), cultivoCtrl)
	crud(api.Group("/trabajadores"), trabajadorCtrl)
	crud(api.Group("/labores"), laborCtrl)
	crud(api.Group("/tipos-labor"), tipoLaborCtrl)

	usuarios := api.Group("/usuarios", jwt)
	usuarios.GET("", usuarioCtrl.GetAll)
	usuarios.GET("/estadisticas", usuarioCtrl.GetEstadisticas)
	usuarios.GET("/:id", usuarioCtrl.GetByID)
	usuarios.POST("", usuarioCtrl.Create)
	usuarios.PUT("/:id", usuarioCtrl.Update)
	usuarios.DELETE("/:id", usuarioCtrl.Delete)

	crudJWT := func(g *echo.Group, ctrl crudCtrl) {
		g.GET("", ctrl.GetAll)
		g.GET("/:id", ctrl.GetByID)
		g.POST("", ctrl.Create)
		g.PUT("/:id", ctrl.Update)
		g.DELETE("/:id", ctrl.Delete)
	}
	crudJWT(api.Group("/roles", jwt), rolCtrl)

	dash := api.Group("/dashboard", jwtOptional)
	dash.GET("/estadisticas", dashCtrl.GetEstadisticas)
	dash.GET("/produccion-mensual", dashCtrl.GetProduccionMensual)
	dash.GET("/distribucion-cultivos", dashCtrl.GetDistribucionCultivos)
	dash.GET("/labores-por-dia", dashCtrl.GetLaboresPorDia)
	dash.GET("/estado-lotes", dashCtrl.GetEstadoLotes)
	dash.GET("/rendimiento-trabajadores", dashCtrl.GetRendimientoTrabajadores)

	rep := api.Group("/reportes", jwt)
	rep.GET("/labores", reportesCtrl.GetReporteLabores)
	rep.GET("/actividades", reportesCtrl.GetReporteActividades)

	return e
}
