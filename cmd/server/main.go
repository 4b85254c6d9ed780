package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/Sebinhas/backPH/config"
	"github.com/Sebinhas/backPH/database"
	"github.com/Sebinhas/backPH/pkg/middleware"
	"github.com/Sebinhas/backPH/router"

	authCtrlImp "github.com/Sebinhas/backPH/pkg/auth/controllerImp"
	authRepoImp "github.com/Sebinhas/backPH/pkg/auth/repositoryImp"
	authSvc "github.com/Sebinhas/backPH/pkg/auth/serviceImp"

	planCtrlImp "github.com/Sebinhas/backPH/pkg/planificacion/controllerImp"
	planRepoImp "github.com/Sebinhas/backPH/pkg/planificacion/repositoryImp"
	planSvc "github.com/Sebinhas/backPH/pkg/planificacion/serviceImp"

	loteCtrlImp "github.com/Sebinhas/backPH/pkg/lote/controllerImp"
	loteRepoImp "github.com/Sebinhas/backPH/pkg/lote/repositoryImp"
	loteSvc "github.com/Sebinhas/backPH/pkg/lote/serviceImp"

	cultivoCtrlImp "github.com/Sebinhas/backPH/pkg/cultivo/controllerImp"
	cultivoRepoImp "github.com/Sebinhas/backPH/pkg/cultivo/repositoryImp"

	trabCtrlImp "github.com/Sebinhas/backPH/pkg/trabajador/controllerImp"
	trabRepoImp "github.com/Sebinhas/backPH/pkg/trabajador/repositoryImp"
	trabSvc "github.com/Sebinhas/backPH/pkg/trabajador/serviceImp"

	laborCtrlImp "github.com/Sebinhas/backPH/pkg/labor/controllerImp"
	laborRepoImp "github.com/Sebinhas/backPH/pkg/labor/repositoryImp"
	laborSvc "github.com/Sebinhas/backPH/pkg/labor/serviceImp"

	tipoLaborCtrlImp "github.com/Sebinhas/backPH/pkg/tipolabor/controllerImp"
	tipoLaborRepoImp "github.com/Sebinhas/backPH/pkg/tipolabor/repositoryImp"

	usuarioCtrlImp "github.com/Sebinhas/backPH/pkg/usuario/controllerImp"
	usuarioRepoImp "github.com/Sebinhas/backPH/pkg/usuario/repositoryImp"
	usuarioSvc "github.com/Sebinhas/backPH/pkg/usuario/serviceImp"

	rolCtrlImp "github.com/Sebinhas/backPH/pkg/rol/controllerImp"
	rolRepoImp "github.com/Sebinhas/backPH/pkg/rol/repositoryImp"

	dashCtrlImp "github.com/Sebinhas/backPH/pkg/dashboard/controllerImp"
	dashSvc "github.com/Sebinhas/backPH/pkg/dashboard/serviceImp"

	repCtrlImp "github.com/Sebinhas/backPH/pkg/reportes/controllerImp"
	repSvc "github.com/Sebinhas/backPH/pkg/reportes/serviceImp"

	healthCtrlImp "github.com/Sebinhas/backPH/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) Auth + middleware
	aSvc := authSvc.NewAuthService(authRepoImp.NewUsuarioRepository(db), cfg.JWTSecret)
	aCtrl := authCtrlImp.NewAuthController(aSvc)
	jwt := middleware.JWT(aSvc, true)
	jwtOptional := middleware.JWT(aSvc, false)

	// 5) Repos/Services/Controllers
	plCtrl := planCtrlImp.New(planSvc.NewPlanificacionService(planRepoImp.New(db)))
	lCtrl := loteCtrlImp.New(loteSvc.NewLoteService(loteRepoImp.New(db)))
	cCtrl := cultivoCtrlImp.New(cultivoRepoImp.New(db))
	tCtrl := trabCtrlImp.New(trabSvc.NewTrabajadorService(trabRepoImp.New(db)))
	laCtrl := laborCtrlImp.New(laborSvc.NewLaborService(laborRepoImp.New(db)))
	tlCtrl := tipoLaborCtrlImp.New(tipoLaborRepoImp.New(db))
	uCtrl := usuarioCtrlImp.New(usuarioSvc.NewUsuarioService(usuarioRepoImp.New(db)))
	roCtrl := rolCtrlImp.New(rolRepoImp.New(db))
	dCtrl := dashCtrlImp.NewDashboardController(dashSvc.NewDashboardService(db))
	rCtrl := repCtrlImp.NewReportesController(repSvc.NewReportesService(db))
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(
		e,
		jwt,
		jwtOptional,
		plCtrl,
		lCtrl,
		cCtrl,
		tCtrl,
		laCtrl,
		tlCtrl,
		uCtrl,
		roCtrl,
		dCtrl,
		rCtrl,
		aCtrl,
		hCtrl,
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
