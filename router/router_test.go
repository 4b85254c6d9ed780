package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/middleware"

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

func nuevoServidor(t *testing.T) (*echo.Echo, *authSvc.AuthSvc) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entities.Usuario{},
		&entities.Rol{},
		&entities.TokenRevocado{},
		&entities.Cultivo{},
		&entities.Lote{},
		&entities.Trabajador{},
		&entities.TipoLabor{},
		&entities.Labor{},
		&entities.ActividadPlanificada{},
		&entities.ActividadTrabajador{},
		&entities.MetaActividad{},
		&entities.Alerta{},
	))

	aSvc := authSvc.NewAuthService(authRepoImp.NewUsuarioRepository(db), "secreto-de-prueba")

	e := echo.New()
	return New(
		e,
		middleware.JWT(aSvc, true),
		middleware.JWT(aSvc, false),
		planCtrlImp.New(planSvc.NewPlanificacionService(planRepoImp.New(db))),
		loteCtrlImp.New(loteSvc.NewLoteService(loteRepoImp.New(db))),
		cultivoCtrlImp.New(cultivoRepoImp.New(db)),
		trabCtrlImp.New(trabSvc.NewTrabajadorService(trabRepoImp.New(db))),
		laborCtrlImp.New(laborSvc.NewLaborService(laborRepoImp.New(db))),
		tipoLaborCtrlImp.New(tipoLaborRepoImp.New(db)),
		usuarioCtrlImp.New(usuarioSvc.NewUsuarioService(usuarioRepoImp.New(db))),
		rolCtrlImp.New(rolRepoImp.New(db)),
		dashCtrlImp.NewDashboardController(dashSvc.NewDashboardService(db)),
		repCtrlImp.NewReportesController(repSvc.NewReportesService(db)),
		authCtrlImp.NewAuthController(aSvc),
		healthCtrlImp.NewHealthCtrl(db),
	), aSvc
}

func hacer(e *echo.Echo, metodo, ruta, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(metodo, ruta, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registrar(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := hacer(e, http.MethodPost, "/api/auth/register", "",
		`{"nombre":"Ana","email":"ana@finca.co","password":"secreta1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var sesion struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sesion))
	require.NotEmpty(t, sesion.Token)
	return sesion.Token
}

func TestMutacionesExigenToken(t *testing.T) {
	e, _ := nuevoServidor(t)

	casos := []struct{ metodo, ruta string }{
		{http.MethodPost, "/api/lotes"},
		{http.MethodPut, "/api/lotes/1"},
		{http.MethodDelete, "/api/lotes/1"},
		{http.MethodPost, "/api/cultivos"},
		{http.MethodDelete, "/api/trabajadores/1"},
		{http.MethodPost, "/api/labores"},
		{http.MethodDelete, "/api/tipos-labor/1"},
		{http.MethodPut, "/api/planificacion/1"},
		{http.MethodPut, "/api/planificacion/1/progreso"},
		{http.MethodDelete, "/api/planificacion/1"},
		{http.MethodGet, "/api/usuarios"},
		{http.MethodGet, "/api/roles"},
		{http.MethodPost, "/api/roles"},
		{http.MethodGet, "/api/reportes/labores"},
	}
	for _, caso := range casos {
		rec := hacer(e, caso.metodo, caso.ruta, "", `{}`)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", caso.metodo, caso.ruta)
	}
}

func TestLecturasAbiertas(t *testing.T) {
	e, _ := nuevoServidor(t)

	for _, ruta := range []string{
		"/api/lotes",
		"/api/cultivos",
		"/api/trabajadores",
		"/api/labores",
		"/api/tipos-labor",
		"/api/planificacion",
		"/api/planificacion/estadisticas",
		"/api/dashboard/estadisticas",
	} {
		rec := hacer(e, http.MethodGet, ruta, "", "")
		assert.Equalf(t, http.StatusOK, rec.Code, "GET %s", ruta)
	}
}

func TestMutacionConTokenPasa(t *testing.T) {
	e, _ := nuevoServidor(t)
	token := registrar(t, e)

	rec := hacer(e, http.MethodPost, "/api/lotes", token,
		`{"codigo":"L-01","nombre":"Lote Norte","area_hectareas":2.5}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = hacer(e, http.MethodPost, "/api/roles", token, `{"nombre":"supervisor"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCrearActividadSinTokenPermitido(t *testing.T) {
	// el creador de la actividad es opcional, el POST no exige sesión
	e, _ := nuevoServidor(t)
	rec := hacer(e, http.MethodPost, "/api/planificacion", "", `{
		"nombre": "Siembra de prueba",
		"descripcion": "Siembra del lote norte",
		"tipo": "SIEMBRA",
		"prioridad": "MEDIA",
		"periodo": "SEMANA",
		"fecha_inicio_planificada": "2026-03-02T08:00:00Z",
		"fecha_fin_planificada": "2026-03-06T17:00:00Z",
		"duracion_estimada_horas": 20
	}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestActualizarProgresoUsaPut(t *testing.T) {
	e, _ := nuevoServidor(t)
	token := registrar(t, e)

	rec := hacer(e, http.MethodPost, "/api/planificacion", token, `{
		"nombre": "Cosecha de prueba",
		"descripcion": "Cosecha del lote sur",
		"tipo": "COSECHA",
		"prioridad": "ALTA",
		"periodo": "SEMANA",
		"fecha_inicio_planificada": "2026-03-02T08:00:00Z",
		"fecha_fin_planificada": "2026-03-06T17:00:00Z",
		"duracion_estimada_horas": 16
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var creada struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &creada))

	rec = hacer(e, http.MethodPut, "/api/planificacion/1/progreso", token,
		`{"progreso_porcentaje": 40}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// la ruta ya no responde al metodo PATCH
	rec = hacer(e, http.MethodPatch, "/api/planificacion/1/progreso", token,
		`{"progreso_porcentaje": 40}`)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestVerifyYLogout(t *testing.T) {
	e, _ := nuevoServidor(t)
	token := registrar(t, e)

	rec := hacer(e, http.MethodGet, "/api/auth/verify", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = hacer(e, http.MethodPost, "/api/auth/logout", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// el token revocado deja de servir en todas las rutas protegidas
	rec = hacer(e, http.MethodGet, "/api/auth/verify", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = hacer(e, http.MethodPost, "/api/lotes", token, `{"nombre":"Lote Sur","area":1}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsuariosCRUDProtegido(t *testing.T) {
	e, _ := nuevoServidor(t)
	token := registrar(t, e)

	rec := hacer(e, http.MethodPost, "/api/usuarios", token,
		`{"nombre":"Luis","email":"luis@finca.co","password":"secreta1","rol":"operario"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = hacer(e, http.MethodGet, "/api/usuarios/estadisticas", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var est struct {
		TotalUsuarios  int64            `json:"total_usuarios"`
		UsuariosPorRol map[string]int64 `json:"usuarios_por_rol"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &est))
	// el usuario registrado mas el recien creado
	assert.Equal(t, int64(2), est.TotalUsuarios)
	assert.Equal(t, int64(1), est.UsuariosPorRol["operario"])
}
