package serviceImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
	"github.com/Sebinhas/backPH/pkg/apperrors"
	"github.com/Sebinhas/backPH/pkg/planificacion/repositoryImp"
	"github.com/Sebinhas/backPH/pkg/planificacion/types"
)

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// cada conexión del pool vería su propia base en memoria
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entities.Usuario{},
		&entities.Cultivo{},
		&entities.Lote{},
		&entities.Trabajador{},
		&entities.ActividadPlanificada{},
		&entities.ActividadTrabajador{},
		&entities.MetaActividad{},
		&entities.Alerta{},
	))
	return db
}

func nuevoServicio(t *testing.T, ahora time.Time) (*PlanificacionSvc, *gorm.DB) {
	t.Helper()
	db := abrirDB(t)
	svc := NewPlanificacionService(repositoryImp.New(db)).
		WithClock(func() time.Time { return ahora })
	return svc, db
}

func crearBasica(t *testing.T, svc *PlanificacionSvc, inicio, fin time.Time) *entities.ActividadPlanificada {
	t.Helper()
	a, err := svc.CreateActividad(types.CreateActividad{
		Nombre:                 "Riego del lote norte",
		Descripcion:            "Riego por goteo",
		Tipo:                   entities.ActividadRiego,
		Prioridad:              entities.PrioridadMedia,
		FechaInicioPlanificada: inicio,
		FechaFinPlanificada:    fin,
		DuracionEstimadaHoras:  10,
		Periodo:                entities.PeriodoSemana,
	}, nil)
	require.NoError(t, err)
	return a
}

func TestCreateActividad(t *testing.T) {
	ahora := fecha("2026-03-01 10:00")

	t.Run("valida campos obligatorios", func(t *testing.T) {
		svc, _ := nuevoServicio(t, ahora)
		casos := []types.CreateActividad{
			{Descripcion: "x", FechaInicioPlanificada: ahora, FechaFinPlanificada: ahora.Add(time.Hour), DuracionEstimadaHoras: 1},
			{Nombre: "x", FechaInicioPlanificada: ahora, FechaFinPlanificada: ahora.Add(time.Hour), DuracionEstimadaHoras: 1},
			{Nombre: "x", Descripcion: "x", DuracionEstimadaHoras: 1},
			{Nombre: "x", Descripcion: "x", FechaInicioPlanificada: ahora.Add(time.Hour), FechaFinPlanificada: ahora, DuracionEstimadaHoras: 1},
			{Nombre: "x", Descripcion: "x", FechaInicioPlanificada: ahora, FechaFinPlanificada: ahora.Add(time.Hour)},
		}
		for _, c := range casos {
			_, err := svc.CreateActividad(c, nil)
			var valErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &valErr)
		}
	})

	t.Run("reparte horas entre trabajadores asignados", func(t *testing.T) {
		svc, db := nuevoServicio(t, ahora)
		for i := 0; i < 4; i++ {
			require.NoError(t, db.Create(&entities.Trabajador{
				Nombres: "Juan", Apellidos: "Pérez", Documento: string(rune('A' + i)),
			}).Error)
		}
		a, err := svc.CreateActividad(types.CreateActividad{
			Nombre:                 "Cosecha",
			Descripcion:            "Cosecha de café",
			Tipo:                   entities.ActividadCosecha,
			FechaInicioPlanificada: fecha("2026-03-10 08:00"),
			FechaFinPlanificada:    fecha("2026-03-12 18:00"),
			DuracionEstimadaHoras:  10,
			TrabajadoresAsignados:  []uint{1, 2, 3, 4},
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 2, 3, 4}, a.TrabajadoresAsignados)

		var filas []entities.ActividadTrabajador
		require.NoError(t, db.Where("actividad_id = ?", a.ID).Find(&filas).Error)
		require.Len(t, filas, 4)
		for _, f := range filas {
			assert.Equal(t, 2.5, f.HorasPlanificadas)
		}
	})

	t.Run("actividad futura nace pendiente", func(t *testing.T) {
		svc, _ := nuevoServicio(t, ahora)
		a := crearBasica(t, svc, fecha("2026-03-10 08:00"), fecha("2026-03-12 18:00"))
		assert.Equal(t, entities.EstadoPendiente, a.Estado)
		assert.NotNil(t, a.Metas)
		assert.NotNil(t, a.AlertasActivas)
	})

	t.Run("guarda el creador cuando viene", func(t *testing.T) {
		svc, db := nuevoServicio(t, ahora)
		require.NoError(t, db.Create(&entities.Usuario{Nombre: "Ana", Email: "ana@x.co"}).Error)
		uid := uint(1)
		a, err := svc.CreateActividad(types.CreateActividad{
			Nombre:                 "Poda",
			Descripcion:            "Poda de formación",
			FechaInicioPlanificada: fecha("2026-03-10 08:00"),
			FechaFinPlanificada:    fecha("2026-03-12 18:00"),
			DuracionEstimadaHoras:  4,
		}, &uid)
		require.NoError(t, err)
		require.NotNil(t, a.CreadoPor)
		assert.Equal(t, uid, *a.CreadoPor)
	})
}

func TestDerivacionEstado(t *testing.T) {
	t.Run("vencida pasa a atrasada y se persiste", func(t *testing.T) {
		svc, db := nuevoServicio(t, fecha("2026-03-01 10:00"))
		a := crearBasica(t, svc, fecha("2026-03-10 08:00"), fecha("2026-03-20 18:00"))

		// el reloj avanza más allá del fin planificado
		svc.WithClock(func() time.Time { return fecha("2026-03-25 09:00") })
		leida, err := svc.GetActividadByID(a.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.EstadoAtrasada, leida.Estado)
		assert.True(t, leida.RequiereAtencion)

		// el estado corregido quedó almacenado, requiere_atencion no
		var cruda entities.ActividadPlanificada
		require.NoError(t, db.First(&cruda, a.ID).Error)
		assert.Equal(t, entities.EstadoAtrasada, cruda.Estado)
		assert.False(t, cruda.RequiereAtencion)
	})

	t.Run("completar una actividad vencida la saca del atraso", func(t *testing.T) {
		svc, _ := nuevoServicio(t, fecha("2026-03-25 09:00"))
		a := crearBasica(t, svc, fecha("2026-03-10 08:00"), fecha("2026-03-20 18:00"))

		leida, err := svc.GetActividadByID(a.ID)
		require.NoError(t, err)
		require.Equal(t, entities.EstadoAtrasada, leida.Estado)

		actualizada, err := svc.UpdateProgreso(a.ID, types.UpdateProgreso{ProgresoPorcentaje: 100})
		require.NoError(t, err)
		assert.Equal(t, entities.EstadoCompletada, actualizada.Estado)
	})

	t.Run("dentro de ventana con progreso queda en progreso", func(t *testing.T) {
		svc, _ := nuevoServicio(t, fecha("2026-03-15 12:00"))
		a := crearBasica(t, svc, fecha("2026-03-10 08:00"), fecha("2026-03-20 18:00"))

		actualizada, err := svc.UpdateProgreso(a.ID, types.UpdateProgreso{ProgresoPorcentaje: 40})
		require.NoError(t, err)
		assert.Equal(t, entities.EstadoEnProgreso, actualizada.Estado)
	})

	t.Run("la derivacion es idempotente", func(t *testing.T) {
		svc, _ := nuevoServicio(t, fecha("2026-03-25 09:00"))
		a := crearBasica(t, svc, fecha("2026-03-10 08:00"), fecha("2026-03-20 18:00"))

		primera, err := svc.GetActividadByID(a.ID)
		require.NoError(t, err)
		segunda, err := svc.GetActividadByID(a.ID)
		require.NoError(t, err)
		assert.Equal(t, primera.Estado, segunda.Estado)
	})

	t.Run("desviacion de una actividad abierta", func(t *testing.T) {
		svc, _ := nuevoServicio(t, fecha("2026-03-22 00:00"))
		a := crearBasica(t, svc, fecha("2026-03-10 08:00"), fecha("2026-03-20 18:00"))

		inicioReal := fecha("2026-03-10 08:00")
		_, err := svc.UpdateActividad(a.ID, types.UpdateActividad{FechaInicioReal: &inicioReal})
		require.NoError(t, err)

		leida, err := svc.GetActividadByID(a.ID)
		require.NoError(t, err)
		// 30h después del fin -> 2 días hacia arriba
		assert.Equal(t, 2, leida.DesviacionTiempoDias)
	})
}

func TestUpdateActividad(t *testing.T) {
	ahora := fecha("2026-03-01 10:00")

	t.Run("inexistente devuelve not found", func(t *testing.T) {
		svc, _ := nuevoServicio(t, ahora)
		nombre := "x"
		_, err := svc.UpdateActividad(99, types.UpdateActividad{Nombre: &nombre})
		var nfErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})

	t.Run("progreso fuera de rango", func(t *testing.T) {
		svc, _ := nuevoServicio(t, ahora)
		a := crearBasica(t, svc, fecha("2026-03-10 08:00"), fecha("2026-03-12 18:00"))
		progreso := 120.0
		_, err := svc.UpdateActividad(a.ID, types.UpdateActividad{ProgresoPorcentaje: &progreso})
		var valErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("actualizacion parcial no toca el resto", func(t *testing.T) {
		svc, _ := nuevoServicio(t, ahora)
		a := crearBasica(t, svc, fecha("2026-03-10 08:00"), fecha("2026-03-12 18:00"))
		notas := "cambiar boquillas"
		actualizada, err := svc.UpdateActividad(a.ID, types.UpdateActividad{Notas: &notas})
		require.NoError(t, err)
		assert.Equal(t, notas, actualizada.Notas)
		assert.Equal(t, a.Nombre, actualizada.Nombre)
		assert.Equal(t, a.DuracionEstimadaHoras, actualizada.DuracionEstimadaHoras)
	})

	t.Run("reemplaza colecciones hijas completas", func(t *testing.T) {
		svc, db := nuevoServicio(t, ahora)
		for i := 0; i < 3; i++ {
			require.NoError(t, db.Create(&entities.Trabajador{
				Nombres: "Luz", Apellidos: "Gómez", Documento: string(rune('A' + i)),
			}).Error)
		}
		a, err := svc.CreateActividad(types.CreateActividad{
			Nombre:                 "Fumigación",
			Descripcion:            "Control preventivo",
			FechaInicioPlanificada: fecha("2026-03-10 08:00"),
			FechaFinPlanificada:    fecha("2026-03-12 18:00"),
			DuracionEstimadaHoras:  6,
			TrabajadoresAsignados:  []uint{1, 2},
			Metas:                  []types.MetaInput{{Descripcion: "Hectáreas", ValorObjetivo: 10, Unidad: "ha"}},
		}, nil)
		require.NoError(t, err)

		duracion := 9.0
		trabajadores := []uint{3}
		metas := []types.MetaInput{
			{Descripcion: "Hectáreas", ValorObjetivo: 12, Unidad: "ha"},
			{Descripcion: "Litros de mezcla", ValorObjetivo: 300, Unidad: "l"},
		}
		actualizada, err := svc.UpdateActividad(a.ID, types.UpdateActividad{
			DuracionEstimadaHoras: &duracion,
			TrabajadoresAsignados: &trabajadores,
			Metas:                 &metas,
		})
		require.NoError(t, err)
		assert.Equal(t, []uint{3}, actualizada.TrabajadoresAsignados)
		require.Len(t, actualizada.Metas, 2)
		assert.Equal(t, 300.0, actualizada.Metas[1].ValorObjetivo)

		var filas []entities.ActividadTrabajador
		require.NoError(t, db.Where("actividad_id = ?", a.ID).Find(&filas).Error)
		require.Len(t, filas, 1)
		assert.Equal(t, 9.0, filas[0].HorasPlanificadas)
	})

	t.Run("lista vacia explicita desasigna a todos", func(t *testing.T) {
		svc, db := nuevoServicio(t, ahora)
		require.NoError(t, db.Create(&entities.Trabajador{
			Nombres: "Luz", Apellidos: "Gómez", Documento: "X1",
		}).Error)
		a, err := svc.CreateActividad(types.CreateActividad{
			Nombre:                 "Siembra",
			Descripcion:            "Siembra de maíz",
			FechaInicioPlanificada: fecha("2026-03-10 08:00"),
			FechaFinPlanificada:    fecha("2026-03-12 18:00"),
			DuracionEstimadaHoras:  6,
			TrabajadoresAsignados:  []uint{1},
		}, nil)
		require.NoError(t, err)

		vacia := []uint{}
		actualizada, err := svc.UpdateActividad(a.ID, types.UpdateActividad{TrabajadoresAsignados: &vacia})
		require.NoError(t, err)
		assert.Empty(t, actualizada.TrabajadoresAsignados)
	})
}

func TestUpdateProgreso(t *testing.T) {
	t.Run("rechaza fuera de rango", func(t *testing.T) {
		svc, _ := nuevoServicio(t, fecha("2026-03-15 12:00"))
		a := crearBasica(t, svc, fecha("2026-03-10 08:00"), fecha("2026-03-20 18:00"))
		_, err := svc.UpdateProgreso(a.ID, types.UpdateProgreso{ProgresoPorcentaje: -1})
		var valErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("registra fechas reales", func(t *testing.T) {
		svc, _ := nuevoServicio(t, fecha("2026-03-15 12:00"))
		a := crearBasica(t, svc, fecha("2026-03-10 08:00"), fecha("2026-03-20 18:00"))

		inicio := fecha("2026-03-10 08:30")
		fin := fecha("2026-03-15 11:00")
		horas := 9.5
		actualizada, err := svc.UpdateProgreso(a.ID, types.UpdateProgreso{
			ProgresoPorcentaje: 100,
			FechaInicioReal:    &inicio,
			FechaFinReal:       &fin,
			DuracionRealHoras:  &horas,
		})
		require.NoError(t, err)
		assert.Equal(t, entities.EstadoCompletada, actualizada.Estado)
		require.NotNil(t, actualizada.FechaFinReal)
		assert.Equal(t, horas, *actualizada.DuracionRealHoras)
		// terminó 5 días antes del fin planificado
		assert.Equal(t, -5, actualizada.DesviacionTiempoDias)
	})
}

func TestDeleteActividad(t *testing.T) {
	ahora := fecha("2026-03-01 10:00")

	t.Run("borra la actividad y sus hijas", func(t *testing.T) {
		svc, db := nuevoServicio(t, ahora)
		require.NoError(t, db.Create(&entities.Trabajador{
			Nombres: "Luz", Apellidos: "Gómez", Documento: "X1",
		}).Error)
		a, err := svc.CreateActividad(types.CreateActividad{
			Nombre:                 "Mantenimiento",
			Descripcion:            "Limpieza de canales",
			FechaInicioPlanificada: fecha("2026-03-10 08:00"),
			FechaFinPlanificada:    fecha("2026-03-12 18:00"),
			DuracionEstimadaHoras:  6,
			TrabajadoresAsignados:  []uint{1},
			Metas:                  []types.MetaInput{{Descripcion: "Metros", ValorObjetivo: 500, Unidad: "m"}},
		}, nil)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteActividad(a.ID))

		_, err = svc.GetActividadByID(a.ID)
		var nfErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nfErr)

		var hijos int64
		require.NoError(t, db.Model(&entities.ActividadTrabajador{}).
			Where("actividad_id = ?", a.ID).Count(&hijos).Error)
		assert.Zero(t, hijos)
		require.NoError(t, db.Model(&entities.MetaActividad{}).
			Where("actividad_id = ?", a.ID).Count(&hijos).Error)
		assert.Zero(t, hijos)
	})

	t.Run("inexistente devuelve not found", func(t *testing.T) {
		svc, _ := nuevoServicio(t, ahora)
		err := svc.DeleteActividad(42)
		var nfErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}

func TestGetEstadisticas(t *testing.T) {
	// las estadísticas leen el estado almacenado; las lecturas previas ya lo
	// corrigieron vía write-back
	svc, _ := nuevoServicio(t, fecha("2026-03-25 09:00"))

	vencida := crearBasica(t, svc, fecha("2026-03-10 08:00"), fecha("2026-03-20 18:00"))
	futura := crearBasica(t, svc, fecha("2026-04-01 08:00"), fecha("2026-04-05 18:00"))
	_ = futura

	_, err := svc.UpdateProgreso(vencida.ID, types.UpdateProgreso{ProgresoPorcentaje: 50})
	require.NoError(t, err)

	est, err := svc.GetEstadisticas()
	require.NoError(t, err)
	assert.Equal(t, int64(2), est.TotalActividades)
	assert.Equal(t, int64(1), est.Atrasadas)
	assert.Equal(t, int64(1), est.Pendientes)
	assert.Equal(t, 25.0, est.ProgresoPromedio)
}

func TestGetActividadesPorLote(t *testing.T) {
	svc, db := nuevoServicio(t, fecha("2026-03-01 10:00"))
	require.NoError(t, db.Create(&entities.Lote{Codigo: "L-01", Nombre: "Norte", AreaHectareas: 2}).Error)
	require.NoError(t, db.Create(&entities.Lote{Codigo: "L-02", Nombre: "Sur", AreaHectareas: 3}).Error)

	lote1 := uint(1)
	lote2 := uint(2)
	for i, loteID := range []*uint{&lote1, &lote1, &lote2} {
		_, err := svc.CreateActividad(types.CreateActividad{
			Nombre:                 "Actividad",
			Descripcion:            "d",
			FechaInicioPlanificada: fecha("2026-03-10 08:00").Add(time.Duration(i) * time.Hour),
			FechaFinPlanificada:    fecha("2026-03-12 18:00"),
			DuracionEstimadaHoras:  2,
			LoteID:                 loteID,
		}, nil)
		require.NoError(t, err)
	}

	actividades, err := svc.GetActividadesPorLote(lote1)
	require.NoError(t, err)
	require.Len(t, actividades, 2)
	for _, a := range actividades {
		assert.Equal(t, "Norte", a.LoteNombre)
	}
}
