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
	"github.com/Sebinhas/backPH/pkg/labor/repositoryImp"
)

func nuevoServicio(t *testing.T) *LaborSvc {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entities.Trabajador{},
		&entities.TipoLabor{},
		&entities.Labor{},
	))
	require.NoError(t, db.Create(&entities.Trabajador{
		Nombres: "Juan", Apellidos: "Pérez", Documento: "123",
	}).Error)
	require.NoError(t, db.Create(&entities.TipoLabor{Nombre: "Recolección"}).Error)

	return NewLaborService(repositoryImp.New(db)).
		WithClock(func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) })
}

func laborValida() CreateLabor {
	return CreateLabor{
		Fecha:               "2026-03-14",
		Cultivo:             "Café",
		Lote:                "Norte",
		TrabajadorID:        1,
		TipoLaborID:         1,
		CantidadRecolectada: 80,
		UnidadMedida:        entities.UnidadKg,
		PesoTotal:           80,
		HoraInicio:          "07:00",
		HoraFin:             "11:00",
		UbicacionGPS:        entities.UbicacionGPS{Latitud: 4.6, Longitud: -74.1},
	}
}

func TestCreateLabor(t *testing.T) {
	t.Run("calcula duracion rendimiento y costo", func(t *testing.T) {
		svc := nuevoServicio(t)
		l, err := svc.Create(laborValida())
		require.NoError(t, err)

		assert.Equal(t, 240, l.DuracionMinutos)
		assert.Equal(t, 20.0, l.RendimientoPorHora) // 80 kg / 4 h
		require.NotNil(t, l.CostoEstimado)
		assert.Equal(t, 120.0, *l.CostoEstimado) // 240 min * 0.5
		assert.Equal(t, entities.LaborEnProceso, l.Estado)
		assert.Equal(t, "Juan Pérez", l.TrabajadorNombre)
		assert.Equal(t, "Recolección", l.TipoLaborNombre)
	})

	t.Run("rechaza fecha futura", func(t *testing.T) {
		svc := nuevoServicio(t)
		data := laborValida()
		data.Fecha = "2026-03-16"
		_, err := svc.Create(data)
		var valErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("rechaza horas invertidas", func(t *testing.T) {
		svc := nuevoServicio(t)
		data := laborValida()
		data.HoraInicio = "11:00"
		data.HoraFin = "07:00"
		_, err := svc.Create(data)
		var valErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("rechaza coordenadas fuera de rango", func(t *testing.T) {
		svc := nuevoServicio(t)
		data := laborValida()
		data.UbicacionGPS.Latitud = 95
		_, err := svc.Create(data)
		var valErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("rechaza humedad fuera de rango", func(t *testing.T) {
		svc := nuevoServicio(t)
		data := laborValida()
		humedad := 130.0
		data.CondicionesClimaticas = &entities.CondicionesClimaticas{Humedad: &humedad}
		_, err := svc.Create(data)
		var valErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})
}

func TestUpdateLabor(t *testing.T) {
	t.Run("recalcula metricas al cambiar horas", func(t *testing.T) {
		svc := nuevoServicio(t)
		l, err := svc.Create(laborValida())
		require.NoError(t, err)

		horaFin := "09:00"
		actualizada, err := svc.Update(l.ID, UpdateLabor{HoraFin: &horaFin})
		require.NoError(t, err)
		assert.Equal(t, 120, actualizada.DuracionMinutos)
		assert.Equal(t, 40.0, actualizada.RendimientoPorHora) // 80 kg / 2 h
	})

	t.Run("recalcula metricas al cambiar cantidad", func(t *testing.T) {
		svc := nuevoServicio(t)
		l, err := svc.Create(laborValida())
		require.NoError(t, err)

		cantidad := 100.0
		actualizada, err := svc.Update(l.ID, UpdateLabor{CantidadRecolectada: &cantidad})
		require.NoError(t, err)
		assert.Equal(t, 25.0, actualizada.RendimientoPorHora)
	})

	t.Run("rechaza fin anterior al inicio combinando con lo almacenado", func(t *testing.T) {
		svc := nuevoServicio(t)
		l, err := svc.Create(laborValida())
		require.NoError(t, err)

		horaFin := "06:00" // anterior al 07:00 almacenado
		_, err = svc.Update(l.ID, UpdateLabor{HoraFin: &horaFin})
		var valErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("inexistente devuelve not found", func(t *testing.T) {
		svc := nuevoServicio(t)
		estado := entities.LaborCompletada
		_, err := svc.Update(99, UpdateLabor{Estado: &estado})
		var nfErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}

func TestDeleteLabor(t *testing.T) {
	svc := nuevoServicio(t)
	l, err := svc.Create(laborValida())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(l.ID))
	_, err = svc.GetByID(l.ID)
	var nfErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestGetByDateRange(t *testing.T) {
	svc := nuevoServicio(t)
	_, err := svc.Create(laborValida())
	require.NoError(t, err)

	_, err = svc.GetByDateRange("14-03-2026", "2026-03-15")
	var valErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &valErr)

	labores, err := svc.GetByDateRange("2026-03-01", "2026-03-31")
	require.NoError(t, err)
	assert.Len(t, labores, 1)

	labores, err = svc.GetByDateRange("2026-04-01", "2026-04-30")
	require.NoError(t, err)
	assert.Empty(t, labores)
}
