// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"github.com/Sebinhas/backPH/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
		log.Fatalf("pragma: %v", err)
	}

	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
