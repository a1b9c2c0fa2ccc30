package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"readandlead/internal/models/db_models"
)

// InitDatabase opens the configured database. DB_DRIVER selects the dialect:
// "sqlite" for local development, anything else means Postgres via
// POSTGRES_URL. The schema started on sqlite and was later migrated, so both
// stay supported.
func InitDatabase() *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	switch os.Getenv("DB_DRIVER") {
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "db.sqlite3"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		db, err = gorm.Open(postgres.Open(os.Getenv("POSTGRES_URL")), &gorm.Config{})
	}

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	// Idempotent; keeps fresh environments from booting without tables.
	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.NeighborPost{},
		&db_models.SavedPlace{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}
