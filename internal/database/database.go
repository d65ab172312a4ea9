package database

import (
	"fmt"

	"trivia-api/internal/config"

	_ "github.com/jackc/pgx/v4/stdlib" // Postgres driver, registered as "pgx"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver, registered as "sqlite3"
	_ "github.com/sijms/go-ora/v2"  // Oracle driver, registered as "oracle"
)

func init() {
	// go-ora takes :name placeholders; sqlx doesn't know the "oracle" name.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// DriverName maps a config driver to the database/sql driver name.
func DriverName(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "pgx", nil
	case config.DriverOracle:
		return "oracle", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// NewSQLXDB opens and pings the configured database.
func NewSQLXDB(cfg *config.Config) (*sqlx.DB, error) {
	driverName, err := DriverName(cfg.DB.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DB.Driver, err)
	}

	if driverName == "sqlite3" {
		// Each sqlite connection to :memory: is its own database.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.DB.Driver, err)
	}

	return db, nil
}
