package database

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"imagestorebot/internal/config"
)

//go:embed migrations
var migrations embed.FS

type DB struct {
	*sqlx.DB
	Driver string
}

// dialect maps a driver name to its migrations directory.
func dialect(driver string) (string, error) {
	switch driver {
	case "sqlite", "sqlite3":
		return "sqlite", nil
	case "postgres":
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func dataSource(cfg config.DB) string {
	if cfg.Driver == "postgres" {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DbHOST,
			cfg.DbPORT,
			cfg.DbUSER,
			cfg.DbPASSWORD,
			cfg.DbNAME,
			cfg.DbSSLMODE,
		)
	}
	return cfg.Path
}

func ConnectDB(cfg *config.Config, log *zap.Logger) (*DB, error) {
	dbDialect, err := dialect(cfg.DB.Driver)
	if err != nil {
		return nil, err
	}

	log.Info("connecting to database",
		zap.String("driver", cfg.DB.Driver),
		zap.String("path", cfg.DB.Path),
		zap.String("host", cfg.DB.DbHOST),
	)

	db, err := sqlx.Connect(cfg.DB.Driver, dataSource(cfg.DB))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if dbDialect == "sqlite" {
		// one connection serializes writers and keeps :memory: databases shared
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set busy timeout: %w", err)
		}
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	dbStruct := &DB{DB: db, Driver: cfg.DB.Driver}

	if err := Migrate(db, cfg.DB.Driver); err != nil {
		db.Close()
		return nil, err
	}

	if err := dbStruct.HealthCheck(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	log.Info("database ready", zap.String("driver", cfg.DB.Driver))
	return dbStruct, nil
}

// Migrate applies every embedded migration of the driver's dialect in file name order.
// Migrations are written to be idempotent.
func Migrate(db *sqlx.DB, driver string) error {
	dbDialect, err := dialect(driver)
	if err != nil {
		return err
	}

	dir := "migrations/" + dbDialect
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		migrationSQL, err := fs.ReadFile(migrations, dir+"/"+name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		if _, err := db.Exec(string(migrationSQL)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}

	return nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	return db.Ping()
}
