package database

import (
	"errors"
	"fmt"
	"os"
	"time"

	"jokepatra/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when the connection settings required by every
// route are absent.
var ErrNotConfigured = errors.New("database configuration error: set DB_HOST and DB_ANON_USER (and DB_SERVICE_USER for admin routes)")

type DB struct {
	*sqlx.DB
}

// Handles holds the two credential tiers. Public is read-only by policy and
// serves reader routes; Service bypasses row-level security and is used only by
// admin, cron and bootstrap paths.
type Handles struct {
	Public  *DB
	Service *DB
}

func credentials(cfg config.DB) (anonUser, anonPass, serviceUser, servicePass string, err error) {
	if cfg.DbHOST == "" || cfg.AnonUSER == "" {
		return "", "", "", "", ErrNotConfigured
	}

	serviceUser, servicePass = cfg.ServiceUSER, cfg.ServicePASSWORD
	if serviceUser == "" {
		serviceUser, servicePass = cfg.AnonUSER, cfg.AnonPASSWORD
	}

	return cfg.AnonUSER, cfg.AnonPASSWORD, serviceUser, servicePass, nil
}

func DSN(cfg config.DB, user, password string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DbHOST,
		cfg.DbPORT,
		user,
		password,
		cfg.DbNAME,
		cfg.DbSSLMODE,
	)
}

// Open connects both tiers. It returns ErrNotConfigured without dialing when
// the required settings are missing.
func Open(cfg *config.Config, logger *zap.Logger) (*Handles, error) {
	anonUser, anonPass, serviceUser, servicePass, err := credentials(cfg.DB)
	if err != nil {
		return nil, err
	}

	public, err := ConnectDB(DSN(cfg.DB, anonUser, anonPass), logger.With(zap.String("tier", "public")))
	if err != nil {
		return nil, err
	}

	service, err := ConnectDB(DSN(cfg.DB, serviceUser, servicePass), logger.With(zap.String("tier", "service")))
	if err != nil {
		public.CloseDB()
		return nil, err
	}

	if err := service.RunMigrations(cfg.DB.MigrationFilePath); err != nil {
		logger.Warn("migrations not applied", zap.Error(err))
	}

	return &Handles{Public: public, Service: service}, nil
}

func ConnectDB(dsn string, logger *zap.Logger) (*DB, error) {
	logger.Info("connecting to database")

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := &DB{db}

	if err := dbStruct.HealthCheck(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	logger.Info("connected to PostgreSQL")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) RunMigrations(migrationFilePath string) error {
	if _, err := os.Stat(migrationFilePath); os.IsNotExist(err) {
		return fmt.Errorf("migration file not found: %s", migrationFilePath)
	}

	migrationSQL, err := os.ReadFile(migrationFilePath)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	if _, err = db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return ErrNotConfigured
	}

	return db.Ping()
}

func (h *Handles) Close() error {
	if h == nil {
		return nil
	}
	return errors.Join(h.Public.CloseDB(), h.Service.CloseDB())
}

// HealthCheck pings both tiers.
func (h *Handles) HealthCheck() error {
	if h == nil {
		return ErrNotConfigured
	}
	return errors.Join(h.Public.HealthCheck(), h.Service.HealthCheck())
}
