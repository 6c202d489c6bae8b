package db

import (
	"database/sql"
	"fmt"
	"net"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eduportal/internal/model"
)

// Options describes how to reach the MySQL server and size the pool.
type Options struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	PoolSize int
	Debug    bool
}

// DSN returns the driver DSN. With withDB false the database name is
// omitted so the server can be reached before the schema exists.
func (o Options) DSN(withDB bool) string {
	cfg := driver.NewConfig()
	cfg.User = o.User
	cfg.Passwd = o.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(o.Host, o.Port)
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	if withDB {
		cfg.DBName = o.Name
	}
	return cfg.FormatDSN()
}

// EnsureDatabase creates the configured database if it does not exist yet.
func EnsureDatabase(o Options) error {
	conn, err := sql.Open("mysql", o.DSN(false))
	if err != nil {
		return fmt.Errorf("open mysql: %w", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		return fmt.Errorf("ping mysql: %w", err)
	}
	stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci", o.Name)
	if _, err := conn.Exec(stmt); err != nil {
		return fmt.Errorf("create database %s: %w", o.Name, err)
	}
	return nil
}

// NewMySQL returns a connected GORM DB instance backed by a fixed-size pool.
// Callers beyond the pool size wait for a free connection; there is no
// wait-queue limit.
func NewMySQL(o Options) (*gorm.DB, error) {
	level := logger.Warn
	if o.Debug {
		level = logger.Info
	}
	db, err := gorm.Open(mysql.Open(o.DSN(true)), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if o.PoolSize > 0 {
		sqlDB.SetMaxOpenConns(o.PoolSize)
		sqlDB.SetMaxIdleConns(o.PoolSize)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}

// Migrate creates every table if absent. It is safe to run on each boot.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Category{},
		&model.Material{},
		&model.Video{},
		&model.Admin{},
	)
}

// Open runs the full boot sequence: database, pool, tables.
func Open(o Options) (*gorm.DB, error) {
	if err := EnsureDatabase(o); err != nil {
		return nil, err
	}
	db, err := NewMySQL(o)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return db, nil
}
