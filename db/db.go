package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/ignisVeneficus/wifiportal/config"
	dbConfig "github.com/ignisVeneficus/wifiportal/config/database"
	"github.com/ignisVeneficus/wifiportal/db/dao"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

var (
	database *dao.Database
	once     sync.Once
)

func dsn(cfg dbConfig.DatabaseConfig) (string, string) {
	switch cfg.Driver {
	case dbConfig.DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     cfg.Host + ":" + strconv.Itoa(cfg.Port),
			Path:     "/" + cfg.Name,
			RawQuery: "sslmode=disable",
		}
		return "postgres", u.String()
	case dbConfig.DriverSQLite:
		return "sqlite", "file:" + cfg.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	default:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = cfg.Host + ":" + strconv.Itoa(cfg.Port)
		mc.DBName = cfg.Name
		mc.ParseTime = true
		mc.MultiStatements = true
		return "mysql", mc.FormatDSN()
	}
}

func dialect(driver dbConfig.Driver) dao.Dialect {
	switch driver {
	case dbConfig.DriverPostgres:
		return dao.DialectPostgres
	case dbConfig.DriverSQLite:
		return dao.DialectSQLite
	default:
		return dao.DialectMySQL
	}
}

// Open connects to the configured database and checks the connection.
func Open(ctx context.Context, cfg dbConfig.DatabaseConfig) (*dao.Database, error) {
	driverName, source := dsn(cfg)
	sqlDB, err := sql.Open(driverName, source)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driverName, err)
	}
	if cfg.Driver == dbConfig.DriverSQLite {
		// a single writer keeps sqlite away from SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect to %s database: %w", driverName, err)
	}
	return dao.NewDatabase(sqlDB, dialect(cfg.Driver)), nil
}

func GetDatabase() *dao.Database {
	once.Do(func() {
		var err error
		database, err = Open(context.Background(), config.Global().Database)
		if err != nil {
			log.Logger.Fatal().Err(err).Msg("Connect to database")
			panic(err)
		}
	})
	return database
}
