package dao

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Dialect int

const (
	DialectMySQL Dialect = iota
	DialectPostgres
	DialectSQLite
)

func (d Dialect) String() string {
	switch d {
	case DialectPostgres:
		return "postgres"
	case DialectSQLite:
		return "sqlite"
	default:
		return "mysql"
	}
}

//go:embed schema_mysql.sql
var schemaMySQL string

//go:embed schema_postgres.sql
var schemaPostgres string

//go:embed schema_sqlite.sql
var schemaSQLite string

func (d Dialect) schema() string {
	switch d {
	case DialectPostgres:
		return schemaPostgres
	case DialectSQLite:
		return schemaSQLite
	default:
		return schemaMySQL
	}
}

// Database is a connection pool together with the SQL dialect spoken by it.
type Database struct {
	*sql.DB
	Dialect Dialect
}

func NewDatabase(db *sql.DB, dialect Dialect) *Database {
	return &Database{DB: db, Dialect: dialect}
}

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func NewQueries(db DBTX, dialect Dialect) *Queries {
	return &Queries{db: db, dialect: dialect}
}

type Queries struct {
	db      DBTX
	dialect Dialect
}

// rebind turns the ? placeholders used by every query of this package into
// the numbered form PostgreSQL expects.
func (q *Queries) rebind(query string) string {
	if q.dialect != DialectPostgres {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (q *Queries) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return q.db.ExecContext(ctx, q.rebind(query), args...)
}

func (q *Queries) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return q.db.QueryContext(ctx, q.rebind(query), args...)
}

func (q *Queries) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return q.db.QueryRowContext(ctx, q.rebind(query), args...)
}

// insert runs an INSERT and returns the generated id column.
func (q *Queries) insert(ctx context.Context, query string, args ...any) (uint64, error) {
	if q.dialect == DialectPostgres {
		var id uint64
		err := q.queryRow(ctx, query+" RETURNING id", args...).Scan(&id)
		return id, err
	}
	res, err := q.exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (q *Queries) CreateSchema(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, q.dialect.schema())
	return err
}

func GetTx(db *Database, ctx context.Context) (*sql.Tx, error) {
	opts := &sql.TxOptions{}
	if db.Dialect != DialectSQLite {
		opts.Isolation = sql.LevelSerializable
	}
	return db.BeginTx(ctx, opts)
}

var ErrDataNotFound = errors.New("data not found")
var ErrDataDuplicateKey = errors.New("duplicate key")

func GetDataNotFoundError(table string) error {
	return fmt.Errorf("%w, table: %s", ErrDataNotFound, table)
}

func NormalizeSQLError(err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 { // ER_DUP_ENTRY
		return fmt.Errorf("%w: %s", ErrDataDuplicateKey, mysqlErr.Message)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
		return fmt.Errorf("%w: %s", ErrDataDuplicateKey, pqErr.Message)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY ||
			(code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE")) {
			return fmt.Errorf("%w: %s", ErrDataDuplicateKey, liteErr.Error())
		}
	}

	return err
}

func CreateSchema(db *Database, ctx context.Context) error {
	logg := logging.Enter(ctx, "dao.database.create", map[string]any{"dialect": db.Dialect.String()})
	queries := NewQueries(db, db.Dialect)
	err := queries.CreateSchema(ctx)
	if err != nil {
		logging.ExitErr(logg, err)
		return err
	}
	logging.Exit(logg, "ok", nil)
	return nil
}

func wrapNotFound(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return GetDataNotFoundError(entity)
	}
	return err
}

func returnWrapNotFound(logg zerolog.Logger, err error, entity string) error {
	if err == nil {
		logging.Exit(logg, "ok", nil)
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		logging.Exit(logg, "not found", nil)
		return GetDataNotFoundError(entity)
	}
	logging.ExitErr(logg, err)
	return err
}
