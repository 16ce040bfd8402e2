package dao

import (
	"context"
	"database/sql"

	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const userFields = `u.id, u.username, u.email, u.is_super_admin, u.disabled, u.created_at`
const getUserById = `SELECT ` + userFields + ` FROM users u WHERE u.id = ? AND u.disabled = FALSE`
const getUserByUsername = `SELECT ` + userFields + ` FROM users u WHERE u.username = ?`
const createUser = `INSERT INTO users (username, pass_hash, email, is_super_admin, disabled) VALUES (?,?,?,?,?)`
const countOwnedNodes = `SELECT COUNT(*) FROM node_stakeholders s WHERE s.user_id = ? AND s.is_owner = TRUE`

func parseUser(row *sql.Row) (dbo.User, error) {
	var u dbo.User
	var id uint64
	var email sql.NullString
	err := row.Scan(&id, &u.Username, &email, &u.IsSuperAdmin, &u.Disabled, &u.CreatedAt)
	if err != nil {
		return u, err
	}
	u.ID = &id
	if email.Valid {
		u.Email = &email.String
	}
	return u, nil
}

func (q *Queries) GetUserById(ctx context.Context, id uint64) (dbo.User, error) {
	return parseUser(q.queryRow(ctx, getUserById, id))
}

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (dbo.User, error) {
	return parseUser(q.queryRow(ctx, getUserByUsername, username))
}

func (q *Queries) CreateUser(ctx context.Context, u dbo.User, passHash string) (uint64, error) {
	return q.insert(ctx, createUser, u.Username, passHash, u.Email, u.IsSuperAdmin, u.Disabled)
}

func (q *Queries) CountOwnedNodes(ctx context.Context, userID uint64) (int, error) {
	var n int
	err := q.queryRow(ctx, countOwnedNodes, userID).Scan(&n)
	return n, err
}

func GetUserById(db *Database, ctx context.Context, id uint64) (dbo.User, error) {
	logg := logging.Enter(ctx, "dao.user.get", map[string]any{"id": id})
	q := NewQueries(db, db.Dialect)
	u, err := q.GetUserById(ctx, id)
	return u, returnWrapNotFound(logg, err, "users")
}

func GetUserByUsername(db *Database, ctx context.Context, username string) (dbo.User, error) {
	log.Logger.Debug().Str("username", username).Msg("Get User by username")
	q := NewQueries(db, db.Dialect)
	u, err := q.GetUserByUsername(ctx, username)
	return u, wrapNotFound(err, "users")
}

// CountOwnedNodes returns how many nodes the user is a registered owner of.
func CountOwnedNodes(db *Database, ctx context.Context, userID uint64) (int, error) {
	logg := logging.Enter(ctx, "dao.user.ownedNodes", map[string]any{"user_id": userID})
	q := NewQueries(db, db.Dialect)
	n, err := q.CountOwnedNodes(ctx, userID)
	if err != nil {
		logging.ExitErr(logg, err)
		return 0, err
	}
	logging.Exit(logg, "ok", map[string]any{"owned": n})
	return n, nil
}

func CreateUser(db *Database, ctx context.Context, u dbo.User, passHash string) (uint64, error) {
	log.Logger.Debug().Object("user", logging.WithLevel(zerolog.DebugLevel, &u)).Msg("Create User")
	tx, err := GetTx(db, ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	q := NewQueries(tx, db.Dialect)
	id, err := q.CreateUser(ctx, u, passHash)
	if err != nil {
		return 0, NormalizeSQLError(err)
	}

	return id, tx.Commit()
}
