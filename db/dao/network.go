package dao

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/rs/zerolog/log"
)

const networkFields = `n.id, n.name, n.homepage_url, n.tech_support_email, n.is_default`
const getNetworkById = `SELECT ` + networkFields + ` FROM networks n WHERE n.id = ?`
const getDefaultNetwork = `SELECT ` + networkFields + ` FROM networks n WHERE n.is_default = TRUE ORDER BY n.id LIMIT 1`
const getNetworkByGatewayID = `SELECT ` + networkFields + ` FROM networks n JOIN nodes d ON d.network_id = n.id WHERE d.gw_id = ?`
const listNetworks = `SELECT ` + networkFields + ` FROM networks n ORDER BY n.name`
const createNetwork = `INSERT INTO networks (name, homepage_url, tech_support_email, is_default) VALUES (?,?,?,?)`

type rowScanner interface {
	Scan(dest ...any) error
}

func parseNetwork(row rowScanner) (dbo.Network, error) {
	var n dbo.Network
	var id uint64
	err := row.Scan(&id, &n.Name, &n.HomepageURL, &n.TechSupportEmail, &n.IsDefault)
	if err != nil {
		return n, err
	}
	n.ID = &id
	return n, nil
}

func (q *Queries) GetNetworkById(ctx context.Context, id uint64) (dbo.Network, error) {
	return parseNetwork(q.queryRow(ctx, getNetworkById, id))
}

func (q *Queries) GetDefaultNetwork(ctx context.Context) (dbo.Network, error) {
	return parseNetwork(q.queryRow(ctx, getDefaultNetwork))
}

func (q *Queries) GetNetworkByGatewayID(ctx context.Context, gwID string) (dbo.Network, error) {
	return parseNetwork(q.queryRow(ctx, getNetworkByGatewayID, gwID))
}

func (q *Queries) ListNetworks(ctx context.Context) ([]dbo.Network, error) {
	rows, err := q.query(ctx, listNetworks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ret := []dbo.Network{}
	for rows.Next() {
		n, err := parseNetwork(rows)
		if err != nil {
			return nil, err
		}
		ret = append(ret, n)
	}
	return ret, rows.Err()
}

func (q *Queries) CreateNetwork(ctx context.Context, n dbo.Network) (uint64, error) {
	return q.insert(ctx, createNetwork, n.Name, n.HomepageURL, n.TechSupportEmail, n.IsDefault)
}

func GetNetworkById(db *Database, ctx context.Context, id uint64) (dbo.Network, error) {
	log.Logger.Debug().Uint64("network_id", id).Msg("Get Network")
	q := NewQueries(db, db.Dialect)
	n, err := q.GetNetworkById(ctx, id)
	return n, wrapNotFound(err, "networks")
}

// GetCurrentNetwork returns the network of the node behind gwID, or the
// default network when gwID is empty or unknown.
func GetCurrentNetwork(db *Database, ctx context.Context, gwID string) (dbo.Network, error) {
	logg := logging.Enter(ctx, "dao.network.current", map[string]any{"gw_id": gwID})
	q := NewQueries(db, db.Dialect)
	if gwID != "" {
		n, err := q.GetNetworkByGatewayID(ctx, gwID)
		if err == nil {
			logging.Exit(logg, "ok", map[string]any{"source": "node"})
			return n, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			logging.ExitErr(logg, err)
			return n, err
		}
	}
	n, err := q.GetDefaultNetwork(ctx)
	return n, returnWrapNotFound(logg, err, "networks")
}

func ListNetworks(db *Database, ctx context.Context) ([]dbo.Network, error) {
	logg := logging.Enter(ctx, "dao.network.list", nil)
	q := NewQueries(db, db.Dialect)
	ret, err := q.ListNetworks(ctx)
	if err != nil {
		logging.ExitErr(logg, err)
		return nil, err
	}
	logging.Exit(logg, "ok", map[string]any{"count": len(ret)})
	return ret, nil
}

func CreateNetwork(db *Database, ctx context.Context, n dbo.Network) (uint64, error) {
	log.Logger.Debug().Str("name", n.Name).Msg("Create Network")
	q := NewQueries(db, db.Dialect)
	id, err := q.CreateNetwork(ctx, n)
	return id, NormalizeSQLError(err)
}
