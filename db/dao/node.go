package dao

import (
	"context"

	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const nodeFields = `d.id, d.network_id, d.gw_id, d.name`
const listNodes = `SELECT ` + nodeFields + ` FROM nodes d`
const nodeOwnerClause = ` WHERE d.id IN (SELECT s.node_id FROM node_stakeholders s WHERE s.is_owner = TRUE AND s.user_id = ?)`
const nodeOrder = ` ORDER BY d.name`
const getNodeByGatewayID = `SELECT ` + nodeFields + ` FROM nodes d WHERE d.gw_id = ?`
const createNode = `INSERT INTO nodes (network_id, gw_id, name) VALUES (?,?,?)`
const addStakeholder = `INSERT INTO node_stakeholders (node_id, user_id, is_owner) VALUES (?,?,?)`

func parseNode(row rowScanner) (dbo.Node, error) {
	var n dbo.Node
	var id uint64
	err := row.Scan(&id, &n.NetworkID, &n.GatewayID, &n.Name)
	if err != nil {
		return n, err
	}
	n.ID = &id
	return n, nil
}

// buildListNodes appends the ownership predicate unless the filter is
// unrestricted; the user id always travels as a bound parameter.
func buildListNodes(filter dbo.NodeFilter) (string, []any) {
	if filter.Unrestricted() {
		return listNodes + nodeOrder, nil
	}
	return listNodes + nodeOwnerClause + nodeOrder, []any{*filter.OwnerUserID}
}

func (q *Queries) ListNodes(ctx context.Context, filter dbo.NodeFilter) ([]dbo.Node, error) {
	query, args := buildListNodes(filter)
	rows, err := q.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ret := []dbo.Node{}
	for rows.Next() {
		n, err := parseNode(rows)
		if err != nil {
			return nil, err
		}
		ret = append(ret, n)
	}
	return ret, rows.Err()
}

func (q *Queries) GetNodeByGatewayID(ctx context.Context, gwID string) (dbo.Node, error) {
	return parseNode(q.queryRow(ctx, getNodeByGatewayID, gwID))
}

func (q *Queries) CreateNode(ctx context.Context, n dbo.Node) (uint64, error) {
	return q.insert(ctx, createNode, n.NetworkID, n.GatewayID, n.Name)
}

func (q *Queries) AddStakeholder(ctx context.Context, s dbo.Stakeholder) error {
	_, err := q.exec(ctx, addStakeholder, s.NodeID, s.UserID, s.IsOwner)
	return err
}

func ListNodes(db *Database, ctx context.Context, filter dbo.NodeFilter) ([]dbo.Node, error) {
	logg := logging.Enter(ctx, "dao.node.list", nil)
	logg.Trace().Object("filter", logging.WithLevel(zerolog.DebugLevel, &filter)).Msg("")
	q := NewQueries(db, db.Dialect)
	ret, err := q.ListNodes(ctx, filter)
	if err != nil {
		logging.ExitErr(logg, err)
		return nil, err
	}
	logging.Exit(logg, "ok", map[string]any{"count": len(ret)})
	return ret, nil
}

func GetNodeByGatewayID(db *Database, ctx context.Context, gwID string) (dbo.Node, error) {
	log.Logger.Debug().Str("gw_id", gwID).Msg("Get Node")
	q := NewQueries(db, db.Dialect)
	n, err := q.GetNodeByGatewayID(ctx, gwID)
	return n, wrapNotFound(err, "nodes")
}

func CreateNode(db *Database, ctx context.Context, n dbo.Node) (uint64, error) {
	log.Logger.Debug().Object("node", logging.WithLevel(zerolog.DebugLevel, &n)).Msg("Create Node")
	q := NewQueries(db, db.Dialect)
	id, err := q.CreateNode(ctx, n)
	return id, NormalizeSQLError(err)
}

func AddStakeholder(db *Database, ctx context.Context, s dbo.Stakeholder) error {
	log.Logger.Debug().Uint64("node", s.NodeID).Uint64("user", s.UserID).Bool("owner", s.IsOwner).Msg("Add Stakeholder")
	q := NewQueries(db, db.Dialect)
	return NormalizeSQLError(q.AddStakeholder(ctx, s))
}
