// Package dbtest opens throwaway in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"testing"

	dbConfig "github.com/ignisVeneficus/wifiportal/config/database"
	"github.com/ignisVeneficus/wifiportal/db"
	"github.com/ignisVeneficus/wifiportal/db/dao"
	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/ignisVeneficus/wifiportal/utils"
	"github.com/stretchr/testify/require"
)

// Open returns an empty database with the schema created.
func Open(t testing.TB) *dao.Database {
	t.Helper()
	ctx := context.Background()
	d, err := db.Open(ctx, dbConfig.DatabaseConfig{Driver: dbConfig.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	require.NoError(t, dao.CreateSchema(d, ctx))
	return d
}

// Fixture holds the ids created by Seed.
type Fixture struct {
	DefaultNetwork uint64
	OtherNetwork   uint64

	CafeNode     uint64
	LibraryNode  uint64
	WorkshopNode uint64

	Admin uint64
	Owner uint64
	Plain uint64
}

// Seed fills d with two networks, three nodes and three users: a super
// admin, the owner of the cafe node and a non-owner stakeholder of the
// library node.
func Seed(t testing.TB, d *dao.Database) Fixture {
	t.Helper()
	ctx := context.Background()
	var f Fixture
	var err error

	f.DefaultNetwork, err = dao.CreateNetwork(d, ctx, dbo.Network{
		Name:             "Île Sans Fil",
		HomepageURL:      "https://ilesansfil.example",
		TechSupportEmail: "support@ilesansfil.example",
		IsDefault:        true,
	})
	require.NoError(t, err)
	f.OtherNetwork, err = dao.CreateNetwork(d, ctx, dbo.Network{
		Name:        "Zap",
		HomepageURL: "https://zap.example",
	})
	require.NoError(t, err)

	f.CafeNode, err = dao.CreateNode(d, ctx, dbo.Node{NetworkID: f.OtherNetwork, GatewayID: "cafe", Name: "Café Névé"})
	require.NoError(t, err)
	f.LibraryNode, err = dao.CreateNode(d, ctx, dbo.Node{NetworkID: f.DefaultNetwork, GatewayID: "lib", Name: "Bibliothèque"})
	require.NoError(t, err)
	f.WorkshopNode, err = dao.CreateNode(d, ctx, dbo.Node{NetworkID: f.DefaultNetwork, GatewayID: "workshop", Name: "atelier"})
	require.NoError(t, err)

	f.Admin, err = dao.CreateUser(d, ctx, dbo.User{Username: "admin", IsSuperAdmin: true}, "")
	require.NoError(t, err)
	f.Owner, err = dao.CreateUser(d, ctx, dbo.User{Username: "owner", Email: utils.PtrString("owner@example.org")}, "")
	require.NoError(t, err)
	f.Plain, err = dao.CreateUser(d, ctx, dbo.User{Username: "plain"}, "")
	require.NoError(t, err)

	require.NoError(t, dao.AddStakeholder(d, ctx, dbo.Stakeholder{NodeID: f.CafeNode, UserID: f.Owner, IsOwner: true}))
	require.NoError(t, dao.AddStakeholder(d, ctx, dbo.Stakeholder{NodeID: f.LibraryNode, UserID: f.Plain, IsOwner: false}))
	return f
}
