package dao_test

import (
	"context"
	"testing"

	"github.com/ignisVeneficus/wifiportal/db/dao"
	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/ignisVeneficus/wifiportal/db/dbtest"
	"github.com/ignisVeneficus/wifiportal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewayIDs(nodes []dbo.Node) []string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.GatewayID)
	}
	return ids
}

func TestListNodesUnrestricted(t *testing.T) {
	d := dbtest.Open(t)
	dbtest.Seed(t, d)

	nodes, err := dao.ListNodes(d, context.Background(), dbo.NodeFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cafe", "lib", "workshop"}, gatewayIDs(nodes))
}

func TestListNodesOwnerFilter(t *testing.T) {
	d := dbtest.Open(t)
	f := dbtest.Seed(t, d)
	ctx := context.Background()

	nodes, err := dao.ListNodes(d, ctx, dbo.NodeFilter{OwnerUserID: utils.PtrUint64(f.Owner)})
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe"}, gatewayIDs(nodes))

	// a stakeholder without the owner flag sees nothing
	nodes, err = dao.ListNodes(d, ctx, dbo.NodeFilter{OwnerUserID: utils.PtrUint64(f.Plain)})
	require.NoError(t, err)
	assert.Empty(t, nodes)

	nodes, err = dao.ListNodes(d, ctx, dbo.NodeFilter{OwnerUserID: utils.PtrUint64(f.Admin)})
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestCountOwnedNodes(t *testing.T) {
	d := dbtest.Open(t)
	f := dbtest.Seed(t, d)
	ctx := context.Background()

	n, err := dao.CountOwnedNodes(d, ctx, f.Owner)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = dao.CountOwnedNodes(d, ctx, f.Plain)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestGetUser(t *testing.T) {
	d := dbtest.Open(t)
	f := dbtest.Seed(t, d)
	ctx := context.Background()

	u, err := dao.GetUserById(d, ctx, f.Admin)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.True(t, u.IsSuperAdmin)

	u, err = dao.GetUserByUsername(d, ctx, "owner")
	require.NoError(t, err)
	require.NotNil(t, u.Email)
	assert.Equal(t, "owner@example.org", *u.Email)
	assert.False(t, u.IsSuperAdmin)

	_, err = dao.GetUserById(d, ctx, 9999)
	assert.ErrorIs(t, err, dao.ErrDataNotFound)
}

func TestDisabledUserIsNotLoaded(t *testing.T) {
	d := dbtest.Open(t)
	ctx := context.Background()

	id, err := dao.CreateUser(d, ctx, dbo.User{Username: "gone", Disabled: true}, "")
	require.NoError(t, err)
	_, err = dao.GetUserById(d, ctx, id)
	assert.ErrorIs(t, err, dao.ErrDataNotFound)
}

func TestCreateUserDuplicate(t *testing.T) {
	d := dbtest.Open(t)
	dbtest.Seed(t, d)

	_, err := dao.CreateUser(d, context.Background(), dbo.User{Username: "admin"}, "")
	assert.ErrorIs(t, err, dao.ErrDataDuplicateKey)
}

func TestGetCurrentNetwork(t *testing.T) {
	d := dbtest.Open(t)
	dbtest.Seed(t, d)
	ctx := context.Background()

	n, err := dao.GetCurrentNetwork(d, ctx, "cafe")
	require.NoError(t, err)
	assert.Equal(t, "Zap", n.Name)

	n, err = dao.GetCurrentNetwork(d, ctx, "unknown-gateway")
	require.NoError(t, err)
	assert.Equal(t, "Île Sans Fil", n.Name)
	assert.True(t, n.IsDefault)

	n, err = dao.GetCurrentNetwork(d, ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Île Sans Fil", n.Name)
}

func TestGetCurrentNetworkWithoutDefault(t *testing.T) {
	d := dbtest.Open(t)
	_, err := dao.GetCurrentNetwork(d, context.Background(), "")
	assert.ErrorIs(t, err, dao.ErrDataNotFound)
}

func TestListNetworks(t *testing.T) {
	d := dbtest.Open(t)
	dbtest.Seed(t, d)

	networks, err := dao.ListNetworks(d, context.Background())
	require.NoError(t, err)
	require.Len(t, networks, 2)
}

func TestGetNetworkById(t *testing.T) {
	d := dbtest.Open(t)
	fx := dbtest.Seed(t, d)

	n, err := dao.GetNetworkById(d, context.Background(), fx.OtherNetwork)
	require.NoError(t, err)
	assert.Equal(t, "Zap", n.Name)

	_, err = dao.GetNetworkById(d, context.Background(), 9999)
	assert.ErrorIs(t, err, dao.ErrDataNotFound)
}
