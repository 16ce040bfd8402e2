package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ignisVeneficus/wifiportal/auth"
	"github.com/ignisVeneficus/wifiportal/db/dao"
	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/ignisVeneficus/wifiportal/utils"
	"gopkg.in/yaml.v3"
)

type importNetwork struct {
	Name             string `yaml:"name"`
	HomepageURL      string `yaml:"homepage_url"`
	TechSupportEmail string `yaml:"tech_support_email"`
	Default          bool   `yaml:"default"`
}

type importNode struct {
	GatewayID string `yaml:"gw_id"`
	Name      string `yaml:"name"`
	Network   string `yaml:"network"`
}

type importUser struct {
	Username   string `yaml:"username"`
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	SuperAdmin bool   `yaml:"super_admin"`
	Disabled   bool   `yaml:"disabled"`
}

type importStakeholder struct {
	Node  string `yaml:"node"`
	User  string `yaml:"user"`
	Owner bool   `yaml:"owner"`
}

type importFile struct {
	Networks     []importNetwork     `yaml:"networks"`
	Nodes        []importNode        `yaml:"nodes"`
	Users        []importUser        `yaml:"users"`
	Stakeholders []importStakeholder `yaml:"stakeholders"`
}

// ImportResult counts the rows created; rows that already existed are not
// counted.
type ImportResult struct {
	Networks     int
	Nodes        int
	Users        int
	Stakeholders int
}

// Import loads a YAML document into the database. Existing networks, nodes
// and users are matched by name, gateway id and username and left as they
// are, so the same file can be imported again.
func Import(ctx context.Context, db *dao.Database, r io.Reader) (ImportResult, error) {
	logg := logging.Enter(ctx, "cli.import", nil)
	var res ImportResult

	var in importFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		logging.ExitErr(logg, err)
		return res, fmt.Errorf("import file: %w", err)
	}

	networkIDs, err := existingNetworks(ctx, db)
	if err != nil {
		logging.ExitErr(logg, err)
		return res, err
	}
	for _, n := range in.Networks {
		if _, ok := networkIDs[n.Name]; ok {
			continue
		}
		id, err := dao.CreateNetwork(db, ctx, dbo.Network{
			Name:             n.Name,
			HomepageURL:      n.HomepageURL,
			TechSupportEmail: n.TechSupportEmail,
			IsDefault:        n.Default,
		})
		if err != nil {
			logging.ExitErr(logg, err)
			return res, fmt.Errorf("network %q: %w", n.Name, err)
		}
		networkIDs[n.Name] = id
		res.Networks++
	}

	nodeIDs := map[string]uint64{}
	for _, n := range in.Nodes {
		netID, ok := networkIDs[n.Network]
		if !ok {
			err := fmt.Errorf("node %q: unknown network %q", n.GatewayID, n.Network)
			logging.ExitErr(logg, err)
			return res, err
		}
		id, err := dao.CreateNode(db, ctx, dbo.Node{NetworkID: netID, GatewayID: n.GatewayID, Name: n.Name})
		if errors.Is(err, dao.ErrDataDuplicateKey) {
			existing, err := dao.GetNodeByGatewayID(db, ctx, n.GatewayID)
			if err != nil {
				logging.ExitErr(logg, err)
				return res, err
			}
			nodeIDs[n.GatewayID] = *existing.ID
			continue
		}
		if err != nil {
			logging.ExitErr(logg, err)
			return res, fmt.Errorf("node %q: %w", n.GatewayID, err)
		}
		nodeIDs[n.GatewayID] = id
		res.Nodes++
	}

	userIDs := map[string]uint64{}
	for _, u := range in.Users {
		hash := ""
		if u.Password != "" {
			if hash, err = auth.HashPassword(u.Password); err != nil {
				logging.ExitErr(logg, err)
				return res, err
			}
		}
		user := dbo.User{Username: u.Username, IsSuperAdmin: u.SuperAdmin, Disabled: u.Disabled}
		if u.Email != "" {
			user.Email = utils.PtrString(u.Email)
		}
		id, err := dao.CreateUser(db, ctx, user, hash)
		if errors.Is(err, dao.ErrDataDuplicateKey) {
			existing, err := dao.GetUserByUsername(db, ctx, u.Username)
			if err != nil {
				logging.ExitErr(logg, err)
				return res, err
			}
			userIDs[u.Username] = *existing.ID
			continue
		}
		if err != nil {
			logging.ExitErr(logg, err)
			return res, fmt.Errorf("user %q: %w", u.Username, err)
		}
		userIDs[u.Username] = id
		res.Users++
	}

	for _, s := range in.Stakeholders {
		nodeID, err := lookupNode(ctx, db, nodeIDs, s.Node)
		if err != nil {
			logging.ExitErr(logg, err)
			return res, err
		}
		userID, err := lookupUser(ctx, db, userIDs, s.User)
		if err != nil {
			logging.ExitErr(logg, err)
			return res, err
		}
		err = dao.AddStakeholder(db, ctx, dbo.Stakeholder{NodeID: nodeID, UserID: userID, IsOwner: s.Owner})
		if errors.Is(err, dao.ErrDataDuplicateKey) {
			continue
		}
		if err != nil {
			logging.ExitErr(logg, err)
			return res, fmt.Errorf("stakeholder %s/%s: %w", s.Node, s.User, err)
		}
		res.Stakeholders++
	}

	logging.Exit(logg, "ok", map[string]any{
		"networks": res.Networks, "nodes": res.Nodes, "users": res.Users, "stakeholders": res.Stakeholders,
	})
	return res, nil
}

func existingNetworks(ctx context.Context, db *dao.Database) (map[string]uint64, error) {
	networks, err := dao.ListNetworks(db, ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]uint64, len(networks))
	for _, n := range networks {
		ids[n.Name] = *n.ID
	}
	return ids, nil
}

func lookupNode(ctx context.Context, db *dao.Database, known map[string]uint64, gwID string) (uint64, error) {
	if id, ok := known[gwID]; ok {
		return id, nil
	}
	n, err := dao.GetNodeByGatewayID(db, ctx, gwID)
	if err != nil {
		return 0, fmt.Errorf("stakeholder node %q: %w", gwID, err)
	}
	return *n.ID, nil
}

func lookupUser(ctx context.Context, db *dao.Database, known map[string]uint64, username string) (uint64, error) {
	if id, ok := known[username]; ok {
		return id, nil
	}
	u, err := dao.GetUserByUsername(db, ctx, username)
	if err != nil {
		return 0, fmt.Errorf("stakeholder user %q: %w", username, err)
	}
	return *u.ID, nil
}
