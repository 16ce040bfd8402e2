package dbo

import (
	"time"

	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/rs/zerolog"
)

type User struct {
	ID           *uint64
	Username     string
	Email        *string
	IsSuperAdmin bool
	Disabled     bool
	CreatedAt    time.Time
}

func (u *User) MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level) {
	if level <= zerolog.DebugLevel {
		e.Str("username", u.Username).
			Bool("super_admin", u.IsSuperAdmin).
			Bool("disabled", u.Disabled)
		logging.Uint64If(e, "id", u.ID)
	}
	if level == zerolog.TraceLevel {
		logging.StrIf(e, "email", u.Email)
		e.Time("created_at", u.CreatedAt)
	}
}

type Network struct {
	ID               *uint64
	Name             string
	HomepageURL      string
	TechSupportEmail string
	IsDefault        bool
}

func (n *Network) MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level) {
	if level <= zerolog.DebugLevel {
		e.Str("name", n.Name).Bool("default", n.IsDefault)
		logging.Uint64If(e, "id", n.ID)
	}
	if level == zerolog.TraceLevel {
		e.Str("homepage", n.HomepageURL).Str("tech_support", n.TechSupportEmail)
	}
}

type Node struct {
	ID        *uint64
	NetworkID uint64
	GatewayID string
	Name      string
}

func (n *Node) MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level) {
	if level <= zerolog.DebugLevel {
		e.Str("gw_id", n.GatewayID).Str("name", n.Name).Uint64("network_id", n.NetworkID)
		logging.Uint64If(e, "id", n.ID)
	}
}

type Stakeholder struct {
	NodeID  uint64
	UserID  uint64
	IsOwner bool
}

// NodeFilter restricts a node listing. A nil OwnerUserID lists every node;
// otherwise only nodes the user is a registered owner of are returned.
type NodeFilter struct {
	OwnerUserID *uint64
}

func (f NodeFilter) Unrestricted() bool {
	return f.OwnerUserID == nil
}

func (f *NodeFilter) MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level) {
	if level <= zerolog.DebugLevel {
		e.Bool("unrestricted", f.Unrestricted())
		logging.Uint64If(e, "owner_user_id", f.OwnerUserID)
	}
}
