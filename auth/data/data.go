package data

import (
	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/rs/zerolog"
)

type AuthProvider string

const (
	ProviderSession AuthProvider = "session"
	ProviderDev     AuthProvider = "dev-environment"
)

// UserContext is the identity of a logged-in request. Anonymous requests
// carry no UserContext at all.
type UserContext struct {
	UserID     uint64
	UserName   string
	SuperAdmin bool
	// OwnedNodes counts the nodes the user is a registered owner of.
	OwnedNodes int
	// SplashOnly marks the shared splash-only account ("nobody").
	SplashOnly bool
	Provider   AuthProvider
}

var DevName = "dev admin"

func (u *UserContext) IsNobody() bool {
	return u.SplashOnly
}

func (u *UserContext) IsSuperAdmin() bool {
	return u.SuperAdmin && !u.SplashOnly
}

func (u *UserContext) IsOwner() bool {
	return u.OwnedNodes > 0 && !u.SplashOnly
}

func (u *UserContext) GetUsername() string {
	return u.UserName
}

func (u *UserContext) GetID() uint64 {
	return u.UserID
}

func (u *UserContext) MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level) {
	if level <= zerolog.DebugLevel {
		e.Uint64("userID", u.UserID).
			Bool("super_admin", u.SuperAdmin).
			Int("owned_nodes", u.OwnedNodes).
			Str("provider", string(u.Provider))
	}
	if level == zerolog.TraceLevel {
		e.Str("username", u.UserName)
	}
}

// FromUser builds the request identity of a stored user.
func FromUser(u dbo.User, ownedNodes int, splashOnlyUsername string) *UserContext {
	var id uint64
	if u.ID != nil {
		id = *u.ID
	}
	return &UserContext{
		UserID:     id,
		UserName:   u.Username,
		SuperAdmin: u.IsSuperAdmin,
		OwnedNodes: ownedNodes,
		SplashOnly: u.Username == splashOnlyUsername,
		Provider:   ProviderSession,
	}
}

func DevContext() *UserContext {
	return &UserContext{
		UserID:     1,
		UserName:   DevName,
		SuperAdmin: true,
		Provider:   ProviderDev,
	}
}
