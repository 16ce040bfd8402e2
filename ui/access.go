package ui

type AccessFlags struct {
	IsSuperAdmin bool
	IsOwner      bool
}

// ComputeAccessFlags reads the administrative roles of u. An absent user has
// none.
func ComputeAccessFlags(u User) AccessFlags {
	if u == nil {
		return AccessFlags{}
	}
	return AccessFlags{
		IsSuperAdmin: u.IsSuperAdmin(),
		IsOwner:      u.IsOwner(),
	}
}
