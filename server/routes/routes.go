package routes

import (
	"fmt"
	"strings"

	"github.com/ignisVeneficus/wifiportal/tpl/data"
)

const (
	rootPath   = "/"
	adminPath  = "/admin/"
	loginPath  = "/login/"
	logoutPath = "/logout"
	pagePath   = "/page/%s"
)

func getPath(pattern string, params ...string) string {
	p := strings.ReplaceAll(pattern, "%d", "%s")
	args := make([]any, len(params))
	for i, v := range params {
		args[i] = v
	}
	return fmt.Sprintf(p, args...)
}

func GetRootPath() string {
	return rootPath
}

func GetAdminPath() string {
	return adminPath
}

func GetLoginPath() string {
	return loginPath
}

func GetLogoutPath() string {
	return logoutPath
}

func GetPagePath() string {
	return getPath(pagePath, ":name")
}
func CreatePagePath(name string) string {
	return fmt.Sprintf(pagePath, name)
}

// CreatePortalPath is the start page, carrying the gateway the client was
// captured by when there is one.
func CreatePortalPath(gwID, gwAddress, gwPort string) *data.URLBuilder {
	u := data.NewURL(rootPath)
	if gwID != "" && gwAddress != "" && gwPort != "" {
		u.With("gw_id", gwID).With("gw_address", gwAddress).With("gw_port", gwPort)
	}
	return u
}
