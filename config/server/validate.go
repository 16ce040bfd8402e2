package server

import (
	"fmt"
	"net"

	"github.com/ignisVeneficus/wifiportal/config/validate"
)

func (cfg *ServerConfig) Validate(v *validate.ValidationErrors, path string) {
	validate.RequireString(v, path+"/addr", cfg.Addr)

	validate.CheckDuration(v, path+"/timeouts/read", cfg.Timeouts.Read)
	validate.CheckDuration(v, path+"/timeouts/readHeader", cfg.Timeouts.Header)
	validate.CheckDuration(v, path+"/timeouts/write", cfg.Timeouts.Write)
	validate.CheckDuration(v, path+"/timeouts/idle", cfg.Timeouts.Idle)

	for i, p := range cfg.TrustedProxies {
		key := fmt.Sprintf("%s/trusted_proxies[%d]", path, i)
		if net.ParseIP(p) != nil {
			validate.LogConfigOK(key, p)
			continue
		}
		if _, _, err := net.ParseCIDR(p); err != nil {
			validate.LogConfigError(key, p, err)
			v.Add(fmt.Errorf("%s: %w", key, err))
			continue
		}
		validate.LogConfigOK(key, p)
	}
}
