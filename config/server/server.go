package server

import (
	"time"
)

type ServerConfig struct {
	Addr     string `yaml:"addr"`
	Timeouts struct {
		Read   time.Duration `yaml:"read"`
		Header time.Duration `yaml:"readHeader"`
		Write  time.Duration `yaml:"write"`
		Idle   time.Duration `yaml:"idle"`
	} `yaml:"timeouts"`
	// TrustedProxies is handed to gin so ClientIP honours X-Forwarded-For
	// only from the gateway-facing reverse proxy.
	TrustedProxies []string `yaml:"trusted_proxies"`
}
