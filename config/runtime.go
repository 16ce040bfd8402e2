package config

import "sync/atomic"

var global atomic.Pointer[Config]

// SetGlobal publishes the configuration for packages that cannot get it
// passed in. Only the first call has an effect.
func SetGlobal(cfg *Config) {
	global.CompareAndSwap(nil, cfg)
}

func Global() *Config {
	cfg := global.Load()
	if cfg == nil {
		panic("config not initialized")
	}
	return cfg
}
