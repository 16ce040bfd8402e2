package config

import "github.com/ignisVeneficus/wifiportal/config/validate"

func (c *Config) Validate() error {
	var verr validate.ValidationErrors

	c.Server.Validate(&verr, "server")
	c.Database.Validate(&verr, "database")
	c.Auth.Validate(&verr, "auth", c.Env == EnvDevelopment)
	c.Portal.Validate(&verr, "portal")

	if verr.HasErrors() {
		return &verr
	}
	return nil
}
