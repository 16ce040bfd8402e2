package config

func (c *Config) TransformBeforeValidation() error {
	c.Database.TransformBeforeValidation()
	c.Auth.TransformBeforeValidation()
	c.Portal.TransformBeforeValidation()
	return nil
}

func (c *Config) TransformAfterValidation() error {
	return c.Portal.TransformAfterValidation()
}
