package database

import (
	"errors"

	"github.com/ignisVeneficus/wifiportal/config/validate"
)

func (d DatabaseConfig) Validate(v *validate.ValidationErrors, path string) {
	if !validate.RequireOneOf(v, path+"/driver", d.Driver, Drivers) {
		return
	}
	if d.Driver == DriverSQLite {
		validate.RequireString(v, path+"/path", d.Path)
		return
	}

	validate.RequireString(v, path+"/host", d.Host)
	validate.RequirePort(v, path+"/port", d.Port)
	validate.RequireString(v, path+"/name", d.Name)
	validate.RequireString(v, path+"/user", d.User)

	if d.Password == "" {
		err := errors.New("password must be set")
		validate.LogConfigError(path+"/password", "***", err)
		v.Add(err)
	} else {
		validate.LogConfigOK(path+"/password", "***")
	}
}
