package database

type Driver string

const (
	DriverMySQL    Driver = "mysql"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

var Drivers = []Driver{DriverMySQL, DriverPostgres, DriverSQLite}

type DatabaseConfig struct {
	Driver   Driver `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	// Path is the database file for the sqlite driver.
	Path string `yaml:"path"`
}

func (d *DatabaseConfig) TransformBeforeValidation() {
	if d.Driver == "" {
		d.Driver = DriverMySQL
	}
	if d.Port == 0 {
		switch d.Driver {
		case DriverMySQL:
			d.Port = 3306
		case DriverPostgres:
			d.Port = 5432
		}
	}
}
