package database

// Driver names accepted in a descriptor resource.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Resource is a named datasource declared in an application's descriptor.
type Resource struct {
	// Name identifies the resource, e.g. "jdbc/main".
	Name string `yaml:"name" validate:"required"`
	// Driver is the database driver (mysql, sqlite).
	Driver string `yaml:"driver" validate:"required,oneof=mysql sqlite"`
	// DSN is the driver specific data source name. ${NAME} references are expanded.
	DSN string `yaml:"dsn" validate:"required"`
	// MaxOpenConns bounds the pool. Zero uses the default of 100.
	MaxOpenConns int `yaml:"maxOpenConns" validate:"min=0"`
	// MaxIdleConns bounds idle connections. Zero uses the default of 10.
	MaxIdleConns int `yaml:"maxIdleConns" validate:"min=0"`
	// TimeoutSeconds bounds the initial ping. Zero uses the default of 30.
	TimeoutSeconds int `yaml:"timeoutSeconds" validate:"min=0"`
}
