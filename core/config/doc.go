// Package config provides configuration management for the standalone web application host.
//
// Every setting is read through a settings.Resolver, so a -D override always wins over
// the environment. A .env file in the working directory is loaded first; variables
// already present in the environment are not replaced by it.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: listener, context and deployment settings (TOMCAT_STANDALONE_*, TOMCAT_CONNECTOR_*)
//   - Log: logging level and format (LOG_*)
//   - Storage: S3/MinIO credentials used when the application is deployed from a bucket (STORAGE_*)
//
// Fields declare their setting name and default with struct tags:
//
//	Port int `setting:"TOMCAT_STANDALONE_PORT" default:"8080"`
//
// # Usage
//
//	r := settings.New(overrides)
//	cfg, err := config.LoadConfig(".", r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Standalone.Port)
package config
