package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level written (debug, info, warn, error).
	Level string `setting:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	// Format is the encoding of log entries (json, console).
	Format string `setting:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
}
