package logging

var defaultLogger = NewLogrusAdapter("info", "text")

// GetLogger returns the process-wide default logger. Packages use it until
// the CLI installs a configured logger via SetDefault.
func GetLogger() Logger {
	return defaultLogger
}

// SetDefault replaces the process-wide default logger.
func SetDefault(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}
