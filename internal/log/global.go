package log

import "os"

// Debug logs at debug level via the default logger
func Debug(args ...interface{}) {
	Default().Debug(args...)
}

// Info logs at info level via the default logger
func Info(args ...interface{}) {
	Default().Info(args...)
}

// Warn logs at warn level via the default logger
func Warn(args ...interface{}) {
	Default().Warn(args...)
}

// Error logs at error level via the default logger
func Error(args ...interface{}) {
	Default().Error(args...)
}

// Debugf logs a formatted debug message via the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message via the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning via the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error via the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Fatalf logs a formatted error and exits
func Fatalf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
	os.Exit(1)
}

// WithField creates a logger with an attached field
func WithField(key string, value interface{}) Logger {
	return Default().WithField(key, value)
}

// WithFields creates a logger with attached fields
func WithFields(fields map[string]interface{}) Logger {
	return Default().WithFields(fields)
}

// WithError creates a logger with an attached error
func WithError(err error) Logger {
	return Default().WithError(err)
}
