package authz

import "fmt"

var log Logger = &NullLogger{}

// Logger is the interface for the logger used by the registry.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// SetLogger sets the registry logger. A nil logger silences all output.
func SetLogger(logger Logger) {
	if logger != nil {
		log = logger
	} else {
		log = &NullLogger{}
	}
}

// NullLogger is null logger
type NullLogger struct {
}

// NewNullLogger returns a new NullLogger
func NewNullLogger() Logger {
	return &NullLogger{}
}

// Debugf is for debug logging
func (nl *NullLogger) Debugf(format string, args ...interface{}) {

}

// Errorf is for error logging
func (nl *NullLogger) Errorf(format string, args ...interface{}) {

}

// ConsoleLogger is console logger
type ConsoleLogger struct {
}

// NewConsoleLogger returns a new ConsoleLogger
func NewConsoleLogger() Logger {
	return &ConsoleLogger{}
}

// Debugf is for debug logging
func (cl *ConsoleLogger) Debugf(format string, args ...interface{}) {
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

// Errorf is for error logging
func (cl *ConsoleLogger) Errorf(format string, args ...interface{}) {
	fmt.Printf("[ERROR] "+format+"\n", args...)
}
