package avl

import "log"

var (
	_ Logger = (*nopLogger)(nil)
	_ Logger = (*stdLogger)(nil)
)

type Logger interface {
	Log(format string, args ...interface{})
}

// NewStdLogger returns a Logger writing through the standard log package.
func NewStdLogger() Logger {
	return &stdLogger{}
}

type nopLogger struct{}

func (n *nopLogger) Log(format string, args ...interface{}) {}

type stdLogger struct{}

func (s *stdLogger) Log(format string, args ...interface{}) {
	if len(format) == 0 || format[len(format)-1] != '\n' {
		format += "\n"
	}
	log.Printf("AVL: "+format, args...)
}
