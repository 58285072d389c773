// Package logger provides the zap-based application logger.
package logger

import "go.uber.org/zap"

// Log is the global logger. It defaults to a no-op so library code and tests
// can log without calling Init.
var Log = zap.NewNop()

// Init switches the global logger to production mode.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = l
}
