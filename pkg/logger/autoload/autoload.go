// Package autoload initializes the global logger from LOG_* environment
// variables on blank import.
package autoload

import (
	configx "tripdesigner/pkg/config"
	logx "tripdesigner/pkg/logger"
)

func init() {
	cfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*cfg)
}
