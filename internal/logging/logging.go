// Package logging builds the console loggers shared by the commands.
package logging

import (
	"io"

	"github.com/tuxdude/zzzlog"
	"github.com/tuxdude/zzzlogi"
)

// New returns a console logger writing to dest at info level, or debug
// level when verbose is set.
func New(dest io.Writer, verbose bool) zzzlogi.Logger {
	config := zzzlog.NewConsoleLoggerConfig()
	config.Dest = dest
	config.MaxLevel = zzzlog.LvlInfo
	if verbose {
		config.MaxLevel = zzzlog.LvlDebug
	}
	return zzzlog.NewLogger(config)
}
