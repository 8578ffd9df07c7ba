// Command prepindex assembles index.html from the HTML template of the web
// front end.
//
// In vite mode the template line carrying the marker token is replaced by
// one <script type="module"> tag per module source. In trunk mode every
// marker line is removed.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/tuxdudehomelab/webprep/internal/config"
	"github.com/tuxdudehomelab/webprep/internal/entrypoint"
	"github.com/tuxdudehomelab/webprep/internal/logging"
)

const (
	exitSuccess = 0
	exitFailure = 1

	usage = "Usage: prepindex [vite|trunk]"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	log    = logging.New(stdout, false)
	errLog = logging.New(stderr, false)
)

// setupLoggers sends progress to stdout and diagnostics to stderr.
func setupLoggers(verbose bool) {
	log = logging.New(stdout, verbose)
	errLog = logging.New(stderr, verbose)
}

func run(args []string) int {
	setupLoggers(false)
	f := newFlags()
	f.set.SetOutput(stderr)
	err := f.set.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitSuccess
	}
	if err != nil {
		errLog.Errorf("%s", usage)
		return exitFailure
	}
	if f.verbose {
		setupLoggers(true)
	}

	// The mode is validated before anything is read.
	if f.set.NArg() != 1 {
		errLog.Errorf("%s", usage)
		return exitFailure
	}
	mode, err := entrypoint.ParseMode(f.set.Arg(0))
	if err != nil {
		errLog.Errorf("%s", usage)
		return exitFailure
	}

	cfg, err := config.Load(f.configFile)
	if err != nil {
		errLog.Errorf("Loading configuration failed, reason: %v", err)
		return exitFailure
	}
	e := cfg.Entrypoint
	f.apply(&e)
	err = e.Validate()
	if err != nil {
		errLog.Errorf("Invalid configuration, reason: %v", err)
		return exitFailure
	}
	log.Debugf("Entrypoint config: %+v, mode: %s", e, mode)

	err = entrypoint.Run(entrypoint.Options{
		Mode:         mode,
		Template:     e.Template,
		Output:       e.Output,
		ModulesDir:   e.ModulesDir,
		ModuleSuffix: e.ModuleSuffix,
		SrcPrefix:    e.SrcPrefix,
		Sentinel:     e.Sentinel,
	})
	if err != nil {
		errLog.Errorf("❌ Error processing index.html: %v", err)
		return exitFailure
	}

	log.Infof("✅ Generated index.html for %s.", mode.Title())
	return exitSuccess
}

func main() {
	os.Exit(run(os.Args[1:]))
}
