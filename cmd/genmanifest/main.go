// Command genmanifest lists the compiled scripts of the web front end and
// writes them to a JSON manifest of the form {"scripts": [...]}.
//
// An unreadable scripts directory is logged but still exits successfully,
// unless -strict is set.
package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/tuxdudehomelab/webprep/internal/config"
	"github.com/tuxdudehomelab/webprep/internal/logging"
	"github.com/tuxdudehomelab/webprep/internal/manifest"
)

const (
	exitSuccess = 0
	exitFailure = 1
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
		errLog.Errorf("Invalid arguments, reason: %v", err)
		return exitFailure
	}
	if f.verbose {
		setupLoggers(true)
	}
	if f.set.NArg() != 0 {
		errLog.Errorf("genmanifest takes no arguments, found %q", f.set.Args())
		return exitFailure
	}

	cfg, err := config.Load(f.configFile)
	if err != nil {
		errLog.Errorf("Loading configuration failed, reason: %v", err)
		return exitFailure
	}
	m := cfg.Manifest
	f.apply(&m)
	err = m.Validate()
	if err != nil {
		errLog.Errorf("Invalid configuration, reason: %v", err)
		return exitFailure
	}
	log.Debugf("Manifest config: %+v", m)

	mf, err := manifest.Generate(m.Dir, m.Suffix)
	if err != nil {
		errLog.Errorf("Error reading JS directory: %v", err)
		if m.Strict {
			return exitFailure
		}
		return exitSuccess
	}
	log.Debugf("Scripts: %v", mf.Scripts)

	err = manifest.WriteFile(m.Output, mf)
	if err != nil {
		errLog.Errorf("Writing manifest failed, reason: %v", err)
		return exitFailure
	}

	log.Infof("Generated %s with %d files", filepath.Base(m.Output), len(mf.Scripts))
	return exitSuccess
}

func main() {
	os.Exit(run(os.Args[1:]))
}
