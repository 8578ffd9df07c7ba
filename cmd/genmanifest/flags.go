package main

import (
	"github.com/spf13/pflag"
	"github.com/tuxdudehomelab/webprep/internal/config"
)

type flags struct {
	set *pflag.FlagSet

	configFile string
	dir        string
	output     string
	suffix     string
	strict     bool
	verbose    bool
}

func newFlags() *flags {
	def := config.Default().Manifest
	f := &flags{set: pflag.NewFlagSet("genmanifest", pflag.ContinueOnError)}
	f.set.StringVar(&f.configFile, "config", "", "Optional YAML configuration file")
	f.set.StringVar(&f.dir, "dir", def.Dir, "Directory containing the compiled scripts")
	f.set.StringVar(&f.output, "output", def.Output, "Output manifest file")
	f.set.StringVar(&f.suffix, "suffix", def.Suffix, "File name suffix of the scripts to list")
	f.set.BoolVar(&f.strict, "strict", false, "Exit with a failure status when the scripts directory cannot be read")
	f.set.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
	return f
}

// apply overrides cfg with the flags set on the command line.
func (f *flags) apply(cfg *config.Manifest) {
	if f.set.Changed("dir") {
		cfg.Dir = f.dir
	}
	if f.set.Changed("output") {
		cfg.Output = f.output
	}
	if f.set.Changed("suffix") {
		cfg.Suffix = f.suffix
	}
	if f.set.Changed("strict") {
		cfg.Strict = f.strict
	}
}
