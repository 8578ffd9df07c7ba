package main

import (
	"github.com/spf13/pflag"
	"github.com/tuxdudehomelab/webprep/internal/config"
)

type flags struct {
	set *pflag.FlagSet

	configFile   string
	template     string
	output       string
	modulesDir   string
	moduleSuffix string
	srcPrefix    string
	sentinel     string
	verbose      bool
}

func newFlags() *flags {
	def := config.Default().Entrypoint
	f := &flags{set: pflag.NewFlagSet("prepindex", pflag.ContinueOnError)}
	f.set.StringVar(&f.configFile, "config", "", "Optional YAML configuration file")
	f.set.StringVar(&f.template, "template", def.Template, "Source HTML template")
	f.set.StringVar(&f.output, "output", def.Output, "Output HTML entry point")
	f.set.StringVar(&f.modulesDir, "modules", def.ModulesDir, "Directory of the module sources injected in vite mode")
	f.set.StringVar(&f.moduleSuffix, "suffix", def.ModuleSuffix, "File name suffix of the module sources")
	f.set.StringVar(&f.srcPrefix, "src-prefix", def.SrcPrefix, "Prefix of the src attribute of the generated script tags")
	f.set.StringVar(&f.sentinel, "sentinel", def.Sentinel, "Token identifying the marker line of the template")
	f.set.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
	return f
}

// apply overrides cfg with the flags set on the command line.
func (f *flags) apply(cfg *config.Entrypoint) {
	if f.set.Changed("template") {
		cfg.Template = f.template
	}
	if f.set.Changed("output") {
		cfg.Output = f.output
	}
	if f.set.Changed("modules") {
		cfg.ModulesDir = f.modulesDir
	}
	if f.set.Changed("suffix") {
		cfg.ModuleSuffix = f.moduleSuffix
	}
	if f.set.Changed("src-prefix") {
		cfg.SrcPrefix = f.srcPrefix
	}
	if f.set.Changed("sentinel") {
		cfg.Sentinel = f.sentinel
	}
}
