package main

import (
	"flag"

	"github.com/sheikhrachel/gol-window/utils"
)

// options holds the command-line flags. Flags that are set explicitly
// override the values read from the config file.
type options struct {
	configPath string
	renderer   string
	seed       uint64
	debug      bool

	fs *flag.FlagSet
}

// registerFlags defines the command-line flags on fs
func registerFlags(fs *flag.FlagSet) *options {
	opts := &options{fs: fs}
	fs.StringVar(&opts.configPath, "config", "config.json", "path to the JSON configuration file")
	// renderer selects the ebiten window or the headless terminal renderer.
	fs.StringVar(&opts.renderer, "renderer", utils.RendererWindow, "renderer to use: window or terminal")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed for the initial cells (0 picks a time-based seed)")
	fs.BoolVar(&opts.debug, "debug", false, "show FPS and population overlay")
	return opts
}

// apply copies the flags set on the command line onto config
func (o *options) apply(config *utils.Config) {
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "renderer":
			config.Renderer = o.renderer
		case "seed":
			config.Seed = o.seed
		case "debug":
			config.Debug = o.debug
		}
	})
}
