// Package config holds the command line settings shared by the tutorials.
package config

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
)

type Config struct {
	Width  int
	Height int
	VSync  bool

	// Texture is the image used by the textured tutorials.
	Texture string
	// Stats shows update and render timings in the window title.
	Stats bool

	CPUProfile string
}

// Default returns the settings used when no flags are given.
func Default() Config {
	return Config{
		Width:   640,
		Height:  480,
		VSync:   true,
		Texture: "data/test.png",
	}
}

// Parse parses args (without the program name) on top of Default.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	flags.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "wait for vertical sync when swapping buffers")
	flags.StringVar(&cfg.Texture, "texture", cfg.Texture, "texture image path")
	flags.BoolVar(&cfg.Stats, "stats", cfg.Stats, "show frame timings in the window title")
	flags.StringVar(&cfg.CPUProfile, "cpuprofile", cfg.CPUProfile, "write cpu profile to file")

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// MustParse parses os.Args and exits with status 2 on bad flags.
func MustParse() Config {
	cfg, err := Parse(os.Args[0], os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg
}

// StartProfile starts CPU profiling when CPUProfile is set.
// The returned function stops it and is never nil.
func (cfg Config) StartProfile() (stop func(), err error) {
	if cfg.CPUProfile == "" {
		return func() {}, nil
	}

	f, err := os.Create(cfg.CPUProfile)
	if err != nil {
		return func() {}, fmt.Errorf("unable to create cpu-profile %q: %w", cfg.CPUProfile, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return func() {}, fmt.Errorf("unable to start cpu-profile: %w", err)
	}

	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}
