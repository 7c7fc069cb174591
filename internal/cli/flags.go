// Package cli holds the command line flags shared by the demo binaries.
package cli

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/decker502/loadinganim/pkg/config"
)

// Flags are the command line overrides of the loader config.
type Flags struct {
	ConfigPath string
	Verbose    bool
	UseLogo    bool
	StartDelay int
	LoadSecs   float64

	set *flag.FlagSet
}

// Register defines the flags on fs.
func Register(set *flag.FlagSet) *Flags {
	f := &Flags{set: set}
	set.StringVar(&f.ConfigPath, "config", config.DefaultConfigPath, "Loader config YAML (embedded data/ paths or a file on disk)")
	set.BoolVar(&f.Verbose, "verbose", false, "Enable verbose logging (default off)")
	set.BoolVar(&f.UseLogo, "logo", false, "Show the spinning logo that follows the pointer")
	set.IntVar(&f.StartDelay, "delay", config.DefaultStartDelay, "Ticks to wait before the loading animation is drawn")
	set.Float64Var(&f.LoadSecs, "load", 7, "Seconds the simulated load takes")
	return f
}

// LoadConfig reads the config file and applies the flags that were set
// explicitly. A missing default config file is not an error: fallback is
// used instead, or the built-in defaults when fallback is nil.
func (f *Flags) LoadConfig(fallback *config.LoaderConfig) (*config.LoaderConfig, error) {
	cfg, err := config.LoadLoaderConfig(f.ConfigPath)
	if err != nil {
		if f.ConfigPath != config.DefaultConfigPath || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Printf("[Config] %s not found, using defaults", f.ConfigPath)
		cfg = fallback
		if cfg == nil {
			cfg = config.DefaultLoaderConfig()
		}
	}

	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "logo":
			cfg.Animation.UseLogo = f.UseLogo
		case "delay":
			cfg.Animation.StartDelay = max(f.StartDelay, 0)
		case "load":
			cfg.Demo.LoadSeconds = max(f.LoadSecs, 0)
		}
	})
	return cfg, nil
}
