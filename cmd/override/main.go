// Command override runs the demo that replaces all three animation slots:
// a ring orbiting the centre, a spinning triangle at the pointer and the
// loading words typed out one character at a time.
//
// Usage:
//
//	go run ./cmd/override [flags]
//
// The flags are the same as the basic demo. Without -config, data/loader.yaml
// is read from the working directory when present; otherwise the demo runs
// with the pointer logo on, as if started with -logo.
package main

import (
	"flag"
	"log"

	"github.com/decker502/loadinganim/internal/cli"
	"github.com/decker502/loadinganim/pkg/app"
	"github.com/decker502/loadinganim/pkg/demos"
)

func main() {
	flags := cli.Register(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.LoadConfig(demos.OverrideDefaults())
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	settings := demos.SettingsFromConfig(cfg)
	settings.Options.Words = append([]string(nil), demos.OverrideWords...)

	a, err := app.NewApp(app.Config{Verbose: flags.Verbose, Loader: *cfg}, demos.NewOverride(settings))
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
