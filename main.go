package main

import (
	"flag"
	"io"
	"log"

	"GraffitiPad/internal/config"
	"GraffitiPad/internal/ui"
)

type cliOpts struct {
	configPath string
	initConfig bool
	selector   string
	color      string
	doLog      bool
}

func parseCLIOpts() cliOpts {
	var opt cliOpts
	flag.StringVar(&opt.configPath, "config", config.Path(), "Path to the TOML config file")
	flag.BoolVar(&opt.initConfig, "init", false, "Write the default config to -config and exit")
	flag.StringVar(&opt.selector, "selector", "", "Selector of the element to draw on, overrides the config")
	flag.StringVar(&opt.color, "color", "", "Stroke color, overrides the config")
	flag.BoolVar(&opt.doLog, "log", true, "Print log output to stderr")
	flag.Parse()
	return opt
}

func main() {
	opt := parseCLIOpts()
	if !opt.doLog {
		log.SetOutput(io.Discard)
	}

	if opt.initConfig {
		if err := config.Write(opt.configPath, config.Default()); err != nil {
			log.Fatalf("Couldn't initialize config: %v", err)
		}
		log.Printf("Wrote default config to %s", opt.configPath)
		return
	}

	cfg, err := config.Load(opt.configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if opt.selector != "" {
		cfg.Selector = opt.selector
	}
	if opt.color != "" {
		cfg.StrokeColor = opt.color
	}

	log.Println("Starting Graffiti Pad")
	ui.RunApp(cfg)
}
