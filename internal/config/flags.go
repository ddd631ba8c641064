package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagThings  = flag.String("things", "", "Thing definitions directory")
	flagNoWatch = flag.Bool("no-watch", false, "Disable thing definition watching")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagThings != "" {
		cfg.Data.ThingDirs = []string{*flagThings}
	}
	if *flagNoWatch {
		cfg.Watch.Enabled = false
	}
}
