package main

import (
	"os"
	"strconv"

	"github.com/diamondburned/gtkpathbar/pathbrowser/config"
)

// LoadEnvs overrides settings with the PATHBAR_* environment variables.
func LoadEnvs(s *config.Settings) {
	if css := os.Getenv("PATHBAR_CUSTOM_CSS"); css != "" {
		s.CustomCSS = css
	}

	if ms, err := strconv.ParseUint(os.Getenv("PATHBAR_REVEAL_MS"), 10, 32); err == nil {
		s.RevealerDuration = uint(ms)
	}

	if debug, err := strconv.ParseBool(os.Getenv("PATHBAR_DEBUG")); err == nil {
		s.Debug = debug
	}
}
