package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config file keys, overridable via REVIEWCRITIC_* environment variables.
const (
	cfgReviewer = "reviewer"
	cfgOutput   = "output"
	cfgStrict   = "strict"
	cfgRedact   = "redact"
)

// initConfig loads the optional config file. An explicit path wins;
// otherwise ~/.config/reviewcritic/config.yaml is used when present.
func initConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "reviewcritic"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("REVIEWCRITIC")
	viper.AutomaticEnv()

	viper.SetDefault(cfgReviewer, "AI Code Review System")
	viper.SetDefault(cfgOutput, "")
	viper.SetDefault(cfgStrict, false)
	viper.SetDefault(cfgRedact, true)

	// Config file is optional.
	_ = viper.ReadInConfig()
}
