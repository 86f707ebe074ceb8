package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/marcodiri/micros-chess/internal/pkg/config"
)

const configPathEnv = config.EnvPrefix + "CONFIG"

// MustLoadConfig reads the -config flag, falling back to CHESS_CONFIG.
func MustLoadConfig() *config.Config {
	path := flag.String("config", os.Getenv(configPathEnv), "path to the yaml config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		panic(fmt.Errorf("load config: %w", err))
	}

	return cfg
}
