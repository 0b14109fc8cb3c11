package cmd

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config is the optional lumen.toml sitting beside a script, or pointed at
// by $LUMEN_CONFIG.
type config struct {
	Workers    int      `toml:"workers"`
	ModulePath []string `toml:"module_path"`
	Color      string   `toml:"color"` // "auto" | "always" | "never"
}

func defaultConfig() config {
	return config{Workers: 0, Color: "auto"}
}

// loadConfig looks for lumen.toml next to scriptPath, then $LUMEN_CONFIG,
// returning defaultConfig() untouched if neither exists.
func loadConfig(scriptPath string) config {
	cfg := defaultConfig()

	candidates := []string{}
	if scriptPath != "" {
		candidates = append(candidates, filepath.Join(filepath.Dir(scriptPath), "lumen.toml"))
	}
	if envPath := os.Getenv("LUMEN_CONFIG"); envPath != "" {
		candidates = append(candidates, envPath)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(path, &cfg); err == nil {
			return cfg
		}
	}
	return cfg
}
