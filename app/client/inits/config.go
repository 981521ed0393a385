package inits

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kokoro-diary/app/client/config"
)

func Config() (*config.Config, error) {
	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if baseURL, exist := os.LookupEnv("API_BASE_URL"); !exist {
		cfg.APIBaseURL = "http://localhost:3000" // default dev server
	} else {
		cfg.APIBaseURL = baseURL
	}

	if tokenPath, exist := os.LookupEnv("TOKEN_PATH"); exist {
		cfg.TokenPath = tokenPath
	} else {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate user config dir: %w", err)
		}
		cfg.TokenPath = filepath.Join(configDir, "kokoro-diary", "token")
	}

	return &cfg, nil
}
