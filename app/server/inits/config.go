package inits

import (
	"fmt"
	"os"
	"strings"

	"kokoro-diary/app/server/config"
)

func Config() (cfg *config.Config, err error) {
	cfg = &config.Config{}

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":3000" // default listen address
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if sigsk, exist := os.LookupEnv("JWT_SECRET"); !exist {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	// The comment endpoint returns an error without it, everything else works.
	cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	return cfg, nil
}
