package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	AppPort       int
	ArchivePath   string
	ProxyURL      string
	CharThreshold int
	SiteRulesPath string
}

func Load() (*Config, error) {
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8090"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	charThreshold, err := strconv.Atoi(getEnv("CHAR_THRESHOLD", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHAR_THRESHOLD: %w", err)
	}

	return &Config{
		AppPort:       appPort,
		ArchivePath:   getEnv("ARCHIVE_PATH", "data/clipmark.db"),
		ProxyURL:      getEnv("PROXY_URL", ""),
		CharThreshold: charThreshold,
		SiteRulesPath: getEnv("SITE_RULES_PATH", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
