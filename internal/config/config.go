package config

import "os"

type Config struct {
	HTTPAddr    string
	GelfAddr    string
	MaxUploadMB int
}

func Load() *Config {
	return &Config{
		HTTPAddr:    getEnv("TS_ADDR", ":8080"),
		GelfAddr:    getEnv("TS_GELF_ADDR", ""),
		MaxUploadMB: getEnvInt("TS_MAX_UPLOAD_MB", 64),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	return n
}
