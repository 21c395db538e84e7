package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the runtime settings resolved from flags and environment.
type Config struct {
	Addr        string
	DiagAddr    string
	ArticlesDir string
	ContentFile string
	Timezone    string
	Newsletter  bool
}

func loadDotenv() {
	// Missing .env is fine, env vars and flag defaults still apply.
	_ = godotenv.Load()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}

	return b
}
