package config

import (
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// AdminConfig is the single static credential pair guarding admin routes.
type AdminConfig struct {
	Username string
	Password string
}

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Admin  AdminConfig

	// OrdersPublic opens GET /api/orders to unauthenticated clients.
	// Admin-gated by default.
	OrdersPublic bool

	// MockStore swaps MongoDB for the in-memory store (local dev only).
	MockStore bool

	SeedFile  string
	PublicDir string
}

// Load reads the environment once into an immutable Config. Validation of
// required values (the Mongo URI) is left to the caller so that startup
// failures go through the application logger.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Mongo: MongoConfig{
			URI:            os.Getenv("MONGO_URI"),
			Database:       getEnv("MONGO_DB", "qrorder"),
			ConnectTimeout: getDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USER", "admin"),
			Password: getEnv("ADMIN_PASS", "admin123"),
		},
		OrdersPublic: getBool("ORDERS_PUBLIC", false),
		MockStore:    getBool("MOCK_STORE", false),
		SeedFile:     getEnv("SEED_FILE", "data/menu-seed.json"),
		PublicDir:    getEnv("PUBLIC_DIR", "public"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
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

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
