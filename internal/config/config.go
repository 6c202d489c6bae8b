package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	AppEnv     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPoolSize int

	JWTSecret string

	// Used only by the one-time admin initialization.
	AdminEmail    string
	AdminPassword string

	UploadDir         string
	AdminDashboardDir string
	MaxUploadSize     int64

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is honoured when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("PORT", "5000"),
		AppEnv:            getEnv("APP_ENV", "production"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBUser:            getEnv("DB_USER", "root"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            getEnv("DB_NAME", "education_portal"),
		DBPoolSize:        getEnvInt("DB_POOL_SIZE", 10),
		JWTSecret:         getEnv("JWT_SECRET", "change-me"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		AdminDashboardDir: getEnv("ADMIN_DASHBOARD_DIR", "public/admin"),
		MaxUploadSize:     int64(getEnvInt("MAX_UPLOAD_SIZE", 100*1024*1024)),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		CacheTTL:          time.Duration(getEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
	}
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
