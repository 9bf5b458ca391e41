package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App               AppConfig
	HTTP              ServerConfig
	GRPC              GRPCConfig
	Log               LogConfig
	InternalEndpoints InternalEndpointsConfig
}

type AppConfig struct {
	ServiceName     string
	ShutdownTimeout time.Duration
}

type ServerConfig struct {
	Host string
	Port string
}

type GRPCConfig struct {
	ServerConfig
	Enabled bool
}

type LogConfig struct {
	Level  string
	Format string
}

// InternalEndpointsConfig points at services that guard the internal API
// group and the gRPC surface. The landing page itself stays public.
type InternalEndpointsConfig struct {
	AuthGRPCAddr string
}

// Load reads configuration from the environment, optionally seeded from a
// .env file in the working directory. Every setting has a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			ServiceName:     getEnv("APP_SERVICE_NAME", "landing-service"),
			ShutdownTimeout: getSecondsEnv("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		GRPC: GRPCConfig{
			ServerConfig: ServerConfig{
				Host: getEnv("GRPC_HOST", "0.0.0.0"),
				Port: getEnv("GRPC_PORT", "9090"),
			},
			Enabled: getBoolEnv("GRPC_ENABLED", true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		InternalEndpoints: InternalEndpointsConfig{
			AuthGRPCAddr: getEnv("AUTH_SERVICE_GRPC_ADDR", "localhost:9090"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
