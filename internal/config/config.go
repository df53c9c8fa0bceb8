package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hugohenrick/tuckshop/internal/infrastructure/database"
)

// Drivers de armazenamento suportados
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config contém as configurações da aplicação
type Config struct {
	HTTPPort           string
	APIBasePath        string
	GinMode            string
	LogLevel           string
	CORSAllowedOrigins []string

	TLSP12Path     string
	TLSP12Password string

	StorageDriver  string
	RedisURL       string
	RedisNamespace string
	Postgres       *database.PostgresConfig

	JWTSecretKey  string
	JWTExpiration time.Duration

	Location    *time.Location
	SeedOnStart bool
}

// Load lê a configuração das variáveis de ambiente
func Load() (*Config, error) {
	expirationHours, err := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "12"))
	if err != nil || expirationHours <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS inválido: %q", os.Getenv("JWT_EXPIRATION_HOURS"))
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE inválido: %w", err)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_ON_START", "true"))
	if err != nil {
		return nil, fmt.Errorf("SEED_ON_START inválido: %w", err)
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		APIBasePath:        "/" + strings.Trim(getEnv("API_BASE_PATH", "/api/v1"), "/"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		TLSP12Path:         os.Getenv("TLS_P12_PATH"),
		TLSP12Password:     os.Getenv("TLS_P12_PASSWORD"),
		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisNamespace:     getEnv("REDIS_NAMESPACE", "tuckshop"),
		Postgres:           database.NewPostgresConfigFromEnv(),
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		JWTExpiration:      time.Duration(expirationHours) * time.Hour,
		Location:           loc,
		SeedOnStart:        seed,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica combinações inválidas
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("STORAGE_DRIVER desconhecido: %q", c.StorageDriver)
	}
	if c.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY é obrigatório")
	}
	if c.TLSP12Path != "" && c.TLSP12Password == "" {
		return fmt.Errorf("TLS_P12_PASSWORD é obrigatório quando TLS_P12_PATH é definido")
	}
	return nil
}

// Addr retorna o endereço de escuta do servidor HTTP
func (c *Config) Addr() string {
	return ":" + c.HTTPPort
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
