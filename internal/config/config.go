// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - ENV: development | production (default: development)
//   - CORS_ORIGIN: Origins permitidas, separadas por vírgula (default: http://localhost:3000)
//
// ## MongoDB
//   - MONGO_URI: URI de conexão (default: mongodb://localhost:27017)
//   - MONGO_DB: Nome do banco (default: benefits)
//
// ## API gov24
//   - OPENAPI_BASE_URL: Base da API pública (default: https://api.odcloud.kr/api)
//   - OPENAPI_SERVICE_KEY: Chave de serviço (obrigatória para sync e enriquecimento)
//   - API_TIMEOUT_MS: Timeout por requisição em ms (default: 30000)
//   - API_MAX_RETRIES: Máximo de tentativas (default: 3)
//   - API_RETRY_DELAY_MS: Base do backoff entre tentativas (default: 1000)
//
// ## Sincronização
//   - SYNC_PAGE_SIZE: Itens por página do serviceList (default: 1000)
//   - SYNC_PAGE_DELAY_MS: Intervalo entre páginas, rate limit (default: 1000)
//
// ## Cache de populares
//   - POPULAR_CACHE_TTL_MS: TTL do snapshot (default: 300000 = 5min)
//   - POPULAR_CACHE_SIZE: Tamanho do snapshot (default: 20)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Env         string
	CORSOrigins []string

	MongoURI string
	MongoDB  string

	// gov24 API
	OpenAPIBaseURL    string
	OpenAPIServiceKey string
	APITimeout        time.Duration
	APIMaxRetries     int
	APIRetryDelay     time.Duration

	// Sincronização
	SyncPageSize  int
	SyncPageDelay time.Duration

	// Cache de populares
	PopularCacheTTL  time.Duration
	PopularCacheSize int

	// Tracing
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Env:        getEnv("ENV", "development"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "benefits"),

		OpenAPIBaseURL:    getEnv("OPENAPI_BASE_URL", "https://api.odcloud.kr/api"),
		OpenAPIServiceKey: getEnv("OPENAPI_SERVICE_KEY", ""),
		APITimeout:        getEnvDuration("API_TIMEOUT_MS", 30000),
		APIMaxRetries:     getEnvInt("API_MAX_RETRIES", 3),
		APIRetryDelay:     getEnvDuration("API_RETRY_DELAY_MS", 1000),

		SyncPageSize:  getEnvInt("SYNC_PAGE_SIZE", 1000),
		SyncPageDelay: getEnvDuration("SYNC_PAGE_DELAY_MS", 1000),

		PopularCacheTTL:  getEnvDuration("POPULAR_CACHE_TTL_MS", 300000),
		PopularCacheSize: getEnvInt("POPULAR_CACHE_SIZE", 20),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	origins := getEnv("CORS_ORIGIN", "http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		cfg.CORSOrigins = append(cfg.CORSOrigins, strings.TrimSpace(origin))
	}

	return cfg
}

// IsDevelopment indica se mensagens de erro internas podem ser expostas
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultMillis int) time.Duration {
	return time.Duration(getEnvInt(key, defaultMillis)) * time.Millisecond
}
