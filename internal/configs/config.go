package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MicroburbsConfig хранит параметры доступа к внешнему Microburbs API.
type MicroburbsConfig struct {
	// APIURL - фиксированный эндпоинт выдачи объявлений по району.
	APIURL string
	// APIToken - bearer-токен. В песочнице Microburbs это буквально "test".
	APIToken string
	// Timeout ограничивает исходящий запрос целиком.
	Timeout time.Duration
}

type StdoutLogConfig struct {
	Level string // По умолчанию DEBUG
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string // По умолчанию INFO
}

// AppConfig хранит всю конфигурацию приложения.
// Передается явно в NewApp: никакого глобального мутабельного состояния.
type AppConfig struct {
	AppName string
	Port    string // Порт, на котором слушает сам сервис

	// AllowedOrigins - origin'ы фронтенда, которым разрешен CORS.
	AllowedOrigins []string

	Microburbs   MicroburbsConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Рекомендуется использовать .env файл для локальной разработки.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}

	if err != nil {
		// Отсутствие .env не фатально: в контейнере переменные приходят из окружения.
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		AppName: getEnv("APP_NAME", "suburb-analyzer-service"),
		Port:    getEnv("PORT", "8080"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),

		Microburbs: MicroburbsConfig{
			APIURL:   getEnv("MICROBURBS_API_URL", "https://www.microburbs.com.au/report_generator/api/suburb/properties"),
			APIToken: getEnv("MICROBURBS_API_TOKEN", "test"),
			Timeout:  time.Duration(getEnvAsInt("MICROBURBS_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnv("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnv("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

// getEnv - вспомогательная функция для чтения переменных окружения с значением по умолчанию.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
