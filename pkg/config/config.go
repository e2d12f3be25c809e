package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App   AppConfig
	Store StoreConfig
	Auth  AuthConfig
	Cache CacheConfig
	Mock  MockConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// StoreConfig configuración del almacén remoto de listas.
type StoreConfig struct {
	BaseURL string // ej. https://store.example.com/api
	Timeout time.Duration
}

// AuthConfig credencial y secreto del token de identidad.
type AuthConfig struct {
	Token     string // token de acceso emitido por el colaborador de identidad
	JWTSecret string // secreto para validar el claim de rol
}

// CacheConfig vigencia del índice de categorías.
type CacheConfig struct {
	CategoryTTL time.Duration
}

// MockConfig dirección de escucha del almacén simulado de desarrollo.
type MockConfig struct {
	Addr string
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, STORE_BASE_URL, AUTH_TOKEN, CATEGORY_TTL_MINUTES, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "repuestos-sync"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			BaseURL: getString(v, "STORE_BASE_URL", "http://localhost:8080/api"),
			Timeout: time.Duration(getInt(v, "STORE_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Auth: AuthConfig{
			Token:     getString(v, "AUTH_TOKEN", ""),
			JWTSecret: getString(v, "JWT_SECRET", ""),
		},
		Cache: CacheConfig{
			CategoryTTL: time.Duration(getInt(v, "CATEGORY_TTL_MINUTES", 15)) * time.Minute,
		},
		Mock: MockConfig{
			Addr: getString(v, "MOCKSTORE_ADDR", ":8080"),
		},
	}

	if cfg.Store.BaseURL == "" {
		return nil, fmt.Errorf("config: STORE_BASE_URL es obligatorio")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
