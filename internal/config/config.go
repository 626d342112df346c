// Package config конфигурация сервиса
// Основные настройки читаются из config.toml, секреты - из окружения
// (поддерживается .env файл через godotenv)
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrLoadConfig возвращается при ошибке чтения конфигурации
var ErrLoadConfig = errors.New("config: failed to load configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Gemini   GeminiConfig   `toml:"gemini"`
	SMTP     SMTPConfig     `toml:"smtp"`
	RAG      RAGConfig      `toml:"rag"`
	Chat     ChatConfig     `toml:"chat"`
	Admin    AdminConfig    `toml:"admin"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis для хранения сессий
type RedisConfig struct {
	Addr              string `toml:"addr"`
	Password          string `toml:"password"`
	DB                int    `toml:"db"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
}

// GeminiConfig настройки клиента Gemini
// APIKey берется только из окружения (GEMINI_API_KEY)
type GeminiConfig struct {
	APIKey         string `toml:"-"`
	Model          string `toml:"model"`
	EmbeddingModel string `toml:"embedding_model"`
}

// SMTPConfig настройки отправки почты
// User и Password берутся только из окружения (SMTP_USER, SMTP_PASS)
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"-"`
	Password string `toml:"-"`
}

// RAGConfig настройки построения поискового индекса
type RAGConfig struct {
	ChunkSize    int `toml:"chunk_size"`
	ChunkOverlap int `toml:"chunk_overlap"`
	TopK         int `toml:"top_k"`
}

// ChatConfig настройки диалога
type ChatConfig struct {
	HistoryLimit int `toml:"history_limit"`
}

// AdminConfig настройки доступа к админ-эндпоинтам
// Token берется только из окружения (ADMIN_TOKEN)
type AdminConfig struct {
	Token string `toml:"-"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load читает конфигурацию из toml-файла и окружения
// godotenv.Load() не делает ничего, если .env отсутствует
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Секреты только из окружения, чтобы не попадали в конфиг-файл
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.SMTP.User = os.Getenv("SMTP_USER")
	cfg.SMTP.Password = os.Getenv("SMTP_PASS")
	cfg.Admin.Token = os.Getenv("ADMIN_TOKEN")

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    60,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:              "localhost:6379",
			SessionTTLMinutes: 60,
		},
		Gemini: GeminiConfig{
			Model:          "models/gemini-1.5-flash",
			EmbeddingModel: "models/text-embedding-004",
		},
		SMTP: SMTPConfig{
			Port: 587,
		},
		RAG: RAGConfig{
			ChunkSize:    1000,
			ChunkOverlap: 200,
			TopK:         4,
		},
		Chat: ChatConfig{
			HistoryLimit: 25,
		},
		Logs: LogsConfig{
			File:  "assistant-service.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "smc-assistant-service",
			Path:        "/metrics",
		},
	}
}
