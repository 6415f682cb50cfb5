package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

type StorageKind string

const (
	StorageFile     StorageKind = "file"
	StorageMemory   StorageKind = "memory"
	StoragePostgres StorageKind = "postgres"
)

// Endpoints del backend remoto. Pueden ser URLs absolutas o paths relativos a BACKEND_BASE_URL.
type Endpoints struct {
	PresignScan      string `env:"PRESIGN_SCAN" yaml:"presign_scan"`
	ProcessScan      string `env:"PROCESS_SCAN" yaml:"process_scan"`
	UpdateScan       string `env:"UPDATE_SCAN" yaml:"update_scan"`
	PresignChat      string `env:"PRESIGN_CHAT" yaml:"presign_chat"`
	ProcessChatImage string `env:"PROCESS_CHAT_IMAGE" yaml:"process_chat_image"`
	ChatMessage      string `env:"CHAT_MESSAGE" yaml:"chat_message"`
	PetTips          string `env:"PET_TIPS" yaml:"pet_tips"`
}

type Backend struct {
	BaseURL      string        `env:"BASE_URL"`
	APIKey       string        `env:"API_KEY"`
	APIKeyHeader string        `env:"API_KEY_HEADER" envDefault:"X-Api-Key"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"30s"`

	Endpoints Endpoints `envPrefix:"ENDPOINT_"`
}

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"pet-profiler"`

	// Storage
	Storage StorageKind `env:"STORAGE" envDefault:"file"`
	DataDir string      `env:"DATA_DIR" envDefault:"data"`
	DBDSN   string      `env:"DB_DSN"`

	Backend       Backend `envPrefix:"BACKEND_"`
	EndpointsFile string  `env:"ENDPOINTS_FILE"`

	// Chat
	ChatMaxImages     int    `env:"CHAT_MAX_IMAGES" envDefault:"2"`
	ChatConcurrency   int    `env:"CHAT_UPLOAD_CONCURRENCY" envDefault:"4"`
	ChatFailurePolicy string `env:"CHAT_FAILURE_POLICY" envDefault:"drop-failed"`
	ChatHistoryLimit  int    `env:"CHAT_HISTORY_LIMIT" envDefault:"200"`

	// Tips
	TipsTTL         time.Duration `env:"TIPS_TTL" envDefault:"168h"`
	TipsRefreshCron string        `env:"TIPS_REFRESH_CRON" envDefault:"0 3 * * *"`
}

// Load lee la config desde env y, si ENDPOINTS_FILE está seteado, superpone
// los endpoints definidos en ese YAML (los vacíos no pisan env).
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if path := strings.TrimSpace(cfg.EndpointsFile); path != "" {
		ep, err := LoadEndpointsFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Backend.Endpoints = mergeEndpoints(cfg.Backend.Endpoints, ep)
	}

	if cfg.Storage == "" {
		cfg.Storage = StorageFile
	}
	switch cfg.Storage {
	case StorageFile, StorageMemory, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE %q (file|memory|postgres)", cfg.Storage)
	}
	if cfg.Storage == StoragePostgres && strings.TrimSpace(cfg.DBDSN) == "" {
		return Config{}, fmt.Errorf("STORAGE=postgres requires DB_DSN")
	}

	return cfg, nil
}

// LoadEndpointsFile parsea un YAML con las keys de Endpoints.
func LoadEndpointsFile(path string) (Endpoints, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Endpoints{}, fmt.Errorf("read endpoints file: %w", err)
	}
	var ep Endpoints
	if err := yaml.Unmarshal(b, &ep); err != nil {
		return Endpoints{}, fmt.Errorf("parse endpoints file: %w", err)
	}
	return ep, nil
}

func mergeEndpoints(base, over Endpoints) Endpoints {
	pick := func(a, b string) string {
		if strings.TrimSpace(b) != "" {
			return strings.TrimSpace(b)
		}
		return a
	}
	return Endpoints{
		PresignScan:      pick(base.PresignScan, over.PresignScan),
		ProcessScan:      pick(base.ProcessScan, over.ProcessScan),
		UpdateScan:       pick(base.UpdateScan, over.UpdateScan),
		PresignChat:      pick(base.PresignChat, over.PresignChat),
		ProcessChatImage: pick(base.ProcessChatImage, over.ProcessChatImage),
		ChatMessage:      pick(base.ChatMessage, over.ChatMessage),
		PetTips:          pick(base.PetTips, over.PetTips),
	}
}
