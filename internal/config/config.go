package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // часы
	} `yaml:"jwt"`

	Board struct {
		PostLifetimeDays       int `yaml:"post_lifetime_days"`        // время жизни поста
		CleanupIntervalMinutes int `yaml:"cleanup_interval_minutes"`  // период фоновой очистки
		DefaultRadiusMeters    int `yaml:"default_radius_meters"`     // радиус уведомлений по умолчанию
		MaxPhotos              int `yaml:"max_photos"`                // фотографий в посте
		DefaultPageSize        int `yaml:"default_page_size"`         // пагинация списков
	} `yaml:"board"`
}

// PostLifetime возвращает время жизни поста как Duration.
func (c *Config) PostLifetime() time.Duration {
	return time.Duration(c.Board.PostLifetimeDays) * 24 * time.Hour
}

// CleanupInterval возвращает период запуска фоновой очистки.
func (c *Config) CleanupInterval() time.Duration {
	return time.Duration(c.Board.CleanupIntervalMinutes) * time.Minute
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		log.Println("Загрузка из config.yaml")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		log.Println("Загрузка конфигурации из переменных окружения")

		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = 168 // 7 дней
	}

	applyBoardDefaults(&cfg)
	AppConfig = &cfg
}

// applyBoardDefaults подставляет исторические константы доски объявлений
// там, где конфиг молчит.
func applyBoardDefaults(cfg *Config) {
	if cfg.Board.PostLifetimeDays <= 0 {
		cfg.Board.PostLifetimeDays = 14
	}
	if cfg.Board.CleanupIntervalMinutes <= 0 {
		cfg.Board.CleanupIntervalMinutes = 5
	}
	if cfg.Board.DefaultRadiusMeters <= 0 {
		cfg.Board.DefaultRadiusMeters = 5000
	}
	if cfg.Board.MaxPhotos <= 0 {
		cfg.Board.MaxPhotos = 6
	}
	if cfg.Board.DefaultPageSize <= 0 {
		cfg.Board.DefaultPageSize = 50
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = 168
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
