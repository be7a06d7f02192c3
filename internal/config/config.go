package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml через cleanenv

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	CoinGecko  CoinGeckoConfig  `yaml:"coingecko"`
	Upbit      UpbitConfig      `yaml:"upbit"`
	Aggregator AggregatorConfig `yaml:"aggregator"`
	History    HistoryConfig    `yaml:"history"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Logger     LoggerConfig     `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	HandlerTimeout  time.Duration `yaml:"handler_timeout" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type LoggerConfig struct {
	Level  string `yaml:"level"  env-default:"info"` // debug|info|warn|error
	Format string `yaml:"format" env-default:"text"` // text|json
}

type CoinGeckoConfig struct {
	BaseURL   string        `yaml:"base_url" env-default:"https://api.coingecko.com/api/v3"`
	Days      int           `yaml:"days" env-default:"365"` // окно годового графика
	Timeout   time.Duration `yaml:"timeout" env-default:"8s"`
	UserAgent string        `yaml:"user_agent" env-default:"coin-lookup-service/1.0"`
}

type UpbitConfig struct {
	BaseURL   string        `yaml:"base_url" env-default:"https://api.upbit.com"`
	Timeout   time.Duration `yaml:"timeout" env-default:"8s"`
	UserAgent string        `yaml:"user_agent" env-default:"coin-lookup-service/1.0"`
}

// AggregatorConfig - настройки топа KRW-пар. Strategy выбирает источник данных:
// upbit (прямой API биржи) или coingecko (листинг биржи на CoinGecko).
type AggregatorConfig struct {
	Strategy  string `yaml:"strategy" env-default:"upbit"`
	Limit     int    `yaml:"limit" env-default:"12"`
	Exchange  string `yaml:"exchange" env-default:"upbit"` // id биржи для листинга CoinGecko
	PageSize  int    `yaml:"page_size" env-default:"100"`
	MaxPages  int    `yaml:"max_pages" env-default:"10"` // предохранитель от бесконечной пагинации
	BatchSize int    `yaml:"batch_size" env-default:"100"`
}

type HistoryConfig struct {
	Capacity int `yaml:"capacity" env-default:"6"`
}

type TelegramConfig struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Token   string `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// Try to read from config file if specified
	configPath := fetchConfigPath()
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	}

	// Read from environment variables
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
