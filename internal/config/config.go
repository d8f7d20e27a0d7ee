// Package config загружает конфигурацию фронт-контроллера.
// Приоритет источников: значения по умолчанию < JSON файл < флаги < переменные окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress     string `env:"SERVER_ADDRESS"`     // Адрес для запуска HTTP-сервера
	BasePath          string `env:"BASE_PATH"`          // Базовый путь сайта, относительно которого разбираются запросы
	ControllersPath   string `env:"CONTROLLERS_PATH"`   // Каталог контроллеров
	WhitelistFile     string `env:"WHITELIST_FILE"`     // JSON файл белого списка контроллеров, страниц и ярлыков
	DefaultController string `env:"DEFAULT_CONTROLLER"` // Контроллер по умолчанию
	UseRewriteRule    bool   `env:"USE_REWRITE_RULE"`   // true - путь запроса, false - строка запроса
	MaxShortcutDepth  int    `env:"MAX_SHORTCUT_DEPTH"` // Максимальная длина цепочки ярлыков
	LogLevel          string `env:"LOG_LEVEL"`          // Уровень логирования
	EnableHTTPS       string `env:"ENABLE_HTTPS"`       // Включение HTTPS (любое непустое значение)
	TLSCertFile       string `env:"TLS_CERT_FILE"`      // Путь к сертификату
	TLSKeyFile        string `env:"TLS_KEY_FILE"`       // Путь к ключу
	ConfigFile        string `env:"CONFIG"`             // Путь к JSON файлу конфигурации
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		ServerAddress:     ":8080",
		BasePath:          "",
		ControllersPath:   "controllers",
		WhitelistFile:     "whitelist.json",
		DefaultController: "example",
		UseRewriteRule:    true,
		MaxShortcutDepth:  16,
		LogLevel:          "info",
		EnableHTTPS:       "",
		TLSCertFile:       "server.crt",
		TLSKeyFile:        "server.key",
	}
}

// NewConfig инициализирует конфигурацию, читая флаги и переменные окружения.
func NewConfig() (*Config, error) {
	return Parse(flag.CommandLine, os.Args[1:])
}

// Parse читает конфигурацию из набора флагов fs с аргументами args,
// JSON файла и переменных окружения.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()

	// 1. Определение флагов командной строки
	fs.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	fs.StringVar(&cfg.BasePath, "b", cfg.BasePath, "Базовый путь сайта (env: BASE_PATH)")
	fs.StringVar(&cfg.ControllersPath, "p", cfg.ControllersPath, "Каталог контроллеров (env: CONTROLLERS_PATH)")
	fs.StringVar(&cfg.WhitelistFile, "w", cfg.WhitelistFile, "Файл белого списка (env: WHITELIST_FILE)")
	fs.StringVar(&cfg.DefaultController, "d", cfg.DefaultController, "Контроллер по умолчанию (env: DEFAULT_CONTROLLER)")
	fs.BoolVar(&cfg.UseRewriteRule, "r", cfg.UseRewriteRule, "Разбирать путь запроса вместо строки запроса (env: USE_REWRITE_RULE)")
	fs.IntVar(&cfg.MaxShortcutDepth, "m", cfg.MaxShortcutDepth, "Максимальная длина цепочки ярлыков (env: MAX_SHORTCUT_DEPTH)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Уровень логирования (env: LOG_LEVEL)")
	fs.StringVar(&cfg.EnableHTTPS, "s", cfg.EnableHTTPS, "Включить HTTPS (env: ENABLE_HTTPS)")
	fs.StringVar(&cfg.TLSCertFile, "cert", cfg.TLSCertFile, "Путь к TLS сертификату (env: TLS_CERT_FILE)")
	fs.StringVar(&cfg.TLSKeyFile, "key", cfg.TLSKeyFile, "Путь к TLS ключу (env: TLS_KEY_FILE)")
	fs.StringVar(&cfg.ConfigFile, "c", cfg.ConfigFile, "Путь к JSON файлу конфигурации (env: CONFIG)")

	// 2. Парсинг флагов командной строки
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// 3. JSON файл имеет низший приоритет: явно заданные флаги применяются поверх него
	configFile := cfg.ConfigFile
	if v := os.Getenv("CONFIG"); v != "" {
		configFile = v
	}
	if configFile != "" {
		jsonConfig, err := loadJSONConfig(configFile)
		if err != nil {
			return nil, err
		}

		explicit := make(map[string]string)
		fs.Visit(func(f *flag.Flag) {
			explicit[f.Name] = f.Value.String()
		})

		cfg.applyJSONConfig(jsonConfig)

		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return nil, fmt.Errorf("error reapplying flag -%s: %w", name, err)
			}
		}
	}

	// 4. Парсинг переменных окружения (имеет наивысший приоритет)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.DefaultController == "" {
		return errors.New("default controller is not set")
	}
	if c.ControllersPath == "" {
		return errors.New("controllers path is not set")
	}
	if c.WhitelistFile == "" {
		return errors.New("whitelist file is not set")
	}
	if c.MaxShortcutDepth <= 0 {
		return fmt.Errorf("max shortcut depth must be positive, got %d", c.MaxShortcutDepth)
	}
	return nil
}

// IsHTTPSEnabled сообщает, нужно ли запускать HTTPS сервер
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS != ""
}
