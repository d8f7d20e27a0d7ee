package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// JSONConfig описывает JSON файл конфигурации. Отсутствующие поля равны nil
// и не переопределяют значения по умолчанию.
type JSONConfig struct {
	ServerAddress     *string `json:"server_address,omitempty"`
	BasePath          *string `json:"base_path,omitempty"`
	ControllersPath   *string `json:"controllers_path,omitempty"`
	WhitelistFile     *string `json:"whitelist_file,omitempty"`
	DefaultController *string `json:"default_controller,omitempty"`
	UseRewriteRule    *bool   `json:"use_rewrite_rule,omitempty"`
	MaxShortcutDepth  *int    `json:"max_shortcut_depth,omitempty"`
	LogLevel          *string `json:"log_level,omitempty"`
	EnableHTTPS       *bool   `json:"enable_https,omitempty"`
	TLSCertFile       *string `json:"tls_cert_file,omitempty"`
	TLSKeyFile        *string `json:"tls_key_file,omitempty"`
}

// loadJSONConfig читает JSON файл конфигурации.
// Пустое имя или отсутствующий файл дают пустую конфигурацию.
func loadJSONConfig(filename string) (*JSONConfig, error) {
	if filename == "" {
		return &JSONConfig{}, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &JSONConfig{}, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg JSONConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", filename, err)
	}

	return &cfg, nil
}

// applyJSONConfig переносит заданные в JSON значения в конфигурацию
func (c *Config) applyJSONConfig(j *JSONConfig) {
	if j == nil {
		return
	}
	if j.ServerAddress != nil {
		c.ServerAddress = *j.ServerAddress
	}
	if j.BasePath != nil {
		c.BasePath = *j.BasePath
	}
	if j.ControllersPath != nil {
		c.ControllersPath = *j.ControllersPath
	}
	if j.WhitelistFile != nil {
		c.WhitelistFile = *j.WhitelistFile
	}
	if j.DefaultController != nil {
		c.DefaultController = *j.DefaultController
	}
	if j.UseRewriteRule != nil {
		c.UseRewriteRule = *j.UseRewriteRule
	}
	if j.MaxShortcutDepth != nil {
		c.MaxShortcutDepth = *j.MaxShortcutDepth
	}
	if j.LogLevel != nil {
		c.LogLevel = *j.LogLevel
	}
	if j.EnableHTTPS != nil {
		if *j.EnableHTTPS {
			c.EnableHTTPS = "true"
		} else {
			c.EnableHTTPS = ""
		}
	}
	if j.TLSCertFile != nil {
		c.TLSCertFile = *j.TLSCertFile
	}
	if j.TLSKeyFile != nil {
		c.TLSKeyFile = *j.TLSKeyFile
	}
}
