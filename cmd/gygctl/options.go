package main

import (
	"github.com/InQaaaaGit/gyg.git/internal/config"
)

// options - параметры, общие для всех команд
type options struct {
	whitelistFile     string
	controllersPath   string
	defaultController string
	maxDepth          int
}

func defaultOptions() *options {
	cfg := config.Default()
	return &options{
		whitelistFile:     cfg.WhitelistFile,
		controllersPath:   cfg.ControllersPath,
		defaultController: cfg.DefaultController,
		maxDepth:          cfg.MaxShortcutDepth,
	}
}

// toConfig переносит параметры в конфигурацию сервера
func (o *options) toConfig() (*config.Config, error) {
	cfg := config.Default()
	cfg.WhitelistFile = o.whitelistFile
	cfg.ControllersPath = o.controllersPath
	cfg.DefaultController = o.defaultController
	cfg.MaxShortcutDepth = o.maxDepth
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
