// Package main is the entry point for the pictag CLI
package main

import (
	"github.com/pictag/pictag/cmd"
	"github.com/pictag/pictag/internal/config"
	"github.com/pictag/pictag/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	cmd.Execute(cfg)
}
