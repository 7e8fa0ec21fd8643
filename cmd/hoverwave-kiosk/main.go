// Package main runs the hover scene full-window with keyboard controls.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/hoverwave/internal/config"
	"github.com/Faultbox/hoverwave/internal/hover"
	"github.com/Faultbox/hoverwave/internal/kiosk"
	"github.com/Faultbox/hoverwave/internal/logger"
	"github.com/Faultbox/hoverwave/internal/telemetry"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== hoverwave kiosk ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	images, err := hover.LoadConfigured(context.Background(), cfg.Assets)
	if err != nil {
		logger.Error("failed to load images", zap.Error(err))
		exit()
	}

	trace, err := telemetry.Open(cfg.Debug.TraceFile)
	if err != nil {
		logger.Warn("frame trace disabled", zap.Error(err))
	}

	k, err := kiosk.New(cfg, images, trace)
	if err != nil {
		logger.Error("failed to start kiosk", zap.Error(err))
		exit()
	}

	if err := serve(k); err != nil {
		logger.Error("kiosk error", zap.Error(err))
		exit()
	}

	logger.Info("kiosk closed normally")
}

// host is a window loop that owns GL resources.
type host interface {
	Run() error
	Close()
}

// serve runs h and always closes it, so resources are released even when
// the loop fails.
func serve(h host) error {
	defer h.Close()
	return h.Run()
}

// exit flushes the log and exits with status 1. Deferred calls do not run.
func exit() {
	logger.Sync()
	os.Exit(1)
}
