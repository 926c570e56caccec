//go:build js

package main

import (
	"fmt"
	"log/slog"

	jsapp "github.com/mokiat/lacking-js/app"
	jsgame "github.com/mokiat/lacking-js/game"
	jsui "github.com/mokiat/lacking-js/ui"
	"github.com/mokiat/lacking/storage/chunked"

	"github.com/nobonobo/firefly-house/host/config"
)

func runApplication(cfg config.Config, logger *slog.Logger) error {
	storage, err := chunked.NewWebStorage(".")
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	controller := createController(cfg, logger, storage, jsgame.NewShaderCollection(), jsgame.NewShaderBuilder(), jsui.NewShaderCollection())

	appCfg := jsapp.NewConfig("screen")
	appCfg.AddGLExtension("EXT_color_buffer_float")
	appCfg.SetFullscreen(cfg.Fullscreen)
	appCfg.SetAudioEnabled(false)
	return jsapp.Run(appCfg, controller)
}
