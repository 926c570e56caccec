//go:build !js

package main

import (
	"fmt"
	"log/slog"

	nativeapp "github.com/mokiat/lacking-native/app"
	nativegame "github.com/mokiat/lacking-native/game"
	nativeui "github.com/mokiat/lacking-native/ui"
	"github.com/mokiat/lacking/storage/chunked"
	"github.com/mokiat/lacking/ui"
	"github.com/mokiat/lacking/util/resource"

	"github.com/nobonobo/firefly-house/host/config"
	"github.com/nobonobo/firefly-house/host/resources"
)

func runApplication(cfg config.Config, logger *slog.Logger) error {
	storage, err := chunked.NewFileStorage(cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("failed to initialize storage %q: %w", cfg.AssetsDir, err)
	}

	controller := createController(cfg, logger, storage, nativegame.NewShaderCollection(), nativegame.NewShaderBuilder(), nativeui.NewShaderCollection())

	appCfg := nativeapp.NewConfig(cfg.Title, cfg.Width, cfg.Height)
	appCfg.SetFullscreen(cfg.Fullscreen)
	appCfg.SetMaximized(false)
	appCfg.SetMinSize(640, 360)
	appCfg.SetVSync(cfg.VSync)
	appCfg.SetLocator(ui.WrappedLocator(resource.NewFSLocator(resources.UI)))
	appCfg.SetAudioEnabled(false)
	return nativeapp.Run(appCfg, controller)
}
