package ui

import (
	"log/slog"

	"github.com/mokiat/lacking/game"

	"github.com/nobonobo/firefly-house/host/config"
)

type GlobalState struct {
	Engine      *game.Engine
	ResourceSet *game.ResourceSet
	Config      config.Config
	Logger      *slog.Logger
}
