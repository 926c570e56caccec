//go:build js && wasm

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/nobonobo/firefly-house/host/cli"
	"github.com/nobonobo/firefly-house/host/config"
	"github.com/nobonobo/firefly-house/host/scene"
)

// Module specifiers resolved by the page's import map.
const (
	threeModule         = "three"
	orbitControlsModule = "three/addons/controls/OrbitControls.js"
)

type Application struct {
	logger   *slog.Logger
	provider *threeProvider
	scene    *scene.Scene
	driver   *scene.Driver
	resizer  *scene.ResizeHandler
}

func NewApplication(cfg config.Config, logger *slog.Logger) (*Application, error) {
	three, err := Await(Import(threeModule))
	if err != nil {
		return nil, fmt.Errorf("failed to import three.js: %w", err)
	}
	controls, err := Await(Import(orbitControlsModule))
	if err != nil {
		return nil, fmt.Errorf("failed to import orbit controls: %w", err)
	}

	rng := cfg.Random()
	provider := newThreeProvider(three, controls.Get("OrbitControls"), document.Get("body"), logger)
	assembled := scene.Assemble(provider, scene.NewBlueprint(cfg, rng), logger)
	return &Application{
		logger:   logger,
		provider: provider,
		scene:    assembled,
		driver:   scene.NewDriver(assembled, scene.NewAnimator(rng), logger),
		resizer:  scene.NewResizeHandler(assembled),
	}, nil
}

// Run blocks until the page is hidden for good.
func (app *Application) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	onPageHide := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Get("persisted").Truthy() {
			return nil
		}
		cancel()
		return nil
	})
	defer onPageHide.Release()
	window.Call("addEventListener", "pagehide", onPageHide)
	defer window.Call("removeEventListener", "pagehide", onPageHide)

	size := currentSize()
	app.resizer.Resize(size.width, size.height)

	scheduler := newFrameScheduler(app.provider.renderer.value, app.resizer)
	defer scheduler.Release()
	return app.driver.Run(ctx, scheduler)
}

func run(cfg config.Config, logger *slog.Logger) error {
	app, err := NewApplication(cfg, logger)
	if err != nil {
		return err
	}
	return app.Run(context.Background())
}

func main() {
	cmd := cli.NewRootCommand(cli.Environment{
		Params:    GetParam,
		SessionID: SessionID,
		LogOutput: os.Stderr,
	}, run)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		document.Get("body").Set("innerText", err.Error())
		os.Exit(1)
	}
}
