package ui

import (
	"log/slog"

	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/mvc"
	"github.com/mokiat/lacking/ui/std"

	"github.com/nobonobo/firefly-house/host/config"
)

func BootstrapApplication(window *ui.Window, gameController *game.Controller, cfg config.Config, logger *slog.Logger) {
	engine := gameController.Engine()
	resourceSet := engine.CreateResourceSet()
	eventBus := mvc.NewEventBus()

	loadingState = LoadingState{
		Promise: NewLoadingPromise(
			window,
			LoadViewData(resourceSet, logger),
			func(d *ViewData) {
				viewSceneData = d
			},
			func(err error) {
				loadingError = err
			},
		),
		SuccessViewName: ViewNameScene,
		ErrorViewName:   ViewNameError,
	}

	scope := co.RootScope(window)
	scope = co.TypedValueScope(scope, eventBus)
	scope = co.TypedValueScope(scope, GlobalState{
		Engine:      engine,
		ResourceSet: resourceSet,
		Config:      cfg,
		Logger:      logger,
	})
	co.Initialize(scope, co.New(Application, nil))
}

var Application = mvc.EventListener(co.Define[*applicationComponent]())

type applicationComponent struct {
	co.BaseComponent

	eventBus   *mvc.EventBus
	activeView ViewName
}

func (c *applicationComponent) OnCreate() {
	c.eventBus = co.TypedValue[*mvc.EventBus](c.Scope())
	c.activeView = ViewNameLoading
}

func (c *applicationComponent) Render() co.Instance {
	return co.New(std.Switch, func() {
		co.WithData(std.SwitchData{
			ChildKey: c.activeView,
		})

		co.WithChild(ViewNameLoading, co.New(LoadingScreen, func() {
			co.WithData(LoadingScreenData{
				App: c,
			})
		}))
		co.WithChild(ViewNameError, co.New(ErrorScreen, func() {
			co.WithData(ErrorScreenData{
				App: c,
			})
		}))
		co.WithChild(ViewNameScene, co.New(SceneScreen, func() {
			co.WithData(SceneScreenData{
				App: c,
			})
		}))
	})
}

func (c *applicationComponent) OnEvent(event mvc.Event) {
	switch event.(type) {
	case ApplicationActiveViewChangedEvent:
		c.Invalidate()
	}
}

func (c *applicationComponent) ActiveView() ViewName {
	return c.activeView
}

func (c *applicationComponent) SetActiveView(view ViewName) {
	c.activeView = view
	c.eventBus.Notify(ApplicationActiveViewChangedEvent{
		ActiveView: view,
	})
}

const (
	ViewNameLoading ViewName = "loading"
	ViewNameError   ViewName = "error"
	ViewNameScene   ViewName = "scene"
)

type ViewName = string

type ApplicationActiveViewChangedEvent struct {
	ActiveView ViewName
}
