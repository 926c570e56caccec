package ui

import (
	"log/slog"
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/debug/metric/metricui"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"
	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/firefly-house/host/resources"
	"github.com/nobonobo/firefly-house/host/scene"
	"github.com/nobonobo/firefly-house/host/world"
)

const houseResource = "house.dat"

var nightColor = ui.RGB(0x05, 0x07, 0x14)

func LoadViewData(resourceSet *game.ResourceSet, logger *slog.Logger) async.Promise[*ViewData] {
	var data ViewData
	return async.InjectionPromise(async.JoinOperations(
		optionalResource(resourceSet, houseResource, &data.House, logger),
	), &data)
}

// optionalResource fetches a model template but never fails the load; the
// scene works without it.
func optionalResource(resourceSet *game.ResourceSet, name string, target **game.ModelTemplate, logger *slog.Logger) async.Operation {
	fetch := resourceSet.FetchResource(name, target)
	return async.NewFuncOperation(func() error {
		if err := fetch.Wait(); err != nil {
			logger.Warn("Optional resource unavailable",
				slog.String("resource", name),
				slog.String("error", err.Error()),
			)
			*target = nil
		}
		return nil
	})
}

type ViewData struct {
	House *game.ModelTemplate
}

// Set by the loading promise before the scene screen is shown.
var viewSceneData *ViewData

var SceneScreen = co.Define[*sceneScreenComponent]()

type SceneScreenData struct {
	App *applicationComponent
}

type sceneScreenComponent struct {
	co.BaseComponent

	logger *slog.Logger
	engine *game.Engine

	gameScene *game.Scene
	driver    *scene.Driver
	resizer   *scene.ResizeHandler
	controls  *world.Controls

	width  int
	height int

	dragging bool
	lastX    int
	lastY    int

	debugVisible    bool
	licensesVisible bool
	fullscreen      bool

	textFont *ui.Font
}

var _ ui.ElementRenderHandler = (*sceneScreenComponent)(nil)
var _ ui.ElementKeyboardHandler = (*sceneScreenComponent)(nil)
var _ ui.ElementMouseHandler = (*sceneScreenComponent)(nil)

func (c *sceneScreenComponent) OnCreate() {
	globalState := co.TypedValue[GlobalState](c.Scope())
	c.logger = globalState.Logger
	c.engine = globalState.Engine
	c.textFont = co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf")

	c.createScene(globalState)
	c.engine.SetActiveScene(c.gameScene)
	c.engine.ResetDeltaTime()
}

func (c *sceneScreenComponent) OnDelete() {
	c.engine.SetActiveScene(nil)
	if c.fullscreen {
		Fullscreen(false)
	}
}

func (c *sceneScreenComponent) createScene(globalState GlobalState) {
	cfg := globalState.Config
	rng := cfg.Random()

	var house *game.ModelTemplate
	if viewSceneData != nil {
		house = viewSceneData.House
	}

	c.gameScene = c.engine.CreateScene(game.SceneInfo{
		IncludePhysics: opt.V(false),
		IncludeECS:     opt.V(false),
	})
	provider := world.NewProvider(c.gameScene, house, c.logger)
	assembled := scene.Assemble(provider, scene.NewBlueprint(cfg, rng), c.logger)

	c.driver = scene.NewDriver(assembled, scene.NewAnimator(rng), c.logger)
	c.resizer = scene.NewResizeHandler(assembled)
	c.controls = provider.Controls()
}

func (c *sceneScreenComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	bounds := element.Bounds()
	if bounds.Width != c.width || bounds.Height != c.height {
		c.width, c.height = bounds.Width, bounds.Height
		c.resizer.Resize(c.width, c.height)
	}
	c.driver.Tick()
	element.Invalidate()
}

func (c *sceneScreenComponent) OnMouseEvent(element *ui.Element, event ui.MouseEvent) bool {
	orbit := c.controls.Orbit()
	switch event.Action {
	case ui.MouseActionDown:
		if event.Button != ui.MouseButtonLeft {
			return false
		}
		c.dragging = true
		c.lastX, c.lastY = event.X, event.Y
		return true

	case ui.MouseActionUp:
		if event.Button != ui.MouseButtonLeft {
			return false
		}
		c.dragging = false
		return true

	case ui.MouseActionMove:
		if !c.dragging {
			return false
		}
		orbit.Rotate(float64(event.X-c.lastX), float64(event.Y-c.lastY))
		c.lastX, c.lastY = event.X, event.Y
		return true

	case ui.MouseActionScroll:
		orbit.Zoom(float64(event.ScrollY))
		return true

	default:
		return false
	}
}

func (c *sceneScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	if event.Action != ui.KeyboardActionDown {
		return event.Code == ui.KeyCodeEscape
	}
	switch event.Code {
	case ui.KeyCodeEscape:
		co.Window(c.Scope()).Close()
		return true

	case ui.KeyCodeTab:
		c.debugVisible = !c.debugVisible
		c.Invalidate()
		return true

	case ui.KeyCodeL:
		c.licensesVisible = !c.licensesVisible
		c.Invalidate()
		return true

	case ui.KeyCodeF:
		c.fullscreen = !c.fullscreen
		Fullscreen(c.fullscreen)
		return true

	default:
		return false
	}
}

func (c *sceneScreenComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:       c,
			CanAutoFocus:  opt.V(true),
			CreateFocused: true,
			Layout:        layout.Anchor(),
		})

		if c.debugVisible {
			co.WithChild("flamegraph", co.New(metricui.FlameGraph, func() {
				co.WithData(metricui.FlameGraphData{
					UpdateInterval: time.Second,
				})
				co.WithLayoutData(layout.Data{
					Top:   opt.V(0),
					Left:  opt.V(0),
					Right: opt.V(0),
				})
			}))
		}

		co.WithChild("help", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				Left:   opt.V(10),
				Bottom: opt.V(10),
			})
			co.WithData(std.LabelData{
				Font:      c.textFont,
				FontSize:  opt.V(float32(14)),
				FontColor: opt.V(ui.RGBA(255, 255, 255, 160)),
				Text:      resources.Help,
			})
		}))

		if c.licensesVisible {
			co.WithChild("licenses", co.New(std.Container, func() {
				co.WithLayoutData(layout.Data{
					Top:    opt.V(40),
					Bottom: opt.V(40),
					Left:   opt.V(80),
					Right:  opt.V(80),
				})
				co.WithData(std.ContainerData{
					BackgroundColor: opt.V(ui.RGBA(0, 0, 0, 200)),
					Layout:          layout.Anchor(),
				})

				co.WithChild("scroll", co.New(std.ScrollPane, func() {
					co.WithLayoutData(layout.Data{
						Top:    opt.V(0),
						Bottom: opt.V(0),
						Left:   opt.V(0),
						Right:  opt.V(0),
					})
					co.WithData(std.ScrollPaneData{
						DisableHorizontal: true,
					})

					co.WithChild("text", co.New(std.Label, func() {
						co.WithLayoutData(layout.Data{
							GrowHorizontally: true,
						})
						co.WithData(std.LabelData{
							Font:      c.textFont,
							FontSize:  opt.V(float32(16)),
							FontColor: opt.V(ui.White()),
							Text:      resources.Licenses,
						})
					}))
				}))
			}))
		}
	})
}
