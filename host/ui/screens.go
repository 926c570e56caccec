package ui

import (
	"fmt"
	"iter"
	"strings"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"
	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/firefly-house/host/ui/widget"
)

// Handed from the bootstrap to whichever screen consumes it.
var (
	loadingState LoadingState
	loadingError error
)

var LoadingScreen = co.Define[*loadingScreenComponent]()

type LoadingScreenData struct {
	App *applicationComponent
}

type loadingScreenComponent struct {
	co.BaseComponent
}

func (c *loadingScreenComponent) OnCreate() {
	app := co.GetData[LoadingScreenData](c.Properties()).App

	state := loadingState
	state.Promise.OnSuccess(func() {
		app.SetActiveView(state.SuccessViewName)
	})
	state.Promise.OnError(func() {
		app.SetActiveView(state.ErrorViewName)
	})
}

func (c *loadingScreenComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(nightColor),
			Layout:          layout.Anchor(),
		})

		co.WithChild("loading", co.New(widget.Loading, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
			co.WithData(widget.LoadingData{
				Text: "Catching fireflies",
			})
		}))
	})
}

type LoadingState struct {
	Promise         LoadingPromise
	SuccessViewName ViewName
	ErrorViewName   ViewName
}

type LoadingPromise interface {
	OnSuccess(func())
	OnError(func())
}

// NewLoadingPromise delivers the outcome of promise on the worker, which is
// the UI thread for windows.
func NewLoadingPromise[T any](worker game.Worker, promise async.Promise[T], onSuccess func(T), onError func(error)) LoadingPromise {
	return &loadingPromise[T]{
		worker:    worker,
		promise:   promise,
		onSuccess: onSuccess,
		onError:   onError,
	}
}

type loadingPromise[T any] struct {
	worker    game.Worker
	promise   async.Promise[T]
	onSuccess func(T)
	onError   func(error)
}

func (p *loadingPromise[T]) OnSuccess(cb func()) {
	p.promise.OnSuccess(func(value T) {
		p.worker.Schedule(func() {
			p.onSuccess(value)
			cb()
		})
	})
}

func (p *loadingPromise[T]) OnError(cb func()) {
	p.promise.OnError(func(err error) {
		p.worker.Schedule(func() {
			p.onError(err)
			cb()
		})
	})
}

var ErrorScreen = co.Define[*errorScreenComponent]()

type ErrorScreenData struct {
	App *applicationComponent
}

var _ ui.ElementKeyboardHandler = (*errorScreenComponent)(nil)

type errorScreenComponent struct {
	co.BaseComponent

	titleFont   *ui.Font
	messageFont *ui.Font
	message     string
}

func (c *errorScreenComponent) OnCreate() {
	c.message = formatError(loadingError, 80)
	c.titleFont = co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf")
	c.messageFont = co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf")
}

func (c *errorScreenComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(nightColor),
			Layout:          layout.Anchor(),
		})

		co.WithChild("handler", co.New(std.Element, func() {
			co.WithLayoutData(layout.Data{
				Left:   opt.V(0),
				Right:  opt.V(0),
				Top:    opt.V(0),
				Bottom: opt.V(0),
			})
			co.WithData(std.ElementData{
				Essence:       c,
				Enabled:       opt.V(true),
				CanAutoFocus:  opt.V(true),
				CreateFocused: true,
			})
		}))

		co.WithChild("title", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(-120),
			})
			co.WithData(std.LabelData{
				Text:      "The scene could not be loaded",
				Font:      c.titleFont,
				FontSize:  opt.V(float32(40)),
				FontColor: opt.V(ui.White()),
			})
		}))

		co.WithChild("info", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
			co.WithData(std.LabelData{
				Text:      c.message,
				Font:      c.messageFont,
				FontSize:  opt.V(float32(20)),
				FontColor: opt.V(ui.White()),
			})
		}))
	})
}

func (c *errorScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	if event.Action == ui.KeyboardActionUp && event.Code == ui.KeyCodeEscape {
		co.Window(c.Scope()).Close()
	}
	return true
}

func formatError(err error, width int) string {
	var builder strings.Builder
	fmt.Fprintln(&builder, "Press ESCAPE to exit.")
	fmt.Fprintln(&builder)
	if err == nil {
		fmt.Fprint(&builder, "Error: unknown")
		return builder.String()
	}
	fmt.Fprint(&builder, "Error: ")
	for line := range wrapRunes(err.Error(), width) {
		fmt.Fprintln(&builder, line)
	}
	return builder.String()
}

func wrapRunes(text string, width int) iter.Seq[string] {
	return func(yield func(string) bool) {
		runes := []rune(text)
		for len(runes) > width {
			if !yield(string(runes[:width])) {
				return
			}
			runes = runes[width:]
		}
		yield(string(runes))
	}
}
