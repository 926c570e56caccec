//go:build js && wasm

package main

import (
	"context"
	"syscall/js"

	"github.com/nobonobo/firefly-house/host/scene"
)

type viewportSize struct {
	width  int
	height int
}

// frameScheduler paces the render loop with the renderer's animation loop
// and applies resize events between frames, so the scene is only touched
// from the loop goroutine.
type frameScheduler struct {
	resizer  *scene.ResizeHandler
	renderer js.Value
	frames   chan struct{}
	resizes  chan viewportSize
	onFrame  js.Func
	onResize js.Func
}

var _ scene.Scheduler = (*frameScheduler)(nil)

func newFrameScheduler(renderer js.Value, resizer *scene.ResizeHandler) *frameScheduler {
	s := &frameScheduler{
		resizer:  resizer,
		renderer: renderer,
		frames:   make(chan struct{}, 1),
		resizes:  make(chan viewportSize, 1),
	}
	s.onFrame = js.FuncOf(func(this js.Value, args []js.Value) any {
		select {
		case s.frames <- struct{}{}:
		default:
		}
		return nil
	})
	s.onResize = js.FuncOf(func(this js.Value, args []js.Value) any {
		size := currentSize()
		for {
			select {
			case s.resizes <- size:
				return nil
			default:
			}
			// keep only the latest size
			select {
			case <-s.resizes:
			default:
			}
		}
	})
	renderer.Call("setAnimationLoop", s.onFrame)
	window.Call("addEventListener", "resize", s.onResize)
	return s
}

func currentSize() viewportSize {
	return viewportSize{
		width:  window.Get("innerWidth").Int(),
		height: window.Get("innerHeight").Int(),
	}
}

func (s *frameScheduler) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.frames:
	}
	select {
	case size := <-s.resizes:
		s.resizer.Resize(size.width, size.height)
	default:
	}
	return nil
}

func (s *frameScheduler) Release() {
	s.renderer.Call("setAnimationLoop", js.Null())
	window.Call("removeEventListener", "resize", s.onResize)
	s.onFrame.Release()
	s.onResize.Release()
}
