package widget

import (
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/std"
)

const (
	loadingDots     = 3
	loadingTick     = 400 * time.Millisecond
	loadingFontSize = 40.0
)

var Loading = co.Define[*loadingComponent]()

type LoadingData struct {
	Text string
}

var defaultLoadingData = LoadingData{
	Text: "Loading",
}

// loadingComponent draws its text followed by a pulsing row of dots.
type loadingComponent struct {
	co.BaseComponent

	elapsed time.Duration
	frames  [][]rune
	font    *ui.Font
	size    sprec.Vec2
}

func (c *loadingComponent) OnUpsert() {
	data := co.GetOptionalData(c.Properties(), defaultLoadingData)
	if c.font == nil {
		c.font = co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf")
	}

	c.frames = c.frames[:0]
	for dots := 0; dots <= loadingDots; dots++ {
		frame := []rune(data.Text)
		for range dots {
			frame = append(frame, '.')
		}
		c.frames = append(c.frames, frame)
	}

	widest := c.frames[len(c.frames)-1]
	c.size = sprec.Vec2{
		X: c.font.LineWidth(widest, loadingFontSize),
		Y: c.font.LineHeight(loadingFontSize),
	}
}

func (c *loadingComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:   c,
			IdealSize: opt.V(ui.NewSize(int(c.size.X), int(c.size.Y))),
		})
		co.WithLayoutData(c.Properties().LayoutData())
		co.WithChildren(c.Properties().Children())
	})
}

func (c *loadingComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	c.elapsed += canvas.ElapsedTime()
	frame := c.frames[int(c.elapsed/loadingTick)%len(c.frames)]

	bounds := canvas.DrawBounds(element, false)
	canvas.Push()
	canvas.Translate(sprec.Vec2Sum(bounds.Position, sprec.Vec2{
		X: (bounds.Size.X - c.size.X) / 2,
		Y: (bounds.Size.Y - c.size.Y) / 2,
	}))
	canvas.FillTextLine(frame, sprec.ZeroVec2(), ui.Typography{
		Font:  c.font,
		Size:  loadingFontSize,
		Color: ui.RGB(0xff, 0xee, 0x58),
	})
	canvas.Pop()

	element.Invalidate()
}
