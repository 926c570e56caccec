package scene

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/mokiat/gomath/dprec"
)

const eps = 1e-12

func newSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randomFireflies(rng *rand.Rand, count int) []Firefly {
	result := make([]Firefly, count)
	for i := range result {
		result[i] = Firefly{
			Position: dprec.NewVec3(
				rng.Float64()*20-10,
				rng.Float64()*5,
				rng.Float64()*20-10,
			),
			Intensity: 1,
		}
	}
	return result
}

func TestAnimateIntensityInRange(t *testing.T) {
	rng := newSeeded(1)
	state := &RenderState{Fireflies: randomFireflies(rng, 100)}
	animator := NewAnimator(rng)
	for frame := 0; frame < 500; frame++ {
		state.Time += TimeStep
		animator.Animate(state)
		for i, f := range state.Fireflies {
			if f.Intensity < 0.5 || f.Intensity >= 2.0 {
				t.Fatalf("frame %d firefly %d: intensity %.17g out of range", frame, i, f.Intensity)
			}
		}
	}
}

func TestAnimateIntensityBounds(t *testing.T) {
	state := &RenderState{Fireflies: make([]Firefly, 1)}

	NewAnimator(constSource(0)).Animate(state)
	if state.Fireflies[0].Intensity != 0.5 {
		t.Fatalf("lowest draw: got %.17g", state.Fireflies[0].Intensity)
	}

	NewAnimator(constSource(math.Nextafter(1, 0))).Animate(state)
	if got := state.Fireflies[0].Intensity; got >= 2.0 {
		t.Fatalf("highest draw reached %.17g", got)
	}
}

func TestAnimateStepBounded(t *testing.T) {
	rng := newSeeded(2)
	state := &RenderState{Fireflies: randomFireflies(rng, 100)}
	animator := NewAnimator(rng)
	for frame := 0; frame < 500; frame++ {
		before := make([]dprec.Vec3, len(state.Fireflies))
		for i, f := range state.Fireflies {
			before[i] = f.Position
		}
		state.Time += TimeStep
		animator.Animate(state)
		for i, f := range state.Fireflies {
			d := dprec.Vec3Diff(f.Position, before[i])
			if math.Abs(d.X) > FireflyStep+eps || math.Abs(d.Y) > FireflyStep+eps || math.Abs(d.Z) > FireflyStep+eps {
				t.Fatalf("frame %d firefly %d moved too far: %+v", frame, i, d)
			}
		}
	}
}

func TestAnimateSingleFireflyFromOrigin(t *testing.T) {
	state := &RenderState{
		Time:      0,
		Fireflies: []Firefly{{Position: dprec.ZeroVec3(), Intensity: 1}},
	}
	NewAnimator(newSeeded(3)).Animate(state)

	p := state.Fireflies[0].Position
	for _, c := range []float64{p.X, p.Y, p.Z} {
		if math.Abs(c) > FireflyStep+eps {
			t.Fatalf("coordinate %.17g outside step", c)
		}
	}
	if p.Length() > FireflyStep*math.Sqrt(3)+eps {
		t.Fatalf("position %+v outside bounding ball", p)
	}
	if in := state.Fireflies[0].Intensity; in < 0.5 || in >= 2.0 {
		t.Fatalf("intensity %.17g out of range", in)
	}
}

func TestAnimateKnownPhase(t *testing.T) {
	// A zero draw removes the random phase, leaving the time term.
	state := &RenderState{
		Time:      1.5,
		Fireflies: []Firefly{{Position: dprec.NewVec3(1, 2, 3)}},
	}
	NewAnimator(constSource(0)).Animate(state)

	p := state.Fireflies[0].Position
	want := dprec.NewVec3(
		1+math.Sin(1.5)*FireflyStep,
		2+math.Cos(1.5)*FireflyStep,
		3+math.Sin(1.5)*FireflyStep,
	)
	if math.Abs(p.X-want.X) > eps || math.Abs(p.Y-want.Y) > eps || math.Abs(p.Z-want.Z) > eps {
		t.Fatalf("got %+v, want %+v", p, want)
	}
}

func TestAnimateNoFireflies(t *testing.T) {
	rng := &countingSource{}
	state := &RenderState{}
	NewAnimator(rng).Animate(state)
	if rng.draws != 0 {
		t.Fatalf("expected no random draws, got %d", rng.draws)
	}
	if len(state.Fireflies) != 0 {
		t.Fatal("fireflies appeared")
	}
}

func TestAnimateMirrorsLights(t *testing.T) {
	light := &fakePointLight{}
	state := &RenderState{
		Fireflies: []Firefly{{Position: dprec.NewVec3(4, 5, 6), Light: light}},
	}
	NewAnimator(newSeeded(4)).Animate(state)

	f := state.Fireflies[0]
	if light.position != f.Position || light.intensity != f.Intensity {
		t.Fatalf("light not mirrored: light=%+v/%v firefly=%+v/%v", light.position, light.intensity, f.Position, f.Intensity)
	}
}

func TestAnimateSeededReproducible(t *testing.T) {
	run := func() []Firefly {
		rng := newSeeded(42)
		state := &RenderState{Fireflies: randomFireflies(rng, 10)}
		animator := NewAnimator(rng)
		for i := 0; i < 50; i++ {
			state.Time += TimeStep
			animator.Animate(state)
		}
		return state.Fireflies
	}
	a, b := run(), run()
	for i := range a {
		if a[i].Position != b[i].Position || a[i].Intensity != b[i].Intensity {
			t.Fatalf("firefly %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

type countingSource struct {
	draws int
}

func (s *countingSource) Float64() float64 {
	s.draws++
	return 0.5
}
