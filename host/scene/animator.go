package scene

import "math"

const (
	// FireflyStep bounds how far a firefly drifts along each axis per frame.
	FireflyStep = 0.05

	phaseSpread     = 5.0
	minIntensity    = 0.5
	intensitySpread = 1.5
)

// Animator makes fireflies drift and flicker.
type Animator struct {
	rng  RandomSource
	step float64
}

func NewAnimator(rng RandomSource) *Animator {
	return &Animator{
		rng:  rng,
		step: FireflyStep,
	}
}

// Animate moves every firefly by a trigonometric jitter around the shared
// time and resamples its intensity. Phases are drawn fresh on every call;
// the only continuity between frames is state.Time.
func (a *Animator) Animate(state *RenderState) {
	t := state.Time
	for i := range state.Fireflies {
		firefly := &state.Fireflies[i]
		firefly.Position.X += math.Sin(t+a.phase()) * a.step
		firefly.Position.Y += math.Cos(t+a.phase()) * a.step
		firefly.Position.Z += math.Sin(t+a.phase()) * a.step
		firefly.Intensity = sampleIntensity(a.rng)

		if firefly.Light != nil {
			firefly.Light.SetPosition(firefly.Position)
			firefly.Light.SetIntensity(firefly.Intensity)
		}
	}
}

func (a *Animator) phase() float64 {
	return a.rng.Float64() * phaseSpread
}

// sampleIntensity returns a value in [0.5, 2.0).
func sampleIntensity(rng RandomSource) float64 {
	return minIntensity + rng.Float64()*intensitySpread
}
