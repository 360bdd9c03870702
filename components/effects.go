package components

import (
	"image/color"
	"math"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type EffectKind int

const (
	EffectParticle EffectKind = iota
	EffectShadow
	EffectPopup
)

// Oscillation describes a sinusoidal offset: Base + sin(Phase)*Amplitude,
// with Phase advancing by Speed radians per second.
type Oscillation struct {
	Base      float64
	Amplitude float64
	Speed     float64
	Phase     float64
}

// Advance steps the phase and returns the new offset position.
func (o *Oscillation) Advance(dt float64) float64 {
	o.Phase += dt * o.Speed
	return o.Base + math.Sin(o.Phase)*o.Amplitude
}

// EffectData parameterizes a transient cosmetic entity. Effects never collide.
type EffectData struct {
	Kind     EffectKind
	Color    color.RGBA
	Text     string
	Age      float64
	Lifetime float64

	VelX, VelY float64
	Gravity    float64
	Wobble     Oscillation // Horizontal sway around the spawn X

	Fade  *gween.Tween // Opacity from 1 to 0 over Lifetime
	Alpha float64
}

var Effect = donburi.NewComponentType[EffectData]()
