package factory

import (
	"image/color"
	"math"

	"github.com/automoto/runaway-hotdog/archetypes"
	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/shared/gamemath"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ParticleSpec describes a single particle launched from a point.
type ParticleSpec struct {
	Size     float64
	Speed    float64
	Angle    float64 // Radians, 0 points right
	Lifetime float64
	Gravity  float64
	Color    color.RGBA
}

// SpawnParticle creates one particle centered on (cx, cy).
func SpawnParticle(w *world.World, cx, cy float64, spec ParticleSpec) *donburi.Entry {
	return spawnEffect(w, gamemath.Rect{X: cx - spec.Size/2, Y: cy - spec.Size/2, W: spec.Size, H: spec.Size}, cfg.Effects.ZIndex, components.EffectData{
		Kind:     components.EffectParticle,
		Color:    spec.Color,
		Lifetime: spec.Lifetime,
		VelX:     math.Cos(spec.Angle) * spec.Speed,
		VelY:     math.Sin(spec.Angle) * spec.Speed,
		Gravity:  spec.Gravity,
	})
}

// SpawnBurst scatters a radial explosion of particles. Speed and lifetime
// vary between 50% and 150% of the configured values.
func SpawnBurst(w *world.World, cx, cy float64, burst cfg.BurstConfig, clr color.RGBA) {
	if clr == (color.RGBA{}) {
		clr = burst.Color
	}
	for i := 0; i < burst.Count; i++ {
		SpawnParticle(w, cx, cy, ParticleSpec{
			Size:     burst.Size,
			Speed:    burst.Speed * (0.5 + w.Rand.Float64()),
			Angle:    w.Rand.Float64() * 2 * math.Pi,
			Lifetime: burst.Lifetime * (0.5 + w.Rand.Float64()),
			Gravity:  burst.Gravity,
			Color:    clr,
		})
	}
}

// SpawnShadow drops a fading ground shadow under a jumping enemy.
func SpawnShadow(w *world.World, x, y, width float64) *donburi.Entry {
	return spawnEffect(w, gamemath.Rect{X: x, Y: y, W: width, H: cfg.Effects.ShadowHeight}, cfg.Effects.ShadowZIndex, components.EffectData{
		Kind:     components.EffectShadow,
		Color:    cfg.ShadowBlack,
		Lifetime: cfg.Effects.ShadowLifetime,
	})
}

// SpawnPopup floats a short text upward from (x, y) while it fades.
func SpawnPopup(w *world.World, x, y float64, text string, clr color.RGBA) *donburi.Entry {
	life := cfg.Effects.PopupLifetime
	return spawnEffect(w, gamemath.Rect{X: x, Y: y}, cfg.Effects.ZIndex, components.EffectData{
		Kind:     components.EffectPopup,
		Color:    clr,
		Text:     text,
		Lifetime: life,
		VelY:     -cfg.Effects.PopupRise / life,
		Wobble: components.Oscillation{
			Base:      x,
			Amplitude: cfg.Effects.PopupWobble,
			Speed:     2 * math.Pi * 2 / life,
		},
	})
}

func spawnEffect(w *world.World, r gamemath.Rect, z int, data components.EffectData) *donburi.Entry {
	fx := archetypes.Effect.Spawn(w.ECS)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	components.Object.SetValue(fx, components.ObjectData{Object: obj})
	components.Base.SetValue(fx, components.BaseData{
		Kind:   components.KindEffect,
		Active: true,
		ZIndex: z,
	})

	data.Alpha = 1
	data.Fade = gween.New(1, 0, float32(data.Lifetime), ease.Linear)
	components.Effect.SetValue(fx, data)

	w.Add(fx)
	return fx
}
