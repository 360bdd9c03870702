package gamemath

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether a and b intersect on both axes using open
// intervals. Rectangles that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// ContainsPoint reports whether (x, y) lies inside r, edges included.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Expand grows r by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

// IsStomp classifies a player/enemy contact. The player must be moving
// downward and its bottom edge must sit above the enemy's vertical midpoint.
func IsStomp(player Rect, playerSpeedY float64, enemy Rect) bool {
	return playerSpeedY > 0 && player.Bottom() < enemy.Y+enemy.H/2
}

// SegmentSamples returns n+1 evenly spaced points from (x0,y0) to (x1,y1),
// where n is chosen so consecutive points are at most step apart.
func SegmentSamples(x0, y0, x1, y1, step float64) [][2]float64 {
	dx, dy := x1-x0, y1-y0
	n := 1
	if step > 0 {
		n = max(1, int(math.Ceil(math.Hypot(dx, dy)/step)))
	}
	pts := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pts = append(pts, [2]float64{x0 + dx*t, y0 + dy*t})
	}
	return pts
}
