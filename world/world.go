// Package world holds the authoritative entity collection for one level:
// the donburi storage, the insertion-ordered update list, the resolv
// broad-phase space and the seeded random source.
package world

import (
	"math"
	"math/rand"
	"sort"

	"github.com/automoto/runaway-hotdog/archetypes"
	"github.com/automoto/runaway-hotdog/components"
	"github.com/automoto/runaway-hotdog/shared/gamemath"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CellSize is the broad-phase grid resolution.
const CellSize = 40

// queryPad widens every query so objects within resolv's one-unit cell
// rounding are still returned as candidates.
const queryPad = 1

type World struct {
	ECS   donburi.World
	Space *resolv.Space
	Rand  *rand.Rand

	Width, Height float64

	entries  []*donburi.Entry // Update order
	pending  []*donburi.Entry // Added during the update phase
	updating bool
	seq      uint64

	cursor *resolv.Object
	player *donburi.Entry
	game   *donburi.Entry
	camera *donburi.Entry
}

// New creates an empty world sized to a level of width x height units.
func New(width, height float64, seed int64) *World {
	w := &World{
		ECS:    donburi.NewWorld(),
		Rand:   rand.New(rand.NewSource(seed)),
		Width:  width,
		Height: height,
	}

	cols := int(math.Ceil(width/CellSize)) + 1
	rows := int(math.Ceil(height/CellSize)) + 1
	w.Space = resolv.NewSpace(cols*CellSize, rows*CellSize, CellSize, CellSize)

	// The cursor never carries Data, so queries skip it.
	w.cursor = resolv.NewObject(0, 0, 1, 1)
	w.Space.Add(w.cursor)

	w.game = archetypes.Game.Spawn(w.ECS)
	w.camera = archetypes.Camera.Spawn(w.ECS)
	return w
}

// Add registers a freshly created entry. During the update phase the entry
// is queued and becomes visible once FlushPending runs.
func (w *World) Add(e *donburi.Entry) {
	w.seq++
	components.Base.Get(e).Seq = w.seq
	if obj := objectOf(e); obj != nil {
		obj.Data = e
	}

	if w.updating {
		w.pending = append(w.pending, e)
		return
	}
	w.insert(e)
}

func (w *World) insert(e *donburi.Entry) {
	w.entries = append(w.entries, e)
	if components.Base.Get(e).Kind == components.KindEffect {
		return
	}
	if obj := objectOf(e); obj != nil {
		w.Space.Add(obj.Object)
	}
}

// BeginUpdate starts the phase in which additions are deferred.
func (w *World) BeginUpdate() {
	w.updating = true
}

// FlushPending ends the update phase and applies deferred additions in the
// order they were made. It returns the number of entries added.
func (w *World) FlushPending() int {
	w.updating = false
	n := len(w.pending)
	for _, e := range w.pending {
		w.insert(e)
	}
	w.pending = w.pending[:0]
	return n
}

// Entries returns the live update list in insertion order. Callers must not
// retain it across ticks.
func (w *World) Entries() []*donburi.Entry {
	return w.entries
}

// Len is the number of entries in the update list.
func (w *World) Len() int {
	return len(w.entries)
}

// Destroy flags an entry for removal at the next Compact.
func (w *World) Destroy(e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	components.Base.Get(e).Destroyed = true
}

// Compact drops every destroyed entry from the update list, the spatial
// index and the ECS storage. It returns the number removed.
func (w *World) Compact() int {
	kept := w.entries[:0]
	removed := 0
	for _, e := range w.entries {
		if !components.Base.Get(e).Destroyed {
			kept = append(kept, e)
			continue
		}
		if obj := objectOf(e); obj != nil && obj.Space != nil {
			w.Space.Remove(obj.Object)
		}
		if w.player != nil && w.player.Entity() == e.Entity() {
			w.player = nil
		}
		w.ECS.Remove(e.Entity())
		removed++
	}
	for i := len(kept); i < len(w.entries); i++ {
		w.entries[i] = nil
	}
	w.entries = kept
	return removed
}

// Query returns the live entries whose bounds overlap r and carry any of
// the given resolv tags, ordered by insertion.
func (w *World) Query(r gamemath.Rect, tags ...string) []*donburi.Entry {
	return w.QueryInto(nil, r, tags...)
}

// QueryInto is Query appending to dst.
func (w *World) QueryInto(dst []*donburi.Entry, r gamemath.Rect, tags ...string) []*donburi.Entry {
	p := r.Expand(queryPad)
	w.cursor.X, w.cursor.Y, w.cursor.W, w.cursor.H = p.X, p.Y, p.W, p.H

	col := w.cursor.Check(0, 0, tags...)
	if col == nil {
		return dst
	}

	start := len(dst)
	for _, o := range col.Objects {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		if !components.Base.Get(e).Alive() {
			continue
		}
		if !gamemath.Overlaps(r, gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}) {
			continue
		}
		if containsEntry(dst[start:], e) {
			continue
		}
		dst = append(dst, e)
	}

	found := dst[start:]
	sort.Slice(found, func(i, j int) bool {
		return components.Base.Get(found[i]).Seq < components.Base.Get(found[j]).Seq
	})
	return dst
}

// SolidAt reports whether the point lies inside a live solid block, edges
// included.
func (w *World) SolidAt(x, y float64) bool {
	for _, e := range w.Query(gamemath.Rect{X: x - 0.5, Y: y - 0.5, W: 1, H: 1}, tags.ResolvBlock) {
		if components.Object.Get(e).Rect().ContainsPoint(x, y) {
			return true
		}
	}
	return false
}

// SetPlayer records the player entry for quick lookup.
func (w *World) SetPlayer(e *donburi.Entry) {
	w.player = e
}

// Player returns the player entry if it exists and has not been removed.
func (w *World) Player() (*donburi.Entry, bool) {
	if w.player == nil || !w.player.Valid() {
		return nil, false
	}
	return w.player, true
}

func (w *World) Game() *components.GameData {
	return components.Game.Get(w.game)
}

func (w *World) Input() *components.InputData {
	return components.Input.Get(w.game)
}

func (w *World) Camera() *components.CameraData {
	return components.Camera.Get(w.camera)
}

func objectOf(e *donburi.Entry) *components.ObjectData {
	if !e.HasComponent(components.Object) {
		return nil
	}
	return components.Object.Get(e)
}

func containsEntry(list []*donburi.Entry, e *donburi.Entry) bool {
	for _, x := range list {
		if x.Entity() == e.Entity() {
			return true
		}
	}
	return false
}
