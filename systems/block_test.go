package systems

import (
	"testing"

	"github.com/automoto/runaway-hotdog/components"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/stretchr/testify/assert"
)

func TestBreakBlockFollowsBreakableTag(t *testing.T) {
	w := newWorld(t)
	fixed := factory.CreateBlock(w, components.BlockFixed, 0, 0, 40, 40)
	tagged := factory.CreateBlock(w, components.BlockFixed, 40, 0, 40, 40)
	components.Object.Get(tagged).AddTags(tags.ResolvBreakable)
	breakable := factory.CreateBlock(w, components.BlockBreakable, 80, 0, 40, 40)
	assert.True(t, components.Object.Get(breakable).HasTags(tags.ResolvBreakable))

	assert.False(t, BreakBlock(w, fixed))
	assert.True(t, BreakBlock(w, tagged))
	assert.True(t, BreakBlock(w, breakable))
	// Already flagged.
	assert.False(t, BreakBlock(w, breakable))

	assert.False(t, components.Base.Get(fixed).Destroyed)
	assert.True(t, components.Base.Get(tagged).Destroyed)
}
