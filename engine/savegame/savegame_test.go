package savegame

import (
	"testing"

	"github.com/1siamBot/geoscape/engine/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interceptor(t *testing.T) *Craft {
	t.Helper()
	r, ok := rules.Craft("INTERCEPTOR")
	require.True(t, ok)
	return NewCraft(1, r)
}

func TestCraftWeapon_AmmoNeverNegative(t *testing.T) {
	r, _ := rules.CraftWeapon("AVALANCHE")
	w := NewCraftWeapon(r)
	assert.Equal(t, 3, w.Ammo())
	for i := 0; i < 10; i++ {
		w.ConsumeAmmo()
	}
	assert.Equal(t, 0, w.Ammo())

	w.SetAmmo(99)
	assert.Equal(t, 3, w.Ammo())
	w.SetAmmo(-1)
	assert.Equal(t, 0, w.Ammo())
}

func TestCraft_MountRespectsSlots(t *testing.T) {
	r, _ := rules.Craft("LIGHTNING")
	c := NewCraft(2, r)
	wr, _ := rules.CraftWeapon("CANNON")
	c.Mount(0, NewCraftWeapon(wr))
	c.Mount(1, NewCraftWeapon(wr))
	assert.NotNil(t, c.Weapon(0))
	assert.Nil(t, c.Weapon(1), "lightning has one hardpoint")
	assert.Nil(t, c.Weapon(7))
}

func TestCraft_DamageAndDestruction(t *testing.T) {
	c := interceptor(t)
	assert.False(t, c.ApplyDamage(60))
	assert.Equal(t, 40, c.Health())
	assert.True(t, c.ApplyDamage(60))
	assert.Equal(t, 0, c.Health())
	assert.False(t, c.Claim(), "destroyed craft cannot be claimed")
}

func TestCraft_ClaimIsExclusive(t *testing.T) {
	c := interceptor(t)
	require.True(t, c.Claim())
	assert.False(t, c.Claim())
	assert.Equal(t, CraftOut, c.Status)
	c.Release()
	assert.True(t, c.Claim())
}

func TestCraft_LowFuel(t *testing.T) {
	c := interceptor(t)
	assert.False(t, c.LowFuel())
	c.Fuel = 100
	assert.True(t, c.LowFuel())
	c.ReturnToBase()
	assert.Equal(t, CraftReturning, c.Status)
}

func TestUfo_Lifecycle(t *testing.T) {
	r, _ := rules.Ufo("MEDIUM_SCOUT")
	u := NewUfo(9, r)
	assert.True(t, u.InFlight())
	assert.InDelta(t, 1.0, u.HealthFraction(), 1e-9)

	u.ApplyDamage(150)
	assert.InDelta(t, 0.25, u.HealthFraction(), 1e-9)
	assert.False(t, u.IsDestroyed())

	assert.True(t, u.ApplyDamage(100))
	assert.Equal(t, UfoDestroyed, u.Status)
	assert.False(t, u.InFlight())

	u.SetCrashed()
	assert.True(t, u.IsCrashed())
	u.Remove()
	assert.True(t, u.Removed())
}

func TestNode_Links(t *testing.T) {
	n := NewNode(3, Position{X: 1, Y: 2, Z: 0}, 4, TypeSmall|TypeDangerous, RankLeader, 1, 0, 5)
	require.NoError(t, n.AssignLink(NodeLink{ConnectedNode: 4, Distance: 3}, 0))
	require.NoError(t, n.AssignLink(NodeLink{ConnectedNode: -1}, 4))
	assert.ErrorIs(t, n.AssignLink(NodeLink{}, 5), ErrLinkIndex)

	links := n.Links()
	require.Len(t, links, 2)
	assert.Equal(t, 4, links[0].ConnectedNode)
	assert.Nil(t, n.Link(2))
	assert.Equal(t, RankLeader, n.Rank())
	assert.True(t, n.Dangerous())
	assert.Equal(t, 5, n.Priority())
}
