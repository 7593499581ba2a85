package geoscape

import (
	"testing"

	"github.com/1siamBot/geoscape/engine/core"
	"github.com/1siamBot/geoscape/engine/dogfight"
	"github.com/1siamBot/geoscape/engine/resource"
	"github.com/1siamBot/geoscape/engine/rules"
	"github.com/1siamBot/geoscape/engine/savegame"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct{ v int }

func (r fixedRand) Intn(n int) int {
	if r.v >= n {
		return n - 1
	}
	return r.v
}

func newCraft(t *testing.T, id int, weapons ...string) *savegame.Craft {
	t.Helper()
	cr, ok := rules.Craft("INTERCEPTOR")
	require.True(t, ok)
	c := savegame.NewCraft(id, cr)
	for slot, name := range weapons {
		w, ok := rules.CraftWeapon(name)
		require.True(t, ok)
		c.Mount(slot, savegame.NewCraftWeapon(w))
	}
	return c
}

func newUfo(t *testing.T, id int, kind string) *savegame.Ufo {
	t.Helper()
	ur, ok := rules.Ufo(kind)
	require.True(t, ok)
	return savegame.NewUfo(id, ur)
}

func newInterceptions(globe Globe, opts dogfight.Options) (*Interceptions, *core.EventBus, map[core.EventType]int) {
	bus := core.NewEventBus()
	counts := map[core.EventType]int{}
	for et := core.EvtDogfightStarted; et <= core.EvtWindowsRelaid; et++ {
		bus.On(et, func(e core.Event) { counts[e.Type]++ })
	}
	in := NewInterceptions(opts, globe, dogfight.Deps{
		Log:  zerolog.Nop(),
		Bus:  bus,
		Rand: fixedRand{v: 0},
	})
	return in, bus, counts
}

// squareWorld has a single 10x10 degree continent at the origin.
func squareWorld() *LandGlobe {
	return NewLandGlobe([]resource.Polygon{{
		Lon:      [4]float64{0, 10, 10, 0},
		Lat:      [4]float64{0, 0, 10, 10},
		Vertices: 4,
	}})
}

// doomedUfo is one hit from destruction and never breaks off.
func doomedUfo(t *testing.T, id int, lon, lat float64) *savegame.Ufo {
	u := newUfo(t, id, "SMALL_SCOUT")
	u.SetDamage(u.Rules.MaxDamage - 1)
	u.Lon, u.Lat = lon, lat
	return u
}

func killOpts() dogfight.Options {
	o := dogfight.DefaultOptions()
	o.StartDistance = 100
	o.BreakOffThreshold = 0.001
	return o
}

func TestStart_Limits(t *testing.T) {
	in, _, _ := newInterceptions(nil, dogfight.DefaultOptions())

	for i := 0; i < rules.MaxInterceptions; i++ {
		_, err := in.Start(newCraft(t, i+1), newUfo(t, 100+i, "SMALL_SCOUT"))
		require.NoError(t, err)
	}
	_, err := in.Start(newCraft(t, 9), newUfo(t, 109, "SMALL_SCOUT"))
	assert.ErrorIs(t, err, ErrTooManyInterceptions)
	assert.Equal(t, rules.MaxInterceptions, in.Len())
}

func TestStart_RejectsBusyCraftAndGoneTarget(t *testing.T) {
	in, _, _ := newInterceptions(nil, dogfight.DefaultOptions())
	craft := newCraft(t, 1)

	_, err := in.Start(craft, newUfo(t, 10, "SMALL_SCOUT"))
	require.NoError(t, err)
	assert.True(t, craft.Claimed())

	_, err = in.Start(craft, newUfo(t, 11, "SMALL_SCOUT"))
	assert.ErrorIs(t, err, ErrCraftBusy)

	gone := newUfo(t, 12, "SMALL_SCOUT")
	gone.Remove()
	other := newCraft(t, 2)
	_, err = in.Start(other, gone)
	assert.ErrorIs(t, err, ErrTargetGone)
	assert.False(t, other.Claimed(), "a rejected start leaves the craft free")

	_, err = in.Start(other, nil)
	assert.ErrorIs(t, err, ErrTargetGone)
}

func TestStart_RelaysWindows(t *testing.T) {
	in, bus, counts := newInterceptions(nil, dogfight.DefaultOptions())

	for i := 0; i < 3; i++ {
		_, err := in.Start(newCraft(t, i+1), newUfo(t, 100+i, "SMALL_SCOUT"))
		require.NoError(t, err)
	}
	bus.Dispatch()
	assert.Equal(t, 3, counts[core.EvtWindowsRelaid])

	active := in.Active()
	require.Len(t, active, 3)
	layout := dogfight.DefaultLayout()
	for i, d := range active {
		assert.Equal(t, i, d.InterceptionNumber())
		x, y := dogfight.WindowPosition(i, 3, layout)
		assert.Equal(t, x, d.WindowRect().X)
		assert.Equal(t, y, d.WindowRect().Y)
		for _, o := range active[i+1:] {
			assert.False(t, d.WindowRect().Overlaps(o.WindowRect()))
		}
	}
}

func TestThink_CrashSiteOverLand(t *testing.T) {
	in, bus, counts := newInterceptions(squareWorld(), killOpts())
	craft := newCraft(t, 1, "LASER_CANNON")
	ufo := doomedUfo(t, 7, 5, 5)

	_, err := in.Start(craft, ufo)
	require.NoError(t, err)
	require.True(t, in.Handle(0, dogfight.CmdStandard))
	for i := 0; i < 200 && in.Len() > 0; i++ {
		in.Think()
		bus.Dispatch()
	}

	assert.Equal(t, 0, in.Len())
	assert.True(t, ufo.IsCrashed())
	assert.False(t, ufo.Removed())
	assert.False(t, craft.Claimed())
	assert.Equal(t, savegame.CraftReturning, craft.Status)
	assert.Equal(t, ufo.Rules.Score, in.Score())

	sites := in.CrashSites()
	require.Len(t, sites, 1)
	assert.Equal(t, 7, sites[0].UfoID)
	assert.Equal(t, "SMALL_SCOUT", sites[0].UfoType)
	assert.Equal(t, 1, counts[core.EvtCrashSite])
	assert.Equal(t, 0, counts[core.EvtUfoLostAtSea])
}

func TestThink_UfoLostAtSea(t *testing.T) {
	in, bus, counts := newInterceptions(squareWorld(), killOpts())
	ufo := doomedUfo(t, 7, 40, -30)

	_, err := in.Start(newCraft(t, 1, "LASER_CANNON"), ufo)
	require.NoError(t, err)
	in.Handle(0, dogfight.CmdStandard)
	for i := 0; i < 200 && in.Len() > 0; i++ {
		in.Think()
		bus.Dispatch()
	}

	assert.True(t, ufo.Removed())
	assert.Empty(t, in.CrashSites())
	assert.Equal(t, 1, counts[core.EvtUfoLostAtSea])
}

func TestThink_SimultaneousDestructionStillDownsUfo(t *testing.T) {
	laser, ok := rules.CraftWeapon("LASER_CANNON")
	require.True(t, ok)
	craft := newCraft(t, 1, "LASER_CANNON")
	ufo := savegame.NewUfo(9, rules.UfoRule{
		Type:         "TEST",
		Size:         rules.Large,
		MaxDamage:    laser.Damage / 2,
		Speed:        1000,
		WeaponPower:  2 * craft.Rules.MaxDamage,
		WeaponRange:  200,
		WeaponReload: laser.Reload[rules.ModeStandard],
		Accuracy:     60,
		Score:        250,
	})
	ufo.Lon, ufo.Lat = 5, 5
	opts := dogfight.DefaultOptions()
	opts.StartDistance = 100
	opts.UfoFireJitter = 0
	in, bus, counts := newInterceptions(squareWorld(), opts)

	d, err := in.Start(craft, ufo)
	require.NoError(t, err)
	in.Handle(0, dogfight.CmdStandard)
	for i := 0; i < 100 && in.Len() > 0; i++ {
		in.Think()
		bus.Dispatch()
	}

	require.Equal(t, 0, in.Len())
	assert.Equal(t, dogfight.OutcomeCraftDestroyed, d.Outcome())
	assert.Equal(t, savegame.CraftDestroyed, craft.Status)
	assert.True(t, ufo.IsCrashed(), "the downed UFO is not left flying")
	require.Len(t, in.CrashSites(), 1)
	assert.Equal(t, 9, in.CrashSites()[0].UfoID)
	assert.Equal(t, 250-craft.Rules.Score, in.Score())
	assert.Equal(t, 1, counts[core.EvtCrashSite])
}

func TestThink_RemovesOnlyEndedDogfights(t *testing.T) {
	in, _, _ := newInterceptions(nil, dogfight.DefaultOptions())
	first, second := newCraft(t, 1), newCraft(t, 2)
	_, err := in.Start(first, newUfo(t, 10, "SMALL_SCOUT"))
	require.NoError(t, err)
	d2, err := in.Start(second, newUfo(t, 11, "SMALL_SCOUT"))
	require.NoError(t, err)

	in.Handle(0, dogfight.CmdClose)
	in.Think()

	require.Equal(t, 1, in.Len())
	assert.Same(t, d2, in.Active()[0])
	assert.Equal(t, 0, d2.InterceptionNumber(), "survivors are renumbered")
	assert.False(t, first.Claimed())
	assert.Equal(t, savegame.CraftOut, first.Status, "closing a window leaves the craft on patrol")
	assert.True(t, second.Claimed())
}

func TestThink_LostTargetSendsCraftHome(t *testing.T) {
	in, _, _ := newInterceptions(nil, dogfight.DefaultOptions())
	craft := newCraft(t, 1)
	ufo := newUfo(t, 10, "SMALL_SCOUT")
	_, err := in.Start(craft, ufo)
	require.NoError(t, err)

	ufo.Remove()
	in.Think()

	assert.Equal(t, 0, in.Len())
	assert.Equal(t, savegame.CraftReturning, craft.Status)
	assert.False(t, craft.Claimed())
}

func TestHandle_OutOfRange(t *testing.T) {
	in, _, _ := newInterceptions(nil, dogfight.DefaultOptions())
	assert.False(t, in.Handle(0, dogfight.CmdStandard))
	assert.False(t, in.Handle(-1, dogfight.CmdStandard))
}

func TestLandGlobe(t *testing.T) {
	g := NewLandGlobe([]resource.Polygon{
		{Lon: [4]float64{0, 10, 10, 0}, Lat: [4]float64{0, 0, 10, 10}, Vertices: 4},
		{Lon: [4]float64{20, 30, 25}, Lat: [4]float64{20, 20, 30}, Vertices: 3},
		{Lon: [4]float64{1, 2}, Lat: [4]float64{1, 2}, Vertices: 2},
	})

	assert.Equal(t, 2, g.Len(), "degenerate polygons are skipped")
	assert.True(t, g.IsLand(5, 5))
	assert.True(t, g.IsLand(25, 22))
	assert.True(t, g.IsLand(10, 5), "edges count as land")
	assert.False(t, g.IsLand(15, 15))
	assert.False(t, g.IsLand(-5, 5))
	assert.True(t, AllLand{}.IsLand(-5, 5))
}

func TestClick_RoutesToWindowUnderCursor(t *testing.T) {
	in, _, _ := newInterceptions(nil, dogfight.DefaultOptions())
	_, err := in.Start(newCraft(t, 1), newUfo(t, 10, "SMALL_SCOUT"))
	require.NoError(t, err)
	d2, err := in.Start(newCraft(t, 2), newUfo(t, 11, "SMALL_SCOUT"))
	require.NoError(t, err)

	win := d2.WindowRect()
	slot, cmd, ok := in.Click(win.X+90, win.Y+56)
	require.True(t, ok)
	assert.Equal(t, 1, slot)
	assert.Equal(t, dogfight.CmdAggressive, cmd)
	assert.Equal(t, dogfight.ModeAggressive, d2.Mode())
	assert.Equal(t, dogfight.ModeStandoff, in.Active()[0].Mode())

	_, _, ok = in.Click(-10, -10)
	assert.False(t, ok)
}
