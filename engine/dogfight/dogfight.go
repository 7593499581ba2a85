// Package dogfight simulates one interception between a player craft and
// a UFO. A Dogfight is advanced once per frame by its owner through Think;
// every timer, shot and distance change happens inside that call in a
// fixed order, so concurrent dogfights need no locking as long as each
// craft is engaged in only one of them.
package dogfight

import (
	"time"

	"github.com/1siamBot/geoscape/engine/core"
	"github.com/1siamBot/geoscape/engine/rules"
	"github.com/1siamBot/geoscape/engine/savegame"
	"github.com/rs/zerolog"
)

const maxDist = rules.StandoffDist

// Mode is the attack mode picked by the player
type Mode int

const (
	ModeStandoff Mode = iota
	ModeCautious
	ModeStandard
	ModeAggressive
	ModeDisengage
)

func (m Mode) String() string {
	switch m {
	case ModeStandoff:
		return "standoff"
	case ModeCautious:
		return "cautious"
	case ModeStandard:
		return "standard"
	case ModeAggressive:
		return "aggressive"
	case ModeDisengage:
		return "disengage"
	default:
		return "unknown"
	}
}

func (m Mode) attackMode() rules.AttackMode {
	switch m {
	case ModeCautious:
		return rules.ModeCautious
	case ModeAggressive:
		return rules.ModeAggressive
	default:
		return rules.ModeStandard
	}
}

// Outcome is how a dogfight ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCraftDestroyed
	OutcomeUfoDestroyed
	OutcomeCraftDisengaged
	OutcomeUfoEscaped
	OutcomeTargetLost
	OutcomeClosed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCraftDestroyed:
		return "craft_destroyed"
	case OutcomeUfoDestroyed:
		return "ufo_destroyed"
	case OutcomeCraftDisengaged:
		return "craft_disengaged"
	case OutcomeUfoEscaped:
		return "ufo_escaped"
	case OutcomeTargetLost:
		return "target_lost"
	case OutcomeClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Status messages shown in the window
const (
	StatusStandoff           = "STANDOFF"
	StatusCautious           = "CAUTIOUS_ATTACK"
	StatusStandard           = "STANDARD_ATTACK"
	StatusAggressive         = "AGGRESSIVE_ATTACK"
	StatusDisengaging        = "DISENGAGING"
	StatusUfoHit             = "UFO_HIT"
	StatusUfoDestroyed       = "UFO_DESTROYED"
	StatusCraftDamaged       = "INTERCEPTOR_DAMAGED"
	StatusCraftDestroyed     = "INTERCEPTOR_DESTROYED"
	StatusUfoBreakingOff     = "UFO_BREAKING_OFF"
	StatusUfoPursued         = "UFO_PURSUED"
	StatusTargetLost         = "TARGET_LOST"
	StatusLowFuel            = "LOW_FUEL_RETURNING_TO_BASE"
	StatusMinimiseAtStandoff = "MINIMISE_AT_STANDOFF_RANGE_ONLY"
	StatusWeaponOn           = "WEAPON_ENABLED"
	StatusWeaponOff          = "WEAPON_DISABLED"
)

// TimerID names the countdowns a dogfight owns
type TimerID int

const (
	TimerMove TimerID = iota
	TimerAnim
	TimerWeapon1
	TimerWeapon2
	TimerUfoFire
	TimerEscape
	TimerDamageAnim
	timerCount
)

// TimerStats is a read-only view of one timer
type TimerStats struct {
	Running  bool
	Fires    uint64
	Interval time.Duration
}

// SoundPlayer plays sound cues; muting is its concern
type SoundPlayer interface {
	Play(cue rules.SoundCue)
}

type silentPlayer struct{}

func (silentPlayer) Play(rules.SoundCue) {}

// Deps are the collaborators of a dogfight. Nil members get no-op defaults.
type Deps struct {
	Log    zerolog.Logger
	Bus    *core.EventBus
	Sounds SoundPlayer
	Rand   core.Rand
}

// Dogfight is one interception encounter
type Dogfight struct {
	craft  *savegame.Craft
	ufo    *savegame.Ufo
	opts   Options
	log    zerolog.Logger
	bus    *core.EventBus
	sounds SoundPlayer
	rng    core.Rand

	mode        Mode
	currentDist int
	targetDist  int

	end            bool
	destroyUfo     bool
	destroyCraft   bool
	ufoBreakingOff bool
	breakOffTried  bool
	minimized      bool
	previewVisible bool
	weaponEnabled  [rules.WeaponSlots]bool

	projectiles []*Projectile
	timers      [timerCount]core.Timer

	ufoHitFrame   int
	damageFlash   bool
	damageFlashes int
	animFrame     int
	status        string
	statusTicks   int

	interceptionNumber int
	interceptionsCount int
	x, y               int
	iconX, iconY       int

	outcome Outcome
	tick    uint64
}

// New creates a dogfight at opts.StartDistance in standoff mode.
// The craft must already be claimed by the caller.
func New(craft *savegame.Craft, ufo *savegame.Ufo, opts Options, deps Deps) *Dogfight {
	opts = opts.withDefaults()
	d := &Dogfight{
		craft:              craft,
		ufo:                ufo,
		opts:               opts,
		bus:                deps.Bus,
		sounds:             deps.Sounds,
		rng:                deps.Rand,
		mode:               ModeStandoff,
		currentDist:        opts.StartDistance,
		targetDist:         maxDist,
		interceptionsCount: 1,
	}
	if d.sounds == nil {
		d.sounds = silentPlayer{}
	}
	if d.rng == nil {
		d.rng = core.NewRand(time.Now().UnixNano())
	}
	ufoID := 0
	if ufo != nil {
		ufoID = ufo.ID
	}
	d.log = deps.Log.With().Str("component", "dogfight").Int("craft", craft.ID).Int("ufo", ufoID).Logger()

	d.timers[TimerMove] = core.NewTimer(opts.MoveInterval)
	d.timers[TimerMove].Start()
	d.timers[TimerAnim] = core.NewTimer(opts.AnimInterval)
	d.timers[TimerAnim].Start()
	for slot := 0; slot < rules.WeaponSlots; slot++ {
		if craft.Weapon(slot) == nil {
			continue
		}
		d.weaponEnabled[slot] = true
		t := weaponTimer(slot)
		d.timers[t] = core.NewTimer(d.weaponInterval(slot))
		d.timers[t].Start()
	}
	if d.ufoArmed() {
		d.timers[TimerUfoFire] = core.NewTimer(d.nextUfoFireInterval())
		d.timers[TimerUfoFire].Start()
	}
	d.timers[TimerEscape] = core.NewTimer(opts.EscapeInterval)
	d.timers[TimerDamageAnim] = core.NewTimer(opts.DamageAnimInterval)

	d.CalculateWindowPosition()
	d.setStatus(StatusStandoff)
	d.emit(core.EvtDogfightStarted)
	d.log.Info().Int("distance", d.currentDist).Msg("interception started")
	return d
}

func weaponTimer(slot int) TimerID {
	return TimerWeapon1 + TimerID(slot)
}

// Think advances the dogfight by one frame. The order is fixed:
// target check, movement and projectile resolution, craft weapons,
// UFO weapon, escape attempt, animations, break-off check, termination.
func (d *Dogfight) Think() {
	if d.end {
		return
	}
	d.tick++

	if d.ufo == nil || !d.ufo.InFlight() {
		// someone else finished this UFO
		d.setStatus(StatusTargetLost)
		d.endDogfight(OutcomeTargetLost)
		return
	}
	if d.mode != ModeDisengage && d.craft.LowFuel() {
		d.setMode(ModeDisengage)
		d.setStatus(StatusLowFuel)
	}

	dt := d.opts.Frame
	if d.timers[TimerMove].Advance(dt) {
		d.move()
	}
	if !d.resolved() {
		for slot := 0; slot < rules.WeaponSlots; slot++ {
			if d.timers[weaponTimer(slot)].Advance(dt) {
				d.fireWeapon(slot)
			}
		}
		if d.timers[TimerUfoFire].Advance(dt) {
			d.ufoFireWeapon()
		}
		if d.timers[TimerEscape].Advance(dt) {
			d.ufoEscape()
		}
	}
	if d.timers[TimerDamageAnim].Advance(dt) {
		d.animateCraftDamage()
	}
	if d.timers[TimerAnim].Advance(dt) {
		d.animate()
	}
	if !d.resolved() {
		d.checkBreakOff()
	}
	d.checkTermination()
}

// resolved reports a destruction waiting for the termination check.
func (d *Dogfight) resolved() bool {
	return d.destroyCraft || d.destroyUfo
}

// move eases the distance toward the target distance and advances every
// projectile in flight.
func (d *Dogfight) move() {
	change := 0
	if d.currentDist < d.targetDist {
		change = min(d.opts.RetreatStep, d.targetDist-d.currentDist)
	} else if d.currentDist > d.targetDist {
		change = -min(d.opts.ApproachStep, d.currentDist-d.targetDist)
	}
	next := max(0, min(maxDist, d.currentDist+change))
	change = next - d.currentDist
	d.currentDist = next

	// missiles are measured from the craft, which just moved under them
	for _, p := range d.projectiles {
		if p.Direction == Outgoing && p.Global == rules.Missile {
			p.Position = max(0, p.Position+change)
		}
	}
	d.advanceProjectiles()
}

func (d *Dogfight) advanceProjectiles() {
	for _, p := range d.projectiles {
		switch {
		case p.Direction == Outgoing && p.Global == rules.Missile:
			p.Position += p.Speed
			switch {
			case p.Missed:
				if p.Position >= p.Range || p.Position >= maxDist {
					p.done = true
				}
			case p.Position >= d.currentDist:
				d.resolveOutgoing(p)
			case p.Position >= p.Range:
				// fell short of a retreating target
				p.Missed = true
				p.done = true
				d.emit(core.EvtProjectileMissed)
			}
		case p.Direction == Outgoing:
			p.Life--
			if p.Life <= 0 {
				d.resolveOutgoing(p)
			}
		default:
			p.Life--
			if p.Life <= 0 {
				d.resolveIncoming(p)
			}
		}
	}

	live := d.projectiles[:0]
	for _, p := range d.projectiles {
		if !p.done {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(d.projectiles); i++ {
		d.projectiles[i] = nil
	}
	d.projectiles = live
}

func (d *Dogfight) resolveOutgoing(p *Projectile) {
	if d.destroyUfo {
		p.done = true
		return
	}
	if !core.Percent(d.rng, hitChance(p.Accuracy, d.ufo.Rules.Size)) {
		p.Missed = true
		if p.Global == rules.Beam {
			p.done = true
		}
		d.emit(core.EvtProjectileMissed)
		return
	}

	p.Impact = true
	p.done = true
	dmg := core.Between(d.rng, p.Damage/2, p.Damage)
	destroyed := d.ufo.ApplyDamage(dmg)
	d.ufoHitFrame = rules.MaxHitFrame
	d.sounds.Play(rules.CueUfoHit)
	d.emit(core.EvtUfoHit)
	d.log.Debug().Int("damage", dmg).Int("health", d.ufo.Health()).Msg("ufo hit")

	if destroyed {
		d.destroyUfo = true
		d.ufo.ShotDownBy = d.craft.ID
		d.setStatus(StatusUfoDestroyed)
		d.sounds.Play(rules.CueUfoCrash)
		d.emit(core.EvtUfoDestroyed)
		return
	}
	d.setStatus(StatusUfoHit)
}

func (d *Dogfight) resolveIncoming(p *Projectile) {
	p.done = true
	if d.destroyCraft {
		return
	}
	if !core.Percent(d.rng, p.Accuracy) {
		p.Missed = true
		d.emit(core.EvtProjectileMissed)
		return
	}

	p.Impact = true
	dmg := core.Between(d.rng, p.Damage/2, p.Damage)
	destroyed := d.craft.ApplyDamage(dmg)
	d.sounds.Play(rules.CueCraftHit)
	d.damageFlash = true
	d.damageFlashes = d.opts.DamageFlashes
	d.timers[TimerDamageAnim].Reset()
	d.timers[TimerDamageAnim].Start()
	d.emit(core.EvtCraftHit)
	d.log.Debug().Int("damage", dmg).Int("health", d.craft.Health()).Msg("craft hit")

	if destroyed {
		d.destroyCraft = true
		d.setStatus(StatusCraftDestroyed)
		d.sounds.Play(rules.CueDestroy)
		d.emit(core.EvtCraftDestroyed)
		return
	}
	d.setStatus(StatusCraftDamaged)
}

// canFire reports whether a craft weapon may fire this tick. A weapon
// without ammo counts as disabled.
func (d *Dogfight) canFire(slot int) bool {
	w := d.craft.Weapon(slot)
	if w == nil || !d.weaponEnabled[slot] || w.Ammo() <= 0 {
		return false
	}
	if d.minimized || d.end || d.mode == ModeDisengage {
		return false
	}
	return d.currentDist <= w.Range()
}

func (d *Dogfight) fireWeapon(slot int) {
	if !d.canFire(slot) {
		return
	}
	w := d.craft.Weapon(slot)
	w.ConsumeAmmo()
	d.projectiles = append(d.projectiles, newCraftProjectile(slot, w.Rules))
	d.sounds.Play(w.Rules.Sound)
	d.emit(core.EvtProjectileFired)
	d.log.Debug().Int("slot", slot).Int("ammo", w.Ammo()).Int("distance", d.currentDist).Msg("weapon fired")
}

func (d *Dogfight) ufoArmed() bool {
	return d.ufo != nil && d.ufo.Rules.WeaponPower > 0
}

func (d *Dogfight) ufoFireWeapon() {
	d.timers[TimerUfoFire].SetInterval(d.nextUfoFireInterval())
	if d.minimized || d.end || d.mode == ModeDisengage || !d.ufoArmed() {
		return
	}
	if d.currentDist > d.ufo.Rules.WeaponRange {
		return
	}
	d.projectiles = append(d.projectiles, newUfoProjectile(d.ufo.Rules))
	d.sounds.Play(rules.CueUfoFire)
	d.emit(core.EvtUfoFired)
}

// nextUfoFireInterval jitters the UFO reload so salvos do not line up.
func (d *Dogfight) nextUfoFireInterval() time.Duration {
	reload := d.ufo.Rules.WeaponReload - 2*d.opts.Difficulty
	if reload < 1 {
		reload = 1
	}
	base := time.Duration(reload) * d.opts.TimeScale
	jitter := int64(float64(base) * d.opts.UfoFireJitter)
	if jitter <= 0 {
		return base
	}
	return base + time.Duration(int64(d.rng.Intn(int(2*jitter+1)))-jitter)
}

func (d *Dogfight) weaponInterval(slot int) time.Duration {
	w := d.craft.Weapon(slot)
	if w == nil {
		return 0
	}
	reload := w.Rules.ReloadFor(d.mode.attackMode())
	if reload < 1 {
		reload = 1
	}
	return time.Duration(reload) * d.opts.TimeScale
}

func (d *Dogfight) checkBreakOff() {
	if d.ufoBreakingOff || d.breakOffTried {
		return
	}
	if d.ufo.HealthFraction() < d.opts.BreakOffThreshold {
		d.breakOff()
	}
}

// breakOff makes the UFO run for maximum range.
func (d *Dogfight) breakOff() {
	d.ufoBreakingOff = true
	d.breakOffTried = true
	d.targetDist = maxDist
	d.timers[TimerEscape].Reset()
	d.timers[TimerEscape].Start()
	d.setStatus(StatusUfoBreakingOff)
	d.emit(core.EvtUfoBreakOff)
	d.log.Info().Float64("health", d.ufo.HealthFraction()).Msg("ufo breaking off")
}

// ufoEscape runs on the escape timer. A craft at least as fast as the UFO
// closes back in; a slower one can only watch the distance grow.
func (d *Dogfight) ufoEscape() {
	if !d.ufoBreakingOff {
		if d.ufo.HealthFraction() < d.opts.BreakOffThreshold {
			d.breakOff()
		}
		return
	}
	if d.craft.Speed() < d.ufo.Speed() {
		return
	}
	d.ufoBreakingOff = false
	if d.mode != ModeDisengage {
		d.targetDist = d.modeDistance(d.mode)
	}
	d.setStatus(StatusUfoPursued)
	d.emit(core.EvtUfoPursued)
}

func (d *Dogfight) animate() {
	d.animFrame++
	if d.ufoHitFrame > 0 {
		d.ufoHitFrame--
	}
	if d.statusTicks > 0 {
		d.statusTicks--
		if d.statusTicks == 0 {
			d.status = ""
		}
	}
}

func (d *Dogfight) animateCraftDamage() {
	if d.damageFlashes <= 0 {
		d.damageFlash = false
		d.timers[TimerDamageAnim].Stop()
		return
	}
	d.damageFlash = !d.damageFlash
	d.damageFlashes--
}

// checkTermination ends the dogfight. A lost craft wins over a downed UFO
// when both happen in the same tick.
func (d *Dogfight) checkTermination() {
	switch {
	case d.destroyCraft:
		d.endDogfight(OutcomeCraftDestroyed)
	case d.destroyUfo:
		d.endDogfight(OutcomeUfoDestroyed)
	case d.mode == ModeDisengage && d.currentDist >= maxDist:
		d.endDogfight(OutcomeCraftDisengaged)
	case d.ufoBreakingOff && d.currentDist >= maxDist:
		d.endDogfight(OutcomeUfoEscaped)
	}
}

// endDogfight is the single teardown path; it runs once per dogfight.
func (d *Dogfight) endDogfight(o Outcome) {
	if d.end {
		return
	}
	d.end = true
	d.outcome = o
	for i := range d.timers {
		d.timers[i].Stop()
	}
	d.projectiles = nil
	d.emit(core.EvtDogfightEnded)
	d.log.Info().Str("outcome", o.String()).Int("distance", d.currentDist).Uint64("ticks", d.tick).Msg("interception ended")
}

// Close tears the dogfight down as if its window was closed.
func (d *Dogfight) Close() {
	d.endDogfight(OutcomeClosed)
}

func (d *Dogfight) setMode(m Mode) {
	if d.end || d.mode == ModeDisengage {
		return
	}
	d.mode = m
	switch m {
	case ModeDisengage:
		d.projectiles = nil
		d.targetDist = maxDist
		d.setStatus(StatusDisengaging)
	default:
		if !d.ufoBreakingOff {
			d.targetDist = d.modeDistance(m)
		}
		d.setStatus(modeStatus(m))
	}
	for slot := 0; slot < rules.WeaponSlots; slot++ {
		if d.craft.Weapon(slot) != nil {
			d.timers[weaponTimer(slot)].SetInterval(d.weaponInterval(slot))
		}
	}
	d.timers[TimerMove].Start()
	d.emit(core.EvtModeChanged)
	d.log.Debug().Str("mode", m.String()).Int("target", d.targetDist).Msg("attack mode")
}

func modeStatus(m Mode) string {
	switch m {
	case ModeCautious:
		return StatusCautious
	case ModeStandard:
		return StatusStandard
	case ModeAggressive:
		return StatusAggressive
	default:
		return StatusStandoff
	}
}

// modeDistance is the distance the craft tries to hold in a mode.
// Cautious stays at the longest weapon range, standard closes to the
// shortest one.
func (d *Dogfight) modeDistance(m Mode) int {
	dist := maxDist
	switch m {
	case ModeCautious:
		longest := 0
		for slot := 0; slot < rules.WeaponSlots; slot++ {
			if w := d.craft.Weapon(slot); w != nil && w.Range() > longest {
				longest = w.Range()
			}
		}
		if longest > 0 {
			dist = longest
		}
	case ModeStandard:
		shortest := 0
		for slot := 0; slot < rules.WeaponSlots; slot++ {
			if w := d.craft.Weapon(slot); w != nil && (shortest == 0 || w.Range() < shortest) {
				shortest = w.Range()
			}
		}
		if shortest > 0 {
			dist = shortest
		}
	case ModeAggressive:
		dist = rules.AggressiveDist
	}
	return min(dist, maxDist)
}

func (d *Dogfight) toggleWeapon(slot int) {
	if d.craft.Weapon(slot) == nil {
		return
	}
	d.weaponEnabled[slot] = !d.weaponEnabled[slot]
	if d.weaponEnabled[slot] {
		d.setStatus(StatusWeaponOn)
	} else {
		d.setStatus(StatusWeaponOff)
	}
}

// SetMinimized swaps the window for an icon. Weapon, UFO fire and
// animation timers pause; movement and escape keep running.
func (d *Dogfight) SetMinimized(minimized bool) {
	if d.end || d.minimized == minimized {
		return
	}
	d.minimized = minimized
	paused := []TimerID{TimerAnim, TimerWeapon1, TimerWeapon2, TimerUfoFire}
	for _, id := range paused {
		if minimized {
			d.timers[id].Stop()
			continue
		}
		switch {
		case id == TimerUfoFire && !d.ufoArmed():
		case (id == TimerWeapon1 || id == TimerWeapon2) && d.craft.Weapon(int(id-TimerWeapon1)) == nil:
		default:
			d.timers[id].Start()
		}
	}
	if !minimized {
		d.CalculateWindowPosition()
	}
}

func (d *Dogfight) setStatus(s string) {
	d.status = s
	d.statusTicks = d.opts.StatusTicks
}

func (d *Dogfight) emit(t core.EventType) {
	if d.bus == nil {
		return
	}
	d.bus.Emit(core.Event{Type: t, Tick: d.tick, Payload: d})
}

// SetInterceptionNumber sets the 0-based slot of this window
func (d *Dogfight) SetInterceptionNumber(n int) { d.interceptionNumber = n }

// InterceptionNumber returns the 0-based slot of this window
func (d *Dogfight) InterceptionNumber() int { return d.interceptionNumber }

// SetInterceptionsCount sets how many dogfight windows are open
func (d *Dogfight) SetInterceptionsCount(n int) { d.interceptionsCount = n }

// CalculateWindowPosition recomputes the window and icon positions from
// the slot and the number of open windows.
func (d *Dogfight) CalculateWindowPosition() {
	d.x, d.y = WindowPosition(d.interceptionNumber, d.interceptionsCount, d.opts.Layout)
	d.iconX, d.iconY = MinimizedIconPosition(d.interceptionNumber, d.opts.Layout)
}

// WindowRect is where the maximized window is drawn
func (d *Dogfight) WindowRect() Rect {
	return Rect{X: d.x, Y: d.y, W: d.opts.Layout.WindowW, H: d.opts.Layout.WindowH}
}

// IconRect is where the minimized icon is drawn
func (d *Dogfight) IconRect() Rect {
	return Rect{X: d.iconX, Y: d.iconY, W: d.opts.Layout.IconW, H: d.opts.Layout.IconH}
}

func (d *Dogfight) Ended() bool            { return d.end }
func (d *Dogfight) Outcome() Outcome       { return d.outcome }
func (d *Dogfight) Ufo() *savegame.Ufo     { return d.ufo }
func (d *Dogfight) Craft() *savegame.Craft { return d.craft }
func (d *Dogfight) Distance() int          { return d.currentDist }
func (d *Dogfight) TargetDistance() int    { return d.targetDist }
func (d *Dogfight) Mode() Mode             { return d.mode }
func (d *Dogfight) Minimized() bool        { return d.minimized }
func (d *Dogfight) BreakingOff() bool      { return d.ufoBreakingOff }
func (d *Dogfight) Status() string         { return d.status }
func (d *Dogfight) PreviewVisible() bool   { return d.previewVisible }
func (d *Dogfight) CraftDamageFlash() bool { return d.damageFlash }
func (d *Dogfight) Ticks() uint64          { return d.tick }
func (d *Dogfight) AnimFrame() int         { return d.animFrame }
func (d *Dogfight) Options() Options       { return d.opts }

// WeaponEnabled reports the player toggle of a slot
func (d *Dogfight) WeaponEnabled(slot int) bool {
	if slot < 0 || slot >= rules.WeaponSlots {
		return false
	}
	return d.weaponEnabled[slot]
}

// Projectiles returns a copy of the shots in flight
func (d *Dogfight) Projectiles() []Projectile {
	out := make([]Projectile, 0, len(d.projectiles))
	for _, p := range d.projectiles {
		out = append(out, *p)
	}
	return out
}

// UfoBlobIndex selects the UFO blob: size plus the hit flash frame
func (d *Dogfight) UfoBlobIndex() int {
	if d.ufo == nil {
		return 0
	}
	return int(d.ufo.Rules.Size) + d.ufoHitFrame
}

// Timer reports the state of one of the dogfight's timers
func (d *Dogfight) Timer(id TimerID) TimerStats {
	if id < 0 || id >= timerCount {
		return TimerStats{}
	}
	t := &d.timers[id]
	return TimerStats{Running: t.Running(), Fires: t.Fires(), Interval: t.Interval()}
}
