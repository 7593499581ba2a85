package savegame

import "github.com/1siamBot/geoscape/engine/rules"

// CraftStatus is the geoscape status of a craft
type CraftStatus int

const (
	CraftReady CraftStatus = iota
	CraftOut
	CraftReturning
	CraftDestroyed
)

func (s CraftStatus) String() string {
	switch s {
	case CraftReady:
		return "ready"
	case CraftOut:
		return "out"
	case CraftReturning:
		return "returning"
	case CraftDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// lowFuelPercent is the fuel level at which a craft heads home.
const lowFuelPercent = 10

// CraftWeapon is a weapon mounted on a craft hardpoint
type CraftWeapon struct {
	Rules rules.CraftWeaponRule
	ammo  int
}

// NewCraftWeapon creates a fully loaded weapon
func NewCraftWeapon(r rules.CraftWeaponRule) *CraftWeapon {
	return &CraftWeapon{Rules: r, ammo: r.AmmoMax}
}

func (w *CraftWeapon) Ammo() int { return w.ammo }

// SetAmmo sets the ammo, clamped to [0, AmmoMax]
func (w *CraftWeapon) SetAmmo(n int) {
	if n < 0 {
		n = 0
	}
	if n > w.Rules.AmmoMax {
		n = w.Rules.AmmoMax
	}
	w.ammo = n
}

// ConsumeAmmo uses one round; it never drops below zero.
func (w *CraftWeapon) ConsumeAmmo() {
	if w.ammo > 0 {
		w.ammo--
	}
}

func (w *CraftWeapon) Range() int { return w.Rules.Range }

// Craft is a player aircraft
type Craft struct {
	ID       int
	Rules    rules.CraftRule
	Lon, Lat float64
	Fuel     int
	Status   CraftStatus

	damage  int
	weapons [rules.WeaponSlots]*CraftWeapon
	claimed bool
}

// NewCraft creates a fuelled, undamaged craft
func NewCraft(id int, r rules.CraftRule) *Craft {
	return &Craft{ID: id, Rules: r, Fuel: r.MaxFuel}
}

// Mount puts a weapon on a hardpoint; nil empties it.
func (c *Craft) Mount(slot int, w *CraftWeapon) {
	if slot < 0 || slot >= rules.WeaponSlots || slot >= c.Rules.Weapons {
		return
	}
	c.weapons[slot] = w
}

// Weapon returns the weapon on a hardpoint, or nil
func (c *Craft) Weapon(slot int) *CraftWeapon {
	if slot < 0 || slot >= rules.WeaponSlots {
		return nil
	}
	return c.weapons[slot]
}

func (c *Craft) Speed() int { return c.Rules.Speed }

func (c *Craft) Damage() int { return c.damage }

// Health is the remaining hull points
func (c *Craft) Health() int {
	h := c.Rules.MaxDamage - c.damage
	if h < 0 {
		return 0
	}
	return h
}

// ApplyDamage adds hull damage and reports whether the craft is destroyed
func (c *Craft) ApplyDamage(n int) bool {
	if n > 0 {
		c.damage += n
	}
	return c.IsDestroyed()
}

func (c *Craft) IsDestroyed() bool {
	return c.Status == CraftDestroyed || c.damage >= c.Rules.MaxDamage
}

// MarkDestroyed finalises the loss of the craft
func (c *Craft) MarkDestroyed() {
	c.Status = CraftDestroyed
	c.claimed = false
}

// LowFuel reports whether the craft must head home
func (c *Craft) LowFuel() bool {
	if c.Rules.MaxFuel <= 0 {
		return false
	}
	return c.Fuel*100 <= c.Rules.MaxFuel*lowFuelPercent
}

// ReturnToBase orders the craft home
func (c *Craft) ReturnToBase() {
	if c.Status != CraftDestroyed {
		c.Status = CraftReturning
	}
}

// Claim marks the craft as engaged in a dogfight. It returns false if
// the craft is already engaged or destroyed.
func (c *Craft) Claim() bool {
	if c.claimed || c.IsDestroyed() {
		return false
	}
	c.claimed = true
	c.Status = CraftOut
	return true
}

// Release ends the dogfight claim
func (c *Craft) Release() { c.claimed = false }

// Claimed reports whether the craft is in a dogfight
func (c *Craft) Claimed() bool { return c.claimed }
