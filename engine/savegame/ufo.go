package savegame

import "github.com/1siamBot/geoscape/engine/rules"

// UfoStatus is the geoscape status of a UFO
type UfoStatus int

const (
	UfoFlying UfoStatus = iota
	UfoLanded
	UfoCrashed
	UfoDestroyed
)

// Ufo is an alien craft on the geoscape
type Ufo struct {
	ID         int
	Rules      rules.UfoRule
	Lon, Lat   float64
	Status     UfoStatus
	ShotDownBy int // craft id, 0 if none

	damage  int
	removed bool
}

// NewUfo creates an undamaged flying UFO
func NewUfo(id int, r rules.UfoRule) *Ufo {
	return &Ufo{ID: id, Rules: r}
}

func (u *Ufo) Damage() int { return u.damage }

func (u *Ufo) Speed() int { return u.Rules.Speed }

// Health is the remaining hull points
func (u *Ufo) Health() int {
	h := u.Rules.MaxDamage - u.damage
	if h < 0 {
		return 0
	}
	return h
}

// HealthFraction is the remaining hull as a fraction of the maximum
func (u *Ufo) HealthFraction() float64 {
	if u.Rules.MaxDamage <= 0 {
		return 0
	}
	return float64(u.Health()) / float64(u.Rules.MaxDamage)
}

// ApplyDamage adds hull damage and reports whether the UFO is destroyed
func (u *Ufo) ApplyDamage(n int) bool {
	if n > 0 {
		u.damage += n
	}
	if u.IsDestroyed() && u.Status == UfoFlying {
		u.Status = UfoDestroyed
	}
	return u.IsDestroyed()
}

// SetDamage overwrites the accumulated damage
func (u *Ufo) SetDamage(n int) {
	if n < 0 {
		n = 0
	}
	u.damage = n
}

func (u *Ufo) IsDestroyed() bool { return u.damage >= u.Rules.MaxDamage }

// SetCrashed turns a shot-down UFO into a crash site
func (u *Ufo) SetCrashed() { u.Status = UfoCrashed }

func (u *Ufo) IsCrashed() bool { return u.Status == UfoCrashed }

// Remove takes the UFO off the geoscape
func (u *Ufo) Remove() { u.removed = true }

func (u *Ufo) Removed() bool { return u.removed }

// InFlight reports whether the UFO can still be engaged
func (u *Ufo) InFlight() bool {
	return !u.removed && u.Status == UfoFlying && !u.IsDestroyed()
}
