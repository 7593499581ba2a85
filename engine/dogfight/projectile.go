package dogfight

import "github.com/1siamBot/geoscape/engine/rules"

// Direction is the way a projectile travels along the engagement line
type Direction int

const (
	Outgoing Direction = iota // craft to UFO
	Incoming                  // UFO to craft
)

// Projectile is one shot in flight. Position is measured from the craft.
type Projectile struct {
	Slot      int // weapon slot, -1 for UFO shots
	Type      rules.ProjectileType
	Global    rules.GlobalType
	Direction Direction
	Position  int
	Speed     int
	Life      int
	Accuracy  int
	Damage    int
	Range     int
	Missed    bool
	Impact    bool

	done bool
}

func newCraftProjectile(slot int, w rules.CraftWeaponRule) *Projectile {
	pr := rules.ProjectileRuleFor(w.Projectile)
	return &Projectile{
		Slot:      slot,
		Type:      w.Projectile,
		Global:    pr.Global,
		Direction: Outgoing,
		Speed:     pr.Speed,
		Life:      pr.Life,
		Accuracy:  w.Accuracy,
		Damage:    w.Damage,
		Range:     w.Range,
	}
}

func newUfoProjectile(u rules.UfoRule) *Projectile {
	return &Projectile{
		Slot:      -1,
		Type:      rules.Plasma,
		Global:    rules.UfoBeam.Global,
		Direction: Incoming,
		Life:      rules.UfoBeam.Life,
		Accuracy:  u.Accuracy,
		Damage:    u.WeaponPower,
		Range:     u.WeaponRange,
	}
}

// hitChance scales weapon accuracy by target size: bigger UFOs are easier to hit.
func hitChance(accuracy int, size rules.UfoSize) int {
	s := int(size)
	if s < 0 {
		s = 0
	}
	if s > 4 {
		s = 4
	}
	chance := accuracy * (100 + 300/(5-s)) / 200
	if chance < 0 {
		return 0
	}
	if chance > 100 {
		return 100
	}
	return chance
}
