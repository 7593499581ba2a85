// Package rules holds the immutable rule tables for the geoscape:
// engagement distances, craft, weapon and UFO definitions, and the
// blob tables used to draw UFOs and projectiles in a dogfight window.
package rules

const (
	// StandoffDist is the maximum engagement distance of a dogfight.
	StandoffDist = 560
	// AggressiveDist is the closing distance used by the aggressive attack mode.
	AggressiveDist = 64
	// MaxInterceptions is the number of dogfight windows that fit on screen.
	MaxInterceptions = 4
	// WeaponSlots is the number of weapon hardpoints on a craft.
	WeaponSlots = 2
)

// SoundCue identifies one sound inside a sound set of the resource pack
type SoundCue struct {
	Set   string
	Index int
}

var (
	CueUfoFire  = SoundCue{Set: "GEO.CAT", Index: 8}
	CueUfoCrash = SoundCue{Set: "GEO.CAT", Index: 10}
	CueUfoHit   = SoundCue{Set: "GEO.CAT", Index: 12}
	CueCraftHit = SoundCue{Set: "GEO.CAT", Index: 13}
	CueDestroy  = SoundCue{Set: "GEO.CAT", Index: 11}
)

// AttackMode selects how a craft engages its target
type AttackMode int

const (
	ModeCautious AttackMode = iota
	ModeStandard
	ModeAggressive
)

// CraftWeaponRule describes a craft weapon type
type CraftWeaponRule struct {
	Type       string
	Projectile ProjectileType
	Damage     int
	Range      int // distance units
	Accuracy   int // percent
	Reload     [3]int
	AmmoMax    int
	Sound      SoundCue
}

// ReloadFor returns the reload in time-scale units for the attack mode
func (r *CraftWeaponRule) ReloadFor(m AttackMode) int {
	if m < ModeCautious || m > ModeAggressive {
		m = ModeStandard
	}
	return r.Reload[m]
}

// UfoRule describes a UFO type
type UfoRule struct {
	Type         string
	Size         UfoSize
	MaxDamage    int
	Speed        int
	WeaponPower  int
	WeaponRange  int
	WeaponReload int
	Accuracy     int
	Score        int
}

// CraftRule describes a player craft type
type CraftRule struct {
	Type      string
	MaxDamage int
	Speed     int
	Weapons   int
	MaxFuel   int
	Score     int
}

var craftWeapons = map[string]CraftWeaponRule{
	"STINGRAY":     {Type: "STINGRAY", Projectile: Stingray, Damage: 70, Range: 240, Accuracy: 70, Reload: [3]int{48, 32, 24}, AmmoMax: 6, Sound: SoundCue{"GEO.CAT", 0}},
	"AVALANCHE":    {Type: "AVALANCHE", Projectile: Avalanche, Damage: 100, Range: 480, Accuracy: 80, Reload: [3]int{72, 48, 36}, AmmoMax: 3, Sound: SoundCue{"GEO.CAT", 1}},
	"CANNON":       {Type: "CANNON", Projectile: Cannon, Damage: 10, Range: 80, Accuracy: 25, Reload: [3]int{3, 2, 2}, AmmoMax: 200, Sound: SoundCue{"GEO.CAT", 2}},
	"FUSION_BALL":  {Type: "FUSION_BALL", Projectile: FusionBall, Damage: 230, Range: 520, Accuracy: 100, Reload: [3]int{48, 32, 24}, AmmoMax: 2, Sound: SoundCue{"GEO.CAT", 3}},
	"LASER_CANNON": {Type: "LASER_CANNON", Projectile: Laser, Damage: 70, Range: 168, Accuracy: 35, Reload: [3]int{18, 12, 9}, AmmoMax: 100, Sound: SoundCue{"GEO.CAT", 4}},
	"PLASMA_BEAM":  {Type: "PLASMA_BEAM", Projectile: Plasma, Damage: 140, Range: 416, Accuracy: 50, Reload: [3]int{18, 12, 9}, AmmoMax: 100, Sound: SoundCue{"GEO.CAT", 5}},
}

var ufos = map[string]UfoRule{
	"SMALL_SCOUT":  {Type: "SMALL_SCOUT", Size: VerySmall, MaxDamage: 50, Speed: 2200, Accuracy: 60, Score: 50},
	"MEDIUM_SCOUT": {Type: "MEDIUM_SCOUT", Size: Small, MaxDamage: 200, Speed: 2400, WeaponPower: 20, WeaponRange: 120, WeaponReload: 24, Accuracy: 60, Score: 75},
	"LARGE_SCOUT":  {Type: "LARGE_SCOUT", Size: Small, MaxDamage: 250, Speed: 2700, WeaponPower: 20, WeaponRange: 272, WeaponReload: 20, Accuracy: 60, Score: 125},
	"HARVESTER":    {Type: "HARVESTER", Size: Medium, MaxDamage: 500, Speed: 4000, WeaponPower: 40, WeaponRange: 320, WeaponReload: 20, Accuracy: 60, Score: 250},
	"ABDUCTOR":     {Type: "ABDUCTOR", Size: Medium, MaxDamage: 500, Speed: 4300, WeaponPower: 40, WeaponRange: 320, WeaponReload: 20, Accuracy: 60, Score: 250},
	"TERROR_SHIP":  {Type: "TERROR_SHIP", Size: Large, MaxDamage: 1200, Speed: 4800, WeaponPower: 120, WeaponRange: 336, WeaponReload: 18, Accuracy: 60, Score: 500},
	"SUPPLY_SHIP":  {Type: "SUPPLY_SHIP", Size: Large, MaxDamage: 2200, Speed: 3200, WeaponPower: 60, WeaponRange: 288, WeaponReload: 20, Accuracy: 60, Score: 400},
	"BATTLESHIP":   {Type: "BATTLESHIP", Size: VeryLarge, MaxDamage: 3200, Speed: 5000, WeaponPower: 148, WeaponRange: 520, WeaponReload: 16, Accuracy: 60, Score: 700},
}

var crafts = map[string]CraftRule{
	"INTERCEPTOR": {Type: "INTERCEPTOR", MaxDamage: 100, Speed: 2100, Weapons: 2, MaxFuel: 1000, Score: 300},
	"FIRESTORM":   {Type: "FIRESTORM", MaxDamage: 500, Speed: 4200, Weapons: 2, MaxFuel: 100, Score: 400},
	"LIGHTNING":   {Type: "LIGHTNING", MaxDamage: 800, Speed: 3100, Weapons: 1, MaxFuel: 30, Score: 300},
	"AVENGER":     {Type: "AVENGER", MaxDamage: 1200, Speed: 5400, Weapons: 2, MaxFuel: 60, Score: 600},
}

// CraftWeapon returns the weapon rule for a type
func CraftWeapon(name string) (CraftWeaponRule, bool) {
	r, ok := craftWeapons[name]
	return r, ok
}

// Ufo returns the UFO rule for a type
func Ufo(name string) (UfoRule, bool) {
	r, ok := ufos[name]
	return r, ok
}

// Craft returns the craft rule for a type
func Craft(name string) (CraftRule, bool) {
	r, ok := crafts[name]
	return r, ok
}
