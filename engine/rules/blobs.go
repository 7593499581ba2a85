package rules

import "math"

// UfoSize is the size category of a UFO as seen in the dogfight window
type UfoSize int

const (
	VerySmall UfoSize = iota
	Small
	Medium
	Large
	VeryLarge
)

func (s UfoSize) String() string {
	switch s {
	case VerySmall:
		return "very_small"
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	case VeryLarge:
		return "very_large"
	default:
		return "unknown"
	}
}

const (
	// UfoBlobCount covers every size plus three hit-flash enlargements.
	UfoBlobCount = 8
	ufoBlobSide  = 13
	// MaxHitFrame is the first frame of the hit flash; it counts down to 0.
	MaxHitFrame = 3
)

// UfoBlob is a 13x13 intensity table; 0 is transparent, higher is brighter.
type UfoBlob [ufoBlobSide][ufoBlobSide]int

var ufoBlobs = buildUfoBlobs()

// buildUfoBlobs renders a disc per index whose radius grows with the index.
func buildUfoBlobs() [UfoBlobCount]UfoBlob {
	var blobs [UfoBlobCount]UfoBlob
	c := float64(ufoBlobSide / 2)
	for i := range blobs {
		radius := 1.0 + float64(i)*0.75
		for y := 0; y < ufoBlobSide; y++ {
			for x := 0; x < ufoBlobSide; x++ {
				d := math.Hypot(float64(x)-c, float64(y)-c)
				if d > radius {
					continue
				}
				v := 1 + int(math.Round((1-d/(radius+0.5))*6))
				if v > 7 {
					v = 7
				}
				blobs[i][y][x] = v
			}
		}
	}
	return blobs
}

// UfoBlobFor returns the blob table for index, clamped to the table.
func UfoBlobFor(index int) UfoBlob {
	if index < 0 {
		index = 0
	}
	if index >= UfoBlobCount {
		index = UfoBlobCount - 1
	}
	return ufoBlobs[index]
}

// ProjectileType is the kind of projectile a craft weapon fires
type ProjectileType int

const (
	Stingray ProjectileType = iota
	Avalanche
	Cannon
	FusionBall
	Laser
	Plasma
)

// GlobalType separates projectiles that travel from beams that strike
type GlobalType int

const (
	Missile GlobalType = iota
	Beam
)

// ProjectileBlob is a 6x3 intensity table drawn for missile-class projectiles
type ProjectileBlob [6][3]int

var projectileBlobs = [4]ProjectileBlob{
	// Stingray
	{{0, 1, 0}, {1, 9, 1}, {1, 9, 1}, {0, 5, 0}, {0, 5, 0}, {0, 3, 0}},
	// Avalanche
	{{1, 1, 1}, {1, 9, 1}, {1, 9, 1}, {0, 5, 0}, {0, 5, 0}, {0, 3, 0}},
	// Cannon round
	{{0, 7, 0}, {0, 9, 0}, {0, 7, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	// Fusion ball
	{{2, 4, 2}, {4, 9, 4}, {2, 4, 2}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
}

// ProjectileRule holds the flight characteristics of a projectile type
type ProjectileRule struct {
	Global GlobalType
	Speed  int // distance units per movement tick
	Life   int // movement ticks a beam stays visible before resolving
}

var projectileRules = map[ProjectileType]ProjectileRule{
	Stingray:   {Global: Missile, Speed: 8},
	Avalanche:  {Global: Missile, Speed: 8},
	Cannon:     {Global: Missile, Speed: 10},
	FusionBall: {Global: Missile, Speed: 8},
	Laser:      {Global: Beam, Life: 3},
	Plasma:     {Global: Beam, Life: 3},
}

// UfoBeam is what a UFO fires at a craft.
var UfoBeam = ProjectileRule{Global: Beam, Life: 3}

// ProjectileRuleFor returns the flight rule of a projectile type
func ProjectileRuleFor(t ProjectileType) ProjectileRule {
	if r, ok := projectileRules[t]; ok {
		return r
	}
	return ProjectileRule{Global: Missile, Speed: 8}
}

// ProjectileBlobFor returns the blob table for a missile-class type.
// Beams have no blob and report false.
func ProjectileBlobFor(t ProjectileType) (ProjectileBlob, bool) {
	if t < 0 || int(t) >= len(projectileBlobs) {
		return ProjectileBlob{}, false
	}
	return projectileBlobs[t], true
}
