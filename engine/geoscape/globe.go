package geoscape

import (
	"github.com/1siamBot/geoscape/engine/resource"
	geom "github.com/peterstace/simplefeatures/geom"
)

// Globe answers whether a point on the world map is land
type Globe interface {
	IsLand(lon, lat float64) bool
}

// AllLand treats the whole world as land, so every downed UFO crashes.
type AllLand struct{}

func (AllLand) IsLand(float64, float64) bool { return true }

// LandGlobe tests points against the land polygons of the world map.
// Coordinates are degrees.
type LandGlobe struct {
	land []geom.Polygon
}

// NewLandGlobe builds the land mask. Degenerate polygons are skipped.
func NewLandGlobe(polys []resource.Polygon) *LandGlobe {
	g := &LandGlobe{land: make([]geom.Polygon, 0, len(polys))}
	for _, p := range polys {
		if p.Vertices < 3 {
			continue
		}
		coords := make([]float64, 0, 2*(p.Vertices+1))
		for i := 0; i < p.Vertices; i++ {
			coords = append(coords, p.Lon[i], p.Lat[i])
		}
		// close the ring
		coords = append(coords, p.Lon[0], p.Lat[0])
		ring, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
		if err != nil {
			continue
		}
		poly, err := geom.NewPolygon([]geom.LineString{ring})
		if err != nil {
			continue
		}
		g.land = append(g.land, poly)
	}
	return g
}

// Len returns the number of usable land polygons
func (g *LandGlobe) Len() int { return len(g.land) }

// IsLand reports whether the point lies inside or on the edge of any land polygon
func (g *LandGlobe) IsLand(lon, lat float64) bool {
	pt, err := geom.NewPoint(geom.Coordinates{XY: geom.XY{X: lon, Y: lat}})
	if err != nil {
		return false
	}
	for _, poly := range g.land {
		if geom.Intersects(pt.AsGeometry(), poly.AsGeometry()) {
			return true
		}
	}
	return false
}
