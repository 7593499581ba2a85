package resource

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Polygon is a land patch of the world map in degrees. Vertices is 3 or 4.
type Polygon struct {
	Lon, Lat [4]float64
	Vertices int
	Texture  int
}

// polygonRecord is one WORLD.DAT entry: four lon/lat pairs in eighths of
// a degree, a texture index and a padding word.
type polygonRecord struct {
	Coords  [8]int16
	Texture int16
	_       int16
}

// ReadPolygons decodes land polygons until EOF. A fourth longitude of -1
// marks a triangle.
func ReadPolygons(r io.Reader) ([]Polygon, error) {
	var out []Polygon
	for {
		var rec polygonRecord
		err := binary.Read(r, binary.LittleEndian, &rec)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("polygon %d: %w", len(out), err)
		}
		p := Polygon{Vertices: 4, Texture: int(rec.Texture)}
		if rec.Coords[6] == -1 {
			p.Vertices = 3
		}
		for i := 0; i < p.Vertices; i++ {
			p.Lon[i] = float64(rec.Coords[i*2]) / 8
			p.Lat[i] = float64(rec.Coords[i*2+1]) / 8
		}
		out = append(out, p)
	}
}

// WritePolygons encodes polygons in the same record layout
func WritePolygons(w io.Writer, polys []Polygon) error {
	for i, p := range polys {
		var rec polygonRecord
		for v := 0; v < 4; v++ {
			if v < p.Vertices {
				rec.Coords[v*2] = int16(p.Lon[v] * 8)
				rec.Coords[v*2+1] = int16(p.Lat[v] * 8)
			}
		}
		if p.Vertices == 3 {
			rec.Coords[6] = -1
		}
		rec.Texture = int16(p.Texture)
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("polygon %d: %w", i, err)
		}
	}
	return nil
}
