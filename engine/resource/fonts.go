package resource

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Font is a text face with its nominal glyph cell
type Font struct {
	Name   string
	Face   font.Face
	Width  int
	Height int
}

func builtinFont(name string) *Font {
	return &Font{
		Name:   name,
		Face:   basicfont.Face7x13,
		Width:  basicfont.Face7x13.Advance,
		Height: basicfont.Face7x13.Height,
	}
}

// loadTTF parses a TrueType or OpenType file at the given pixel size.
func loadTTF(name, path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %s: %w", path, err)
	}
	m := face.Metrics()
	adv, _ := face.GlyphAdvance('M')
	return &Font{
		Name:   name,
		Face:   face,
		Width:  adv.Ceil(),
		Height: m.Height.Ceil(),
	}, nil
}
