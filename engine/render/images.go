package render

import (
	"image"
	"image/color"

	"github.com/1siamBot/geoscape/engine/resource"
	"github.com/1siamBot/geoscape/engine/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

type frameKey struct {
	set   string
	index int
}

// ImageCache uploads resource pack images to the GPU once and hands out
// the ebiten copies.
type ImageCache struct {
	pack     *resource.Pack
	surfaces map[string]*ebiten.Image
	frames   map[frameKey]*ebiten.Image
	ufoBlobs [rules.UfoBlobCount]*ebiten.Image
	shots    map[rules.ProjectileType]*ebiten.Image
	faces    map[string]text.Face
	ramp     [10]color.RGBA
}

// NewImageCache wraps a pack; a nil pack gives blank surfaces and the built-in font.
func NewImageCache(pack *resource.Pack) *ImageCache {
	c := &ImageCache{
		pack:     pack,
		surfaces: make(map[string]*ebiten.Image),
		frames:   make(map[frameKey]*ebiten.Image),
		shots:    make(map[rules.ProjectileType]*ebiten.Image),
		faces:    make(map[string]text.Face),
	}
	for i := range c.ramp {
		v := uint8(60 + i*21)
		c.ramp[i] = color.RGBA{v / 3, v, v / 3, 255}
	}
	return c
}

// Surface returns a single-image surface, or nil if the pack lacks it
func (c *ImageCache) Surface(name string) *ebiten.Image {
	if img, ok := c.surfaces[name]; ok {
		return img
	}
	var img *ebiten.Image
	if c.pack != nil {
		if src := c.pack.Surface(name); src != nil {
			img = ebiten.NewImageFromImage(src)
		}
	}
	c.surfaces[name] = img
	return img
}

// Frame returns frame i of a surface set, or nil
func (c *ImageCache) Frame(set string, i int) *ebiten.Image {
	k := frameKey{set, i}
	if img, ok := c.frames[k]; ok {
		return img
	}
	var img *ebiten.Image
	if c.pack != nil {
		if s := c.pack.SurfaceSet(set); s != nil {
			if src := s.Frame(i); src != nil {
				img = ebiten.NewImageFromImage(src)
			}
		}
	}
	c.frames[k] = img
	return img
}

// Face returns the named pack font as a text face
func (c *ImageCache) Face(name string) text.Face {
	if f, ok := c.faces[name]; ok {
		return f
	}
	var face text.Face = text.NewGoXFace(basicfont.Face7x13)
	if c.pack != nil {
		if f := c.pack.Font(name); f != nil && f.Face != nil {
			face = text.NewGoXFace(f.Face)
		}
	}
	c.faces[name] = face
	return face
}

// UfoBlob returns the rendered blob for a UFO size or hit frame
func (c *ImageCache) UfoBlob(index int) *ebiten.Image {
	if index < 0 {
		index = 0
	}
	if index >= rules.UfoBlobCount {
		index = rules.UfoBlobCount - 1
	}
	if c.ufoBlobs[index] == nil {
		blob := rules.UfoBlobFor(index)
		rgba := image.NewRGBA(image.Rect(0, 0, len(blob[0]), len(blob)))
		for y, row := range blob {
			for x, v := range row {
				if v > 0 {
					rgba.SetRGBA(x, y, c.shade(v))
				}
			}
		}
		c.ufoBlobs[index] = ebiten.NewImageFromImage(rgba)
	}
	return c.ufoBlobs[index]
}

// Shot returns the sprite of a missile-class projectile, or nil for beams
func (c *ImageCache) Shot(t rules.ProjectileType) *ebiten.Image {
	if img, ok := c.shots[t]; ok {
		return img
	}
	blob, ok := rules.ProjectileBlobFor(t)
	if !ok {
		c.shots[t] = nil
		return nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, len(blob[0]), len(blob)))
	for y, row := range blob {
		for x, v := range row {
			if v > 0 {
				rgba.SetRGBA(x, y, c.shade(v))
			}
		}
	}
	img := ebiten.NewImageFromImage(rgba)
	c.shots[t] = img
	return img
}

// shade maps a blob intensity to a colour, using the geoscape palette
// when one is loaded.
func (c *ImageCache) shade(v int) color.RGBA {
	if v >= len(c.ramp) {
		v = len(c.ramp) - 1
	}
	if c.pack != nil {
		if pal := c.pack.Palette("PALETTES.DAT_0"); len(pal) > 0 {
			// green ramp of the geoscape palette runs downward from 112
			i := 112 - v
			if i > 0 && i < len(pal) {
				r, g, b, _ := pal[i].RGBA()
				return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255}
			}
		}
	}
	return c.ramp[v]
}
