package resource

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"os"
	"sort"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SurfaceSet is an indexed collection of equally sized frames. Indices
// may have gaps.
type SurfaceSet struct {
	Width, Height int
	frames        map[int]image.Image
}

// NewSurfaceSet creates an empty set of w x h frames
func NewSurfaceSet(w, h int) *SurfaceSet {
	return &SurfaceSet{Width: w, Height: h, frames: make(map[int]image.Image)}
}

// Frame returns frame i or nil
func (s *SurfaceSet) Frame(i int) image.Image {
	if s == nil {
		return nil
	}
	return s.frames[i]
}

// SetFrame stores a frame at index i, replacing any previous one
func (s *SurfaceSet) SetFrame(i int, img image.Image) {
	s.frames[i] = img
}

func (s *SurfaceSet) Len() int { return len(s.frames) }

// Indices returns the frame indices in ascending order
func (s *SurfaceSet) Indices() []int {
	out := make([]int, 0, len(s.frames))
	for i := range s.frames {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (s *SurfaceSet) setPalette(pal color.Palette) {
	for _, f := range s.frames {
		applyPalette(f, pal)
	}
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// blankLike returns an empty image of size w x h of the same kind as src
func blankLike(src image.Image, w, h int) draw.Image {
	r := image.Rect(0, 0, w, h)
	if p, ok := src.(*image.Paletted); ok {
		pal := make(color.Palette, len(p.Palette))
		copy(pal, p.Palette)
		return image.NewPaletted(r, pal)
	}
	return image.NewRGBA(r)
}

// splitFrames cuts img into w x h tiles, row by row. A trailing partial
// row or column is dropped.
func splitFrames(img image.Image, w, h int) []image.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	b := img.Bounds()
	cols, rows := b.Dx()/w, b.Dy()/h
	out := make([]image.Image, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			sr := image.Rect(b.Min.X+x*w, b.Min.Y+y*h, b.Min.X+(x+1)*w, b.Min.Y+(y+1)*h)
			dst := blankLike(img, w, h)
			draw.Copy(dst, image.Point{}, img, sr, draw.Src, nil)
			out = append(out, dst)
		}
	}
	return out
}

// copyFrame duplicates a frame, optionally flipped left to right
func copyFrame(src image.Image, mirror bool) image.Image {
	b := src.Bounds()
	dst := blankLike(src, b.Dx(), b.Dy())
	if !mirror {
		draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
		return dst
	}
	// source to destination: x' = w - (x - minX), y' = y - minY
	s2d := f64.Aff3{
		-1, 0, float64(b.Dx() + b.Min.X),
		0, 1, float64(-b.Min.Y),
	}
	draw.NearestNeighbor.Transform(dst, s2d, src, b, draw.Src, nil)
	return dst
}
