package resource

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// PaletteStride is the size of one palette block inside PALETTES.DAT:
// 256 RGB triplets plus a 6 byte trailer.
const PaletteStride = 256*3 + 6

// PalOffset returns the byte offset of palette i in a palette file
func PalOffset(i int) int64 { return int64(i) * PaletteStride }

// ReadPalette reads n 6-bit VGA colour triplets starting at offset.
func ReadPalette(r io.ReaderAt, n int, offset int64) (color.Palette, error) {
	if n <= 0 || n > 256 {
		return nil, fmt.Errorf("palette size %d out of range", n)
	}
	raw := make([]byte, n*3)
	if _, err := r.ReadAt(raw, offset); err != nil {
		return nil, fmt.Errorf("read palette at %d: %w", offset, err)
	}
	pal := make(color.Palette, n)
	for i := 0; i < n; i++ {
		pal[i] = color.RGBA{
			R: vga(raw[i*3]),
			G: vga(raw[i*3+1]),
			B: vga(raw[i*3+2]),
			A: 0xff,
		}
	}
	// index 0 is the transparent colour
	pal[0] = color.RGBA{}
	return pal, nil
}

// vga widens a 6-bit channel to 8 bits
func vga(c byte) uint8 {
	return (c & 0x3f) << 2
}

// applyPalette swaps the palette of a paletted image. Other images are
// returned untouched.
func applyPalette(img image.Image, pal color.Palette) {
	p, ok := img.(*image.Paletted)
	if !ok || len(pal) == 0 {
		return
	}
	merged := make(color.Palette, len(p.Palette))
	copy(merged, p.Palette)
	for i := range merged {
		if i < len(pal) {
			merged[i] = pal[i]
		}
	}
	if len(pal) > len(merged) {
		merged = append(merged, pal[len(merged):]...)
	}
	p.Palette = merged
}
