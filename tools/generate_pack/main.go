// generate_pack writes a stand-in game folder so the geoscape runs
// without the original data files. Everything is drawn procedurally:
// palettes, the interception window, icons, the land polygons and
// short tones for the geoscape sound set.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/1siamBot/geoscape/engine/resource"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(22050)

// Palette slots the generated images draw with
const (
	idxClear  = 0
	idxFrame  = 16
	idxPanel  = 20
	idxBright = 31
	idxGreen  = 100
)

func main() {
	data := flag.String("out", "data", "data folder to write")
	game := flag.String("game", "xcom1", "game folder name inside the data folder")
	flag.Parse()
	root := filepath.Join(*data, *game)

	fmt.Println("Generating palettes...")
	writeFile(filepath.Join(root, "GEODATA", "PALETTES.DAT"), genPalettes(5))
	writeFile(filepath.Join(root, "GEODATA", "BACKPALS.DAT"), genBackPals())

	fmt.Println("Generating interception graphics...")
	savePNG(filepath.Join(root, "GEODATA", "INTERWIN.png"), genWindow(160, 96))
	savePNG(filepath.Join(root, "GEOGRAPH", "GEOBORD.png"), genBorder(320, 200))
	savePNG(filepath.Join(root, "GEOGRAPH", "INTICON.png"), genIcons(32, 16, 4))
	savePNG(filepath.Join(root, "UNITS", "HANDOB.png"), genHandObjects(32, 48, 4))

	fmt.Println("Generating world polygons...")
	var world bytes.Buffer
	if err := resource.WritePolygons(&world, continents); err != nil {
		fail(err)
	}
	writeFile(filepath.Join(root, "GEODATA", "WORLD.DAT"), world.Bytes())

	fmt.Println("Generating sounds...")
	for i, freq := range geoTones {
		saveTone(filepath.Join(root, "SOUND", "GEO", fmt.Sprintf("%d.wav", i)), freq, 150*time.Millisecond)
	}
	saveTone(filepath.Join(root, "SOUND", "GMINTER.wav"), 220, 2*time.Second)

	fmt.Printf("Stand-in game folder written to %s\n", root)
}

// genPalettes returns n palettes in the 6-bit VGA layout, each followed
// by the six trailing bytes of the original record.
func genPalettes(n int) []byte {
	out := make([]byte, 0, n*resource.PaletteStride)
	for p := 0; p < n; p++ {
		for i := 0; i < 256; i++ {
			r, g, b := paletteColor(i, p)
			out = append(out, r, g, b)
		}
		out = append(out, make([]byte, resource.PaletteStride-256*3)...)
	}
	return out
}

// paletteColor lays out a blue ramp for window chrome and a green ramp
// around idxGreen for blobs. Later palettes are tinted warmer.
func paletteColor(i, p int) (r, g, b byte) {
	switch {
	case i == idxClear:
		return 0, 0, 0
	case i >= 16 && i < 32:
		v := byte(4 + (i-16)*3)
		return v / 2, v / 2, v
	case i >= 96 && i < 116:
		v := byte(63 - (i-96)*2)
		return v / 4, v, v / 4
	default:
		v := byte(i / 4)
		return clamp6(int(v) + p*4), v, v / 2
	}
}

func genBackPals() []byte {
	out := make([]byte, 0, 128*3)
	for i := 0; i < 128; i++ {
		v := byte(i / 2)
		out = append(out, v/3, v/3, v)
	}
	return out
}

func clamp6(v int) byte {
	if v > 63 {
		return 63
	}
	return byte(v)
}

// placeholder palette; the loader swaps in the real one
var drawPalette = func() color.Palette {
	pal := make(color.Palette, 256)
	for i := range pal {
		pal[i] = color.Gray{Y: uint8(i)}
	}
	return pal
}()

func newPaletted(w, h int) *image.Paletted {
	return image.NewPaletted(image.Rect(0, 0, w, h), drawPalette)
}

func genWindow(w, h int) *image.Paletted {
	img := newPaletted(w, h)
	fillRect(img, 0, 0, w, h, idxPanel)
	strokeRect(img, 0, 0, w, h, idxBright)
	strokeRect(img, 2, 2, w-4, h-4, idxFrame)
	// engagement strip
	fillRect(img, 4, 4, 74, 45, idxClear)
	strokeRect(img, 3, 3, 76, 47, idxFrame+8)
	return img
}

func genBorder(w, h int) *image.Paletted {
	img := newPaletted(w, h)
	strokeRect(img, 0, 0, w, h, idxFrame+6)
	strokeRect(img, 1, 1, w-2, h-2, idxFrame+2)
	return img
}

// genIcons draws n minimized-window icons side by side
func genIcons(w, h, n int) *image.Paletted {
	img := newPaletted(w*n, h)
	for f := 0; f < n; f++ {
		x := f * w
		fillRect(img, x, 0, w, h, idxPanel)
		strokeRect(img, x, 0, w, h, idxBright)
		// a small craft silhouette
		cx, cy := x+w/4, h/2
		for dy := -2; dy <= 2; dy++ {
			span := 2 - abs(dy)
			for dx := -span; dx <= span; dx++ {
				img.SetColorIndex(cx+dx, cy+dy, uint8(idxGreen+f))
			}
		}
	}
	return img
}

func genHandObjects(w, h, n int) *image.Paletted {
	img := newPaletted(w*n, h)
	for f := 0; f < n; f++ {
		x := f * w
		fillRect(img, x+w/2-2, 8, 4, h-16, uint8(idxGreen+f))
		fillRect(img, x+w/2-6, 8, 12, 4, idxBright)
	}
	return img
}

func fillRect(img *image.Paletted, x, y, w, h int, idx uint8) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			img.SetColorIndex(px, py, idx)
		}
	}
}

func strokeRect(img *image.Paletted, x, y, w, h int, idx uint8) {
	for px := x; px < x+w; px++ {
		img.SetColorIndex(px, y, idx)
		img.SetColorIndex(px, y+h-1, idx)
	}
	for py := y; py < y+h; py++ {
		img.SetColorIndex(x, py, idx)
		img.SetColorIndex(x+w-1, py, idx)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// continents is a coarse land mask; oceans are everything else
var continents = []resource.Polygon{
	// Americas
	{Lon: [4]float64{-125, -60, -75, -120}, Lat: [4]float64{50, 50, 10, 25}, Vertices: 4},
	{Lon: [4]float64{-80, -35, -70}, Lat: [4]float64{10, -5, -55}, Vertices: 3},
	// Europe and Africa
	{Lon: [4]float64{-10, 40, 40, -10}, Lat: [4]float64{60, 60, 36, 36}, Vertices: 4, Texture: 1},
	{Lon: [4]float64{-17, 50, 35, 15}, Lat: [4]float64{35, 12, -35, -35}, Vertices: 4, Texture: 2},
	// Asia and Australia
	{Lon: [4]float64{40, 140, 120, 60}, Lat: [4]float64{70, 60, 20, 20}, Vertices: 4, Texture: 3},
	{Lon: [4]float64{115, 153, 145, 115}, Lat: [4]float64{-20, -25, -38, -34}, Vertices: 4, Texture: 2},
}

// one tone per geoscape cue slot; zero is a silent slot
var geoTones = []float64{660, 440, 880, 520, 990, 740, 0, 0, 330, 0, 180, 150, 600, 260}

func saveTone(path string, freq float64, d time.Duration) {
	n := sampleRate.N(d)
	var s beep.Streamer = beep.Silence(n)
	if freq > 0 {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			fail(err)
		}
		s = beep.Take(n, tone)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fail(err)
	}
	f, err := os.Create(path)
	if err != nil {
		fail(err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, s, format); err != nil {
		fail(err)
	}
}

func savePNG(path string, img image.Image) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fail(err)
	}
	f, err := os.Create(path)
	if err != nil {
		fail(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fail(err)
	}
}

func writeFile(path string, data []byte) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fail(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "generate_pack:", err)
	os.Exit(1)
}
