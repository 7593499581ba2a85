package resource

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct{ v int }

func (r fixedRand) Intn(n int) int {
	if r.v >= n {
		return n - 1
	}
	return r.v
}

var testPalette = color.Palette{
	color.RGBA{},
	color.RGBA{R: 0xff, A: 0xff},
	color.RGBA{G: 0xff, A: 0xff},
}

// gameDir lays out a minimal game folder and returns the data folder
func gameDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	game := filepath.Join(root, "xcom1")

	pal := make([]byte, 5*PaletteStride)
	for i := range pal {
		pal[i] = byte(i % 64)
	}
	writeFile(t, filepath.Join(game, "GEODATA", "PALETTES.DAT"), pal)
	writeFile(t, filepath.Join(game, "GEODATA", "BACKPALS.DAT"), make([]byte, 128*3))

	writePNG(t, filepath.Join(game, "GEOGRAPH", "INTICON.png"), halves(64, 16))
	writePNG(t, filepath.Join(game, "UNITS", "HANDOB.png"), halves(32, 48))
	writePNG(t, filepath.Join(game, "GEODATA", "INTERWIN.png"), halves(160, 96))

	writeWav(t, filepath.Join(game, "SOUND", "GEO", "0.wav"), 100)
	writeWav(t, filepath.Join(game, "SOUND", "GEO", "3.wav"), 50)
	writeWav(t, filepath.Join(game, "SOUND", "GMGEO1.wav"), 10)
	writeWav(t, filepath.Join(game, "SOUND", "GMGEO2.wav"), 20)
	writeWav(t, filepath.Join(game, "SOUND", "GMINTER.wav"), 30)

	var buf bytes.Buffer
	require.NoError(t, WritePolygons(&buf, []Polygon{
		{Lon: [4]float64{0, 10, 10, 0}, Lat: [4]float64{0, 0, 10, 10}, Vertices: 4},
		{Lon: [4]float64{20, 30, 25}, Lat: [4]float64{20, 20, 30}, Vertices: 3, Texture: 2},
	}))
	writeFile(t, filepath.Join(game, "GEODATA", "WORLD.DAT"), buf.Bytes())
	return root
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// halves is a paletted image: left half index 1, right half index 2
func halves(w, h int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w, h), testPalette)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.SetColorIndex(x, y, 1)
			} else {
				img.SetColorIndex(x, y, 2)
			}
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	writeFile(t, path, buf.Bytes())
}

func writeWav(t *testing.T, path string, samples int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	format := beep.Format{SampleRate: 8000, NumChannels: 1, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(samples), format))
}

func loadPack(t *testing.T, dir string, mute bool) *Pack {
	t.Helper()
	p, err := Load(dir, "xcom1", DefaultManifest(), mute, zerolog.Nop())
	require.NoError(t, err)
	return p
}

func TestLoad_Palettes(t *testing.T) {
	p := loadPack(t, gameDir(t), false)

	for _, name := range []string{"PALETTES.DAT_0", "PALETTES.DAT_4"} {
		pal := p.Palette(name)
		require.Len(t, pal, 256, name)
		assert.Equal(t, color.RGBA{}, pal[0], "index 0 is transparent")
	}
	assert.Len(t, p.Palette("BACKPALS.DAT"), 128)

	// byte 3 of the file is 3, widened from 6 to 8 bits
	r, _, _, _ := p.Palette("PALETTES.DAT_0")[1].RGBA()
	assert.Equal(t, uint32(3<<2)*0x101, r)
}

func TestLoad_SurfacesAndSets(t *testing.T) {
	p := loadPack(t, gameDir(t), false)

	require.NotNil(t, p.Surface("INTERWIN.DAT"))
	assert.Nil(t, p.Surface("GEOBORD.SCR"), "missing files are skipped")

	icons := p.SurfaceSet("INTICON.PCK")
	require.NotNil(t, icons)
	assert.Equal(t, []int{0, 1}, icons.Indices())
	f0 := icons.Frame(0).(*image.Paletted)
	f1 := icons.Frame(1).(*image.Paletted)
	assert.Equal(t, uint8(1), f0.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(2), f1.ColorIndexAt(0, 0))
	assert.Equal(t, p.Palette("PALETTES.DAT_0")[1], f0.Palette[1], "set palette applied")

	handob2 := p.SurfaceSet("HANDOB2.PCK")
	require.NotNil(t, handob2)
	assert.Equal(t, p.SurfaceSet("HANDOB.PCK").Len(), handob2.Len())
	assert.NotSame(t, p.SurfaceSet("HANDOB.PCK").Frame(0), handob2.Frame(0))
}

func TestLoad_FontsAndPolygons(t *testing.T) {
	p := loadPack(t, gameDir(t), false)

	big := p.Font("Big.fnt")
	require.NotNil(t, big)
	assert.NotNil(t, big.Face)
	assert.Positive(t, big.Height)

	polys := p.Polygons()
	require.Len(t, polys, 2)
	assert.Equal(t, 4, polys[0].Vertices)
	assert.Equal(t, 3, polys[1].Vertices)
	assert.Equal(t, 25.0, polys[1].Lon[2])
	assert.Equal(t, 2, polys[1].Texture)
}

func TestLoad_SoundsAndMusic(t *testing.T) {
	p := loadPack(t, gameDir(t), false)

	geo := p.SoundSet("GEO.CAT")
	require.NotNil(t, geo)
	assert.Equal(t, []int{0, 3}, geo.Indices())
	assert.Equal(t, 100, p.Sound("GEO.CAT", 0).Len())
	assert.False(t, p.Sound("GEO.CAT", 3).Silent())
	assert.Nil(t, p.Sound("GEO.CAT", 1))
	assert.Nil(t, p.Sound("NOPE.CAT", 0))

	require.NotNil(t, p.Music("GMINTER"))
	assert.Equal(t, 30, p.Music("GMINTER").Len())

	assert.Equal(t, "GMGEO1", p.RandomMusic("GMGEO", fixedRand{0}).Name)
	assert.Equal(t, "GMGEO2", p.RandomMusic("GMGEO", fixedRand{1}).Name)
	assert.True(t, p.RandomMusic("GMNONE", fixedRand{0}).Silent())
}

func TestLoad_MuteUsesPlaceholders(t *testing.T) {
	p := loadPack(t, gameDir(t), true)

	assert.True(t, p.Mute())
	assert.Nil(t, p.SoundSet("GEO.CAT"), "muted packs never decode sounds")
	snd := p.Sound("GEO.CAT", 0)
	require.NotNil(t, snd)
	assert.True(t, snd.Silent())
	assert.Nil(t, snd.Streamer())
	assert.True(t, p.Music("GMINTER").Silent())
	assert.True(t, p.RandomMusic("GMGEO", fixedRand{0}).Silent())
}

func TestLoad_MissingPaletteFails(t *testing.T) {
	dir := gameDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "xcom1", "GEODATA", "PALETTES.DAT")))

	_, err := Load(dir, "xcom1", DefaultManifest(), false, zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_UnknownPaletteReference(t *testing.T) {
	m := DefaultManifest()
	m.SurfaceSets[0].Palette = "NOPE"

	_, err := Load(gameDir(t), "xcom1", m, false, zerolog.Nop())
	assert.ErrorIs(t, err, ErrUnknownSheet)
}

func TestDeriveSet_Mirror(t *testing.T) {
	p := NewPack(t.TempDir(), false, zerolog.Nop())
	src := NewSurfaceSet(4, 2)
	frame := image.NewPaletted(image.Rect(0, 0, 4, 2), testPalette)
	frame.SetColorIndex(0, 0, 1)
	src.SetFrame(7, frame)
	p.sets["SRC"] = src

	require.NoError(t, p.DeriveSet("DST", "SRC", true))
	got := p.SurfaceSet("DST").Frame(7).(*image.Paletted)
	assert.Equal(t, uint8(1), got.ColorIndexAt(3, 0))
	assert.Equal(t, uint8(0), got.ColorIndexAt(0, 0))

	require.NoError(t, p.DeriveSet("COPY", "SRC", false))
	assert.Equal(t, uint8(1), p.SurfaceSet("COPY").Frame(7).(*image.Paletted).ColorIndexAt(0, 0))

	assert.ErrorIs(t, p.DeriveSet("X", "MISSING", false), ErrUnknownSheet)
}

func TestApplyExtraSprites(t *testing.T) {
	dir := gameDir(t)
	game := filepath.Join(dir, "xcom1")
	writePNG(t, filepath.Join(game, "mod", "a.png"), halves(32, 16))
	writePNG(t, filepath.Join(game, "mod", "b.png"), halves(32, 16))
	writePNG(t, filepath.Join(game, "mod", "strip.png"), halves(64, 16))
	writePNG(t, filepath.Join(game, "mod", "frames", "00.png"), halves(32, 16))
	writePNG(t, filepath.Join(game, "mod", "frames", "01.png"), halves(32, 16))
	p := loadPack(t, dir, false)
	before := p.SurfaceSet("INTICON.PCK").Frame(0)

	err := p.ApplyExtraSprites([]ExtraSprites{
		{Sheet: "INTICON.PCK", Folder: "mod", Width: 32, Height: 16, ModIndex: 1000,
			Sprites: map[int]string{0: "a.png", 5: "b.png", 10: "frames/"}},
		{Sheet: "NEW.PCK", Folder: "mod", Width: 32, Height: 16, ModIndex: 1000,
			Sprites: map[int]string{3: "a.png"}},
		{Sheet: "NEWDIR.PCK", Folder: "mod", Width: 32, Height: 16, ModIndex: 1000,
			Sprites: map[int]string{4: "frames/"}},
		{Sheet: "TILES.PCK", Folder: "mod", Width: 64, Height: 16, SubX: 32, SubY: 16, ModIndex: 1000,
			Sprites: map[int]string{0: "strip.png"}},
		{Sheet: "BANNER", Folder: "mod", SingleImage: true, Sprites: map[int]string{0: "a.png"}},
	})
	require.NoError(t, err)

	icons := p.SurfaceSet("INTICON.PCK")
	assert.NotSame(t, before, icons.Frame(0), "existing frame replaced in place")
	assert.Equal(t, []int{0, 1, 1005, 1010, 1011}, icons.Indices())
	assert.Equal(t, []int{1003}, p.SurfaceSet("NEW.PCK").Indices(), "a single file is offset even on a new sheet")
	assert.Equal(t, []int{4, 5}, p.SurfaceSet("NEWDIR.PCK").Indices(), "a folder filling a new sheet keeps its indices")
	assert.Equal(t, []int{0, 1}, p.SurfaceSet("TILES.PCK").Indices())
	assert.Equal(t, 32, p.SurfaceSet("TILES.PCK").Width)
	assert.NotNil(t, p.Surface("BANNER"))
}

func TestApplyExtraSprites_MissingFile(t *testing.T) {
	p := loadPack(t, gameDir(t), false)
	err := p.ApplyExtraSprites([]ExtraSprites{
		{Sheet: "INTICON.PCK", Folder: "mod", Sprites: map[int]string{0: "nope.png"}},
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyExtraSounds(t *testing.T) {
	dir := gameDir(t)
	game := filepath.Join(dir, "xcom1")
	writeWav(t, filepath.Join(game, "modsnd", "x.wav"), 11)
	writeWav(t, filepath.Join(game, "modsnd", "y.wav"), 12)
	p := loadPack(t, dir, false)

	err := p.ApplyExtraSounds([]ExtraSounds{
		{Set: "GEO.CAT", Folder: "modsnd", ModIndex: 100, Sounds: map[int]string{3: "x.wav", 4: "y.wav"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 104}, p.SoundSet("GEO.CAT").Indices())
	assert.Equal(t, 11, p.Sound("GEO.CAT", 3).Len())
	assert.Equal(t, 12, p.Sound("GEO.CAT", 104).Len())

	muted := loadPack(t, dir, true)
	require.NoError(t, muted.ApplyExtraSounds([]ExtraSounds{
		{Set: "GEO.CAT", Folder: "modsnd", Sounds: map[int]string{0: "missing.wav"}},
	}), "muted packs ignore sound mods")
}

func TestReadPolygons_Truncated(t *testing.T) {
	_, err := ReadPolygons(bytes.NewReader(make([]byte, 7)))
	assert.Error(t, err)
}
