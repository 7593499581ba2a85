// Package resource loads the assets of a game folder into memory up front:
// palettes, fonts, surfaces, surface sets, sound sets, music and the land
// polygons of the world map. Mods can add to or replace entries after the
// initial load.
package resource

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/1siamBot/geoscape/engine/core"
	"github.com/rs/zerolog"
)

var ErrUnknownSheet = errors.New("unknown sheet")

type PaletteDef struct {
	Name   string
	File   string
	Offset int64
	Colors int
}

type FontDef struct {
	Name string
	// File is an optional TTF; empty means the built-in face.
	File string
	Size float64
}

type SurfaceDef struct {
	Name    string
	File    string
	Palette string
}

type SurfaceSetDef struct {
	Name          string
	File          string
	Width, Height int
	Palette       string
}

type SoundSetDef struct {
	Name string
	// Folder holds <index>.wav files
	Folder string
}

// DerivedSetDef builds a set from frame copies of another set
type DerivedSetDef struct {
	Name   string
	From   string
	Mirror bool
}

// Manifest lists what Load reads. Paths are relative to the game folder.
type Manifest struct {
	Palettes    []PaletteDef
	Fonts       []FontDef
	Surfaces    []SurfaceDef
	SurfaceSets []SurfaceSetDef
	SoundSets   []SoundSetDef
	MusicFolder string
	Music       []string
	Polygons    string
	Derived     []DerivedSetDef
}

// DefaultManifest is the geoscape asset list of the first game
func DefaultManifest() Manifest {
	m := Manifest{
		Fonts: []FontDef{
			{Name: "Big.fnt"},
			{Name: "Small.fnt"},
		},
		Surfaces: []SurfaceDef{
			{Name: "INTERWIN.DAT", File: "GEODATA/INTERWIN.png", Palette: "PALETTES.DAT_0"},
			{Name: "GEOBORD.SCR", File: "GEOGRAPH/GEOBORD.png", Palette: "PALETTES.DAT_0"},
		},
		SurfaceSets: []SurfaceSetDef{
			{Name: "INTICON.PCK", File: "GEOGRAPH/INTICON.png", Width: 32, Height: 16, Palette: "PALETTES.DAT_0"},
			{Name: "HANDOB.PCK", File: "UNITS/HANDOB.png", Width: 32, Height: 48, Palette: "PALETTES.DAT_4"},
		},
		SoundSets: []SoundSetDef{
			{Name: "GEO.CAT", Folder: "SOUND/GEO"},
			{Name: "BATTLE.CAT", Folder: "SOUND/BATTLE"},
		},
		MusicFolder: "SOUND",
		Music: []string{
			"GMDEFEND", "GMENBASE", "GMGEO1", "GMGEO2", "GMGEO3", "GMGEO4",
			"GMINTER", "GMINTRO1", "GMINTRO2", "GMINTRO3", "GMLOSE", "GMMARS",
			"GMNEWMAR", "GMSTORY", "GMTACTIC", "GMTACTIC2", "GMWIN",
		},
		Polygons: "GEODATA/WORLD.DAT",
		Derived: []DerivedSetDef{
			{Name: "HANDOB2.PCK", From: "HANDOB.PCK"},
		},
	}
	for i := 0; i < 5; i++ {
		m.Palettes = append(m.Palettes, PaletteDef{
			Name:   fmt.Sprintf("PALETTES.DAT_%d", i),
			File:   "GEODATA/PALETTES.DAT",
			Offset: PalOffset(i),
			Colors: 256,
		})
	}
	m.Palettes = append(m.Palettes, PaletteDef{Name: "BACKPALS.DAT", File: "GEODATA/BACKPALS.DAT", Colors: 128})
	return m
}

// Pack is the loaded asset store
type Pack struct {
	root string
	mute bool
	log  zerolog.Logger

	palettes map[string]color.Palette
	fonts    map[string]*Font
	surfaces map[string]image.Image
	sets     map[string]*SurfaceSet
	sounds   map[string]*SoundSet
	music    map[string]*Music
	polygons []Polygon

	muteSound *Sound
	muteMusic *Music
}

// NewPack returns an empty pack rooted at dir
func NewPack(dir string, mute bool, log zerolog.Logger) *Pack {
	return &Pack{
		root:      dir,
		mute:      mute,
		log:       log.With().Str("component", "resource").Logger(),
		palettes:  make(map[string]color.Palette),
		fonts:     make(map[string]*Font),
		surfaces:  make(map[string]image.Image),
		sets:      make(map[string]*SurfaceSet),
		sounds:    make(map[string]*SoundSet),
		music:     make(map[string]*Music),
		muteSound: &Sound{},
		muteMusic: &Music{Name: "mute"},
	}
}

// Load reads everything the manifest lists from folder/game. Missing
// images, sounds and polygons are logged and skipped; missing palettes
// and undecodable files are errors. Sounds and music are not read at all
// when muted.
func Load(folder, game string, m Manifest, mute bool, log zerolog.Logger) (*Pack, error) {
	p := NewPack(filepath.Join(folder, game), mute, log)

	for _, def := range m.Palettes {
		if err := p.loadPalette(def); err != nil {
			return nil, err
		}
	}
	for _, def := range m.Fonts {
		p.loadFont(def)
	}
	for _, def := range m.Surfaces {
		img, err := p.readImage(def.File)
		if err != nil {
			return nil, err
		}
		if img != nil {
			p.surfaces[def.Name] = img
		}
	}
	for _, def := range m.SurfaceSets {
		if err := p.loadSurfaceSet(def); err != nil {
			return nil, err
		}
	}
	if !mute {
		for _, def := range m.SoundSets {
			if err := p.loadSoundSet(def); err != nil {
				return nil, err
			}
		}
		for _, name := range m.Music {
			if err := p.loadMusic(m.MusicFolder, name); err != nil {
				return nil, err
			}
		}
	}
	if m.Polygons != "" {
		if err := p.loadPolygons(m.Polygons); err != nil {
			return nil, err
		}
	}

	// post-load fixups
	for _, def := range m.Surfaces {
		if err := p.applySurfacePalette(def.Name, def.Palette); err != nil {
			return nil, err
		}
	}
	for _, def := range m.SurfaceSets {
		if err := p.applySetPalette(def.Name, def.Palette); err != nil {
			return nil, err
		}
	}
	for _, def := range m.Derived {
		if _, ok := p.sets[def.From]; !ok {
			p.log.Warn().Str("set", def.Name).Str("from", def.From).Msg("derived set source missing")
			continue
		}
		if err := p.DeriveSet(def.Name, def.From, def.Mirror); err != nil {
			return nil, err
		}
	}

	p.log.Info().
		Int("palettes", len(p.palettes)).
		Int("fonts", len(p.fonts)).
		Int("surfaces", len(p.surfaces)).
		Int("sets", len(p.sets)).
		Int("soundSets", len(p.sounds)).
		Int("music", len(p.music)).
		Int("polygons", len(p.polygons)).
		Bool("mute", mute).
		Msg("resource pack loaded")
	return p, nil
}

// path resolves a file against the game folder; mod folders are absolute.
func (p *Pack) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.root, filepath.FromSlash(rel))
}

func (p *Pack) loadPalette(def PaletteDef) error {
	f, err := os.Open(p.path(def.File))
	if err != nil {
		return fmt.Errorf("palette %s: %w", def.Name, err)
	}
	defer f.Close()

	pal, err := ReadPalette(f, def.Colors, def.Offset)
	if err != nil {
		return fmt.Errorf("palette %s: %w", def.Name, err)
	}
	p.palettes[def.Name] = pal
	return nil
}

func (p *Pack) loadFont(def FontDef) {
	if def.File == "" {
		p.fonts[def.Name] = builtinFont(def.Name)
		return
	}
	size := def.Size
	if size <= 0 {
		size = 8
	}
	f, err := loadTTF(def.Name, p.path(def.File), size)
	if err != nil {
		p.log.Warn().Err(err).Str("font", def.Name).Msg("falling back to built-in font")
		f = builtinFont(def.Name)
	}
	p.fonts[def.Name] = f
}

// readImage returns nil without error when the file does not exist.
func (p *Pack) readImage(rel string) (image.Image, error) {
	img, err := decodeImage(p.path(rel))
	if errors.Is(err, os.ErrNotExist) {
		p.log.Warn().Str("file", rel).Msg("image missing")
		return nil, nil
	}
	return img, err
}

func (p *Pack) loadSurfaceSet(def SurfaceSetDef) error {
	img, err := p.readImage(def.File)
	if err != nil || img == nil {
		return err
	}
	set := NewSurfaceSet(def.Width, def.Height)
	for i, frame := range splitFrames(img, def.Width, def.Height) {
		set.SetFrame(i, frame)
	}
	p.sets[def.Name] = set
	return nil
}

func (p *Pack) loadSoundSet(def SoundSetDef) error {
	dir := p.path(def.Folder)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		p.log.Warn().Str("set", def.Name).Str("folder", def.Folder).Msg("sound set missing")
		return nil
	}
	if err != nil {
		return fmt.Errorf("sound set %s: %w", def.Name, err)
	}
	set := NewSoundSet()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		idx, ok := wavIndex(e.Name())
		if !ok {
			continue
		}
		snd, err := decodeWav(filepath.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("sound set %s: %w", def.Name, err)
		}
		set.SetSound(idx, snd)
	}
	p.sounds[def.Name] = set
	return nil
}

func wavIndex(name string) (int, bool) {
	if !strings.EqualFold(filepath.Ext(name), ".wav") {
		return 0, false
	}
	var idx int
	if _, err := fmt.Sscanf(strings.TrimSuffix(name, filepath.Ext(name)), "%d", &idx); err != nil {
		return 0, false
	}
	return idx, true
}

func (p *Pack) loadMusic(folder, name string) error {
	snd, err := decodeWav(filepath.Join(p.path(folder), name+".wav"))
	if errors.Is(err, os.ErrNotExist) {
		p.log.Debug().Str("music", name).Msg("music missing")
		return nil
	}
	if err != nil {
		return fmt.Errorf("music %s: %w", name, err)
	}
	p.music[name] = &Music{Name: name, Sound: *snd}
	return nil
}

func (p *Pack) loadPolygons(rel string) error {
	f, err := os.Open(p.path(rel))
	if errors.Is(err, os.ErrNotExist) {
		p.log.Warn().Str("file", rel).Msg("polygons missing")
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	polys, err := ReadPolygons(f)
	if err != nil {
		return fmt.Errorf("polygons %s: %w", rel, err)
	}
	p.polygons = polys
	return nil
}

func (p *Pack) applySurfacePalette(name, palette string) error {
	if palette == "" {
		return nil
	}
	img, ok := p.surfaces[name]
	if !ok {
		return nil
	}
	pal, ok := p.palettes[palette]
	if !ok {
		return fmt.Errorf("surface %s palette %s: %w", name, palette, ErrUnknownSheet)
	}
	applyPalette(img, pal)
	return nil
}

func (p *Pack) applySetPalette(name, palette string) error {
	if palette == "" {
		return nil
	}
	set, ok := p.sets[name]
	if !ok {
		return nil
	}
	pal, ok := p.palettes[palette]
	if !ok {
		return fmt.Errorf("set %s palette %s: %w", name, palette, ErrUnknownSheet)
	}
	set.setPalette(pal)
	return nil
}

// DeriveSet creates name from frame copies of from, mirrored if asked.
func (p *Pack) DeriveSet(name, from string, mirror bool) error {
	src, ok := p.sets[from]
	if !ok {
		return fmt.Errorf("derive %s from %s: %w", name, from, ErrUnknownSheet)
	}
	dst := NewSurfaceSet(src.Width, src.Height)
	for _, i := range src.Indices() {
		dst.SetFrame(i, copyFrame(src.Frame(i), mirror))
	}
	p.sets[name] = dst
	return nil
}

// SetPalette applies a palette to every surface set, like switching the
// screen palette for a new state.
func (p *Pack) SetPalette(pal color.Palette) {
	for _, s := range p.sets {
		s.setPalette(pal)
	}
}

func (p *Pack) Mute() bool { return p.mute }

func (p *Pack) Palette(name string) color.Palette { return p.palettes[name] }

func (p *Pack) Font(name string) *Font { return p.fonts[name] }

func (p *Pack) Surface(name string) image.Image { return p.surfaces[name] }

func (p *Pack) SurfaceSet(name string) *SurfaceSet { return p.sets[name] }

func (p *Pack) Polygons() []Polygon { return p.polygons }

// Sound returns sound i of a set. Muted packs return a silent placeholder;
// unknown sounds are nil.
func (p *Pack) Sound(set string, i int) *Sound {
	if p.mute {
		return p.muteSound
	}
	return p.sounds[set].Sound(i)
}

// SoundSet returns a whole sound set or nil
func (p *Pack) SoundSet(name string) *SoundSet { return p.sounds[name] }

// Music returns a track by name. Muted packs return a silent placeholder.
func (p *Pack) Music(name string) *Music {
	if p.mute {
		return p.muteMusic
	}
	return p.music[name]
}

// RandomMusic picks one of the tracks whose name contains prefix. With
// no match, or when muted, it returns the silent placeholder.
func (p *Pack) RandomMusic(prefix string, rng core.Rand) *Music {
	if p.mute {
		return p.muteMusic
	}
	var names []string
	for name := range p.music {
		if strings.Contains(name, prefix) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return p.muteMusic
	}
	sort.Strings(names)
	return p.music[names[rng.Intn(len(names))]]
}
