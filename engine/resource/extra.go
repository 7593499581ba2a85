package resource

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExtraSprites is a mod's additions to one surface or surface set.
// Sprites maps a start index to a file, or to a folder when the name
// ends in "/".
type ExtraSprites struct {
	Sheet         string
	Folder        string
	Width, Height int
	SubX, SubY    int
	SingleImage   bool
	ModIndex      int
	Sprites       map[int]string
}

// ExtraSounds is a mod's additions to one sound set
type ExtraSounds struct {
	Set      string
	Folder   string
	ModIndex int
	Sounds   map[int]string
}

func sortedKeys(m map[int]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func isFolder(name string) bool {
	return strings.HasSuffix(name, "/")
}

// folderFiles lists the regular files of dir in name order
func folderFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}

// ApplyExtraSprites merges mod sprites into the pack. An existing frame
// is replaced in place. A new frame goes to its index plus the mod index.
// Folders and subdivided images filling a sheet that did not exist before
// keep their own indices.
func (p *Pack) ApplyExtraSprites(mods []ExtraSprites) error {
	for _, mod := range mods {
		if err := p.applyExtraSprites(mod); err != nil {
			return fmt.Errorf("extra sprites %s: %w", mod.Sheet, err)
		}
	}
	return nil
}

func (p *Pack) applyExtraSprites(mod ExtraSprites) error {
	base := p.path(mod.Folder)
	if mod.SingleImage {
		file, ok := mod.Sprites[0]
		if !ok {
			return fmt.Errorf("single image without sprite 0")
		}
		img, err := decodeImage(filepath.Join(base, file))
		if err != nil {
			return err
		}
		_, replaced := p.surfaces[mod.Sheet]
		p.surfaces[mod.Sheet] = img
		p.log.Debug().Str("sheet", mod.Sheet).Bool("replaced", replaced).Msg("single image")
		return nil
	}

	subdivide := mod.SubX != 0 && mod.SubY != 0
	set, exists := p.sets[mod.Sheet]
	if !exists {
		if subdivide {
			set = NewSurfaceSet(mod.SubX, mod.SubY)
		} else {
			set = NewSurfaceSet(mod.Width, mod.Height)
		}
		p.sets[mod.Sheet] = set
	}
	put := func(index int, img image.Image, keepOnNewSheet bool) {
		switch {
		case set.Frame(index) != nil:
			set.SetFrame(index, img)
		case !exists && keepOnNewSheet:
			set.SetFrame(index, img)
		default:
			set.SetFrame(index+mod.ModIndex, img)
		}
	}

	for _, start := range sortedKeys(mod.Sprites) {
		name := mod.Sprites[start]
		switch {
		case isFolder(name):
			files, err := folderFiles(filepath.Join(base, name))
			if err != nil {
				return err
			}
			for i, f := range files {
				img, err := decodeImage(f)
				if err != nil {
					return err
				}
				put(start+i, img, true)
			}
		case subdivide:
			img, err := decodeImage(filepath.Join(base, name))
			if err != nil {
				return err
			}
			for i, frame := range splitFrames(img, mod.SubX, mod.SubY) {
				put(start+i, frame, true)
			}
		default:
			img, err := decodeImage(filepath.Join(base, name))
			if err != nil {
				return err
			}
			put(start, img, false)
		}
	}
	p.log.Debug().Str("sheet", mod.Sheet).Bool("created", !exists).Int("frames", set.Len()).Msg("surface set merged")
	return nil
}

// ApplyExtraSounds merges mod sounds with the same placement rules as
// ApplyExtraSprites. Muted packs skip it.
func (p *Pack) ApplyExtraSounds(mods []ExtraSounds) error {
	if p.mute {
		return nil
	}
	for _, mod := range mods {
		if err := p.applyExtraSounds(mod); err != nil {
			return fmt.Errorf("extra sounds %s: %w", mod.Set, err)
		}
	}
	return nil
}

func (p *Pack) applyExtraSounds(mod ExtraSounds) error {
	base := p.path(mod.Folder)
	set, exists := p.sounds[mod.Set]
	if !exists {
		set = NewSoundSet()
		p.sounds[mod.Set] = set
		p.log.Info().Str("set", mod.Set).Msg("new sound set from mod")
	}
	put := func(index int, snd *Sound) {
		switch {
		case set.Sound(index) != nil:
			set.SetSound(index, snd)
		case !exists:
			set.SetSound(index, snd)
		default:
			set.SetSound(index+mod.ModIndex, snd)
		}
	}

	for _, start := range sortedKeys(mod.Sounds) {
		name := mod.Sounds[start]
		if isFolder(name) {
			files, err := folderFiles(filepath.Join(base, name))
			if err != nil {
				return err
			}
			for i, f := range files {
				snd, err := decodeWav(f)
				if err != nil {
					return err
				}
				put(start+i, snd)
			}
			continue
		}
		snd, err := decodeWav(filepath.Join(base, name))
		if err != nil {
			return err
		}
		put(start, snd)
	}
	return nil
}
