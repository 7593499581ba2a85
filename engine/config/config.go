// Package config reads the options file and mod definitions.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/1siamBot/geoscape/engine/dogfight"
	"github.com/1siamBot/geoscape/engine/resource"
	"github.com/spf13/viper"
)

var ErrNoConfig = errors.New("config file not found")

const (
	// FileName is the options file looked up in the config directory
	FileName = "geoscape"
	// ModFileName is the definition file inside each mod folder
	ModFileName = "mod"
	// ModIndexStep separates the frame ranges of consecutive mods
	ModIndexStep = 1000
)

// Config holds the user options
type Config struct {
	LogLevel          string            `mapstructure:"logLevel"`
	DataFolder        string            `mapstructure:"dataFolder"`
	Game              string            `mapstructure:"game"`
	Mute              bool              `mapstructure:"mute"`
	Difficulty        int               `mapstructure:"difficulty"`
	TimeScaleMs       int               `mapstructure:"timeScaleMs"`
	FrameMs           int               `mapstructure:"frameMs"`
	BreakOffThreshold float64           `mapstructure:"breakOffThreshold"`
	UfoFireJitter     float64           `mapstructure:"ufoFireJitter"`
	Volume            float64           `mapstructure:"volume"`
	Mods              []string          `mapstructure:"mods"`
	Bindings          map[string]string `mapstructure:"bindings"`
}

// DefaultBindings maps dogfight command names to key names
func DefaultBindings() map[string]string {
	return map[string]string{
		"standoff":   "S",
		"cautious":   "C",
		"standard":   "T",
		"aggressive": "A",
		"disengage":  "D",
		"weapon1":    "Digit1",
		"weapon2":    "Digit2",
		"minimize":   "M",
		"restore":    "R",
		"ufo":        "U",
		"close":      "Escape",
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("dataFolder", "./data")
	v.SetDefault("game", "xcom1")
	v.SetDefault("mute", false)
	v.SetDefault("difficulty", 0)
	v.SetDefault("timeScaleMs", 50)
	v.SetDefault("frameMs", 20)
	v.SetDefault("breakOffThreshold", 0.25)
	v.SetDefault("ufoFireJitter", 0.25)
	v.SetDefault("volume", 0.8)
	v.SetDefault("mods", []string{})
	for name, key := range DefaultBindings() {
		v.SetDefault("bindings."+name, key)
	}
}

// Load reads geoscape.yaml from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	c.Bindings = mergeBindings(c.Bindings)
	return &c, nil
}

// mergeBindings fills the commands a file leaves unbound with their
// default keys.
func mergeBindings(set map[string]string) map[string]string {
	out := DefaultBindings()
	for name, key := range set {
		out[strings.ToLower(name)] = key
	}
	return out
}

// DogfightOptions converts the timing options for new dogfights
func (c *Config) DogfightOptions() dogfight.Options {
	o := dogfight.DefaultOptions()
	if c.FrameMs > 0 {
		o.Frame = time.Duration(c.FrameMs) * time.Millisecond
	}
	if c.TimeScaleMs > 0 {
		o.TimeScale = time.Duration(c.TimeScaleMs) * time.Millisecond
	}
	if c.BreakOffThreshold > 0 {
		o.BreakOffThreshold = c.BreakOffThreshold
	}
	if c.UfoFireJitter >= 0 {
		o.UfoFireJitter = c.UfoFireJitter
	}
	o.Difficulty = c.Difficulty
	return o
}

// Mod is one mod's resource additions
type Mod struct {
	Name         string
	Dir          string
	ModIndex     int
	ExtraSprites []resource.ExtraSprites
	ExtraSounds  []resource.ExtraSounds
}

type spriteDef struct {
	Sheet       string         `mapstructure:"sheet"`
	Folder      string         `mapstructure:"folder"`
	Width       int            `mapstructure:"width"`
	Height      int            `mapstructure:"height"`
	SubX        int            `mapstructure:"subX"`
	SubY        int            `mapstructure:"subY"`
	SingleImage bool           `mapstructure:"singleImage"`
	Sprites     map[int]string `mapstructure:"sprites"`
}

type soundDef struct {
	Set    string         `mapstructure:"set"`
	Folder string         `mapstructure:"folder"`
	Sounds map[int]string `mapstructure:"sounds"`
}

type modFile struct {
	Name         string      `mapstructure:"name"`
	ModIndex     int         `mapstructure:"modIndex"`
	ExtraSprites []spriteDef `mapstructure:"extraSprites"`
	ExtraSounds  []soundDef  `mapstructure:"extraSounds"`
}

// LoadMod reads mod.yaml from dir. Folders in the file are relative to
// dir. A zero modIndex takes fallbackIndex.
func LoadMod(dir string, fallbackIndex int) (*Mod, error) {
	v := viper.New()
	v.SetConfigName(ModFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("mod %s: %w", dir, ErrNoConfig)
		}
		return nil, fmt.Errorf("mod %s: %w", dir, err)
	}

	var f modFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("mod %s: %w", dir, err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("mod %s: %w", dir, err)
	}

	m := &Mod{Name: f.Name, Dir: abs, ModIndex: f.ModIndex}
	if m.Name == "" {
		m.Name = filepath.Base(abs)
	}
	if m.ModIndex == 0 {
		m.ModIndex = fallbackIndex
	}
	for _, s := range f.ExtraSprites {
		m.ExtraSprites = append(m.ExtraSprites, resource.ExtraSprites{
			Sheet:       s.Sheet,
			Folder:      filepath.Join(abs, s.Folder),
			Width:       s.Width,
			Height:      s.Height,
			SubX:        s.SubX,
			SubY:        s.SubY,
			SingleImage: s.SingleImage,
			ModIndex:    m.ModIndex,
			Sprites:     s.Sprites,
		})
	}
	for _, s := range f.ExtraSounds {
		m.ExtraSounds = append(m.ExtraSounds, resource.ExtraSounds{
			Set:      s.Set,
			Folder:   filepath.Join(abs, s.Folder),
			ModIndex: m.ModIndex,
			Sounds:   s.Sounds,
		})
	}
	return m, nil
}

// LoadMods reads every configured mod in order. Mod n defaults to
// index n*ModIndexStep.
func (c *Config) LoadMods(base string) ([]*Mod, error) {
	mods := make([]*Mod, 0, len(c.Mods))
	for i, name := range c.Mods {
		dir := name
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, name)
		}
		m, err := LoadMod(dir, (i+1)*ModIndexStep)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}
