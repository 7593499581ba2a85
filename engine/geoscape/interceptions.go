// Package geoscape owns the interceptions running on the world map. It
// starts dogfights, ticks them in a stable order, keeps their windows
// tiled and settles the outcome of each one on the craft, the UFO and
// the score.
package geoscape

import (
	"errors"
	"fmt"

	"github.com/1siamBot/geoscape/engine/core"
	"github.com/1siamBot/geoscape/engine/dogfight"
	"github.com/1siamBot/geoscape/engine/rules"
	"github.com/1siamBot/geoscape/engine/savegame"
	"github.com/rs/zerolog"
)

var (
	ErrTooManyInterceptions = errors.New("too many interceptions")
	ErrCraftBusy            = errors.New("craft is not available")
	ErrTargetGone           = errors.New("target is not in flight")
)

// CrashSite is a UFO brought down over land
type CrashSite struct {
	UfoID   int
	UfoType string
	Lon     float64
	Lat     float64
	Tick    uint64
}

// Interceptions is the list of running dogfights
type Interceptions struct {
	log   zerolog.Logger
	deps  dogfight.Deps
	opts  dogfight.Options
	globe Globe

	active     []*dogfight.Dogfight
	crashSites []CrashSite
	score      int
	tick       uint64
}

// NewInterceptions creates an empty owner. A nil globe counts everything as land.
func NewInterceptions(opts dogfight.Options, globe Globe, deps dogfight.Deps) *Interceptions {
	if globe == nil {
		globe = AllLand{}
	}
	return &Interceptions{
		log:   deps.Log.With().Str("component", "interceptions").Logger(),
		deps:  deps,
		opts:  opts,
		globe: globe,
	}
}

// Start opens a dogfight between craft and ufo and re-tiles every window.
func (in *Interceptions) Start(craft *savegame.Craft, ufo *savegame.Ufo) (*dogfight.Dogfight, error) {
	if len(in.active) >= rules.MaxInterceptions {
		return nil, fmt.Errorf("start craft %d: %w", craft.ID, ErrTooManyInterceptions)
	}
	if ufo == nil || !ufo.InFlight() {
		return nil, fmt.Errorf("start craft %d: %w", craft.ID, ErrTargetGone)
	}
	if !craft.Claim() {
		return nil, fmt.Errorf("start craft %d: %w", craft.ID, ErrCraftBusy)
	}

	d := dogfight.New(craft, ufo, in.opts, in.deps)
	in.active = append(in.active, d)
	in.relayout()
	in.log.Info().Int("craft", craft.ID).Int("ufo", ufo.ID).Int("active", len(in.active)).Msg("interception opened")
	return d, nil
}

// Think advances every dogfight once in list order, then settles and
// removes the ones that ended.
func (in *Interceptions) Think() {
	in.tick++
	for _, d := range in.active {
		d.Think()
	}

	before := len(in.active)
	kept := in.active[:0]
	for _, d := range in.active {
		if d.Ended() {
			in.settle(d)
			continue
		}
		kept = append(kept, d)
	}
	for i := len(kept); i < before; i++ {
		in.active[i] = nil
	}
	in.active = kept
	if len(in.active) != before {
		in.relayout()
	}
}

// settle applies the end-of-combat bookkeeping for one dogfight.
func (in *Interceptions) settle(d *dogfight.Dogfight) {
	craft, ufo := d.Craft(), d.Ufo()
	log := in.log.With().Int("craft", craft.ID).Str("outcome", d.Outcome().String()).Logger()

	switch d.Outcome() {
	case dogfight.OutcomeCraftDestroyed:
		craft.MarkDestroyed()
		in.score -= craft.Rules.Score
	case dogfight.OutcomeUfoDestroyed, dogfight.OutcomeCraftDisengaged, dogfight.OutcomeTargetLost:
		craft.Release()
		craft.ReturnToBase()
	default:
		craft.Release()
	}
	// the craft may have gone down in the same tick as its target
	if ufo != nil && ufo.IsDestroyed() && !ufo.IsCrashed() && !ufo.Removed() {
		in.downUfo(ufo, log)
	}
	log.Debug().Int("score", in.score).Msg("interception settled")
}

// downUfo scores a destroyed UFO and leaves a crash site over land.
// Over water the UFO is lost at sea.
func (in *Interceptions) downUfo(ufo *savegame.Ufo, log zerolog.Logger) {
	in.score += ufo.Rules.Score
	if !in.globe.IsLand(ufo.Lon, ufo.Lat) {
		ufo.Remove()
		in.emit(core.EvtUfoLostAtSea, ufo)
		log.Info().Msg("ufo lost at sea")
		return
	}
	ufo.SetCrashed()
	in.crashSites = append(in.crashSites, CrashSite{
		UfoID:   ufo.ID,
		UfoType: ufo.Rules.Type,
		Lon:     ufo.Lon,
		Lat:     ufo.Lat,
		Tick:    in.tick,
	})
	in.emit(core.EvtCrashSite, ufo)
	log.Info().Float64("lon", ufo.Lon).Float64("lat", ufo.Lat).Msg("crash site")
}

func (in *Interceptions) relayout() {
	for i, d := range in.active {
		d.SetInterceptionNumber(i)
		d.SetInterceptionsCount(len(in.active))
		d.CalculateWindowPosition()
	}
	in.emit(core.EvtWindowsRelaid, len(in.active))
}

func (in *Interceptions) emit(t core.EventType, payload interface{}) {
	if in.deps.Bus == nil {
		return
	}
	in.deps.Bus.Emit(core.Event{Type: t, Tick: in.tick, Payload: payload})
}

// Handle routes a command to the dogfight in window slot index.
func (in *Interceptions) Handle(index int, cmd dogfight.Command) bool {
	if index < 0 || index >= len(in.active) {
		return false
	}
	in.active[index].Handle(cmd)
	return true
}

// Click routes a mouse click to the first window whose button is under
// it and returns the slot and command that were applied.
func (in *Interceptions) Click(mx, my int) (int, dogfight.Command, bool) {
	for i, d := range in.active {
		if cmd, ok := d.ButtonAt(mx, my); ok {
			d.Handle(cmd)
			return i, cmd, true
		}
	}
	return -1, dogfight.CmdNone, false
}

// Active returns the running dogfights in slot order
func (in *Interceptions) Active() []*dogfight.Dogfight {
	out := make([]*dogfight.Dogfight, len(in.active))
	copy(out, in.active)
	return out
}

func (in *Interceptions) Len() int { return len(in.active) }

// CrashSites returns every crash site recorded so far
func (in *Interceptions) CrashSites() []CrashSite {
	out := make([]CrashSite, len(in.crashSites))
	copy(out, in.crashSites)
	return out
}

// Score is the running interception score
func (in *Interceptions) Score() int { return in.score }

// Ticks returns how many times Think ran
func (in *Interceptions) Ticks() uint64 { return in.tick }
