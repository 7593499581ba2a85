// Command dogfight-sim runs interceptions headless. Runs can be recorded
// and replayed tick for tick from the same seed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/1siamBot/geoscape/engine/audio"
	"github.com/1siamBot/geoscape/engine/config"
	"github.com/1siamBot/geoscape/engine/core"
	"github.com/1siamBot/geoscape/engine/dogfight"
	"github.com/1siamBot/geoscape/engine/geoscape"
	"github.com/1siamBot/geoscape/engine/logging"
	"github.com/1siamBot/geoscape/engine/replay"
	"github.com/1siamBot/geoscape/engine/resource"
	"github.com/1siamBot/geoscape/engine/rules"
	"github.com/1siamBot/geoscape/engine/savegame"
	"github.com/rs/zerolog"
)

type options struct {
	configDir string
	seed      int64
	ufo       string
	craft     string
	weapons   string
	mode      string
	ticks     uint64
	count     int
	record    string
	replay    string
	logFile   string
	lon, lat  float64
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configDir, "config", ".", "directory holding geoscape.yaml")
	flag.Int64Var(&o.seed, "seed", 1, "random seed")
	flag.StringVar(&o.ufo, "ufo", "MEDIUM_SCOUT", "UFO type")
	flag.StringVar(&o.craft, "craft", "INTERCEPTOR", "craft type")
	flag.StringVar(&o.weapons, "weapons", "STINGRAY,CANNON", "comma separated craft weapons")
	flag.StringVar(&o.mode, "mode", "standard", "attack mode given at tick 0")
	flag.Uint64Var(&o.ticks, "ticks", 30000, "maximum ticks to simulate")
	flag.IntVar(&o.count, "count", 1, "number of simultaneous interceptions")
	flag.StringVar(&o.record, "record", "", "write a replay to this file")
	flag.StringVar(&o.replay, "replay", "", "play back commands from this replay file")
	flag.StringVar(&o.logFile, "log", "", "also write the log to this file")
	flag.Float64Var(&o.lon, "lon", 0, "UFO longitude")
	flag.Float64Var(&o.lat, "lat", 0, "UFO latitude")
	flag.Parse()
	return o
}

func main() {
	o := parseFlags()
	cfg, err := config.Load(o.configDir)
	if err != nil {
		boot := logging.New(os.Stderr, "info")
		boot.Fatal().Err(err).Msg("config")
	}
	log := logging.New(os.Stderr, cfg.LogLevel)
	if o.logFile != "" {
		f, err := os.Create(o.logFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", o.logFile).Msg("log file")
		}
		defer f.Close()
		log = logging.NewWithFile(os.Stderr, f, cfg.LogLevel)
	}
	if err := run(o, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}

func run(o options, cfg *config.Config, log zerolog.Logger) error {
	var script *replay.Replay
	if o.replay != "" {
		rp, err := replay.Open(o.replay)
		if err != nil {
			return fmt.Errorf("open replay: %w", err)
		}
		script = rp
		o.seed = rp.Seed
		log.Info().Str("file", o.replay).Int("entries", len(rp.Entries)).Int64("seed", rp.Seed).Msg("replaying")
	}

	var rec *replay.Recorder
	if o.record != "" {
		r, err := replay.Create(o.record, o.seed)
		if err != nil {
			return fmt.Errorf("create replay: %w", err)
		}
		rec = r
		defer func() {
			if err := rec.Close(); err != nil {
				log.Error().Err(err).Msg("closing replay")
			}
		}()
	}

	bus := core.NewEventBus()
	sounds := audio.NewPlayer(resource.NewPack(cfg.DataFolder, true, log), 0, log)
	in := geoscape.NewInterceptions(cfg.DogfightOptions(), loadGlobe(cfg, log), dogfight.Deps{
		Log:    log,
		Bus:    bus,
		Sounds: sounds,
		Rand:   core.NewRand(o.seed),
	})

	outcomes := map[string]int{}
	bus.On(core.EvtDogfightEnded, func(e core.Event) {
		d := e.Payload.(*dogfight.Dogfight)
		outcomes[d.Outcome().String()]++
		log.Info().
			Int("craft", d.Craft().ID).
			Str("outcome", d.Outcome().String()).
			Uint64("tick", e.Tick).
			Int("craftHealth", d.Craft().Health()).
			Int("ufoHealth", d.Ufo().Health()).
			Msg("dogfight ended")
	})

	for i := 0; i < o.count; i++ {
		craft, ufo, err := build(o, i)
		if err != nil {
			return err
		}
		if _, err := in.Start(craft, ufo); err != nil {
			if errors.Is(err, geoscape.ErrTooManyInterceptions) {
				log.Warn().Int("count", o.count).Msg("interception limit reached")
				break
			}
			return err
		}
	}

	apply := func(e replay.Entry) error {
		in.Handle(e.Interception, e.Command)
		if rec != nil {
			return rec.Record(e)
		}
		return nil
	}

	if script == nil {
		cmd, ok := dogfight.ParseCommand(o.mode)
		if !ok {
			return fmt.Errorf("unknown mode %q", o.mode)
		}
		for i := 0; i < in.Len(); i++ {
			if err := apply(replay.Entry{Tick: 0, Interception: i, Command: cmd}); err != nil {
				return err
			}
		}
	}

	for tick := uint64(0); tick < o.ticks && in.Len() > 0; tick++ {
		if script != nil {
			for _, e := range script.EntriesForTick(tick) {
				if err := apply(e); err != nil {
					return err
				}
			}
		}
		in.Think()
		bus.Dispatch()
	}

	requested, played := sounds.Stats()
	log.Info().
		Uint64("ticks", in.Ticks()).
		Int("unresolved", in.Len()).
		Int("score", in.Score()).
		Int("crashSites", len(in.CrashSites())).
		Interface("outcomes", outcomes).
		Uint64("soundCues", requested).
		Uint64("soundsPlayed", played).
		Msg("simulation finished")
	return nil
}

func build(o options, i int) (*savegame.Craft, *savegame.Ufo, error) {
	cr, ok := rules.Craft(strings.ToUpper(o.craft))
	if !ok {
		return nil, nil, fmt.Errorf("unknown craft %q", o.craft)
	}
	ur, ok := rules.Ufo(strings.ToUpper(o.ufo))
	if !ok {
		return nil, nil, fmt.Errorf("unknown ufo %q", o.ufo)
	}
	craft := savegame.NewCraft(i+1, cr)
	if o.weapons != "" {
		for slot, name := range strings.Split(o.weapons, ",") {
			w, ok := rules.CraftWeapon(strings.ToUpper(strings.TrimSpace(name)))
			if !ok {
				return nil, nil, fmt.Errorf("unknown weapon %q", name)
			}
			craft.Mount(slot, savegame.NewCraftWeapon(w))
		}
	}
	ufo := savegame.NewUfo(100+i, ur)
	ufo.Lon, ufo.Lat = o.lon, o.lat
	return craft, ufo, nil
}

// loadGlobe reads the world polygons straight from the data folder; a
// missing file leaves every UFO crashing on land.
func loadGlobe(cfg *config.Config, log zerolog.Logger) geoscape.Globe {
	path := filepath.Join(cfg.DataFolder, cfg.Game, "GEODATA", "WORLD.DAT")
	f, err := os.Open(path)
	if err != nil {
		log.Debug().Str("path", path).Msg("no world polygons, treating the globe as land")
		return nil
	}
	defer f.Close()
	polys, err := resource.ReadPolygons(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("world polygons unreadable")
		return nil
	}
	return geoscape.NewLandGlobe(polys)
}
