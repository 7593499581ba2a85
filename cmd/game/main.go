package main

import (
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/1siamBot/geoscape/engine/audio"
	"github.com/1siamBot/geoscape/engine/config"
	"github.com/1siamBot/geoscape/engine/core"
	"github.com/1siamBot/geoscape/engine/dogfight"
	"github.com/1siamBot/geoscape/engine/geoscape"
	"github.com/1siamBot/geoscape/engine/input"
	"github.com/1siamBot/geoscape/engine/logging"
	"github.com/1siamBot/geoscape/engine/render"
	"github.com/1siamBot/geoscape/engine/resource"
	"github.com/1siamBot/geoscape/engine/rules"
	"github.com/1siamBot/geoscape/engine/savegame"
	"github.com/1siamBot/geoscape/engine/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const (
	ScreenWidth  = 320
	ScreenHeight = 200
	WindowScale  = 3
)

// Game implements ebiten.Game interface
type Game struct {
	log           zerolog.Logger
	gameLoop      *core.GameLoop
	eventBus      *core.EventBus
	interceptions *geoscape.Interceptions
	input         *input.InputState
	bindings      *input.Bindings
	renderer      *render.DogfightRenderer
	hud           *ui.HUD
	audio         *audio.Player
}

type demoEncounter struct {
	craft   string
	weapons []string
	ufo     string
	lon     float64
	lat     float64
}

var demo = []demoEncounter{
	{craft: "INTERCEPTOR", weapons: []string{"STINGRAY", "CANNON"}, ufo: "MEDIUM_SCOUT", lon: 10, lat: 50},
	{craft: "FIRESTORM", weapons: []string{"LASER_CANNON", "STINGRAY"}, ufo: "LARGE_SCOUT", lon: -30, lat: 40},
}

func NewGame(cfg *config.Config, pack *resource.Pack, player *audio.Player, log zerolog.Logger) (*Game, error) {
	bindings, err := input.NewBindings(cfg.Bindings)
	if err != nil {
		return nil, err
	}
	rng := core.NewRand(time.Now().UnixNano())
	bus := core.NewEventBus()

	var globe geoscape.Globe
	if polys := pack.Polygons(); len(polys) > 0 {
		globe = geoscape.NewLandGlobe(polys)
	}
	in := geoscape.NewInterceptions(cfg.DogfightOptions(), globe, dogfight.Deps{
		Log:    log,
		Bus:    bus,
		Sounds: player,
		Rand:   rng,
	})
	opts := cfg.DogfightOptions()

	g := &Game{
		log:           log,
		gameLoop:      core.NewGameLoop(float64(time.Second)/float64(opts.Frame), in),
		eventBus:      bus,
		interceptions: in,
		input:         input.NewInputState(),
		bindings:      bindings,
		renderer:      render.NewDogfightRenderer(render.NewImageCache(pack), "Small.fnt"),
		hud:           ui.NewHUD(ScreenWidth, ScreenHeight),
		audio:         player,
	}

	bus.On(core.EvtDogfightEnded, func(e core.Event) {
		if d, ok := e.Payload.(*dogfight.Dogfight); ok {
			log.Info().Int("craft", d.Craft().ID).Str("outcome", d.Outcome().String()).Uint64("tick", e.Tick).Msg("dogfight ended")
		}
	})
	bus.On(core.EvtCrashSite, func(e core.Event) {
		log.Info().Msg("crash site recovered to the geoscape")
	})

	for i, enc := range demo {
		if err := g.launch(i+1, enc); err != nil {
			return nil, err
		}
	}
	if m := pack.RandomMusic("GMINTER", rng); m != nil {
		player.PlayMusic(m, true)
	}

	g.gameLoop.Play()
	return g, nil
}

func (g *Game) launch(id int, enc demoEncounter) error {
	cr, _ := rules.Craft(enc.craft)
	craft := savegame.NewCraft(id, cr)
	for slot, name := range enc.weapons {
		if w, ok := rules.CraftWeapon(name); ok {
			craft.Mount(slot, savegame.NewCraftWeapon(w))
		}
	}
	ur, _ := rules.Ufo(enc.ufo)
	ufo := savegame.NewUfo(100+id, ur)
	ufo.Lon, ufo.Lat = enc.lon, enc.lat
	craft.Lon, craft.Lat = enc.lon, enc.lat
	_, err := g.interceptions.Start(craft, ufo)
	return err
}

func (g *Game) Update() error {
	g.input.Update()

	if g.input.IsKeyJustPressed(ebiten.KeySpace) {
		if g.gameLoop.State == core.StatePlaying {
			g.gameLoop.Pause()
		} else {
			g.gameLoop.Play()
		}
		g.hud.Paused = g.gameLoop.State == core.StatePaused
	}
	if g.input.IsKeyJustPressed(ebiten.KeyTab) && g.interceptions.Len() > 0 {
		g.hud.Focus = (g.hud.Focus + 1) % g.interceptions.Len()
	}

	if g.input.LeftJustPressed {
		if slot, cmd, ok := g.interceptions.Click(g.input.MouseX, g.input.MouseY); ok {
			g.hud.Focus = slot
			g.log.Debug().Int("slot", slot).Str("cmd", cmd.String()).Msg("click")
		}
	}
	for _, cmd := range g.input.Commands(g.bindings) {
		g.interceptions.Handle(g.hud.Focus, cmd)
	}

	g.gameLoop.Update()
	g.eventBus.Dispatch()
	if g.hud.Focus >= g.interceptions.Len() {
		g.hud.Focus = 0
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 24, 255})
	for _, d := range g.interceptions.Active() {
		g.renderer.Draw(screen, d)
		g.renderer.DrawIcon(screen, d)
	}
	g.hud.Draw(screen, g.interceptions, g.input.MouseX, g.input.MouseY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	configDir := flag.String("config", ".", "directory holding geoscape.yaml")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		boot := logging.New(os.Stderr, "info")
		boot.Fatal().Err(err).Msg("config")
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	pack, err := resource.Load(cfg.DataFolder, cfg.Game, resource.DefaultManifest(), cfg.Mute, log)
	if err != nil {
		log.Fatal().Err(err).Str("folder", cfg.DataFolder).Msg("resource pack")
	}
	mods, err := cfg.LoadMods(filepath.Join(cfg.DataFolder, "mods"))
	if err != nil {
		log.Fatal().Err(err).Msg("mods")
	}
	for _, m := range mods {
		if err := pack.ApplyExtraSprites(m.ExtraSprites); err != nil {
			log.Fatal().Err(err).Str("mod", m.Name).Msg("extra sprites")
		}
		if err := pack.ApplyExtraSounds(m.ExtraSounds); err != nil {
			log.Fatal().Err(err).Str("mod", m.Name).Msg("extra sounds")
		}
		log.Info().Str("mod", m.Name).Int("index", m.ModIndex).Msg("mod applied")
	}

	player := audio.NewPlayer(pack, cfg.Volume, log)
	if !cfg.Mute {
		if err := player.Init(audio.DefaultSampleRate); err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		}
	}
	defer player.Close()

	game, err := NewGame(cfg, pack, player, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start")
	}

	ebiten.SetWindowSize(ScreenWidth*WindowScale, ScreenHeight*WindowScale)
	ebiten.SetWindowTitle("Geoscape Interceptions")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
