package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/scene2d/components"
	"github.com/plus3/scene2d/ecs"
	"github.com/plus3/scene2d/ecs/debugui"
	debugui_ebiten "github.com/plus3/scene2d/ecs/debugui/ebiten"
	"github.com/plus3/scene2d/internal/config"
	"github.com/plus3/scene2d/internal/logging"
	"github.com/plus3/scene2d/systems"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Optional TOML or YAML config file.")
	bodies := flag.Int("bodies", -1, "Number of falling bodies. Overrides demo.bodies.")
	noDebugUI := flag.Bool("no-debug-ui", false, "Disable the ImGui editor overlay.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *bodies >= 0 {
		cfg.Demo.Bodies = *bodies
	}
	if *noDebugUI {
		cfg.Window.DebugUI = false
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	game, err := newGame(cfg, log)
	if err != nil {
		log.Fatal("build scene", zap.Error(err))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	log.Info("starting scene demo",
		zap.Int("bodies", cfg.Demo.Bodies),
		zap.Bool("walls", cfg.Demo.Walls),
		zap.Bool("debug_ui", cfg.Window.DebugUI))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run game", zap.Error(err))
	}
}

// Game hosts the demo scene. The embedded Host drives Scene.Update and the
// overlay; Game adds the quit keys and the HUD.
type Game struct {
	*debugui_ebiten.Host
	collision *systems.CollisionSystem
}

func newGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	scene, err := buildScene(cfg, log)
	if err != nil {
		return nil, err
	}
	collision, err := systems.RegisterCollision(scene)
	if err != nil {
		return nil, err
	}
	if _, err := systems.RegisterRender(scene); err != nil {
		return nil, err
	}

	host := &debugui_ebiten.Host{
		Scene: scene,
		OnUpdateError: func(err error) {
			log.Warn("flush commands", zap.Error(err))
		},
	}
	if cfg.Window.DebugUI {
		if _, err := debugui.Register(scene); err != nil {
			return nil, err
		}
		if _, err := debugui.SpawnDebugUI(scene); err != nil {
			return nil, err
		}
		host.Backend = debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		ecs.SetResource(scene, host.Backend)
	}

	game := &Game{Host: host, collision: collision}
	host.DrawScene = game.drawScene
	return game, nil
}

// buildScene registers the component catalog and the simulation systems and
// populates the world described by cfg.Demo.
func buildScene(cfg *config.Config, log *zap.Logger) (*ecs.Scene, error) {
	scene := ecs.NewScene(
		ecs.WithMaxEntities(cfg.Scene.MaxEntities),
		ecs.WithMaxComponents(cfg.Scene.MaxComponents),
		ecs.WithLogger(log.Named("scene")),
	)
	if err := components.Register(scene); err != nil {
		return nil, err
	}
	if _, err := systems.RegisterPhysics(scene); err != nil {
		return nil, err
	}

	bounds := components.Rect{Width: float32(cfg.Window.Width), Height: float32(cfg.Window.Height)}
	rng := rand.New(rand.NewSource(cfg.Demo.Seed))
	if _, err := registerRespawn(scene, bounds, rng); err != nil {
		return nil, err
	}
	if err := spawnWorld(scene, cfg.Demo, bounds, rng); err != nil {
		return nil, err
	}
	return scene, nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return g.Host.Update()
}

func (g *Game) drawScene(screen *ebiten.Image) {
	g.Scene.Render(&screenDrawer{screen: screen})
	drawHUD(screen, g.Scene, len(g.collision.Contacts()))
}
