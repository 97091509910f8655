package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/scene2d/components"
	"github.com/plus3/scene2d/ecs"
	"github.com/plus3/scene2d/internal/config"
	"github.com/plus3/scene2d/internal/logging"
	"github.com/plus3/scene2d/systems"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Optional TOML or YAML config file.")
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 0, "The initial number of entities to create. Defaults to scene.max_entities.")
	churn := flag.Float64("churn", -1, "Fraction of live bodies destroyed and respawned each frame. Overrides stress.churn.")
	profileMode := flag.String("profile", "", "Write a pprof profile to the working directory: cpu, mem or allocs.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
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
	if *churn >= 0 {
		cfg.Stress.Churn = *churn
	}
	if *entityCount <= 0 || *entityCount > int(cfg.Scene.MaxEntities) {
		*entityCount = int(cfg.Scene.MaxEntities)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if p := startProfile(*profileMode); p != nil {
		defer p.Stop()
	}

	log.Info("starting ECS stress test",
		zap.Uint32("max_entities", cfg.Scene.MaxEntities),
		zap.Int("max_components", cfg.Scene.MaxComponents),
		zap.Float64("churn", cfg.Stress.Churn))

	scene := ecs.NewScene(
		ecs.WithMaxEntities(cfg.Scene.MaxEntities),
		ecs.WithMaxComponents(cfg.Scene.MaxComponents),
		ecs.WithLogger(log.Named("scene")),
	)
	if err := components.Register(scene); err != nil {
		log.Fatal("register components", zap.Error(err))
	}
	if _, err := systems.RegisterPhysics(scene); err != nil {
		log.Fatal("register physics", zap.Error(err))
	}
	if _, err := systems.RegisterRender(scene); err != nil {
		log.Fatal("register render", zap.Error(err))
	}

	rng := rand.New(rand.NewSource(cfg.Demo.Seed))
	churner := &churnSystem{rate: cfg.Stress.Churn, rng: rng}
	if err := scene.RegisterSystem(churner); err != nil {
		log.Fatal("register churn", zap.Error(err))
	}
	if err := ecs.SetSystemSignature[*churnSystem](scene, mustSignature(scene)); err != nil {
		log.Fatal("set churn signature", zap.Error(err))
	}

	log.Info("populating scene", zap.Int("entities", *entityCount))
	for i := 0; i < *entityCount; i++ {
		if err := spawnBody(scene, rng); err != nil {
			log.Fatal("populate", zap.Error(err))
		}
	}
	log.Info("population complete", zap.Uint32("living", scene.LivingCount()))

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Capacity:       cfg.Scene.MaxEntities,
		Churn:          cfg.Stress.Churn,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running simulation", zap.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	drawer := &countingDrawer{}
	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			if err := scene.Update(deltaTime.Seconds()); err != nil {
				report.FlushErrors++
				log.Debug("frame commands failed", zap.Error(err))
			}
			report.UpdateTime.Add(time.Since(updateStart))

			renderStart := time.Now()
			scene.Render(drawer)
			report.RenderTime.Add(time.Since(renderStart))

			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.RenderTime.Finalize()
	report.Destroyed = churner.destroyed
	report.Respawned = churner.respawned
	report.DrawCalls = drawer.calls
	report.Scene = scene.CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("simulation finished", zap.Int64("updates", report.TotalUpdates))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal("generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

func startProfile(mode string) interface{ Stop() } {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	case "allocs":
		opt = profile.MemProfileAllocs
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", mode)
		os.Exit(2)
	}
	return profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook)
}

func mustSignature(scene *ecs.Scene) ecs.Signature {
	id, err := ecs.ComponentType[components.RigidBody](scene)
	if err != nil {
		panic(err)
	}
	return ecs.SignatureOf(id)
}
