package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/breachpoint/server/internal/config"
	"github.com/breachpoint/server/internal/core/event"
	coresys "github.com/breachpoint/server/internal/core/system"
	"github.com/breachpoint/server/internal/data"
	"github.com/breachpoint/server/internal/geom"
	"github.com/breachpoint/server/internal/match"
	"github.com/breachpoint/server/internal/persist"
	"github.com/breachpoint/server/internal/scripting"
	"github.com/breachpoint/server/internal/system"
	"github.com/breachpoint/server/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(serverName string, serverID int) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            breachpoint  v0.1.0            \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m       round-based match host (Go)         \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mserver:\033[0m %s \033[90m(id: %d)\033[0m\n\n", serverName, serverID)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main server logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/matchd.toml"
	if p := os.Getenv("MATCHD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name, cfg.Server.ID)

	// 3. Connect to PostgreSQL and run migrations
	printSection("database")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := persist.NewDB(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()
	printOK("PostgreSQL connected")

	if err := persist.RunMigrations(ctx, db.Pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	printOK("migrations applied")
	fmt.Println()

	// 4. Load map data
	printSection("data")

	worldState := world.NewState(log)

	doorDefs, err := data.LoadDoors("data/yaml/map_doors.yaml")
	if err != nil {
		return fmt.Errorf("load doors: %w", err)
	}
	for _, def := range doorDefs {
		d := world.NewDoor(worldState.NextPersistentID(),
			geom.Vec2{X: def.X, Y: def.Y},
			geom.Vec2{X: def.FacingX, Y: def.FacingY},
			worldState)
		worldState.AddDoor(d)
	}
	printStat("doors", len(doorDefs))

	spawns, err := data.LoadSpawnPoints("data/yaml/spawn_points.yaml")
	if err != nil {
		return fmt.Errorf("load spawn points: %w", err)
	}
	spawnCount := 0
	for team, pts := range spawns {
		vecs := make([]geom.Vec2, len(pts))
		for i, pt := range pts {
			vecs[i] = geom.Vec2{X: pt.X, Y: pt.Y}
		}
		worldState.SetSpawnPoints(team, vecs)
		spawnCount += len(pts)
	}
	printStat("spawn points", spawnCount)

	objDefs, err := data.LoadObjectives("data/yaml/objectives.yaml")
	if err != nil {
		return fmt.Errorf("load objectives: %w", err)
	}
	printStat("objectives", len(objDefs))

	// 5. Lua objective scripts
	luaEngine, err := scripting.NewEngine("scripts/objectives", log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	printOK("lua scripts loaded")
	fmt.Println()

	objectives := make([]match.Objective, len(objDefs))
	objectivesByID := make(map[string]*scripting.LuaObjective, len(objDefs))
	for i, def := range objDefs {
		obj := luaEngine.Objective(def.ID, def.Kind, def.Data)
		objectives[i] = obj
		objectivesByID[def.ID] = obj
	}

	// 6. Teams and round coordinator
	red := world.NewTeam("red")
	blue := world.NewTeam("blue")
	worldState.AddTeam(red)
	worldState.AddTeam(blue)

	attacker, defender := match.Team(red), match.Team(blue)
	if cfg.Match.DefenderTeam == "red" {
		attacker, defender = blue, red
	}

	bus := event.NewBus()
	coord := match.NewCoordinator(match.Config{
		MaxScore:   cfg.Match.MaxScore,
		RoundTime:  cfg.Match.RoundTime,
		RoundDelay: cfg.Match.RoundDelay,
	}, objectives, attacker, defender,
		worldState.SpawnPoints(attacker.ID()),
		worldState.SpawnPoints(defender.ID()),
		bus, log)
	coord.Start(worldState)

	persist.NewRoundRepo(db).Subscribe(bus)
	event.Subscribe(bus, func(ev event.RoundStarted) {
		log.Info("round started", zap.Int("round", ev.Round))
	})
	event.Subscribe(bus, func(ev event.RoundEnded) {
		log.Info("round ended",
			zap.Int("round", ev.Round),
			zap.String("winner", ev.Winner),
			zap.Duration("elapsed", ev.Elapsed))
	})

	// 7. Systems
	// Stand-in sink until a transport is attached.
	sink := func(pkt []byte) {
		log.Debug("outbound packet", zap.Int("bytes", len(pkt)))
	}

	runner := coresys.NewRunner()
	runner.Register(system.NewInputSystem(worldState, objectivesByID, log))
	runner.Register(system.NewEventDispatchSystem(bus))
	runner.Register(system.NewDoorSystem(worldState))
	runner.Register(system.NewMatchSystem(coord, worldState, log))
	runner.Register(system.NewSoundSystem(worldState, sink, log))
	runner.Register(system.NewSnapshotSystem(worldState, coord, sink))

	// 8. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Network.TickRate)
	defer ticker.Stop()

	printSection("ready")
	printReady(fmt.Sprintf("game loop running (tick: %s)", cfg.Network.TickRate))
	printReady(fmt.Sprintf("first to %d rounds wins", cfg.Match.MaxScore))
	fmt.Println()

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Network.TickRate)
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			return nil
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
