package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/treasure-haul/asset"
	"github.com/lixenwraith/treasure-haul/audio"
	"github.com/lixenwraith/treasure-haul/config"
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/input"
	"github.com/lixenwraith/treasure-haul/render"
	"github.com/lixenwraith/treasure-haul/render/renderers"
	"github.com/lixenwraith/treasure-haul/scene"
	"github.com/lixenwraith/treasure-haul/system"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	sc, err := loadScene(cfg.Scene)
	if err != nil {
		fatal(err)
	}
	cellSize := cfg.CellSize
	if cellSize == 0 {
		cellSize = sc.CellSize
	}

	world := engine.NewWorld()
	cfg.Apply(world.Resources.Config)
	built, err := scene.Build(world, sc)
	if err != nil {
		fatal(err)
	}
	log.Printf("[main] scene %q: %d characters, %d treasures, %d goals",
		sc.Name, len(built.Characters), len(built.Treasures), len(built.Goals))

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(err)
	}
	if err := screen.Init(); err != nil {
		fatal(err)
	}
	core.SetResetHook(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	var sound *audio.SoundManager
	if cfg.Audio {
		sound = audio.NewSoundManager(audio.DefaultAudioConfig())
		if err := sound.Initialize(); err != nil {
			log.Printf("[main] audio disabled: %v", err)
			sound = nil
		} else {
			world.Resources.Audio.Player = sound
			defer sound.Cleanup()
		}
	}

	width, height := screen.Size()
	view := scene.NewViewport(cellSize, width, height)
	raycaster := input.NewGridRaycaster(world, view)

	carry := system.NewCarrySystem(world)
	movement := system.NewMovementSystem(world, raycaster, carry)
	for _, s := range []engine.System{
		system.NewSelectionSystem(world, raycaster, carry, movement),
		system.NewNavigationSystem(world),
		carry,
		system.NewShakeSystem(world),
		movement,
		system.NewTriggerSystem(world),
		system.NewGoalSystem(world),
		system.NewHudSystem(world),
		system.NewAudioSystem(world),
		system.NewDiagSystem(world),
	} {
		world.AddSystem(s)
	}

	orchestrator := render.NewRenderOrchestrator(screen)
	orchestrator.Register(renderers.NewGoalRenderer(), render.PriorityGoal)
	orchestrator.Register(renderers.NewMarkerRenderer(), render.PriorityMarker)
	orchestrator.Register(renderers.NewEntityRenderer(), render.PriorityEntities)
	orchestrator.Register(renderers.NewStatusBarRenderer(), render.PriorityUI)

	clock := engine.NewPausableClock(engine.NewTimeProvider())
	scheduler := engine.NewClockScheduler(world, clock, cfg.Tick)
	scheduler.AfterTick = func() {
		orchestrator.RenderFrame(render.RenderContext{
			World:    world,
			View:     view,
			Frame:    world.Resources.Time.FrameNumber,
			IsPaused: clock.IsPaused(),
			IsMuted:  sound != nil && sound.IsMuted(),
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core.Go(func() {
		machine := input.NewMachine()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			intent := machine.Process(ev)
			switch intent.Type {
			case input.IntentQuit:
				cancel()
				return
			case input.IntentPause:
				log.Printf("[main] paused=%v", clock.Toggle())
			case input.IntentMute:
				if sound != nil {
					log.Printf("[main] muted=%v", sound.ToggleMute())
				}
			case input.IntentResize:
				w, h := screen.Size()
				world.RunSafe(func() {
					view.Resize(w, h)
					orchestrator.Resize(w, h)
				})
			default:
				// Stamp from the atomic tick count; TimeResource belongs to the loop goroutine
				if t, payload, ok := intent.Event(); ok {
					world.Resources.Event.Queue.Emit(t, payload, int64(scheduler.TickCount()))
				}
			}
		}
	})

	reportExit(scheduler.Run(ctx))
	log.Printf("[main] exit after %d ticks", scheduler.TickCount())
}

// reportExit logs a loop error other than the quit cancellation
func reportExit(err error) {
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[main] scheduler stopped: %v", err)
	}
}

// loadScene reads the configured scene file or falls back to the built-in one
func loadScene(path string) (*scene.File, error) {
	if path == "" {
		return scene.Parse([]byte(asset.DefaultScene))
	}
	return scene.Load(path)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "treasure-haul: %v\n", err)
	os.Exit(1)
}
