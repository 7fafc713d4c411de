package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cellmap/model"
	"github.com/sheikhrachel/go-cellmap/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("%+v", err)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	if err = config.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	grid, renderer, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	displayGameInfo(config, grid)

	// Only the renderer consumes flips; headless runs skip notifications.
	var drawer model.CellDrawer
	if config.Render {
		drawer = renderer
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history        model.History
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		restarts       int64
		lastFrameTime  = time.Now()
	)

loop:
	for config.MaxGenerations == 0 || generation < config.MaxGenerations {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			break loop
		default:
		}

		frameStart := time.Now()
		flips := grid.AdvanceParallel(config.Workers, drawer)
		generation++

		livingCells, density, status, isStagnant := updateGameState(grid, &history, generation, flips, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		if config.Render {
			renderer.Clear()
			displayGameStatus(generation, livingCells, flips, density, status, stats, lastRestartGen)
			if err = renderer.Display(); err != nil {
				log.Fatalf("%+v", errors.Wrap(err, "[main] failed to draw grid"))
			}
		}

		if shouldRestart, reason := checkRestartConditions(livingCells, stagnantCount, config); shouldRestart {
			restarts++
			stats.Restarts++
			if config.Render {
				fmt.Printf("🔄 Restarting due to %s (seed %d)...\n", reason, config.Seed+restarts)
			}
			restartGame(grid, renderer, &history, config.Seed+restarts)
			lastRestartGen = generation
			stagnantCount = 0
		}

		if config.Render {
			time.Sleep(config.FrameRate)
		}
	}

	fmt.Printf("Total Generations: %d\nSeed: %d\n", generation, config.Seed)
	fmt.Printf("Runtime: %.1fs | Flips: %d | Restarts: %d | Avg Pop: %.1f\n",
		stats.Runtime().Seconds(), stats.TotalFlips, stats.Restarts, stats.AveragePopulation)
}
