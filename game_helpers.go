package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cellmap/model"
	"github.com/sheikhrachel/go-cellmap/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to build grid")
	}
	if err = seedGrid(grid, config.Pattern, config.Seed); err != nil {
		return nil, nil, nil, err
	}

	renderer := model.NewTerminalRenderer(config.Width, config.Height)
	renderer.Sync(grid)

	return grid, renderer, utils.NewStats(), nil
}

// seedGrid populates an empty grid, either randomly from seed or with one
// named pattern in the middle.
func seedGrid(grid *model.Grid, pattern string, seed int64) error {
	if pattern == utils.PatternRandom {
		grid.Init(seed)
		return nil
	}
	p, ok := model.PatternByName(pattern)
	if !ok {
		return errors.Errorf("[seedGrid] unknown pattern %q", pattern)
	}
	grid.Place(p, grid.Width()/2-1, grid.Height()/2-1)
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Workers: %d | Pattern: %s | Seed: %d\n",
		max(config.Workers, 1), config.Pattern, config.Seed)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.Width(), grid.Height(), grid.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState records the generation that was just computed and returns
// status information
func updateGameState(
	grid *model.Grid,
	history *model.History,
	generation, flips int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.Population()
	density := float64(livingCells) / float64(grid.Width()*grid.Height()) * 100

	stats.Update(generation, livingCells, flips, time.Since(lastFrameTime))

	hash := grid.Hash()
	isStagnant := history.IsStagnant(hash)
	history.Update(hash)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells, flips int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Flipped: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, flips, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if !config.AutoRestart {
		return false, ""
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame wipes the grid and seeds it randomly from seed, whatever
// pattern the run started with
func restartGame(
	grid *model.Grid,
	renderer *model.TerminalRenderer,
	history *model.History,
	seed int64,
) {
	grid.Clear()
	history.Reset()
	grid.Init(seed)
	renderer.Sync(grid)
}
