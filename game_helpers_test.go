package main

import (
	"testing"
	"time"

	"github.com/sheikhrachel/go-cellmap/model"
	"github.com/sheikhrachel/go-cellmap/utils"
)

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()
	tests := []struct {
		name          string
		livingCells   int
		stagnantCount int
		autoRestart   bool
		want          bool
		wantReason    string
	}{
		{"active", 10, 0, true, false, ""},
		{"extinct", 0, 0, true, true, "extinction"},
		{"below threshold", 10, config.StagnationThreshold - 1, true, false, ""},
		{"stagnant", 10, config.StagnationThreshold, true, true, "stagnation detected"},
		{"disabled", 0, config.StagnationThreshold, false, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config
			cfg.AutoRestart = tt.autoRestart
			got, reason := checkRestartConditions(tt.livingCells, tt.stagnantCount, cfg)
			if got != tt.want || reason != tt.wantReason {
				t.Fatalf("got (%v, %q), want (%v, %q)", got, reason, tt.want, tt.wantReason)
			}
		})
	}
}

func TestInitializeGame(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height, config.Seed = 20, 10, 4

	grid, renderer, stats, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	if grid.Population() != 100 {
		t.Fatalf("population = %d, want 100", grid.Population())
	}
	if renderer == nil || stats == nil {
		t.Fatal("renderer and stats must be set")
	}

	config.Width = 0
	if _, _, _, err = initializeGame(config); err == nil {
		t.Fatal("expected error for empty grid")
	}
}

func TestSeedGridPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{utils.PatternGlider, 5},
		{utils.PatternBlinker, 3},
		{utils.PatternBlock, 4},
	}
	for _, tt := range tests {
		grid, err := model.NewGrid(8, 8)
		if err != nil {
			t.Fatalf("NewGrid: %v", err)
		}
		if err = seedGrid(grid, tt.pattern, 1); err != nil {
			t.Fatalf("seedGrid(%q): %v", tt.pattern, err)
		}
		if grid.Population() != tt.want {
			t.Fatalf("%s population = %d, want %d", tt.pattern, grid.Population(), tt.want)
		}
	}

	grid, _ := model.NewGrid(8, 8)
	if err := seedGrid(grid, "spaceship", 1); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}

func TestStagnantBlockTriggersRestart(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height, config.Pattern, config.Seed = 8, 8, utils.PatternBlock, 9

	grid, renderer, stats, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}

	var (
		history       model.History
		stagnantCount int
		restarted     bool
	)
	for generation := 1; generation <= 10 && !restarted; generation++ {
		flips := grid.Advance(renderer)
		livingCells, _, _, isStagnant := updateGameState(grid, &history, generation, flips, time.Now(), stats)
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		if ok, _ := checkRestartConditions(livingCells, stagnantCount, config); ok {
			restartGame(grid, renderer, &history, config.Seed+1)
			restarted = true
		}
	}
	if !restarted {
		t.Fatal("still block never triggered a restart")
	}
	if grid.Population() != 32 {
		t.Fatalf("population after restart = %d, want 32", grid.Population())
	}
}
