package main

import (
	"context"
	"math"
	"sync"

	"github.com/pthm-cable/synapse/config"
	"github.com/pthm-cable/synapse/game"
	"github.com/pthm-cable/synapse/host"
	"github.com/pthm-cable/synapse/telemetry"
)

// FitnessEvaluator runs headless simulations and scores the resulting web.
type FitnessEvaluator struct {
	params       *ParamVector
	maxTicks     int
	seeds        []int64
	baseConfig   *config.Config
	targetDegree float64

	mu        sync.Mutex
	lastStats telemetry.WindowStats // final window of the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, baseCfg *config.Config, targetDegree float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:       params,
		maxTicks:     maxTicks,
		seeds:        seeds,
		baseConfig:   baseCfg,
		targetDegree: targetDegree,
	}
}

// LastStats returns the final window of the most recent evaluation's first seed.
func (fe *FitnessEvaluator) LastStats() telemetry.WindowStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastStats
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	if err := fe.params.ApplyToConfig(cfg, x); err != nil {
		return math.Inf(1)
	}

	// Run all seeds in parallel; each simulation is independent
	results := make([]telemetry.WindowStats, len(fe.seeds))
	errs := make([]error, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx], errs[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var total float64
	for i, r := range results {
		if errs[i] != nil {
			return math.Inf(1)
		}
		total += fe.score(r)
	}

	fe.mu.Lock()
	fe.lastStats = results[0]
	fe.mu.Unlock()

	return total / float64(len(results))
}

// runSimulation runs one seed and returns the last stats window.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) (telemetry.WindowStats, error) {
	sim, err := game.NewSimulation(cfg, game.Options{Seed: seed})
	if err != nil {
		return telemetry.WindowStats{}, err
	}
	defer sim.Close()

	if err := host.RunHeadless(context.Background(), sim, cfg.Derived.FrameMS, fe.maxTicks); err != nil {
		return telemetry.WindowStats{}, err
	}
	return sim.LastStats(), nil
}

// score is the squared relative error from the target mean out-degree,
// plus a penalty for a web that is still forming links at the end.
func (fe *FitnessEvaluator) score(s telemetry.WindowStats) float64 {
	rel := (s.DegreeMean - fe.targetDegree) / fe.targetDegree
	fit := rel * rel
	if s.TotalConnections > 0 {
		fit += float64(s.NewConnections) / float64(s.TotalConnections)
	}
	if s.PlacementFailures > 0 {
		fit += 1
	}
	return fit
}

// copyConfig returns a shallow copy of the base config; it holds no
// reference fields.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
