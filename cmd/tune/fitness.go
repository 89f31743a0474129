package main

import (
	"math"
	"sync"

	"brigade/config"
	"brigade/game"
)

// FitnessEvaluator runs headless sessions and computes fitness.
// Fitness is negative mean score across seeds: higher score = lower
// (better) fitness for the minimizer.
type FitnessEvaluator struct {
	params     *ParamVector
	seeds      []int64
	baseConfig *config.Config
	dishes     []string

	mu            sync.Mutex
	bestFitness   float64
	lastBestScore int
}

// NewFitnessEvaluator creates a new evaluator. dishes is the rotation
// used to keep the order queue fed during each run.
func NewFitnessEvaluator(params *ParamVector, seeds []int64, baseCfg *config.Config, dishes []string) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		seeds:       seeds,
		baseConfig:  baseCfg,
		dishes:      dishes,
		bestFitness: math.Inf(1),
	}
}

// LastBestScore returns the best single-seed score seen so far.
func (fe *FitnessEvaluator) LastBestScore() int {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastBestScore
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	scores := make([]int, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			scores[idx] = fe.runSession(x, s)
		}(i, seed)
	}
	wg.Wait()

	var total float64
	best := 0
	for _, s := range scores {
		total += float64(s)
		if s > best {
			best = s
		}
	}
	fitness := -total / float64(len(fe.seeds))

	fe.mu.Lock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
	}
	if best > fe.lastBestScore {
		fe.lastBestScore = best
	}
	fe.mu.Unlock()

	return fitness
}

// runSession executes a single headless session and returns its score.
func (fe *FitnessEvaluator) runSession(x []float64, seed int64) int {
	cfg, err := fe.baseConfig.Clone()
	if err != nil {
		return 0
	}
	fe.params.ApplyToConfig(cfg, x)

	g, err := game.NewGame(game.Options{
		Seed:   seed,
		Config: cfg,
	})
	if err != nil {
		return 0
	}
	defer g.Unload()

	// Keep every chef supplied with work for the whole round.
	next := 0
	for !g.Session().Ended() {
		for g.Book().PendingCount() < len(cfg.Chefs) {
			g.SubmitOrder(fe.dishes[next%len(fe.dishes)])
			next++
		}
		g.UpdateHeadless()
	}
	return g.Score()
}
