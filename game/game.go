// Package game wires the kitchen simulation together: chef entities,
// the order book, stock, scoring, and the tick loop.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"brigade/components"
	"brigade/config"
	"brigade/kitchen"
	"brigade/orders"
	"brigade/session"
	"brigade/stock"
	"brigade/systems"
	"brigade/telemetry"
	"brigade/ui"
)

// ErrSessionEnded rejects order submissions after the round clock runs out.
var ErrSessionEnded = errors.New("game: session ended")

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string

	// Overrides the configured coordination policy when non-empty.
	Policy string

	// Config to run with; nil uses the globally loaded config. Set by
	// the tuner and by tests that need isolated configs.
	Config *config.Config
}

// Game holds the complete kitchen state.
type Game struct {
	world *ecs.World
	cfg   *config.Config

	chefMapper *ecs.Map3[components.Position, components.Target, components.Chef]
	posMap     *ecs.Map1[components.Position]
	tgtMap     *ecs.Map1[components.Target]
	chefMap    *ecs.Map1[components.Chef]

	// Chef entities in creation order. Per-tick updates walk this slice
	// so contention (two chefs wanting the same stock unit or order)
	// resolves the same way on every run.
	chefs []ecs.Entity

	layout  *kitchen.Layout
	catalog *kitchen.Catalog
	book    *orders.Book
	stock   *stock.Stock
	session *session.Session
	env     *systems.Env
	policy  CoordinationPolicy

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool
	seed      int64
	hud       *ui.Renderer

	tick   int
	paused bool

	// Per-chef hold-off flags computed by the coordination policy each tick
	waiting map[int]bool

	// Order entry UI state
	inputBuffer string
	notice      string
	noticeUntil float64

	finalSummary *session.Summary
	finalRank    int
}

// NewGame creates a game from the loaded config and options.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	layout, err := kitchen.NewLayout(cfg)
	if err != nil {
		return nil, fmt.Errorf("building layout: %w", err)
	}

	catalog := kitchen.NewCatalog(cfg)
	book := orders.NewBook(catalog)
	st := stock.New(cfg, layout)

	policyName := cfg.Coordination.Policy
	if opts.Policy != "" {
		policyName = opts.Policy
	}
	policy, err := NewCoordinationPolicy(policyName)
	if err != nil {
		return nil, err
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	g := &Game{
		world:      world,
		cfg:        cfg,
		chefMapper: ecs.NewMap3[components.Position, components.Target, components.Chef](world),
		posMap:     ecs.NewMap1[components.Position](world),
		tgtMap:     ecs.NewMap1[components.Target](world),
		chefMap:    ecs.NewMap1[components.Chef](world),
		layout:     layout,
		catalog:    catalog,
		book:       book,
		stock:      st,
		session:    session.New(cfg),
		env:        systems.NewEnv(cfg, book, st, layout),
		policy:     policy,
		collector:  telemetry.NewCollector(statsWindow, cfg.Physics.DT),
		output:     output,
		logStats:   opts.LogStats,
		seed:       opts.Seed,
		hud:        ui.NewRenderer(),
		waiting:    make(map[int]bool),
	}

	g.spawnChefs()

	slog.Info("kitchen ready",
		"chefs", len(g.chefs),
		"recipes", len(catalog.Names()),
		"policy", policy.Name(),
		"seed", opts.Seed,
	)
	return g, nil
}

// spawnChefs creates one chef entity per configured chef, placed at its
// rest spot.
func (g *Game) spawnChefs() {
	for i, cc := range g.cfg.Chefs {
		spot := g.layout.RestSpot(i)
		pos := components.Position{X: spot.X, Y: spot.Y}
		tgt := components.Target{X: spot.X, Y: spot.Y}
		chef := components.Chef{
			ID:    i,
			Name:  cc.Name,
			Speed: cc.Speed,
			State: components.StateIdle,
		}
		e := g.chefMapper.NewEntity(&pos, &tgt, &chef)
		g.chefs = append(g.chefs, e)
	}
}

// SubmitOrder validates a dish name and queues it. Unknown dishes and
// submissions after the session has ended are refused without mutating
// anything.
func (g *Game) SubmitOrder(dish string) (*orders.Order, error) {
	now := g.Now()
	if g.session.Ended() {
		return nil, ErrSessionEnded
	}

	o, err := g.book.Submit(dish, now)
	if err != nil {
		g.collector.RecordRejection()
		slog.Warn("order rejected", "dish", dish, "error", err)
		return nil, err
	}

	g.collector.RecordSubmission()
	slog.Info("order submitted",
		"order_id", o.ID,
		"dish", o.Dish,
		"ingredients", len(o.Required),
		"pending", g.book.PendingCount(),
	)
	return o, nil
}

// CancelPendingOrder drops the oldest unclaimed order.
func (g *Game) CancelPendingOrder() bool {
	ok := g.book.CancelPending()
	if ok {
		slog.Info("pending order cancelled", "pending", g.book.PendingCount())
	}
	return ok
}

// Now returns the simulation time in seconds.
func (g *Game) Now() float64 {
	return float64(g.tick) * g.cfg.Physics.DT
}

// Tick returns the current tick count.
func (g *Game) Tick() int {
	return g.tick
}

// Score returns the current team score.
func (g *Game) Score() int {
	return g.session.Score()
}

// Session exposes the round state for the HUD and tests.
func (g *Game) Session() *session.Session {
	return g.session
}

// Book exposes the order book for the HUD and tests.
func (g *Game) Book() *orders.Book {
	return g.book
}

// Stock exposes the ingredient pool for the HUD and tests.
func (g *Game) Stock() *stock.Stock {
	return g.stock
}

// Catalog exposes the recipe catalog.
func (g *Game) Catalog() *kitchen.Catalog {
	return g.catalog
}

// ChefView is a read-only chef snapshot for rendering and tests.
type ChefView struct {
	ID         int
	Name       string
	X, Y       float64
	State      components.State
	Held       components.Held
	Motivation float64
	Score      int
	Delivered  int
}

// Chefs returns read-only chef snapshots in creation order.
func (g *Game) Chefs() []ChefView {
	out := make([]ChefView, 0, len(g.chefs))
	for _, e := range g.chefs {
		pos := g.posMap.Get(e)
		chef := g.chefMap.Get(e)
		out = append(out, ChefView{
			ID:         chef.ID,
			Name:       chef.Name,
			X:          pos.X,
			Y:          pos.Y,
			State:      chef.State,
			Held:       chef.Held,
			Motivation: chef.Motivation,
			Score:      chef.Score,
			Delivered:  chef.Delivered,
		})
	}
	return out
}

// Leaderboard returns chef snapshots sorted by individual score
// descending; ties keep creation order.
func (g *Game) Leaderboard() []ChefView {
	views := g.Chefs()
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Score > views[j].Score
	})
	return views
}

// FinalSummary returns the end-of-round summary, nil while running.
func (g *Game) FinalSummary() *session.Summary {
	return g.finalSummary
}

// Unload closes output files.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}

// onSessionEnd finalizes scoring, logs the summary, and records the run
// on the local leaderboard when output is enabled.
func (g *Game) onSessionEnd() {
	summary := g.session.Finalize()
	g.finalSummary = &summary

	slog.Info("session over",
		"score", summary.Score,
		"tier", summary.Tier,
		"deliveries", summary.Deliveries,
		"combo_peak", summary.ComboPeak,
		"delivery_dur_mean", summary.MeanDuration,
		"delivery_dur_stddev", summary.StdDevDuration,
	)

	if dir := g.output.Dir(); dir != "" {
		path := filepath.Join(dir, "leaderboard.json")
		lb, err := telemetry.LoadLeaderboard(path, 10)
		if err != nil {
			slog.Error("loading leaderboard", "error", err)
			return
		}
		g.finalRank = lb.Add(telemetry.LeaderboardEntry{
			Score:      summary.Score,
			Tier:       summary.Tier,
			Deliveries: summary.Deliveries,
			ComboPeak:  summary.ComboPeak,
			Policy:     g.policy.Name(),
			Seed:       g.seed,
			SimTimeSec: g.Now(),
		})
		if err := lb.Save(path); err != nil {
			slog.Error("saving leaderboard", "error", err)
		}
	}
}
