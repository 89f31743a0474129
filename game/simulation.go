package game

import (
	"log/slog"

	"brigade/systems"
	"brigade/telemetry"
)

// Step runs a single simulation tick: clock, restock, order
// coordination, then every chef in creation order.
func (g *Game) Step() {
	g.tick++
	now := g.Now()

	if g.session.Tick(g.cfg.Physics.DT, now) {
		g.onSessionEnd()
	}
	if g.session.Ended() {
		g.flushTelemetry()
		return
	}

	g.stock.Restock(now)
	g.policy.Prepare(g)

	g.env.Now = now
	for _, e := range g.chefs {
		pos := g.posMap.Get(e)
		tgt := g.tgtMap.Get(e)
		chef := g.chefMap.Get(e)

		g.env.Waiting = g.waiting[chef.ID]
		events := systems.Decide(g.env, chef, pos, tgt)
		systems.Step(g.env, chef, pos, tgt)
		events = append(events, systems.OnArrival(g.env, chef, pos, tgt)...)

		for _, ev := range events {
			g.handleEvent(ev, now)
		}
	}

	g.flushTelemetry()
}

// handleEvent records a chef event in telemetry and applies scoring.
func (g *Game) handleEvent(ev systems.Event, now float64) {
	switch ev.Kind {
	case systems.EventPickup:
		g.collector.RecordPickup()
		slog.Debug("pickup", "chef", ev.ChefID, "ingredient", ev.Item)

	case systems.EventPickupMiss:
		g.collector.RecordPickupMiss()
		slog.Debug("pickup miss", "chef", ev.ChefID, "ingredient", ev.Item)

	case systems.EventChopStarted:
		slog.Debug("chop started", "chef", ev.ChefID, "ingredient", ev.Item)

	case systems.EventChopFinished:
		g.collector.RecordChopFinished()
		slog.Debug("chop finished", "chef", ev.ChefID, "ingredient", ev.Item)

	case systems.EventPlatingStarted:
		slog.Debug("plating started", "chef", ev.ChefID)

	case systems.EventPlated:
		g.collector.RecordPlating()
		slog.Debug("plated", "chef", ev.ChefID)

	case systems.EventDelivered:
		rec := ev.Completion
		points := g.session.RecordDelivery(*rec, now)
		chef := g.chefMap.Get(g.chefs[ev.ChefID])
		chef.Score += points
		g.collector.RecordDelivery(rec.Duration)

		if err := g.output.WriteDelivery(telemetry.NewDeliveryRow(*rec)); err != nil {
			slog.Error("writing delivery", "error", err)
		}
		slog.Info("delivered",
			"chef", ev.ChefID,
			"dish", rec.Dish,
			"order_id", rec.OrderID,
			"points", points,
			"combo", g.session.Combo(),
			"score", g.session.Score(),
			"duration", rec.Duration,
		)
	}
}

// flushTelemetry emits a stats window when due.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, telemetry.Snapshot{
		PendingOrders:  g.book.PendingCount(),
		ActiveOrders:   g.book.ActiveCount(),
		Score:          g.session.Score(),
		Combo:          g.session.Combo(),
		StockAvailable: len(g.stock.Units()),
	})

	if g.logStats {
		stats.LogStats()
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("writing telemetry", "error", err)
	}
}

// Update runs one frame in graphical mode: input, then one tick unless paused.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	g.Step()
}

// UpdateHeadless runs one tick without input handling.
func (g *Game) UpdateHeadless() {
	g.Step()
}
