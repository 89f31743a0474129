package systems

import (
	"math"
	"testing"

	"brigade/components"
	"brigade/config"
	"brigade/kitchen"
	"brigade/orders"
	"brigade/stock"
)

type fixture struct {
	cfg    *config.Config
	layout *kitchen.Layout
	book   *orders.Book
	stock  *stock.Stock
	env    *Env
}

func newFixture(t *testing.T, mutate func(*config.Config)) *fixture {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	if mutate != nil {
		mutate(cfg)
	}
	layout, err := kitchen.NewLayout(cfg)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	book := orders.NewBook(kitchen.NewCatalog(cfg))
	st := stock.New(cfg, layout)
	return &fixture{
		cfg:    cfg,
		layout: layout,
		book:   book,
		stock:  st,
		env:    NewEnv(cfg, book, st, layout),
	}
}

func newChef(id int, speed float64) (*components.Chef, *components.Position, *components.Target) {
	return &components.Chef{ID: id, Name: "test", Speed: speed},
		&components.Position{},
		&components.Target{}
}

func placeAt(pos *components.Position, tgt *components.Target, p kitchen.Point) {
	pos.X, pos.Y = p.X, p.Y
	tgt.X, tgt.Y = p.X, p.Y
}

func TestDecideIdleWithoutOrdersRests(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)

	Decide(f.env, chef, pos, tgt)

	if chef.State != components.StateIdle {
		t.Errorf("state = %v, want idle", chef.State)
	}
	rest := f.layout.RestSpot(0)
	if tgt.X != rest.X || tgt.Y != rest.Y {
		t.Errorf("target = (%v, %v), want rest spot %v", tgt.X, tgt.Y, rest)
	}
}

func TestDecideClaimsOrderAndHeadsToFridge(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	f.book.Submit("salade", 0)

	Decide(f.env, chef, pos, tgt)

	if chef.State != components.StateGoingToFridge {
		t.Fatalf("state = %v, want going_to_fridge", chef.State)
	}
	if f.book.Owned(0) == nil {
		t.Fatal("chef should own the order after deciding")
	}
	// First missing ingredient of salade is lettuce.
	access := f.layout.StockAccess("L")
	if tgt.X != access.X || tgt.Y != access.Y {
		t.Errorf("target = (%v, %v), want stock access %v", tgt.X, tgt.Y, access)
	}
}

func TestDecideWaitingOverridesClaiming(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(1, 170)
	f.book.Submit("salade", 0)
	f.env.Waiting = true

	Decide(f.env, chef, pos, tgt)

	if chef.State != components.StateWaiting {
		t.Errorf("state = %v, want waiting", chef.State)
	}
	if f.book.Owned(1) != nil {
		t.Error("a held-off chef must not claim")
	}
	spot := f.layout.WaitSpot(1)
	if tgt.X != spot.X || tgt.Y != spot.Y {
		t.Errorf("target = (%v, %v), want wait spot %v", tgt.X, tgt.Y, spot)
	}
}

func TestDecideChopFinishAdvancesOrder(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	f.book.Submit("salade", 0)
	f.book.AssignNext(0, 0)

	chef.State = components.StateCutting
	chef.ChopType = "L"
	chef.ChopStart = 0
	f.env.Now = f.cfg.Ingredients["L"].PrepTime + 0.01

	events := Decide(f.env, chef, pos, tgt)

	if len(events) != 1 || events[0].Kind != EventChopFinished {
		t.Fatalf("events = %v, want one chop_finished", events)
	}
	if chef.Chopping() {
		t.Error("chop context should be cleared")
	}
	// Salade still needs tomato, so the chef heads back to stock.
	if chef.State != components.StateGoingToFridge {
		t.Errorf("state = %v, want going_to_fridge for the tomato", chef.State)
	}
	if next, _ := f.book.NextNeeded(0); next != "T" {
		t.Errorf("next needed = %q, want T", next)
	}
}

func TestDecideChopFinishOnLastIngredient(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	f.book.Submit("steak", 0)
	f.book.AssignNext(0, 0)

	chef.State = components.StateCutting
	chef.ChopType = "H"
	chef.ChopStart = 0
	f.env.Now = f.cfg.Ingredients["H"].PrepTime + 0.01

	Decide(f.env, chef, pos, tgt)

	if chef.State != components.StateGoingToPlating {
		t.Errorf("state = %v, want going_to_plating after the last chop", chef.State)
	}
	if !f.book.IsReady(0) {
		t.Error("order should be ready")
	}
}

func TestDecideChopNotDoneYet(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	f.book.Submit("steak", 0)
	f.book.AssignNext(0, 0)

	chef.State = components.StateCutting
	chef.ChopType = "H"
	chef.ChopStart = 0
	f.env.Now = f.cfg.Ingredients["H"].PrepTime / 2

	events := Decide(f.env, chef, pos, tgt)

	if len(events) != 0 {
		t.Errorf("events = %v, want none mid-chop", events)
	}
	if chef.State != components.StateCutting {
		t.Errorf("state = %v, want still cutting", chef.State)
	}
}

func TestMotivationShortensPrep(t *testing.T) {
	f := newFixture(t, nil)

	base := f.env.PrepDuration("H", 0)
	faster := f.env.PrepDuration("H", 50)
	if faster >= base {
		t.Errorf("prep at motivation 50 = %v, want less than %v", faster, base)
	}
	if want := base * 0.75; math.Abs(faster-want) > 1e-9 {
		t.Errorf("prep at motivation 50 = %v, want %v", faster, want)
	}
}

func TestDecidePlatingFinish(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	f.book.Submit("steak", 0)
	f.book.AssignNext(0, 0)
	f.book.AddIngredient(0, "H")

	chef.State = components.StatePlating
	chef.Plating = true
	chef.PlateStart = 0
	f.env.Now = f.cfg.Plating.Duration + 0.01

	events := Decide(f.env, chef, pos, tgt)

	if len(events) != 1 || events[0].Kind != EventPlated {
		t.Fatalf("events = %v, want one plated", events)
	}
	if chef.Held.Kind != components.HeldDish {
		t.Error("chef should carry the finished dish")
	}
	if chef.State != components.StateGoingToDelivery {
		t.Errorf("state = %v, want going_to_delivery", chef.State)
	}
	delivery := f.layout.Delivery.Center()
	if tgt.X != delivery.X || tgt.Y != delivery.Y {
		t.Errorf("target = (%v, %v), want delivery %v", tgt.X, tgt.Y, delivery)
	}
}

func TestStepMovesTowardTargetAndClamps(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	chef.State = components.StateGoingToFridge

	pos.X, pos.Y = 400, 300
	tgt.X, tgt.Y = 100, 300

	Step(f.env, chef, pos, tgt)

	step := chef.Speed * f.cfg.Physics.DT
	if math.Abs(pos.X-(400-step)) > 1e-9 {
		t.Errorf("x = %v, want %v", pos.X, 400-step)
	}
	if pos.Y != 300 {
		t.Errorf("y = %v, want unchanged", pos.Y)
	}

	// Target outside bounds: position clamps to the playable area.
	pos.X, pos.Y = f.cfg.Kitchen.Bounds.MinX+1, 300
	tgt.X = -500
	for i := 0; i < 10; i++ {
		Step(f.env, chef, pos, tgt)
	}
	if pos.X < f.cfg.Kitchen.Bounds.MinX {
		t.Errorf("x = %v, escaped min bound %v", pos.X, f.cfg.Kitchen.Bounds.MinX)
	}
}

func TestStepSnapsToCloseTarget(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	chef.State = components.StateGoingToBoard

	pos.X, pos.Y = 349, 270.5
	tgt.X, tgt.Y = 350, 270

	Step(f.env, chef, pos, tgt)

	if pos.X != 350 || pos.Y != 270 {
		t.Errorf("pos = (%v, %v), want exact target", pos.X, pos.Y)
	}
	if !AtTarget(f.env, pos, tgt) {
		t.Error("chef at target should report AtTarget")
	}
}

func TestStationaryStatesDoNotMove(t *testing.T) {
	f := newFixture(t, nil)

	for _, state := range []components.State{components.StateCutting, components.StatePlating} {
		chef, pos, tgt := newChef(0, 180)
		chef.State = state
		pos.X, pos.Y = 300, 300
		tgt.X, tgt.Y = 500, 500

		Step(f.env, chef, pos, tgt)

		if pos.X != 300 || pos.Y != 300 {
			t.Errorf("state %v moved to (%v, %v), want stationary", state, pos.X, pos.Y)
		}
	}
}

func TestOnArrivalFridgePickup(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	f.book.Submit("salade", 0)
	f.book.AssignNext(0, 0)
	chef.State = components.StateGoingToFridge
	placeAt(pos, tgt, f.layout.StockAccess("L"))

	events := OnArrival(f.env, chef, pos, tgt)

	if len(events) != 1 || events[0].Kind != EventPickup || events[0].Item != "L" {
		t.Fatalf("events = %v, want pickup of L", events)
	}
	if chef.Held.Kind != components.HeldIngredient || chef.Held.Ingredient != "L" {
		t.Errorf("held = %+v, want lettuce", chef.Held)
	}
	if chef.State != components.StateGoingToBoard {
		t.Errorf("state = %v, want going_to_board", chef.State)
	}
	if f.stock.TakenCount() != 1 {
		t.Errorf("TakenCount = %d, want 1", f.stock.TakenCount())
	}
}

func TestOnArrivalFridgeEmptyRetries(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Stock.InitialPerType = 0
	})
	chef, pos, tgt := newChef(0, 180)
	f.book.Submit("salade", 0)
	f.book.AssignNext(0, 0)
	chef.State = components.StateGoingToFridge
	placeAt(pos, tgt, f.layout.StockAccess("L"))

	events := OnArrival(f.env, chef, pos, tgt)

	if len(events) != 1 || events[0].Kind != EventPickupMiss {
		t.Fatalf("events = %v, want pickup_miss", events)
	}
	// The chef stays put and keeps trying, it does not give up the order.
	if chef.State != components.StateGoingToFridge {
		t.Errorf("state = %v, want still going_to_fridge", chef.State)
	}
	if f.book.Owned(0) == nil {
		t.Error("the order should remain claimed")
	}
}

func TestOnArrivalContentionSecondChefMisses(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Stock.InitialPerType = 1
	})
	f.book.Submit("steak", 0)
	f.book.Submit("steak", 0)
	f.book.AssignNext(0, 0)
	f.book.AssignNext(1, 0)

	a, aPos, aTgt := newChef(0, 180)
	b, bPos, bTgt := newChef(1, 170)
	for _, c := range []*components.Chef{a, b} {
		c.State = components.StateGoingToFridge
	}
	placeAt(aPos, aTgt, f.layout.StockAccess("H"))
	placeAt(bPos, bTgt, f.layout.StockAccess("H"))

	first := OnArrival(f.env, a, aPos, aTgt)
	second := OnArrival(f.env, b, bPos, bTgt)

	if first[0].Kind != EventPickup {
		t.Errorf("first chef should win the unit, got %v", first)
	}
	if second[0].Kind != EventPickupMiss {
		t.Errorf("second chef should miss, got %v", second)
	}
}

func TestOnArrivalBoardStartsChop(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	chef.State = components.StateGoingToBoard
	chef.Held = components.Held{Kind: components.HeldIngredient, Ingredient: "T"}
	placeAt(pos, tgt, f.layout.Board.Center())
	f.env.Now = 3

	events := OnArrival(f.env, chef, pos, tgt)

	if len(events) != 1 || events[0].Kind != EventChopStarted {
		t.Fatalf("events = %v, want chop_started", events)
	}
	if chef.State != components.StateCutting || chef.ChopType != "T" || chef.ChopStart != 3 {
		t.Errorf("chef = %+v, want cutting tomato from t=3", chef)
	}
	if chef.Held.Carrying() {
		t.Error("ingredient should move to the board")
	}
}

func TestOnArrivalPlatingRequiresReadyOrder(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	f.book.Submit("salade", 0)
	f.book.AssignNext(0, 0)
	chef.State = components.StateGoingToPlating
	placeAt(pos, tgt, f.layout.Plating.Center())

	OnArrival(f.env, chef, pos, tgt)

	if chef.Plating {
		t.Error("plating must not start with missing ingredients")
	}
	if chef.State != components.StateIdle {
		t.Errorf("state = %v, want idle to replan", chef.State)
	}
}

func TestOnArrivalDelivery(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	f.book.Submit("steak", 0)
	f.book.AssignNext(0, 1)
	f.book.AddIngredient(0, "H")
	f.book.SetPlated(0)

	chef.State = components.StateGoingToDelivery
	chef.Held = components.Held{Kind: components.HeldDish}
	placeAt(pos, tgt, f.layout.Delivery.Center())
	f.env.Now = 9

	events := OnArrival(f.env, chef, pos, tgt)

	if len(events) != 1 || events[0].Kind != EventDelivered {
		t.Fatalf("events = %v, want delivered", events)
	}
	rec := events[0].Completion
	if rec == nil || rec.Dish != "steak" || rec.Duration != 8 {
		t.Errorf("completion = %+v, want steak with duration 8", rec)
	}
	if chef.Held.Carrying() {
		t.Error("dish should be handed over")
	}
	if chef.Delivered != 1 {
		t.Errorf("Delivered = %d, want 1", chef.Delivered)
	}
	if chef.Motivation != f.cfg.Motivation.GainPerDelivery {
		t.Errorf("Motivation = %v, want %v", chef.Motivation, f.cfg.Motivation.GainPerDelivery)
	}
}

func TestMotivationCapped(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	chef.Motivation = f.cfg.Motivation.Max - 1

	f.book.Submit("steak", 0)
	f.book.AssignNext(0, 0)
	f.book.AddIngredient(0, "H")
	f.book.SetPlated(0)
	chef.State = components.StateGoingToDelivery
	chef.Held = components.Held{Kind: components.HeldDish}
	placeAt(pos, tgt, f.layout.Delivery.Center())

	OnArrival(f.env, chef, pos, tgt)

	if chef.Motivation != f.cfg.Motivation.Max {
		t.Errorf("Motivation = %v, want capped at %v", chef.Motivation, f.cfg.Motivation.Max)
	}
}

func TestDecideCarriedIngredientGoesToBoard(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	chef.Held = components.Held{Kind: components.HeldIngredient, Ingredient: "T"}

	Decide(f.env, chef, pos, tgt)

	if chef.State != components.StateGoingToBoard {
		t.Errorf("state = %v, want going_to_board while carrying", chef.State)
	}
	board := f.layout.Board.Center()
	if tgt.X != board.X || tgt.Y != board.Y {
		t.Errorf("target = (%v, %v), want board %v", tgt.X, tgt.Y, board)
	}
}

func TestOnArrivalNotAtTargetIsNoop(t *testing.T) {
	f := newFixture(t, nil)
	chef, pos, tgt := newChef(0, 180)
	chef.State = components.StateGoingToFridge
	pos.X, pos.Y = 400, 400
	tgt.X, tgt.Y = 150, 350

	if events := OnArrival(f.env, chef, pos, tgt); events != nil {
		t.Errorf("events = %v, want none away from target", events)
	}
}
