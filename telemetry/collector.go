// Package telemetry aggregates kitchen events into windowed statistics
// and writes session output files.
package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int
	dt                  float64

	windowStartTick int

	// Event counters for current window
	ordersSubmitted int
	ordersRejected  int
	pickups         int
	pickupMisses    int
	chopsFinished   int
	platings        int
	deliveries      int

	deliveryDurations []float64
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordSubmission records an accepted order submission.
func (c *Collector) RecordSubmission() {
	c.ordersSubmitted++
}

// RecordRejection records a rejected order submission.
func (c *Collector) RecordRejection() {
	c.ordersRejected++
}

// RecordPickup records an ingredient pickup from stock.
func (c *Collector) RecordPickup() {
	c.pickups++
}

// RecordPickupMiss records a fridge arrival that found no pickable unit.
func (c *Collector) RecordPickupMiss() {
	c.pickupMisses++
}

// RecordChopFinished records a finished chop.
func (c *Collector) RecordChopFinished() {
	c.chopsFinished++
}

// RecordPlating records a finished plating.
func (c *Collector) RecordPlating() {
	c.platings++
}

// RecordDelivery records a delivered order and its claim-to-delivery duration.
func (c *Collector) RecordDelivery(duration float64) {
	c.deliveries++
	c.deliveryDurations = append(c.deliveryDurations, duration)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Snapshot holds the point-in-time values the collector cannot observe itself.
type Snapshot struct {
	PendingOrders  int
	ActiveOrders   int
	Score          int
	Combo          int
	StockAvailable int
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int, snap Snapshot) WindowStats {
	mean, p50, p90 := ComputeDurationStats(c.deliveryDurations)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		PendingOrders: snap.PendingOrders,
		ActiveOrders:  snap.ActiveOrders,

		OrdersSubmitted: c.ordersSubmitted,
		OrdersRejected:  c.ordersRejected,
		Pickups:         c.pickups,
		PickupMisses:    c.pickupMisses,
		ChopsFinished:   c.chopsFinished,
		Platings:        c.platings,
		Deliveries:      c.deliveries,

		Score: snap.Score,
		Combo: snap.Combo,

		DeliveryDurMean: mean,
		DeliveryDurP50:  p50,
		DeliveryDurP90:  p90,

		StockAvailable: snap.StockAvailable,
	}

	c.windowStartTick = currentTick
	c.ordersSubmitted = 0
	c.ordersRejected = 0
	c.pickups = 0
	c.pickupMisses = 0
	c.chopsFinished = 0
	c.platings = 0
	c.deliveries = 0
	c.deliveryDurations = c.deliveryDurations[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int {
	return c.windowDurationTicks
}
