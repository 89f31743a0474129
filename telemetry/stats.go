package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated kitchen statistics for a time window.
type WindowStats struct {
	WindowStartTick int     `csv:"-"`
	WindowEndTick   int     `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Queue depth at window end
	PendingOrders int `csv:"pending"`
	ActiveOrders  int `csv:"active"`

	// Events during window
	OrdersSubmitted int `csv:"orders_submitted"`
	OrdersRejected  int `csv:"orders_rejected"`
	Pickups         int `csv:"pickups"`
	PickupMisses    int `csv:"pickup_misses"`
	ChopsFinished   int `csv:"chops_finished"`
	Platings        int `csv:"platings"`
	Deliveries      int `csv:"deliveries"`

	// Score at window end
	Score int `csv:"score"`
	Combo int `csv:"combo"`

	// Claim-to-delivery duration distribution over the window
	DeliveryDurMean float64 `csv:"delivery_dur_mean"`
	DeliveryDurP50  float64 `csv:"delivery_dur_p50"`
	DeliveryDurP90  float64 `csv:"delivery_dur_p90"`

	// Stock pressure at window end
	StockAvailable int `csv:"stock_available"`
}

// ComputeDurationStats calculates mean and percentiles from delivery durations.
func ComputeDurationStats(values []float64) (mean, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("pending", s.PendingOrders),
		slog.Int("active", s.ActiveOrders),
		slog.Int("orders_submitted", s.OrdersSubmitted),
		slog.Int("orders_rejected", s.OrdersRejected),
		slog.Int("pickups", s.Pickups),
		slog.Int("pickup_misses", s.PickupMisses),
		slog.Int("chops_finished", s.ChopsFinished),
		slog.Int("platings", s.Platings),
		slog.Int("deliveries", s.Deliveries),
		slog.Int("score", s.Score),
		slog.Int("combo", s.Combo),
		slog.Float64("delivery_dur_mean", s.DeliveryDurMean),
		slog.Float64("delivery_dur_p50", s.DeliveryDurP50),
		slog.Float64("delivery_dur_p90", s.DeliveryDurP90),
		slog.Int("stock_available", s.StockAvailable),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"pending", s.PendingOrders,
		"active", s.ActiveOrders,
		"orders_submitted", s.OrdersSubmitted,
		"orders_rejected", s.OrdersRejected,
		"pickups", s.Pickups,
		"pickup_misses", s.PickupMisses,
		"chops_finished", s.ChopsFinished,
		"platings", s.Platings,
		"deliveries", s.Deliveries,
		"score", s.Score,
		"combo", s.Combo,
		"delivery_dur_mean", s.DeliveryDurMean,
		"delivery_dur_p50", s.DeliveryDurP50,
		"delivery_dur_p90", s.DeliveryDurP90,
		"stock_available", s.StockAvailable,
	)
}
