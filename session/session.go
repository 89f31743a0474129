// Package session tracks the round clock, team score, and delivery combo.
package session

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"brigade/config"
	"brigade/orders"
)

// Session is the running round: a countdown clock, the team score, and
// the delivery combo. Once the clock runs out the session stays ended;
// deliveries and submissions after that point do not score.
type Session struct {
	remaining float64
	ended     bool

	score     int
	combo     int
	comboPeak int

	lastDeliveryAt float64
	lastDecayAt    float64
	decayWindow    float64

	scoring   config.ScoringConfig
	durations []float64
	history   []orders.CompletionRecord
}

// New starts a session with the configured duration.
func New(cfg *config.Config) *Session {
	return &Session{
		remaining:   cfg.Session.Duration,
		decayWindow: cfg.Session.ComboDecayWindow,
		scoring:     cfg.Scoring,
	}
}

// Tick advances the clock and applies combo decay. Returns true on the
// tick the session ends.
func (s *Session) Tick(dt float64, now float64) bool {
	if s.ended {
		return false
	}
	s.remaining -= dt
	if s.remaining <= 0 {
		s.remaining = 0
		s.ended = true
		return true
	}

	// Combo cools off after a stretch without deliveries.
	if s.combo > 0 && now-s.lastDeliveryAt >= s.decayWindow && now-s.lastDecayAt >= s.decayWindow {
		s.combo--
		s.lastDecayAt = now
	}
	return false
}

// RecordDelivery scores a completed order and advances the combo.
// Returns the points awarded, zero if the session has ended.
func (s *Session) RecordDelivery(rec orders.CompletionRecord, now float64) int {
	if s.ended {
		return 0
	}

	s.combo++
	if s.combo > s.comboPeak {
		s.comboPeak = s.combo
	}
	s.lastDeliveryAt = now
	s.lastDecayAt = now

	points := rec.Ingredients*s.scoring.BasePerIngredient +
		s.combo*s.scoring.ComboMultiplier +
		s.scoring.PlatingBonus
	if bonus := s.scoring.SpeedBonusMax - s.scoring.SpeedBonusDecay*rec.Duration; bonus > 0 {
		points += int(bonus)
	}

	s.score += points
	s.durations = append(s.durations, rec.Duration)
	s.history = append(s.history, rec)
	return points
}

// Remaining returns seconds left on the clock.
func (s *Session) Remaining() float64 {
	return s.remaining
}

// Ended reports whether the clock has run out.
func (s *Session) Ended() bool {
	return s.ended
}

// Score returns the current team score.
func (s *Session) Score() int {
	return s.score
}

// Combo returns the current delivery combo.
func (s *Session) Combo() int {
	return s.combo
}

// Deliveries returns the number of scored deliveries.
func (s *Session) Deliveries() int {
	return len(s.history)
}

// Summary is the end-of-session report.
type Summary struct {
	Score      int
	Tier       string
	Deliveries int
	ComboPeak  int

	// Claim-to-delivery duration stats, in seconds. Zero when no
	// deliveries were scored.
	MeanDuration   float64
	StdDevDuration float64
	MinDuration    float64
	MaxDuration    float64
}

// Finalize computes the end-of-session summary. Valid once Ended.
func (s *Session) Finalize() Summary {
	sum := Summary{
		Score:      s.score,
		Tier:       s.Tier(),
		Deliveries: len(s.history),
		ComboPeak:  s.comboPeak,
	}
	if len(s.durations) > 0 {
		sum.MeanDuration, sum.StdDevDuration = stat.MeanStdDev(s.durations, nil)
		sorted := append([]float64(nil), s.durations...)
		sort.Float64s(sorted)
		sum.MinDuration = sorted[0]
		sum.MaxDuration = sorted[len(sorted)-1]
	}
	return sum
}

// Tier returns the performance title for the current score. Tiers are
// sorted by descending threshold at config load; the first one the
// score clears wins.
func (s *Session) Tier() string {
	for _, t := range s.scoring.Tiers {
		if s.score > t.MinScore {
			return t.Title
		}
	}
	if len(s.scoring.Tiers) > 0 {
		return s.scoring.Tiers[len(s.scoring.Tiers)-1].Title
	}
	return ""
}
