package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// LeaderboardEntry is one finished session on the local leaderboard.
type LeaderboardEntry struct {
	Score      int     `json:"score"`
	Tier       string  `json:"tier"`
	Deliveries int     `json:"deliveries"`
	ComboPeak  int     `json:"combo_peak"`
	Policy     string  `json:"policy"`
	Seed       int64   `json:"seed"`
	SimTimeSec float64 `json:"sim_time_sec"`
}

// Leaderboard keeps the best session results, highest score first.
type Leaderboard struct {
	MaxEntries int                `json:"max_entries"`
	Entries    []LeaderboardEntry `json:"entries"`
}

// NewLeaderboard creates an empty leaderboard keeping at most maxEntries.
func NewLeaderboard(maxEntries int) *Leaderboard {
	if maxEntries < 1 {
		maxEntries = 10
	}
	return &Leaderboard{MaxEntries: maxEntries}
}

// LoadLeaderboard reads a leaderboard from disk. A missing file returns
// a fresh leaderboard, not an error.
func LoadLeaderboard(path string, maxEntries int) (*Leaderboard, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewLeaderboard(maxEntries), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading leaderboard: %w", err)
	}

	lb := NewLeaderboard(maxEntries)
	if err := json.Unmarshal(data, lb); err != nil {
		return nil, fmt.Errorf("parsing leaderboard: %w", err)
	}
	if lb.MaxEntries < 1 {
		lb.MaxEntries = maxEntries
	}
	return lb, nil
}

// Add inserts an entry, re-sorts by score descending, and trims to
// MaxEntries. Returns the entry's rank (1-based), or 0 if it did not
// make the board.
func (lb *Leaderboard) Add(e LeaderboardEntry) int {
	lb.Entries = append(lb.Entries, e)
	sort.SliceStable(lb.Entries, func(i, j int) bool {
		return lb.Entries[i].Score > lb.Entries[j].Score
	})
	if len(lb.Entries) > lb.MaxEntries {
		lb.Entries = lb.Entries[:lb.MaxEntries]
	}
	for i := range lb.Entries {
		if lb.Entries[i] == e {
			return i + 1
		}
	}
	return 0
}

// Save writes the leaderboard to disk as indented JSON.
func (lb *Leaderboard) Save(path string) error {
	data, err := json.MarshalIndent(lb, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling leaderboard: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing leaderboard: %w", err)
	}
	return nil
}
