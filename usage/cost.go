package usage

import (
	"sync"

	"github.com/mpalmer79/agentforge-sub001/registry"
)

// Usage tracks token consumption for a model family.
type Usage struct {
	InputTokens  int
	OutputTokens int
	Requests     int
}

// Add adds the given usage to this usage.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.Requests += other.Requests
}

// TotalTokens returns the total tokens used.
func (u *Usage) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// Pricing holds per-million-token pricing for a model family.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// FamilyPrices contains representative pricing per model family. Families
// span models with different price points; these are mid-range figures
// good enough for trend tracking, not billing.
var FamilyPrices = map[registry.ModelFamily]Pricing{
	registry.FamilyGPT4:   {InputPerMillion: 10.0, OutputPerMillion: 30.0},
	registry.FamilyGPT35:  {InputPerMillion: 0.5, OutputPerMillion: 1.5},
	registry.FamilyClaude: {InputPerMillion: 3.0, OutputPerMillion: 15.0},
	registry.FamilyGemini: {InputPerMillion: 1.25, OutputPerMillion: 5.0},
}

// Tracker accumulates token usage and estimated costs per model family.
// It is safe for concurrent use.
type Tracker struct {
	mu     sync.RWMutex
	totals map[registry.ModelFamily]Usage
}

// NewTracker creates a new usage tracker.
func NewTracker() *Tracker {
	return &Tracker{
		totals: make(map[registry.ModelFamily]Usage),
	}
}

// Record adds a usage record for the given model identifier. The model is
// classified into its family; unknown models accumulate under
// registry.FamilyUnknown.
func (t *Tracker) Record(modelID string, input, output int) {
	family := registry.GetModelFamily(modelID)

	t.mu.Lock()
	defer t.mu.Unlock()

	u := t.totals[family]
	u.InputTokens += input
	u.OutputTokens += output
	u.Requests++
	t.totals[family] = u
}

// Usage returns the accumulated usage for a model family.
func (t *Tracker) Usage(family registry.ModelFamily) Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totals[family]
}

// Summary returns a copy of all usage totals.
func (t *Tracker) Summary() map[registry.ModelFamily]Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[registry.ModelFamily]Usage, len(t.totals))
	for k, v := range t.totals {
		result[k] = v
	}
	return result
}

// TotalUsage returns aggregated usage across all families.
func (t *Tracker) TotalUsage() Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total Usage
	for _, u := range t.totals {
		total.Add(u)
	}
	return total
}

// EstimatedCost calculates the estimated cost in USD based on FamilyPrices.
// Families without pricing (unknown models) contribute nothing.
func (t *Tracker) EstimatedCost() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total float64
	for family, u := range t.totals {
		prices, ok := FamilyPrices[family]
		if !ok {
			continue
		}
		total += float64(u.InputTokens) / 1_000_000 * prices.InputPerMillion
		total += float64(u.OutputTokens) / 1_000_000 * prices.OutputPerMillion
	}
	return total
}

// Reset clears all tracked usage.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals = make(map[registry.ModelFamily]Usage)
}
