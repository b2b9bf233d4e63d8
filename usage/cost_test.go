package usage

import (
	"math"
	"sync"
	"testing"

	"github.com/mpalmer79/agentforge-sub001/registry"
)

func TestTracker_Record(t *testing.T) {
	tracker := NewTracker()

	tracker.Record("gpt-4-turbo", 1000, 500)
	tracker.Record("gpt-4o", 2000, 250)
	tracker.Record("claude-3-opus", 300, 100)

	gpt4 := tracker.Usage(registry.FamilyGPT4)
	if gpt4.InputTokens != 3000 {
		t.Errorf("gpt-4 InputTokens = %d, expected 3000", gpt4.InputTokens)
	}
	if gpt4.OutputTokens != 750 {
		t.Errorf("gpt-4 OutputTokens = %d, expected 750", gpt4.OutputTokens)
	}
	if gpt4.Requests != 2 {
		t.Errorf("gpt-4 Requests = %d, expected 2", gpt4.Requests)
	}

	claude := tracker.Usage(registry.FamilyClaude)
	if claude.TotalTokens() != 400 {
		t.Errorf("claude TotalTokens = %d, expected 400", claude.TotalTokens())
	}
}

func TestTracker_UnknownModelsAggregate(t *testing.T) {
	tracker := NewTracker()
	tracker.Record("local-llama-whatever", 100, 50)

	u := tracker.Usage(registry.FamilyUnknown)
	if u.Requests != 1 {
		t.Errorf("unknown Requests = %d, expected 1", u.Requests)
	}
}

func TestTracker_TotalUsage(t *testing.T) {
	tracker := NewTracker()
	tracker.Record("gpt-4", 1000, 500)
	tracker.Record("gemini-1.5-pro", 2000, 1000)

	total := tracker.TotalUsage()
	if total.InputTokens != 3000 {
		t.Errorf("TotalUsage InputTokens = %d, expected 3000", total.InputTokens)
	}
	if total.OutputTokens != 1500 {
		t.Errorf("TotalUsage OutputTokens = %d, expected 1500", total.OutputTokens)
	}
	if total.Requests != 2 {
		t.Errorf("TotalUsage Requests = %d, expected 2", total.Requests)
	}
}

func TestTracker_EstimatedCost(t *testing.T) {
	tracker := NewTracker()
	tracker.Record("gpt-4", 1_000_000, 1_000_000)

	prices := FamilyPrices[registry.FamilyGPT4]
	expected := prices.InputPerMillion + prices.OutputPerMillion

	if cost := tracker.EstimatedCost(); math.Abs(cost-expected) > 1e-9 {
		t.Errorf("EstimatedCost() = %v, expected %v", cost, expected)
	}
}

func TestTracker_UnknownFamilyCostsNothing(t *testing.T) {
	tracker := NewTracker()
	tracker.Record("some-unknown-model", 1_000_000, 1_000_000)

	if cost := tracker.EstimatedCost(); cost != 0 {
		t.Errorf("EstimatedCost() = %v, expected 0 for unpriced family", cost)
	}
}

func TestTracker_Summary(t *testing.T) {
	tracker := NewTracker()
	tracker.Record("gpt-4", 100, 50)

	summary := tracker.Summary()
	summary[registry.FamilyGPT4] = Usage{}

	if tracker.Usage(registry.FamilyGPT4).InputTokens != 100 {
		t.Error("mutating Summary() result changed the tracker")
	}
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	tracker.Record("gpt-4", 100, 50)
	tracker.Reset()

	if total := tracker.TotalUsage(); total.Requests != 0 {
		t.Errorf("Requests after Reset = %d, expected 0", total.Requests)
	}
}

func TestTracker_ConcurrentRecord(t *testing.T) {
	tracker := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Record("claude-3-opus", 10, 5)
		}()
	}
	wg.Wait()

	u := tracker.Usage(registry.FamilyClaude)
	if u.Requests != 50 {
		t.Errorf("Requests = %d, expected 50", u.Requests)
	}
	if u.InputTokens != 500 {
		t.Errorf("InputTokens = %d, expected 500", u.InputTokens)
	}
}
