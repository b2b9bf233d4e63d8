package tokens

import (
	"github.com/mpalmer79/agentforge-sub001/registry"
)

// DefaultReservedForResponse is the default number of tokens reserved for
// the model's response when calculating a budget.
const DefaultReservedForResponse = 1000

// Budget reports how much of a model's context window a conversation has
// consumed after reserving room for the response.
type Budget struct {
	// Total is the context window minus the response reservation,
	// clamped at 0.
	Total int

	// Used is the estimated token count of the conversation.
	Used int

	// Remaining is Total - Used. Negative means the conversation already
	// exceeds the budget; callers use this to trigger truncation.
	Remaining int

	// PercentUsed is Used/Total*100 when Total > 0. When the reservation
	// consumed the entire window (Total <= 0), it is 100 by convention.
	PercentUsed float64
}

// CalculateBudget computes the token budget for a model and conversation
// using the default response reservation.
func CalculateBudget(model string, messages []Message) Budget {
	return CalculateBudgetWithReserve(model, messages, DefaultReservedForResponse)
}

// CalculateBudgetWithReserve computes the token budget for a model and
// conversation, reserving reservedForResponse tokens for the response.
// It never fails; unknown models fall back to the registry default window.
func CalculateBudgetWithReserve(model string, messages []Message, reservedForResponse int) Budget {
	total := registry.GetContextWindow(model) - reservedForResponse
	if total < 0 {
		total = 0
	}

	used := GetTokenCounter(model).CountMessages(messages)

	percentUsed := 100.0
	if total > 0 {
		percentUsed = float64(used) / float64(total) * 100
	}

	return Budget{
		Total:       total,
		Used:        used,
		Remaining:   total - used,
		PercentUsed: percentUsed,
	}
}

// ExceedsBudget returns true if the conversation no longer fits.
func (b Budget) ExceedsBudget() bool {
	return b.Remaining < 0
}
