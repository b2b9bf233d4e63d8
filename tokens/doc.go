// Package tokens provides heuristic token counting and budget calculation
// for LLM conversations.
//
// Counting is a deterministic approximation, not a vendor tokenizer: each
// rune carries a weight (punctuation, symbols, and CJK ideographs weigh
// more than letters) and the weighted length is divided by a per-family
// characters-per-token ratio. This is fast, never fails, and satisfies the
// orderings budgeting cares about: longer text never counts lower, and
// symbol-dense code counts higher than prose of the same length.
//
// # Counting
//
// Counters are bound to a model family:
//
//	counter := tokens.GetTokenCounter("gpt-4-turbo")
//	count := counter.Count("Hello, world!")
//	total := counter.CountMessages([]tokens.Message{
//	    {Role: tokens.RoleUser, Content: "Hi"},
//	    {Role: tokens.RoleAssistant, Content: "Hello!"},
//	})
//
// GetTokenCounter accepts either a full model identifier or a family name
// ("claude", "gpt-4"). For one-off counting with the default ratio, use
// tokens.EstimateTokens.
//
// # Budgets
//
// CalculateBudget combines the registry's context window with message
// counting:
//
//	b := tokens.CalculateBudget("claude-3-opus", messages)
//	// b.Total      window minus response reservation
//	// b.Used       estimated conversation tokens
//	// b.Remaining  may be negative: conversation exceeds the budget
//	// b.PercentUsed
//
// Budget calculation never fails. A negative Remaining is the expected
// signal to truncate upstream, not an error.
package tokens
