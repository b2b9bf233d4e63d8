// Package truncate provides token-aware text truncation for fitting LLM
// context budgets.
//
// # Strategies
//
// Three truncation strategies are available:
//
//   - End: retain a prefix and cut the rest (default)
//   - Middle: retain a prefix and a suffix, drop the interior
//   - Smart: like End, but prefer cutting at a sentence boundary
//
// # Basic Usage
//
// One-shot truncation:
//
//	res, err := truncate.TruncateToTokens(text, truncate.Options{
//	    MaxTokens: 100,
//	    Strategy:  truncate.End,
//	})
//	// res.Text, res.Truncated, res.OriginalTokens, res.FinalTokens
//
// Middle truncation with explicit preserve budgets:
//
//	res, err := truncate.TruncateToTokens(logDump, truncate.Options{
//	    MaxTokens:     200,
//	    Strategy:      truncate.Middle,
//	    PreserveStart: 50,
//	    PreserveEnd:   150,
//	})
//
// A reusable Truncator avoids re-validating options per call:
//
//	tr, err := truncate.New(truncate.Options{Strategy: truncate.Smart})
//	res := tr.Truncate(text, 100)
//
// # Guarantees
//
// Text that already fits is returned byte-for-byte, unmarked. Truncated
// results always estimate at or under the budget, with the indicator's own
// token cost paid out of the budget. A positive budget too small for even
// the indicator yields empty text; a budget of zero or less degenerates to
// the indicator alone.
//
// The only errors are configuration errors (unknown strategy, negative
// preserve budgets); they carry a stable code and are never retryable.
// Running out of budget is an expected outcome, not an error.
//
// # UTF-8 Support
//
// All truncation counts runes rather than bytes, so multi-byte characters
// are never split.
package truncate
