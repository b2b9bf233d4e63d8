// Package agentforge provides context-window budget management for LLM
// conversations.
//
// The module answers four questions about any model and conversation:
// which family a model identifier belongs to, how large its context window
// is, how many tokens a piece of text or a conversation will consume, and
// how to cut oversized text down to a token budget without destroying
// readability. Each subpackage can be used independently:
//
//   - registry: model family classification and context-window lookup
//   - tokens: heuristic token counting and budget calculation
//   - truncate: token-aware text truncation strategies
//   - config: context-window overrides from YAML/TOML/JSON files
//   - usage: per-family token usage and cost tracking
//
// # Quick Start
//
// Budget calculation:
//
//	import "github.com/mpalmer79/agentforge-sub001/tokens"
//	b := tokens.CalculateBudget("gpt-4-turbo", messages)
//	if b.Remaining < 0 {
//	    // conversation exceeds the budget, truncate upstream
//	}
//
// Truncation:
//
//	import "github.com/mpalmer79/agentforge-sub001/truncate"
//	res, err := truncate.TruncateToTokens(longText, truncate.Options{
//	    MaxTokens: 500,
//	    Strategy:  truncate.Smart,
//	})
//
// Model lookup:
//
//	import "github.com/mpalmer79/agentforge-sub001/registry"
//	family := registry.GetModelFamily("claude-3-opus") // registry.FamilyClaude
//	window := registry.GetContextWindow("gpt-4")       // 8192
//
// # Design Philosophy
//
//   - Counting and budgeting never fail; they return best-effort estimates
//   - Only truncation configuration errors cross the error boundary
//   - All lookup tables are built at init and never mutated, so every
//     operation is safe for concurrent use without locking
//   - Sensible defaults with full configurability
package agentforge
