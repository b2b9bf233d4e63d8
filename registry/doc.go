// Package registry provides model family classification and context-window
// lookup for LLM model identifiers.
//
// Classification is heuristic substring matching, so it keeps working for
// dated or versioned identifiers the table has never seen:
//
//	registry.GetModelFamily("gpt-4-turbo-2024-04-09") // registry.FamilyGPT4
//	registry.GetModelFamily("some-local-model")       // registry.FamilyUnknown
//
// Context windows are exact-match lookups with a conservative default:
//
//	registry.GetContextWindow("gemini-1.5-pro") // 1000000
//	registry.GetContextWindow("unknown-model")  // registry.DefaultContextWindow
//
// The table is built at init and never mutated, so both functions are safe
// for concurrent use. Use registry.ContextWindows() to enumerate supported
// models; it returns a copy.
package registry
