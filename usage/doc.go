// Package usage tracks token consumption and estimated cost per model
// family.
//
//	tracker := usage.NewTracker()
//	tracker.Record("gpt-4-turbo", 1200, 300) // input, output tokens
//	tracker.Record("claude-3-opus", 800, 150)
//	cost := tracker.EstimatedCost()
//
// Model identifiers are classified through the registry, so totals
// aggregate per family rather than per exact model. Pricing is
// representative per family and meant for trend tracking, not billing.
package usage
