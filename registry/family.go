package registry

import "strings"

// ModelFamily represents a coarse classification of a model identifier.
// The family selects a token-counting heuristic; it does not determine the
// context window, which varies between models within a family.
type ModelFamily string

// Known model families.
const (
	FamilyGPT4    ModelFamily = "gpt-4"
	FamilyGPT35   ModelFamily = "gpt-3.5"
	FamilyClaude  ModelFamily = "claude"
	FamilyGemini  ModelFamily = "gemini"
	FamilyUnknown ModelFamily = "unknown"
)

// familyPattern matches a lowercase substring to a family.
type familyPattern struct {
	substr string
	family ModelFamily
}

// familyPatterns is checked in order. More specific patterns come first so
// "gpt-4" is never shadowed by a broader pattern ("gpt-3.5" must be checked
// before any bare "gpt" pattern were one added).
var familyPatterns = []familyPattern{
	{"gpt-4", FamilyGPT4},
	{"gpt4", FamilyGPT4},
	{"gpt-3.5", FamilyGPT35},
	{"gpt-35", FamilyGPT35},
	{"claude", FamilyClaude},
	{"gemini", FamilyGemini},
}

// GetModelFamily classifies a model identifier into its family.
// Matching is case-insensitive and substring-based, so versioned and dated
// identifiers like "GPT-4-Turbo-2024-04-09" or "claude-3-opus-20240229"
// resolve to their family. Identifiers that match no pattern return
// FamilyUnknown; the function never fails.
func GetModelFamily(modelID string) ModelFamily {
	lower := strings.ToLower(strings.TrimSpace(modelID))
	for _, p := range familyPatterns {
		if strings.Contains(lower, p.substr) {
			return p.family
		}
	}
	return FamilyUnknown
}

// IsKnownFamily reports whether s is one of the known family names.
// Useful for callers that accept either a model identifier or a family.
func IsKnownFamily(s string) bool {
	switch ModelFamily(s) {
	case FamilyGPT4, FamilyGPT35, FamilyClaude, FamilyGemini, FamilyUnknown:
		return true
	}
	return false
}
