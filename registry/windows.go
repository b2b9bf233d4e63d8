package registry

// DefaultContextWindow is returned for model identifiers not in the table.
// 8192 is a conservative floor shared by the smallest commonly deployed
// models.
const DefaultContextWindow = 8192

// contextWindows maps exact model identifiers to context-window sizes in
// tokens. Built once at init, never mutated. Two models in the same family
// may have very different windows ("gpt-4" vs "gpt-4-turbo"), so lookups
// here are exact-match and independent of GetModelFamily.
var contextWindows = map[string]int{
	// OpenAI GPT-4 variants
	"gpt-4":               8192,
	"gpt-4-0613":          8192,
	"gpt-4-32k":           32768,
	"gpt-4-turbo":         128000,
	"gpt-4-turbo-preview": 128000,
	"gpt-4o":              128000,
	"gpt-4o-mini":         128000,

	// OpenAI GPT-3.5 variants
	"gpt-3.5-turbo":      16385,
	"gpt-3.5-turbo-16k":  16385,
	"gpt-3.5-turbo-0125": 16385,

	// Anthropic Claude
	"claude-2":           100000,
	"claude-2.1":         200000,
	"claude-instant-1.2": 100000,
	"claude-3-haiku":     200000,
	"claude-3-sonnet":    200000,
	"claude-3-opus":      200000,
	"claude-3-5-sonnet":  200000,
	"claude-3-5-haiku":   200000,

	// Google Gemini
	"gemini-pro":       32760,
	"gemini-1.0-pro":   32760,
	"gemini-1.5-flash": 1000000,
	"gemini-1.5-pro":   1000000,
}

// GetContextWindow returns the context-window size in tokens for an exact
// model identifier. Unknown identifiers return DefaultContextWindow.
func GetContextWindow(modelID string) int {
	if window, ok := contextWindows[modelID]; ok {
		return window
	}
	return DefaultContextWindow
}

// IsKnownModel reports whether the table has an exact entry for modelID.
func IsKnownModel(modelID string) bool {
	_, ok := contextWindows[modelID]
	return ok
}

// ContextWindows returns a copy of the full model-to-window table so
// diagnostics and UI layers can enumerate supported models without being
// able to mutate the shared table.
func ContextWindows() map[string]int {
	out := make(map[string]int, len(contextWindows))
	for id, window := range contextWindows {
		out[id] = window
	}
	return out
}
