package tokens

import (
	"unicode"

	"github.com/mpalmer79/agentforge-sub001/registry"
)

// DefaultCharsPerToken is the default character-to-token ratio.
// Approximately 4 characters equals 1 token for English prose.
const DefaultCharsPerToken = 4.0

// Rune weights for the counting heuristic. Punctuation and symbol runes
// fragment into more sub-word tokens than letters in real tokenizers, and
// CJK ideographs consume roughly two tokens per character; both get extra
// weight on top of the base weight of 1 per rune.
const (
	symbolExtraWeight = 0.5
	cjkExtraWeight    = 1.0
)

// MessageOverheadTokens approximates the chat-format wrapping cost per
// message (role marker, separators).
const MessageOverheadTokens = 4

// familyCharsPerToken holds the counting ratio for each model family.
// Different providers tokenize differently; these are deliberately rough.
var familyCharsPerToken = map[registry.ModelFamily]float64{
	registry.FamilyGPT4:    4.0,
	registry.FamilyGPT35:   4.0,
	registry.FamilyClaude:  3.5,
	registry.FamilyGemini:  4.0,
	registry.FamilyUnknown: DefaultCharsPerToken,
}

// Counter estimates token counts for text and conversations.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	Count(text string) int

	// CountMessages estimates the total tokens for a conversation,
	// including per-message chat wrapping overhead.
	CountMessages(messages []Message) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// HeuristicCounter estimates tokens from weighted rune counts.
// It never fails; unusual input (empty strings, non-Latin scripts) degrades
// to a rougher estimate rather than an error.
type HeuristicCounter struct {
	// CharsPerToken is the average characters per token for the bound
	// family. Default is 4, which works well for English prose.
	CharsPerToken float64

	// Family is the model family the counter was built for.
	Family registry.ModelFamily
}

// GetTokenCounter returns a counter bound to the counting ratio for the
// given model identifier or family name. Unrecognized input binds the
// default ratio.
func GetTokenCounter(modelIDOrFamily string) *HeuristicCounter {
	family := registry.ModelFamily(modelIDOrFamily)
	if !registry.IsKnownFamily(modelIDOrFamily) {
		family = registry.GetModelFamily(modelIDOrFamily)
	}
	return &HeuristicCounter{
		CharsPerToken: familyCharsPerToken[family],
		Family:        family,
	}
}

// NewCounterWithRatio creates a counter with a custom ratio.
// If charsPerToken is <= 0, the default ratio (4.0) is used.
func NewCounterWithRatio(charsPerToken float64) *HeuristicCounter {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &HeuristicCounter{
		CharsPerToken: charsPerToken,
		Family:        registry.FamilyUnknown,
	}
}

// Count estimates the number of tokens in the given text.
//
// Each rune contributes a base weight of 1; punctuation/symbol runes and
// CJK ideographs contribute extra weight. The weighted length divided by
// the family ratio gives the estimate. Because every rune adds positive
// weight, the estimate is monotone in text length, and symbol-dense
// ("code-like") text always estimates at least as high as prose of the
// same length.
func (c *HeuristicCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	var weighted float64
	for _, r := range text {
		weighted++
		switch {
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			weighted += symbolExtraWeight
		case unicode.Is(unicode.Han, r):
			weighted += cjkExtraWeight
		}
	}

	ratio := c.CharsPerToken
	if ratio <= 0 {
		ratio = DefaultCharsPerToken
	}

	// Round to nearest integer
	return int(weighted/ratio + 0.5)
}

// CountMessages estimates the total tokens for a conversation: the sum of
// Count over message contents plus a fixed per-message overhead for chat
// wrapping. An empty conversation counts as 0.
func (c *HeuristicCounter) CountMessages(messages []Message) int {
	var total int
	for _, m := range messages {
		total += MessageOverheadTokens
		total += c.Count(m.Content)
	}
	return total
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *HeuristicCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// EstimateTokens is a convenience function using the default ratio.
func EstimateTokens(text string) int {
	return NewCounterWithRatio(DefaultCharsPerToken).Count(text)
}
