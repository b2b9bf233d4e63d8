package truncate

import (
	"strings"
	"unicode/utf8"
)

// ToTokens truncates text to fit within the token budget using the End
// strategy and default options. For anything beyond a quick cut, use
// TruncateToTokens.
func ToTokens(text string, maxTokens int) string {
	res, err := TruncateToTokens(text, Options{MaxTokens: maxTokens, Strategy: End})
	if err != nil {
		return text
	}
	return res.Text
}

// ToLines truncates text to a maximum number of lines.
func ToLines(text string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}

	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}

	return strings.Join(lines[:maxLines], "\n") + "\n" + DefaultIndicator
}

// ToLength truncates text to a maximum character length.
// Properly handles UTF-8 by counting runes, not bytes.
func ToLength(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runeCount := utf8.RuneCountInString(text)
	if runeCount <= maxLen {
		return text
	}

	runes := []rune(text)
	indicatorLen := utf8.RuneCountInString(DefaultIndicator)
	if maxLen <= indicatorLen {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-indicatorLen]) + DefaultIndicator
}
