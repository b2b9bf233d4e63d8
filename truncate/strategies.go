package truncate

import (
	"strings"
	"unicode"
)

// smartLookbackRunes bounds how far the Smart strategy scans backward from
// the hard cut point for a sentence boundary. The fixed window keeps
// worst-case truncation cost linear in text length.
const smartLookbackRunes = 240

// truncateEnd retains the longest prefix that, with the indicator
// appended, still fits the budget.
func (t *Truncator) truncateEnd(text string, maxTokens int) string {
	runes := []rune(text)
	keep := t.longestPrefix(runes, maxTokens, t.indicator)
	if keep == 0 {
		return t.indicatorWithin(maxTokens)
	}
	return string(runes[:keep]) + t.indicator
}

// indicatorWithin returns the indicator if it fits the budget on its own,
// otherwise empty text. A positive budget too small for the indicator
// still has to satisfy the token invariant.
func (t *Truncator) indicatorWithin(maxTokens int) string {
	if t.counter.FitsInLimit(t.indicator, maxTokens) {
		return t.indicator
	}
	return ""
}

// truncateMiddle retains a prefix of roughly preserveStart tokens and a
// suffix of roughly preserveEnd tokens, dropping the interior.
func (t *Truncator) truncateMiddle(text string, maxTokens int) string {
	indicatorTokens := t.counter.Count(t.indicator)
	avail := maxTokens - indicatorTokens
	if avail <= 0 {
		return t.indicatorWithin(maxTokens)
	}

	start := t.preserveStart
	if start == 0 {
		start = maxTokens / 2
	}
	end := t.preserveEnd
	if end == 0 {
		end = maxTokens / 2
	}

	// Shrink both proportionally, keeping their ratio, when the preserve
	// budgets overshoot what the indicator leaves available.
	if sum := start + end; sum > avail {
		start = start * avail / sum
		end = end * avail / sum
	}

	runes := []rune(text)
	prefixLen := t.longestPrefix(runes, start, "")
	suffixLen := t.longestSuffix(runes, end)
	if prefixLen+suffixLen > len(runes) {
		suffixLen = len(runes) - prefixLen
	}

	out := t.spliceMiddle(runes, prefixLen, suffixLen)

	// Independent prefix/suffix/indicator estimates can round a token or
	// two above the combined count; trim until the invariant holds.
	for t.counter.Count(out) > maxTokens && prefixLen+suffixLen > 0 {
		if prefixLen >= suffixLen {
			prefixLen--
		} else {
			suffixLen--
		}
		out = t.spliceMiddle(runes, prefixLen, suffixLen)
	}
	if t.counter.Count(out) > maxTokens {
		return t.indicatorWithin(maxTokens)
	}

	return out
}

func (t *Truncator) spliceMiddle(runes []rune, prefixLen, suffixLen int) string {
	var sb strings.Builder
	sb.WriteString(string(runes[:prefixLen]))
	sb.WriteString(t.indicator)
	sb.WriteString(string(runes[len(runes)-suffixLen:]))
	return sb.String()
}

// truncateSmart computes the End cut point, then prefers the nearest
// sentence boundary within the look-back window.
func (t *Truncator) truncateSmart(text string, maxTokens int) string {
	runes := []rune(text)
	cut := t.longestPrefix(runes, maxTokens, t.indicator)
	if cut == 0 {
		return t.indicatorWithin(maxTokens)
	}

	lookback := smartLookbackRunes
	if lookback > cut {
		lookback = cut
	}

	for i := cut - 1; i >= cut-lookback; i-- {
		if !isSentenceTerminal(runes[i]) {
			continue
		}
		// A boundary counts when the terminal mark is followed by
		// whitespace, by the cut itself (the indicator lands there), or
		// by end-of-string.
		if i+1 >= cut || i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
			return string(runes[:i+1]) + t.indicator
		}
	}

	// No boundary in the window, hard cut.
	return string(runes[:cut]) + t.indicator
}

func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// longestPrefix returns the longest prefix length whose token count, with
// tail appended, stays within limit. The counting heuristic is monotone in
// appended text, so binary search over prefix lengths is valid.
func (t *Truncator) longestPrefix(runes []rune, limit int, tail string) int {
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if t.counter.FitsInLimit(string(runes[:mid])+tail, limit) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}

// longestSuffix returns the longest suffix length whose token count stays
// within limit.
func (t *Truncator) longestSuffix(runes []rune, limit int) int {
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if t.counter.FitsInLimit(string(runes[len(runes)-mid:]), limit) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}
