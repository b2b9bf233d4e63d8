package truncate

import (
	"fmt"

	"github.com/mpalmer79/agentforge-sub001/tokens"
)

// Strategy defines which part of oversized text is discarded.
type Strategy int

const (
	// End removes content from the end (default).
	End Strategy = iota

	// Middle removes content from the middle, keeping start and end.
	Middle

	// Smart removes content from the end but prefers cutting at a
	// sentence boundary.
	Smart
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case End:
		return "end"
	case Middle:
		return "middle"
	case Smart:
		return "smart"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "end":
		return End, nil
	case "middle":
		return Middle, nil
	case "smart":
		return Smart, nil
	default:
		return End, newConfigError(CodeUnknownStrategy, fmt.Errorf("%w: %q", ErrUnknownStrategy, name))
	}
}

// DefaultIndicator marks the cut point when text is truncated.
const DefaultIndicator = "..."

// Options configures a truncation. The zero value of each optional field
// selects its named default.
type Options struct {
	// MaxTokens is the token budget the result must fit in.
	MaxTokens int

	// Strategy selects the truncation strategy. Defaults to End.
	Strategy Strategy

	// Model optionally selects the counting heuristic by model identifier
	// or family name. Empty uses the default ratio.
	Model string

	// PreserveStart is the approximate token budget for the retained
	// prefix with the Middle strategy. Zero means half of MaxTokens.
	PreserveStart int

	// PreserveEnd is the approximate token budget for the retained
	// suffix with the Middle strategy. Zero means half of MaxTokens.
	PreserveEnd int

	// Indicator is spliced in at the cut point. Empty means
	// DefaultIndicator.
	Indicator string
}

// Result reports the outcome of a truncation.
type Result struct {
	// Text is the truncated text, or the input byte-for-byte when no
	// truncation was needed.
	Text string

	// Truncated reports whether any content was removed.
	Truncated bool

	// OriginalTokens is the estimated token count of the input.
	OriginalTokens int

	// FinalTokens is the estimated token count of Text.
	FinalTokens int
}

// Truncator truncates text to fit within token budgets.
type Truncator struct {
	counter       tokens.Counter
	strategy      Strategy
	indicator     string
	preserveStart int
	preserveEnd   int
}

// New creates a truncator from the given options. It returns a
// configuration error if the strategy is unrecognized or the preserve
// bounds are negative.
func New(opts Options) (*Truncator, error) {
	switch opts.Strategy {
	case End, Middle, Smart:
	default:
		return nil, newConfigError(CodeUnknownStrategy, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(opts.Strategy)))
	}
	if opts.PreserveStart < 0 || opts.PreserveEnd < 0 {
		return nil, newConfigError(CodeNegativePreserve,
			fmt.Errorf("%w: start %d, end %d", ErrNegativePreserve, opts.PreserveStart, opts.PreserveEnd))
	}

	indicator := opts.Indicator
	if indicator == "" {
		indicator = DefaultIndicator
	}

	return &Truncator{
		counter:       tokens.GetTokenCounter(opts.Model),
		strategy:      opts.Strategy,
		indicator:     indicator,
		preserveStart: opts.PreserveStart,
		preserveEnd:   opts.PreserveEnd,
	}, nil
}

// WithCounter sets a custom token counter.
func (t *Truncator) WithCounter(counter tokens.Counter) *Truncator {
	t.counter = counter
	return t
}

// Truncate reduces the text to fit within maxTokens.
//
// Text that already fits is returned byte-for-byte with Truncated false
// and no indicator. Otherwise the result satisfies
// FinalTokens <= maxTokens, with the indicator's own cost budgeted before
// content is sliced. A maxTokens <= 0 budget degenerates to the indicator
// alone.
func (t *Truncator) Truncate(text string, maxTokens int) Result {
	original := t.counter.Count(text)
	if original <= maxTokens {
		return Result{
			Text:           text,
			OriginalTokens: original,
			FinalTokens:    original,
		}
	}

	var out string
	switch {
	case maxTokens <= 0:
		out = t.indicator
	case t.strategy == Middle:
		out = t.truncateMiddle(text, maxTokens)
	case t.strategy == Smart:
		out = t.truncateSmart(text, maxTokens)
	default:
		out = t.truncateEnd(text, maxTokens)
	}

	return Result{
		Text:           out,
		Truncated:      true,
		OriginalTokens: original,
		FinalTokens:    t.counter.Count(out),
	}
}

// Indicator returns the truncator's cut-point indicator.
func (t *Truncator) Indicator() string {
	return t.indicator
}

// Strategy returns the truncator's strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// TruncateToTokens truncates text to fit opts.MaxTokens using opts. It is
// the one-shot form of New plus Truncate.
func TruncateToTokens(text string, opts Options) (Result, error) {
	tr, err := New(opts)
	if err != nil {
		return Result{}, err
	}
	return tr.Truncate(text, opts.MaxTokens), nil
}
