package web2llm

import "strings"

// StrategyID identifies a Markdown conversion strategy.
type StrategyID string

// Conversion strategies in priority order.
const (
	StrategyLibrary    StrategyID = "library"
	StrategyStructural StrategyID = "structural"
	StrategyPlainText  StrategyID = "plaintext"
)

// Candidate is one strategy's proposed Markdown output, subject to
// comparison and selection. Candidates are immutable once produced.
type Candidate struct {
	Strategy   StrategyID
	Markdown   string
	TextLength int
	MarkupFree bool
}

// NewCandidate builds a Candidate from a strategy's markdown output,
// deriving the quality attributes used during selection. Any remaining
// opening angle bracket disqualifies a candidate from being markup free.
func NewCandidate(strategy StrategyID, markdown string) Candidate {
	return Candidate{
		Strategy:   strategy,
		Markdown:   markdown,
		TextLength: len(markdown),
		MarkupFree: !strings.Contains(markdown, "<"),
	}
}

// SelectCandidate picks the final Markdown between the library candidate and
// the structural (or plain-text) candidate, both already sanitized.
//
// The library candidate wins only when it is strictly longer and markup
// free. "Longest wins" can pick a longer but noisier result; this matches
// the observed behavior of the system and is preserved rather than
// corrected.
func SelectCandidate(library, structural Candidate) Candidate {
	if library.TextLength > structural.TextLength && library.MarkupFree {
		return library
	}
	return structural
}
