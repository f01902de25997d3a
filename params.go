// Package punkt implements the Punkt unsupervised sentence boundary detection
// algorithm of Kiss & Strunk: a scanning tokenizer, a statistical trainer, and
// a two-pass sentence classifier that together segment raw text into
// sentences without a supervised parser.
package punkt

// Params bundles the character classes and numeric thresholds that the
// scanners, trainer, and classifier read. It stands in for the source
// algorithm's family of compile-time parameter traits: a plain struct value
// passed explicitly, since nothing here needs to vary per call site at a
// granularity finer than "which language/threshold set is active".
type Params struct {
	// SentenceEndings are the characters that can end a sentence.
	SentenceEndings map[rune]struct{}
	// InternalPunctuation marks punctuation that usually stays mid-sentence.
	InternalPunctuation map[rune]struct{}
	// Punctuation is the full punctuation set consulted by the orthographic
	// heuristic.
	Punctuation map[rune]struct{}
	// NonwordChars are single characters the word scanner emits on their own
	// rather than folding into a captured token.
	NonwordChars map[rune]struct{}
	// NonprefixChars never begin a captured token.
	NonprefixChars map[rune]struct{}

	// AbbrevLowerBound is the minimum Dunning log-likelihood score required
	// to promote a type to an abbreviation.
	AbbrevLowerBound float64
	// AbbrevUpperBound is the count at or above which the rare-abbreviation
	// rule does not fire.
	AbbrevUpperBound float64
	// IgnoreAbbrevPenalty drops the length penalty term from the abbrev
	// score when true.
	IgnoreAbbrevPenalty bool
	// CollocationLowerBound is the minimum log-likelihood to keep a
	// collocation.
	CollocationLowerBound float64
	// SentenceStarterLowerBound is the minimum log-likelihood to keep a
	// sentence starter.
	SentenceStarterLowerBound float64
	// IncludeAllCollocations broadens the collocation candidate set to every
	// adjacent non-punctuation pair.
	IncludeAllCollocations bool
	// IncludeAbbrevCollocations includes abbreviation-led pairs as
	// collocation candidates.
	IncludeAbbrevCollocations bool
	// CollocationFrequencyLowerBound is the raw count floor a candidate pair
	// must clear.
	CollocationFrequencyLowerBound float64
}

func runeSet(rs ...rune) map[rune]struct{} {
	m := make(map[rune]struct{}, len(rs))
	for _, r := range rs {
		m[r] = struct{}{}
	}
	return m
}

// StandardParams returns the default parameter bundle used by NLTK-derived
// Punkt implementations.
func StandardParams() Params {
	return Params{
		SentenceEndings:     runeSet('.', '?', '!'),
		InternalPunctuation: runeSet(',', ':', ';', '—'),
		Punctuation:         runeSet(';', ':', ',', '.', '!', '?'),
		NonwordChars: runeSet(
			'?', '!', ')', '"', ';', '}', ']', '*', ':', '@', '\'', '(', '{', '[',
		),
		NonprefixChars: runeSet(
			'(', '"', '`', '{', '[', ':', ';', '&', '#', '*', '@', ')', '}', ']', '-', ',',
		),

		AbbrevLowerBound:               0.3,
		AbbrevUpperBound:               5.0,
		IgnoreAbbrevPenalty:            false,
		CollocationLowerBound:          7.88,
		SentenceStarterLowerBound:      30.0,
		IncludeAllCollocations:         false,
		IncludeAbbrevCollocations:      false,
		CollocationFrequencyLowerBound: 1.0,
	}
}

func (p Params) isSentenceEnding(r rune) bool {
	_, ok := p.SentenceEndings[r]
	return ok
}

func (p Params) isInternalPunctuation(r rune) bool {
	_, ok := p.InternalPunctuation[r]
	return ok
}

func (p Params) isPunctuation(r rune) bool {
	_, ok := p.Punctuation[r]
	return ok
}

func (p Params) isNonword(r rune) bool {
	_, ok := p.NonwordChars[r]
	return ok
}

func (p Params) isNonprefix(r rune) bool {
	_, ok := p.NonprefixChars[r]
	return ok
}
