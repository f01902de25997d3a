package punkt

import "unicode/utf8"

// periodContextRegion is one windowed slice yielded by periodContextScanner:
// a substring spanning from a region start through a sentence-ending
// character and the token that immediately follows the whitespace after it.
type periodContextRegion struct {
	slice        string
	nextTokStart int
	wsStart      int
	sliceEnd     int
	lastCharLen  int
}

// periodContextScanner streams period-context regions per §4.3. It is a
// single-pass, pull-based iterator positioned over doc.
type periodContextScanner struct {
	doc    string
	pos    int
	params Params
}

func newPeriodContextScanner(params Params, doc string) *periodContextScanner {
	return &periodContextScanner{doc: doc, params: params}
}

const (
	pcSentEnd = 1 << iota
	pcToknBeg
	pcCaptTok
	pcUpdtStt
	pcUpdtRet
)

// Next advances the scanner and returns the next region, or ok=false when
// the document is exhausted.
func (s *periodContextScanner) Next() (periodContextRegion, bool) {
	astart := s.pos
	wstart := s.pos
	nstart := s.pos
	var state uint8

	emit := func(end int) periodContextRegion {
		if state&pcUpdtRet != 0 {
			s.pos = nstart
		}
		_, lastCharLen := utf8.DecodeLastRuneInString(s.doc[astart:end])
		return periodContextRegion{
			slice:        s.doc[astart:end],
			nextTokStart: nstart,
			wsStart:      wstart,
			sliceEnd:     end,
			lastCharLen:  lastCharLen,
		}
	}

	for s.pos < len(s.doc) {
		r, size := utf8.DecodeRuneInString(s.doc[s.pos:])

		switch {
		case s.params.isSentenceEnding(r):
			state |= pcSentEnd
			if state&pcUpdtStt != 0 {
				astart = s.pos
				state &^= pcUpdtStt
			}
			if state&pcCaptTok != 0 {
				state |= pcUpdtRet
			}

		case state&pcSentEnd == 0:
			if isWhitespaceRune(r) {
				state |= pcUpdtStt
			} else if state&pcUpdtStt != 0 {
				astart = s.pos
				state &^= pcUpdtStt
			}

		case state&pcSentEnd != 0 && state&pcToknBeg == 0:
			switch {
			case isWhitespaceRune(r):
				state |= pcToknBeg
				wstart = s.pos
			case s.params.isNonword(r):
				s.pos += size
				nstart = s.pos

				if isTrueEnd, resumePos := s.lookaheadIsToken(); isTrueEnd {
					end := s.pos
					return emit(end), true
				} else {
					s.pos = resumePos
					continue
				}
			case !s.params.isSentenceEnding(r):
				state &^= pcSentEnd
			}

		case state&pcSentEnd != 0 && state&pcToknBeg != 0 && state&pcCaptTok == 0:
			if !isWhitespaceRune(r) {
				nstart = s.pos
				state |= pcCaptTok
			}

		case state&pcCaptTok != 0 && isWhitespaceRune(r):
			end := s.pos
			region := emit(end)
			if state&pcUpdtRet == 0 {
				s.pos += size
			}
			return region, true
		}

		s.pos += size
	}

	return periodContextRegion{}, false
}

// lookaheadIsToken scans ahead from the scanner's current position to
// disambiguate whether a sentence-ending character truly ended the
// sentence, per §4.3's Lookahead rule. Only a whitespace met first means the
// original sentence-ending character was the true sentence end
// (isTrueEnd=true, emit now). If a further sentence-ending character is met
// whose following character is whitespace or non-word, that is NOT a true
// end of the first character — the scan must reposition to that second
// sentence-ender and keep scanning from there without emitting
// (isTrueEnd=false, resumePos at that character). The same applies if the
// document is exhausted without either signal: isTrueEnd=false, resumePos
// at the end of the document.
func (s *periodContextScanner) lookaheadIsToken() (isTrueEnd bool, resumePos int) {
	pos := s.pos

	for pos < len(s.doc) {
		r, size := utf8.DecodeRuneInString(s.doc[pos:])

		switch {
		case isWhitespaceRune(r):
			return true, pos
		case s.params.isSentenceEnding(r):
			nextPos := pos + size
			if nextPos < len(s.doc) {
				nr, _ := utf8.DecodeRuneInString(s.doc[nextPos:])
				if isWhitespaceRune(nr) || s.params.isNonword(nr) {
					return false, pos
				}
			}
		}

		pos += size
	}

	return false, pos
}
