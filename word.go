package punkt

import (
	"unicode"
	"unicode/utf8"
)

// wordScanner is a single-pass, pull-based iterator over a document slice
// that yields Tokens per §4.4. It never buffers more than the token
// currently under capture.
type wordScanner struct {
	doc    string
	pos    int
	params Params

	newlineStart bool
	paragphStart bool
}

// newWordScanner returns a scanner positioned at the start of doc.
func newWordScanner(params Params, doc string) *wordScanner {
	return &wordScanner{doc: doc, params: params}
}

// Next advances the scanner and returns the next Token, or ok=false when the
// document is exhausted.
func (s *wordScanner) Next() (Token, bool) {
	const (
		captureStart = 1 << iota
		captureComma
	)

	var state uint8
	tstart := s.pos

	emit := func(end int) Token {
		nlStart, pgStart := s.newlineStart, s.paragphStart
		s.newlineStart, s.paragphStart = false, false
		return mustNewToken(s.params, s.doc[tstart:end], false, pgStart, nlStart)
	}

	for s.pos < len(s.doc) {
		r, size := utf8.DecodeRuneInString(s.doc[s.pos:])

		if r == '.' || r == '-' {
			if span := matchMultiChar(s.doc, s.pos); span > 0 {
				if state&captureStart != 0 {
					end := s.pos
					if state&captureComma != 0 {
						end--
					}
					tok := emit(end)
					s.pos += span
					return tok, true
				}

				raw := s.doc[s.pos : s.pos+span]
				isEllipsis := raw[len(raw)-1] == '.'
				nlStart, pgStart := s.newlineStart, s.paragphStart
				s.newlineStart, s.paragphStart = false, false
				tok := mustNewToken(s.params, raw, isEllipsis, pgStart, nlStart)
				s.pos += span
				return tok, true
			}
		}

		switch {
		case state&captureStart != 0:
			switch {
			case isWhitespaceRune(r) || s.params.isNonword(r):
				end := s.pos
				if state&captureComma != 0 {
					end--
				}
				tok := emit(end)
				if isWhitespaceRune(r) {
					s.advanceNewline(r)
					s.pos += size
				}
				return tok, true
			case r == ',':
				state |= captureComma
				s.pos += size
			default:
				state &^= captureComma
				s.pos += size
			}
		default:
			switch {
			case isWhitespaceRune(r):
				s.advanceNewline(r)
				s.pos += size
			case s.params.isNonprefix(r):
				nlStart, pgStart := s.newlineStart, s.paragphStart
				s.newlineStart, s.paragphStart = false, false
				tok := mustNewToken(s.params, s.doc[s.pos:s.pos+size], false, pgStart, nlStart)
				s.pos += size
				return tok, true
			default:
				tstart = s.pos
				state |= captureStart
				s.pos += size
			}
		}
	}

	if state&captureStart != 0 {
		end := s.pos
		if state&captureComma != 0 {
			end--
		}
		if end > tstart {
			return emit(end), true
		}
	}

	return Token{}, false
}

func (s *wordScanner) advanceNewline(r rune) {
	if r != '\n' {
		return
	}
	if s.newlineStart {
		s.paragphStart = true
	} else {
		s.newlineStart = true
	}
}

func isWhitespaceRune(r rune) bool {
	return unicode.IsSpace(r)
}

// matchMultiChar implements the multi-char recognizer from §4.4: starting at
// p, it recognizes runs of consecutive dashes, or alternating period/space
// runs (ellipses, including ". . ."). It returns the length of the matched
// span in bytes, or 0 if no span of at least two characters matched. A
// trailing space is trimmed from the match.
func matchMultiChar(doc string, p int) int {
	if dashLen := matchDashes(doc, p); dashLen > 0 {
		return dashLen
	}
	return matchEllipsis(doc, p)
}

func matchDashes(doc string, p int) int {
	n := 0
	for p+n < len(doc) && doc[p+n] == '-' {
		n++
	}
	if n >= 2 {
		return n
	}
	return 0
}

func matchEllipsis(doc string, p int) int {
	i := p
	count := 0
	lastWasSpace := false

	for i < len(doc) {
		switch doc[i] {
		case '.':
			i++
			count++
			lastWasSpace = false
		case ' ':
			if count == 0 {
				return 0
			}
			// Only continue through a space if another period follows it;
			// otherwise this space terminates (and is trimmed from) the span.
			if i+1 < len(doc) && doc[i+1] == '.' {
				i++
				lastWasSpace = true
				continue
			}
			goto done
		default:
			goto done
		}
	}

done:
	if lastWasSpace {
		i--
	}
	span := i - p
	if span >= 2 {
		return span
	}
	return 0
}
