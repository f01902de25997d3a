package punkt

import (
	"strings"
	"unicode/utf8"
)

// orthoPosition is a token's position within the orthographic context walk
// of §4.7.3: whether it opens a paragraph, sits mid-text, or its position is
// unknown because a single newline intervened.
type orthoPosition uint8

const (
	orthoInitial orthoPosition = iota
	orthoInternal
	orthoUnknown
)

func (p orthoPosition) asByte() uint8 {
	switch p {
	case orthoInitial:
		return 0b01000000
	case orthoInternal:
		return 0b00100000
	default:
		return 0b01100000
	}
}

// Orthographic context bits, per §4.7.3.
const (
	BegUC uint8 = 0b010
	MidUC uint8 = 0b100
	UnkUC uint8 = 0b1000
	BegLC uint8 = 0b10000
	MidLC uint8 = 0b100000
	UnkLC uint8 = 0b1000000

	// OrtUC aggregates every uppercase-position bit.
	OrtUC = BegUC | MidUC | UnkUC
	// OrtLC aggregates every lowercase-position bit.
	OrtLC = BegLC | MidLC | UnkLC
)

// orthoMap mirrors the source algorithm's sparse lookup table: only the six
// (position, case) combinations where case is known (Upper or Lower) yield a
// flag. A combination with LetterCaseUnknown, or any key absent from this
// map, contributes no flag.
var orthoMap = map[uint8]uint8{
	orthoInitial.asByte() | LetterCaseUpper.asByte():  BegUC,
	orthoInternal.asByte() | LetterCaseUpper.asByte(): MidUC,
	orthoUnknown.asByte() | LetterCaseUpper.asByte():  UnkUC,
	orthoInitial.asByte() | LetterCaseLower.asByte():  BegLC,
	orthoInternal.asByte() | LetterCaseLower.asByte(): MidLC,
	orthoUnknown.asByte() | LetterCaseLower.asByte():  UnkLC,
}

// orthographicFlag looks up the context flag for a (position, case) pair.
func orthographicFlag(pos orthoPosition, c LetterCase) uint8 {
	return orthoMap[pos.asByte()|c.asByte()]
}

// FirstPassAnnotate mutates token's sentence-break and abbreviation flags
// per §4.6, using only the training data accumulated so far. It is pure with
// respect to everything else: it neither reads nor writes token order.
func FirstPassAnnotate(token *Token, data TrainingData, params Params) {
	if firstChar, size := utf8.DecodeRuneInString(token.Text); size == len(token.Text) &&
		params.isSentenceEnding(firstChar) {
		token.SetSentenceBreak(true)
		return
	}

	if !token.HasFinalPeriod() || token.IsEllipsis() {
		return
	}

	splitSuffix := token.Text
	if i := strings.LastIndexByte(token.Text, '-'); i >= 0 {
		splitSuffix = token.Text[i+1:]
	}
	isSplitAbbrev := data.ContainsAbbrev(splitSuffix)

	if isSplitAbbrev || data.ContainsAbbrev(token.TypWithoutPeriod()) {
		token.SetAbbrev(true)
	} else {
		token.SetSentenceBreak(true)
	}
}

// orthographicHeuristic implements §4.8.2. The second return value models
// the source's three-valued decision (Some(bool) or None) as an "ok" flag:
// when ok is false, the heuristic made no determination.
func orthographicHeuristic(cur Token, data TrainingData, params Params) (decision, ok bool) {
	firstChar, _ := utf8.DecodeRuneInString(cur.Text)
	if params.isPunctuation(firstChar) {
		return false, true
	}

	ctxt := data.OrthographicContext(cur.TypWithoutBreakOrPeriod())

	switch {
	case cur.IsUppercase() && ctxt&OrtLC != 0 && ctxt&MidUC == 0:
		return true, true
	case cur.IsLowercase() && (ctxt&OrtUC != 0 || ctxt&BegLC == 0):
		return false, true
	default:
		return false, false
	}
}

// secondPassAnnotate implements §4.8.1: it reconsiders prev's sentence-break
// and abbreviation status in light of the token that immediately follows it.
func secondPassAnnotate(cur, prev *Token, data TrainingData, params Params) {
	if data.ContainsCollocation(prev.TypWithoutPeriod(), cur.TypWithoutBreakOrPeriod()) {
		prev.SetAbbrev(true)
		prev.SetSentenceBreak(false)
		return
	}

	if (prev.IsAbbrev() || prev.IsEllipsis()) && !prev.IsInitial() {
		if dec, ok := orthographicHeuristic(*cur, data, params); ok && dec {
			prev.SetSentenceBreak(true)
			return
		}
		if cur.IsUppercase() && data.ContainsSentenceStarter(cur.TypWithoutBreakOrPeriod()) {
			prev.SetSentenceBreak(true)
			return
		}
	}

	if prev.IsInitial() || prev.IsNumeric() {
		dec, ok := orthographicHeuristic(*cur, data, params)
		switch {
		case ok && !dec:
			prev.SetSentenceBreak(false)
			prev.SetAbbrev(true)
		case !ok && prev.IsInitial() && cur.IsUppercase() &&
			data.OrthographicContext(cur.TypWithoutBreakOrPeriod())&OrtLC == 0:
			prev.SetSentenceBreak(false)
			prev.SetAbbrev(true)
		}
	}
}
