package punkt

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Trainer accumulates statistics across one or more documents and, once
// Finalize is called, promotes candidates into a TrainingData's four tables
// per §4.7. A Trainer is single-use per TrainingData: construct one, call
// Train for every document, then Finalize once.
type Trainer struct {
	params Params

	typeFDist         *freqDist[string]
	sentenceStarterFD *freqDist[string]
	collocationFD     *freqDist[collocation]

	periodTokenCount   float64
	sentenceBreakCount float64
}

// NewTrainer returns a Trainer configured with params.
func NewTrainer(params Params) *Trainer {
	return &Trainer{
		params:            params,
		typeFDist:         newFreqDist[string](),
		sentenceStarterFD: newFreqDist[string](),
		collocationFD:     newFreqDist[collocation](),
	}
}

// Train runs one pass of §4.7.1 over doc, updating data's abbreviation table
// in place and accumulating internal counts that Finalize later consults.
// It may be called multiple times, once per training document.
func (tr *Trainer) Train(doc string, data TrainingData) {
	scanner := newWordScanner(tr.params, doc)
	var tokens []Token
	for {
		tok, ok := scanner.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}

	for _, tok := range tokens {
		if tok.HasFinalPeriod() {
			tr.periodTokenCount++
		}
		tr.typeFDist.insert(tok.Typ())
	}

	tr.reclassifyAbbrevTypes(data)

	for i := range tokens {
		FirstPassAnnotate(&tokens[i], data, tr.params)
	}

	tr.annotateOrthographicContext(tokens, data)

	for _, tok := range tokens {
		if tok.IsSentenceBreak() {
			tr.sentenceBreakCount++
		}
	}

	for i := 0; i+1 < len(tokens); i++ {
		lt, rt := &tokens[i], tokens[i+1]
		if !lt.HasFinalPeriod() {
			continue
		}

		if tr.isRareAbbrevType(*lt, rt, data) {
			data.InsertAbbrev(lt.TypWithoutPeriod())
		}

		if lt.IsSentenceBreak() && rt.IsAlphabetic() && !lt.IsNumeric() && !lt.IsInitial() {
			tr.sentenceStarterFD.insert(rt.Typ())
		}

		if tr.isCollocationCandidate(*lt, rt) {
			tr.collocationFD.insert(collocation{
				Left:  lt.TypWithoutPeriod(),
				Right: rt.TypWithoutBreakOrPeriod(),
			})
		}
	}
}

// reclassifyAbbrevTypes implements §4.7.2: it walks every type seen so far
// and promotes or demotes it against data's abbreviation table.
func (tr *Trainer) reclassifyAbbrevTypes(data TrainingData) {
	for _, typ := range tr.typeFDist.keys() {
		if !isTypeNonPunctuation(typ) || typ == numberSentinel {
			continue
		}

		typWithoutPeriod := strings.TrimSuffix(typ, ".")
		typWithPeriod := typWithoutPeriod + "."
		hasFinalPeriod := strings.HasSuffix(typ, ".")
		isAbbrev := data.ContainsAbbrev(typWithoutPeriod)
		if hasFinalPeriod == isAbbrev {
			continue
		}

		numPeriods := float64(1 + strings.Count(typWithoutPeriod, "."))
		numNonperiods := float64(len([]rune(typWithoutPeriod))) - numPeriods + 1

		cWith := tr.typeFDist.get(typWithPeriod)
		cWithout := tr.typeFDist.get(typWithoutPeriod)

		ll := dunningLogLikelihood(cWith+cWithout, tr.periodTokenCount, cWith, tr.typeFDist.sumCounts())

		fLength := math.Exp(-numNonperiods)
		fPenalty := 0.0
		if !tr.params.IgnoreAbbrevPenalty {
			fPenalty = math.Pow(numNonperiods, -cWithout)
		}
		score := ll * fLength * fPenalty * numPeriods

		if score >= tr.params.AbbrevLowerBound && hasFinalPeriod {
			data.InsertAbbrev(typWithoutPeriod)
		} else if score < tr.params.AbbrevLowerBound && isAbbrev {
			data.RemoveAbbrev(typWithoutPeriod)
		}
	}
}

// isTypeNonPunctuation reports whether typ contains at least one
// alphanumeric rune, used to exclude pure-punctuation types from
// reclassification.
func isTypeNonPunctuation(typ string) bool {
	for _, r := range typ {
		if r != '.' && r != ',' && r != ';' && r != ':' && r != '!' && r != '?' &&
			r != '"' && r != '\'' && r != '(' && r != ')' && r != '[' && r != ']' &&
			r != '{' && r != '}' && r != '-' {
			return true
		}
	}
	return false
}

// dunningLogLikelihood computes the source algorithm's log-likelihood test
// statistic, per §4.7.2.
func dunningLogLikelihood(a, b, ab, n float64) float64 {
	const p2 = 0.99
	p1 := b / n

	null := ab*math.Log(p1) + (a-ab)*math.Log(1-p1)
	alt := ab*math.Log(p2) + (a-ab)*math.Log(1-p2)

	return -2 * (null - alt)
}

// colLogLikelihood computes the source algorithm's collocation/sentence
// starter log-likelihood test statistic, per §4.7.6.
func colLogLikelihood(a, b, ab, n float64) float64 {
	p := b / n
	p1 := ab / a
	p2 := (b - ab) / (n - a)

	s1 := ab*math.Log(p) + (a-ab)*math.Log(1-p)
	s2 := (b-ab)*math.Log(p) + (n-a-b+ab)*math.Log(1-p)

	s3 := 0.0
	if a != ab {
		s3 = ab*math.Log(p1) + (a-ab)*math.Log(1-p1)
	}

	s4 := 0.0
	if b != ab {
		s4 = (b-ab)*math.Log(p2) + (n-a-b+ab)*math.Log(1-p2)
	}

	return -2 * (s1 + s2 - s3 - s4)
}

// annotateOrthographicContext implements §4.7.3: it walks tokens in order,
// tracking the running orthographic position, and inserts the resulting
// context mask for each token into data.
func (tr *Trainer) annotateOrthographicContext(tokens []Token, data TrainingData) {
	ctxtPos := orthoInternal

	for _, tok := range tokens {
		if tok.IsParagraphStart() && ctxtPos != orthoUnknown {
			ctxtPos = orthoInitial
		}
		if tok.IsNewlineStart() && ctxtPos == orthoInternal {
			ctxtPos = orthoUnknown
		}

		flag := orthographicFlag(ctxtPos, tok.FirstCase())
		if flag != 0 {
			data.InsertOrthographicContext(tok.TypWithoutBreakOrPeriod(), flag)
		}

		switch {
		case tok.IsSentenceBreak():
			if tok.IsNumeric() || tok.IsInitial() {
				ctxtPos = orthoUnknown
			} else {
				ctxtPos = orthoInitial
			}
		case tok.IsEllipsis() || tok.IsAbbrev():
			ctxtPos = orthoUnknown
		default:
			ctxtPos = orthoInternal
		}
	}
}

// isRareAbbrevType implements the rare-abbreviation predicate of §4.7.4.
func (tr *Trainer) isRareAbbrevType(t0 Token, t1 Token, data TrainingData) bool {
	if t0.IsAbbrev() || !t0.IsSentenceBreak() {
		return false
	}

	typ := t0.TypWithoutBreakOrPeriod()
	trimmed := typ
	if runes := []rune(typ); len(runes) > 0 {
		trimmed = string(runes[:len(runes)-1])
	}
	count := tr.typeFDist.get(typ) + tr.typeFDist.get(trimmed)
	if count >= tr.params.AbbrevUpperBound || data.ContainsAbbrev(t0.Typ()) {
		return false
	}

	firstChar, _ := utf8.DecodeRuneInString(t1.Typ())
	if tr.params.isInternalPunctuation(firstChar) {
		return true
	}

	if t1.IsLowercase() {
		ctxt := data.OrthographicContext(t1.TypWithoutBreakOrPeriod())
		if ctxt&BegUC != 0 && ctxt&MidUC == 0 {
			return true
		}
	}

	return false
}

// isCollocationCandidate implements the collocation candidate predicate of
// §4.7.5.
func (tr *Trainer) isCollocationCandidate(t0, t1 Token) bool {
	if !t0.IsNonPunct() || !t1.IsNonPunct() {
		return false
	}

	switch {
	case tr.params.IncludeAllCollocations:
		return true
	case tr.params.IncludeAbbrevCollocations && t0.IsAbbrev():
		return true
	case t0.IsSentenceBreak() && (t0.IsNumeric() || t0.IsInitial()):
		return true
	default:
		return false
	}
}

// Finalize implements §4.7.6: it promotes sentence-starter and collocation
// candidates accumulated across every prior Train call into data's tables.
// It must be called exactly once, after the last Train call and before data
// is used for segmentation.
func (tr *Trainer) Finalize(data TrainingData) {
	sumCounts := tr.typeFDist.sumCounts()

	for _, tok := range tr.sentenceStarterFD.keys() {
		ss := tr.sentenceStarterFD.get(tok)
		tokWithoutPeriod := strings.TrimSuffix(tok, ".")
		typ := tr.typeFDist.get(tokWithoutPeriod+".") + tr.typeFDist.get(tokWithoutPeriod)
		if typ < ss {
			continue
		}

		ll := colLogLikelihood(tr.sentenceBreakCount, typ, ss, sumCounts)
		if ll >= tr.params.SentenceStarterLowerBound && sumCounts/tr.sentenceBreakCount > typ/ss {
			data.InsertSentenceStarter(tok)
		}
	}

	for _, col := range tr.collocationFD.keys() {
		if data.ContainsSentenceStarter(col.Right) {
			continue
		}

		count := tr.collocationFD.get(col)
		leftWithoutPeriod := strings.TrimSuffix(col.Left, ".")
		rightWithoutPeriod := strings.TrimSuffix(col.Right, ".")
		lc := tr.typeFDist.get(leftWithoutPeriod) + tr.typeFDist.get(leftWithoutPeriod+".")
		rc := tr.typeFDist.get(rightWithoutPeriod) + tr.typeFDist.get(rightWithoutPeriod+".")

		if lc <= 1 || rc <= 1 {
			continue
		}
		if count <= tr.params.CollocationFrequencyLowerBound || count > math.Min(lc, rc) {
			continue
		}

		ll := colLogLikelihood(lc, rc, count, sumCounts)
		if ll >= tr.params.CollocationLowerBound && sumCounts/lc > rc/count {
			data.InsertCollocation(col.Left, col.Right)
		}
	}
}
