package punkt

// ByteOffset is a half-open [Start, End) byte range into the document a
// SentenceTokenizer segmented.
type ByteOffset struct {
	Start int
	End   int
}

// SentenceTokenizer drives C3 and C4 together with the first- and
// second-pass annotators over a trained TrainingData to split a document
// into sentences, per §4.8.
type SentenceTokenizer struct {
	params Params
	data   TrainingData
}

// NewSentenceTokenizer returns a SentenceTokenizer reading data under
// params.
func NewSentenceTokenizer(params Params, data TrainingData) *SentenceTokenizer {
	return &SentenceTokenizer{params: params, data: data}
}

// TokenizeBytes returns every sentence in doc as a byte-offset range.
func (st *SentenceTokenizer) TokenizeBytes(doc string) []ByteOffset {
	var offsets []ByteOffset

	scanner := newPeriodContextScanner(st.params, doc)
	start := 0

	var prev Token
	havePrev := false

	for {
		region, ok := scanner.Next()
		if !ok {
			break
		}

		wscan := newWordScanner(st.params, region.slice)
		hadBreak := false

		for {
			cur, ok := wscan.Next()
			if !ok {
				break
			}

			FirstPassAnnotate(&cur, st.data, st.params)

			if havePrev {
				secondPassAnnotate(&cur, &prev, st.data, st.params)
			}

			brokeHere := havePrev && prev.IsSentenceBreak()
			prev = cur
			havePrev = true

			if brokeHere {
				hadBreak = true
				break
			}
		}

		if !hadBreak {
			continue
		}

		var end, nextStart int
		if region.nextTokStart == region.sliceEnd {
			nextStart = region.sliceEnd - region.lastCharLen
			end = nextStart
		} else {
			end = region.wsStart
			nextStart = region.nextTokStart
		}

		offsets = append(offsets, ByteOffset{Start: start, End: end})
		start = nextStart
	}

	if start < len(doc) {
		offsets = append(offsets, ByteOffset{Start: start, End: len(doc)})
	}

	return offsets
}

// Tokenize returns every sentence in doc as a string slice of doc.
func (st *SentenceTokenizer) Tokenize(doc string) []string {
	offsets := st.TokenizeBytes(doc)
	sentences := make([]string, len(offsets))
	for i, off := range offsets {
		sentences[i] = doc[off.Start:off.End]
	}
	return sentences
}
