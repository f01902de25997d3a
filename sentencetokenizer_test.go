package punkt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentenceTokenizerSplitsSimpleSentences(t *testing.T) {
	t.Parallel()

	st := NewSentenceTokenizer(StandardParams(), NewTrainingData())
	sentences := st.Tokenize("Hello world. Foo bar.")
	require.Equal(t, []string{"Hello world.", "Foo bar."}, sentences)
}

func TestSentenceTokenizerWithNoSentenceEndingReturnsWholeDoc(t *testing.T) {
	t.Parallel()

	st := NewSentenceTokenizer(StandardParams(), NewTrainingData())
	sentences := st.Tokenize("no terminator here")
	require.Equal(t, []string{"no terminator here"}, sentences)
}

func TestSentenceTokenizerSuppressesBreakOnTrainedAbbreviation(t *testing.T) {
	t.Parallel()

	data := NewTrainingData()
	data.InsertAbbrev("dr")

	st := NewSentenceTokenizer(StandardParams(), data)
	sentences := st.Tokenize("Dr. Smith went home. He left.")
	require.Equal(t, []string{"Dr. Smith went home.", "He left."}, sentences)
}

func TestSentenceTokenizerSplitsOnUntrainedAbbreviationCandidate(t *testing.T) {
	t.Parallel()

	st := NewSentenceTokenizer(StandardParams(), NewTrainingData())
	sentences := st.Tokenize("Dr. Smith went home. He left.")
	require.Equal(t, []string{"Dr.", "Smith went home.", "He left."}, sentences)
}

func TestSentenceTokenizerBytesMatchTokenizedStrings(t *testing.T) {
	t.Parallel()

	doc := "Hello world. Foo bar."
	st := NewSentenceTokenizer(StandardParams(), NewTrainingData())

	offsets := st.TokenizeBytes(doc)
	require.Len(t, offsets, 2)

	for i, sentence := range st.Tokenize(doc) {
		require.Equal(t, sentence, doc[offsets[i].Start:offsets[i].End])
	}
}
