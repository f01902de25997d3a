package punkt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstPassAnnotateMarksSingleCharSentenceEnding(t *testing.T) {
	t.Parallel()

	tok := mustNewToken(StandardParams(), "!", false, false, false)
	tok.SetSentenceBreak(false)
	FirstPassAnnotate(&tok, NewTrainingData(), StandardParams())
	require.True(t, tok.IsSentenceBreak())
}

func TestFirstPassAnnotateIgnoresTokenWithoutFinalPeriod(t *testing.T) {
	t.Parallel()

	tok := mustNewToken(StandardParams(), "hello", false, false, false)
	FirstPassAnnotate(&tok, NewTrainingData(), StandardParams())
	require.False(t, tok.IsAbbrev())
	require.False(t, tok.IsSentenceBreak())
}

func TestFirstPassAnnotateIgnoresEllipsis(t *testing.T) {
	t.Parallel()

	tok := mustNewToken(StandardParams(), "...", true, false, false)
	FirstPassAnnotate(&tok, NewTrainingData(), StandardParams())
	require.False(t, tok.IsAbbrev())
	require.False(t, tok.IsSentenceBreak())
}

func TestFirstPassAnnotateMarksKnownAbbrev(t *testing.T) {
	t.Parallel()

	data := NewTrainingData()
	data.InsertAbbrev("mr")

	tok := mustNewToken(StandardParams(), "Mr.", false, false, false)
	FirstPassAnnotate(&tok, data, StandardParams())
	require.True(t, tok.IsAbbrev())
	require.False(t, tok.IsSentenceBreak())
}

func TestFirstPassAnnotateMarksSentenceBreakForUnknownAbbrev(t *testing.T) {
	t.Parallel()

	tok := mustNewToken(StandardParams(), "hello.", false, false, false)
	FirstPassAnnotate(&tok, NewTrainingData(), StandardParams())
	require.False(t, tok.IsAbbrev())
	require.True(t, tok.IsSentenceBreak())
}

func TestFirstPassAnnotateChecksHyphenSuffixAgainstAbbrevTable(t *testing.T) {
	t.Parallel()

	data := NewTrainingData()
	data.InsertAbbrev("op.")

	tok := mustNewToken(StandardParams(), "co-op.", false, false, false)
	FirstPassAnnotate(&tok, data, StandardParams())
	require.True(t, tok.IsAbbrev())
}

func TestOrthographicHeuristicSkipsPunctuation(t *testing.T) {
	t.Parallel()

	cur := mustNewToken(StandardParams(), ",", false, false, false)
	dec, ok := orthographicHeuristic(cur, NewTrainingData(), StandardParams())
	require.True(t, ok)
	require.False(t, dec)
}

func TestOrthographicHeuristicUppercaseWithLowercaseContextIsTrue(t *testing.T) {
	t.Parallel()

	data := NewTrainingData()
	data.InsertOrthographicContext("the", BegLC)

	cur := mustNewToken(StandardParams(), "The", false, false, false)
	dec, ok := orthographicHeuristic(cur, data, StandardParams())
	require.True(t, ok)
	require.True(t, dec)
}

func TestOrthographicHeuristicUppercaseWithMidUCContextIsUndetermined(t *testing.T) {
	t.Parallel()

	data := NewTrainingData()
	data.InsertOrthographicContext("the", BegLC|MidUC)

	cur := mustNewToken(StandardParams(), "The", false, false, false)
	_, ok := orthographicHeuristic(cur, data, StandardParams())
	require.False(t, ok)
}

func TestOrthographicHeuristicLowercaseWithUppercaseContextIsFalse(t *testing.T) {
	t.Parallel()

	data := NewTrainingData()
	data.InsertOrthographicContext("the", BegUC)

	cur := mustNewToken(StandardParams(), "the", false, false, false)
	dec, ok := orthographicHeuristic(cur, data, StandardParams())
	require.True(t, ok)
	require.False(t, dec)
}

func TestOrthographicHeuristicLowercaseWithNoBegLCIsFalse(t *testing.T) {
	t.Parallel()

	cur := mustNewToken(StandardParams(), "the", false, false, false)
	dec, ok := orthographicHeuristic(cur, NewTrainingData(), StandardParams())
	require.True(t, ok)
	require.False(t, dec)
}

func TestOrthographicHeuristicUndeterminedByDefault(t *testing.T) {
	t.Parallel()

	cur := mustNewToken(StandardParams(), "Smith", false, false, false)
	_, ok := orthographicHeuristic(cur, NewTrainingData(), StandardParams())
	require.False(t, ok)
}

func TestSecondPassAnnotateCollocationForcesAbbrev(t *testing.T) {
	t.Parallel()

	data := NewTrainingData()
	data.InsertCollocation("new", "york")

	prev := mustNewToken(StandardParams(), "new", false, false, false)
	prev.SetSentenceBreak(true)
	cur := mustNewToken(StandardParams(), "York", false, false, false)

	secondPassAnnotate(&cur, &prev, data, StandardParams())
	require.True(t, prev.IsAbbrev())
	require.False(t, prev.IsSentenceBreak())
}

func TestSecondPassAnnotateAbbrevWithDecidedTrueSetsBreak(t *testing.T) {
	t.Parallel()

	data := NewTrainingData()
	data.InsertOrthographicContext("smith", BegLC)

	prev := mustNewToken(StandardParams(), "Mr.", false, false, false)
	prev.SetAbbrev(true)
	prev.SetSentenceBreak(false)
	cur := mustNewToken(StandardParams(), "Smith", false, false, false)

	secondPassAnnotate(&cur, &prev, data, StandardParams())
	require.True(t, prev.IsSentenceBreak())
}

func TestSecondPassAnnotateAbbrevWithDecidedFalseLeavesBreakUnchanged(t *testing.T) {
	t.Parallel()

	data := NewTrainingData()
	data.InsertOrthographicContext("smith", BegUC)

	prev := mustNewToken(StandardParams(), "Mr.", false, false, false)
	prev.SetAbbrev(true)
	prev.SetSentenceBreak(true)
	cur := mustNewToken(StandardParams(), "smith", false, false, false)

	secondPassAnnotate(&cur, &prev, data, StandardParams())
	require.True(t, prev.IsSentenceBreak())
}

func TestSecondPassAnnotateAbbrevFallsBackToSentenceStarter(t *testing.T) {
	t.Parallel()

	data := NewTrainingData()
	data.InsertSentenceStarter("however")

	prev := mustNewToken(StandardParams(), "Mr.", false, false, false)
	prev.SetAbbrev(true)
	prev.SetSentenceBreak(false)
	cur := mustNewToken(StandardParams(), "However", false, false, false)

	secondPassAnnotate(&cur, &prev, data, StandardParams())
	require.True(t, prev.IsSentenceBreak())
}

func TestSecondPassAnnotateAbbrevWithNoEvidenceLeavesBreakUnchanged(t *testing.T) {
	t.Parallel()

	prev := mustNewToken(StandardParams(), "Mr.", false, false, false)
	prev.SetAbbrev(true)
	prev.SetSentenceBreak(false)
	cur := mustNewToken(StandardParams(), "smith", false, false, false)

	secondPassAnnotate(&cur, &prev, NewTrainingData(), StandardParams())
	require.False(t, prev.IsSentenceBreak())
}

func TestSecondPassAnnotateInitialDecidedFalseMarksAbbrev(t *testing.T) {
	t.Parallel()

	prev := mustNewToken(StandardParams(), "A.", false, false, false)
	prev.SetSentenceBreak(true)
	prev.SetAbbrev(false)
	cur := mustNewToken(StandardParams(), "smith", false, false, false)

	secondPassAnnotate(&cur, &prev, NewTrainingData(), StandardParams())
	require.False(t, prev.IsSentenceBreak())
	require.True(t, prev.IsAbbrev())
}

func TestSecondPassAnnotateInitialUndeterminedWithUppercaseCurMarksAbbrev(t *testing.T) {
	t.Parallel()

	prev := mustNewToken(StandardParams(), "A.", false, false, false)
	prev.SetSentenceBreak(true)
	prev.SetAbbrev(false)
	cur := mustNewToken(StandardParams(), "Smith", false, false, false)

	secondPassAnnotate(&cur, &prev, NewTrainingData(), StandardParams())
	require.False(t, prev.IsSentenceBreak())
	require.True(t, prev.IsAbbrev())
}

func TestSecondPassAnnotateNumericDoesNotGetInitialOnlyOverride(t *testing.T) {
	t.Parallel()

	prev := mustNewToken(StandardParams(), "3.", false, false, false)
	prev.SetSentenceBreak(true)
	prev.SetAbbrev(false)
	cur := mustNewToken(StandardParams(), "Smith", false, false, false)

	secondPassAnnotate(&cur, &prev, NewTrainingData(), StandardParams())
	require.True(t, prev.IsSentenceBreak())
	require.False(t, prev.IsAbbrev())
}
