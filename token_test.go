package punkt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTokenRejectsEmptyText(t *testing.T) {
	t.Parallel()

	_, err := NewToken(StandardParams(), "", false, false, false)
	require.ErrorIs(t, err, ErrEmptyToken)
}

func TestNewTokenClassifiesSentenceEndingSingleChar(t *testing.T) {
	t.Parallel()

	tok := mustNewToken(StandardParams(), ".", false, false, false)
	require.True(t, tok.IsSentenceBreak())
	require.True(t, tok.HasFinalPeriod())
}

func TestNewTokenClassifiesNumeric(t *testing.T) {
	t.Parallel()

	tok := mustNewToken(StandardParams(), "3.14", false, false, false)
	require.True(t, tok.IsNumeric())
	require.False(t, tok.IsInitial())
	require.Equal(t, numberSentinel, tok.Typ())
}

func TestNewTokenClassifiesInitial(t *testing.T) {
	t.Parallel()

	tok := mustNewToken(StandardParams(), "A.", false, false, false)
	require.True(t, tok.IsInitial())
	require.False(t, tok.IsNumeric())
}

func TestTokenCaseFlags(t *testing.T) {
	t.Parallel()

	upper := mustNewToken(StandardParams(), "Hello", false, false, false)
	require.True(t, upper.IsUppercase())
	require.Equal(t, LetterCaseUpper, upper.FirstCase())

	lower := mustNewToken(StandardParams(), "hello", false, false, false)
	require.True(t, lower.IsLowercase())
	require.Equal(t, LetterCaseLower, lower.FirstCase())

	unknown := mustNewToken(StandardParams(), "123", false, false, false)
	require.Equal(t, LetterCaseUnknown, unknown.FirstCase())
}

func TestTokenIsAlphabeticAndNonPunct(t *testing.T) {
	t.Parallel()

	word := mustNewToken(StandardParams(), "hello", false, false, false)
	require.True(t, word.IsAlphabetic())
	require.True(t, word.IsNonPunct())

	punct := mustNewToken(StandardParams(), ",", false, false, false)
	require.False(t, punct.IsAlphabetic())
	require.False(t, punct.IsNonPunct())
}

func TestTokenTypFoldsCase(t *testing.T) {
	t.Parallel()

	tok := mustNewToken(StandardParams(), "Mr.", false, false, false)
	require.Equal(t, "mr.", tok.Typ())
}

func TestTokenTypWithAndWithoutPeriod(t *testing.T) {
	t.Parallel()

	withPeriod := mustNewToken(StandardParams(), "mr.", false, false, false)
	require.Equal(t, "mr.", withPeriod.TypWithPeriod())
	require.Equal(t, "mr", withPeriod.TypWithoutPeriod())

	withoutPeriod := mustNewToken(StandardParams(), "mr", false, false, false)
	require.Equal(t, "mr.", withoutPeriod.TypWithPeriod())
	require.Equal(t, "mr", withoutPeriod.TypWithoutPeriod())

	lonePeriod := mustNewToken(StandardParams(), ".", false, false, false)
	require.Equal(t, ".", lonePeriod.TypWithoutPeriod())
}

func TestTokenTypWithoutBreakOrPeriod(t *testing.T) {
	t.Parallel()

	tok := mustNewToken(StandardParams(), "end.", false, false, false)
	tok.SetSentenceBreak(true)
	require.Equal(t, "end", tok.TypWithoutBreakOrPeriod())

	tok.SetSentenceBreak(false)
	require.Equal(t, "end.", tok.TypWithoutBreakOrPeriod())
}

func TestTokenSetAbbrevAndSentenceBreakToggle(t *testing.T) {
	t.Parallel()

	tok := mustNewToken(StandardParams(), "word", false, false, false)
	require.False(t, tok.IsAbbrev())
	tok.SetAbbrev(true)
	require.True(t, tok.IsAbbrev())
	tok.SetAbbrev(false)
	require.False(t, tok.IsAbbrev())
}

func TestIsTokenNumericEdgeCases(t *testing.T) {
	t.Parallel()

	require.True(t, isTokenNumeric("1,000.50"))
	require.True(t, isTokenNumeric("-5"))
	require.False(t, isTokenNumeric("abc"))
	require.False(t, isTokenNumeric("."))
}

func TestIsTokenInitialEdgeCases(t *testing.T) {
	t.Parallel()

	require.True(t, isTokenInitial("A."))
	require.False(t, isTokenInitial("AB."))
	require.False(t, isTokenInitial("1."))
}
