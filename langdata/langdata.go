// Package langdata embeds illustrative pretrained seed data for the
// languages supported by the punkt CLI's --lang flag. Each bundle is a
// small, hand-curated abbreviation/sentence-starter list in the JSON shape
// punkt.TrainingDataFromJSON expects, not a transcription of the full NLTK
// training corpora (a data artifact outside this repository's scope).
package langdata

import (
	"embed"
	"fmt"
	"strings"

	"github.com/rbright/punkt"
)

//go:embed seed/*.json
var seedFS embed.FS

var languages = []string{
	"czech", "danish", "dutch", "english", "estonian", "finnish", "french",
	"german", "greek", "italian", "norwegian", "polish", "portuguese",
	"slovene", "spanish", "swedish", "turkish",
}

func load(name string) (punkt.TrainingData, error) {
	raw, err := seedFS.ReadFile("seed/" + name + ".json")
	if err != nil {
		return punkt.TrainingData{}, fmt.Errorf("langdata: reading %s bundle: %w", name, err)
	}
	return punkt.TrainingDataFromJSON(raw)
}

// ByName returns the pretrained seed data for the named language. The
// special name "none" returns an empty TrainingData rather than an error,
// for callers that want to train entirely from scratch.
func ByName(name string) (punkt.TrainingData, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "none" {
		return punkt.NewTrainingData(), nil
	}
	for _, lang := range languages {
		if lang == name {
			return load(name)
		}
	}
	return punkt.TrainingData{}, fmt.Errorf("langdata: unsupported language %q", name)
}

// Languages returns the names of every bundled language, in the fixed order
// they are checked by ByName.
func Languages() []string {
	out := make([]string, len(languages))
	copy(out, languages)
	return out
}

// English returns the pretrained seed data for English.
func English() (punkt.TrainingData, error) { return load("english") }

// Czech returns the pretrained seed data for Czech.
func Czech() (punkt.TrainingData, error) { return load("czech") }

// Danish returns the pretrained seed data for Danish.
func Danish() (punkt.TrainingData, error) { return load("danish") }

// Dutch returns the pretrained seed data for Dutch.
func Dutch() (punkt.TrainingData, error) { return load("dutch") }

// Estonian returns the pretrained seed data for Estonian.
func Estonian() (punkt.TrainingData, error) { return load("estonian") }

// Finnish returns the pretrained seed data for Finnish.
func Finnish() (punkt.TrainingData, error) { return load("finnish") }

// French returns the pretrained seed data for French.
func French() (punkt.TrainingData, error) { return load("french") }

// German returns the pretrained seed data for German.
func German() (punkt.TrainingData, error) { return load("german") }

// Greek returns the pretrained seed data for Greek.
func Greek() (punkt.TrainingData, error) { return load("greek") }

// Italian returns the pretrained seed data for Italian.
func Italian() (punkt.TrainingData, error) { return load("italian") }

// Norwegian returns the pretrained seed data for Norwegian.
func Norwegian() (punkt.TrainingData, error) { return load("norwegian") }

// Polish returns the pretrained seed data for Polish.
func Polish() (punkt.TrainingData, error) { return load("polish") }

// Portuguese returns the pretrained seed data for Portuguese.
func Portuguese() (punkt.TrainingData, error) { return load("portuguese") }

// Slovene returns the pretrained seed data for Slovene.
func Slovene() (punkt.TrainingData, error) { return load("slovene") }

// Spanish returns the pretrained seed data for Spanish.
func Spanish() (punkt.TrainingData, error) { return load("spanish") }

// Swedish returns the pretrained seed data for Swedish.
func Swedish() (punkt.TrainingData, error) { return load("swedish") }

// Turkish returns the pretrained seed data for Turkish.
func Turkish() (punkt.TrainingData, error) { return load("turkish") }
