package punkt

import (
	"encoding/json"
	"fmt"
	"sort"
)

// collocation is an internal-to-the-trainer pair of token types compared
// using the type's TypWithoutPeriod text on the left and
// TypWithoutBreakOrPeriod text on the right, per §3 and §4.7.5.
type collocation struct {
	Left  string
	Right string
}

// TrainingData holds the four tables the trainer populates and the
// classifier consults: abbreviation types, sentence-starter types,
// collocation pairs, and per-type orthographic context masks. All string
// keys are stored case-folded; every lookup and insert folds its argument
// before touching a table.
type TrainingData struct {
	abbrevTypes      map[string]struct{}
	sentenceStarters map[string]struct{}
	collocations     map[collocation]struct{}
	orthoContext     map[string]uint8
}

// NewTrainingData returns an empty TrainingData with all four tables
// initialized.
func NewTrainingData() TrainingData {
	return TrainingData{
		abbrevTypes:      make(map[string]struct{}),
		sentenceStarters: make(map[string]struct{}),
		collocations:     make(map[collocation]struct{}),
		orthoContext:     make(map[string]uint8),
	}
}

// ContainsAbbrev reports whether t is a known abbreviation type.
func (d TrainingData) ContainsAbbrev(t string) bool {
	_, ok := d.abbrevTypes[foldLower(t)]
	return ok
}

// InsertAbbrev records t as an abbreviation type.
func (d TrainingData) InsertAbbrev(t string) {
	d.abbrevTypes[foldLower(t)] = struct{}{}
}

// RemoveAbbrev unrecords t as an abbreviation type.
func (d TrainingData) RemoveAbbrev(t string) {
	delete(d.abbrevTypes, foldLower(t))
}

// ContainsSentenceStarter reports whether t is a known sentence-starter type.
func (d TrainingData) ContainsSentenceStarter(t string) bool {
	_, ok := d.sentenceStarters[foldLower(t)]
	return ok
}

// InsertSentenceStarter records t as a sentence-starter type.
func (d TrainingData) InsertSentenceStarter(t string) {
	d.sentenceStarters[foldLower(t)] = struct{}{}
}

// ContainsCollocation reports whether (l, r) is a known collocation.
func (d TrainingData) ContainsCollocation(l, r string) bool {
	_, ok := d.collocations[collocation{foldLower(l), foldLower(r)}]
	return ok
}

// InsertCollocation records (l, r) as a collocation.
func (d TrainingData) InsertCollocation(l, r string) {
	d.collocations[collocation{foldLower(l), foldLower(r)}] = struct{}{}
}

// OrthographicContext returns the stored context mask for t, or 0 if absent.
func (d TrainingData) OrthographicContext(t string) uint8 {
	return d.orthoContext[foldLower(t)]
}

// InsertOrthographicContext bitwise-ORs mask into the stored mask for t. It
// reports whether the stored mask changed.
func (d TrainingData) InsertOrthographicContext(t string, mask uint8) bool {
	key := foldLower(t)
	before := d.orthoContext[key]
	after := before | mask
	d.orthoContext[key] = after
	return after != before
}

// AbbrevCount returns the number of known abbreviation types.
func (d TrainingData) AbbrevCount() int { return len(d.abbrevTypes) }

// SentenceStarterCount returns the number of known sentence-starter types.
func (d TrainingData) SentenceStarterCount() int { return len(d.sentenceStarters) }

// CollocationCount returns the number of known collocation pairs.
func (d TrainingData) CollocationCount() int { return len(d.collocations) }

// OrthoContextCount returns the number of distinct types with a recorded
// orthographic context mask.
func (d TrainingData) OrthoContextCount() int { return len(d.orthoContext) }

// Equal reports whether d and other hold identical tables, used by the
// round-trip JSON property test.
func (d TrainingData) Equal(other TrainingData) bool {
	if len(d.abbrevTypes) != len(other.abbrevTypes) ||
		len(d.sentenceStarters) != len(other.sentenceStarters) ||
		len(d.collocations) != len(other.collocations) ||
		len(d.orthoContext) != len(other.orthoContext) {
		return false
	}
	for k := range d.abbrevTypes {
		if _, ok := other.abbrevTypes[k]; !ok {
			return false
		}
	}
	for k := range d.sentenceStarters {
		if _, ok := other.sentenceStarters[k]; !ok {
			return false
		}
	}
	for k := range d.collocations {
		if _, ok := other.collocations[k]; !ok {
			return false
		}
	}
	for k, v := range d.orthoContext {
		if other.orthoContext[k] != v {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of d; later changes to either copy do not affect
// the other.
func (d TrainingData) Clone() TrainingData {
	c := NewTrainingData()
	for k := range d.abbrevTypes {
		c.abbrevTypes[k] = struct{}{}
	}
	for k := range d.sentenceStarters {
		c.sentenceStarters[k] = struct{}{}
	}
	for k := range d.collocations {
		c.collocations[k] = struct{}{}
	}
	for k, v := range d.orthoContext {
		c.orthoContext[k] = v
	}
	return c
}

// trainingDataJSON is the wire shape for TrainingData per §4.5 and §6: four
// fields, decoded with json.Unmarshal into this struct and then copied into
// the folded tables. Unknown top-level fields are ignored by encoding/json's
// default decode behavior; any field that is present but the wrong shape
// fails with a parse error naming the field.
type trainingDataJSON struct {
	AbbrevTypes      []string         `json:"abbrev_types"`
	SentenceStarters []string         `json:"sentence_starters"`
	Collocations     [][2]string      `json:"collocations"`
	OrthoContext     map[string]uint8 `json:"ortho_context"`
}

// TrainingDataFromJSON decodes a TrainingData from the bundle shape
// documented in §4.5: abbrev_types and sentence_starters as string arrays,
// collocations as an array of two-string arrays, ortho_context as an object
// mapping string to integer.
func TrainingDataFromJSON(raw []byte) (TrainingData, error) {
	var wire trainingDataJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return TrainingData{}, fmt.Errorf("punkt: decoding training data: %w", err)
	}

	data := NewTrainingData()
	for _, t := range wire.AbbrevTypes {
		data.InsertAbbrev(t)
	}
	for _, t := range wire.SentenceStarters {
		data.InsertSentenceStarter(t)
	}
	for _, pair := range wire.Collocations {
		data.InsertCollocation(pair[0], pair[1])
	}
	for t, mask := range wire.OrthoContext {
		data.InsertOrthographicContext(t, mask)
	}

	return data, nil
}

// WriteJSON encodes d into the bundle shape documented in §4.5, with keys in
// a stable sorted order so repeated writes of the same data diff cleanly.
func (d TrainingData) WriteJSON() ([]byte, error) {
	wire := trainingDataJSON{
		AbbrevTypes:      sortedKeys(d.abbrevTypes),
		SentenceStarters: sortedKeys(d.sentenceStarters),
		OrthoContext:     d.orthoContext,
	}
	for _, col := range sortedCollocations(d.collocations) {
		wire.Collocations = append(wire.Collocations, [2]string{col.Left, col.Right})
	}

	out, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("punkt: encoding training data: %w", err)
	}
	return out, nil
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedCollocations(m map[collocation]struct{}) []collocation {
	cols := make([]collocation, 0, len(m))
	for c := range m {
		cols = append(cols, c)
	}
	sort.Slice(cols, func(i, j int) bool {
		if cols[i].Left != cols[j].Left {
			return cols[i].Left < cols[j].Left
		}
		return cols[i].Right < cols[j].Right
	})
	return cols
}
