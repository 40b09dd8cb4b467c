package feedback

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed returns the sample entries every run starts with.
func Seed() Sequence {
	return NewSequence(
		Entry{
			ID:       1,
			Text:     "The library is too crowded during exam week. We need more study spaces available 24/7.",
			Category: CategoryFacilities,
		},
		Entry{
			ID:       2,
			Text:     "A professor in the CS department is consistently dismissive of female students' questions.",
			Category: CategoryHarassment,
		},
		Entry{
			ID:       3,
			Text:     "The curriculum for the economics major feels outdated and doesn't cover modern financial instruments.",
			Category: CategoryAcademics,
		},
	)
}

// seedFile is the YAML layout accepted by LoadSeed:
//
//	entries:
//	  - id: 1
//	    text: "..."
//	    category: Facilities
type seedFile struct {
	Entries []struct {
		ID       int64  `yaml:"id"`
		Text     string `yaml:"text"`
		Category string `yaml:"category"`
	} `yaml:"entries"`
}

// LoadSeed reads a replacement seed set from a YAML file. Every entry is
// validated like a fresh submission and ids must be unique. An entry with
// id 0 gets the next free id.
func LoadSeed(path string) (Sequence, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Sequence{}, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(b)
}

// ParseSeed decodes seed YAML; see LoadSeed.
func ParseSeed(b []byte) (Sequence, error) {
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Sequence{}, fmt.Errorf("decode seed: %w", err)
	}

	seen := make(map[int64]bool, len(f.Entries))
	var seq Sequence
	for i, raw := range f.Entries {
		c, err := ParseCategory(raw.Category)
		if err != nil {
			return Sequence{}, fmt.Errorf("seed entry %d: %w", i, err)
		}
		id := raw.ID
		if id == 0 {
			id = seq.MaxID() + 1
		}
		if seen[id] {
			return Sequence{}, fmt.Errorf("seed entry %d: %w: %d", i, ErrDuplicateID, id)
		}
		e, err := NewEntry(id, raw.Text, c)
		if err != nil {
			return Sequence{}, fmt.Errorf("seed entry %d: %w", i, err)
		}
		seen[id] = true
		seq = seq.Append(e)
	}
	return seq, nil
}
