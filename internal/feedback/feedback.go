// Package feedback holds the anonymous feedback entries shown on the
// organization dashboard.
package feedback

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyFeedback is returned when feedback text is empty after trimming.
	ErrEmptyFeedback = errors.New("feedback cannot be empty")
	// ErrUnknownCategory is returned for a category outside the fixed set.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrDuplicateID is returned when a seed file reuses an entry id.
	ErrDuplicateID = errors.New("duplicate entry id")
)

// Category tags a feedback entry.
type Category string

const (
	CategoryHarassment Category = "Harassment"
	CategoryFacilities Category = "Facilities"
	CategoryAcademics  Category = "Academics"
	CategoryOther      Category = "Other"
)

// DefaultCategory is preselected in the submission form.
const DefaultCategory = CategoryHarassment

var categories = []Category{
	CategoryHarassment,
	CategoryFacilities,
	CategoryAcademics,
	CategoryOther,
}

// Categories returns all categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches s against the known categories, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c.index() >= 0
}

// Next returns the category after c, wrapping around.
func (c Category) Next() Category {
	i := c.index()
	return categories[(i+1)%len(categories)]
}

// Prev returns the category before c, wrapping around.
func (c Category) Prev() Category {
	i := c.index()
	if i <= 0 {
		return categories[len(categories)-1]
	}
	return categories[i-1]
}

func (c Category) String() string { return string(c) }

func (c Category) index() int {
	for i, k := range categories {
		if k == c {
			return i
		}
	}
	return -1
}

// Entry is a single anonymous submission. There is deliberately no
// submitter field.
type Entry struct {
	ID       int64    `yaml:"id"`
	Text     string   `yaml:"text"`
	Category Category `yaml:"category"`
}

// NewEntry builds an entry with trimmed text.
func NewEntry(id int64, text string, c Category) (Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, ErrEmptyFeedback
	}
	if !c.Valid() {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	return Entry{ID: id, Text: text, Category: c}, nil
}

// NextID derives an entry id from the submission time. When the clock does
// not move past last (same millisecond, or clock skew) the id is last+1, so
// ids stay unique within a run.
func NextID(at time.Time, last int64) int64 {
	id := at.UnixMilli()
	if id <= last {
		return last + 1
	}
	return id
}
