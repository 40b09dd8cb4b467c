package feedback

// Sequence is an append-only list of entries in submission order.
// The zero value is an empty sequence. Append never modifies the receiver,
// so a Sequence can be shared between states freely.
type Sequence struct {
	entries []Entry
}

// NewSequence returns a sequence holding entries in the given order.
func NewSequence(entries ...Entry) Sequence {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return Sequence{entries: cp}
}

// Append returns a new sequence with e added at the end.
func (s Sequence) Append(e Entry) Sequence {
	// Capped so append always copies.
	return Sequence{entries: append(s.entries[:len(s.entries):len(s.entries)], e)}
}

// Len returns the number of entries.
func (s Sequence) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in submission order.
func (s Sequence) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Reversed returns a copy of the entries, most recent first.
func (s Sequence) Reversed() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	return out
}

// Last returns the most recently appended entry.
func (s Sequence) Last() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// MaxID returns the largest entry id, or 0 for an empty sequence.
func (s Sequence) MaxID() int64 {
	var hi int64
	for _, e := range s.entries {
		if e.ID > hi {
			hi = e.ID
		}
	}
	return hi
}
